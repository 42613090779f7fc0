// internal/app/features/payments/confirm.go
package payments

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	paymentstore "github.com/clubsphere/clubsphere/internal/app/store/payments"
	"github.com/clubsphere/clubsphere/internal/app/system/auth"
	"github.com/clubsphere/clubsphere/internal/app/system/checkout"
	"github.com/clubsphere/clubsphere/internal/app/system/httpjson"
	"github.com/clubsphere/clubsphere/internal/app/system/timeouts"
	"github.com/clubsphere/clubsphere/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Confirm handles POST /payments/confirm?session_id=…. It resolves the
// session with the provider, records the payment keyed on the
// provider's payment intent id, and merges the membership or
// registration entry. The unique index on transaction_id makes the
// whole flow replay-safe: a repeated confirm (page reload, double
// click, concurrent tab) finds or collides with the first record and
// returns it unchanged.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "unauthorized access")
		return
	}

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		httpjson.BadRequest(w, "session_id is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	details, err := h.provider.GetSession(ctx, sessionID)
	if err != nil {
		h.log.Error("payments: session lookup failed", zap.String("session_id", sessionID), zap.Error(err))
		httpjson.ServerError(w, "could not verify payment session")
		return
	}

	// The session belongs to whoever checked out, not whoever holds
	// the confirm URL.
	if details.CustomerEmail != "" && !strings.EqualFold(details.CustomerEmail, id.Email) {
		httpjson.Forbidden(w, "forbidden access")
		return
	}

	if details.PaymentStatus != checkout.StatusPaid {
		httpjson.BadRequest(w, "payment not completed")
		return
	}
	if details.PaymentIntentID == "" {
		httpjson.BadRequest(w, "session has no payment intent")
		return
	}

	if existing, err := h.payments.FindByTransactionID(ctx, details.PaymentIntentID); err == nil {
		httpjson.OK(w, map[string]any{
			"success": true,
			"payment": existing,
		})
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		h.log.Error("payments: transaction lookup failed", zap.String("transaction_id", details.PaymentIntentID), zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}

	payment, err := h.buildPayment(id.Email, details)
	if err != nil {
		httpjson.BadRequest(w, err.Error())
		return
	}

	recorded, err := h.payments.Insert(ctx, payment)
	if err != nil {
		if errors.Is(err, paymentstore.ErrDuplicateTransaction) {
			// Lost the race to a concurrent confirm; the winner's
			// record is the answer.
			recorded, err = h.payments.FindByTransactionID(ctx, details.PaymentIntentID)
			if err == nil {
				httpjson.OK(w, map[string]any{
					"success": true,
					"payment": recorded,
				})
				return
			}
		}
		h.log.Error("payments: insert failed", zap.String("transaction_id", details.PaymentIntentID), zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}

	if err := h.applyMembership(ctx, recorded); err != nil {
		// The payment is recorded; membership reconciliation already
		// treats the payment itself as proof of access.
		h.log.Error("payments: membership merge failed",
			zap.String("transaction_id", recorded.TransactionID),
			zap.Error(err))
	}

	httpjson.Created(w, map[string]any{
		"success": true,
		"payment": recorded,
	})
}

// buildPayment maps session metadata back onto a payment record.
func (h *Handler) buildPayment(email string, details checkout.SessionDetails) (models.Payment, error) {
	p := models.Payment{
		TransactionID: details.PaymentIntentID,
		UserEmail:     strings.ToLower(email),
		Amount:        details.AmountTotal,
		Currency:      details.Currency,
		Status:        checkout.StatusPaid,
		CreatedAt:     time.Now().UTC(),
	}

	switch details.Metadata["type"] {
	case models.PaymentTypeMembership:
		clubID, err := primitive.ObjectIDFromHex(details.Metadata["club_id"])
		if err != nil {
			return models.Payment{}, errors.New("session metadata has no valid club id")
		}
		p.Type = models.PaymentTypeMembership
		p.ClubID = clubID
	case models.PaymentTypeEvent:
		eventID, err := primitive.ObjectIDFromHex(details.Metadata["event_id"])
		if err != nil {
			return models.Payment{}, errors.New("session metadata has no valid event id")
		}
		p.Type = models.PaymentTypeEvent
		p.EventID = eventID
	default:
		return models.Payment{}, errors.New("session metadata has no payment type")
	}
	return p, nil
}

// applyMembership merges the paid join into the membership records.
// Upserts keyed on user and entity, so replays never duplicate.
func (h *Handler) applyMembership(ctx context.Context, p models.Payment) error {
	switch p.Type {
	case models.PaymentTypeMembership:
		if err := h.clubJoins.Upsert(ctx, p.UserEmail, p.ClubID, models.JoinStatusActive); err != nil {
			return err
		}
		return h.clubs.MergeMember(ctx, p.ClubID, models.ClubMember{
			UserEmail:     p.UserEmail,
			JoinedAt:      p.CreatedAt,
			Status:        models.JoinStatusActive,
			PaymentID:     p.ID,
			TransactionID: p.TransactionID,
		})
	case models.PaymentTypeEvent:
		inserted, err := h.eventJoins.Upsert(ctx, p.UserEmail, p.EventID, models.JoinStatusRegistered)
		if err != nil {
			return err
		}
		// A matched upsert means the free registration already bumped
		// the counter; only a fresh registration counts.
		if !inserted {
			return nil
		}
		if err := h.events.IncrementParticipants(ctx, p.EventID); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
		return nil
	}
	return nil
}
