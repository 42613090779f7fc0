// internal/app/features/payments/createsession.go
package payments

import (
	"context"
	"errors"
	"net/http"

	"github.com/clubsphere/clubsphere/internal/app/system/auth"
	"github.com/clubsphere/clubsphere/internal/app/system/checkout"
	"github.com/clubsphere/clubsphere/internal/app/system/httpjson"
	"github.com/clubsphere/clubsphere/internal/app/system/timeouts"
	"github.com/clubsphere/clubsphere/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// createSessionRequest is the POST /payments/checkout body.
type createSessionRequest struct {
	Type    string `json:"type"` // "membership" | "event"
	ClubID  string `json:"clubId,omitempty"`
	EventID string `json:"eventId,omitempty"`
}

// CreateSession handles POST /payments/checkout. It prices the session
// from the entity document (never from the client), attaches what was
// bought as session metadata, and answers with the provider's redirect
// URL. Confirmation reads that metadata back, so the session is the
// only state carried between the two calls.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "unauthorized access")
		return
	}

	var req createSessionRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.BadRequest(w, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var params checkout.CreateSessionParams
	switch req.Type {
	case models.PaymentTypeMembership:
		clubID, err := primitive.ObjectIDFromHex(req.ClubID)
		if err != nil {
			httpjson.BadRequest(w, "invalid club id")
			return
		}
		club, err := h.clubs.GetByID(ctx, clubID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				httpjson.NotFound(w, "club not found")
				return
			}
			h.log.Error("payments: club lookup failed", zap.Error(err))
			httpjson.ServerError(w, "database error")
			return
		}
		if club.Fee <= 0 {
			httpjson.BadRequest(w, "club is free to join")
			return
		}
		params = checkout.CreateSessionParams{
			Amount:      club.Fee,
			Currency:    currencyOrDefault(club.Currency),
			ProductName: club.Name + " membership",
			Metadata: map[string]string{
				"type":    models.PaymentTypeMembership,
				"club_id": club.ID.Hex(),
			},
		}

	case models.PaymentTypeEvent:
		eventID, err := primitive.ObjectIDFromHex(req.EventID)
		if err != nil {
			httpjson.BadRequest(w, "invalid event id")
			return
		}
		event, err := h.events.GetByID(ctx, eventID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				httpjson.NotFound(w, "event not found")
				return
			}
			h.log.Error("payments: event lookup failed", zap.Error(err))
			httpjson.ServerError(w, "database error")
			return
		}
		if event.Fee <= 0 {
			httpjson.BadRequest(w, "event is free to join")
			return
		}
		params = checkout.CreateSessionParams{
			Amount:      event.Fee,
			Currency:    currencyOrDefault(event.Currency),
			ProductName: event.Title + " registration",
			Metadata: map[string]string{
				"type":     models.PaymentTypeEvent,
				"event_id": event.ID.Hex(),
			},
		}

	default:
		httpjson.BadRequest(w, "type must be membership or event")
		return
	}

	params.CustomerEmail = id.Email
	params.SuccessURL = h.urls.Success
	params.CancelURL = h.urls.Cancel

	sess, err := h.provider.CreateSession(ctx, params)
	if err != nil {
		h.log.Error("payments: session create failed", zap.String("email", id.Email), zap.Error(err))
		httpjson.ServerError(w, "could not create checkout session")
		return
	}

	httpjson.OK(w, map[string]any{
		"sessionId": sess.ID,
		"url":       sess.URL,
	})
}

func currencyOrDefault(c string) string {
	if c == "" {
		return "usd"
	}
	return c
}
