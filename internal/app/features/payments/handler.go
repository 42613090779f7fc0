// internal/app/features/payments/handler.go

// Package payments drives the paid-join flow: create a hosted checkout
// session, confirm the outcome, and list a user's payment records.
package payments

import (
	"context"
	"net/http"

	"github.com/clubsphere/clubsphere/internal/app/policy/accesspolicy"
	clubjoinstore "github.com/clubsphere/clubsphere/internal/app/store/clubjoins"
	clubstore "github.com/clubsphere/clubsphere/internal/app/store/clubs"
	eventjoinstore "github.com/clubsphere/clubsphere/internal/app/store/eventjoins"
	eventstore "github.com/clubsphere/clubsphere/internal/app/store/events"
	paymentstore "github.com/clubsphere/clubsphere/internal/app/store/payments"
	"github.com/clubsphere/clubsphere/internal/app/system/checkout"
	"github.com/clubsphere/clubsphere/internal/app/system/httpjson"
	"github.com/clubsphere/clubsphere/internal/app/system/timeouts"
	"github.com/clubsphere/clubsphere/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// URLs holds the redirect targets handed to the checkout provider.
type URLs struct {
	Success string
	Cancel  string
}

type Handler struct {
	payments   *paymentstore.Store
	clubs      *clubstore.Store
	events     *eventstore.Store
	clubJoins  *clubjoinstore.Store
	eventJoins *eventjoinstore.Store
	provider   checkout.Provider
	urls       URLs
	log        *zap.Logger
}

func NewHandler(db *mongo.Database, provider checkout.Provider, urls URLs, logger *zap.Logger) *Handler {
	return &Handler{
		payments:   paymentstore.New(db),
		clubs:      clubstore.New(db),
		events:     eventstore.New(db),
		clubJoins:  clubjoinstore.New(db),
		eventJoins: eventjoinstore.New(db),
		provider:   provider,
		urls:       urls,
		log:        logger,
	}
}

// List handles GET /payments?email=…&type=… — the caller's payment
// records, optionally filtered by type.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	email, ok := accesspolicy.RequireSelf(w, r)
	if !ok {
		return
	}

	paymentType := r.URL.Query().Get("type")
	switch paymentType {
	case "", models.PaymentTypeMembership, models.PaymentTypeEvent:
	default:
		httpjson.BadRequest(w, "invalid payment type")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.payments.ListByUser(ctx, email, paymentType)
	if err != nil {
		h.log.Error("payments: list failed", zap.String("email", email), zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.OK(w, list)
}
