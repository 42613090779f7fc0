// internal/app/features/joinevents/handler.go

// Package joinevents serves event registration: the reconciled per-user
// registration list and free sign-ups.
package joinevents

import (
	"context"
	"errors"
	"net/http"

	"github.com/clubsphere/clubsphere/internal/app/policy/accesspolicy"
	eventstore "github.com/clubsphere/clubsphere/internal/app/store/events"
	eventjoinstore "github.com/clubsphere/clubsphere/internal/app/store/eventjoins"
	"github.com/clubsphere/clubsphere/internal/app/store/queries/access"
	"github.com/clubsphere/clubsphere/internal/app/system/auth"
	"github.com/clubsphere/clubsphere/internal/app/system/httpjson"
	"github.com/clubsphere/clubsphere/internal/app/system/timeouts"
	"github.com/clubsphere/clubsphere/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	joins    *eventjoinstore.Store
	events   *eventstore.Store
	resolver *access.Resolver
	log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		joins:    eventjoinstore.New(db),
		events:   eventstore.New(db),
		resolver: access.NewResolver(db),
		log:      logger,
	}
}

// List handles GET /joinEvents?email=… — the reconciled registration
// list for the caller.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	email, ok := accesspolicy.RequireSelf(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	result, err := h.resolver.Events(ctx, email)
	if err != nil {
		h.log.Error("joinEvents: resolve failed", zap.String("email", email), zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.OK(w, result)
}

// Register handles POST /joinEvents/{id}. The registration is written
// for the verified caller, then the event's participant counter is
// bumped. The two writes are independent; a crash in between leaves
// the counter one short, which the seed tooling reconciles.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "unauthorized access")
		return
	}

	eventID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid event id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// Registering for a missing event is a 404, not a dangling record.
	if _, err := h.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "event not found")
			return
		}
		h.log.Error("joinEvents: event lookup failed", zap.String("id", eventID.Hex()), zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}

	join, err := h.joins.Insert(ctx, models.EventJoin{
		UserEmail: id.Email,
		EventID:   eventID,
	})
	if err != nil {
		h.log.Error("joinEvents: insert failed", zap.String("email", id.Email), zap.Error(err))
		httpjson.ServerError(w, "something went wrong")
		return
	}

	if err := h.events.IncrementParticipants(ctx, eventID); err != nil {
		h.log.Error("joinEvents: participant counter update failed",
			zap.String("event_id", eventID.Hex()),
			zap.Error(err))
	}

	httpjson.Created(w, map[string]any{
		"success":    true,
		"joinResult": join,
	})
}
