// internal/app/features/events/handler.go
package events

import (
	"context"
	"errors"
	"net/http"

	eventstore "github.com/clubsphere/clubsphere/internal/app/store/events"
	"github.com/clubsphere/clubsphere/internal/app/system/httpjson"
	"github.com/clubsphere/clubsphere/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the public event catalog.
type Handler struct {
	store *eventstore.Store
	log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		store: eventstore.New(db),
		log:   logger,
	}
}

// List handles GET /events.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := h.store.List(ctx)
	if err != nil {
		h.log.Error("events: list failed", zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.OK(w, events)
}

// Get handles GET /events/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid event id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	event, err := h.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "event not found")
			return
		}
		h.log.Error("events: get failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.OK(w, event)
}
