// internal/app/features/clubs/handler.go
package clubs

import (
	"context"
	"errors"
	"net/http"

	clubstore "github.com/clubsphere/clubsphere/internal/app/store/clubs"
	"github.com/clubsphere/clubsphere/internal/app/system/httpjson"
	"github.com/clubsphere/clubsphere/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the public club catalog.
type Handler struct {
	store *clubstore.Store
	log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		store: clubstore.New(db),
		log:   logger,
	}
}

// List handles GET /clubs.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	clubs, err := h.store.List(ctx)
	if err != nil {
		h.log.Error("clubs: list failed", zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.OK(w, clubs)
}

// Get handles GET /clubs/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid club id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	club, err := h.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "club not found")
			return
		}
		h.log.Error("clubs: get failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.OK(w, club)
}
