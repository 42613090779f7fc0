// internal/app/features/wings/handler.go
package wings

import (
	"context"
	"net/http"

	wingstore "github.com/clubsphere/clubsphere/internal/app/store/wings"
	"github.com/clubsphere/clubsphere/internal/app/system/httpjson"
	"github.com/clubsphere/clubsphere/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the wing list.
type Handler struct {
	store *wingstore.Store
	log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		store: wingstore.New(db),
		log:   logger,
	}
}

// List handles GET /wings.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	wings, err := h.store.List(ctx)
	if err != nil {
		h.log.Error("wings: list failed", zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.OK(w, wings)
}
