// internal/app/features/faqs/handler.go

// Package faqs serves the public FAQ list.
package faqs

import (
	"context"
	"net/http"

	faqstore "github.com/clubsphere/clubsphere/internal/app/store/faqs"
	"github.com/clubsphere/clubsphere/internal/app/system/httpjson"
	"github.com/clubsphere/clubsphere/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	faqs *faqstore.Store
	log  *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{faqs: faqstore.New(db), log: logger}
}

// List handles GET /faqs, in display order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.faqs.List(ctx)
	if err != nil {
		h.log.Error("faqs: list failed", zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.OK(w, list)
}
