// internal/app/features/blogs/handler.go

// Package blogs serves the public blog posts.
package blogs

import (
	"context"
	"errors"
	"net/http"

	blogstore "github.com/clubsphere/clubsphere/internal/app/store/blogs"
	"github.com/clubsphere/clubsphere/internal/app/system/httpjson"
	"github.com/clubsphere/clubsphere/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	blogs *blogstore.Store
	log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{blogs: blogstore.New(db), log: logger}
}

// List handles GET /blogs, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.blogs.List(ctx)
	if err != nil {
		h.log.Error("blogs: list failed", zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.OK(w, list)
}

// Get handles GET /blogs/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid blog id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	blog, err := h.blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "blog not found")
			return
		}
		h.log.Error("blogs: lookup failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.OK(w, blog)
}
