// internal/app/features/users/handler.go

// Package users serves the user directory: login upserts, role lookups,
// and admin role management.
package users

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/clubsphere/clubsphere/internal/app/policy/accesspolicy"
	requeststore "github.com/clubsphere/clubsphere/internal/app/store/requests"
	userstore "github.com/clubsphere/clubsphere/internal/app/store/users"
	"github.com/clubsphere/clubsphere/internal/app/system/httpjson"
	"github.com/clubsphere/clubsphere/internal/app/system/timeouts"
	"github.com/clubsphere/clubsphere/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	users    *userstore.Store
	requests *requeststore.Store
	log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		users:    userstore.New(db),
		requests: requeststore.New(db),
		log:      logger,
	}
}

// upsertRequest is the PUT /users body, sent by the client on every
// sign-in.
type upsertRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Upsert handles PUT /users. First sign-in creates the profile with
// the member role; later sign-ins only refresh the name and login
// timestamp, so an admin promotion survives the next login.
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.BadRequest(w, "invalid request body")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		httpjson.BadRequest(w, "email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.users.UpsertLogin(ctx, email, req.Name)
	if err != nil {
		h.log.Error("users: login upsert failed", zap.String("email", email), zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.OK(w, user)
}

// List handles GET /users. Admin only; enforced by the route.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.users.List(ctx)
	if err != nil {
		h.log.Error("users: list failed", zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.OK(w, list)
}

// Role handles GET /users/role?email=… — the caller's own role.
func (h *Handler) Role(w http.ResponseWriter, r *http.Request) {
	email, ok := accesspolicy.RequireSelf(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	role, err := h.users.RoleByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "user not found")
			return
		}
		h.log.Error("users: role lookup failed", zap.String("email", email), zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.OK(w, map[string]string{"role": role})
}

// roleRequest is the PATCH /users/{email}/role body.
type roleRequest struct {
	Role string `json:"role"`
}

// UpdateRole handles PATCH /users/{email}/role. Admin only. Promoting
// a user also clears any pending member request they filed; the
// request served its purpose.
func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(chi.URLParam(r, "email"))
	if email == "" {
		httpjson.BadRequest(w, "email is required")
		return
	}

	var req roleRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.BadRequest(w, "invalid request body")
		return
	}
	switch req.Role {
	case models.RoleMember, models.RoleAdmin:
	default:
		httpjson.BadRequest(w, "role must be member or admin")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.users.UpdateRole(ctx, email, req.Role); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "user not found")
			return
		}
		h.log.Error("users: role update failed", zap.String("email", email), zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}

	if _, err := h.requests.DeleteByEmail(ctx, email); err != nil {
		h.log.Error("users: pending request cleanup failed", zap.String("email", email), zap.Error(err))
	}

	httpjson.OK(w, httpjson.Envelope{Success: true, Message: "role updated"})
}
