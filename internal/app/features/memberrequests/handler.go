// internal/app/features/memberrequests/handler.go

// Package memberrequests serves role-change requests: members file
// them, admins review them.
package memberrequests

import (
	"context"
	"errors"
	"net/http"

	requeststore "github.com/clubsphere/clubsphere/internal/app/store/requests"
	"github.com/clubsphere/clubsphere/internal/app/system/auth"
	"github.com/clubsphere/clubsphere/internal/app/system/httpjson"
	"github.com/clubsphere/clubsphere/internal/app/system/timeouts"
	"github.com/clubsphere/clubsphere/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	requests *requeststore.Store
	log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{requests: requeststore.New(db), log: logger}
}

// createRequest is the POST /memberRequests body. The email comes from
// the verified identity, never the body.
type createRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Create handles POST /memberRequests. One pending request per email;
// a second submission answers 409 until an admin actions the first.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "unauthorized access")
		return
	}

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.BadRequest(w, "invalid request body")
		return
	}
	if req.Role == "" {
		req.Role = models.RoleAdmin
	}
	if req.Role != models.RoleAdmin {
		httpjson.BadRequest(w, "only admin requests are supported")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.requests.Create(ctx, models.MemberRequest{
		Email: id.Email,
		Name:  req.Name,
		Role:  req.Role,
	})
	if err != nil {
		if errors.Is(err, requeststore.ErrPendingExists) {
			httpjson.Error(w, http.StatusConflict, err.Error())
			return
		}
		h.log.Error("memberRequests: create failed", zap.String("email", id.Email), zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.Created(w, created)
}

// List handles GET /memberRequests. Admin only; enforced by the route.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.requests.List(ctx)
	if err != nil {
		h.log.Error("memberRequests: list failed", zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.OK(w, list)
}
