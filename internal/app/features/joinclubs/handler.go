// internal/app/features/joinclubs/handler.go

// Package joinclubs serves club membership: the reconciled per-user
// access list, free joins, and leaves.
package joinclubs

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/clubsphere/clubsphere/internal/app/policy/accesspolicy"
	clubjoinstore "github.com/clubsphere/clubsphere/internal/app/store/clubjoins"
	clubstore "github.com/clubsphere/clubsphere/internal/app/store/clubs"
	"github.com/clubsphere/clubsphere/internal/app/store/queries/access"
	"github.com/clubsphere/clubsphere/internal/app/system/httpjson"
	"github.com/clubsphere/clubsphere/internal/app/system/timeouts"
	"github.com/clubsphere/clubsphere/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	joins    *clubjoinstore.Store
	clubs    *clubstore.Store
	resolver *access.Resolver
	log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		joins:    clubjoinstore.New(db),
		clubs:    clubstore.New(db),
		resolver: access.NewResolver(db),
		log:      logger,
	}
}

// List handles GET /joinClubs?email=… — the reconciled access list for
// the caller. The email must match the verified identity.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	email, ok := accesspolicy.RequireSelf(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	result, err := h.resolver.Clubs(ctx, email)
	if err != nil {
		h.log.Error("joinClubs: resolve failed", zap.String("email", email), zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	httpjson.OK(w, result)
}

// joinRequest is the POST /joinClubs body.
type joinRequest struct {
	UserEmail string `json:"userEmail"`
	ClubID    string `json:"clubId"`
}

// Join handles POST /joinClubs — a direct free join. The endpoint is
// deliberately open (the original flow lets visitors join before they
// first sign in) and is rate limited at the router instead.
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.BadRequest(w, "invalid request body")
		return
	}

	req.UserEmail = strings.ToLower(strings.TrimSpace(req.UserEmail))
	if req.UserEmail == "" {
		httpjson.BadRequest(w, "userEmail is required")
		return
	}
	clubID, err := primitive.ObjectIDFromHex(req.ClubID)
	if err != nil {
		httpjson.BadRequest(w, "invalid club id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Joining a missing club is a 404, not a dangling record.
	if _, err := h.clubs.GetByID(ctx, clubID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "club not found")
			return
		}
		h.log.Error("joinClubs: club lookup failed", zap.String("id", clubID.Hex()), zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}

	join, err := h.joins.Insert(ctx, models.ClubJoin{
		UserEmail: req.UserEmail,
		ClubID:    clubID,
	})
	if err != nil {
		h.log.Error("joinClubs: insert failed", zap.String("email", req.UserEmail), zap.Error(err))
		httpjson.ServerError(w, "something went wrong")
		return
	}

	httpjson.Created(w, map[string]any{
		"success":    true,
		"joinResult": join,
	})
}

// Leave handles DELETE /joinClubs/{clubID}?email=… — removes the free
// join record and the user's entry in the club member list. The two
// deletes are independent writes; a failure in between leaves the
// member-list entry for the next leave call to clean up.
func (h *Handler) Leave(w http.ResponseWriter, r *http.Request) {
	email, ok := accesspolicy.RequireSelf(w, r)
	if !ok {
		return
	}

	clubID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "clubID"))
	if err != nil {
		httpjson.BadRequest(w, "invalid club id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.joins.Remove(ctx, email, clubID)
	if err != nil {
		h.log.Error("joinClubs: leave failed", zap.String("email", email), zap.Error(err))
		httpjson.ServerError(w, "database error")
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w, "membership not found")
		return
	}

	if err := h.clubs.RemoveMember(ctx, clubID, email); err != nil {
		h.log.Error("joinClubs: member-list cleanup failed",
			zap.String("email", email),
			zap.String("club_id", clubID.Hex()),
			zap.Error(err))
	}

	httpjson.OK(w, httpjson.Envelope{Success: true, Message: "left club"})
}
