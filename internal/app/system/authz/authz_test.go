package authz

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clubsphere/clubsphere/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// fakeRoles maps emails to roles; unknown emails act like a missing
// profile.
type fakeRoles struct {
	roles map[string]string
	err   error
}

func (f fakeRoles) RoleByEmail(ctx context.Context, email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	role, ok := f.roles[email]
	if !ok {
		return "", mongo.ErrNoDocuments
	}
	return role, nil
}

func run(t *testing.T, roles RoleLookup, identity *auth.Identity) *httptest.ResponseRecorder {
	t.Helper()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if identity != nil {
		req = auth.WithIdentity(req, *identity)
	}
	rec := httptest.NewRecorder()
	RequireAdmin(roles, zap.NewNop())(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK && called {
		t.Error("handler ran despite rejection")
	}
	return rec
}

func TestRequireAdmin_NoIdentity(t *testing.T) {
	rec := run(t, fakeRoles{}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdmin_MissingProfile(t *testing.T) {
	rec := run(t, fakeRoles{roles: map[string]string{}}, &auth.Identity{Email: "ghost@test.com"})
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAdmin_MemberDenied(t *testing.T) {
	roles := fakeRoles{roles: map[string]string{"user@test.com": "member"}}
	rec := run(t, roles, &auth.Identity{Email: "user@test.com"})
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	roles := fakeRoles{roles: map[string]string{"admin@test.com": "admin"}}
	rec := run(t, roles, &auth.Identity{Email: "admin@test.com"})
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdmin_LookupFailure(t *testing.T) {
	roles := fakeRoles{err: errors.New("connection reset")}
	rec := run(t, roles, &auth.Identity{Email: "admin@test.com"})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
