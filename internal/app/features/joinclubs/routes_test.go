package joinclubs

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clubsphere/clubsphere/internal/app/system/auth"
	"github.com/clubsphere/clubsphere/internal/app/system/ratelimit"
	"github.com/clubsphere/clubsphere/internal/testutil"
	"go.uber.org/zap"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())
	verifier := testutil.StaticVerifier{
		Token:    "good-token",
		Identity: auth.Identity{Email: "user@test.com", Name: "Test User"},
	}
	return Routes(h, verifier, ratelimit.New(100, time.Minute))
}

func TestRoutes_ListRequiresToken(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/?email=user@test.com", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}
}

func TestRoutes_ListWithToken(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/?email=user@test.com", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with token, got %d", rec.Code)
	}
}

func TestRoutes_JoinIsOpen(t *testing.T) {
	r := testRouter(t)

	// No Authorization header at all; only the body is validated.
	req := httptest.NewRequest(http.MethodPost, "/", testutil.JSONBody(`{"userEmail":"","clubId":""}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code == http.StatusUnauthorized {
		t.Error("open join endpoint must not demand a token")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for the empty body, got %d", rec.Code)
	}
}

func TestRoutes_JoinRateLimited(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())
	verifier := testutil.StaticVerifier{Token: "good-token"}
	r := Routes(h, verifier, ratelimit.New(1, time.Minute))

	body := `{"userEmail":"","clubId":""}`

	first := httptest.NewRecorder()
	req1 := httptest.NewRequest(http.MethodPost, "/", testutil.JSONBody(body))
	req1.RemoteAddr = "9.9.9.9:1111"
	r.ServeHTTP(first, req1)
	if first.Code == http.StatusTooManyRequests {
		t.Fatal("first request should pass the limiter")
	}

	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/", testutil.JSONBody(body))
	req2.RemoteAddr = "9.9.9.9:2222"
	r.ServeHTTP(second, req2)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 on the second request, got %d", second.Code)
	}
}
