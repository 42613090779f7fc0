// internal/testutil/http.go
package testutil

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/clubsphere/clubsphere/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// WithIdentity adds a verified identity to the request context,
// bypassing the auth middleware.
func WithIdentity(r *http.Request, email string) *http.Request {
	return auth.WithIdentity(r, auth.Identity{Email: email, Name: "Test User"})
}

// NewRequest creates an HTTP request for handler tests. A non-nil body
// is sent with a JSON content type.
func NewRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// NewAuthenticatedRequest creates an HTTP request carrying a verified
// identity in context.
func NewAuthenticatedRequest(method, target string, body io.Reader, email string) *http.Request {
	return WithIdentity(NewRequest(method, target, body), email)
}

// JSONBody wraps a JSON string for use as a request body.
func JSONBody(s string) io.Reader {
	return strings.NewReader(s)
}

// StaticVerifier is an auth.Verifier for route tests: it accepts
// exactly one token and maps it to a fixed identity.
type StaticVerifier struct {
	Token    string
	Identity auth.Identity
}

func (v StaticVerifier) Verify(ctx context.Context, token string) (auth.Identity, error) {
	if token != v.Token {
		return auth.Identity{}, errors.New("unknown token")
	}
	return v.Identity, nil
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}
