// Package accesspolicy centralizes the "whose data may this caller
// read" decision that every scoped endpoint needs, instead of repeating
// the email comparison inline per handler.
//
// Rules:
//   - A caller may always access records scoped to their own email.
//   - Email comparison is case-insensitive; identities are stored
//     lowercased by the verifier.
//   - An empty requested email means the caller asked for nothing in
//     particular; that is the handler's input-validation problem, and
//     the policy denies it.
package accesspolicy

import (
	"net/http"
	"strings"

	"github.com/clubsphere/clubsphere/internal/app/system/auth"
	"github.com/clubsphere/clubsphere/internal/app/system/httpjson"
)

// CanAccess reports whether the identity may access records scoped to
// the requested email.
func CanAccess(id auth.Identity, requestedEmail string) bool {
	if requestedEmail == "" {
		return false
	}
	return strings.EqualFold(id.Email, strings.TrimSpace(requestedEmail))
}

// RequireSelf resolves the verified identity against the email query
// parameter and writes the appropriate error response on failure.
// Returns the requested email and true when the handler may proceed.
func RequireSelf(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "unauthorized access")
		return "", false
	}

	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		httpjson.BadRequest(w, "email query parameter is required")
		return "", false
	}
	if !CanAccess(id, email) {
		httpjson.Forbidden(w, "forbidden access")
		return "", false
	}
	return strings.ToLower(email), true
}
