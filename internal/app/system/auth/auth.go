// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"github.com/sjihq/featureboard/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// CurrentUser is the authenticated caller injected into the request
// context by LoadUser. Handlers trust these fields; the role is fetched
// fresh on every request so role changes and account deletion take
// effect immediately.
type CurrentUser struct {
	ID       string
	Name     string
	Email    string
	PhotoURL string
	Role     string
}

// IsAdmin reports whether the caller carries the admin role.
func (u *CurrentUser) IsAdmin() bool {
	return u != nil && strings.EqualFold(u.Role, "admin")
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// UserFromRequest returns the caller from context and a found flag.
func UserFromRequest(r *http.Request) (*CurrentUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*CurrentUser)
	return u, ok
}

// UserFetcher resolves a user ID (hex) to a CurrentUser. It returns
// ok=false when the user does not exist or is soft-deleted.
type UserFetcher interface {
	FetchUser(ctx context.Context, id string) (*CurrentUser, bool)
}

// Middleware validates bearer tokens and loads the caller into context.
type Middleware struct {
	verifier *TokenVerifier
	fetcher  UserFetcher
	log      *zap.Logger
}

// NewMiddleware builds the auth middleware around a token verifier and
// a user fetcher.
func NewMiddleware(verifier *TokenVerifier, fetcher UserFetcher, logger *zap.Logger) *Middleware {
	return &Middleware{verifier: verifier, fetcher: fetcher, log: logger}
}

// LoadUser parses the Authorization header, verifies the token, and
// injects the caller into the request context. Requests without a
// token, or with one that fails verification, continue anonymously;
// route-level RequireSignedIn decides whether that matters.
func (m *Middleware) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := m.verifier.Verify(token)
		if err != nil {
			m.log.Debug("bearer token rejected", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		u, ok := m.fetcher.FetchUser(r.Context(), userID)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, WithUser(r, u))
	})
}

// RequireSignedIn rejects anonymous requests with a 401 JSON body.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromRequest(r); !ok {
			httpjson.Write(w, http.StatusUnauthorized, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects callers without the admin role. Anonymous
// callers get 401; signed-in non-admins get 403.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFromRequest(r)
		if !ok {
			httpjson.Write(w, http.StatusUnauthorized, apperr.Unauthorized("Authentication required"))
			return
		}
		if !u.IsAdmin() {
			httpjson.Write(w, http.StatusForbidden, apperr.Forbidden("You are not authorized!"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser returns a request whose context carries the given user.
// Tests use this to bypass token verification.
func WithUser(r *http.Request, u *CurrentUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}