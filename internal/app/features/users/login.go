// internal/app/features/users/login.go
package users

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userstore "github.com/sjihq/featureboard/internal/app/store/users"
	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"github.com/sjihq/featureboard/internal/app/system/httpjson"
	"github.com/sjihq/featureboard/internal/app/system/normalize"
	"github.com/sjihq/featureboard/internal/app/system/timeouts"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies a password and issues a bearer token.
// POST /api/v1/users/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}
	email := normalize.Email(req.Email)
	if email == "" || req.Password == "" {
		httpjson.WriteError(w, h.Log, apperr.Invalid("Email and password are required"))
		return
	}

	if ok, reason := h.Limits.Check(r, email); !ok {
		h.Log.Warn("login rate limited", zap.String("reason", reason))
		httpjson.WriteError(w, h.Log, apperr.New(http.StatusTooManyRequests, "Too many attempts, please try again later"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.WriteError(w, h.Log, apperr.NotFound("User not found!"))
			return
		}
		httpjson.WriteError(w, h.Log, err)
		return
	}

	// Accounts created via Google sign-in carry no password hash.
	if u.PasswordHash == "" {
		httpjson.WriteError(w, h.Log, apperr.Unauthorized("Please Login with Google"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		httpjson.WriteError(w, h.Log, apperr.Unauthorized("Invalid credentials"))
		return
	}

	h.Limits.ResetEmail(email)

	token, err := h.Tokens.Issue(u.ID.Hex())
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": "Logged in successfully",
		"user":    toView(u),
		"token":   token,
	})
}