// internal/app/features/users/register.go
package users

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userstore "github.com/sjihq/featureboard/internal/app/store/users"
	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"github.com/sjihq/featureboard/internal/app/system/htmlsanitize"
	"github.com/sjihq/featureboard/internal/app/system/httpjson"
	"github.com/sjihq/featureboard/internal/app/system/normalize"
	"github.com/sjihq/featureboard/internal/app/system/timeouts"
	"github.com/sjihq/featureboard/internal/domain/models"
)

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// HandleRegister creates a password account and issues a bearer token.
// POST /api/v1/users/register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	name := htmlsanitize.StripTags(req.Name)
	email := normalize.Email(req.Email)
	if name == "" || email == "" || req.Password == "" {
		httpjson.WriteError(w, h.Log, apperr.Invalid("Name, email and password are required"))
		return
	}
	if req.Password != req.ConfirmPassword {
		httpjson.WriteError(w, h.Log, apperr.Invalid("Password and Confirm Password do not match"))
		return
	}

	if ok, reason := h.Limits.Check(r, email); !ok {
		h.Log.Warn("registration rate limited", zap.String("reason", reason))
		httpjson.WriteError(w, h.Log, apperr.New(http.StatusTooManyRequests, "Too many attempts, please try again later"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Users.Create(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpjson.WriteError(w, h.Log, apperr.Conflict("Email is already in use"))
			return
		}
		httpjson.WriteError(w, h.Log, err)
		return
	}

	token, err := h.Tokens.Issue(created.ID.Hex())
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	h.Log.Info("user registered", zap.String("user_id", created.ID.Hex()))

	httpjson.Write(w, http.StatusCreated, map[string]any{
		"message": "User Created Successfully",
		"user":    toView(created),
		"token":   token,
	})
}