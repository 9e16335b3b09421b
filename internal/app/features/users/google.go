// internal/app/features/users/google.go
package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	userstore "github.com/sjihq/featureboard/internal/app/store/users"
	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"github.com/sjihq/featureboard/internal/app/system/httpjson"
	"github.com/sjihq/featureboard/internal/app/system/timeouts"
	"github.com/sjihq/featureboard/internal/domain/models"
)

type googleSignInRequest struct {
	Code string `json:"code"`
}

// googleUserInfo represents user info returned from Google.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// HandleGoogleSignIn exchanges an authorization code for Google user
// info and signs the account in, creating it on first contact.
// POST /api/v1/users/google-signin
func (h *Handler) HandleGoogleSignIn(w http.ResponseWriter, r *http.Request) {
	if !h.googleConfigured() {
		httpjson.WriteError(w, h.Log, apperr.New(http.StatusServiceUnavailable, "Google sign-in is not configured"))
		return
	}

	var req googleSignInRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}
	if req.Code == "" {
		httpjson.WriteError(w, h.Log, apperr.Invalid("Authorization code is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	token, err := h.oauth2Config().Exchange(ctx, req.Code)
	if err != nil {
		h.Log.Warn("google code exchange failed", zap.Error(err))
		httpjson.WriteError(w, h.Log, apperr.Unauthorized("Google sign-in failed"))
		return
	}

	info, err := fetchGoogleUserInfo(ctx, token)
	if err != nil {
		h.Log.Warn("google userinfo fetch failed", zap.Error(err))
		httpjson.WriteError(w, h.Log, apperr.Unauthorized("Google sign-in failed"))
		return
	}
	if info.Email == "" {
		httpjson.WriteError(w, h.Log, apperr.Unauthorized("Google sign-in failed"))
		return
	}

	// Existing account: issue a token and return it.
	existing, err := h.Users.GetByEmail(ctx, info.Email)
	if err == nil {
		bearer, err := h.Tokens.Issue(existing.ID.Hex())
		if err != nil {
			httpjson.WriteError(w, h.Log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, map[string]any{
			"message": "Sign In with Google Successful",
			"user":    toView(existing),
			"token":   bearer,
		})
		return
	}
	if !errors.Is(err, userstore.ErrNotFound) {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	// First contact: create a passwordless account.
	created, err := h.Users.Create(ctx, models.User{
		Name:     info.Name,
		Email:    info.Email,
		PhotoURL: info.Picture,
	})
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	bearer, err := h.Tokens.Issue(created.ID.Hex())
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	h.Log.Info("user created via google", zap.String("user_id", created.ID.Hex()))

	httpjson.Write(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    toView(created),
		"token":   bearer,
	})
}

// fetchGoogleUserInfo retrieves user information from Google's userinfo
// endpoint.
func fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &info, nil
}