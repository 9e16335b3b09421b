// internal/app/features/users/me.go
package users

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	userstore "github.com/sjihq/featureboard/internal/app/store/users"
	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"github.com/sjihq/featureboard/internal/app/system/auth"
	"github.com/sjihq/featureboard/internal/app/system/httpjson"
	"github.com/sjihq/featureboard/internal/app/system/timeouts"
)

// HandleMe returns the signed-in caller's account record.
// GET /api/v1/users/me
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	cu, ok := auth.UserFromRequest(r)
	if !ok {
		httpjson.WriteError(w, h.Log, apperr.Unauthorized("Authentication required"))
		return
	}
	id, err := primitive.ObjectIDFromHex(cu.ID)
	if err != nil {
		httpjson.WriteError(w, h.Log, apperr.Unauthorized("Authentication required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.WriteError(w, h.Log, apperr.NotFound("User not found!"))
			return
		}
		httpjson.WriteError(w, h.Log, err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": "User found",
		"user":    toView(u),
	})
}