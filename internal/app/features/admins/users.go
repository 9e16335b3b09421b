// internal/app/features/admins/users.go
package admins

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	userstore "github.com/sjihq/featureboard/internal/app/store/users"
	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"github.com/sjihq/featureboard/internal/app/system/httpjson"
	"github.com/sjihq/featureboard/internal/app/system/timeouts"
	"github.com/sjihq/featureboard/internal/domain/models"
)

type adminUserView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	PhotoURL  string `json:"photoURL,omitempty"`
	Role      string `json:"role"`
	IsDeleted bool   `json:"isDeleted"`
}

// HandleListUsers returns every non-deleted account, newest first.
// GET /api/v1/admins
func (h *Handler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Users.ListActive(ctx)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	views := make([]adminUserView, 0, len(users))
	for _, u := range users {
		views = append(views, adminUserView{
			ID:        u.ID.Hex(),
			Name:      u.Name,
			Email:     u.Email,
			PhotoURL:  u.PhotoURL,
			Role:      u.Role,
			IsDeleted: u.IsDeleted,
		})
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": "Users fetched successfully",
		"users":   views,
	})
}

// HandleMakeAdmin promotes a non-deleted account to the admin role.
// PATCH /api/v1/admins/make-admin/{id}
func (h *Handler) HandleMakeAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.SetRole(ctx, id, models.RoleAdmin)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.WriteError(w, h.Log, apperr.NotFound("User not found or has been deleted"))
			return
		}
		httpjson.WriteError(w, h.Log, err)
		return
	}

	h.Log.Info("user promoted to admin", zap.String("user_id", u.ID.Hex()))

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("%s is now an Admin", u.Name),
		"user": map[string]any{
			"id":   u.ID.Hex(),
			"name": u.Name,
			"role": u.Role,
		},
	})
}

// HandleDeleteUser soft-deletes an account. The record stays, so the
// caller's features and comments keep a resolvable reference until
// listings filter them out.
// PATCH /api/v1/admins/{id}
func (h *Handler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			httpjson.WriteError(w, h.Log, apperr.NotFound("User not found or has been deleted"))
			return
		}
		httpjson.WriteError(w, h.Log, err)
		return
	}

	h.Log.Info("user soft-deleted", zap.String("user_id", u.ID.Hex()))

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": "User deleted successfully",
	})
}

func userID(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apperr.NotFound("User not found or has been deleted")
	}
	return id, nil
}