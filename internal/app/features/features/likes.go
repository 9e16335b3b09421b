// internal/app/features/features/likes.go
package features

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"github.com/sjihq/featureboard/internal/app/system/httpjson"
	"github.com/sjihq/featureboard/internal/app/system/timeouts"
	featurestore "github.com/sjihq/featureboard/internal/app/store/features"
	"github.com/sjihq/featureboard/internal/domain/models"
)

// HandleLike records the caller's like. A repeat like is a no-op.
// PATCH /api/v1/features/{id}/like
func (h *Handler) HandleLike(w http.ResponseWriter, r *http.Request) {
	h.engage(w, r, "Feature liked successfully", h.Features.Like)
}

// HandleUnlike removes the caller's like. Unliking a feature the caller
// never liked is a no-op.
// PATCH /api/v1/features/{id}/unlike
func (h *Handler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	h.engage(w, r, "Feature unliked successfully", h.Features.Unlike)
}

func (h *Handler) engage(w http.ResponseWriter, r *http.Request, message string,
	op func(context.Context, primitive.ObjectID, primitive.ObjectID) (models.Feature, error)) {

	_, callerID, err := caller(r)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}
	id, err := featureID(r)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	f, err := op(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, featurestore.ErrNotFound) {
			httpjson.WriteError(w, h.Log, apperr.NotFound("Feature not found"))
			return
		}
		httpjson.WriteError(w, h.Log, err)
		return
	}

	view, err := h.hydrateOne(ctx, f)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": message,
		"feature": view,
	})
}