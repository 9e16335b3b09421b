// internal/app/features/features/delete.go
package features

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sjihq/featureboard/internal/app/policy/featurepolicy"
	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"github.com/sjihq/featureboard/internal/app/system/httpjson"
	"github.com/sjihq/featureboard/internal/app/system/timeouts"
	featurestore "github.com/sjihq/featureboard/internal/app/store/features"
)

// HandleSoftDelete hides a feature from listings while keeping the
// record. Admin-gated at the routing layer.
// PATCH /api/v1/features/{id}
func (h *Handler) HandleSoftDelete(w http.ResponseWriter, r *http.Request) {
	id, err := featureID(r)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Features.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, featurestore.ErrNotFound) {
			httpjson.WriteError(w, h.Log, apperr.NotFound("Feature not found"))
			return
		}
		httpjson.WriteError(w, h.Log, err)
		return
	}

	h.Log.Info("feature soft-deleted", zap.String("feature_id", deleted.ID.Hex()))

	view, err := h.hydrateOne(ctx, deleted)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": "Feature deleted successfully",
		"feature": view,
	})
}

// HandleHardDelete physically removes a feature. Owner only; the
// record is gone afterwards, soft-deleted or not.
// DELETE /api/v1/features/{id}
func (h *Handler) HandleHardDelete(w http.ResponseWriter, r *http.Request) {
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

	f, err := h.Features.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, featurestore.ErrNotFound) {
			httpjson.WriteError(w, h.Log, apperr.NotFound("Feature not found"))
			return
		}
		httpjson.WriteError(w, h.Log, err)
		return
	}
	if !featurepolicy.CanHardDelete(f, callerID) {
		httpjson.WriteError(w, h.Log, apperr.Forbidden("You are not authorized!"))
		return
	}

	if err := h.Features.HardDelete(ctx, id); err != nil {
		if errors.Is(err, featurestore.ErrNotFound) {
			httpjson.WriteError(w, h.Log, apperr.NotFound("Feature not found"))
			return
		}
		httpjson.WriteError(w, h.Log, err)
		return
	}

	h.Log.Info("feature hard-deleted", zap.String("feature_id", id.Hex()))

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": "Feature deleted successfully",
	})
}