// internal/app/features/features/detail.go
package features

import (
	"context"
	"errors"
	"net/http"

	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"github.com/sjihq/featureboard/internal/app/system/httpjson"
	"github.com/sjihq/featureboard/internal/app/system/timeouts"
	featurestore "github.com/sjihq/featureboard/internal/app/store/features"
)

// HandleGetByID returns a single feature with everything expanded,
// comment bodies included. The lookup ignores the soft-delete flag.
// GET /api/v1/features/{id}
func (h *Handler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
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

	view, err := h.hydrateOne(ctx, f)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": "Feature fetched successfully",
		"feature": view,
	})
}