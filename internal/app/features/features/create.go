// internal/app/features/features/create.go
package features

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"github.com/sjihq/featureboard/internal/app/system/htmlsanitize"
	"github.com/sjihq/featureboard/internal/app/system/httpjson"
	"github.com/sjihq/featureboard/internal/app/system/timeouts"
	featurestore "github.com/sjihq/featureboard/internal/app/store/features"
)

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HandleCreate inserts a new feature request owned by the caller.
// POST /api/v1/features
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, ownerID, err := caller(r)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	var req createRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	title := htmlsanitize.StripTags(req.Title)
	description := htmlsanitize.Sanitize(req.Description)
	if title == "" || description == "" {
		httpjson.WriteError(w, h.Log, apperr.Invalid("Title and description are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Features.Create(ctx, title, description, ownerID)
	if err != nil {
		if errors.Is(err, featurestore.ErrDuplicateTitle) {
			httpjson.WriteError(w, h.Log, apperr.Conflict("Feature with the same title already exists"))
			return
		}
		httpjson.WriteError(w, h.Log, err)
		return
	}

	view, err := h.hydrateOne(ctx, created)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	h.Log.Info("feature created",
		zap.String("feature_id", view.ID),
		zap.String("user_id", u.ID))

	httpjson.Write(w, http.StatusCreated, map[string]any{
		"message": "Feature created successfully",
		"feature": view,
	})
}