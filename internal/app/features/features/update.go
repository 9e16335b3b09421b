// internal/app/features/features/update.go
package features

import (
	"context"
	"errors"
	"net/http"

	"github.com/sjihq/featureboard/internal/app/policy/featurepolicy"
	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"github.com/sjihq/featureboard/internal/app/system/htmlsanitize"
	"github.com/sjihq/featureboard/internal/app/system/httpjson"
	"github.com/sjihq/featureboard/internal/app/system/normalize"
	"github.com/sjihq/featureboard/internal/app/system/timeouts"
	featurestore "github.com/sjihq/featureboard/internal/app/store/features"
	"github.com/sjihq/featureboard/internal/domain/models"
)

type updateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HandleUpdate edits a feature's title and description. Owner only;
// status, likes, and comments are untouched.
// PATCH /api/v1/features/{id}/update
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	var req updateRequest
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

	f, err := h.Features.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, featurestore.ErrNotFound) {
			httpjson.WriteError(w, h.Log, apperr.NotFound("Feature not found"))
			return
		}
		httpjson.WriteError(w, h.Log, err)
		return
	}
	if !featurepolicy.CanUpdate(f, callerID) {
		httpjson.WriteError(w, h.Log, apperr.Forbidden("You are not authorized!"))
		return
	}

	updated, err := h.Features.UpdateInfo(ctx, id, title, description)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	view, err := h.hydrateOne(ctx, updated)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": "Feature updated successfully",
		"feature": view,
	})
}

type statusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus moves a feature to any of the five statuses.
// Admin-gated at the routing layer; no transition graph is enforced.
// PATCH /api/v1/features/{id}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := featureID(r)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	var req statusRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}
	status := normalize.Status(req.Status)
	if !models.ValidFeatureStatus(status) {
		httpjson.WriteError(w, h.Log, apperr.Invalid("Invalid feature status"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Features.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, featurestore.ErrNotFound) {
			httpjson.WriteError(w, h.Log, apperr.NotFound("Feature not found"))
			return
		}
		httpjson.WriteError(w, h.Log, err)
		return
	}

	view, err := h.hydrateOne(ctx, updated)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": "Feature status updated successfully",
		"feature": view,
	})
}