// internal/app/features/features/list.go
package features

import (
	"context"
	"net/http"

	"github.com/sjihq/featureboard/internal/app/system/httpjson"
	"github.com/sjihq/featureboard/internal/app/system/normalize"
	"github.com/sjihq/featureboard/internal/app/system/paging"
	"github.com/sjihq/featureboard/internal/app/system/timeouts"
	featurestore "github.com/sjihq/featureboard/internal/app/store/features"
)

// HandleList returns one page of non-deleted features with the trimmed
// projection, paging info, and status counts over the same predicate.
// GET /api/v1/features
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := featurestore.ListParams{
		Status:    normalize.Status(q.Get("status")),
		SortBy:    normalize.QueryParam(q.Get("sortBy")),
		SortOrder: normalize.QueryParam(q.Get("sortOrder")),
		Page:      paging.Parse(r),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, total, err := h.Features.List(ctx, params)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	counts, err := h.Features.StatusCounts(ctx, params.Status)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	views, err := h.hydrateList(ctx, items)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message":      "All features retrieved successfully",
		"features":     views,
		"pageInfo":     params.Page.Info(total),
		"statusCounts": counts,
	})
}