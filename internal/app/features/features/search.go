// internal/app/features/features/search.go
package features

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"github.com/sjihq/featureboard/internal/app/system/httpjson"
	"github.com/sjihq/featureboard/internal/app/system/normalize"
	"github.com/sjihq/featureboard/internal/app/system/paging"
	"github.com/sjihq/featureboard/internal/app/system/timeouts"
)

// HandleSearch matches the term against title and description,
// case-insensitively, over non-deleted features. Results carry the full
// projection.
// GET /api/v1/features/search/{term}
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	term := normalize.QueryParam(chi.URLParam(r, "term"))
	if term == "" {
		httpjson.WriteError(w, h.Log, apperr.Invalid("Search term is required"))
		return
	}
	page := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, total, err := h.Features.Search(ctx, term, page)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	views, err := h.hydrateFull(ctx, items)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message":  "Features retrieved successfully",
		"features": views,
		"pageInfo": page.Info(total),
	})
}