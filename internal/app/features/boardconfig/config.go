// internal/app/features/boardconfig/config.go
package boardconfig

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"github.com/sjihq/featureboard/internal/app/system/auth"
	"github.com/sjihq/featureboard/internal/app/system/htmlsanitize"
	"github.com/sjihq/featureboard/internal/app/system/httpjson"
	"github.com/sjihq/featureboard/internal/app/system/timeouts"
	"github.com/sjihq/featureboard/internal/domain/models"
)

var logoExtRE = regexp.MustCompile(`(?i)\.(jpg|jpeg|png)$`)

// HandleGet returns the current board configuration, defaults included.
// GET /api/v1/website
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cfg, err := h.Config.Get(ctx)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message":     "Website info fetched successfully",
		"websiteInfo": cfg,
	})
}

// updateRequest carries the partial update. Pointer fields distinguish
// "absent" from "set to empty"; only fields present in the body are
// merged, one by one.
type updateRequest struct {
	Name         *string `json:"name"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logoUrl"`
	BoardStatus  *string `json:"boardStatus"`
	SortingOrder *string `json:"sortingOrder"`
}

// HandleUpdate merges the supplied fields into the singleton
// configuration. Admin only.
// PATCH /api/v1/website
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	cu, ok := auth.UserFromRequest(r)
	if !ok {
		httpjson.WriteError(w, h.Log, apperr.Unauthorized("Authentication required"))
		return
	}
	adminID, err := primitive.ObjectIDFromHex(cu.ID)
	if err != nil {
		httpjson.WriteError(w, h.Log, apperr.Unauthorized("Authentication required"))
		return
	}

	var req updateRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cfg, err := h.Config.Get(ctx)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	if err := merge(&cfg, req); err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	saved, err := h.Config.Save(ctx, cfg, adminID)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}

	h.Log.Info("board config updated", zap.String("admin_id", cu.ID))

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message":     "Website info updated successfully",
		"websiteInfo": saved,
	})
}

func merge(cfg *models.BoardConfig, req updateRequest) error {
	if req.Name != nil {
		name := htmlsanitize.StripTags(*req.Name)
		if name == "" || len(name) > models.MaxBoardName {
			return apperr.Invalid(fmt.Sprintf("Website name must be 1-%d characters", models.MaxBoardName))
		}
		cfg.Name = name
	}
	if req.Title != nil {
		title := htmlsanitize.StripTags(*req.Title)
		if title == "" || len(title) > models.MaxBoardTitle {
			return apperr.Invalid(fmt.Sprintf("Title must be 1-%d characters", models.MaxBoardTitle))
		}
		cfg.Title = title
	}
	if req.Description != nil {
		desc := htmlsanitize.StripTags(*req.Description)
		if desc == "" || len(desc) > models.MaxBoardDescription {
			return apperr.Invalid(fmt.Sprintf("Description must be 1-%d characters", models.MaxBoardDescription))
		}
		cfg.Description = desc
	}
	if req.LogoURL != nil {
		if !logoExtRE.MatchString(*req.LogoURL) {
			return apperr.Invalid("Invalid file extension. Only jpg, jpeg, png are allowed.")
		}
		cfg.LogoURL = *req.LogoURL
	}
	if req.BoardStatus != nil {
		if !models.ValidBoardStatus(*req.BoardStatus) {
			return apperr.Invalid("Board status must be Active or Inactive")
		}
		cfg.BoardStatus = *req.BoardStatus
	}
	if req.SortingOrder != nil {
		if !models.ValidSortingOrder(*req.SortingOrder) {
			return apperr.Invalid("Sorting order must be MostVoted, NewestFirst or OldestFirst")
		}
		cfg.SortingOrder = *req.SortingOrder
	}
	return nil
}