// internal/app/features/features/comments.go
package features

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sjihq/featureboard/internal/app/policy/featurepolicy"
	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"github.com/sjihq/featureboard/internal/app/system/htmlsanitize"
	"github.com/sjihq/featureboard/internal/app/system/httpjson"
	"github.com/sjihq/featureboard/internal/app/system/timeouts"
	featurestore "github.com/sjihq/featureboard/internal/app/store/features"
	"github.com/sjihq/featureboard/internal/domain/models"
)

type commentRequest struct {
	Comment string `json:"comment"`
}

// HandleAddComment appends the caller's comment to the thread.
// PATCH /api/v1/features/{id}/comments
func (h *Handler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
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

	var req commentRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}
	body := htmlsanitize.Sanitize(req.Comment)
	if body == "" {
		httpjson.WriteError(w, h.Log, apperr.Invalid("Comment is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	f, err := h.Features.AddComment(ctx, id, callerID, body)
	if err != nil {
		h.writeCommentError(w, err)
		return
	}
	h.writeCommentResponse(ctx, w, "Comment added successfully", f)
}

// HandleEditComment replaces a comment's body. The entry keeps its ID
// and author, gets a fresh timestamp, and moves to the end of the
// thread.
// PATCH /api/v1/features/{id}/comments/{commentID}
func (h *Handler) HandleEditComment(w http.ResponseWriter, r *http.Request) {
	id, err := featureID(r)
	if err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}
	commentID := chi.URLParam(r, "commentID")

	var req commentRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.WriteError(w, h.Log, err)
		return
	}
	body := htmlsanitize.Sanitize(req.Comment)
	if body == "" {
		httpjson.WriteError(w, h.Log, apperr.Invalid("Comment is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	f, err := h.Features.EditComment(ctx, id, commentID, body)
	if err != nil {
		h.writeCommentError(w, err)
		return
	}
	h.writeCommentResponse(ctx, w, "Comment updated successfully", f)
}

// HandleDeleteComment removes a comment. Only its author may do so.
// DELETE /api/v1/features/{id}/comments/{commentID}
func (h *Handler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
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
	commentID := chi.URLParam(r, "commentID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	f, err := h.Features.GetByID(ctx, id)
	if err != nil {
		h.writeCommentError(w, err)
		return
	}
	c, ok := f.Comments.Find(commentID)
	if !ok {
		httpjson.WriteError(w, h.Log, apperr.NotFound("Comment not found"))
		return
	}
	if !featurepolicy.CanDeleteComment(c, callerID) {
		httpjson.WriteError(w, h.Log, apperr.Forbidden("You are not authorized!"))
		return
	}

	updated, err := h.Features.DeleteComment(ctx, id, commentID)
	if err != nil {
		h.writeCommentError(w, err)
		return
	}
	h.writeCommentResponse(ctx, w, "Comment deleted successfully", updated)
}

func (h *Handler) writeCommentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, featurestore.ErrNotFound):
		httpjson.WriteError(w, h.Log, apperr.NotFound("Feature not found"))
	case errors.Is(err, featurestore.ErrCommentNotFound):
		httpjson.WriteError(w, h.Log, apperr.NotFound("Comment not found"))
	default:
		httpjson.WriteError(w, h.Log, err)
	}
}

func (h *Handler) writeCommentResponse(ctx context.Context, w http.ResponseWriter, message string, f models.Feature) {
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