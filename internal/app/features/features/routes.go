// internal/app/features/features/routes.go
package features

import (
	"github.com/go-chi/chi/v5"

	"github.com/sjihq/featureboard/internal/app/system/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Public reads
	r.Get("/", h.HandleList)
	r.Get("/{id}", h.HandleGetByID)
	r.Get("/search/{term}", h.HandleSearch)

	// Any signed-in user
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Post("/", h.HandleCreate)
		pr.Patch("/{id}/update", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleHardDelete)
		pr.Patch("/{id}/like", h.HandleLike)
		pr.Patch("/{id}/unlike", h.HandleUnlike)
		pr.Patch("/{id}/comments", h.HandleAddComment)
		pr.Patch("/{id}/comments/{commentID}", h.HandleEditComment)
		pr.Delete("/{id}/comments/{commentID}", h.HandleDeleteComment)
	})

	// Admin only
	r.Group(func(ar chi.Router) {
		ar.Use(auth.RequireAdmin)

		ar.Patch("/{id}/status", h.HandleUpdateStatus)
		ar.Patch("/{id}", h.HandleSoftDelete)
	})

	return r
}