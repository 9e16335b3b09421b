// internal/app/features/boardconfig/routes.go
package boardconfig

import (
	"github.com/go-chi/chi/v5"

	"github.com/sjihq/featureboard/internal/app/system/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleGet)

	r.Group(func(ar chi.Router) {
		ar.Use(auth.RequireAdmin)
		ar.Patch("/", h.HandleUpdate)
	})

	return r
}