// internal/app/features/admins/routes.go
package admins

import (
	"github.com/go-chi/chi/v5"

	"github.com/sjihq/featureboard/internal/app/system/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireAdmin)

	r.Get("/", h.HandleListUsers)
	r.Patch("/make-admin/{id}", h.HandleMakeAdmin)
	r.Patch("/{id}", h.HandleDeleteUser)

	return r
}