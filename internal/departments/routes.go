package departments

import "github.com/go-chi/chi/v5"

// MountRoutes registers department routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)

	r.Get("/name/{name}", h.getByName)
	r.Get("/search/name", h.searchByName)
	r.Get("/search/manager", h.searchByManager)
	r.Get("/search/description", h.searchByDescription)
	r.Get("/location/{location}", h.byLocation)
	r.Get("/active", h.active)
	r.Get("/inactive", h.inactive)
	r.Get("/budget", h.byBudget)
	r.Get("/employees", h.byEmployeeCount)
	r.Get("/manager-email/{email}", h.byManagerEmail)
	r.Get("/filter", h.filter)

	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Put("/{id}/activate", h.activate)
	r.Put("/{id}/deactivate", h.deactivate)
	r.Put("/{id}/budget", h.updateBudget)
	r.Put("/{id}/employees", h.updateEmployeeCount)
}
