package customers

import "github.com/go-chi/chi/v5"

// MountRoutes registers customer routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)

	r.Get("/email/{email}", h.getByEmail)
	r.Get("/search/company", h.searchByCompany)
	r.Get("/search/contact", h.searchByContact)
	r.Get("/city/{city}", h.byCity)
	r.Get("/country/{country}", h.byCountry)
	r.Get("/active", h.active)
	r.Get("/inactive", h.inactive)
	r.Get("/credit-limit", h.byCreditLimit)
	r.Get("/phone/{phone}", h.byPhone)
	r.Get("/filter", h.filter)

	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Put("/{id}/activate", h.activate)
	r.Put("/{id}/deactivate", h.deactivate)
}
