package addresses

import "github.com/go-chi/chi/v5"

// MountRoutes registers address routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)

	r.Get("/search/street", h.searchByStreet)
	r.Get("/search/city", h.searchByCity)
	r.Get("/search/country", h.searchByCountry)
	r.Get("/search/additional-info", h.searchByAdditionalInfo)
	r.Get("/city/{city}", h.byCity)
	r.Get("/state/{state}", h.byState)
	r.Get("/country/{country}", h.byCountry)
	r.Get("/postal-code/{postalCode}", h.byPostalCode)
	r.Get("/postal-code-pattern", h.byPostalCodePattern)
	r.Get("/type/{type}", h.byType)
	r.Get("/active", h.active)
	r.Get("/inactive", h.inactive)
	r.Get("/primary", h.primary)
	r.Get("/non-primary", h.nonPrimary)
	r.Get("/filter/city-country", h.filterCityCountry)
	r.Get("/filter/state-country", h.filterStateCountry)
	r.Get("/filter/active-country", h.filterActiveCountry)
	r.Get("/filter/active-city", h.filterActiveCity)
	r.Get("/filter/type-active", h.filterTypeActive)
	r.Get("/coordinates", h.withinCoordinates)
	r.Get("/ordered/city", h.orderedByCity)
	r.Get("/ordered/country-city", h.orderedByCountryCity)

	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Put("/{id}/activate", h.activate)
	r.Put("/{id}/deactivate", h.deactivate)
	r.Put("/{id}/set-primary", h.setPrimary)
	r.Put("/{id}/set-non-primary", h.setNonPrimary)
	r.Put("/{id}/coordinates", h.updateCoordinates)
}
