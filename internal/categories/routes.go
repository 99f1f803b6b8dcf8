package categories

import "github.com/go-chi/chi/v5"

// MountRoutes registers category routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)

	r.Get("/name/{name}", h.getByName)
	r.Get("/code/{categoryCode}", h.getByCode)
	r.Get("/search/name", h.searchByName)
	r.Get("/search/description", h.searchByDescription)
	r.Get("/parent/{parentId}", h.byParent)
	r.Get("/parent/{parentId}/active/{active}", h.byParentAndActive)
	r.Get("/root", h.roots)
	r.Get("/root/active", h.activeRoots)
	r.Get("/active", h.active)
	r.Get("/inactive", h.inactive)
	r.Get("/visible", h.visible)
	r.Get("/hidden", h.hidden)
	r.Get("/featured", h.featured)
	r.Get("/non-featured", h.nonFeatured)
	r.Get("/active/{active}/visible/{visible}", h.byActiveAndVisible)
	r.Get("/featured/{featured}/visible/{visible}", h.byFeaturedAndVisible)
	r.Get("/product-count/greater/{count}", h.productCountGreater)
	r.Get("/product-count/less/{count}", h.productCountLess)
	r.Get("/no-products", h.noProducts)
	r.Get("/created-after", h.createdAfter)
	r.Get("/modified-after", h.modifiedAfter)
	r.Get("/tag/{tag}", h.byTag)
	r.Get("/meta-title", h.byMetaTitle)
	r.Get("/color/{color}", h.byColor)
	r.Get("/ordered/display-order", h.orderedByDisplayOrder)
	r.Get("/ordered/name", h.orderedByName)
	r.Get("/ordered/product-count", h.orderedByProductCount)
	r.Get("/ordered/creation-date", h.orderedByCreationDate)
	r.Get("/ordered/modification-date", h.orderedByModificationDate)
	r.Get("/criteria", h.criteria)

	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/hierarchy", h.hierarchy)
	r.Get("/{id}/subcategories/count", h.countSubcategories)
	r.Put("/{id}/activate", h.activate)
	r.Put("/{id}/deactivate", h.deactivate)
	r.Put("/{id}/show", h.show)
	r.Put("/{id}/hide", h.hide)
	r.Put("/{id}/feature", h.feature)
	r.Put("/{id}/unfeature", h.unfeature)
	r.Put("/{id}/product-count", h.updateProductCount)
	r.Put("/{id}/display-order", h.updateDisplayOrder)
	r.Put("/{id}/tags", h.updateTags)
}
