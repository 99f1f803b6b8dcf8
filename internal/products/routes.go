package products

import "github.com/go-chi/chi/v5"

// MountRoutes registers product routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)

	r.Get("/name/{name}", h.getByName)
	r.Get("/sku/{sku}", h.getBySKU)
	r.Get("/search", h.search)
	r.Get("/search/name", h.searchByName)
	r.Get("/search/description", h.searchByDescription)
	r.Get("/search/brand", h.searchByBrand)
	r.Get("/brand/{brand}", h.byBrand)
	r.Get("/model/{model}", h.byModel)
	r.Get("/category/{categoryId}", h.byCategory)
	r.Get("/category/{categoryId}/active/{active}", h.byCategoryAndActive)
	r.Get("/status/{status}", h.byStatus)
	r.Get("/status/{status}/active/{active}", h.byStatusAndActive)
	r.Get("/active", h.boolFilter(func(f *Filter, v bool) { f.Active = &v }, true))
	r.Get("/inactive", h.boolFilter(func(f *Filter, v bool) { f.Active = &v }, false))
	r.Get("/featured", h.boolFilter(func(f *Filter, v bool) { f.IsFeatured = &v }, true))
	r.Get("/non-featured", h.boolFilter(func(f *Filter, v bool) { f.IsFeatured = &v }, false))
	r.Get("/digital", h.boolFilter(func(f *Filter, v bool) { f.IsDigital = &v }, true))
	r.Get("/physical", h.boolFilter(func(f *Filter, v bool) { f.IsDigital = &v }, false))
	r.Get("/requires-shipping", h.boolFilter(func(f *Filter, v bool) { f.RequiresShipping = &v }, true))
	r.Get("/no-shipping", h.boolFilter(func(f *Filter, v bool) { f.RequiresShipping = &v }, false))
	r.Get("/taxable", h.boolFilter(func(f *Filter, v bool) { f.IsTaxable = &v }, true))
	r.Get("/non-taxable", h.boolFilter(func(f *Filter, v bool) { f.IsTaxable = &v }, false))
	r.Get("/inventory-tracked", h.boolFilter(func(f *Filter, v bool) { f.TrackInventory = &v }, true))
	r.Get("/no-inventory-tracking", h.boolFilter(func(f *Filter, v bool) { f.TrackInventory = &v }, false))
	r.Get("/color/{color}", h.byColor)
	r.Get("/size/{size}", h.bySize)
	r.Get("/price-range", h.priceRange)
	r.Get("/price/greater", h.priceGreater)
	r.Get("/price/less", h.priceLess)
	r.Get("/on-sale", h.onSale)
	r.Get("/stock/greater", h.stockGreater)
	r.Get("/stock/less", h.stockLess)
	r.Get("/out-of-stock", h.outOfStock)
	r.Get("/low-stock", h.lowStock)
	r.Get("/rating/greater", h.ratingGreater)
	r.Get("/rating/range", h.ratingRange)
	r.Get("/best-selling", h.bestSelling)
	r.Get("/most-viewed", h.mostViewed)
	r.Get("/highly-rated", h.highlyRated)
	r.Get("/created-after", h.createdAfter)
	r.Get("/published-after", h.publishedAfter)
	r.Get("/modified-after", h.modifiedAfter)
	r.Get("/tag/{tag}", h.byTag)
	r.Get("/meta-title", h.byMetaTitle)
	r.Get("/ordered/name", h.ordered(OrderByName))
	r.Get("/ordered/price-asc", h.ordered(OrderByPriceAsc))
	r.Get("/ordered/price-desc", h.ordered(OrderByPriceDesc))
	r.Get("/ordered/creation-date", h.ordered(OrderByCreated))
	r.Get("/ordered/rating", h.ordered(OrderByRating))
	r.Get("/ordered/sales-count", h.ordered(OrderBySales))
	r.Get("/ordered/view-count", h.ordered(OrderByViews))
	r.Get("/ordered/stock-quantity", h.ordered(OrderByStock))
	r.Get("/criteria", h.criteria)
	r.Get("/count/category/{categoryId}", h.countByCategory)
	r.Get("/count/brand/{brand}", h.countByBrand)
	r.Get("/count/status/{status}", h.countByStatus)

	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Put("/{id}/activate", h.activate)
	r.Put("/{id}/deactivate", h.deactivate)
	r.Put("/{id}/feature", h.feature)
	r.Put("/{id}/unfeature", h.unfeature)
	r.Put("/{id}/status", h.updateStatus)
	r.Put("/{id}/price", h.updatePrice)
	r.Put("/{id}/sale-price", h.updateSalePrice)
	r.Put("/{id}/stock", h.updateStock)
	r.Put("/{id}/rating", h.updateRating)
	r.Put("/{id}/tags", h.updateTags)
	r.Put("/{id}/view", h.incrementView)
	r.Put("/{id}/sale", h.incrementSale)
}
