package products

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/atlas-backoffice/atlas-backoffice/internal/platform/httpx"
	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

// Handler serves the product REST endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	if !errors.Is(err, shared.ErrNotFound) && !errors.Is(err, shared.ErrConflict) && !errors.Is(err, shared.ErrValidation) {
		h.logger.Error(op+" failed", "error", err)
	}
	httpx.RespondError(w, err)
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func parseDateParam(r *http.Request, name string) (time.Time, error) {
	return time.Parse("2006-01-02", r.URL.Query().Get(name))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{})
}

func (h *Handler) listWith(w http.ResponseWriter, r *http.Request, f Filter) {
	prods, err := h.service.List(r.Context(), f)
	if err != nil {
		h.respondError(w, "list products", err)
		return
	}
	if prods == nil {
		prods = []Product{}
	}
	httpx.JSON(w, http.StatusOK, prods)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	prod, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "get product", err)
		return
	}
	httpx.JSON(w, http.StatusOK, prod)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	prod, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondError(w, "create product", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, prod)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	var req ProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	prod, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondError(w, "update product", err)
		return
	}
	httpx.JSON(w, http.StatusOK, prod)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "delete product", err)
		return
	}
	httpx.Message(w, http.StatusOK, "Product deleted successfully")
}

func (h *Handler) getByName(w http.ResponseWriter, r *http.Request) {
	prod, err := h.service.GetByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.respondError(w, "get product by name", err)
		return
	}
	httpx.JSON(w, http.StatusOK, prod)
}

func (h *Handler) getBySKU(w http.ResponseWriter, r *http.Request) {
	prod, err := h.service.GetBySKU(r.Context(), chi.URLParam(r, "sku"))
	if err != nil {
		h.respondError(w, "get product by sku", err)
		return
	}
	httpx.JSON(w, http.StatusOK, prod)
}

func (h *Handler) searchByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	h.listWith(w, r, Filter{NameLike: &name})
}

func (h *Handler) searchByDescription(w http.ResponseWriter, r *http.Request) {
	description := r.URL.Query().Get("description")
	h.listWith(w, r, Filter{DescriptionLike: &description})
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("searchTerm")
	h.listWith(w, r, Filter{SearchTerm: &term})
}

func (h *Handler) byBrand(w http.ResponseWriter, r *http.Request) {
	brand := chi.URLParam(r, "brand")
	h.listWith(w, r, Filter{Brand: &brand})
}

func (h *Handler) searchByBrand(w http.ResponseWriter, r *http.Request) {
	brand := r.URL.Query().Get("brand")
	h.listWith(w, r, Filter{BrandLike: &brand})
}

func (h *Handler) byModel(w http.ResponseWriter, r *http.Request) {
	model := chi.URLParam(r, "model")
	h.listWith(w, r, Filter{Model: &model})
}

func (h *Handler) byCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryId"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid category id")
		return
	}
	h.listWith(w, r, Filter{CategoryID: &categoryID})
}

func (h *Handler) byCategoryAndActive(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryId"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid category id")
		return
	}
	active, err := strconv.ParseBool(chi.URLParam(r, "active"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "active must be a boolean")
		return
	}
	h.listWith(w, r, Filter{CategoryID: &categoryID, Active: &active})
}

func (h *Handler) byStatus(w http.ResponseWriter, r *http.Request) {
	status := Status(chi.URLParam(r, "status"))
	if !validStatus(status) {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product status")
		return
	}
	h.listWith(w, r, Filter{Status: &status})
}

func (h *Handler) byStatusAndActive(w http.ResponseWriter, r *http.Request) {
	status := Status(chi.URLParam(r, "status"))
	if !validStatus(status) {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product status")
		return
	}
	active, err := strconv.ParseBool(chi.URLParam(r, "active"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "active must be a boolean")
		return
	}
	h.listWith(w, r, Filter{Status: &status, Active: &active})
}

func (h *Handler) boolFilter(set func(f *Filter, v bool), v bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f Filter
		set(&f, v)
		h.listWith(w, r, f)
	}
}

func (h *Handler) byColor(w http.ResponseWriter, r *http.Request) {
	color := chi.URLParam(r, "color")
	h.listWith(w, r, Filter{Color: &color})
}

func (h *Handler) bySize(w http.ResponseWriter, r *http.Request) {
	size := chi.URLParam(r, "size")
	h.listWith(w, r, Filter{Size: &size})
}

func (h *Handler) priceRange(w http.ResponseWriter, r *http.Request) {
	minPrice, err1 := strconv.ParseFloat(r.URL.Query().Get("minPrice"), 64)
	maxPrice, err2 := strconv.ParseFloat(r.URL.Query().Get("maxPrice"), 64)
	if err1 != nil || err2 != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "minPrice and maxPrice must be numbers")
		return
	}
	h.listWith(w, r, Filter{MinPrice: &minPrice, MaxPrice: &maxPrice})
}

func (h *Handler) priceGreater(w http.ResponseWriter, r *http.Request) {
	price, err := strconv.ParseFloat(r.URL.Query().Get("price"), 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "price must be a number")
		return
	}
	h.listWith(w, r, Filter{PriceAbove: &price})
}

func (h *Handler) priceLess(w http.ResponseWriter, r *http.Request) {
	price, err := strconv.ParseFloat(r.URL.Query().Get("price"), 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "price must be a number")
		return
	}
	h.listWith(w, r, Filter{PriceBelow: &price})
}

func (h *Handler) onSale(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{OnSale: true})
}

func (h *Handler) stockGreater(w http.ResponseWriter, r *http.Request) {
	quantity, err := strconv.ParseInt(r.URL.Query().Get("quantity"), 10, 32)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "quantity must be an integer")
		return
	}
	q := int32(quantity)
	h.listWith(w, r, Filter{StockAbove: &q})
}

func (h *Handler) stockLess(w http.ResponseWriter, r *http.Request) {
	quantity, err := strconv.ParseInt(r.URL.Query().Get("quantity"), 10, 32)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "quantity must be an integer")
		return
	}
	q := int32(quantity)
	h.listWith(w, r, Filter{StockBelow: &q})
}

func (h *Handler) outOfStock(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{OutOfStock: true})
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{LowStock: true})
}

func (h *Handler) ratingGreater(w http.ResponseWriter, r *http.Request) {
	rating, err := strconv.ParseFloat(r.URL.Query().Get("rating"), 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "rating must be a number")
		return
	}
	h.listWith(w, r, Filter{RatingAbove: &rating})
}

func (h *Handler) ratingRange(w http.ResponseWriter, r *http.Request) {
	minRating, err1 := strconv.ParseFloat(r.URL.Query().Get("minRating"), 64)
	maxRating, err2 := strconv.ParseFloat(r.URL.Query().Get("maxRating"), 64)
	if err1 != nil || err2 != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "minRating and maxRating must be numbers")
		return
	}
	h.listWith(w, r, Filter{MinRating: &minRating, MaxRating: &maxRating})
}

// bestSelling lists products above a sales threshold, best sellers first.
// The threshold defaults to zero.
func (h *Handler) bestSelling(w http.ResponseWriter, r *http.Request) {
	salesCount, err := intParamDefault(r, "salesCount", 0)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "salesCount must be an integer")
		return
	}
	h.listWith(w, r, Filter{MinSales: &salesCount, OrderBy: OrderBySales})
}

func (h *Handler) mostViewed(w http.ResponseWriter, r *http.Request) {
	viewCount, err := intParamDefault(r, "viewCount", 0)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "viewCount must be an integer")
		return
	}
	h.listWith(w, r, Filter{MinViews: &viewCount, OrderBy: OrderByViews})
}

// highlyRated lists products with at least the given rating and review
// count, defaulting to rating 4.0 with one review.
func (h *Handler) highlyRated(w http.ResponseWriter, r *http.Request) {
	rating := 4.0
	if v := r.URL.Query().Get("rating"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "rating must be a number")
			return
		}
		rating = parsed
	}
	minReviews, err := intParamDefault(r, "minReviews", 1)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "minReviews must be an integer")
		return
	}
	h.listWith(w, r, Filter{MinRating: &rating, MinReviews: &minReviews, OrderBy: OrderByRating})
}

func intParamDefault(r *http.Request, name string, def int32) (int32, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	parsed, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(parsed), nil
}

func (h *Handler) createdAfter(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r, "date")
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "date must use the yyyy-MM-dd format")
		return
	}
	h.listWith(w, r, Filter{CreatedAfter: &date})
}

func (h *Handler) publishedAfter(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r, "date")
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "date must use the yyyy-MM-dd format")
		return
	}
	h.listWith(w, r, Filter{PublishedAfter: &date})
}

func (h *Handler) modifiedAfter(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r, "date")
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "date must use the yyyy-MM-dd format")
		return
	}
	h.listWith(w, r, Filter{ModifiedAfter: &date})
}

func (h *Handler) byTag(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	h.listWith(w, r, Filter{Tag: &tag})
}

func (h *Handler) byMetaTitle(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	h.listWith(w, r, Filter{MetaTitleLike: &title})
}

func (h *Handler) ordered(order Order) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.listWith(w, r, Filter{OrderBy: order})
	}
}

// criteria combines the optional categoryId, brand, status, active,
// isFeatured, minPrice and maxPrice parameters.
func (h *Handler) criteria(w http.ResponseWriter, r *http.Request) {
	var f Filter
	if v := r.URL.Query().Get("categoryId"); v != "" {
		categoryID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "categoryId must be an integer")
			return
		}
		f.CategoryID = &categoryID
	}
	if v := r.URL.Query().Get("brand"); v != "" {
		f.Brand = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := Status(v)
		if !validStatus(status) {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product status")
			return
		}
		f.Status = &status
	}
	if v := r.URL.Query().Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "active must be a boolean")
			return
		}
		f.Active = &active
	}
	if v := r.URL.Query().Get("isFeatured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "isFeatured must be a boolean")
			return
		}
		f.IsFeatured = &featured
	}
	if v := r.URL.Query().Get("minPrice"); v != "" {
		minPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "minPrice must be a number")
			return
		}
		f.MinPrice = &minPrice
	}
	if v := r.URL.Query().Get("maxPrice"); v != "" {
		maxPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "maxPrice must be a number")
			return
		}
		f.MaxPrice = &maxPrice
	}
	h.listWith(w, r, f)
}

func (h *Handler) countByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryId"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid category id")
		return
	}
	count, err := h.service.CountByCategory(r.Context(), categoryID)
	if err != nil {
		h.respondError(w, "count products by category", err)
		return
	}
	httpx.JSON(w, http.StatusOK, count)
}

func (h *Handler) countByBrand(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountByBrand(r.Context(), chi.URLParam(r, "brand"))
	if err != nil {
		h.respondError(w, "count products by brand", err)
		return
	}
	httpx.JSON(w, http.StatusOK, count)
}

func (h *Handler) countByStatus(w http.ResponseWriter, r *http.Request) {
	status := Status(chi.URLParam(r, "status"))
	if !validStatus(status) {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product status")
		return
	}
	count, err := h.service.CountByStatus(r.Context(), status)
	if err != nil {
		h.respondError(w, "count products by status", err)
		return
	}
	httpx.JSON(w, http.StatusOK, count)
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Activate)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Deactivate)
}

func (h *Handler) feature(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Feature)
}

func (h *Handler) unfeature(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Unfeature)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	prod, err := h.service.UpdateStatus(r.Context(), id, Status(r.URL.Query().Get("status")))
	if err != nil {
		h.respondError(w, "update product status", err)
		return
	}
	httpx.JSON(w, http.StatusOK, prod)
}

func (h *Handler) updatePrice(w http.ResponseWriter, r *http.Request) {
	h.patchFloat(w, r, "price", h.service.UpdatePrice)
}

func (h *Handler) updateSalePrice(w http.ResponseWriter, r *http.Request) {
	h.patchFloat(w, r, "salePrice", h.service.UpdateSalePrice)
}

func (h *Handler) updateStock(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	quantity, err := strconv.ParseInt(r.URL.Query().Get("stockQuantity"), 10, 32)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "stockQuantity must be an integer")
		return
	}
	prod, err := h.service.UpdateStock(r.Context(), id, int32(quantity))
	if err != nil {
		h.respondError(w, "update product stock", err)
		return
	}
	httpx.JSON(w, http.StatusOK, prod)
}

func (h *Handler) updateRating(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	rating, err := strconv.ParseFloat(r.URL.Query().Get("rating"), 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "rating must be a number")
		return
	}
	reviewCount, err := strconv.ParseInt(r.URL.Query().Get("reviewCount"), 10, 32)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "reviewCount must be an integer")
		return
	}
	prod, err := h.service.UpdateRating(r.Context(), id, rating, int32(reviewCount))
	if err != nil {
		h.respondError(w, "update product rating", err)
		return
	}
	httpx.JSON(w, http.StatusOK, prod)
}

func (h *Handler) updateTags(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	prod, err := h.service.UpdateTags(r.Context(), id, r.URL.Query().Get("tags"))
	if err != nil {
		h.respondError(w, "update product tags", err)
		return
	}
	httpx.JSON(w, http.StatusOK, prod)
}

func (h *Handler) incrementView(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.IncrementViewCount)
}

func (h *Handler) incrementSale(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.IncrementSalesCount)
}

func (h *Handler) patch(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) (Product, error)) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	prod, err := op(r.Context(), id)
	if err != nil {
		h.respondError(w, "patch product", err)
		return
	}
	httpx.JSON(w, http.StatusOK, prod)
}

// patchFloat runs a float-valued mutator whose value arrives as a query
// parameter.
func (h *Handler) patchFloat(w http.ResponseWriter, r *http.Request, param string, op func(ctx context.Context, id int64, v float64) (Product, error)) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	v, err := strconv.ParseFloat(r.URL.Query().Get(param), 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", param+" must be a number")
		return
	}
	prod, err := op(r.Context(), id, v)
	if err != nil {
		h.respondError(w, "patch product", err)
		return
	}
	httpx.JSON(w, http.StatusOK, prod)
}
