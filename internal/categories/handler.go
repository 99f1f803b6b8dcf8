package categories

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

// Handler serves the category REST endpoints.
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
	cats, err := h.service.List(r.Context(), f)
	if err != nil {
		h.respondError(w, "list categories", err)
		return
	}
	if cats == nil {
		cats = []Category{}
	}
	httpx.JSON(w, http.StatusOK, cats)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid category id")
		return
	}
	cat, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "get category", err)
		return
	}
	httpx.JSON(w, http.StatusOK, cat)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	cat, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondError(w, "create category", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, cat)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid category id")
		return
	}
	var req CategoryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	cat, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondError(w, "update category", err)
		return
	}
	httpx.JSON(w, http.StatusOK, cat)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid category id")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "delete category", err)
		return
	}
	httpx.Message(w, http.StatusOK, "Category deleted successfully")
}

func (h *Handler) getByName(w http.ResponseWriter, r *http.Request) {
	cat, err := h.service.GetByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.respondError(w, "get category by name", err)
		return
	}
	httpx.JSON(w, http.StatusOK, cat)
}

func (h *Handler) getByCode(w http.ResponseWriter, r *http.Request) {
	cat, err := h.service.GetByCode(r.Context(), chi.URLParam(r, "categoryCode"))
	if err != nil {
		h.respondError(w, "get category by code", err)
		return
	}
	httpx.JSON(w, http.StatusOK, cat)
}

func (h *Handler) searchByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	h.listWith(w, r, Filter{NameLike: &name})
}

func (h *Handler) searchByDescription(w http.ResponseWriter, r *http.Request) {
	description := r.URL.Query().Get("description")
	h.listWith(w, r, Filter{DescriptionLike: &description})
}

func (h *Handler) byParent(w http.ResponseWriter, r *http.Request) {
	parentID, err := strconv.ParseInt(chi.URLParam(r, "parentId"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid parent id")
		return
	}
	h.listWith(w, r, Filter{ParentID: &parentID})
}

func (h *Handler) byParentAndActive(w http.ResponseWriter, r *http.Request) {
	parentID, err := strconv.ParseInt(chi.URLParam(r, "parentId"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid parent id")
		return
	}
	active, err := strconv.ParseBool(chi.URLParam(r, "active"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "active must be a boolean")
		return
	}
	h.listWith(w, r, Filter{ParentID: &parentID, Active: &active})
}

func (h *Handler) roots(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{RootOnly: true, OrderBy: OrderByDisplayOrder})
}

func (h *Handler) activeRoots(w http.ResponseWriter, r *http.Request) {
	active := true
	h.listWith(w, r, Filter{RootOnly: true, Active: &active, OrderBy: OrderByDisplayOrder})
}

func (h *Handler) active(w http.ResponseWriter, r *http.Request) {
	active := true
	h.listWith(w, r, Filter{Active: &active})
}

func (h *Handler) inactive(w http.ResponseWriter, r *http.Request) {
	active := false
	h.listWith(w, r, Filter{Active: &active})
}

func (h *Handler) visible(w http.ResponseWriter, r *http.Request) {
	visible := true
	h.listWith(w, r, Filter{IsVisible: &visible})
}

func (h *Handler) hidden(w http.ResponseWriter, r *http.Request) {
	visible := false
	h.listWith(w, r, Filter{IsVisible: &visible})
}

func (h *Handler) featured(w http.ResponseWriter, r *http.Request) {
	featured := true
	h.listWith(w, r, Filter{IsFeatured: &featured})
}

func (h *Handler) nonFeatured(w http.ResponseWriter, r *http.Request) {
	featured := false
	h.listWith(w, r, Filter{IsFeatured: &featured})
}

func (h *Handler) byActiveAndVisible(w http.ResponseWriter, r *http.Request) {
	active, err1 := strconv.ParseBool(chi.URLParam(r, "active"))
	visible, err2 := strconv.ParseBool(chi.URLParam(r, "visible"))
	if err1 != nil || err2 != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "active and visible must be booleans")
		return
	}
	h.listWith(w, r, Filter{Active: &active, IsVisible: &visible})
}

func (h *Handler) byFeaturedAndVisible(w http.ResponseWriter, r *http.Request) {
	featured, err1 := strconv.ParseBool(chi.URLParam(r, "featured"))
	visible, err2 := strconv.ParseBool(chi.URLParam(r, "visible"))
	if err1 != nil || err2 != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "featured and visible must be booleans")
		return
	}
	h.listWith(w, r, Filter{IsFeatured: &featured, IsVisible: &visible})
}

func (h *Handler) productCountGreater(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.ParseInt(chi.URLParam(r, "count"), 10, 32)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "count must be an integer")
		return
	}
	c := int32(count)
	h.listWith(w, r, Filter{MinProducts: &c})
}

func (h *Handler) productCountLess(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.ParseInt(chi.URLParam(r, "count"), 10, 32)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "count must be an integer")
		return
	}
	c := int32(count)
	h.listWith(w, r, Filter{MaxProductsBelow: &c})
}

func (h *Handler) noProducts(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{NoProducts: true})
}

func (h *Handler) createdAfter(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r, "date")
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "date must use the yyyy-MM-dd format")
		return
	}
	h.listWith(w, r, Filter{CreatedAfter: &date})
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

func (h *Handler) byColor(w http.ResponseWriter, r *http.Request) {
	color := chi.URLParam(r, "color")
	h.listWith(w, r, Filter{Color: &color})
}

func (h *Handler) orderedByDisplayOrder(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{OrderBy: OrderByDisplayOrder})
}

func (h *Handler) orderedByName(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{OrderBy: OrderByName})
}

func (h *Handler) orderedByProductCount(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{OrderBy: OrderByProductCount})
}

func (h *Handler) orderedByCreationDate(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{OrderBy: OrderByCreated})
}

func (h *Handler) orderedByModificationDate(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{OrderBy: OrderByModified})
}

// criteria combines the optional parentCategoryId, active, isVisible and
// isFeatured parameters.
func (h *Handler) criteria(w http.ResponseWriter, r *http.Request) {
	var f Filter
	if v := r.URL.Query().Get("parentCategoryId"); v != "" {
		parentID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "parentCategoryId must be an integer")
			return
		}
		f.ParentID = &parentID
	}
	boolParam := func(name string, dest **bool) bool {
		v := r.URL.Query().Get(name)
		if v == "" {
			return true
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", name+" must be a boolean")
			return false
		}
		*dest = &b
		return true
	}
	if !boolParam("active", &f.Active) || !boolParam("isVisible", &f.IsVisible) || !boolParam("isFeatured", &f.IsFeatured) {
		return
	}
	h.listWith(w, r, f)
}

func (h *Handler) hierarchy(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid category id")
		return
	}
	cats, err := h.service.Hierarchy(r.Context(), id)
	if err != nil {
		h.respondError(w, "get category hierarchy", err)
		return
	}
	httpx.JSON(w, http.StatusOK, cats)
}

func (h *Handler) countSubcategories(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid category id")
		return
	}
	count, err := h.service.CountChildren(r.Context(), id)
	if err != nil {
		h.respondError(w, "count subcategories", err)
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

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Show)
}

func (h *Handler) hide(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Hide)
}

func (h *Handler) feature(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Feature)
}

func (h *Handler) unfeature(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Unfeature)
}

func (h *Handler) updateProductCount(w http.ResponseWriter, r *http.Request) {
	h.patchInt(w, r, "productCount", h.service.UpdateProductCount)
}

func (h *Handler) updateDisplayOrder(w http.ResponseWriter, r *http.Request) {
	h.patchInt(w, r, "displayOrder", h.service.UpdateDisplayOrder)
}

func (h *Handler) updateTags(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid category id")
		return
	}
	cat, err := h.service.UpdateTags(r.Context(), id, r.URL.Query().Get("tags"))
	if err != nil {
		h.respondError(w, "update category tags", err)
		return
	}
	httpx.JSON(w, http.StatusOK, cat)
}

func (h *Handler) patch(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) (Category, error)) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid category id")
		return
	}
	cat, err := op(r.Context(), id)
	if err != nil {
		h.respondError(w, "patch category", err)
		return
	}
	httpx.JSON(w, http.StatusOK, cat)
}

// patchInt runs an int32-valued mutator whose value arrives as a query
// parameter.
func (h *Handler) patchInt(w http.ResponseWriter, r *http.Request, param string, op func(ctx context.Context, id int64, v int32) (Category, error)) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid category id")
		return
	}
	v, err := strconv.ParseInt(r.URL.Query().Get(param), 10, 32)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", param+" must be an integer")
		return
	}
	cat, err := op(r.Context(), id, int32(v))
	if err != nil {
		h.respondError(w, "patch category", err)
		return
	}
	httpx.JSON(w, http.StatusOK, cat)
}
