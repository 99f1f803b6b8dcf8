package departments

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/atlas-backoffice/atlas-backoffice/internal/platform/httpx"
	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

// Handler serves the department REST endpoints.
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

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{})
}

func (h *Handler) listWith(w http.ResponseWriter, r *http.Request, f Filter) {
	departments, err := h.service.List(r.Context(), f)
	if err != nil {
		h.respondError(w, "list departments", err)
		return
	}
	if departments == nil {
		departments = []Department{}
	}
	httpx.JSON(w, http.StatusOK, departments)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid department id")
		return
	}
	department, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "get department", err)
		return
	}
	httpx.JSON(w, http.StatusOK, department)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req DepartmentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	department, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondError(w, "create department", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, department)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid department id")
		return
	}
	var req DepartmentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	department, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondError(w, "update department", err)
		return
	}
	httpx.JSON(w, http.StatusOK, department)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid department id")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "delete department", err)
		return
	}
	httpx.Message(w, http.StatusOK, "Department deleted successfully")
}

func (h *Handler) getByName(w http.ResponseWriter, r *http.Request) {
	department, err := h.service.GetByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.respondError(w, "get department by name", err)
		return
	}
	httpx.JSON(w, http.StatusOK, department)
}

func (h *Handler) searchByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	h.listWith(w, r, Filter{NameLike: &name})
}

func (h *Handler) searchByManager(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	h.listWith(w, r, Filter{ManagerLike: &name})
}

func (h *Handler) searchByDescription(w http.ResponseWriter, r *http.Request) {
	description := r.URL.Query().Get("description")
	h.listWith(w, r, Filter{DescriptionLike: &description})
}

func (h *Handler) byLocation(w http.ResponseWriter, r *http.Request) {
	location := chi.URLParam(r, "location")
	h.listWith(w, r, Filter{Location: &location})
}

func (h *Handler) active(w http.ResponseWriter, r *http.Request) {
	active := true
	h.listWith(w, r, Filter{Active: &active})
}

func (h *Handler) inactive(w http.ResponseWriter, r *http.Request) {
	active := false
	h.listWith(w, r, Filter{Active: &active})
}

func (h *Handler) byBudget(w http.ResponseWriter, r *http.Request) {
	min, err := strconv.ParseFloat(r.URL.Query().Get("min"), 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "min must be a number")
		return
	}
	h.listWith(w, r, Filter{MinBudget: &min})
}

func (h *Handler) byEmployeeCount(w http.ResponseWriter, r *http.Request) {
	min, err := strconv.ParseInt(r.URL.Query().Get("min"), 10, 32)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "min must be an integer")
		return
	}
	count := int32(min)
	h.listWith(w, r, Filter{MinEmployees: &count})
}

func (h *Handler) byManagerEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	h.listWith(w, r, Filter{ManagerEmail: &email})
}

func (h *Handler) filter(w http.ResponseWriter, r *http.Request) {
	active, err := strconv.ParseBool(r.URL.Query().Get("active"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "active must be a boolean")
		return
	}
	location := r.URL.Query().Get("location")
	h.listWith(w, r, Filter{Active: &active, Location: &location})
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Activate)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Deactivate)
}

// updateBudget takes a bare JSON number as its body, matching the public
// API contract.
func (h *Handler) updateBudget(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid department id")
		return
	}
	var budget float64
	if err := httpx.DecodeJSON(r, &budget); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	department, err := h.service.UpdateBudget(r.Context(), id, budget)
	if err != nil {
		h.respondError(w, "update department budget", err)
		return
	}
	httpx.JSON(w, http.StatusOK, department)
}

func (h *Handler) updateEmployeeCount(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid department id")
		return
	}
	var count int32
	if err := httpx.DecodeJSON(r, &count); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	department, err := h.service.UpdateEmployeeCount(r.Context(), id, count)
	if err != nil {
		h.respondError(w, "update department employee count", err)
		return
	}
	httpx.JSON(w, http.StatusOK, department)
}

func (h *Handler) patch(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) (Department, error)) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid department id")
		return
	}
	department, err := op(r.Context(), id)
	if err != nil {
		h.respondError(w, "patch department", err)
		return
	}
	httpx.JSON(w, http.StatusOK, department)
}
