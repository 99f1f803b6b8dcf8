package customers

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

// Handler serves the customer REST endpoints.
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
	customers, err := h.service.List(r.Context(), f)
	if err != nil {
		h.respondError(w, "list customers", err)
		return
	}
	if customers == nil {
		customers = []Customer{}
	}
	httpx.JSON(w, http.StatusOK, customers)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid customer id")
		return
	}
	customer, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "get customer", err)
		return
	}
	httpx.JSON(w, http.StatusOK, customer)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	customer, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondError(w, "create customer", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, customer)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid customer id")
		return
	}
	var req CustomerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	customer, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondError(w, "update customer", err)
		return
	}
	httpx.JSON(w, http.StatusOK, customer)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid customer id")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "delete customer", err)
		return
	}
	httpx.Message(w, http.StatusOK, "Customer deleted successfully")
}

func (h *Handler) getByEmail(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.GetByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		h.respondError(w, "get customer by email", err)
		return
	}
	httpx.JSON(w, http.StatusOK, customer)
}

func (h *Handler) searchByCompany(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	h.listWith(w, r, Filter{CompanyLike: &name})
}

func (h *Handler) searchByContact(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	h.listWith(w, r, Filter{ContactLike: &name})
}

func (h *Handler) byCity(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	h.listWith(w, r, Filter{City: &city})
}

func (h *Handler) byCountry(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	h.listWith(w, r, Filter{Country: &country})
}

func (h *Handler) active(w http.ResponseWriter, r *http.Request) {
	active := true
	h.listWith(w, r, Filter{Active: &active})
}

func (h *Handler) inactive(w http.ResponseWriter, r *http.Request) {
	active := false
	h.listWith(w, r, Filter{Active: &active})
}

func (h *Handler) byCreditLimit(w http.ResponseWriter, r *http.Request) {
	min, err := strconv.ParseFloat(r.URL.Query().Get("min"), 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "min must be a number")
		return
	}
	h.listWith(w, r, Filter{MinCreditLimit: &min})
}

func (h *Handler) byPhone(w http.ResponseWriter, r *http.Request) {
	phone := chi.URLParam(r, "phone")
	h.listWith(w, r, Filter{Phone: &phone})
}

func (h *Handler) filter(w http.ResponseWriter, r *http.Request) {
	active, err := strconv.ParseBool(r.URL.Query().Get("active"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "active must be a boolean")
		return
	}
	country := r.URL.Query().Get("country")
	h.listWith(w, r, Filter{Active: &active, Country: &country})
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Activate)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Deactivate)
}

func (h *Handler) patch(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) (Customer, error)) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid customer id")
		return
	}
	customer, err := op(r.Context(), id)
	if err != nil {
		h.respondError(w, "patch customer", err)
		return
	}
	httpx.JSON(w, http.StatusOK, customer)
}
