package addresses

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

// Handler serves the address REST endpoints.
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
	addresses, err := h.service.List(r.Context(), f)
	if err != nil {
		h.respondError(w, "list addresses", err)
		return
	}
	if addresses == nil {
		addresses = []Address{}
	}
	httpx.JSON(w, http.StatusOK, addresses)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid address id")
		return
	}
	address, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "get address", err)
		return
	}
	httpx.JSON(w, http.StatusOK, address)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req AddressRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	address, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondError(w, "create address", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, address)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid address id")
		return
	}
	var req AddressRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	address, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondError(w, "update address", err)
		return
	}
	httpx.JSON(w, http.StatusOK, address)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid address id")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "delete address", err)
		return
	}
	httpx.Message(w, http.StatusOK, "Address deleted successfully")
}

func (h *Handler) searchByStreet(w http.ResponseWriter, r *http.Request) {
	street := r.URL.Query().Get("street")
	h.listWith(w, r, Filter{StreetLike: &street})
}

func (h *Handler) byCity(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	h.listWith(w, r, Filter{City: &city})
}

func (h *Handler) searchByCity(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	h.listWith(w, r, Filter{CityLike: &city})
}

func (h *Handler) byState(w http.ResponseWriter, r *http.Request) {
	state := chi.URLParam(r, "state")
	h.listWith(w, r, Filter{State: &state})
}

func (h *Handler) byCountry(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	h.listWith(w, r, Filter{Country: &country})
}

func (h *Handler) searchByCountry(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	h.listWith(w, r, Filter{CountryLike: &country})
}

func (h *Handler) byPostalCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "postalCode")
	h.listWith(w, r, Filter{PostalCode: &code})
}

func (h *Handler) byPostalCodePattern(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("pattern")
	h.listWith(w, r, Filter{PostalCodePattern: &pattern})
}

func (h *Handler) byType(w http.ResponseWriter, r *http.Request) {
	addressType := chi.URLParam(r, "type")
	h.listWith(w, r, Filter{AddressType: &addressType})
}

func (h *Handler) active(w http.ResponseWriter, r *http.Request) {
	active := true
	h.listWith(w, r, Filter{Active: &active})
}

func (h *Handler) inactive(w http.ResponseWriter, r *http.Request) {
	active := false
	h.listWith(w, r, Filter{Active: &active})
}

func (h *Handler) primary(w http.ResponseWriter, r *http.Request) {
	primary := true
	h.listWith(w, r, Filter{IsPrimary: &primary})
}

func (h *Handler) nonPrimary(w http.ResponseWriter, r *http.Request) {
	primary := false
	h.listWith(w, r, Filter{IsPrimary: &primary})
}

func (h *Handler) filterCityCountry(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	country := r.URL.Query().Get("country")
	h.listWith(w, r, Filter{City: &city, Country: &country})
}

func (h *Handler) filterStateCountry(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	country := r.URL.Query().Get("country")
	h.listWith(w, r, Filter{State: &state, Country: &country})
}

func (h *Handler) filterActiveCountry(w http.ResponseWriter, r *http.Request) {
	active, err := strconv.ParseBool(r.URL.Query().Get("active"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "active must be a boolean")
		return
	}
	country := r.URL.Query().Get("country")
	h.listWith(w, r, Filter{Active: &active, Country: &country})
}

func (h *Handler) filterActiveCity(w http.ResponseWriter, r *http.Request) {
	active, err := strconv.ParseBool(r.URL.Query().Get("active"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "active must be a boolean")
		return
	}
	city := r.URL.Query().Get("city")
	h.listWith(w, r, Filter{Active: &active, City: &city})
}

func (h *Handler) filterTypeActive(w http.ResponseWriter, r *http.Request) {
	active, err := strconv.ParseBool(r.URL.Query().Get("active"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "active must be a boolean")
		return
	}
	addressType := r.URL.Query().Get("type")
	h.listWith(w, r, Filter{AddressType: &addressType, Active: &active})
}

func (h *Handler) withinCoordinates(w http.ResponseWriter, r *http.Request) {
	parse := func(name string) (float64, error) {
		return strconv.ParseFloat(r.URL.Query().Get(name), 64)
	}
	minLat, err1 := parse("minLat")
	maxLat, err2 := parse("maxLat")
	minLng, err3 := parse("minLng")
	maxLng, err4 := parse("maxLng")
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "minLat, maxLat, minLng and maxLng must be numbers")
		return
	}
	h.listWith(w, r, Filter{MinLat: &minLat, MaxLat: &maxLat, MinLng: &minLng, MaxLng: &maxLng})
}

func (h *Handler) searchByAdditionalInfo(w http.ResponseWriter, r *http.Request) {
	info := r.URL.Query().Get("info")
	h.listWith(w, r, Filter{AdditionalInfoLike: &info})
}

func (h *Handler) orderedByCity(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{OrderBy: OrderByCity})
}

func (h *Handler) orderedByCountryCity(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{OrderBy: OrderByCountryCity})
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Activate)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Deactivate)
}

func (h *Handler) setPrimary(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.SetPrimary)
}

func (h *Handler) setNonPrimary(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.SetNonPrimary)
}

func (h *Handler) updateCoordinates(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid address id")
		return
	}
	var req CoordinatesRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	address, err := h.service.UpdateCoordinates(r.Context(), id, req.Latitude, req.Longitude)
	if err != nil {
		h.respondError(w, "update address coordinates", err)
		return
	}
	httpx.JSON(w, http.StatusOK, address)
}

func (h *Handler) patch(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) (Address, error)) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid address id")
		return
	}
	address, err := op(r.Context(), id)
	if err != nil {
		h.respondError(w, "patch address", err)
		return
	}
	httpx.JSON(w, http.StatusOK, address)
}
