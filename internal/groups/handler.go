package groups

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

// Handler serves the group REST endpoints.
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
	groups, err := h.service.List(r.Context(), f)
	if err != nil {
		h.respondError(w, "list groups", err)
		return
	}
	if groups == nil {
		groups = []Group{}
	}
	httpx.JSON(w, http.StatusOK, groups)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid group id")
		return
	}
	group, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "get group", err)
		return
	}
	httpx.JSON(w, http.StatusOK, group)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req GroupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	group, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondError(w, "create group", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, group)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid group id")
		return
	}
	var req GroupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	group, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondError(w, "update group", err)
		return
	}
	httpx.JSON(w, http.StatusOK, group)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid group id")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "delete group", err)
		return
	}
	httpx.Message(w, http.StatusOK, "Group deleted successfully")
}

func (h *Handler) getByName(w http.ResponseWriter, r *http.Request) {
	group, err := h.service.GetByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.respondError(w, "get group by name", err)
		return
	}
	httpx.JSON(w, http.StatusOK, group)
}

func (h *Handler) searchByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	h.listWith(w, r, Filter{NameLike: &name})
}

func (h *Handler) searchByDescription(w http.ResponseWriter, r *http.Request) {
	description := r.URL.Query().Get("description")
	h.listWith(w, r, Filter{DescriptionLike: &description})
}

func (h *Handler) byType(w http.ResponseWriter, r *http.Request) {
	groupType := chi.URLParam(r, "type")
	h.listWith(w, r, Filter{GroupType: &groupType})
}

func (h *Handler) searchByType(w http.ResponseWriter, r *http.Request) {
	groupType := r.URL.Query().Get("type")
	h.listWith(w, r, Filter{GroupTypeLike: &groupType})
}

func (h *Handler) byOwner(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "ownerName")
	h.listWith(w, r, Filter{OwnerName: &owner})
}

func (h *Handler) searchByOwner(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")
	h.listWith(w, r, Filter{OwnerLike: &owner})
}

func (h *Handler) byOwnerEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	h.listWith(w, r, Filter{OwnerEmail: &email})
}

func (h *Handler) active(w http.ResponseWriter, r *http.Request) {
	active := true
	h.listWith(w, r, Filter{Active: &active})
}

func (h *Handler) inactive(w http.ResponseWriter, r *http.Request) {
	active := false
	h.listWith(w, r, Filter{Active: &active})
}

func (h *Handler) public(w http.ResponseWriter, r *http.Request) {
	isPublic := true
	h.listWith(w, r, Filter{IsPublic: &isPublic})
}

func (h *Handler) private(w http.ResponseWriter, r *http.Request) {
	isPublic := false
	h.listWith(w, r, Filter{IsPublic: &isPublic})
}

func (h *Handler) requiresApproval(w http.ResponseWriter, r *http.Request) {
	approval := true
	h.listWith(w, r, Filter{RequiresApproval: &approval})
}

func (h *Handler) noApproval(w http.ResponseWriter, r *http.Request) {
	approval := false
	h.listWith(w, r, Filter{RequiresApproval: &approval})
}

func (h *Handler) filterActivePublic(w http.ResponseWriter, r *http.Request) {
	active, err1 := strconv.ParseBool(r.URL.Query().Get("active"))
	isPublic, err2 := strconv.ParseBool(r.URL.Query().Get("publicGroup"))
	if err1 != nil || err2 != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "active and publicGroup must be booleans")
		return
	}
	h.listWith(w, r, Filter{Active: &active, IsPublic: &isPublic})
}

func (h *Handler) filterTypeActive(w http.ResponseWriter, r *http.Request) {
	active, err := strconv.ParseBool(r.URL.Query().Get("active"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "active must be a boolean")
		return
	}
	groupType := r.URL.Query().Get("type")
	h.listWith(w, r, Filter{GroupType: &groupType, Active: &active})
}

func (h *Handler) filterOwnerActive(w http.ResponseWriter, r *http.Request) {
	active, err := strconv.ParseBool(r.URL.Query().Get("active"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "active must be a boolean")
		return
	}
	owner := r.URL.Query().Get("owner")
	h.listWith(w, r, Filter{OwnerName: &owner, Active: &active})
}

func (h *Handler) membersGreaterThan(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.ParseInt(r.URL.Query().Get("count"), 10, 32)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "count must be an integer")
		return
	}
	c := int32(count)
	h.listWith(w, r, Filter{MinMembers: &c})
}

func (h *Handler) membersLessThan(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.ParseInt(r.URL.Query().Get("count"), 10, 32)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "count must be an integer")
		return
	}
	c := int32(count)
	h.listWith(w, r, Filter{MaxMembersBelow: &c})
}

func (h *Handler) availableCapacity(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{HasCapacity: true})
}

func (h *Handler) maxMembersGreaterThan(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.ParseInt(r.URL.Query().Get("count"), 10, 32)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "count must be an integer")
		return
	}
	c := int32(count)
	h.listWith(w, r, Filter{MinMaxMembers: &c})
}

func (h *Handler) createdAfter(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r, "date")
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "date must use the yyyy-MM-dd format")
		return
	}
	h.listWith(w, r, Filter{CreatedAfter: &date})
}

func (h *Handler) recentActivity(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r, "date")
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "date must use the yyyy-MM-dd format")
		return
	}
	h.listWith(w, r, Filter{ActiveAfter: &date})
}

func (h *Handler) byTag(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	h.listWith(w, r, Filter{Tag: &tag})
}

func (h *Handler) orderedByName(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{OrderBy: OrderByName})
}

func (h *Handler) orderedByCreationDate(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{OrderBy: OrderByCreated})
}

func (h *Handler) orderedByMemberCount(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{OrderBy: OrderByMemberCount})
}

func (h *Handler) orderedByActivity(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, Filter{OrderBy: OrderByActivity})
}

// criteria combines the optional type, publicGroup and active parameters.
func (h *Handler) criteria(w http.ResponseWriter, r *http.Request) {
	var f Filter
	if v := r.URL.Query().Get("type"); v != "" {
		f.GroupType = &v
	}
	if v := r.URL.Query().Get("publicGroup"); v != "" {
		isPublic, err := strconv.ParseBool(v)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "publicGroup must be a boolean")
			return
		}
		f.IsPublic = &isPublic
	}
	if v := r.URL.Query().Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "active must be a boolean")
			return
		}
		f.Active = &active
	}
	h.listWith(w, r, f)
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Activate)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.Deactivate)
}

func (h *Handler) makePublic(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.MakePublic)
}

func (h *Handler) makePrivate(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.MakePrivate)
}

func (h *Handler) updateMemberCount(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid group id")
		return
	}
	var req MemberCountRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	group, err := h.service.UpdateMemberCount(r.Context(), id, req.MemberCount)
	if err != nil {
		h.respondError(w, "update group member count", err)
		return
	}
	httpx.JSON(w, http.StatusOK, group)
}

func (h *Handler) addMember(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.AddMember)
}

func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.RemoveMember)
}

func (h *Handler) updateTags(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid group id")
		return
	}
	var req TagsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	group, err := h.service.UpdateTags(r.Context(), id, req.Tags)
	if err != nil {
		h.respondError(w, "update group tags", err)
		return
	}
	httpx.JSON(w, http.StatusOK, group)
}

func (h *Handler) updateActivity(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, h.service.TouchActivity)
}

func (h *Handler) patch(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) (Group, error)) {
	id, err := parseID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid group id")
		return
	}
	group, err := op(r.Context(), id)
	if err != nil {
		h.respondError(w, "patch group", err)
		return
	}
	httpx.JSON(w, http.StatusOK, group)
}
