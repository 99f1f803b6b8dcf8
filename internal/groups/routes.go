package groups

import "github.com/go-chi/chi/v5"

// MountRoutes registers group routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)

	r.Get("/name/{name}", h.getByName)
	r.Get("/search/name", h.searchByName)
	r.Get("/search/description", h.searchByDescription)
	r.Get("/search/type", h.searchByType)
	r.Get("/search/owner", h.searchByOwner)
	r.Get("/type/{type}", h.byType)
	r.Get("/owner/{ownerName}", h.byOwner)
	r.Get("/owner-email/{email}", h.byOwnerEmail)
	r.Get("/active", h.active)
	r.Get("/inactive", h.inactive)
	r.Get("/public", h.public)
	r.Get("/private", h.private)
	r.Get("/requires-approval", h.requiresApproval)
	r.Get("/no-approval", h.noApproval)
	r.Get("/filter/active-public", h.filterActivePublic)
	r.Get("/filter/type-active", h.filterTypeActive)
	r.Get("/filter/owner-active", h.filterOwnerActive)
	r.Get("/members/greater-than", h.membersGreaterThan)
	r.Get("/members/less-than", h.membersLessThan)
	r.Get("/available-capacity", h.availableCapacity)
	r.Get("/max-members/greater-than", h.maxMembersGreaterThan)
	r.Get("/created-after", h.createdAfter)
	r.Get("/recent-activity", h.recentActivity)
	r.Get("/tag/{tag}", h.byTag)
	r.Get("/ordered/name", h.orderedByName)
	r.Get("/ordered/creation-date", h.orderedByCreationDate)
	r.Get("/ordered/member-count", h.orderedByMemberCount)
	r.Get("/ordered/activity", h.orderedByActivity)
	r.Get("/criteria", h.criteria)

	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Put("/{id}/activate", h.activate)
	r.Put("/{id}/deactivate", h.deactivate)
	r.Put("/{id}/make-public", h.makePublic)
	r.Put("/{id}/make-private", h.makePrivate)
	r.Put("/{id}/member-count", h.updateMemberCount)
	r.Put("/{id}/add-member", h.addMember)
	r.Put("/{id}/remove-member", h.removeMember)
	r.Put("/{id}/tags", h.updateTags)
	r.Put("/{id}/update-activity", h.updateActivity)
}
