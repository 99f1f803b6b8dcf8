package groups

// GroupRequest is the payload for create and full update.
type GroupRequest struct {
	Name               string  `json:"name" validate:"required,min=2,max=100"`
	Description        *string `json:"description" validate:"omitempty,max=500"`
	GroupType          *string `json:"groupType" validate:"omitempty,max=50"`
	OwnerName          string  `json:"ownerName" validate:"required,min=2,max=100"`
	OwnerEmail         *string `json:"ownerEmail" validate:"omitempty,email"`
	MaxMembers         *int32  `json:"maxMembers" validate:"omitempty,gte=0"`
	CurrentMemberCount *int32  `json:"currentMemberCount" validate:"omitempty,gte=0"`
	IsPublic           *bool   `json:"isPublic"`
	RequiresApproval   *bool   `json:"requiresApproval"`
	Tags               *string `json:"tags" validate:"omitempty,max=200"`
	Active             *bool   `json:"active"`
}

// MemberCountRequest carries the new member count for the patch endpoint.
type MemberCountRequest struct {
	MemberCount int32 `json:"memberCount"`
}

// TagsRequest carries the new tags string for the patch endpoint.
type TagsRequest struct {
	Tags string `json:"tags"`
}

func (r GroupRequest) toModel() Group {
	g := Group{
		Name:        r.Name,
		Description: r.Description,
		GroupType:   r.GroupType,
		OwnerName:   r.OwnerName,
		OwnerEmail:  r.OwnerEmail,
		MaxMembers:  r.MaxMembers,
		Tags:        r.Tags,
		IsPublic:    true,
		Active:      true,
	}
	if r.CurrentMemberCount != nil {
		g.CurrentMemberCount = *r.CurrentMemberCount
	}
	if r.IsPublic != nil {
		g.IsPublic = *r.IsPublic
	}
	if r.RequiresApproval != nil {
		g.RequiresApproval = *r.RequiresApproval
	}
	if r.Active != nil {
		g.Active = *r.Active
	}
	return g
}
