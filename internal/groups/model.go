// Package groups implements the group vertical.
package groups

import "time"

// Group represents a membership group.
type Group struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        *string   `json:"description"`
	GroupType          *string   `json:"groupType"`
	OwnerName          string    `json:"ownerName"`
	OwnerEmail         *string   `json:"ownerEmail"`
	MaxMembers         *int32    `json:"maxMembers"`
	CurrentMemberCount int32     `json:"currentMemberCount"`
	IsPublic           bool      `json:"isPublic"`
	RequiresApproval   bool      `json:"requiresApproval"`
	Tags               *string   `json:"tags"`
	CreatedDate        time.Time `json:"createdDate"`
	LastActivityDate   time.Time `json:"lastActivityDate"`
	Active             bool      `json:"active"`
}
