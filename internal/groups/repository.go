package groups

import (
	"context"
	"time"
)

// Order selects the list ordering.
type Order string

// Supported list orderings.
const (
	OrderByID          Order = ""
	OrderByName        Order = "name"
	OrderByCreated     Order = "creation-date"
	OrderByMemberCount Order = "member-count"
	OrderByActivity    Order = "activity"
)

// Filter holds the optional list criteria. A nil field is ignored.
type Filter struct {
	NameLike         *string
	DescriptionLike  *string
	GroupType        *string
	GroupTypeLike    *string
	OwnerName        *string
	OwnerLike        *string
	OwnerEmail       *string
	Active           *bool
	IsPublic         *bool
	RequiresApproval *bool
	MinMembers       *int32
	MaxMembersBelow  *int32
	HasCapacity      bool
	MinMaxMembers    *int32
	CreatedAfter     *time.Time
	ActiveAfter      *time.Time
	Tag              *string
	OrderBy          Order
}

// Repository persists groups. Patch applies mutate to one group atomically,
// so concurrent member-count mutators cannot lose updates to each other.
type Repository interface {
	List(ctx context.Context, f Filter) ([]Group, error)
	Get(ctx context.Context, id int64) (Group, error)
	GetByName(ctx context.Context, name string) (Group, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, g Group) (Group, error)
	Update(ctx context.Context, g Group) (Group, error)
	Patch(ctx context.Context, id int64, mutate func(*Group) error) (Group, error)
	Delete(ctx context.Context, id int64) error
}
