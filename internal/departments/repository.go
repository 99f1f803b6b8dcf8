package departments

import "context"

// Filter holds the optional list criteria. A nil field is ignored, so one
// query shape serves every lookup the REST surface exposes.
type Filter struct {
	NameLike        *string
	ManagerLike     *string
	DescriptionLike *string
	Location        *string
	ManagerEmail    *string
	Active          *bool
	MinBudget       *float64
	MinEmployees    *int32
}

// Repository persists departments.
type Repository interface {
	List(ctx context.Context, f Filter) ([]Department, error)
	Get(ctx context.Context, id int64) (Department, error)
	GetByName(ctx context.Context, name string) (Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, d Department) (Department, error)
	Update(ctx context.Context, d Department) (Department, error)
	Delete(ctx context.Context, id int64) error
}
