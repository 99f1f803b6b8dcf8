package customers

import "context"

// Filter holds the optional list criteria. A nil field is ignored.
type Filter struct {
	CompanyLike    *string
	ContactLike    *string
	City           *string
	Country        *string
	Phone          *string
	Active         *bool
	MinCreditLimit *float64
}

// Repository persists customers.
type Repository interface {
	List(ctx context.Context, f Filter) ([]Customer, error)
	Get(ctx context.Context, id int64) (Customer, error)
	GetByEmail(ctx context.Context, email string) (Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, c Customer) (Customer, error)
	Update(ctx context.Context, c Customer) (Customer, error)
	Delete(ctx context.Context, id int64) error
}
