package categories

import (
	"context"
	"time"
)

// Order selects the sort applied to category listings.
type Order string

const (
	OrderByID           Order = ""
	OrderByDisplayOrder Order = "display-order"
	OrderByName         Order = "name"
	OrderByProductCount Order = "product-count"
	OrderByCreated      Order = "creation-date"
	OrderByModified     Order = "modification-date"
)

// Filter narrows category listings. Nil criteria are ignored.
type Filter struct {
	NameLike         *string
	DescriptionLike  *string
	ParentID         *int64
	RootOnly         bool
	Active           *bool
	IsVisible        *bool
	IsFeatured       *bool
	MinProducts      *int32
	MaxProductsBelow *int32
	NoProducts       bool
	CreatedAfter     *time.Time
	ModifiedAfter    *time.Time
	Tag              *string
	MetaTitleLike    *string
	Color            *string
	OrderBy          Order
}

// Repository is the persistence port for categories.
type Repository interface {
	List(ctx context.Context, f Filter) ([]Category, error)
	Get(ctx context.Context, id int64) (Category, error)
	GetByName(ctx context.Context, name string) (Category, error)
	GetByCode(ctx context.Context, code string) (Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	CountChildren(ctx context.Context, parentID int64) (int64, error)
	Create(ctx context.Context, c Category) (Category, error)
	Update(ctx context.Context, c Category) (Category, error)
	Delete(ctx context.Context, id int64) error
}
