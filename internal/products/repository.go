package products

import (
	"context"
	"time"
)

// Order selects the sort applied to product listings.
type Order string

const (
	OrderByID        Order = ""
	OrderByName      Order = "name"
	OrderByPriceAsc  Order = "price-asc"
	OrderByPriceDesc Order = "price-desc"
	OrderByCreated   Order = "creation-date"
	OrderByRating    Order = "rating"
	OrderBySales     Order = "sales-count"
	OrderByViews     Order = "view-count"
	OrderByStock     Order = "stock-quantity"
)

// Filter narrows product listings. Nil criteria are ignored. SearchTerm
// matches name, description, brand or tags.
type Filter struct {
	NameLike         *string
	DescriptionLike  *string
	SearchTerm       *string
	Brand            *string
	BrandLike        *string
	Model            *string
	CategoryID       *int64
	Status           *Status
	Active           *bool
	IsFeatured       *bool
	IsDigital        *bool
	RequiresShipping *bool
	IsTaxable        *bool
	TrackInventory   *bool
	Color            *string
	Size             *string
	MinPrice         *float64
	MaxPrice         *float64
	PriceAbove       *float64
	PriceBelow       *float64
	OnSale           bool
	StockAbove       *int32
	StockBelow       *int32
	OutOfStock       bool
	LowStock         bool
	RatingAbove      *float64
	MinRating        *float64
	MaxRating        *float64
	MinReviews       *int32
	MinSales         *int32
	MinViews         *int32
	CreatedAfter     *time.Time
	PublishedAfter   *time.Time
	ModifiedAfter    *time.Time
	Tag              *string
	MetaTitleLike    *string
	OrderBy          Order
}

// Repository is the persistence port for products. Patch applies mutate to
// one product atomically, so concurrent counter and stock mutators cannot
// lose updates to each other.
type Repository interface {
	List(ctx context.Context, f Filter) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	GetByName(ctx context.Context, name string) (Product, error)
	GetBySKU(ctx context.Context, sku string) (Product, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
	CountByBrand(ctx context.Context, brand string) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, p Product) (Product, error)
	Patch(ctx context.Context, id int64, mutate func(*Product) error) (Product, error)
	Delete(ctx context.Context, id int64) error
}
