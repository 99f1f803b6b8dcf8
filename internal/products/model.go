package products

import "time"

// Status is the lifecycle state of a product.
type Status string

const (
	StatusDraft        Status = "DRAFT"
	StatusPublished    Status = "PUBLISHED"
	StatusArchived     Status = "ARCHIVED"
	StatusOutOfStock   Status = "OUT_OF_STOCK"
	StatusDiscontinued Status = "DISCONTINUED"
)

// Product is a catalog item. CategoryID is a soft reference to a product
// category; no foreign key is enforced.
type Product struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Description      *string    `json:"description"`
	LongDescription  *string    `json:"longDescription"`
	SKU              *string    `json:"sku"`
	Brand            *string    `json:"brand"`
	Model            *string    `json:"model"`
	Price            *float64   `json:"price"`
	Cost             *float64   `json:"cost"`
	SalePrice        *float64   `json:"salePrice"`
	StockQuantity    int32      `json:"stockQuantity"`
	MinStockLevel    int32      `json:"minStockLevel"`
	MaxStockLevel    *int32     `json:"maxStockLevel"`
	CategoryID       *int64     `json:"categoryId"`
	Weight           *float64   `json:"weight"`
	WeightUnit       *string    `json:"weightUnit"`
	Dimensions       *string    `json:"dimensions"`
	Color            *string    `json:"color"`
	Size             *string    `json:"size"`
	ImageURL         *string    `json:"imageUrl"`
	ImageGallery     *string    `json:"imageGallery"`
	IsFeatured       bool       `json:"isFeatured"`
	IsDigital        bool       `json:"isDigital"`
	RequiresShipping bool       `json:"requiresShipping"`
	IsTaxable        bool       `json:"isTaxable"`
	TrackInventory   bool       `json:"trackInventory"`
	AllowBackorder   bool       `json:"allowBackorder"`
	Rating           float64    `json:"rating"`
	ReviewCount      int32      `json:"reviewCount"`
	ViewCount        int32      `json:"viewCount"`
	SalesCount       int32      `json:"salesCount"`
	MetaTitle        *string    `json:"metaTitle"`
	MetaDescription  *string    `json:"metaDescription"`
	Tags             *string    `json:"tags"`
	Status           Status     `json:"status"`
	CreatedDate      time.Time  `json:"createdDate"`
	LastModifiedDate time.Time  `json:"lastModifiedDate"`
	PublishedDate    *time.Time `json:"publishedDate"`
	Active           bool       `json:"active"`
}
