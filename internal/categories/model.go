package categories

import "time"

// Category is a product category. Categories form a tree through
// ParentCategoryID; nil means a root category.
type Category struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Description      *string   `json:"description"`
	CategoryCode     *string   `json:"categoryCode"`
	ParentCategoryID *int64    `json:"parentCategoryId"`
	DisplayOrder     int32     `json:"displayOrder"`
	ImageURL         *string   `json:"imageUrl"`
	Icon             *string   `json:"icon"`
	Color            *string   `json:"color"`
	ProductCount     int32     `json:"productCount"`
	IsFeatured       bool      `json:"isFeatured"`
	IsVisible        bool      `json:"isVisible"`
	MetaTitle        *string   `json:"metaTitle"`
	MetaDescription  *string   `json:"metaDescription"`
	Tags             *string   `json:"tags"`
	CreatedDate      time.Time `json:"createdDate"`
	LastModifiedDate time.Time `json:"lastModifiedDate"`
	Active           bool      `json:"active"`
}
