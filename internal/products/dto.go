package products

// ProductRequest is the create/update payload for a product.
type ProductRequest struct {
	Name             string   `json:"name" validate:"required,min=2,max=200"`
	Description      *string  `json:"description" validate:"omitempty,max=1000"`
	LongDescription  *string  `json:"longDescription" validate:"omitempty,max=2000"`
	SKU              *string  `json:"sku" validate:"omitempty,sku"`
	Brand            *string  `json:"brand" validate:"omitempty,max=100"`
	Model            *string  `json:"model" validate:"omitempty,max=100"`
	Price            *float64 `json:"price" validate:"omitempty,gt=0"`
	Cost             *float64 `json:"cost" validate:"omitempty,gte=0"`
	SalePrice        *float64 `json:"salePrice" validate:"omitempty,gte=0"`
	StockQuantity    *int32   `json:"stockQuantity" validate:"omitempty,gte=0"`
	MinStockLevel    *int32   `json:"minStockLevel" validate:"omitempty,gte=0"`
	MaxStockLevel    *int32   `json:"maxStockLevel" validate:"omitempty,gte=0"`
	CategoryID       *int64   `json:"categoryId"`
	Weight           *float64 `json:"weight" validate:"omitempty,gte=0"`
	WeightUnit       *string  `json:"weightUnit" validate:"omitempty,max=50"`
	Dimensions       *string  `json:"dimensions" validate:"omitempty,max=100"`
	Color            *string  `json:"color" validate:"omitempty,max=50"`
	Size             *string  `json:"size" validate:"omitempty,max=50"`
	ImageURL         *string  `json:"imageUrl" validate:"omitempty,max=500"`
	ImageGallery     *string  `json:"imageGallery" validate:"omitempty,max=1000"`
	IsFeatured       *bool    `json:"isFeatured"`
	IsDigital        *bool    `json:"isDigital"`
	RequiresShipping *bool    `json:"requiresShipping"`
	IsTaxable        *bool    `json:"isTaxable"`
	TrackInventory   *bool    `json:"trackInventory"`
	AllowBackorder   *bool    `json:"allowBackorder"`
	Rating           *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount      *int32   `json:"reviewCount" validate:"omitempty,gte=0"`
	ViewCount        *int32   `json:"viewCount" validate:"omitempty,gte=0"`
	SalesCount       *int32   `json:"salesCount" validate:"omitempty,gte=0"`
	MetaTitle        *string  `json:"metaTitle" validate:"omitempty,max=200"`
	MetaDescription  *string  `json:"metaDescription" validate:"omitempty,max=500"`
	Tags             *string  `json:"tags" validate:"omitempty,max=200"`
	Status           *Status  `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED OUT_OF_STOCK DISCONTINUED"`
	Active           *bool    `json:"active"`
}

// toModel converts the request into a Product, applying the defaults of an
// unsaved product. Shipping, taxation and inventory tracking default to
// true, status to DRAFT.
func (req ProductRequest) toModel() Product {
	p := Product{
		Name:             req.Name,
		Description:      req.Description,
		LongDescription:  req.LongDescription,
		SKU:              req.SKU,
		Brand:            req.Brand,
		Model:            req.Model,
		Price:            req.Price,
		Cost:             req.Cost,
		SalePrice:        req.SalePrice,
		MaxStockLevel:    req.MaxStockLevel,
		CategoryID:       req.CategoryID,
		Weight:           req.Weight,
		WeightUnit:       req.WeightUnit,
		Dimensions:       req.Dimensions,
		Color:            req.Color,
		Size:             req.Size,
		ImageURL:         req.ImageURL,
		ImageGallery:     req.ImageGallery,
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
		Tags:             req.Tags,
		RequiresShipping: true,
		IsTaxable:        true,
		TrackInventory:   true,
		Status:           StatusDraft,
		Active:           true,
	}
	if req.StockQuantity != nil {
		p.StockQuantity = *req.StockQuantity
	}
	if req.MinStockLevel != nil {
		p.MinStockLevel = *req.MinStockLevel
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}
	if req.IsDigital != nil {
		p.IsDigital = *req.IsDigital
	}
	if req.RequiresShipping != nil {
		p.RequiresShipping = *req.RequiresShipping
	}
	if req.IsTaxable != nil {
		p.IsTaxable = *req.IsTaxable
	}
	if req.TrackInventory != nil {
		p.TrackInventory = *req.TrackInventory
	}
	if req.AllowBackorder != nil {
		p.AllowBackorder = *req.AllowBackorder
	}
	if req.Rating != nil {
		p.Rating = *req.Rating
	}
	if req.ReviewCount != nil {
		p.ReviewCount = *req.ReviewCount
	}
	if req.ViewCount != nil {
		p.ViewCount = *req.ViewCount
	}
	if req.SalesCount != nil {
		p.SalesCount = *req.SalesCount
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	return p
}
