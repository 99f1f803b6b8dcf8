package categories

// CategoryRequest is the create/update payload for a category.
type CategoryRequest struct {
	Name             string  `json:"name" validate:"required,min=2,max=100"`
	Description      *string `json:"description" validate:"omitempty,max=500"`
	CategoryCode     *string `json:"categoryCode" validate:"omitempty,categorycode"`
	ParentCategoryID *int64  `json:"parentCategoryId"`
	DisplayOrder     *int32  `json:"displayOrder" validate:"omitempty,min=0"`
	ImageURL         *string `json:"imageUrl" validate:"omitempty,max=200"`
	Icon             *string `json:"icon" validate:"omitempty,max=200"`
	Color            *string `json:"color" validate:"omitempty,max=50"`
	ProductCount     *int32  `json:"productCount" validate:"omitempty,min=0"`
	IsFeatured       *bool   `json:"isFeatured"`
	IsVisible        *bool   `json:"isVisible"`
	MetaTitle        *string `json:"metaTitle" validate:"omitempty,max=200"`
	MetaDescription  *string `json:"metaDescription" validate:"omitempty,max=500"`
	Tags             *string `json:"tags" validate:"omitempty,max=200"`
	Active           *bool   `json:"active"`
}

// toModel converts the request into a Category, applying the defaults of
// an unsaved category. IsVisible and Active default to true, IsFeatured
// to false.
func (req CategoryRequest) toModel() Category {
	c := Category{
		Name:             req.Name,
		Description:      req.Description,
		CategoryCode:     req.CategoryCode,
		ParentCategoryID: req.ParentCategoryID,
		ImageURL:         req.ImageURL,
		Icon:             req.Icon,
		Color:            req.Color,
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
		Tags:             req.Tags,
		IsVisible:        true,
		Active:           true,
	}
	if req.DisplayOrder != nil {
		c.DisplayOrder = *req.DisplayOrder
	}
	if req.ProductCount != nil {
		c.ProductCount = *req.ProductCount
	}
	if req.IsFeatured != nil {
		c.IsFeatured = *req.IsFeatured
	}
	if req.IsVisible != nil {
		c.IsVisible = *req.IsVisible
	}
	if req.Active != nil {
		c.Active = *req.Active
	}
	return c
}
