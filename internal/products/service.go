package products

import (
	"context"
	"fmt"
	"time"

	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

// RecountEnqueuer schedules a product-count reconciliation for one category.
// Enqueue failures must not fail the product mutation, so implementations
// report them out of band (the server adapter logs them).
type RecountEnqueuer func(ctx context.Context, categoryID int64)

// Service provides business logic for product operations, including the
// stock-driven status transitions.
type Service struct {
	repo    Repository
	recount RecountEnqueuer
	now     func() time.Time
}

// NewService constructs a product service. recount may be nil when no job
// queue is wired (tests, category recounts handled by cron alone).
func NewService(repo Repository, recount RecountEnqueuer) *Service {
	return &Service{repo: repo, recount: recount, now: time.Now}
}

// enqueueRecount schedules a recount for the category, if any.
func (s *Service) enqueueRecount(ctx context.Context, categoryID *int64) {
	if s.recount == nil || categoryID == nil {
		return
	}
	s.recount(ctx, *categoryID)
}

func sameCategory(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// List returns products matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Product, error) {
	return s.repo.List(ctx, f)
}

// Get retrieves a product by id.
func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	return s.repo.Get(ctx, id)
}

// GetByName retrieves a product by its unique name.
func (s *Service) GetByName(ctx context.Context, name string) (Product, error) {
	return s.repo.GetByName(ctx, name)
}

// GetBySKU retrieves a product by its unique SKU.
func (s *Service) GetBySKU(ctx context.Context, sku string) (Product, error) {
	return s.repo.GetBySKU(ctx, sku)
}

// CountByCategory counts products referencing a category.
func (s *Service) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	return s.repo.CountByCategory(ctx, categoryID)
}

// CountByBrand counts products of a brand.
func (s *Service) CountByBrand(ctx context.Context, brand string) (int64, error) {
	return s.repo.CountByBrand(ctx, brand)
}

// CountByStatus counts products in a status.
func (s *Service) CountByStatus(ctx context.Context, status Status) (int64, error) {
	return s.repo.CountByStatus(ctx, status)
}

// checkUnique enforces name and SKU uniqueness. current is nil on create.
func (s *Service) checkUnique(ctx context.Context, req ProductRequest, current *Product) error {
	if current == nil || current.Name != req.Name {
		exists, err := s.repo.ExistsByName(ctx, req.Name)
		if err != nil {
			return fmt.Errorf("check product name: %w", err)
		}
		if exists {
			return shared.Conflictf("Product name already exists: %s", req.Name)
		}
	}
	if req.SKU != nil {
		skuChanged := current == nil || current.SKU == nil || *current.SKU != *req.SKU
		if skuChanged {
			exists, err := s.repo.ExistsBySKU(ctx, *req.SKU)
			if err != nil {
				return fmt.Errorf("check product sku: %w", err)
			}
			if exists {
				return shared.Conflictf("SKU already exists: %s", *req.SKU)
			}
		}
	}
	return nil
}

// Create validates and stores a new product.
func (s *Service) Create(ctx context.Context, req ProductRequest) (Product, error) {
	if err := shared.Validate(req); err != nil {
		return Product{}, err
	}
	if err := s.checkUnique(ctx, req, nil); err != nil {
		return Product{}, err
	}
	p := req.toModel()
	now := s.now()
	p.CreatedDate = now
	p.LastModifiedDate = now
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return Product{}, err
	}
	s.enqueueRecount(ctx, created.CategoryID)
	return created, nil
}

// Update replaces every mutable field of an existing product. Uniqueness
// checks re-run only for changed fields; the creation and published dates
// are preserved.
func (s *Service) Update(ctx context.Context, id int64, req ProductRequest) (Product, error) {
	if err := shared.Validate(req); err != nil {
		return Product{}, err
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if err := s.checkUnique(ctx, req, &current); err != nil {
		return Product{}, err
	}
	next := req.toModel()
	next.ID = id
	next.CreatedDate = current.CreatedDate
	next.LastModifiedDate = s.now()
	next.PublishedDate = current.PublishedDate
	if req.StockQuantity == nil {
		next.StockQuantity = current.StockQuantity
	}
	if req.MinStockLevel == nil {
		next.MinStockLevel = current.MinStockLevel
	}
	if req.IsFeatured == nil {
		next.IsFeatured = current.IsFeatured
	}
	if req.IsDigital == nil {
		next.IsDigital = current.IsDigital
	}
	if req.RequiresShipping == nil {
		next.RequiresShipping = current.RequiresShipping
	}
	if req.IsTaxable == nil {
		next.IsTaxable = current.IsTaxable
	}
	if req.TrackInventory == nil {
		next.TrackInventory = current.TrackInventory
	}
	if req.AllowBackorder == nil {
		next.AllowBackorder = current.AllowBackorder
	}
	if req.Rating == nil {
		next.Rating = current.Rating
	}
	if req.ReviewCount == nil {
		next.ReviewCount = current.ReviewCount
	}
	if req.ViewCount == nil {
		next.ViewCount = current.ViewCount
	}
	if req.SalesCount == nil {
		next.SalesCount = current.SalesCount
	}
	if req.Status == nil {
		next.Status = current.Status
	}
	if req.Active == nil {
		next.Active = current.Active
	}
	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		return Product{}, err
	}
	if !sameCategory(current.CategoryID, updated.CategoryID) {
		s.enqueueRecount(ctx, current.CategoryID)
		s.enqueueRecount(ctx, updated.CategoryID)
	}
	return updated, nil
}

// Delete removes a product by id and schedules a recount for its category.
func (s *Service) Delete(ctx context.Context, id int64) error {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.enqueueRecount(ctx, current.CategoryID)
	return nil
}

// Activate marks a product active.
func (s *Service) Activate(ctx context.Context, id int64) (Product, error) {
	return s.patch(ctx, id, func(p *Product) error {
		p.Active = true
		return nil
	})
}

// Deactivate marks a product inactive.
func (s *Service) Deactivate(ctx context.Context, id int64) (Product, error) {
	return s.patch(ctx, id, func(p *Product) error {
		p.Active = false
		return nil
	})
}

// Feature flags a product as featured.
func (s *Service) Feature(ctx context.Context, id int64) (Product, error) {
	return s.patch(ctx, id, func(p *Product) error {
		p.IsFeatured = true
		return nil
	})
}

// Unfeature clears the featured flag.
func (s *Service) Unfeature(ctx context.Context, id int64) (Product, error) {
	return s.patch(ctx, id, func(p *Product) error {
		p.IsFeatured = false
		return nil
	})
}

// UpdateStatus moves a product to the given status. The published date is
// stamped once, on the first transition to PUBLISHED.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status Status) (Product, error) {
	if !validStatus(status) {
		return Product{}, shared.Validationf("status must be one of DRAFT, PUBLISHED, ARCHIVED, OUT_OF_STOCK, DISCONTINUED")
	}
	return s.patch(ctx, id, func(p *Product) error {
		p.Status = status
		if status == StatusPublished && p.PublishedDate == nil {
			published := s.now()
			p.PublishedDate = &published
		}
		return nil
	})
}

func validStatus(status Status) bool {
	switch status {
	case StatusDraft, StatusPublished, StatusArchived, StatusOutOfStock, StatusDiscontinued:
		return true
	}
	return false
}

// UpdatePrice sets the price.
func (s *Service) UpdatePrice(ctx context.Context, id int64, price float64) (Product, error) {
	if price <= 0 {
		return Product{}, shared.Validationf("price must be greater than 0")
	}
	return s.patch(ctx, id, func(p *Product) error {
		p.Price = &price
		return nil
	})
}

// UpdateSalePrice sets the sale price.
func (s *Service) UpdateSalePrice(ctx context.Context, id int64, salePrice float64) (Product, error) {
	if salePrice < 0 {
		return Product{}, shared.Validationf("salePrice is below the allowed minimum")
	}
	return s.patch(ctx, id, func(p *Product) error {
		p.SalePrice = &salePrice
		return nil
	})
}

// UpdateStock sets the stock quantity. A quantity of zero moves the
// product to OUT_OF_STOCK; restocking an OUT_OF_STOCK product moves it
// back to PUBLISHED.
func (s *Service) UpdateStock(ctx context.Context, id int64, quantity int32) (Product, error) {
	if quantity < 0 {
		return Product{}, shared.Validationf("stockQuantity is below the allowed minimum")
	}
	return s.patch(ctx, id, func(p *Product) error {
		p.StockQuantity = quantity
		if quantity == 0 {
			p.Status = StatusOutOfStock
		} else if p.Status == StatusOutOfStock {
			p.Status = StatusPublished
		}
		return nil
	})
}

// UpdateRating sets the rating and review count.
func (s *Service) UpdateRating(ctx context.Context, id int64, rating float64, reviewCount int32) (Product, error) {
	if rating < 0 || rating > 5 {
		return Product{}, shared.Validationf("rating must be between 0 and 5")
	}
	if reviewCount < 0 {
		return Product{}, shared.Validationf("reviewCount is below the allowed minimum")
	}
	return s.patch(ctx, id, func(p *Product) error {
		p.Rating = rating
		p.ReviewCount = reviewCount
		return nil
	})
}

// UpdateTags replaces the tags string.
func (s *Service) UpdateTags(ctx context.Context, id int64, tags string) (Product, error) {
	return s.patch(ctx, id, func(p *Product) error {
		p.Tags = &tags
		return nil
	})
}

// IncrementViewCount bumps the view counter without touching the
// modification date.
func (s *Service) IncrementViewCount(ctx context.Context, id int64) (Product, error) {
	return s.increment(ctx, id, func(p *Product) {
		p.ViewCount++
	})
}

// IncrementSalesCount bumps the sales counter without touching the
// modification date.
func (s *Service) IncrementSalesCount(ctx context.Context, id int64) (Product, error) {
	return s.increment(ctx, id, func(p *Product) {
		p.SalesCount++
	})
}

// patch applies mutate atomically through the repository and refreshes
// lastModifiedDate. Going through Repository.Patch keeps read-modify-writes
// such as UpdateStock safe under concurrency.
func (s *Service) patch(ctx context.Context, id int64, mutate func(*Product) error) (Product, error) {
	return s.repo.Patch(ctx, id, func(p *Product) error {
		if err := mutate(p); err != nil {
			return err
		}
		p.LastModifiedDate = s.now()
		return nil
	})
}

// increment applies mutate without refreshing lastModifiedDate. Counter
// bumps are not considered edits.
func (s *Service) increment(ctx context.Context, id int64, mutate func(*Product)) (Product, error) {
	return s.repo.Patch(ctx, id, func(p *Product) error {
		mutate(p)
		return nil
	})
}
