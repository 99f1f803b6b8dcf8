package categories

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/atlas-backoffice/atlas-backoffice/internal/platform/cache"
	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

// Service provides business logic for category operations. Single-category
// lookups and hierarchy reads go through the cache when one is configured;
// every write invalidates the touched entries.
type Service struct {
	repo  Repository
	cache *cache.Cache
	now   func() time.Time
}

// NewService constructs a category service. cache may be nil.
func NewService(repo Repository, c *cache.Cache) *Service {
	return &Service{repo: repo, cache: c, now: time.Now}
}

func categoryKey(id int64) string  { return fmt.Sprintf("category:%d", id) }
func hierarchyKey(id int64) string { return fmt.Sprintf("category:%d:hierarchy", id) }

// invalidate drops the cache entries affected by a write to the given
// category, including the hierarchy of its parent when it has one.
func (s *Service) invalidate(ctx context.Context, c Category) {
	keys := []string{categoryKey(c.ID), hierarchyKey(c.ID)}
	if c.ParentCategoryID != nil {
		keys = append(keys, hierarchyKey(*c.ParentCategoryID))
	}
	_ = s.cache.Invalidate(ctx, keys...)
}

// List returns categories matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Category, error) {
	return s.repo.List(ctx, f)
}

// Get retrieves a category by id, read-through cached.
func (s *Service) Get(ctx context.Context, id int64) (Category, error) {
	var c Category
	if hit, err := s.cache.GetJSON(ctx, categoryKey(id), &c); err == nil && hit {
		return c, nil
	}
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return Category{}, err
	}
	_ = s.cache.SetJSON(ctx, categoryKey(id), c)
	return c, nil
}

// GetByName retrieves a category by its unique name.
func (s *Service) GetByName(ctx context.Context, name string) (Category, error) {
	return s.repo.GetByName(ctx, name)
}

// GetByCode retrieves a category by its unique code.
func (s *Service) GetByCode(ctx context.Context, code string) (Category, error) {
	return s.repo.GetByCode(ctx, code)
}

// Hierarchy returns the category followed by its direct children, children
// sorted by name with case-insensitive collation.
func (s *Service) Hierarchy(ctx context.Context, id int64) ([]Category, error) {
	var cached []Category
	if hit, err := s.cache.GetJSON(ctx, hierarchyKey(id), &cached); err == nil && hit {
		return cached, nil
	}
	parent, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	children, err := s.repo.List(ctx, Filter{ParentID: &id})
	if err != nil {
		return nil, err
	}
	coll := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(children, func(i, j int) bool {
		return coll.CompareString(children[i].Name, children[j].Name) < 0
	})
	out := append([]Category{parent}, children...)
	_ = s.cache.SetJSON(ctx, hierarchyKey(id), out)
	return out, nil
}

// CountChildren counts the direct subcategories of a category.
func (s *Service) CountChildren(ctx context.Context, id int64) (int64, error) {
	return s.repo.CountChildren(ctx, id)
}

// checkUniqueAndParent enforces name and code uniqueness and parent
// existence for a create or update. current is nil on create.
func (s *Service) checkUniqueAndParent(ctx context.Context, req CategoryRequest, current *Category) error {
	if current == nil || current.Name != req.Name {
		exists, err := s.repo.ExistsByName(ctx, req.Name)
		if err != nil {
			return fmt.Errorf("check category name: %w", err)
		}
		if exists {
			return shared.Conflictf("Category name already exists: %s", req.Name)
		}
	}
	if req.CategoryCode != nil {
		codeChanged := current == nil || current.CategoryCode == nil || *current.CategoryCode != *req.CategoryCode
		if codeChanged {
			exists, err := s.repo.ExistsByCode(ctx, *req.CategoryCode)
			if err != nil {
				return fmt.Errorf("check category code: %w", err)
			}
			if exists {
				return shared.Conflictf("Category code already exists: %s", *req.CategoryCode)
			}
		}
	}
	if req.ParentCategoryID != nil {
		if _, err := s.repo.Get(ctx, *req.ParentCategoryID); err != nil {
			return shared.NotFoundf("Parent category not found with id: %d", *req.ParentCategoryID)
		}
	}
	return nil
}

// Create validates and stores a new category.
func (s *Service) Create(ctx context.Context, req CategoryRequest) (Category, error) {
	if err := shared.Validate(req); err != nil {
		return Category{}, err
	}
	if err := s.checkUniqueAndParent(ctx, req, nil); err != nil {
		return Category{}, err
	}
	c := req.toModel()
	now := s.now()
	c.CreatedDate = now
	c.LastModifiedDate = now
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return Category{}, err
	}
	if created.ParentCategoryID != nil {
		_ = s.cache.Invalidate(ctx, hierarchyKey(*created.ParentCategoryID))
	}
	return created, nil
}

// Update replaces every mutable field of an existing category. A category
// can never become its own parent.
func (s *Service) Update(ctx context.Context, id int64, req CategoryRequest) (Category, error) {
	if err := shared.Validate(req); err != nil {
		return Category{}, err
	}
	if req.ParentCategoryID != nil && *req.ParentCategoryID == id {
		return Category{}, shared.Validationf("Category cannot be its own parent")
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Category{}, err
	}
	if err := s.checkUniqueAndParent(ctx, req, &current); err != nil {
		return Category{}, err
	}
	next := req.toModel()
	next.ID = id
	next.CreatedDate = current.CreatedDate
	next.LastModifiedDate = s.now()
	if req.ProductCount == nil {
		next.ProductCount = current.ProductCount
	}
	if req.IsFeatured == nil {
		next.IsFeatured = current.IsFeatured
	}
	if req.IsVisible == nil {
		next.IsVisible = current.IsVisible
	}
	if req.Active == nil {
		next.Active = current.Active
	}
	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		return Category{}, err
	}
	s.invalidate(ctx, current)
	s.invalidate(ctx, updated)
	return updated, nil
}

// Delete removes a category. Categories with subcategories cannot be
// deleted.
func (s *Service) Delete(ctx context.Context, id int64) error {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	count, err := s.repo.CountChildren(ctx, id)
	if err != nil {
		return fmt.Errorf("count subcategories: %w", err)
	}
	if count > 0 {
		return shared.Conflictf("Cannot delete category with subcategories. Found %d subcategories.", count)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, c)
	return nil
}

// Activate marks a category active.
func (s *Service) Activate(ctx context.Context, id int64) (Category, error) {
	return s.patch(ctx, id, func(c *Category) error {
		c.Active = true
		return nil
	})
}

// Deactivate marks a category inactive.
func (s *Service) Deactivate(ctx context.Context, id int64) (Category, error) {
	return s.patch(ctx, id, func(c *Category) error {
		c.Active = false
		return nil
	})
}

// Show makes a category visible.
func (s *Service) Show(ctx context.Context, id int64) (Category, error) {
	return s.patch(ctx, id, func(c *Category) error {
		c.IsVisible = true
		return nil
	})
}

// Hide makes a category invisible.
func (s *Service) Hide(ctx context.Context, id int64) (Category, error) {
	return s.patch(ctx, id, func(c *Category) error {
		c.IsVisible = false
		return nil
	})
}

// Feature flags a category as featured.
func (s *Service) Feature(ctx context.Context, id int64) (Category, error) {
	return s.patch(ctx, id, func(c *Category) error {
		c.IsFeatured = true
		return nil
	})
}

// Unfeature clears the featured flag.
func (s *Service) Unfeature(ctx context.Context, id int64) (Category, error) {
	return s.patch(ctx, id, func(c *Category) error {
		c.IsFeatured = false
		return nil
	})
}

// UpdateProductCount sets the denormalized product count.
func (s *Service) UpdateProductCount(ctx context.Context, id int64, count int32) (Category, error) {
	if count < 0 {
		return Category{}, shared.Validationf("productCount is below the allowed minimum")
	}
	return s.patch(ctx, id, func(c *Category) error {
		c.ProductCount = count
		return nil
	})
}

// UpdateDisplayOrder sets the display order.
func (s *Service) UpdateDisplayOrder(ctx context.Context, id int64, order int32) (Category, error) {
	if order < 0 {
		return Category{}, shared.Validationf("displayOrder is below the allowed minimum")
	}
	return s.patch(ctx, id, func(c *Category) error {
		c.DisplayOrder = order
		return nil
	})
}

// UpdateTags replaces the tags string.
func (s *Service) UpdateTags(ctx context.Context, id int64, tags string) (Category, error) {
	return s.patch(ctx, id, func(c *Category) error {
		c.Tags = &tags
		return nil
	})
}

// patch applies mutate, refreshes lastModifiedDate, and drops the cache
// entries of the touched category.
func (s *Service) patch(ctx context.Context, id int64, mutate func(*Category) error) (Category, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return Category{}, err
	}
	if err := mutate(&c); err != nil {
		return Category{}, err
	}
	c.LastModifiedDate = s.now()
	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return Category{}, err
	}
	s.invalidate(ctx, updated)
	return updated, nil
}
