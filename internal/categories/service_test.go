package categories

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/atlas-backoffice/atlas-backoffice/internal/platform/cache"
	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

type memoryRepo struct {
	seq   int64
	items map[int64]Category
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: make(map[int64]Category)}
}

func matches(c Category, f Filter) bool {
	containsFold := func(s *string, sub string) bool {
		if s == nil {
			return false
		}
		return strings.Contains(strings.ToLower(*s), strings.ToLower(sub))
	}
	if f.NameLike != nil && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(*f.NameLike)) {
		return false
	}
	if f.DescriptionLike != nil && !containsFold(c.Description, *f.DescriptionLike) {
		return false
	}
	if f.ParentID != nil && (c.ParentCategoryID == nil || *c.ParentCategoryID != *f.ParentID) {
		return false
	}
	if f.RootOnly && c.ParentCategoryID != nil {
		return false
	}
	if f.Active != nil && c.Active != *f.Active {
		return false
	}
	if f.IsVisible != nil && c.IsVisible != *f.IsVisible {
		return false
	}
	if f.IsFeatured != nil && c.IsFeatured != *f.IsFeatured {
		return false
	}
	if f.MinProducts != nil && c.ProductCount <= *f.MinProducts {
		return false
	}
	if f.MaxProductsBelow != nil && c.ProductCount >= *f.MaxProductsBelow {
		return false
	}
	if f.NoProducts && c.ProductCount != 0 {
		return false
	}
	if f.CreatedAfter != nil && !c.CreatedDate.After(*f.CreatedAfter) {
		return false
	}
	if f.ModifiedAfter != nil && !c.LastModifiedDate.After(*f.ModifiedAfter) {
		return false
	}
	if f.Tag != nil && !containsFold(c.Tags, *f.Tag) {
		return false
	}
	if f.MetaTitleLike != nil && !containsFold(c.MetaTitle, *f.MetaTitleLike) {
		return false
	}
	if f.Color != nil && (c.Color == nil || *c.Color != *f.Color) {
		return false
	}
	return true
}

func (m *memoryRepo) List(_ context.Context, f Filter) ([]Category, error) {
	var out []Category
	for _, c := range m.items {
		if matches(c, f) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		switch f.OrderBy {
		case OrderByDisplayOrder:
			return out[i].DisplayOrder < out[j].DisplayOrder
		case OrderByName:
			return out[i].Name < out[j].Name
		case OrderByProductCount:
			return out[i].ProductCount > out[j].ProductCount
		case OrderByCreated:
			return out[i].CreatedDate.After(out[j].CreatedDate)
		case OrderByModified:
			return out[i].LastModifiedDate.After(out[j].LastModifiedDate)
		default:
			return out[i].ID < out[j].ID
		}
	})
	return out, nil
}

func (m *memoryRepo) Get(_ context.Context, id int64) (Category, error) {
	c, ok := m.items[id]
	if !ok {
		return Category{}, shared.NotFoundf("Category not found with id: %d", id)
	}
	return c, nil
}

func (m *memoryRepo) GetByName(_ context.Context, name string) (Category, error) {
	for _, c := range m.items {
		if c.Name == name {
			return c, nil
		}
	}
	return Category{}, shared.NotFoundf("Category not found with name: %s", name)
}

func (m *memoryRepo) GetByCode(_ context.Context, code string) (Category, error) {
	for _, c := range m.items {
		if c.CategoryCode != nil && *c.CategoryCode == code {
			return c, nil
		}
	}
	return Category{}, shared.NotFoundf("Category not found with code: %s", code)
}

func (m *memoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range m.items {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	for _, c := range m.items {
		if c.CategoryCode != nil && *c.CategoryCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepo) CountChildren(_ context.Context, parentID int64) (int64, error) {
	var count int64
	for _, c := range m.items {
		if c.ParentCategoryID != nil && *c.ParentCategoryID == parentID {
			count++
		}
	}
	return count, nil
}

func (m *memoryRepo) Create(_ context.Context, c Category) (Category, error) {
	for _, existing := range m.items {
		if existing.Name == c.Name {
			return Category{}, shared.Conflictf("Category name already exists: %s", c.Name)
		}
	}
	m.seq++
	c.ID = m.seq
	m.items[c.ID] = c
	return c, nil
}

func (m *memoryRepo) Update(_ context.Context, c Category) (Category, error) {
	if _, ok := m.items[c.ID]; !ok {
		return Category{}, shared.NotFoundf("Category not found with id: %d", c.ID)
	}
	m.items[c.ID] = c
	return c, nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return shared.NotFoundf("Category not found with id: %d", id)
	}
	delete(m.items, id)
	return nil
}

func strPtr(s string) *string { return &s }
func idPtr(id int64) *int64   { return &id }

func validRequest(name string) CategoryRequest {
	return CategoryRequest{Name: name}
}

func TestCreateDefaults(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)

	created, err := svc.Create(context.Background(), validRequest("Electronics"))
	require.NoError(t, err)
	require.True(t, created.Active)
	require.True(t, created.IsVisible)
	require.False(t, created.IsFeatured)
	require.Equal(t, int32(0), created.ProductCount)
	require.False(t, created.CreatedDate.IsZero())
	require.Equal(t, created.CreatedDate, created.LastModifiedDate)
}

func TestCreateDuplicateNameConflicts(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)

	_, err := svc.Create(context.Background(), validRequest("Electronics"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validRequest("Electronics"))
	require.ErrorIs(t, err, shared.ErrConflict)
	require.EqualError(t, err, "Category name already exists: Electronics")
}

func TestCreateDuplicateCodeConflicts(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	ctx := context.Background()

	req := validRequest("Electronics")
	req.CategoryCode = strPtr("ELEC")
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	req2 := validRequest("Gadgets")
	req2.CategoryCode = strPtr("ELEC")
	_, err = svc.Create(ctx, req2)
	require.ErrorIs(t, err, shared.ErrConflict)
	require.EqualError(t, err, "Category code already exists: ELEC")
}

func TestCreateRequiresExistingParent(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)

	req := validRequest("Phones")
	req.ParentCategoryID = idPtr(99)
	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, shared.ErrNotFound)
	require.EqualError(t, err, "Parent category not found with id: 99")
}

func TestUpdateRejectsSelfParent(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest("Electronics"))
	require.NoError(t, err)

	req := validRequest("Electronics")
	req.ParentCategoryID = idPtr(created.ID)
	_, err = svc.Update(ctx, created.ID, req)
	require.ErrorIs(t, err, shared.ErrValidation)
	require.EqualError(t, err, "Category cannot be its own parent")
}

func TestDeleteGuardedBySubcategories(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	ctx := context.Background()

	parent, err := svc.Create(ctx, validRequest("Electronics"))
	require.NoError(t, err)

	child := validRequest("Phones")
	child.ParentCategoryID = idPtr(parent.ID)
	created, err := svc.Create(ctx, child)
	require.NoError(t, err)

	err = svc.Delete(ctx, parent.ID)
	require.ErrorIs(t, err, shared.ErrConflict)
	require.EqualError(t, err, "Cannot delete category with subcategories. Found 1 subcategories.")

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, parent.ID))
}

func TestHierarchyCollatesChildren(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	ctx := context.Background()

	parent, err := svc.Create(ctx, validRequest("Electronics"))
	require.NoError(t, err)

	for _, name := range []string{"cameras", "Audio", "phones", "Displays"} {
		child := validRequest(name)
		child.ParentCategoryID = idPtr(parent.ID)
		_, err := svc.Create(ctx, child)
		require.NoError(t, err)
	}

	got, err := svc.Hierarchy(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, got, 5)
	require.Equal(t, "Electronics", got[0].Name)

	var names []string
	for _, c := range got[1:] {
		names = append(names, c.Name)
	}
	require.Equal(t, []string{"Audio", "cameras", "Displays", "phones"}, names)
}

func TestPatchRefreshesModifiedDate(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	ctx := context.Background()

	svc.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	created, err := svc.Create(ctx, validRequest("Electronics"))
	require.NoError(t, err)

	later := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return later }

	c, err := svc.Feature(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, c.IsFeatured)
	require.Equal(t, later, c.LastModifiedDate)
	require.Equal(t, created.CreatedDate, c.CreatedDate)

	_, err = svc.UpdateProductCount(ctx, created.ID, -1)
	require.ErrorIs(t, err, shared.ErrValidation)

	c, err = svc.UpdateDisplayOrder(ctx, created.ID, 7)
	require.NoError(t, err)
	require.Equal(t, int32(7), c.DisplayOrder)
}

func TestGetReadsThroughCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := newMemoryRepo()
	svc := NewService(repo, cache.NewCache(client, time.Minute))
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest("Electronics"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Electronics", got.Name)

	// The cached copy survives a direct repository change.
	stale := repo.items[created.ID]
	stale.Name = "Renamed"
	repo.items[created.ID] = stale

	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Electronics", got.Name)

	// A service-level write invalidates the entry.
	_, err = svc.Deactivate(ctx, created.ID)
	require.NoError(t, err)
	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name)
	require.False(t, got.Active)
}
