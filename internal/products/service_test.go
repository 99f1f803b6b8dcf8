package products

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

type memoryRepo struct {
	mu    sync.Mutex
	seq   int64
	items map[int64]Product
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: make(map[int64]Product)}
}

func matches(p Product, f Filter) bool {
	containsFold := func(s *string, sub string) bool {
		if s == nil {
			return false
		}
		return strings.Contains(strings.ToLower(*s), strings.ToLower(sub))
	}
	if f.NameLike != nil && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(*f.NameLike)) {
		return false
	}
	if f.DescriptionLike != nil && !containsFold(p.Description, *f.DescriptionLike) {
		return false
	}
	if f.SearchTerm != nil {
		term := *f.SearchTerm
		if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) &&
			!containsFold(p.Description, term) && !containsFold(p.Brand, term) && !containsFold(p.Tags, term) {
			return false
		}
	}
	if f.Brand != nil && (p.Brand == nil || *p.Brand != *f.Brand) {
		return false
	}
	if f.BrandLike != nil && !containsFold(p.Brand, *f.BrandLike) {
		return false
	}
	if f.Model != nil && (p.Model == nil || *p.Model != *f.Model) {
		return false
	}
	if f.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *f.CategoryID) {
		return false
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.Active != nil && p.Active != *f.Active {
		return false
	}
	if f.IsFeatured != nil && p.IsFeatured != *f.IsFeatured {
		return false
	}
	if f.IsDigital != nil && p.IsDigital != *f.IsDigital {
		return false
	}
	if f.RequiresShipping != nil && p.RequiresShipping != *f.RequiresShipping {
		return false
	}
	if f.IsTaxable != nil && p.IsTaxable != *f.IsTaxable {
		return false
	}
	if f.TrackInventory != nil && p.TrackInventory != *f.TrackInventory {
		return false
	}
	if f.Color != nil && (p.Color == nil || *p.Color != *f.Color) {
		return false
	}
	if f.Size != nil && (p.Size == nil || *p.Size != *f.Size) {
		return false
	}
	if f.MinPrice != nil && (p.Price == nil || *p.Price < *f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && (p.Price == nil || *p.Price > *f.MaxPrice) {
		return false
	}
	if f.PriceAbove != nil && (p.Price == nil || *p.Price <= *f.PriceAbove) {
		return false
	}
	if f.PriceBelow != nil && (p.Price == nil || *p.Price >= *f.PriceBelow) {
		return false
	}
	if f.OnSale && (p.SalePrice == nil || p.Price == nil || *p.SalePrice >= *p.Price) {
		return false
	}
	if f.StockAbove != nil && p.StockQuantity <= *f.StockAbove {
		return false
	}
	if f.StockBelow != nil && p.StockQuantity >= *f.StockBelow {
		return false
	}
	if f.OutOfStock && p.StockQuantity != 0 {
		return false
	}
	if f.LowStock && !(p.StockQuantity <= p.MinStockLevel && p.MinStockLevel > 0) {
		return false
	}
	if f.RatingAbove != nil && p.Rating <= *f.RatingAbove {
		return false
	}
	if f.MinRating != nil && p.Rating < *f.MinRating {
		return false
	}
	if f.MaxRating != nil && p.Rating > *f.MaxRating {
		return false
	}
	if f.MinReviews != nil && p.ReviewCount < *f.MinReviews {
		return false
	}
	if f.MinSales != nil && p.SalesCount <= *f.MinSales {
		return false
	}
	if f.MinViews != nil && p.ViewCount <= *f.MinViews {
		return false
	}
	if f.CreatedAfter != nil && !p.CreatedDate.After(*f.CreatedAfter) {
		return false
	}
	if f.PublishedAfter != nil && (p.PublishedDate == nil || !p.PublishedDate.After(*f.PublishedAfter)) {
		return false
	}
	if f.ModifiedAfter != nil && !p.LastModifiedDate.After(*f.ModifiedAfter) {
		return false
	}
	if f.Tag != nil && !containsFold(p.Tags, *f.Tag) {
		return false
	}
	if f.MetaTitleLike != nil && !containsFold(p.MetaTitle, *f.MetaTitleLike) {
		return false
	}
	return true
}

func (m *memoryRepo) List(_ context.Context, f Filter) ([]Product, error) {
	var out []Product
	for _, p := range m.items {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch f.OrderBy {
		case OrderByName:
			return a.Name < b.Name
		case OrderByPriceAsc:
			return deref(a.Price) < deref(b.Price)
		case OrderByPriceDesc:
			return deref(a.Price) > deref(b.Price)
		case OrderByCreated:
			return a.CreatedDate.After(b.CreatedDate)
		case OrderByRating:
			return a.Rating > b.Rating
		case OrderBySales:
			return a.SalesCount > b.SalesCount
		case OrderByViews:
			return a.ViewCount > b.ViewCount
		case OrderByStock:
			return a.StockQuantity > b.StockQuantity
		default:
			return a.ID < b.ID
		}
	})
	return out, nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func (m *memoryRepo) Get(_ context.Context, id int64) (Product, error) {
	p, ok := m.items[id]
	if !ok {
		return Product{}, shared.NotFoundf("Product not found with id: %d", id)
	}
	return p, nil
}

func (m *memoryRepo) GetByName(_ context.Context, name string) (Product, error) {
	for _, p := range m.items {
		if p.Name == name {
			return p, nil
		}
	}
	return Product{}, shared.NotFoundf("Product not found with name: %s", name)
}

func (m *memoryRepo) GetBySKU(_ context.Context, sku string) (Product, error) {
	for _, p := range m.items {
		if p.SKU != nil && *p.SKU == sku {
			return p, nil
		}
	}
	return Product{}, shared.NotFoundf("Product not found with sku: %s", sku)
}

func (m *memoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, p := range m.items {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepo) ExistsBySKU(_ context.Context, sku string) (bool, error) {
	for _, p := range m.items {
		if p.SKU != nil && *p.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepo) CountByCategory(_ context.Context, categoryID int64) (int64, error) {
	var count int64
	for _, p := range m.items {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (m *memoryRepo) CountByBrand(_ context.Context, brand string) (int64, error) {
	var count int64
	for _, p := range m.items {
		if p.Brand != nil && *p.Brand == brand {
			count++
		}
	}
	return count, nil
}

func (m *memoryRepo) CountByStatus(_ context.Context, status Status) (int64, error) {
	var count int64
	for _, p := range m.items {
		if p.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *memoryRepo) Create(_ context.Context, p Product) (Product, error) {
	for _, existing := range m.items {
		if existing.Name == p.Name {
			return Product{}, shared.Conflictf("Product name already exists: %s", p.Name)
		}
	}
	m.seq++
	p.ID = m.seq
	m.items[p.ID] = p
	return p, nil
}

func (m *memoryRepo) Update(_ context.Context, p Product) (Product, error) {
	if _, ok := m.items[p.ID]; !ok {
		return Product{}, shared.NotFoundf("Product not found with id: %d", p.ID)
	}
	m.items[p.ID] = p
	return p, nil
}

func (m *memoryRepo) Patch(_ context.Context, id int64, mutate func(*Product) error) (Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok {
		return Product{}, shared.NotFoundf("Product not found with id: %d", id)
	}
	if err := mutate(&p); err != nil {
		return Product{}, err
	}
	m.items[id] = p
	return p, nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return shared.NotFoundf("Product not found with id: %d", id)
	}
	delete(m.items, id)
	return nil
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func int32Ptr(i int32) *int32     { return &i }
func int64Ptr(i int64) *int64     { return &i }

func validRequest(name string) ProductRequest {
	return ProductRequest{Name: name, Price: floatPtr(19.99)}
}

func TestCreateDefaults(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)

	created, err := svc.Create(context.Background(), validRequest("Widget"))
	require.NoError(t, err)
	require.Equal(t, StatusDraft, created.Status)
	require.True(t, created.Active)
	require.True(t, created.RequiresShipping)
	require.True(t, created.IsTaxable)
	require.True(t, created.TrackInventory)
	require.False(t, created.IsDigital)
	require.Equal(t, int32(0), created.StockQuantity)
	require.Nil(t, created.PublishedDate)
	require.False(t, created.CreatedDate.IsZero())
}

func TestCreateDuplicateNameConflicts(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)

	_, err := svc.Create(context.Background(), validRequest("Widget"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validRequest("Widget"))
	require.ErrorIs(t, err, shared.ErrConflict)
	require.EqualError(t, err, "Product name already exists: Widget")
}

func TestCreateDuplicateSKUConflicts(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	ctx := context.Background()

	req := validRequest("Widget")
	req.SKU = strPtr("WID-001")
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	req2 := validRequest("Gadget")
	req2.SKU = strPtr("WID-001")
	_, err = svc.Create(ctx, req2)
	require.ErrorIs(t, err, shared.ErrConflict)
	require.EqualError(t, err, "SKU already exists: WID-001")
}

func TestPublishStampsDateOnce(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest("Widget"))
	require.NoError(t, err)

	first := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }
	p, err := svc.UpdateStatus(ctx, created.ID, StatusPublished)
	require.NoError(t, err)
	require.NotNil(t, p.PublishedDate)
	require.Equal(t, first, *p.PublishedDate)

	svc.now = func() time.Time { return first.AddDate(0, 1, 0) }
	p, err = svc.UpdateStatus(ctx, created.ID, StatusArchived)
	require.NoError(t, err)
	p, err = svc.UpdateStatus(ctx, created.ID, StatusPublished)
	require.NoError(t, err)
	require.Equal(t, first, *p.PublishedDate)

	_, err = svc.UpdateStatus(ctx, created.ID, Status("BOGUS"))
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestStockDrivesStatus(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	ctx := context.Background()

	req := validRequest("Widget")
	req.StockQuantity = int32Ptr(5)
	req.Status = statusPtr(StatusPublished)
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	p, err := svc.UpdateStock(ctx, created.ID, 0)
	require.NoError(t, err)
	require.Equal(t, StatusOutOfStock, p.Status)

	p, err = svc.UpdateStock(ctx, created.ID, 3)
	require.NoError(t, err)
	require.Equal(t, StatusPublished, p.Status)
	require.Equal(t, int32(3), p.StockQuantity)

	_, err = svc.UpdateStock(ctx, created.ID, -1)
	require.ErrorIs(t, err, shared.ErrValidation)
}

func statusPtr(s Status) *Status { return &s }

func TestIncrementsSkipModifiedDate(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	ctx := context.Background()

	svc.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	created, err := svc.Create(ctx, validRequest("Widget"))
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) }
	p, err := svc.IncrementViewCount(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, int32(1), p.ViewCount)
	require.Equal(t, created.LastModifiedDate, p.LastModifiedDate)

	p, err = svc.IncrementSalesCount(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, int32(1), p.SalesCount)
	require.Equal(t, created.LastModifiedDate, p.LastModifiedDate)

	p, err = svc.UpdatePrice(ctx, created.ID, 24.99)
	require.NoError(t, err)
	require.NotEqual(t, created.LastModifiedDate, p.LastModifiedDate)
}

func TestConcurrentViewCountsLoseNoHits(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest("Widget"))
	require.NoError(t, err)

	const viewers = 32
	var wg sync.WaitGroup
	wg.Add(viewers)
	for i := 0; i < viewers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.IncrementViewCount(ctx, created.ID)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	p, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, int32(viewers), p.ViewCount)
}

func TestMutationsEnqueueRecount(t *testing.T) {
	var recounted []int64
	svc := NewService(newMemoryRepo(), func(_ context.Context, categoryID int64) {
		recounted = append(recounted, categoryID)
	})
	ctx := context.Background()

	req := validRequest("Widget")
	req.CategoryID = int64Ptr(7)
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	require.Equal(t, []int64{7}, recounted)

	recounted = nil
	req.CategoryID = int64Ptr(8)
	_, err = svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{7, 8}, recounted)

	recounted = nil
	_, err = svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	require.Empty(t, recounted)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.Equal(t, []int64{8}, recounted)
}

func TestUpdatePreservesDates(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest("Widget"))
	require.NoError(t, err)
	published, err := svc.UpdateStatus(ctx, created.ID, StatusPublished)
	require.NoError(t, err)

	req := validRequest("Widget")
	req.Brand = strPtr("Acme")
	updated, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	require.Equal(t, created.CreatedDate, updated.CreatedDate)
	require.Equal(t, published.PublishedDate, updated.PublishedDate)
	require.Equal(t, "Acme", *updated.Brand)
}

func TestRatingValidation(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest("Widget"))
	require.NoError(t, err)

	p, err := svc.UpdateRating(ctx, created.ID, 4.5, 12)
	require.NoError(t, err)
	require.Equal(t, 4.5, p.Rating)
	require.Equal(t, int32(12), p.ReviewCount)

	_, err = svc.UpdateRating(ctx, created.ID, 5.5, 1)
	require.ErrorIs(t, err, shared.ErrValidation)

	_, err = svc.UpdatePrice(ctx, created.ID, 0)
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestSpecialListShapes(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	ctx := context.Background()

	onSale := validRequest("Widget")
	onSale.SalePrice = floatPtr(9.99)
	onSale.StockQuantity = int32Ptr(10)
	onSale.SalesCount = int32Ptr(50)
	_, err := svc.Create(ctx, onSale)
	require.NoError(t, err)

	low := validRequest("Gadget")
	low.StockQuantity = int32Ptr(2)
	low.MinStockLevel = int32Ptr(5)
	low.SalesCount = int32Ptr(200)
	_, err = svc.Create(ctx, low)
	require.NoError(t, err)

	got, err := svc.List(ctx, Filter{OnSale: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Widget", got[0].Name)

	got, err = svc.List(ctx, Filter{LowStock: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Gadget", got[0].Name)

	minSales := int32(0)
	got, err = svc.List(ctx, Filter{MinSales: &minSales, OrderBy: OrderBySales})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Gadget", got[0].Name)
}
