package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"github.com/atlas-backoffice/atlas-backoffice/internal/categories"
	"github.com/atlas-backoffice/atlas-backoffice/internal/products"
	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

type categoryRepo struct {
	items map[int64]categories.Category
}

func (m *categoryRepo) List(_ context.Context, _ categories.Filter) ([]categories.Category, error) {
	out := make([]categories.Category, 0, len(m.items))
	for _, c := range m.items {
		out = append(out, c)
	}
	return out, nil
}

func (m *categoryRepo) Get(_ context.Context, id int64) (categories.Category, error) {
	c, ok := m.items[id]
	if !ok {
		return categories.Category{}, shared.NotFoundf("Category not found with id: %d", id)
	}
	return c, nil
}

func (m *categoryRepo) GetByName(_ context.Context, name string) (categories.Category, error) {
	return categories.Category{}, shared.NotFoundf("Category not found with name: %s", name)
}

func (m *categoryRepo) GetByCode(_ context.Context, code string) (categories.Category, error) {
	return categories.Category{}, shared.NotFoundf("Category not found with code: %s", code)
}

func (m *categoryRepo) ExistsByName(_ context.Context, _ string) (bool, error) { return false, nil }
func (m *categoryRepo) ExistsByCode(_ context.Context, _ string) (bool, error) { return false, nil }
func (m *categoryRepo) CountChildren(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func (m *categoryRepo) Create(_ context.Context, c categories.Category) (categories.Category, error) {
	m.items[c.ID] = c
	return c, nil
}

func (m *categoryRepo) Update(_ context.Context, c categories.Category) (categories.Category, error) {
	if _, ok := m.items[c.ID]; !ok {
		return categories.Category{}, shared.NotFoundf("Category not found with id: %d", c.ID)
	}
	m.items[c.ID] = c
	return c, nil
}

func (m *categoryRepo) Delete(_ context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

// productCounts stubs the product repository with fixed per-category counts.
type productCounts struct {
	products.Repository

	counts map[int64]int64
}

func (m *productCounts) CountByCategory(_ context.Context, categoryID int64) (int64, error) {
	return m.counts[categoryID], nil
}

func recountTask(t *testing.T, categoryID int64) *asynq.Task {
	t.Helper()
	task, err := NewCategoryRecountTask(categoryID)
	require.NoError(t, err)
	return task
}

func newTestRecounter(repo *categoryRepo, counts map[int64]int64) *Recounter {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := categories.NewService(repo, nil)
	return NewRecounter(svc, &productCounts{counts: counts}, nil, logger)
}

func TestRecountSingleCategory(t *testing.T) {
	repo := &categoryRepo{items: map[int64]categories.Category{
		1: {ID: 1, Name: "Electronics", ProductCount: 99},
	}}
	rc := newTestRecounter(repo, map[int64]int64{1: 3})

	err := rc.HandleCategoryRecount(context.Background(), recountTask(t, 1))
	require.NoError(t, err)
	require.Equal(t, int32(3), repo.items[1].ProductCount)
}

func TestRecountAllCategories(t *testing.T) {
	repo := &categoryRepo{items: map[int64]categories.Category{
		1: {ID: 1, Name: "Electronics", ProductCount: 99},
		2: {ID: 2, Name: "Books", ProductCount: 1},
	}}
	rc := newTestRecounter(repo, map[int64]int64{1: 5, 2: 0})

	err := rc.HandleCategoryRecount(context.Background(), recountTask(t, 0))
	require.NoError(t, err)
	require.Equal(t, int32(5), repo.items[1].ProductCount)
	require.Equal(t, int32(0), repo.items[2].ProductCount)
}

func TestRecountMissingCategorySkipped(t *testing.T) {
	repo := &categoryRepo{items: map[int64]categories.Category{}}
	rc := newTestRecounter(repo, map[int64]int64{7: 2})

	err := rc.HandleCategoryRecount(context.Background(), recountTask(t, 7))
	require.NoError(t, err)
}

func TestRecountRejectsBadPayload(t *testing.T) {
	rc := newTestRecounter(&categoryRepo{items: map[int64]categories.Category{}}, nil)

	err := rc.HandleCategoryRecount(context.Background(), asynq.NewTask(TaskCategoryRecount, []byte("{")))
	require.ErrorIs(t, err, asynq.SkipRetry)
}
