package departments

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

type memoryRepo struct {
	seq   int64
	items map[int64]Department
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: make(map[int64]Department)}
}

func matches(d Department, f Filter) bool {
	containsFold := func(s *string, sub string) bool {
		if s == nil {
			return sub == ""
		}
		return strings.Contains(strings.ToLower(*s), strings.ToLower(sub))
	}
	if f.NameLike != nil && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(*f.NameLike)) {
		return false
	}
	if f.ManagerLike != nil && !strings.Contains(strings.ToLower(d.ManagerName), strings.ToLower(*f.ManagerLike)) {
		return false
	}
	if f.DescriptionLike != nil && !containsFold(d.Description, *f.DescriptionLike) {
		return false
	}
	if f.Location != nil && (d.Location == nil || *d.Location != *f.Location) {
		return false
	}
	if f.ManagerEmail != nil && (d.ManagerEmail == nil || *d.ManagerEmail != *f.ManagerEmail) {
		return false
	}
	if f.Active != nil && d.Active != *f.Active {
		return false
	}
	if f.MinBudget != nil && (d.Budget == nil || *d.Budget <= *f.MinBudget) {
		return false
	}
	if f.MinEmployees != nil && (d.EmployeeCount == nil || *d.EmployeeCount <= *f.MinEmployees) {
		return false
	}
	return true
}

func (m *memoryRepo) List(_ context.Context, f Filter) ([]Department, error) {
	var out []Department
	for _, d := range m.items {
		if matches(d, f) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryRepo) Get(_ context.Context, id int64) (Department, error) {
	d, ok := m.items[id]
	if !ok {
		return Department{}, shared.NotFoundf("Department not found with id: %d", id)
	}
	return d, nil
}

func (m *memoryRepo) GetByName(_ context.Context, name string) (Department, error) {
	for _, d := range m.items {
		if d.Name == name {
			return d, nil
		}
	}
	return Department{}, shared.NotFoundf("Department not found with name: %s", name)
}

func (m *memoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, d := range m.items {
		if d.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepo) Create(_ context.Context, d Department) (Department, error) {
	for _, existing := range m.items {
		if existing.Name == d.Name {
			return Department{}, shared.Conflictf("Department name already exists: %s", d.Name)
		}
	}
	m.seq++
	d.ID = m.seq
	m.items[d.ID] = d
	return d, nil
}

func (m *memoryRepo) Update(_ context.Context, d Department) (Department, error) {
	if _, ok := m.items[d.ID]; !ok {
		return Department{}, shared.NotFoundf("Department not found with id: %d", d.ID)
	}
	for _, existing := range m.items {
		if existing.ID != d.ID && existing.Name == d.Name {
			return Department{}, shared.Conflictf("Department name already exists: %s", d.Name)
		}
	}
	m.items[d.ID] = d
	return d, nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return shared.NotFoundf("Department not found with id: %d", id)
	}
	delete(m.items, id)
	return nil
}

func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }
func int32Ptr(i int32) *int32    { return &i }

func validRequest() DepartmentRequest {
	return DepartmentRequest{
		Name:        "Engineering",
		ManagerName: "Ada Lovelace",
		Location:    strPtr("HQ"),
		Budget:      floatPtr(50000),
	}
}

func TestCreateDefaultsActive(t *testing.T) {
	svc := NewService(newMemoryRepo())

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.True(t, created.Active)
}

func TestCreateDuplicateNameConflicts(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validRequest())
	require.ErrorIs(t, err, shared.ErrConflict)
	require.EqualError(t, err, "Department name already exists: Engineering")
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMemoryRepo())

	req := validRequest()
	req.Name = "E"
	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, shared.ErrValidation)

	req = validRequest()
	req.ManagerEmail = strPtr("not-an-email")
	_, err = svc.Create(context.Background(), req)
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestUpdateKeepsActiveWhenOmitted(t *testing.T) {
	svc := NewService(newMemoryRepo())

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Deactivate(context.Background(), created.ID)
	require.NoError(t, err)

	req := validRequest()
	req.Description = strPtr("builds the product")
	updated, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	require.False(t, updated.Active)
	require.Equal(t, "builds the product", *updated.Description)
}

func TestUpdateRenameToTakenNameConflicts(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.Name = "Sales"
	created, err := svc.Create(context.Background(), other)
	require.NoError(t, err)

	renamed := validRequest()
	_, err = svc.Update(context.Background(), created.ID, renamed)
	require.ErrorIs(t, err, shared.ErrConflict)
}

func TestUpdateSameNameSkipsUniquenessCheck(t *testing.T) {
	svc := NewService(newMemoryRepo())

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, validRequest())
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
}

func TestDeleteMissingDepartment(t *testing.T) {
	svc := NewService(newMemoryRepo())

	err := svc.Delete(context.Background(), 99)
	require.ErrorIs(t, err, shared.ErrNotFound)
	require.EqualError(t, err, "Department not found with id: 99")
}

func TestActivateDeactivate(t *testing.T) {
	svc := NewService(newMemoryRepo())

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	d, err := svc.Deactivate(context.Background(), created.ID)
	require.NoError(t, err)
	require.False(t, d.Active)

	d, err = svc.Activate(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, d.Active)
}

func TestUpdateBudgetRejectsNegative(t *testing.T) {
	svc := NewService(newMemoryRepo())

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.UpdateBudget(context.Background(), created.ID, -1)
	require.ErrorIs(t, err, shared.ErrValidation)

	d, err := svc.UpdateBudget(context.Background(), created.ID, 75000)
	require.NoError(t, err)
	require.Equal(t, 75000.0, *d.Budget)
}

func TestUpdateEmployeeCount(t *testing.T) {
	svc := NewService(newMemoryRepo())

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	d, err := svc.UpdateEmployeeCount(context.Background(), created.ID, 42)
	require.NoError(t, err)
	require.Equal(t, int32(42), *d.EmployeeCount)

	_, err = svc.UpdateEmployeeCount(context.Background(), created.ID, -1)
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestListFilters(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	eng := validRequest()
	_, err := svc.Create(ctx, eng)
	require.NoError(t, err)

	sales := DepartmentRequest{
		Name:          "Sales",
		ManagerName:   "Grace Hopper",
		Location:      strPtr("Remote"),
		Budget:        floatPtr(20000),
		EmployeeCount: int32Ptr(5),
	}
	created, err := svc.Create(ctx, sales)
	require.NoError(t, err)
	_, err = svc.Deactivate(ctx, created.ID)
	require.NoError(t, err)

	active := true
	got, err := svc.List(ctx, Filter{Active: &active})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Engineering", got[0].Name)

	got, err = svc.List(ctx, Filter{NameLike: strPtr("sal")})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Sales", got[0].Name)

	got, err = svc.List(ctx, Filter{MinBudget: floatPtr(30000)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Engineering", got[0].Name)

	inactive := false
	loc := "Remote"
	got, err = svc.List(ctx, Filter{Active: &inactive, Location: &loc})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Sales", got[0].Name)
}
