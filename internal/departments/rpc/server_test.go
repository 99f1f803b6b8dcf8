package rpc

import (
	"context"
	"io"
	"log/slog"
	"net"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/atlas-backoffice/atlas-backoffice/internal/departments"
	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

type fakeRepo struct {
	seq   int64
	items map[int64]departments.Department
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[int64]departments.Department)}
}

func (m *fakeRepo) List(_ context.Context, f departments.Filter) ([]departments.Department, error) {
	var out []departments.Department
	for _, d := range m.items {
		if f.NameLike != nil && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(*f.NameLike)) {
			continue
		}
		if f.Active != nil && d.Active != *f.Active {
			continue
		}
		if f.Location != nil && (d.Location == nil || *d.Location != *f.Location) {
			continue
		}
		if f.MinBudget != nil && (d.Budget == nil || *d.Budget <= *f.MinBudget) {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *fakeRepo) Get(_ context.Context, id int64) (departments.Department, error) {
	d, ok := m.items[id]
	if !ok {
		return departments.Department{}, shared.NotFoundf("Department not found with id: %d", id)
	}
	return d, nil
}

func (m *fakeRepo) GetByName(_ context.Context, name string) (departments.Department, error) {
	for _, d := range m.items {
		if d.Name == name {
			return d, nil
		}
	}
	return departments.Department{}, shared.NotFoundf("Department not found with name: %s", name)
}

func (m *fakeRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, d := range m.items {
		if d.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *fakeRepo) Create(_ context.Context, d departments.Department) (departments.Department, error) {
	m.seq++
	d.ID = m.seq
	m.items[d.ID] = d
	return d, nil
}

func (m *fakeRepo) Update(_ context.Context, d departments.Department) (departments.Department, error) {
	if _, ok := m.items[d.ID]; !ok {
		return departments.Department{}, shared.NotFoundf("Department not found with id: %d", d.ID)
	}
	m.items[d.ID] = d
	return d, nil
}

func (m *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return shared.NotFoundf("Department not found with id: %d", id)
	}
	delete(m.items, id)
	return nil
}

func newTestServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(logger, departments.NewService(newFakeRepo()))
}

func wireDepartment() Department {
	return Department{
		Name:        "Engineering",
		ManagerName: "Ada Lovelace",
		Location:    "HQ",
		Budget:      50000,
		Active:      true,
	}
}

func TestGetByIdReportsAbsenceThroughFoundFlag(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	res, err := srv.GetDepartmentById(ctx, &GetDepartmentByIdRequest{ID: 42})
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Nil(t, res.Department)

	created, err := srv.CreateDepartment(ctx, &CreateDepartmentRequest{Department: wireDepartment()})
	require.NoError(t, err)
	require.True(t, created.Success)

	res, err = srv.GetDepartmentById(ctx, &GetDepartmentByIdRequest{ID: created.Department.ID})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, "Engineering", res.Department.Name)
	require.Equal(t, 50000.0, res.Department.Budget)
}

func TestCreateConflictUsesEnvelope(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	_, err := srv.CreateDepartment(ctx, &CreateDepartmentRequest{Department: wireDepartment()})
	require.NoError(t, err)

	res, err := srv.CreateDepartment(ctx, &CreateDepartmentRequest{Department: wireDepartment()})
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Equal(t, "Department name already exists: Engineering", res.ErrorMessage)
	require.Nil(t, res.Department)
}

func TestCreateValidationUsesEnvelope(t *testing.T) {
	srv := newTestServer()

	bad := wireDepartment()
	bad.Name = "E"
	res, err := srv.CreateDepartment(context.Background(), &CreateDepartmentRequest{Department: bad})
	require.NoError(t, err)
	require.False(t, res.Success)
	require.NotEmpty(t, res.ErrorMessage)
}

func TestZeroWireFieldsStayUnset(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	d := wireDepartment()
	d.Budget = 0
	created, err := srv.CreateDepartment(ctx, &CreateDepartmentRequest{Department: d})
	require.NoError(t, err)
	require.True(t, created.Success)
	require.Equal(t, 0.0, created.Department.Budget)

	stored, err := srv.GetDepartmentsByBudget(ctx, &GetDepartmentsByBudgetRequest{MinBudget: 1})
	require.NoError(t, err)
	require.Empty(t, stored.Departments)
}

func TestDeleteEnvelope(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	created, err := srv.CreateDepartment(ctx, &CreateDepartmentRequest{Department: wireDepartment()})
	require.NoError(t, err)

	res, err := srv.DeleteDepartment(ctx, &DeleteDepartmentRequest{ID: created.Department.ID})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, "Department deleted successfully", res.Message)

	res, err = srv.DeleteDepartment(ctx, &DeleteDepartmentRequest{ID: created.Department.ID})
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Equal(t, "Department not found with id: 1", res.Message)
}

func TestActiveFilterRoundTrip(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	created, err := srv.CreateDepartment(ctx, &CreateDepartmentRequest{Department: wireDepartment()})
	require.NoError(t, err)

	other := wireDepartment()
	other.Name = "Sales"
	_, err = srv.CreateDepartment(ctx, &CreateDepartmentRequest{Department: other})
	require.NoError(t, err)

	deactivated, err := srv.DeactivateDepartment(ctx, &DeactivateDepartmentRequest{ID: created.Department.ID})
	require.NoError(t, err)
	require.True(t, deactivated.Success)
	require.False(t, deactivated.Department.Active)

	active, err := srv.GetActiveDepartments(ctx, &GetActiveDepartmentsRequest{})
	require.NoError(t, err)
	require.Len(t, active.Departments, 1)
	require.Equal(t, "Sales", active.Departments[0].Name)

	inactive, err := srv.GetInactiveDepartments(ctx, &GetInactiveDepartmentsRequest{})
	require.NoError(t, err)
	require.Len(t, inactive.Departments, 1)
	require.Equal(t, "Engineering", inactive.Departments[0].Name)
}

func TestBufconnRoundTrip(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	t.Cleanup(func() { lis.Close() })

	grpcServer := grpc.NewServer()
	Register(grpcServer, newTestServer())
	go func() { _ = grpcServer.Serve(lis) }()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	client := NewClient(conn)
	ctx := context.Background()

	created, err := client.CreateDepartment(ctx, wireDepartment())
	require.NoError(t, err)
	require.True(t, created.Success)
	require.NotZero(t, created.Department.ID)

	got, err := client.GetDepartmentById(ctx, created.Department.ID)
	require.NoError(t, err)
	require.True(t, got.Found)
	require.Equal(t, "Engineering", got.Department.Name)

	missing, err := client.GetDepartmentByName(ctx, "Nope")
	require.NoError(t, err)
	require.False(t, missing.Found)

	dup, err := client.CreateDepartment(ctx, wireDepartment())
	require.NoError(t, err)
	require.False(t, dup.Success)
	require.Equal(t, "Department name already exists: Engineering", dup.ErrorMessage)

	list, err := client.SearchDepartmentsByName(ctx, "eng")
	require.NoError(t, err)
	require.Len(t, list.Departments, 1)
}
