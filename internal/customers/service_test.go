package customers

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
	items map[int64]Customer
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: make(map[int64]Customer)}
}

func matches(c Customer, f Filter) bool {
	if f.CompanyLike != nil && !strings.Contains(strings.ToLower(c.CompanyName), strings.ToLower(*f.CompanyLike)) {
		return false
	}
	if f.ContactLike != nil && !strings.Contains(strings.ToLower(c.ContactName), strings.ToLower(*f.ContactLike)) {
		return false
	}
	if f.City != nil && (c.City == nil || *c.City != *f.City) {
		return false
	}
	if f.Country != nil && (c.Country == nil || *c.Country != *f.Country) {
		return false
	}
	if f.Phone != nil && (c.Phone == nil || *c.Phone != *f.Phone) {
		return false
	}
	if f.Active != nil && c.Active != *f.Active {
		return false
	}
	if f.MinCreditLimit != nil && (c.CreditLimit == nil || *c.CreditLimit <= *f.MinCreditLimit) {
		return false
	}
	return true
}

func (m *memoryRepo) List(_ context.Context, f Filter) ([]Customer, error) {
	var out []Customer
	for _, c := range m.items {
		if matches(c, f) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryRepo) Get(_ context.Context, id int64) (Customer, error) {
	c, ok := m.items[id]
	if !ok {
		return Customer{}, shared.NotFoundf("Customer not found with id: %d", id)
	}
	return c, nil
}

func (m *memoryRepo) GetByEmail(_ context.Context, email string) (Customer, error) {
	for _, c := range m.items {
		if c.Email == email {
			return c, nil
		}
	}
	return Customer{}, shared.NotFoundf("Customer not found with email: %s", email)
}

func (m *memoryRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, c := range m.items {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepo) Create(_ context.Context, c Customer) (Customer, error) {
	for _, existing := range m.items {
		if existing.Email == c.Email {
			return Customer{}, shared.Conflictf("Email already exists: %s", c.Email)
		}
	}
	m.seq++
	c.ID = m.seq
	m.items[c.ID] = c
	return c, nil
}

func (m *memoryRepo) Update(_ context.Context, c Customer) (Customer, error) {
	if _, ok := m.items[c.ID]; !ok {
		return Customer{}, shared.NotFoundf("Customer not found with id: %d", c.ID)
	}
	for _, existing := range m.items {
		if existing.ID != c.ID && existing.Email == c.Email {
			return Customer{}, shared.Conflictf("Email already exists: %s", c.Email)
		}
	}
	m.items[c.ID] = c
	return c, nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return shared.NotFoundf("Customer not found with id: %d", id)
	}
	delete(m.items, id)
	return nil
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func validRequest() CustomerRequest {
	return CustomerRequest{
		CompanyName: "Acme Corp",
		ContactName: "Wile Coyote",
		Email:       "orders@acme.example",
		Country:     strPtr("US"),
		CreditLimit: floatPtr(10000),
	}
}

func TestCreateDuplicateEmailConflicts(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.CompanyName = "Other Corp"
	_, err = svc.Create(context.Background(), other)
	require.ErrorIs(t, err, shared.ErrConflict)
	require.EqualError(t, err, "Email already exists: orders@acme.example")
}

func TestCreateRejectsInvalidEmail(t *testing.T) {
	svc := NewService(newMemoryRepo())

	req := validRequest()
	req.Email = "nope"
	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestUpdateEmailChangeChecksUniqueness(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.Email = "sales@other.example"
	created, err := svc.Create(ctx, other)
	require.NoError(t, err)

	taken := validRequest()
	_, err = svc.Update(ctx, created.ID, taken)
	require.ErrorIs(t, err, shared.ErrConflict)

	same := other
	same.ContactName = "Road Runner"
	updated, err := svc.Update(ctx, created.ID, same)
	require.NoError(t, err)
	require.Equal(t, "Road Runner", updated.ContactName)
}

func TestGetByEmail(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	c, err := svc.GetByEmail(ctx, "orders@acme.example")
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", c.CompanyName)

	_, err = svc.GetByEmail(ctx, "missing@acme.example")
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestActivateDeactivate(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	c, err := svc.Deactivate(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, c.Active)

	c, err = svc.Activate(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, c.Active)

	_, err = svc.Activate(ctx, 99)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestListByCreditLimitAndCountry(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	small := CustomerRequest{
		CompanyName: "Tiny Ltd",
		ContactName: "Small Fry",
		Email:       "hi@tiny.example",
		Country:     strPtr("DE"),
		CreditLimit: floatPtr(100),
	}
	_, err = svc.Create(ctx, small)
	require.NoError(t, err)

	got, err := svc.List(ctx, Filter{MinCreditLimit: floatPtr(1000)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Acme Corp", got[0].CompanyName)

	active := true
	country := "DE"
	got, err = svc.List(ctx, Filter{Active: &active, Country: &country})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Tiny Ltd", got[0].CompanyName)
}
