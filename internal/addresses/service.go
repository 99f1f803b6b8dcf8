package addresses

import (
	"context"
	"fmt"

	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

// Service provides business logic for address operations.
type Service struct {
	repo Repository
}

// NewService constructs an address service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns addresses matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Address, error) {
	return s.repo.List(ctx, f)
}

// Get retrieves an address by id.
func (s *Service) Get(ctx context.Context, id int64) (Address, error) {
	return s.repo.Get(ctx, id)
}

// Create validates and stores a new address. Street, city and postal code
// together form the natural key.
func (s *Service) Create(ctx context.Context, req AddressRequest) (Address, error) {
	if err := shared.Validate(req); err != nil {
		return Address{}, err
	}
	exists, err := s.repo.ExistsByStreetCityPostal(ctx, req.Street, req.City, req.PostalCode)
	if err != nil {
		return Address{}, fmt.Errorf("check address: %w", err)
	}
	if exists {
		return Address{}, shared.Conflictf("Address already exists with same street, city, and postal code")
	}
	return s.repo.Create(ctx, req.toModel())
}

// Update replaces every mutable field of an existing address. The natural
// key check is re-run only when street, city or postal code changed.
func (s *Service) Update(ctx context.Context, id int64, req AddressRequest) (Address, error) {
	if err := shared.Validate(req); err != nil {
		return Address{}, err
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Address{}, err
	}
	if naturalKeyChanged(current, req) {
		exists, err := s.repo.ExistsByStreetCityPostal(ctx, req.Street, req.City, req.PostalCode)
		if err != nil {
			return Address{}, fmt.Errorf("check address: %w", err)
		}
		if exists {
			return Address{}, shared.Conflictf("Address already exists with same street, city, and postal code")
		}
	}
	next := req.toModel()
	next.ID = id
	if req.IsPrimary == nil {
		next.IsPrimary = current.IsPrimary
	}
	if req.Active == nil {
		next.Active = current.Active
	}
	return s.repo.Update(ctx, next)
}

func naturalKeyChanged(current Address, req AddressRequest) bool {
	if current.Street != req.Street || current.City != req.City {
		return true
	}
	switch {
	case current.PostalCode == nil && req.PostalCode == nil:
		return false
	case current.PostalCode == nil || req.PostalCode == nil:
		return true
	default:
		return *current.PostalCode != *req.PostalCode
	}
}

// Delete removes an address by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Activate marks an address active.
func (s *Service) Activate(ctx context.Context, id int64) (Address, error) {
	return s.patch(ctx, id, func(a *Address) { a.Active = true })
}

// Deactivate marks an address inactive.
func (s *Service) Deactivate(ctx context.Context, id int64) (Address, error) {
	return s.patch(ctx, id, func(a *Address) { a.Active = false })
}

// SetPrimary marks an address as the primary one.
func (s *Service) SetPrimary(ctx context.Context, id int64) (Address, error) {
	return s.patch(ctx, id, func(a *Address) { a.IsPrimary = true })
}

// SetNonPrimary clears the primary flag.
func (s *Service) SetNonPrimary(ctx context.Context, id int64) (Address, error) {
	return s.patch(ctx, id, func(a *Address) { a.IsPrimary = false })
}

// UpdateCoordinates sets the latitude/longitude pair.
func (s *Service) UpdateCoordinates(ctx context.Context, id int64, lat, lng float64) (Address, error) {
	if lat < -90 || lat > 90 {
		return Address{}, shared.Validationf("latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return Address{}, shared.Validationf("longitude must be between -180 and 180")
	}
	return s.patch(ctx, id, func(a *Address) {
		a.Latitude = &lat
		a.Longitude = &lng
	})
}

func (s *Service) patch(ctx context.Context, id int64, mutate func(*Address)) (Address, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return Address{}, err
	}
	mutate(&a)
	return s.repo.Update(ctx, a)
}
