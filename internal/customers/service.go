package customers

import (
	"context"
	"fmt"

	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

// Service provides business logic for customer operations.
type Service struct {
	repo Repository
}

// NewService constructs a customer service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns customers matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Customer, error) {
	return s.repo.List(ctx, f)
}

// Get retrieves a customer by id.
func (s *Service) Get(ctx context.Context, id int64) (Customer, error) {
	return s.repo.Get(ctx, id)
}

// GetByEmail retrieves a customer by its unique email.
func (s *Service) GetByEmail(ctx context.Context, email string) (Customer, error) {
	return s.repo.GetByEmail(ctx, email)
}

// Create validates and stores a new customer.
func (s *Service) Create(ctx context.Context, req CustomerRequest) (Customer, error) {
	if err := shared.Validate(req); err != nil {
		return Customer{}, err
	}
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return Customer{}, fmt.Errorf("check customer email: %w", err)
	}
	if exists {
		return Customer{}, shared.Conflictf("Email already exists: %s", req.Email)
	}
	return s.repo.Create(ctx, req.toModel())
}

// Update replaces every mutable field of an existing customer. The email
// uniqueness check is re-run only when the email changed.
func (s *Service) Update(ctx context.Context, id int64, req CustomerRequest) (Customer, error) {
	if err := shared.Validate(req); err != nil {
		return Customer{}, err
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Customer{}, err
	}
	if current.Email != req.Email {
		exists, err := s.repo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return Customer{}, fmt.Errorf("check customer email: %w", err)
		}
		if exists {
			return Customer{}, shared.Conflictf("Email already exists: %s", req.Email)
		}
	}
	next := req.toModel()
	next.ID = id
	if req.Active == nil {
		next.Active = current.Active
	}
	return s.repo.Update(ctx, next)
}

// Delete removes a customer by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Activate marks a customer active.
func (s *Service) Activate(ctx context.Context, id int64) (Customer, error) {
	return s.patch(ctx, id, func(c *Customer) { c.Active = true })
}

// Deactivate marks a customer inactive.
func (s *Service) Deactivate(ctx context.Context, id int64) (Customer, error) {
	return s.patch(ctx, id, func(c *Customer) { c.Active = false })
}

func (s *Service) patch(ctx context.Context, id int64, mutate func(*Customer)) (Customer, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return Customer{}, err
	}
	mutate(&c)
	return s.repo.Update(ctx, c)
}
