package departments

import (
	"context"
	"fmt"

	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

// Service provides business logic for department operations.
type Service struct {
	repo Repository
}

// NewService constructs a department service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns departments matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Department, error) {
	return s.repo.List(ctx, f)
}

// Get retrieves a department by id.
func (s *Service) Get(ctx context.Context, id int64) (Department, error) {
	return s.repo.Get(ctx, id)
}

// GetByName retrieves a department by its unique name.
func (s *Service) GetByName(ctx context.Context, name string) (Department, error) {
	return s.repo.GetByName(ctx, name)
}

// Create validates and stores a new department. The unique index on name
// backs the existence check against concurrent creates.
func (s *Service) Create(ctx context.Context, req DepartmentRequest) (Department, error) {
	if err := shared.Validate(req); err != nil {
		return Department{}, err
	}
	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return Department{}, fmt.Errorf("check department name: %w", err)
	}
	if exists {
		return Department{}, shared.Conflictf("Department name already exists: %s", req.Name)
	}
	return s.repo.Create(ctx, req.toModel())
}

// Update replaces every mutable field of an existing department. The name
// uniqueness check is re-run only when the name changed.
func (s *Service) Update(ctx context.Context, id int64, req DepartmentRequest) (Department, error) {
	if err := shared.Validate(req); err != nil {
		return Department{}, err
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Department{}, err
	}
	if current.Name != req.Name {
		exists, err := s.repo.ExistsByName(ctx, req.Name)
		if err != nil {
			return Department{}, fmt.Errorf("check department name: %w", err)
		}
		if exists {
			return Department{}, shared.Conflictf("Department name already exists: %s", req.Name)
		}
	}
	next := req.toModel()
	next.ID = id
	if req.Active == nil {
		next.Active = current.Active
	}
	return s.repo.Update(ctx, next)
}

// Delete removes a department by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Activate marks a department active.
func (s *Service) Activate(ctx context.Context, id int64) (Department, error) {
	return s.patch(ctx, id, func(d *Department) { d.Active = true })
}

// Deactivate marks a department inactive.
func (s *Service) Deactivate(ctx context.Context, id int64) (Department, error) {
	return s.patch(ctx, id, func(d *Department) { d.Active = false })
}

// UpdateBudget sets the department budget.
func (s *Service) UpdateBudget(ctx context.Context, id int64, budget float64) (Department, error) {
	if budget < 0 {
		return Department{}, shared.Validationf("budget is below the allowed minimum")
	}
	return s.patch(ctx, id, func(d *Department) { d.Budget = &budget })
}

// UpdateEmployeeCount sets the department employee count.
func (s *Service) UpdateEmployeeCount(ctx context.Context, id int64, count int32) (Department, error) {
	if count < 0 {
		return Department{}, shared.Validationf("employeeCount is below the allowed minimum")
	}
	return s.patch(ctx, id, func(d *Department) { d.EmployeeCount = &count })
}

func (s *Service) patch(ctx context.Context, id int64, mutate func(*Department)) (Department, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return Department{}, err
	}
	mutate(&d)
	return s.repo.Update(ctx, d)
}
