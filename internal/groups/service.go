package groups

import (
	"context"
	"fmt"
	"time"

	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

// Service provides business logic for group operations.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs a group service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns groups matching the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]Group, error) {
	return s.repo.List(ctx, f)
}

// Get retrieves a group by id.
func (s *Service) Get(ctx context.Context, id int64) (Group, error) {
	return s.repo.Get(ctx, id)
}

// GetByName retrieves a group by its unique name.
func (s *Service) GetByName(ctx context.Context, name string) (Group, error) {
	return s.repo.GetByName(ctx, name)
}

// Create validates and stores a new group, stamping creation and activity
// dates.
func (s *Service) Create(ctx context.Context, req GroupRequest) (Group, error) {
	if err := shared.Validate(req); err != nil {
		return Group{}, err
	}
	if err := checkCapacityBound(req.MaxMembers, req.CurrentMemberCount); err != nil {
		return Group{}, err
	}
	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return Group{}, fmt.Errorf("check group name: %w", err)
	}
	if exists {
		return Group{}, shared.Conflictf("Group name already exists: %s", req.Name)
	}
	g := req.toModel()
	now := s.now()
	g.CreatedDate = now
	g.LastActivityDate = now
	return s.repo.Create(ctx, g)
}

// Update replaces every mutable field of an existing group. The name
// uniqueness check is re-run only when the name changed; the creation date
// is preserved.
func (s *Service) Update(ctx context.Context, id int64, req GroupRequest) (Group, error) {
	if err := shared.Validate(req); err != nil {
		return Group{}, err
	}
	if err := checkCapacityBound(req.MaxMembers, req.CurrentMemberCount); err != nil {
		return Group{}, err
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Group{}, err
	}
	if current.Name != req.Name {
		exists, err := s.repo.ExistsByName(ctx, req.Name)
		if err != nil {
			return Group{}, fmt.Errorf("check group name: %w", err)
		}
		if exists {
			return Group{}, shared.Conflictf("Group name already exists: %s", req.Name)
		}
	}
	next := req.toModel()
	next.ID = id
	next.CreatedDate = current.CreatedDate
	next.LastActivityDate = current.LastActivityDate
	if req.CurrentMemberCount == nil {
		next.CurrentMemberCount = current.CurrentMemberCount
	}
	if req.IsPublic == nil {
		next.IsPublic = current.IsPublic
	}
	if req.RequiresApproval == nil {
		next.RequiresApproval = current.RequiresApproval
	}
	if req.Active == nil {
		next.Active = current.Active
	}
	return s.repo.Update(ctx, next)
}

func checkCapacityBound(max *int32, count *int32) error {
	if max != nil && count != nil && *count > *max {
		return shared.Validationf("Member count cannot exceed max members limit: %d", *max)
	}
	return nil
}

// Delete removes a group by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Activate marks a group active.
func (s *Service) Activate(ctx context.Context, id int64) (Group, error) {
	return s.patch(ctx, id, func(g *Group) error {
		g.Active = true
		return nil
	})
}

// Deactivate marks a group inactive.
func (s *Service) Deactivate(ctx context.Context, id int64) (Group, error) {
	return s.patch(ctx, id, func(g *Group) error {
		g.Active = false
		return nil
	})
}

// MakePublic opens the group.
func (s *Service) MakePublic(ctx context.Context, id int64) (Group, error) {
	return s.patch(ctx, id, func(g *Group) error {
		g.IsPublic = true
		return nil
	})
}

// MakePrivate closes the group.
func (s *Service) MakePrivate(ctx context.Context, id int64) (Group, error) {
	return s.patch(ctx, id, func(g *Group) error {
		g.IsPublic = false
		return nil
	})
}

// UpdateMemberCount sets the member count, capped by maxMembers when set.
func (s *Service) UpdateMemberCount(ctx context.Context, id int64, count int32) (Group, error) {
	if count < 0 {
		return Group{}, shared.Validationf("memberCount is below the allowed minimum")
	}
	return s.patch(ctx, id, func(g *Group) error {
		if g.MaxMembers != nil && count > *g.MaxMembers {
			return shared.Validationf("Member count cannot exceed max members limit: %d", *g.MaxMembers)
		}
		g.CurrentMemberCount = count
		return nil
	})
}

// AddMember increments the member count, respecting capacity.
func (s *Service) AddMember(ctx context.Context, id int64) (Group, error) {
	return s.patch(ctx, id, func(g *Group) error {
		if g.MaxMembers != nil && g.CurrentMemberCount >= *g.MaxMembers {
			return shared.Validationf("Group has reached maximum capacity: %d", *g.MaxMembers)
		}
		g.CurrentMemberCount++
		return nil
	})
}

// RemoveMember decrements the member count, never below zero.
func (s *Service) RemoveMember(ctx context.Context, id int64) (Group, error) {
	return s.patch(ctx, id, func(g *Group) error {
		if g.CurrentMemberCount <= 0 {
			return shared.Validationf("Group has no members to remove")
		}
		g.CurrentMemberCount--
		return nil
	})
}

// UpdateTags replaces the tags string.
func (s *Service) UpdateTags(ctx context.Context, id int64, tags string) (Group, error) {
	return s.patch(ctx, id, func(g *Group) error {
		g.Tags = &tags
		return nil
	})
}

// TouchActivity refreshes the last activity date.
func (s *Service) TouchActivity(ctx context.Context, id int64) (Group, error) {
	return s.patch(ctx, id, func(g *Group) error { return nil })
}

// patch applies mutate atomically through the repository and refreshes
// lastActivityDate, mirroring the behavior of every narrow group mutator.
// Going through Repository.Patch keeps read-modify-writes such as AddMember
// safe under concurrency.
func (s *Service) patch(ctx context.Context, id int64, mutate func(*Group) error) (Group, error) {
	return s.repo.Patch(ctx, id, func(g *Group) error {
		if err := mutate(g); err != nil {
			return err
		}
		g.LastActivityDate = s.now()
		return nil
	})
}
