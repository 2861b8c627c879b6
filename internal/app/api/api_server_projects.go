package api

import (
	"area-api/internal/app/ports"
	"context"
	"errors"
	"fmt"
)

func (s *DefaultApiServer) ListProjects(ctx context.Context, p ports.Principal) ([]ports.Project, error) {
	all, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ports.Project, 0, len(all))
	for _, project := range all {
		if p.CanAccessProject(project) {
			out = append(out, project)
		}
	}
	return out, nil
}

func (s *DefaultApiServer) GetProject(ctx context.Context, p ports.Principal, id int64) (ports.Project, error) {
	return s.permittedProject(ctx, p, id)
}

func (s *DefaultApiServer) EnsureProject(ctx context.Context, p ports.Principal, rp ports.Project) (pr ports.Project, created bool, err error) {
	if ve := validateProject(rp); ve.HasErrors() {
		return ports.Project{}, false, ve
	}
	pr, err = s.repo.GetProject(ctx, rp.ID)
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			return ports.Project{}, false, err
		}
		// Project ids mirror the platform, so only admins may register new ones.
		if !p.Admin {
			return ports.Project{}, false, fmt.Errorf("create project %d for %s: %w", rp.ID, p, ports.ErrForbidden)
		}
		pr, err = s.repo.AddProject(ctx, rp)
		if err != nil {
			return ports.Project{}, false, err
		}
		return pr, true, nil
	}
	if !p.CanAccessProject(pr) {
		return ports.Project{}, false, fmt.Errorf("project %d for %s: %w", rp.ID, p, ports.ErrForbidden)
	}
	if !sameProjectData(pr, rp) {
		return ports.Project{}, false, fmt.Errorf("project %d exists with different attributes: %w", rp.ID, ports.ErrConflict)
	}
	return pr, false, nil
}

func (s *DefaultApiServer) UpdateProject(ctx context.Context, p ports.Principal, id int64, mutate func(project ports.Project) (ports.Project, error)) (ports.Project, error) {
	pr, err := s.permittedProject(ctx, p, id)
	if err != nil {
		return ports.Project{}, err
	}
	mp, err := mutate(pr)
	if err != nil {
		return ports.Project{}, err
	}
	mp.ID = pr.ID
	if ve := validateProject(mp); ve.HasErrors() {
		return ports.Project{}, ve
	}
	if !p.CanAccessProject(mp) {
		return ports.Project{}, fmt.Errorf("hand over project %d for %s: %w", id, p, ports.ErrForbidden)
	}
	mp.EntityVersion = pr.EntityVersion + 1
	return s.repo.UpdateProject(ctx, mp)
}

// DeleteProject drops the project together with its areas, devices and images.
func (s *DefaultApiServer) DeleteProject(ctx context.Context, p ports.Principal, id int64) error {
	if _, err := s.permittedProject(ctx, p, id); err != nil {
		return err
	}
	areas, err := s.repo.ListAreas(ctx, ports.AreaQuery{ProjectIDs: []int64{id}})
	if err != nil {
		return err
	}
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return err
	}
	for _, a := range areas {
		s.dropImage(ctx, a)
		s.publish(ctx, p, ports.EventAreaDeleted, a, nil)
	}
	return nil
}

func sameProjectData(a, b ports.Project) bool {
	if a.ID != b.ID || a.Name != b.Name || a.OwnerUserID != b.OwnerUserID {
		return false
	}
	return sameOptional(a.Description, b.Description)
}

func sameOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
