package api

import (
	"area-api/internal/app/ports"
	"context"
	"errors"
	"fmt"
)

// ListDevices lists the devices of one project, or of every permitted project when projectID is 0.
func (s *DefaultApiServer) ListDevices(ctx context.Context, p ports.Principal, projectID int64) ([]ports.Device, error) {
	if projectID != 0 {
		if _, err := s.permittedProject(ctx, p, projectID); err != nil {
			return nil, err
		}
		return s.repo.ListProjectDevices(ctx, projectID)
	}
	projects, err := s.ListProjects(ctx, p)
	if err != nil {
		return nil, err
	}
	permitted := make(map[int64]bool, len(projects))
	for _, project := range projects {
		permitted[project.ID] = true
	}
	all, err := s.repo.ListDevices(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ports.Device, 0, len(all))
	for _, d := range all {
		if permitted[d.ProjectID] {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *DefaultApiServer) GetDevice(ctx context.Context, p ports.Principal, id int64) (ports.Device, error) {
	d, err := s.repo.GetDevice(ctx, id)
	if err != nil {
		return ports.Device{}, fmt.Errorf("device %d: %w", id, err)
	}
	if _, err := s.permittedProject(ctx, p, d.ProjectID); err != nil {
		return ports.Device{}, err
	}
	return d, nil
}

func (s *DefaultApiServer) EnsureDevice(ctx context.Context, p ports.Principal, rd ports.Device) (d ports.Device, created bool, err error) {
	if ve := validateDevice(rd); ve.HasErrors() {
		return ports.Device{}, false, ve
	}
	d, err = s.repo.GetDevice(ctx, rd.ID)
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			return ports.Device{}, false, err
		}
		if _, err := s.permittedProject(ctx, p, rd.ProjectID); err != nil {
			return ports.Device{}, false, err
		}
		d, err = s.repo.AddDevice(ctx, rd)
		if err != nil {
			return ports.Device{}, false, err
		}
		return d, true, nil
	}
	if _, err := s.permittedProject(ctx, p, d.ProjectID); err != nil {
		return ports.Device{}, false, err
	}
	if !sameDeviceData(d, rd) {
		return ports.Device{}, false, fmt.Errorf("device %d exists with different attributes: %w", rd.ID, ports.ErrConflict)
	}
	return d, false, nil
}

// DeleteDevice drops the device and its area assignments.
func (s *DefaultApiServer) DeleteDevice(ctx context.Context, p ports.Principal, id int64) error {
	if _, err := s.GetDevice(ctx, p, id); err != nil {
		return err
	}
	return s.repo.DeleteDevice(ctx, id)
}

func sameDeviceData(a, b ports.Device) bool {
	if a.ID != b.ID || a.DeviceName != b.DeviceName || a.ProjectID != b.ProjectID {
		return false
	}
	return sameOptional(a.Description, b.Description)
}
