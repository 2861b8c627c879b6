package api

import (
	"area-api/internal/app/ports"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Enforce compile-time conformance to the interface
var _ ports.ApiServer = (*DefaultApiServer)(nil)

type DefaultApiServer struct {
	repo   ports.AreaRepository
	images ports.ImageStorageService
	events ports.EventPublisher
}

func NewDefaultApiServer(repo ports.AreaRepository, images ports.ImageStorageService, events ports.EventPublisher) (*DefaultApiServer, error) {
	if repo == nil {
		return nil, errors.New("area repository is nil")
	}
	if images == nil {
		return nil, errors.New("image storage service is nil")
	}
	if events == nil {
		return nil, errors.New("event publisher is nil")
	}
	return &DefaultApiServer{
		repo:   repo,
		images: images,
		events: events,
	}, nil
}

func (s *DefaultApiServer) HealthCheck(ctx context.Context) error {
	return s.repo.HealthCheck(ctx)
}

// Close flushes the event publisher before the repository goes away.
func (s *DefaultApiServer) Close() error {
	s.events.Close()
	if err := s.repo.Close(); err != nil {
		return fmt.Errorf("close area repository: %w", err)
	}
	return nil
}

// permittedProject loads the project, then checks that p may act on it.
func (s *DefaultApiServer) permittedProject(ctx context.Context, p ports.Principal, projectID int64) (ports.Project, error) {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return ports.Project{}, fmt.Errorf("project %d: %w", projectID, err)
	}
	if !p.CanAccessProject(project) {
		return ports.Project{}, fmt.Errorf("project %d for %s: %w", projectID, p, ports.ErrForbidden)
	}
	return project, nil
}

func (s *DefaultApiServer) permittedArea(ctx context.Context, p ports.Principal, areaID int64) (ports.Area, error) {
	area, err := s.repo.GetArea(ctx, areaID)
	if err != nil {
		return ports.Area{}, fmt.Errorf("area %d: %w", areaID, err)
	}
	if _, err := s.permittedProject(ctx, p, area.ProjectID); err != nil {
		return ports.Area{}, err
	}
	return area, nil
}

// permittedAreaQuery selects the areas of every project p may act on.
func (s *DefaultApiServer) permittedAreaQuery(ctx context.Context, p ports.Principal) (ports.AreaQuery, error) {
	if p.Admin {
		return ports.AreaQuery{AllProjects: true}, nil
	}
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return ports.AreaQuery{}, err
	}
	q := ports.AreaQuery{}
	for _, project := range projects {
		if p.CanAccessProject(project) {
			q.ProjectIDs = append(q.ProjectIDs, project.ID)
		}
	}
	return q, nil
}

// publish never fails the operation that triggered it.
func (s *DefaultApiServer) publish(ctx context.Context, p ports.Principal, typ ports.AreaEventType, area ports.Area, deviceID *int64) {
	e := ports.AreaEvent{
		Type:      typ,
		AreaID:    area.ID,
		ProjectID: area.ProjectID,
		DeviceID:  deviceID,
		Principal: p.String(),
		At:        time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, e); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Str("event", string(typ)).
			Int64("area_id", area.ID).
			Msg("cannot publish area event")
	}
}

// ioError marks image storage failures that are not caused by the caller.
func ioError(err error) error {
	if err == nil || errors.Is(err, ports.ErrInvalidInput) || errors.Is(err, ports.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", ports.ErrIO, err)
}
