package areas

import (
	"area-api/internal/app/config"
	"area-api/internal/app/ports"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
)

type InMemAreaRepository struct {
	cfg          config.RepositoryInMemConfig
	projects     map[int64]*ports.Project
	devices      map[int64]*ports.Device
	areas        map[int64]*ports.Area
	areaDevices  map[int64]*ports.AreaDevice
	nextAreaID   int64
	nextAreaDvID int64
	mu           sync.RWMutex
}

// Enforce compile-time conformance to the interface
var _ ports.AreaRepository = (*InMemAreaRepository)(nil)

func NewInMemAreaRepository(cfg config.RepositoryInMemConfig) (*InMemAreaRepository, error) {
	return &InMemAreaRepository{
		cfg:          cfg,
		projects:     make(map[int64]*ports.Project),
		devices:      make(map[int64]*ports.Device),
		areas:        make(map[int64]*ports.Area),
		areaDevices:  make(map[int64]*ports.AreaDevice),
		nextAreaID:   1,
		nextAreaDvID: 1,
	}, nil
}

func (s *InMemAreaRepository) HealthCheck(_ context.Context) error {
	return nil
}

func (s *InMemAreaRepository) Close() error {
	return nil
}

func (s *InMemAreaRepository) GetInfo(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("in-memory: %d projects, %d devices, %d areas", len(s.projects), len(s.devices), len(s.areas)), nil
}

// checkLimit must be called with the write lock held.
func (s *InMemAreaRepository) checkLimit() error {
	if s.cfg.EntitiesLimit <= 0 {
		return nil
	}
	if len(s.projects)+len(s.devices)+len(s.areas)+len(s.areaDevices) >= s.cfg.EntitiesLimit {
		return fmt.Errorf("in-memory entities limit %d reached: %w", s.cfg.EntitiesLimit, ports.ErrLimitReached)
	}
	return nil
}

// sortedValues returns the kept values ordered by id, passed through clone when it is set.
func sortedValues[T any](m map[int64]*T, keep func(*T) bool, clone func(T) T) []T {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep == nil || keep(v) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		v := *m[id]
		if clone != nil {
			v = clone(v)
		}
		out = append(out, v)
	}
	return out
}

// --- Projects ---

func (s *InMemAreaRepository) ListProjects(_ context.Context) ([]ports.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.projects, nil, cloneProject), nil
}

func (s *InMemAreaRepository) GetProject(_ context.Context, id int64) (ports.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	if !ok {
		return ports.Project{}, ports.ErrNotFound
	}
	return cloneProject(*p), nil
}

func (s *InMemAreaRepository) AddProject(_ context.Context, project ports.Project) (ports.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.projects[project.ID]; exists {
		return ports.Project{}, fmt.Errorf("project %d: %w", project.ID, ports.ErrAlreadyExists)
	}
	if err := s.checkLimit(); err != nil {
		return ports.Project{}, err
	}
	now := time.Now().UTC()
	project.EntityVersion = 1
	project.EntityCreateDate, project.EntityModifyDate = now, now
	p := cloneProject(project)
	s.projects[project.ID] = &p
	return project, nil
}

func (s *InMemAreaRepository) UpdateProject(_ context.Context, project ports.Project) (ports.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.projects[project.ID]
	if !ok {
		return ports.Project{}, fmt.Errorf("project %d: %w", project.ID, ports.ErrNotFound)
	}
	project.EntityCreateDate = old.EntityCreateDate
	project.EntityModifyDate = time.Now().UTC()
	p := cloneProject(project)
	s.projects[project.ID] = &p
	return project, nil
}

func (s *InMemAreaRepository) DeleteProject(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return fmt.Errorf("project %d: %w", id, ports.ErrNotFound)
	}
	for areaID, a := range s.areas {
		if a.ProjectID == id {
			s.deleteAreaLocked(areaID)
		}
	}
	for devID, d := range s.devices {
		if d.ProjectID == id {
			s.deleteDeviceLocked(devID)
		}
	}
	delete(s.projects, id)
	return nil
}

// --- Devices ---

func (s *InMemAreaRepository) ListDevices(_ context.Context) ([]ports.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.devices, nil, cloneDevice), nil
}

func (s *InMemAreaRepository) ListProjectDevices(_ context.Context, projectID int64) ([]ports.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.devices, func(d *ports.Device) bool { return d.ProjectID == projectID }, cloneDevice), nil
}

func (s *InMemAreaRepository) GetDevice(_ context.Context, id int64) (ports.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.devices[id]
	if !ok {
		return ports.Device{}, ports.ErrNotFound
	}
	return cloneDevice(*d), nil
}

func (s *InMemAreaRepository) AddDevice(_ context.Context, device ports.Device) (ports.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.devices[device.ID]; exists {
		return ports.Device{}, fmt.Errorf("device %d: %w", device.ID, ports.ErrAlreadyExists)
	}
	if _, ok := s.projects[device.ProjectID]; !ok {
		return ports.Device{}, fmt.Errorf("device %d: project %d: %w", device.ID, device.ProjectID, ports.ErrNotFound)
	}
	if err := s.checkLimit(); err != nil {
		return ports.Device{}, err
	}
	now := time.Now().UTC()
	device.EntityVersion = 1
	device.EntityCreateDate, device.EntityModifyDate = now, now
	d := cloneDevice(device)
	s.devices[device.ID] = &d
	return device, nil
}

func (s *InMemAreaRepository) UpdateDevice(_ context.Context, device ports.Device) (ports.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.devices[device.ID]
	if !ok {
		return ports.Device{}, fmt.Errorf("device %d: %w", device.ID, ports.ErrNotFound)
	}
	if _, ok := s.projects[device.ProjectID]; !ok {
		return ports.Device{}, fmt.Errorf("device %d: project %d: %w", device.ID, device.ProjectID, ports.ErrNotFound)
	}
	device.EntityCreateDate = old.EntityCreateDate
	device.EntityModifyDate = time.Now().UTC()
	d := cloneDevice(device)
	s.devices[device.ID] = &d
	return device, nil
}

func (s *InMemAreaRepository) DeleteDevice(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.devices[id]; !ok {
		return fmt.Errorf("device %d: %w", id, ports.ErrNotFound)
	}
	s.deleteDeviceLocked(id)
	return nil
}

func (s *InMemAreaRepository) deleteDeviceLocked(id int64) {
	for adID, ad := range s.areaDevices {
		if ad.DeviceID == id {
			delete(s.areaDevices, adID)
		}
	}
	delete(s.devices, id)
}

// --- Areas ---

func areaMatcher(q ports.AreaQuery) func(*ports.Area) bool {
	return func(a *ports.Area) bool {
		return q.AllProjects || slices.Contains(q.ProjectIDs, a.ProjectID)
	}
}

func (s *InMemAreaRepository) ListAreas(_ context.Context, q ports.AreaQuery) ([]ports.Area, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := sortedValues(s.areas, areaMatcher(q), cloneArea)
	if q.Limit <= 0 {
		return all, nil
	}
	if q.Offset >= len(all) {
		return []ports.Area{}, nil
	}
	end := min(q.Offset+q.Limit, len(all))
	return all[q.Offset:end], nil
}

func (s *InMemAreaRepository) CountAreas(_ context.Context, q ports.AreaQuery) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match := areaMatcher(q)
	n := 0
	for _, a := range s.areas {
		if match(a) {
			n++
		}
	}
	return n, nil
}

func (s *InMemAreaRepository) ListChildAreas(_ context.Context, parentID int64) ([]ports.Area, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.areas, func(a *ports.Area) bool {
		return a.ParentAreaID != nil && *a.ParentAreaID == parentID
	}, cloneArea), nil
}

func (s *InMemAreaRepository) GetArea(_ context.Context, id int64) (ports.Area, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.areas[id]
	if !ok {
		return ports.Area{}, ports.ErrNotFound
	}
	return cloneArea(*a), nil
}

func (s *InMemAreaRepository) FindAreaByKey(_ context.Context, projectID int64, parentID *int64, name string) (ports.Area, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a := s.findByKeyLocked(projectID, parentID, name); a != nil {
		return cloneArea(*a), nil
	}
	return ports.Area{}, ports.ErrNotFound
}

func (s *InMemAreaRepository) findByKeyLocked(projectID int64, parentID *int64, name string) *ports.Area {
	for _, a := range s.areas {
		if a.ProjectID == projectID && a.Name == name && a.SameParent(parentID) {
			return a
		}
	}
	return nil
}

// checkAreaRefsLocked enforces the references and the unique key a database schema would.
func (s *InMemAreaRepository) checkAreaRefsLocked(area ports.Area) error {
	if _, ok := s.projects[area.ProjectID]; !ok {
		return fmt.Errorf("area %q: project %d: %w", area.Name, area.ProjectID, ports.ErrNotFound)
	}
	if area.ParentAreaID != nil {
		if _, ok := s.areas[*area.ParentAreaID]; !ok {
			return fmt.Errorf("area %q: parent area %d: %w", area.Name, *area.ParentAreaID, ports.ErrNotFound)
		}
	}
	if other := s.findByKeyLocked(area.ProjectID, area.ParentAreaID, area.Name); other != nil && other.ID != area.ID {
		return fmt.Errorf("area %q: %w", area.Name, ports.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemAreaRepository) AddArea(_ context.Context, area ports.Area) (ports.Area, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	area.ID = 0
	if err := s.checkAreaRefsLocked(area); err != nil {
		return ports.Area{}, err
	}
	if err := s.checkLimit(); err != nil {
		return ports.Area{}, err
	}
	now := time.Now().UTC()
	area.ID = s.nextAreaID
	s.nextAreaID++
	area.EntityVersion = 1
	area.EntityCreateDate, area.EntityModifyDate = now, now
	stored := cloneArea(area)
	s.areas[area.ID] = &stored
	return area, nil
}

func (s *InMemAreaRepository) UpdateArea(_ context.Context, area ports.Area, expectedVersion int64) (ports.Area, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.areas[area.ID]
	if !ok {
		return ports.Area{}, fmt.Errorf("area %d: %w", area.ID, ports.ErrNotFound)
	}
	if old.EntityVersion != expectedVersion {
		return ports.Area{}, fmt.Errorf("area %d version %d: %w", area.ID, expectedVersion, ports.ErrConflict)
	}
	if err := s.checkAreaRefsLocked(area); err != nil {
		return ports.Area{}, err
	}
	area.EntityCreateDate = old.EntityCreateDate
	area.EntityModifyDate = time.Now().UTC()
	stored := cloneArea(area)
	s.areas[area.ID] = &stored
	return area, nil
}

func (s *InMemAreaRepository) DeleteArea(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.areas[id]; !ok {
		return fmt.Errorf("area %d: %w", id, ports.ErrNotFound)
	}
	s.deleteAreaLocked(id)
	return nil
}

// deleteAreaLocked removes the area, its inner areas and their device assignments.
func (s *InMemAreaRepository) deleteAreaLocked(id int64) {
	if _, ok := s.areas[id]; !ok {
		return
	}
	for childID, a := range s.areas {
		if a.ParentAreaID != nil && *a.ParentAreaID == id {
			s.deleteAreaLocked(childID)
		}
	}
	for adID, ad := range s.areaDevices {
		if ad.AreaID == id {
			delete(s.areaDevices, adID)
		}
	}
	delete(s.areas, id)
}

// --- Area devices ---

func (s *InMemAreaRepository) ListAreaDevices(_ context.Context, areaID int64) ([]ports.AreaDevice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.areaDevices, func(ad *ports.AreaDevice) bool { return ad.AreaID == areaID }, nil), nil
}

func (s *InMemAreaRepository) GetAreaDevice(_ context.Context, id int64) (ports.AreaDevice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ad, ok := s.areaDevices[id]
	if !ok {
		return ports.AreaDevice{}, fmt.Errorf("area device %d: %w", id, ports.ErrNotFound)
	}
	return *ad, nil
}

func (s *InMemAreaRepository) AddAreaDevice(_ context.Context, ad ports.AreaDevice) (ports.AreaDevice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.areas[ad.AreaID]; !ok {
		return ports.AreaDevice{}, fmt.Errorf("area %d: %w", ad.AreaID, ports.ErrNotFound)
	}
	if _, ok := s.devices[ad.DeviceID]; !ok {
		return ports.AreaDevice{}, fmt.Errorf("device %d: %w", ad.DeviceID, ports.ErrNotFound)
	}
	for _, existing := range s.areaDevices {
		if existing.AreaID == ad.AreaID && existing.DeviceID == ad.DeviceID {
			return ports.AreaDevice{}, fmt.Errorf("device %d in area %d: %w", ad.DeviceID, ad.AreaID, ports.ErrAlreadyExists)
		}
	}
	if err := s.checkLimit(); err != nil {
		return ports.AreaDevice{}, err
	}
	ad.ID = s.nextAreaDvID
	s.nextAreaDvID++
	stored := ad
	s.areaDevices[ad.ID] = &stored
	return ad, nil
}

func (s *InMemAreaRepository) DeleteAreaDevice(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.areaDevices[id]; !ok {
		return fmt.Errorf("area device %d: %w", id, ports.ErrNotFound)
	}
	delete(s.areaDevices, id)
	return nil
}

// cloneArea copies the pointer fields so callers cannot mutate stored state.
func cloneArea(a ports.Area) ports.Area {
	if a.Description != nil {
		v := *a.Description
		a.Description = &v
	}
	if a.MapInfo != nil {
		v := *a.MapInfo
		a.MapInfo = &v
	}
	if a.AreaConfiguration != nil {
		v := *a.AreaConfiguration
		a.AreaConfiguration = &v
	}
	if a.ImagePath != nil {
		v := *a.ImagePath
		a.ImagePath = &v
	}
	if a.ParentAreaID != nil {
		v := *a.ParentAreaID
		a.ParentAreaID = &v
	}
	return a
}

func cloneProject(p ports.Project) ports.Project {
	if p.Description != nil {
		v := *p.Description
		p.Description = &v
	}
	return p
}

func cloneDevice(d ports.Device) ports.Device {
	if d.Description != nil {
		v := *d.Description
		d.Description = &v
	}
	return d
}
