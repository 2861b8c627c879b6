package ports

import "context"

type AreaRepository interface {
	HealthCheck(ctx context.Context) error
	GetInfo(ctx context.Context) (string, error)
	Close() error

	ListProjects(ctx context.Context) ([]Project, error)
	GetProject(ctx context.Context, id int64) (Project, error)
	AddProject(ctx context.Context, project Project) (Project, error)
	UpdateProject(ctx context.Context, project Project) (Project, error)
	DeleteProject(ctx context.Context, id int64) error

	ListDevices(ctx context.Context) ([]Device, error)
	ListProjectDevices(ctx context.Context, projectID int64) ([]Device, error)
	GetDevice(ctx context.Context, id int64) (Device, error)
	AddDevice(ctx context.Context, device Device) (Device, error)
	UpdateDevice(ctx context.Context, device Device) (Device, error)
	DeleteDevice(ctx context.Context, id int64) error

	ListAreas(ctx context.Context, q AreaQuery) ([]Area, error)
	CountAreas(ctx context.Context, q AreaQuery) (int, error)
	ListChildAreas(ctx context.Context, parentID int64) ([]Area, error)
	GetArea(ctx context.Context, id int64) (Area, error)
	FindAreaByKey(ctx context.Context, projectID int64, parentID *int64, name string) (Area, error)
	AddArea(ctx context.Context, area Area) (Area, error)
	// UpdateArea stores area only when the stored version equals expectedVersion.
	UpdateArea(ctx context.Context, area Area, expectedVersion int64) (Area, error)
	DeleteArea(ctx context.Context, id int64) error

	ListAreaDevices(ctx context.Context, areaID int64) ([]AreaDevice, error)
	GetAreaDevice(ctx context.Context, id int64) (AreaDevice, error)
	AddAreaDevice(ctx context.Context, ad AreaDevice) (AreaDevice, error)
	DeleteAreaDevice(ctx context.Context, id int64) error
}
