package ports

import (
	"context"
	"io"
)

type ApiServer interface {
	HealthCheck(ctx context.Context) error
	// Close releases the event publisher and the repository.
	Close() error

	SaveArea(ctx context.Context, p Principal, area Area) (Area, error)
	UpdateArea(ctx context.Context, p Principal, area Area) (Area, error)
	FindArea(ctx context.Context, p Principal, id int64) (Area, error)
	DeleteArea(ctx context.Context, p Principal, id int64) error
	FindAllAreas(ctx context.Context, p Principal) ([]Area, error)
	FindAllAreasPaginated(ctx context.Context, p Principal, delta, page int) (Page[Area], error)
	FindAreasByProject(ctx context.Context, p Principal, projectID int64) ([]Area, error)
	GetAreaConfig() AreaConfig
	GetAreaTree(ctx context.Context, p Principal, id int64) (AreaTree, error)
	GetAreaPath(ctx context.Context, p Principal, id int64) ([]Area, error)

	AddAreaDevice(ctx context.Context, p Principal, areaID, deviceID int64) (AreaDevice, error)
	GetAreaDeviceList(ctx context.Context, p Principal, areaID int64) ([]AreaDevice, error)
	RemoveAreaDevice(ctx context.Context, p Principal, areaID, areaDeviceID int64) error

	SetAreaImage(ctx context.Context, p Principal, areaID int64, filename string, content io.Reader) (Area, error)
	GetAreaImage(ctx context.Context, p Principal, areaID int64) (rc io.ReadCloser, contentType string, err error)
	UnsetAreaImage(ctx context.Context, p Principal, areaID int64) (Area, error)

	ListProjects(ctx context.Context, p Principal) ([]Project, error)
	GetProject(ctx context.Context, p Principal, id int64) (Project, error)
	EnsureProject(ctx context.Context, p Principal, project Project) (pr Project, created bool, err error)
	UpdateProject(ctx context.Context, p Principal, id int64, mutate func(project Project) (Project, error)) (Project, error)
	DeleteProject(ctx context.Context, p Principal, id int64) error

	ListDevices(ctx context.Context, p Principal, projectID int64) ([]Device, error)
	GetDevice(ctx context.Context, p Principal, id int64) (Device, error)
	EnsureDevice(ctx context.Context, p Principal, device Device) (d Device, created bool, err error)
	DeleteDevice(ctx context.Context, p Principal, id int64) error
}
