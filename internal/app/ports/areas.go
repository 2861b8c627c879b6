package ports

import (
	"strings"
	"time"
)

type AreaViewType string

const (
	AreaViewImage  AreaViewType = "IMAGE"
	AreaViewMap    AreaViewType = "MAP"
	AreaViewBimXkt AreaViewType = "BIM_XKT"
	AreaViewBimIfc AreaViewType = "BIM_IFC"
)

func ParseAreaViewType(s string) (AreaViewType, error) {
	switch AreaViewType(strings.ToUpper(strings.TrimSpace(s))) {
	case "", AreaViewImage:
		return AreaViewImage, nil
	case AreaViewMap:
		return AreaViewMap, nil
	case AreaViewBimXkt:
		return AreaViewBimXkt, nil
	case AreaViewBimIfc:
		return AreaViewBimIfc, nil
	default:
		return "", ErrInvalidInput
	}
}

// Project mirrors a platform project; it owns areas and devices.
type Project struct {
	ID               int64     `yaml:"id" json:"id"`
	Name             string    `yaml:"name" json:"name"`
	Description      *string   `yaml:"description" json:"description,omitempty"`
	OwnerUserID      int64     `yaml:"owner_user_id" json:"ownerUserId"`
	EntityVersion    int64     `yaml:"-" json:"entityVersion"`
	EntityCreateDate time.Time `yaml:"-" json:"entityCreateDate"`
	EntityModifyDate time.Time `yaml:"-" json:"entityModifyDate"`
}

// Device mirrors a platform device registered in a project.
type Device struct {
	ID               int64     `yaml:"id" json:"id"`
	DeviceName       string    `yaml:"device_name" json:"deviceName"`
	Description      *string   `yaml:"description" json:"description,omitempty"`
	ProjectID        int64     `yaml:"project_id" json:"projectId"`
	EntityVersion    int64     `yaml:"-" json:"entityVersion"`
	EntityCreateDate time.Time `yaml:"-" json:"entityCreateDate"`
	EntityModifyDate time.Time `yaml:"-" json:"entityModifyDate"`
}

type MapInfo struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	Icon string  `json:"icon"`
}

type Area struct {
	ID                int64
	Name              string
	Description       *string
	MapInfo           *MapInfo
	AreaViewType      AreaViewType
	AreaConfiguration *string
	ImagePath         *string
	ParentAreaID      *int64
	ProjectID         int64
	EntityVersion     int64
	EntityCreateDate  time.Time
	EntityModifyDate  time.Time
}

func (a *Area) HasImage() bool {
	return a.ImagePath != nil && *a.ImagePath != ""
}

// SameParent reports whether both areas hang from the same parent (or are both roots).
func (a *Area) SameParent(parentID *int64) bool {
	if a.ParentAreaID == nil || parentID == nil {
		return a.ParentAreaID == nil && parentID == nil
	}
	return *a.ParentAreaID == *parentID
}

type AreaDevice struct {
	ID       int64 `json:"id"`
	AreaID   int64 `json:"areaId"`
	DeviceID int64 `json:"deviceId"`
}

type AreaTree struct {
	Area       Area
	InnerAreas []AreaTree
}

type AreaConfig struct {
	MaxFileSize         int64    `json:"maxFileSize"`
	SupportedExtensions []string `json:"supportedExtensions"`
}

type Page[T any] struct {
	Results     []T
	NumPages    int
	CurrentPage int
	NextPage    int
	Delta       int
	Total       int
}

// AreaQuery selects areas by project; AllProjects bypasses ProjectIDs.
// A zero Limit returns every matching row.
type AreaQuery struct {
	AllProjects bool
	ProjectIDs  []int64
	Offset      int
	Limit       int
}

// Principal is the caller on whose behalf an operation runs.
type Principal struct {
	UserID   int64
	Username string
	Admin    bool
	KeyID    string
}

func (p Principal) CanAccessProject(project Project) bool {
	return p.Admin || (p.UserID != 0 && project.OwnerUserID == p.UserID)
}

func (p Principal) String() string {
	if p.Username != "" {
		return p.Username
	}
	if p.KeyID != "" {
		return p.KeyID
	}
	return "anonymous"
}
