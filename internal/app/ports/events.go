package ports

import (
	"context"
	"time"
)

type AreaEventType string

const (
	EventAreaCreated       AreaEventType = "area.created"
	EventAreaUpdated       AreaEventType = "area.updated"
	EventAreaDeleted       AreaEventType = "area.deleted"
	EventAreaDeviceAdded   AreaEventType = "area.device.added"
	EventAreaDeviceRemoved AreaEventType = "area.device.removed"
	EventAreaImageSet      AreaEventType = "area.image.set"
	EventAreaImageUnset    AreaEventType = "area.image.unset"
)

type AreaEvent struct {
	Type      AreaEventType `json:"type"`
	AreaID    int64         `json:"areaId"`
	ProjectID int64         `json:"projectId"`
	DeviceID  *int64        `json:"deviceId,omitempty"`
	Principal string        `json:"principal"`
	At        time.Time     `json:"at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event AreaEvent) error
	Close()
}
