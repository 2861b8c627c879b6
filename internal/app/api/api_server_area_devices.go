package api

import (
	"area-api/internal/app/ports"
	"context"
	"errors"
	"fmt"
	"strconv"
)

func (s *DefaultApiServer) AddAreaDevice(ctx context.Context, p ports.Principal, areaID, deviceID int64) (ports.AreaDevice, error) {
	area, err := s.repo.GetArea(ctx, areaID)
	if err != nil {
		return ports.AreaDevice{}, fmt.Errorf("area %d: %w", areaID, err)
	}
	device, err := s.repo.GetDevice(ctx, deviceID)
	if err != nil {
		return ports.AreaDevice{}, fmt.Errorf("device %d: %w", deviceID, err)
	}
	if _, err := s.permittedProject(ctx, p, area.ProjectID); err != nil {
		return ports.AreaDevice{}, err
	}
	if device.ProjectID != area.ProjectID {
		return ports.AreaDevice{}, ports.NewValidationError("device", "device belongs to another project", strconv.FormatInt(deviceID, 10))
	}

	ad, err := s.repo.AddAreaDevice(ctx, ports.AreaDevice{AreaID: areaID, DeviceID: deviceID})
	if err != nil {
		if errors.Is(err, ports.ErrAlreadyExists) {
			return ports.AreaDevice{}, duplicateAreaDevice(areaID, deviceID)
		}
		return ports.AreaDevice{}, err
	}
	s.publish(ctx, p, ports.EventAreaDeviceAdded, area, &deviceID)
	return ad, nil
}

func (s *DefaultApiServer) GetAreaDeviceList(ctx context.Context, p ports.Principal, areaID int64) ([]ports.AreaDevice, error) {
	if _, err := s.permittedArea(ctx, p, areaID); err != nil {
		return nil, err
	}
	return s.repo.ListAreaDevices(ctx, areaID)
}

func (s *DefaultApiServer) RemoveAreaDevice(ctx context.Context, p ports.Principal, areaID, areaDeviceID int64) error {
	area, err := s.permittedArea(ctx, p, areaID)
	if err != nil {
		return err
	}
	ad, err := s.repo.GetAreaDevice(ctx, areaDeviceID)
	if err != nil {
		return fmt.Errorf("area device %d: %w", areaDeviceID, err)
	}
	if ad.AreaID != areaID {
		return fmt.Errorf("area device %d in area %d: %w", areaDeviceID, areaID, ports.ErrNotFound)
	}
	if err := s.repo.DeleteAreaDevice(ctx, areaDeviceID); err != nil {
		return err
	}
	s.publish(ctx, p, ports.EventAreaDeviceRemoved, area, &ad.DeviceID)
	return nil
}
