package api

import (
	"area-api/internal/app/ports"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

func (s *DefaultApiServer) SetAreaImage(ctx context.Context, p ports.Principal, areaID int64, filename string, content io.Reader) (ports.Area, error) {
	area, err := s.permittedArea(ctx, p, areaID)
	if err != nil {
		return ports.Area{}, err
	}

	cfg := s.images.Config()
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(cfg.SupportedExtensions, ext) {
		return ports.Area{}, ports.NewValidationError("imageFile",
			"unsupported file extension, allowed: "+strings.Join(cfg.SupportedExtensions, ", "), filename)
	}
	if cfg.MaxFileSize > 0 {
		content = io.LimitReader(content, cfg.MaxFileSize+1)
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return ports.Area{}, fmt.Errorf("read image %q: %w", filename, ports.ErrInvalidInput)
	}
	if cfg.MaxFileSize > 0 && int64(len(data)) > cfg.MaxFileSize {
		return ports.Area{}, ports.NewValidationError("imageFile",
			"file is larger than "+strconv.FormatInt(cfg.MaxFileSize, 10)+" bytes", filename)
	}
	if len(data) == 0 {
		return ports.Area{}, ports.NewValidationError("imageFile", "file is empty", filename)
	}

	imagePath, err := s.images.SaveAreaImage(area, filename, data)
	if err != nil {
		return ports.Area{}, ioError(err)
	}
	previous := area.ImagePath
	area.ImagePath = &imagePath
	updated, err := s.bumpArea(ctx, area)
	if err != nil {
		_ = s.images.DeleteAreaImage(imagePath)
		return ports.Area{}, err
	}
	if previous != nil && *previous != "" && *previous != imagePath {
		if err := s.images.DeleteAreaImage(*previous); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Int64("area_id", areaID).Str("image", *previous).Msg("cannot remove replaced area image")
		}
	}
	s.publish(ctx, p, ports.EventAreaImageSet, updated, nil)
	return updated, nil
}

func (s *DefaultApiServer) GetAreaImage(ctx context.Context, p ports.Principal, areaID int64) (io.ReadCloser, string, error) {
	area, err := s.permittedArea(ctx, p, areaID)
	if err != nil {
		return nil, "", err
	}
	if !area.HasImage() {
		return nil, "", fmt.Errorf("image of area %d: %w", areaID, ports.ErrNotFound)
	}
	rc, contentType, err := s.images.OpenAreaImage(*area.ImagePath)
	if err != nil {
		return nil, "", ioError(err)
	}
	return rc, contentType, nil
}

func (s *DefaultApiServer) UnsetAreaImage(ctx context.Context, p ports.Principal, areaID int64) (ports.Area, error) {
	area, err := s.permittedArea(ctx, p, areaID)
	if err != nil {
		return ports.Area{}, err
	}
	if !area.HasImage() {
		return ports.Area{}, fmt.Errorf("image of area %d: %w", areaID, ports.ErrNotFound)
	}
	previous := *area.ImagePath
	area.ImagePath = nil
	updated, err := s.bumpArea(ctx, area)
	if err != nil {
		return ports.Area{}, err
	}
	if err := s.images.DeleteAreaImage(previous); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("area_id", areaID).Str("image", previous).Msg("cannot remove area image")
	}
	s.publish(ctx, p, ports.EventAreaImageUnset, updated, nil)
	return updated, nil
}

// bumpArea stores area with the next entity version.
func (s *DefaultApiServer) bumpArea(ctx context.Context, area ports.Area) (ports.Area, error) {
	expected := area.EntityVersion
	area.EntityVersion = expected + 1
	return s.repo.UpdateArea(ctx, area, expected)
}
