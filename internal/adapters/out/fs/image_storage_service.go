package fs

import (
	"area-api/internal/app/config"
	"area-api/internal/app/ports"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var _ ports.ImageStorageService = (*DefaultImageStorageService)(nil)

// DefaultImageStorageService keeps area images under <images_base_dir>/<projectId>/.
// Image paths recorded on areas are relative to the base dir.
type DefaultImageStorageService struct {
	fs      ports.FilesystemService
	cfg     config.StorageConfig
	baseDir string
}

func NewDefaultImageStorageService(cfg config.StorageConfig, fs ports.FilesystemService, bootstrap bool) (*DefaultImageStorageService, error) {
	if strings.TrimSpace(cfg.ImagesBaseDir) == "" {
		return nil, errors.New("images base directory is not configured")
	}
	baseDir := filepath.Clean(cfg.ImagesBaseDir)
	if bootstrap && cfg.CreateImagesBaseDir {
		if err := fs.MkdirAll(baseDir, 0o750); err != nil {
			return nil, fmt.Errorf("cannot create images directory %q: %w", baseDir, err)
		}
	}
	// Verify baseDir exists and is a directory by attempting ReadDir.
	if _, err := fs.ReadDir(baseDir); err != nil {
		return nil, fmt.Errorf("images directory invalid %q: %w", baseDir, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &DefaultImageStorageService{fs: fs, cfg: cfg, baseDir: baseDir}, nil
}

func (s *DefaultImageStorageService) Config() ports.AreaConfig {
	exts := make([]string, len(s.cfg.SupportedExtensions))
	for i, e := range s.cfg.SupportedExtensions {
		exts[i] = normalizeExt(e)
	}
	return ports.AreaConfig{MaxFileSize: s.cfg.MaxFileSize, SupportedExtensions: exts}
}

func normalizeExt(e string) string {
	e = strings.ToLower(strings.TrimSpace(e))
	if e != "" && !strings.HasPrefix(e, ".") {
		e = "." + e
	}
	return e
}

// IsSupportedExtension reports whether filename carries one of the configured image extensions.
func (s *DefaultImageStorageService) IsSupportedExtension(filename string) bool {
	return slices.Contains(s.Config().SupportedExtensions, strings.ToLower(filepath.Ext(filename)))
}

func (s *DefaultImageStorageService) SaveAreaImage(area ports.Area, filename string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("empty image: %w", ports.ErrInvalidInput)
	}
	if s.cfg.MaxFileSize > 0 && int64(len(content)) > s.cfg.MaxFileSize {
		return "", fmt.Errorf("image of %d bytes exceeds %d: %w", len(content), s.cfg.MaxFileSize, ports.ErrInvalidInput)
	}
	if !s.IsSupportedExtension(filename) {
		return "", fmt.Errorf("image extension %q not supported: %w", filepath.Ext(filename), ports.ErrInvalidInput)
	}
	projectDir := strconv.FormatInt(area.ProjectID, 10)
	rel := filepath.Join(projectDir, fmt.Sprintf("area-%d-%s%s", area.ID, uuid.NewString(), strings.ToLower(filepath.Ext(filename))))
	abs, err := s.resolve(rel)
	if err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(filepath.Dir(abs), 0o750); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", filepath.Dir(abs), err)
	}
	if err := s.fs.WriteFile(abs, content, 0o640); err != nil {
		return "", fmt.Errorf("write image %s: %w", abs, err)
	}
	return filepath.ToSlash(rel), nil
}

func (s *DefaultImageStorageService) OpenAreaImage(imagePath string) (io.ReadCloser, string, error) {
	abs, err := s.resolve(imagePath)
	if err != nil {
		return nil, "", err
	}
	rc, err := s.fs.Open(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("image %q: %w", imagePath, ports.ErrNotFound)
		}
		return nil, "", err
	}
	return rc, ContentTypeFor(imagePath), nil
}

func (s *DefaultImageStorageService) DeleteAreaImage(imagePath string) error {
	abs, err := s.resolve(imagePath)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(abs); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove image %s: %w", abs, err)
	}
	return nil
}

// resolve maps a relative image path to an absolute one inside the base dir.
func (s *DefaultImageStorageService) resolve(imagePath string) (string, error) {
	rel := filepath.Clean(filepath.FromSlash(imagePath))
	if rel == "." || strings.HasPrefix(rel, string(filepath.Separator)) {
		return "", fmt.Errorf("invalid image path %q: %w", imagePath, ports.ErrInvalidInput)
	}
	abs := filepath.Clean(filepath.Join(s.baseDir, rel))
	if !strings.HasPrefix(abs, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("image path %q escapes %q: %w", imagePath, s.baseDir, ports.ErrInvalidInput)
	}
	return abs, nil
}

// ContentTypeFor guesses the media type from the file extension.
func ContentTypeFor(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".svg":
		return "image/svg+xml"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
