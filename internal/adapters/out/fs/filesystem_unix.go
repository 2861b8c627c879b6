package fs

import (
	"area-api/internal/app/ports"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

type UnixFilesystemService struct{}

var _ ports.FilesystemService = (*UnixFilesystemService)(nil)

func NewUnixFilesystemService() *UnixFilesystemService {
	return &UnixFilesystemService{}
}

func (UnixFilesystemService) Stat(p string) (fs.FileInfo, error) { return os.Lstat(p) }
func (UnixFilesystemService) MkdirAll(p string, perm fs.FileMode) error {
	return os.MkdirAll(p, perm)
}
func (UnixFilesystemService) ReadDir(p string) ([]fs.DirEntry, error) { return os.ReadDir(p) }
func (UnixFilesystemService) Open(p string) (io.ReadCloser, error)    { return os.Open(p) }
func (UnixFilesystemService) Remove(p string) error                   { return os.Remove(p) }
func (UnixFilesystemService) RemoveAll(p string) error                { return os.RemoveAll(p) }

// WriteFile writes to a temporary sibling and renames it into place, so readers never see a partial file.
func (UnixFilesystemService) WriteFile(p string, data []byte, perm fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(p), "."+filepath.Base(p)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, p); err != nil {
		cleanup()
		return err
	}
	return nil
}
