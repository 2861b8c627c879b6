package fs

import (
	"area-api/internal/app/ports"
	"io"
	"io/fs"
)

// NoneFilesystemService accepts writes and discards them; nothing can be read back.
type NoneFilesystemService struct{}

var _ ports.FilesystemService = (*NoneFilesystemService)(nil)

func NewNoneFilesystemService() *NoneFilesystemService {
	return &NoneFilesystemService{}
}

func (NoneFilesystemService) Stat(_ string) (fs.FileInfo, error) { return nil, fs.ErrNotExist }
func (NoneFilesystemService) MkdirAll(_ string, _ fs.FileMode) error {
	return nil
}
func (NoneFilesystemService) ReadDir(_ string) ([]fs.DirEntry, error)           { return []fs.DirEntry{}, nil }
func (NoneFilesystemService) WriteFile(_ string, _ []byte, _ fs.FileMode) error { return nil }
func (NoneFilesystemService) Open(_ string) (io.ReadCloser, error)              { return nil, fs.ErrNotExist }
func (NoneFilesystemService) Remove(_ string) error                             { return nil }
func (NoneFilesystemService) RemoveAll(_ string) error                          { return nil }
