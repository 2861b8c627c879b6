package ports

import (
	"io"
	"io/fs"
)

type FilesystemService interface {
	Stat(path string) (fs.FileInfo, error)
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(path string) ([]fs.DirEntry, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error
	Open(path string) (io.ReadCloser, error)
	Remove(path string) error
	RemoveAll(path string) error
}

type ImageStorageService interface {
	Config() AreaConfig
	// SaveAreaImage stores content and returns the image path to record on the area.
	SaveAreaImage(area Area, filename string, content []byte) (imagePath string, err error)
	OpenAreaImage(imagePath string) (rc io.ReadCloser, contentType string, err error)
	DeleteAreaImage(imagePath string) error
}
