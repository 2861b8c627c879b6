package fs

import (
	"area-api/internal/app/ports"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// InMemFilesystemService is a simple in-memory tree of directories and files
// implementing FilesystemService (for tests and unit logic).
type InMemFilesystemService struct {
	mu   sync.RWMutex
	root *memDir
}

var _ ports.FilesystemService = (*InMemFilesystemService)(nil)

type memDir struct {
	name  string
	mode  fs.FileMode
	sub   map[string]*memDir
	files map[string]*memFile
}

type memFile struct {
	name    string
	mode    fs.FileMode
	data    []byte
	modTime time.Time
}

func NewInMemFilesystemService() *InMemFilesystemService {
	return &InMemFilesystemService{root: newMemDir("/", 0o755)}
}

func newMemDir(name string, mode fs.FileMode) *memDir {
	return &memDir{name: name, mode: mode, sub: map[string]*memDir{}, files: map[string]*memFile{}}
}

func (m *InMemFilesystemService) Stat(p string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	parent, base, err := m.lookupParent(p)
	if err != nil {
		if base == "" {
			return memDirInfo{m.root}, nil
		}
		return nil, err
	}
	if d, ok := parent.sub[base]; ok {
		return memDirInfo{d}, nil
	}
	if f, ok := parent.files[base]; ok {
		return memFileInfo{f}, nil
	}
	return nil, fs.ErrNotExist
}

func (m *InMemFilesystemService) MkdirAll(p string, perm fs.FileMode) error {
	if p == "" || p == "/" || p == "." {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.lookupDir(p, true)
	if err != nil {
		return err
	}
	d.mode = perm
	return nil
}

func (m *InMemFilesystemService) ReadDir(p string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, err := m.lookupDir(p, false)
	if err != nil {
		return nil, fmt.Errorf("not a directory: %w", err)
	}
	out := make([]fs.DirEntry, 0, len(d.sub)+len(d.files))
	for _, sd := range d.sub {
		out = append(out, fs.FileInfoToDirEntry(memDirInfo{sd}))
	}
	for _, f := range d.files {
		out = append(out, fs.FileInfoToDirEntry(memFileInfo{f}))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (m *InMemFilesystemService) WriteFile(p string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	parent, base, err := m.lookupParent(p)
	if err != nil {
		return fmt.Errorf("parent directory not found: %w", err)
	}
	if base == "" {
		return fmt.Errorf("invalid file path: %q", p)
	}
	if _, ok := parent.sub[base]; ok {
		return fmt.Errorf("is a directory: %s", p)
	}
	parent.files[base] = &memFile{name: base, mode: perm, data: bytes.Clone(data), modTime: time.Now()}
	return nil
}

func (m *InMemFilesystemService) Open(p string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	parent, base, err := m.lookupParent(p)
	if err != nil {
		return nil, err
	}
	f, ok := parent.files[base]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

func (m *InMemFilesystemService) Remove(p string) error {
	if p == "" || p == "/" || p == "." {
		return errors.New("refusing to remove root or invalid path")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	parent, base, err := m.lookupParent(p)
	if err != nil {
		return fmt.Errorf("parent not found: %w", err)
	}
	if _, ok := parent.files[base]; ok {
		delete(parent.files, base)
		return nil
	}
	target, ok := parent.sub[base]
	if !ok {
		return fs.ErrNotExist
	}
	if len(target.sub) > 0 || len(target.files) > 0 {
		return fmt.Errorf("directory not empty: %s", p)
	}
	delete(parent.sub, base)
	return nil
}

func (m *InMemFilesystemService) RemoveAll(p string) error {
	if p == "/" || p == "." {
		return errors.New("refusing to remove root")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	parent, base, err := m.lookupParent(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	delete(parent.sub, base)
	delete(parent.files, base)
	return nil
}

/* ---------- Helpers ---------- */

func splitPath(p string) []string {
	p = filepath.Clean(p)
	if p == "/" || p == "." {
		return nil
	}
	p = strings.TrimPrefix(p, string(filepath.Separator))
	if p == "" {
		return nil
	}
	return strings.Split(p, string(filepath.Separator))
}

// lookupParent resolves the directory holding p and the last path element.
func (m *InMemFilesystemService) lookupParent(p string) (*memDir, string, error) {
	parts := splitPath(p)
	if len(parts) == 0 {
		return nil, "", errors.New("invalid path")
	}
	parent, err := m.walk(parts[:len(parts)-1], false)
	if err != nil {
		return nil, parts[len(parts)-1], err
	}
	return parent, parts[len(parts)-1], nil
}

func (m *InMemFilesystemService) lookupDir(p string, create bool) (*memDir, error) {
	return m.walk(splitPath(p), create)
}

func (m *InMemFilesystemService) walk(parts []string, create bool) (*memDir, error) {
	cur := m.root
	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}
		next, ok := cur.sub[part]
		if !ok {
			if !create {
				return nil, fs.ErrNotExist
			}
			if _, isFile := cur.files[part]; isFile {
				return nil, fmt.Errorf("not a directory: %s", part)
			}
			next = newMemDir(part, 0o755)
			cur.sub[part] = next
		}
		cur = next
	}
	return cur, nil
}

/* ---------- FileInfo wrappers ---------- */

type memDirInfo struct {
	d *memDir
}

var _ fs.FileInfo = (*memDirInfo)(nil)

func (f memDirInfo) Name() string       { return f.d.name }
func (f memDirInfo) Size() int64        { return 0 }
func (f memDirInfo) Mode() fs.FileMode  { return f.d.mode | fs.ModeDir }
func (f memDirInfo) ModTime() time.Time { return time.Time{} }
func (f memDirInfo) IsDir() bool        { return true }
func (f memDirInfo) Sys() any           { return nil }

type memFileInfo struct {
	f *memFile
}

var _ fs.FileInfo = (*memFileInfo)(nil)

func (f memFileInfo) Name() string       { return f.f.name }
func (f memFileInfo) Size() int64        { return int64(len(f.f.data)) }
func (f memFileInfo) Mode() fs.FileMode  { return f.f.mode }
func (f memFileInfo) ModTime() time.Time { return f.f.modTime }
func (f memFileInfo) IsDir() bool        { return false }
func (f memFileInfo) Sys() any           { return nil }
