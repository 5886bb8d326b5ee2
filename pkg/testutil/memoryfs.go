package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/rigup/pkg/types"
)

// MemFS is an in-memory types.FS for tests. It tracks file content and
// permissions, and can be told to fail writes on specific paths to
// exercise permission-denied handling.
type MemFS struct {
	files map[string]*memFile
	dirs  map[string]bool

	// WriteErrs maps a path to the error its WriteFile should return
	WriteErrs map[string]error
}

type memFile struct {
	data []byte
	perm fs.FileMode
}

// NewMemFS creates an empty in-memory filesystem.
func NewMemFS() *MemFS {
	return &MemFS{
		files:     make(map[string]*memFile),
		dirs:      make(map[string]bool),
		WriteErrs: make(map[string]error),
	}
}

// Seed adds a file with content and the default 0644 permission.
func (m *MemFS) Seed(path, content string) {
	m.SeedPerm(path, content, 0644)
}

// SeedPerm adds a file with content and an explicit permission.
func (m *MemFS) SeedPerm(path, content string, perm fs.FileMode) {
	m.files[path] = &memFile{data: []byte(content), perm: perm}
}

// Content returns the current content of a file, and whether it exists.
func (m *MemFS) Content(path string) (string, bool) {
	f, ok := m.files[path]
	if !ok {
		return "", false
	}
	return string(f.data), true
}

// Paths returns all file paths, sorted, for assertion convenience.
func (m *MemFS) Paths() []string {
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (m *MemFS) Stat(name string) (fs.FileInfo, error) {
	if f, ok := m.files[name]; ok {
		return &memFileInfo{name: filepath.Base(name), size: int64(len(f.data)), perm: f.perm}, nil
	}
	if m.dirs[name] {
		return &memFileInfo{name: filepath.Base(name), dir: true, perm: 0755}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MemFS) ReadFile(name string) ([]byte, error) {
	f, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	data := make([]byte, len(f.data))
	copy(data, f.data)
	return data, nil
}

func (m *MemFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := m.writeErrFor(name); err != nil {
		return err
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.files[name] = &memFile{data: buf, perm: perm}
	return nil
}

func (m *MemFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := m.writeErrFor(path); err != nil {
		return err
	}
	for p := path; p != "/" && p != "."; p = filepath.Dir(p) {
		m.dirs[p] = true
	}
	return nil
}

func (m *MemFS) Rename(oldpath, newpath string) error {
	if err := m.writeErrFor(newpath); err != nil {
		return err
	}
	f, ok := m.files[oldpath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	m.files[newpath] = f
	delete(m.files, oldpath)
	return nil
}

func (m *MemFS) Remove(name string) error {
	if _, ok := m.files[name]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, name)
	return nil
}

// writeErrFor matches exact paths and directory prefixes, so a whole
// subtree can be made read-only with one entry.
func (m *MemFS) writeErrFor(name string) error {
	if err, ok := m.WriteErrs[name]; ok {
		return err
	}
	for p, err := range m.WriteErrs {
		if strings.HasSuffix(p, "/") && strings.HasPrefix(name, p) {
			return err
		}
	}
	return nil
}

// FailWrites makes every write under the given path fail with EACCES.
func (m *MemFS) FailWrites(path string) {
	m.WriteErrs[path] = &fs.PathError{Op: "open", Path: path, Err: os.ErrPermission}
}

var _ types.FS = (*MemFS)(nil)

type memFileInfo struct {
	name string
	size int64
	perm fs.FileMode
	dir  bool
}

func (i *memFileInfo) Name() string       { return i.name }
func (i *memFileInfo) Size() int64        { return i.size }
func (i *memFileInfo) ModTime() time.Time { return time.Time{} }
func (i *memFileInfo) IsDir() bool        { return i.dir }
func (i *memFileInfo) Sys() interface{}   { return nil }

func (i *memFileInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | i.perm
	}
	return i.perm
}
