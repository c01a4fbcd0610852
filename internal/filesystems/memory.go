package filesystems

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
)

// MemoryFS implements FileSystem for in-memory filesystem operations
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemoryFS creates a new MemoryFS instance
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: make(map[string][]byte),
	}
}

// AddFile adds a file to the memory filesystem
func (mfs *MemoryFS) AddFile(name string, content []byte) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.files[path.Clean(name)] = content
}

func (mfs *MemoryFS) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	content, exists := mfs.files[path.Clean(name)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", name, fs.ErrNotExist)
	}
	return content, nil
}

func (mfs *MemoryFS) Join(elem ...string) string {
	return path.Join(elem...)
}

func (mfs *MemoryFS) Dir(p string) string {
	return path.Dir(p)
}

func (mfs *MemoryFS) IsAbs(p string) bool {
	return strings.HasPrefix(p, "/")
}
