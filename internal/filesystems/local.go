package filesystems

import (
	"os"
	"path/filepath"
)

// LocalFS implements FileSystem for local filesystem access
type LocalFS struct {
	root string
}

// NewLocalFS creates a LocalFS. Relative paths are resolved against root,
// or the working directory when root is empty.
func NewLocalFS(root string) *LocalFS {
	return &LocalFS{root: root}
}

func (lfs *LocalFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(lfs.resolve(name))
}

func (lfs *LocalFS) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (lfs *LocalFS) Dir(path string) string {
	return filepath.Dir(path)
}

func (lfs *LocalFS) IsAbs(path string) bool {
	return filepath.IsAbs(path)
}

func (lfs *LocalFS) resolve(name string) string {
	if lfs.root == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(lfs.root, name)
}
