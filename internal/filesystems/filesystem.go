package filesystems

// FileSystem abstracts the file reads needed to load a service definition
// and the env and secrets files it references.
type FileSystem interface {
	// ReadFile reads the named file and returns its contents. A missing
	// file yields an error wrapping fs.ErrNotExist.
	ReadFile(name string) ([]byte, error)

	// Join joins path elements into a single path
	Join(elem ...string) string

	// Dir returns all but the last element of path
	Dir(path string) string

	// IsAbs reports whether the path is absolute
	IsAbs(path string) bool
}
