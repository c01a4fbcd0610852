package filesystems

import (
	"fmt"
	"net/url"
	"strings"
)

// NewFileSystem creates a filesystem implementation based on the given URI.
// Supports plain local paths and file:///path/to/dir.
func NewFileSystem(uri string) (FileSystem, error) {
	if !strings.Contains(uri, "://") {
		return NewLocalFS(""), nil
	}

	parsedURL, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid URI %s: %w", uri, err)
	}

	switch parsedURL.Scheme {
	case "file":
		return NewLocalFS(""), nil
	default:
		return nil, fmt.Errorf("unsupported scheme: %s", parsedURL.Scheme)
	}
}

// GetBasePath returns the filesystem path for the given URI
func GetBasePath(uri string) string {
	if !strings.Contains(uri, "://") {
		return uri
	}

	parsedURL, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	if parsedURL.Scheme == "file" {
		return parsedURL.Path
	}
	return uri
}
