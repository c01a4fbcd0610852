package environment

import (
	"context"
	"errors"
	"fmt"

	"github.com/railwayapp/dbenv/internal/environment/extractors"
	"github.com/railwayapp/dbenv/internal/environment/types"
	"github.com/railwayapp/dbenv/internal/filesystems"
)

// ErrUnsupportedFile is returned when no extractor recognises a file name.
var ErrUnsupportedFile = errors.New("unsupported env file format")

// Loader reads env files and secrets files into raw values.
type Loader struct {
	filesystem filesystems.FileSystem
	extractors []extractors.ContentExtractor
}

func NewLoader(filesystem filesystems.FileSystem) *Loader {
	return &Loader{
		filesystem: filesystem,
		// Order matters: compose files are also YAML files
		extractors: []extractors.ContentExtractor{
			extractors.NewDockerComposeExtractor(),
			extractors.NewDockerfileExtractor(),
			extractors.NewDotEnvExtractor(),
			extractors.NewTOMLExtractor(),
			extractors.NewYAMLExtractor(),
		},
	}
}

// Load parses content with the first extractor that handles filename.
func (l *Loader) Load(ctx context.Context, filename string, content []byte) (types.Values, error) {
	for _, extractor := range l.extractors {
		if !extractor.CanHandle(filename) {
			continue
		}

		values, err := extractor.Extract(ctx, filename, content)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to parse %s: %w", extractor.Name(), filename, err)
		}
		return values, nil
	}

	return nil, fmt.Errorf("%s: %w", filename, ErrUnsupportedFile)
}

// LoadFile reads path from the filesystem and parses it.
func (l *Loader) LoadFile(ctx context.Context, path string) (types.Values, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := l.filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return l.Load(ctx, path, content)
}
