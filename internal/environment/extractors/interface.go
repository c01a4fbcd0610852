package extractors

import (
	"context"
	"errors"

	"github.com/railwayapp/dbenv/internal/environment/types"
)

// ErrNotMapping is returned when a file parses but its top level is not a
// key/value mapping.
var ErrNotMapping = errors.New("file content is not a mapping")

// ContentExtractor turns the content of one env or secrets file format into
// raw values. Declared-but-empty keys are kept with a nil value.
type ContentExtractor interface {
	// Extract environment variables from file content
	Extract(ctx context.Context, filename string, content []byte) (types.Values, error)

	// CanHandle returns true if this extractor can process the given file
	CanHandle(filename string) bool

	// Name identifies the format in error messages
	Name() string
}
