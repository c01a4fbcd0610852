package export

import (
	"fmt"

	"github.com/railwayapp/dbenv/internal/schema"
)

// Exporter defines the interface for exporting projects to various formats
type Exporter interface {
	// Export converts a project to the target format
	Export(project *schema.Project) ([]byte, error)

	// Name returns the exporter name (e.g., "json", "compose")
	Name() string
}

// NewExporter returns the exporter registered under name.
func NewExporter(name string) (Exporter, error) {
	switch name {
	case "json":
		return NewJSONExporter(), nil
	case "compose":
		return NewComposeExporter(), nil
	default:
		return nil, fmt.Errorf("unknown export format: %s", name)
	}
}
