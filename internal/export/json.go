package export

import (
	"encoding/json"

	"github.com/railwayapp/dbenv/internal/schema"
)

type JSONExporter struct{}

func (e *JSONExporter) Name() string {
	return "json"
}

func (e *JSONExporter) Export(project *schema.Project) ([]byte, error) {
	output, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(output, '\n'), nil
}

func NewJSONExporter() Exporter {
	return &JSONExporter{}
}
