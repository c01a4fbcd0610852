package extractors

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/railwayapp/dbenv/internal/environment/types"
	"gopkg.in/yaml.v3"
)

// YAMLExtractor reads YAML mappings. JSON is a subset of YAML, so .json
// files are handled here too.
type YAMLExtractor struct{}

func NewYAMLExtractor() *YAMLExtractor {
	return &YAMLExtractor{}
}

func (y *YAMLExtractor) CanHandle(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func (y *YAMLExtractor) Name() string {
	return "yaml"
}

func (y *YAMLExtractor) Extract(ctx context.Context, filename string, content []byte) (types.Values, error) {
	var raw any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, err
	}
	return asValues(raw)
}

func asValues(raw any) (types.Values, error) {
	switch m := raw.(type) {
	case nil:
		return types.Values{}, nil
	case map[string]any:
		return types.Values(m), nil
	default:
		return nil, ErrNotMapping
	}
}
