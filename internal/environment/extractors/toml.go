package extractors

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/railwayapp/dbenv/internal/environment/types"
)

type TOMLExtractor struct{}

func NewTOMLExtractor() *TOMLExtractor {
	return &TOMLExtractor{}
}

func (t *TOMLExtractor) CanHandle(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".toml"
}

func (t *TOMLExtractor) Name() string {
	return "toml"
}

func (t *TOMLExtractor) Extract(ctx context.Context, filename string, content []byte) (types.Values, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(content), &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return types.Values{}, nil
	}
	return types.Values(raw), nil
}
