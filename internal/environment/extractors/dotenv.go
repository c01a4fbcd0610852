package extractors

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/railwayapp/dbenv/internal/environment/types"
)

type DotEnvExtractor struct{}

func NewDotEnvExtractor() *DotEnvExtractor {
	return &DotEnvExtractor{}
}

func (d *DotEnvExtractor) CanHandle(filename string) bool {
	base := strings.ToLower(filepath.Base(filename))
	return strings.HasPrefix(base, ".env") || strings.HasSuffix(base, ".env")
}

func (d *DotEnvExtractor) Name() string {
	return "dotenv"
}

func (d *DotEnvExtractor) Extract(ctx context.Context, filename string, content []byte) (types.Values, error) {
	env, err := godotenv.Unmarshal(string(content))
	if err != nil {
		return nil, err
	}

	values := make(types.Values, len(env))
	for key, value := range env {
		values[key] = value
	}
	return values, nil
}
