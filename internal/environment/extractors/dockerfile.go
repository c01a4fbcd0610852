package extractors

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/moby/buildkit/frontend/dockerfile/instructions"
	"github.com/moby/buildkit/frontend/dockerfile/parser"
	"github.com/railwayapp/dbenv/internal/environment/types"
)

// DockerfileExtractor reads the ENV instructions of a Dockerfile. Later
// instructions overwrite earlier ones, as in the built image.
type DockerfileExtractor struct{}

func NewDockerfileExtractor() *DockerfileExtractor {
	return &DockerfileExtractor{}
}

func (d *DockerfileExtractor) CanHandle(filename string) bool {
	name := strings.ToLower(filepath.Base(filename))
	return strings.Contains(name, "dockerfile") || strings.HasSuffix(name, ".containerfile") || name == "containerfile"
}

func (d *DockerfileExtractor) Name() string {
	return "dockerfile"
}

func (d *DockerfileExtractor) Extract(ctx context.Context, filename string, content []byte) (types.Values, error) {
	result, err := parser.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	values := types.Values{}
	for _, child := range result.AST.Children {
		if !strings.EqualFold(child.Value, "env") {
			continue
		}

		instruction, err := instructions.ParseInstruction(child)
		if err != nil {
			return nil, err
		}
		envCmd, ok := instruction.(*instructions.EnvCommand)
		if !ok {
			continue
		}
		for _, pair := range envCmd.Env {
			values[pair.Key] = pair.Value
		}
	}

	return values, nil
}
