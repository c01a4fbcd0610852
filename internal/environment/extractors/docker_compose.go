package extractors

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/compose-spec/compose-go/v2/loader"
	composeTypes "github.com/compose-spec/compose-go/v2/types"
	"github.com/railwayapp/dbenv/internal/environment/types"
)

// DockerComposeExtractor collects the environment blocks of every service in
// a compose file. Services are merged in name order.
type DockerComposeExtractor struct{}

func NewDockerComposeExtractor() *DockerComposeExtractor {
	return &DockerComposeExtractor{}
}

func (d *DockerComposeExtractor) CanHandle(filename string) bool {
	name := strings.ToLower(filepath.Base(filename))
	return strings.Contains(name, "compose") && (strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml"))
}

func (d *DockerComposeExtractor) Name() string {
	return "docker-compose"
}

func (d *DockerComposeExtractor) Extract(ctx context.Context, filename string, content []byte) (types.Values, error) {
	configDetails := composeTypes.ConfigDetails{
		WorkingDir: filepath.Dir(filename),
		ConfigFiles: []composeTypes.ConfigFile{
			{
				Filename: filename,
				Content:  content,
			},
		},
	}

	project, err := loader.LoadWithContext(ctx, configDetails, func(options *loader.Options) {
		options.SetProjectName("dbenv", true)
		options.SkipConsistencyCheck = true
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(project.Services))
	for name := range project.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	values := types.Values{}
	for _, name := range names {
		for key, value := range project.Services[name].Environment {
			if value == nil {
				values[key] = nil
				continue
			}
			values[key] = *value
		}
	}

	return values, nil
}
