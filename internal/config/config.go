// Package config loads service definition files and builds the database
// variant they describe, together with the env and secrets files they
// reference.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/railwayapp/dbenv/internal/dbapp"
	"github.com/railwayapp/dbenv/internal/environment"
	"github.com/railwayapp/dbenv/internal/environment/extractors"
	"github.com/railwayapp/dbenv/internal/environment/types"
	"github.com/railwayapp/dbenv/internal/filesystems"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// EnvPrefix prefixes the variables that override definition fields, e.g.
// DBENV_DB_PASSWORD.
const EnvPrefix = "DBENV"

var (
	ErrUnknownEngine         = errors.New("unknown database engine")
	ErrUnsupportedDefinition = errors.New("unsupported definition file type")
)

// Fields that may be supplied through the environment instead of the file.
var envBoundKeys = []string{
	"db_user", "db_password", "db_schema",
	"aws_region", "aws_profile",
	"mysql.root_password",
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithEnvLookup enables DBENV_* overrides of definition fields.
func WithEnvLookup() Option {
	return func(l *Loader) {
		l.envLookup = true
	}
}

// Loader turns definition files into database services.
type Loader struct {
	filesystem filesystems.FileSystem
	values     *environment.Loader
	logger     *log.Logger
	envLookup  bool
}

func NewLoader(filesystem filesystems.FileSystem, opts ...Option) *Loader {
	l := &Loader{
		filesystem: filesystem,
		values:     environment.NewLoader(filesystem),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the definition at path, loads its env and secrets files and
// returns the configured service.
func (l *Loader) Load(ctx context.Context, path string) (dbapp.Service, error) {
	def, err := l.ReadDefinition(ctx, path)
	if err != nil {
		return nil, err
	}

	envFile, secretsFile, err := l.loadFiles(ctx, l.filesystem.Dir(path), def)
	if err != nil {
		return nil, err
	}

	return Build(def, envFile, secretsFile)
}

// ReadDefinition parses the definition file without loading the files it
// references.
func (l *Loader) ReadDefinition(ctx context.Context, path string) (*Definition, error) {
	content, err := l.filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}

	configType := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch configType {
	case "yml":
		configType = "yaml"
	case "yaml", "toml", "json":
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedDefinition)
	}

	v := viper.New()
	v.SetConfigType(configType)
	v.SetDefault("open_container_port", true)
	v.SetDefault("create_volume", true)
	if l.envLookup {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		for _, key := range envBoundKeys {
			if err := v.BindEnv(key); err != nil {
				return nil, fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}
	}

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to parse definition %s: %w", path, err)
	}

	var def Definition
	if err := v.Unmarshal(&def); err != nil {
		return nil, fmt.Errorf("failed to decode definition %s: %w", path, err)
	}

	// viper lower-cases every key, so the environment mappings are taken
	// from the raw document instead.
	raw, err := rawDecoder(configType).Extract(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition %s: %w", path, err)
	}
	def.ContainerEnv, err = stringMap(raw["container_env"])
	if err != nil {
		return nil, fmt.Errorf("container_env: %w", err)
	}
	def.EnvVars, err = anyMap(raw["env_vars"])
	if err != nil {
		return nil, fmt.Errorf("env_vars: %w", err)
	}

	l.logger.Debug("Read service definition", "path", path, "engine", def.Engine, "name", def.Name)
	return &def, nil
}

// loadFiles reads the env file and secrets file concurrently. A file that
// does not exist is treated as absent.
func (l *Loader) loadFiles(ctx context.Context, dir string, def *Definition) (types.Values, types.Values, error) {
	var envFile, secretsFile types.Values

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		values, err := l.loadOptional(gctx, dir, def.EnvFile)
		envFile = values
		return err
	})
	g.Go(func() error {
		values, err := l.loadOptional(gctx, dir, def.SecretsFile)
		secretsFile = values
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return envFile, secretsFile, nil
}

func (l *Loader) loadOptional(ctx context.Context, dir, path string) (types.Values, error) {
	if path == "" {
		return nil, nil
	}
	if !l.filesystem.IsAbs(path) {
		path = l.filesystem.Join(dir, path)
	}

	values, err := l.values.LoadFile(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn("File not found, skipping", "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	l.logger.Debug("Loaded file", "path", path, "keys", len(values))
	return values, nil
}

// rawDecoder picks the decoder by config type, never by file name: a
// definition called db-compose.yaml is still a definition.
func rawDecoder(configType string) extractors.ContentExtractor {
	if configType == "toml" {
		return extractors.NewTOMLExtractor()
	}
	return extractors.NewYAMLExtractor()
}

func stringMap(raw any) (map[string]string, error) {
	values, err := anyMap(raw)
	if err != nil || values == nil {
		return nil, err
	}

	out := make(map[string]string, len(values))
	for key, value := range values {
		if s, ok := types.Stringify(value); ok {
			out[key] = s
		}
	}
	return out, nil
}

func anyMap(raw any) (map[string]any, error) {
	switch m := raw.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return m, nil
	default:
		return nil, fmt.Errorf("expected a mapping, got %T", raw)
	}
}
