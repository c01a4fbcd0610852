package dbapp

import (
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/railwayapp/dbenv/internal/app"
	"github.com/railwayapp/dbenv/internal/environment"
	"github.com/railwayapp/dbenv/internal/environment/types"
)

// Environment keys read by the postgres image.
// Check: https://hub.docker.com/_/postgres
const (
	PostgresUserKey           = "POSTGRES_USER"
	PostgresPasswordKey       = "POSTGRES_PASSWORD"
	PostgresDBKey             = "POSTGRES_DB"
	PGDataKey                 = "PGDATA"
	PostgresInitDBArgsKey     = "POSTGRES_INITDB_ARGS"
	PostgresInitDBWalDirKey   = "POSTGRES_INITDB_WALDIR"
	PostgresHostAuthMethodKey = "POSTGRES_HOST_AUTH_METHOD"
	PostgresPasswordFileKey   = "POSTGRES_PASSWORD_FILE"
	PostgresUserFileKey       = "POSTGRES_USER_FILE"
	PostgresDBFileKey         = "POSTGRES_DB_FILE"
	PostgresInitDBArgsFileKey = "POSTGRES_INITDB_ARGS_FILE"
)

const (
	EnginePostgres = "postgres"

	DefaultPostgresPort   = 5432
	DefaultPGData         = "/var/lib/postgresql/data/pgdata"
	DefaultPostgresDriver = "postgresql"
)

// Postgres is a containerized PostgreSQL database.
type Postgres struct {
	app.App

	// DBUser, DBPassword and DBSchema fall back to POSTGRES_USER,
	// POSTGRES_PASSWORD and POSTGRES_DB in the secrets file.
	DBUser     string
	DBPassword string
	DBSchema   string
	DBDriver   string

	PGData         string
	InitDBArgs     string
	InitDBWalDir   string
	HostAuthMethod string
	PasswordFile   string
	UserFile       string
	DBFile         string
	InitDBArgsFile string
}

// NewPostgres returns a Postgres with the image defaults.
func NewPostgres(name string) *Postgres {
	if name == "" {
		name = EnginePostgres
	}
	return &Postgres{
		App: app.App{
			Name:                name,
			ImageName:           "postgres",
			ImageTag:            "15.3",
			OpenContainerPort:   true,
			ContainerPort:       DefaultPostgresPort,
			HostPort:            DefaultPostgresPort,
			CreateVolume:        true,
			VolumeContainerPath: "/var/lib/postgresql/data",
		},
		DBDriver: DefaultPostgresDriver,
		PGData:   DefaultPGData,
	}
}

func (p *Postgres) Engine() string {
	return EnginePostgres
}

func (p *Postgres) Base() *app.App {
	return &p.App
}

func (p *Postgres) User() (string, bool) {
	return p.Credential(p.DBUser, PostgresUserKey)
}

func (p *Postgres) Password() (string, bool) {
	return p.Credential(p.DBPassword, PostgresPasswordKey)
}

func (p *Postgres) Schema() (string, bool) {
	return p.Credential(p.DBSchema, PostgresDBKey)
}

func (p *Postgres) Driver() (string, bool) {
	return optional(p.DBDriver)
}

func (p *Postgres) Host() (string, bool) {
	return optional(p.GetContainerName())
}

func (p *Postgres) Port() (int, bool) {
	return optionalPort(p.ContainerPort)
}

func (p *Postgres) LocalHost() string {
	return "localhost"
}

func (p *Postgres) LocalPort() (int, bool) {
	return optionalPort(p.HostPort)
}

func (p *Postgres) EnvSource() environment.Source {
	src := p.App.EnvSource()
	src.Credentials = []environment.Credential{
		{Key: PostgresUserKey, Explicit: p.DBUser},
		{Key: PostgresPasswordKey, Explicit: p.DBPassword},
		{Key: PostgresDBKey, Explicit: p.DBSchema},
	}
	src.Settings = []types.Setting{
		{Key: PGDataKey, Value: p.PGData},
		{Key: PostgresInitDBArgsKey, Value: p.InitDBArgs},
		{Key: PostgresInitDBWalDirKey, Value: p.InitDBWalDir},
		{Key: PostgresHostAuthMethodKey, Value: p.HostAuthMethod},
		{Key: PostgresPasswordFileKey, Value: p.PasswordFile},
		{Key: PostgresUserFileKey, Value: p.UserFile},
		{Key: PostgresDBFileKey, Value: p.DBFile},
		{Key: PostgresInitDBArgsFileKey, Value: p.InitDBArgsFile},
	}
	return src
}

func (p *Postgres) ContainerEnv() map[string]string {
	return environment.NewAssembler().Build(p.EnvSource())
}

// DSN returns a postgres:// URL accepted by pgx.
func (p *Postgres) DSN() (string, error) {
	connString, err := connectionURL("postgres", p)
	if err != nil {
		return "", err
	}

	config, err := pgx.ParseConfig(connString)
	if err != nil {
		return "", fmt.Errorf("invalid postgres connection string: %w", err)
	}
	return config.ConnString(), nil
}
