package dbapp_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/railwayapp/dbenv/internal/app"
	"github.com/railwayapp/dbenv/internal/dbapp"
	"github.com/railwayapp/dbenv/internal/environment/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgres_ContainerEnvScenario(t *testing.T) {
	pg := dbapp.NewPostgres("pg")
	pg.DBUser = "admin"
	pg.SecretsFileEntries = types.Values{"POSTGRES_PASSWORD": "s3cr3t"}
	pg.PGData = "/data"

	env := pg.ContainerEnv()

	assert.Equal(t, "admin", env[dbapp.PostgresUserKey])
	assert.Equal(t, "s3cr3t", env[dbapp.PostgresPasswordKey])
	assert.Equal(t, "/data", env[dbapp.PGDataKey])
	assert.NotContains(t, env, dbapp.PostgresDBKey)
}

func TestPostgres_EmptyConfigReturnsBaseEnv(t *testing.T) {
	pg := &dbapp.Postgres{}
	assert.Empty(t, pg.ContainerEnv())

	pg.BaseEnv = map[string]string{"TZ": "UTC"}
	assert.Equal(t, map[string]string{"TZ": "UTC"}, pg.ContainerEnv())
}

func TestPostgres_DefaultsPGData(t *testing.T) {
	env := dbapp.NewPostgres("").ContainerEnv()
	assert.Equal(t, map[string]string{dbapp.PGDataKey: dbapp.DefaultPGData}, env)
}

func TestPostgres_AllSettings(t *testing.T) {
	pg := dbapp.NewPostgres("pg")
	pg.InitDBArgs = "--data-checksums"
	pg.InitDBWalDir = "/wal"
	pg.HostAuthMethod = "scram-sha-256"
	pg.PasswordFile = "/run/secrets/password"
	pg.UserFile = "/run/secrets/user"
	pg.DBFile = "/run/secrets/db"
	pg.InitDBArgsFile = "/run/secrets/initdb"

	env := pg.ContainerEnv()
	assert.Equal(t, map[string]string{
		"PGDATA":                    dbapp.DefaultPGData,
		"POSTGRES_INITDB_ARGS":      "--data-checksums",
		"POSTGRES_INITDB_WALDIR":    "/wal",
		"POSTGRES_HOST_AUTH_METHOD": "scram-sha-256",
		"POSTGRES_PASSWORD_FILE":    "/run/secrets/password",
		"POSTGRES_USER_FILE":        "/run/secrets/user",
		"POSTGRES_DB_FILE":          "/run/secrets/db",
		"POSTGRES_INITDB_ARGS_FILE": "/run/secrets/initdb",
	}, env)
}

func TestPostgres_ExplicitEnvWins(t *testing.T) {
	pg := dbapp.NewPostgres("pg")
	pg.DBSchema = "z"
	pg.SecretsFileEntries = types.Values{"POSTGRES_DB": "y"}
	pg.EnvVars = types.Values{"POSTGRES_DB": "x"}

	assert.Equal(t, "x", pg.ContainerEnv()[dbapp.PostgresDBKey])

	// The accessor follows the resolver, not the override mapping
	schema, ok := pg.Schema()
	assert.True(t, ok)
	assert.Equal(t, "z", schema)
}

func TestPostgres_ProviderAndFiles(t *testing.T) {
	pg := dbapp.NewPostgres("pg")
	pg.PGData = ""
	pg.AWS = app.AWSProvider{Region: "us-east-1", Profile: "dev"}
	pg.EnvFileEntries = types.Values{"TZ": "UTC", "UNSET": nil, "AWS_PROFILE": "prod"}

	assert.Equal(t, map[string]string{
		"AWS_REGION":         "us-east-1",
		"AWS_DEFAULT_REGION": "us-east-1",
		"AWS_PROFILE":        "prod",
		"TZ":                 "UTC",
	}, pg.ContainerEnv())
}

func TestPostgres_ConcurrentResolution(t *testing.T) {
	pg := dbapp.NewPostgres("pg")
	pg.DBUser = "admin"
	pg.BaseEnv = map[string]string{"TZ": "UTC"}
	pg.SecretsFileEntries = types.Values{"POSTGRES_PASSWORD": "s3cr3t"}
	want := pg.ContainerEnv()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, pg.ContainerEnv())
		}()
	}
	wg.Wait()

	assert.Equal(t, map[string]string{"TZ": "UTC"}, pg.BaseEnv)
}

func TestPostgres_DbApp(t *testing.T) {
	pg := dbapp.NewPostgres("pg")
	pg.ContainerName = "pg-container"
	pg.HostPort = 15432
	pg.SecretsFileEntries = types.Values{
		"POSTGRES_USER":     "admin",
		"POSTGRES_PASSWORD": "s3cr3t",
		"POSTGRES_DB":       "app",
	}

	var db dbapp.DbApp = pg

	user, _ := db.User()
	password, _ := db.Password()
	schema, _ := db.Schema()
	driver, _ := db.Driver()
	host, _ := db.Host()
	port, _ := db.Port()

	assert.Equal(t, "admin", user)
	assert.Equal(t, "s3cr3t", password)
	assert.Equal(t, "app", schema)
	assert.Equal(t, dbapp.DefaultPostgresDriver, driver)
	assert.Equal(t, "pg-container", host)
	assert.Equal(t, 5432, port)

	localPort, ok := pg.LocalPort()
	assert.True(t, ok)
	assert.Equal(t, 15432, localPort)
	assert.Equal(t, "localhost", pg.LocalHost())
}

func TestPostgres_HostDefaultsToName(t *testing.T) {
	host, ok := dbapp.NewPostgres("pg").Host()
	assert.True(t, ok)
	assert.Equal(t, "pg", host)
}

func TestConnectionURL(t *testing.T) {
	pg := dbapp.NewPostgres("pg")
	pg.DBUser = "admin"
	pg.DBPassword = "p@ss"
	pg.DBSchema = "app"

	url, err := dbapp.ConnectionURL(pg)
	require.NoError(t, err)
	assert.Equal(t, "postgresql://admin:p%40ss@pg:5432/app", url)

	pg.DBPassword = ""
	pg.DBSchema = ""
	url, err = dbapp.ConnectionURL(pg)
	require.NoError(t, err)
	assert.Equal(t, "postgresql://admin@pg:5432", url)
}

func TestConnectionURL_Incomplete(t *testing.T) {
	pg := dbapp.NewPostgres("pg")

	_, err := dbapp.ConnectionURL(pg)
	assert.True(t, errors.Is(err, dbapp.ErrIncompleteConnection))

	pg.DBUser = "admin"
	pg.ContainerPort = 0
	_, err = pg.DSN()
	assert.True(t, errors.Is(err, dbapp.ErrIncompleteConnection))
}

func TestPostgres_DSN(t *testing.T) {
	pg := dbapp.NewPostgres("pg")
	pg.DBUser = "admin"
	pg.DBPassword = "s3cr3t"
	pg.DBSchema = "app"
	pg.DBDriver = "postgresql+psycopg"

	dsn, err := pg.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://admin:s3cr3t@pg:5432/app", dsn)
}
