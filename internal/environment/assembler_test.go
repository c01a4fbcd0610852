package environment_test

import (
	"testing"

	"github.com/railwayapp/dbenv/internal/environment"
	"github.com/railwayapp/dbenv/internal/environment/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider map[string]string

func (s stubProvider) SetProviderEnvVars(env map[string]string) {
	for k, v := range s {
		env[k] = v
	}
}

func TestResolveCredential(t *testing.T) {
	secrets := types.Values{"POSTGRES_USER": "from-file", "EMPTY": "", "NULL": nil}

	tests := []struct {
		name     string
		explicit string
		secrets  types.Values
		key      string
		want     string
		wantOK   bool
	}{
		{"explicit wins", "admin", secrets, "POSTGRES_USER", "admin", true},
		{"explicit wins without secrets", "admin", nil, "POSTGRES_USER", "admin", true},
		{"falls back to secrets file", "", secrets, "POSTGRES_USER", "from-file", true},
		{"missing key", "", secrets, "POSTGRES_DB", "", false},
		{"nil secrets", "", nil, "POSTGRES_USER", "", false},
		{"empty entry is absent", "", secrets, "EMPTY", "", false},
		{"null entry is absent", "", secrets, "NULL", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := environment.ResolveCredential(tt.explicit, tt.secrets, tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssembler_EmptySourceReturnsBase(t *testing.T) {
	a := environment.NewAssembler()

	assert.Empty(t, a.Build(environment.Source{}))

	base := map[string]string{"TZ": "UTC"}
	assert.Equal(t, map[string]string{"TZ": "UTC"}, a.Build(environment.Source{Base: base}))
}

func TestAssembler_DoesNotMutateSource(t *testing.T) {
	base := map[string]string{"TZ": "UTC"}
	src := environment.Source{
		Base:     base,
		Settings: []types.Setting{{Key: "PGDATA", Value: "/data"}},
		Explicit: types.Values{"EXTRA": "1"},
	}

	first := environment.NewAssembler().Build(src)
	second := environment.NewAssembler().Build(src)

	assert.Equal(t, first, second)
	assert.Equal(t, map[string]string{"TZ": "UTC"}, base)
}

func TestAssembler_AbsentCredentialsAreNotWritten(t *testing.T) {
	env := environment.NewAssembler().Build(environment.Source{
		Credentials: []environment.Credential{
			{Key: "POSTGRES_USER", Explicit: "admin"},
			{Key: "POSTGRES_PASSWORD"},
			{Key: "POSTGRES_DB"},
		},
		SecretsFile: types.Values{"POSTGRES_PASSWORD": "s3cr3t"},
		Settings: []types.Setting{
			{Key: "PGDATA", Value: "/data"},
			{Key: "POSTGRES_INITDB_ARGS", Value: ""},
		},
	})

	assert.Equal(t, map[string]string{
		"POSTGRES_USER":     "admin",
		"POSTGRES_PASSWORD": "s3cr3t",
		"PGDATA":            "/data",
	}, env)
	assert.NotContains(t, env, "POSTGRES_DB")
	assert.NotContains(t, env, "POSTGRES_INITDB_ARGS")
}

func TestAssembler_Precedence(t *testing.T) {
	src := environment.Source{
		Base:        map[string]string{"POSTGRES_DB": "base", "A": "base", "B": "base", "C": "base"},
		Credentials: []environment.Credential{{Key: "POSTGRES_DB", Explicit: "z"}},
		Settings:    []types.Setting{{Key: "A", Value: "setting"}},
		Provider:    stubProvider{"A": "provider", "B": "provider"},
		EnvFile:     types.Values{"B": "envfile", "C": "envfile"},
		SecretsFile: types.Values{"POSTGRES_DB": "y", "C": "secret"},
		Explicit:    types.Values{"POSTGRES_DB": "x"},
	}

	env := environment.NewAssembler().Build(src)
	assert.Equal(t, "x", env["POSTGRES_DB"])
	assert.Equal(t, "provider", env["A"])
	assert.Equal(t, "envfile", env["B"])
	// secrets file sits below the env file in the default order
	assert.Equal(t, "envfile", env["C"])

	legacy := environment.NewAssembler(environment.WithSecretsFileLast()).Build(src)
	assert.Equal(t, "x", legacy["POSTGRES_DB"])
	assert.Equal(t, "secret", legacy["C"])
}

func TestAssembler_TypedCredentialBeatsSecretsFile(t *testing.T) {
	src := environment.Source{
		Credentials: []environment.Credential{{Key: "POSTGRES_DB", Explicit: "z"}},
		SecretsFile: types.Values{"POSTGRES_DB": "y"},
	}

	env := environment.NewAssembler().Build(src)
	assert.Equal(t, "z", env["POSTGRES_DB"])

	legacy := environment.NewAssembler(environment.WithSecretsFileLast()).Build(src)
	assert.Equal(t, "y", legacy["POSTGRES_DB"])
}

func TestAssembler_NullValuesAreSkipped(t *testing.T) {
	env := environment.NewAssembler().Build(environment.Source{
		Base:        map[string]string{"KEEP": "base"},
		EnvFile:     types.Values{"KEEP": nil, "PORT": 5432, "DEBUG": true, "RATIO": 0.5},
		SecretsFile: types.Values{"TOKEN": nil},
		Explicit:    types.Values{"OVERRIDE": nil},
	})

	require.Equal(t, "base", env["KEEP"])
	assert.Equal(t, "5432", env["PORT"])
	assert.Equal(t, "true", env["DEBUG"])
	assert.Equal(t, "0.5", env["RATIO"])
	assert.NotContains(t, env, "TOKEN")
	assert.NotContains(t, env, "OVERRIDE")
	for key, value := range env {
		assert.NotEqual(t, "null", value, key)
		assert.NotEqual(t, "<nil>", value, key)
	}
}

func TestAssembler_ProviderAddsKeys(t *testing.T) {
	env := environment.NewAssembler().Build(environment.Source{
		Provider: stubProvider{"AWS_REGION": "us-east-1"},
		Explicit: types.Values{"AWS_REGION": "eu-west-1"},
	})

	assert.Equal(t, map[string]string{"AWS_REGION": "eu-west-1"}, env)
}
