package environment

import (
	"maps"

	"github.com/railwayapp/dbenv/internal/environment/types"
)

// ProviderEnv adds cloud provider variables (region, profile) to a
// container environment. It may add zero or more keys.
type ProviderEnv interface {
	SetProviderEnvVars(env map[string]string)
}

// Credential pairs an explicitly configured value with the conventional key
// the database image reads it from.
type Credential struct {
	Key      string
	Explicit string
}

// Source holds every layer that feeds a container environment. None of the
// maps are modified by the Assembler.
type Source struct {
	// Base is the pass-through container_env mapping.
	Base map[string]string
	// Credentials are resolved against SecretsFile before being applied.
	Credentials []Credential
	// Settings are engine-specific scalar fields; empty values are skipped.
	Settings []types.Setting
	Provider ProviderEnv

	EnvFile     types.Values
	SecretsFile types.Values
	// Explicit is the user's literal override mapping.
	Explicit types.Values
}

// ResolveCredential returns explicit when set, otherwise the secrets file
// entry stored under key. Absence is not an error: the image falls back to
// its own default or to a *_FILE indirection.
func ResolveCredential(explicit string, secrets types.Values, key string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	value, ok := secrets.Lookup(key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithSecretsFileLast applies the secrets file after the env file instead of
// before the credentials. In this order a secrets file entry replaces an
// explicitly configured credential stored under the same key.
func WithSecretsFileLast() AssemblerOption {
	return func(a *Assembler) {
		a.secretsFileLast = true
	}
}

// Assembler merges the layers of a Source into the environment handed to
// the container runtime.
type Assembler struct {
	secretsFileLast bool
}

func NewAssembler(opts ...AssemblerOption) *Assembler {
	a := &Assembler{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Build returns the container environment. Later layers overwrite earlier
// ones on key collision:
//
//	base < secrets file < credentials < settings < provider < env file < explicit
//
// With WithSecretsFileLast the secrets file moves between the env file and
// the explicit overrides, so it wins over typed credentials again; callers
// relying on that order must pass the option.
func (a *Assembler) Build(src Source) map[string]string {
	env := make(map[string]string, len(src.Base))
	maps.Copy(env, src.Base)

	if !a.secretsFileLast {
		applyValues(env, src.SecretsFile)
	}

	for _, cred := range src.Credentials {
		if value, ok := ResolveCredential(cred.Explicit, src.SecretsFile, cred.Key); ok {
			env[cred.Key] = value
		}
	}

	for _, setting := range src.Settings {
		if setting.Value != "" {
			env[setting.Key] = setting.Value
		}
	}

	if src.Provider != nil {
		src.Provider.SetProviderEnvVars(env)
	}

	applyValues(env, src.EnvFile)

	if a.secretsFileLast {
		applyValues(env, src.SecretsFile)
	}

	applyValues(env, src.Explicit)

	return env
}

// applyValues writes the string form of every non-nil entry.
func applyValues(env map[string]string, values types.Values) {
	for key, raw := range values {
		if value, ok := types.Stringify(raw); ok {
			env[key] = value
		}
	}
}
