package types

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
)

type EnvType int

const (
	EnvTypeUnknown EnvType = iota
	EnvTypeSecret
	EnvTypeDatabase
	EnvTypeConfig
	EnvTypeGenerated // Detected as generated (nanoid, uuid, random string)
	EnvTypeURL
	EnvTypeBoolean
	EnvTypeNumeric
	EnvTypePath // *_FILE indirections and data directories
)

func (t EnvType) String() string {
	switch t {
	case EnvTypeSecret:
		return "secret"
	case EnvTypeDatabase:
		return "database"
	case EnvTypeGenerated:
		return "generated"
	case EnvTypeURL:
		return "url"
	case EnvTypeBoolean:
		return "boolean"
	case EnvTypeNumeric:
		return "numeric"
	case EnvTypeConfig:
		return "config"
	case EnvTypePath:
		return "path"
	default:
		return "unknown"
	}
}

// EnvResult is a single environment variable of an assembled container
// environment, annotated for display and export.
type EnvResult struct {
	VarName   string
	Value     string
	Type      EnvType
	Sensitive bool
}

// Values is a raw key/value mapping read from an env file, a secrets file
// or supplied by the user. A nil value means the key was declared without a
// value and is never written to a container environment.
type Values map[string]any

// Lookup returns the string form of key. Missing keys and nil values report
// false.
func (v Values) Lookup(key string) (string, bool) {
	if v == nil {
		return "", false
	}
	raw, ok := v[key]
	if !ok {
		return "", false
	}
	return Stringify(raw)
}

// Setting is a conventional environment key paired with the value of the
// typed field that feeds it.
type Setting struct {
	Key   string
	Value string
}

// Stringify converts a scalar read from a config file into the string the
// container runtime receives. Nil reports false.
func Stringify(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10), true
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case time.Time:
		return v.Format(time.RFC3339), true
	case map[string]any, []any, []map[string]any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v), true
		}
		return string(encoded), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

// Annotate classifies every entry of env, sorted by name.
func Annotate(env map[string]string) []EnvResult {
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]EnvResult, 0, len(names))
	for _, name := range names {
		envType, sensitive := ClassifyEnvVar(name, env[name])
		results = append(results, EnvResult{
			VarName:   name,
			Value:     env[name],
			Type:      envType,
			Sensitive: sensitive,
		})
	}
	return results
}
