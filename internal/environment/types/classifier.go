package types

import (
	"strconv"
	"strings"
	"unicode"
)

var secretPatterns = []string{
	"secret", "key", "token", "password", "pass", "pwd",
	"auth", "authorization", "credential", "cred",
	"private", "priv", "cert", "certificate",
	"api_key", "apikey", "access_key", "secret_key",
	"client_secret", "oauth",
	"bearer", "jwt", "session", "cookie",
	"salt", "hash", "signature", "signing",
	"encryption", "decrypt", "cipher", "vault",
}

var databasePatterns = []string{
	"database_url", "db_url", "dsn", "connection_string",
	"postgres_url", "mysql_url", "mongodb_url", "redis_url",
}

// Settings that name a location rather than carry a value. Checked before
// the secret patterns so POSTGRES_PASSWORD_FILE is not masked.
var pathSuffixes = []string{"_file", "_dir", "_waldir", "data", "_path"}

// Settings that contain a secret-looking word but only select a mode.
var modeSettings = []string{
	"postgres_host_auth_method",
	"mysql_allow_empty_password",
	"mysql_random_root_password",
	"mysql_onetime_password",
}

// ClassifyEnvVar reports the kind of a container environment variable and
// whether its value must be masked when displayed.
func ClassifyEnvVar(name, value string) (EnvType, bool) {
	nameLower := strings.ToLower(name)

	for _, mode := range modeSettings {
		if nameLower == mode {
			return EnvTypeConfig, false
		}
	}

	for _, suffix := range pathSuffixes {
		if strings.HasSuffix(nameLower, suffix) {
			return EnvTypePath, false
		}
	}

	// Database connection strings
	for _, pattern := range databasePatterns {
		if strings.Contains(nameLower, pattern) {
			return EnvTypeDatabase, true
		}
	}

	for _, pattern := range secretPatterns {
		if strings.Contains(nameLower, pattern) {
			return EnvTypeSecret, true
		}
	}

	// A high-entropy value under an innocent name is still treated as secret
	if looksGenerated(value) {
		return EnvTypeGenerated, true
	}

	if strings.HasPrefix(value, "http") || strings.Contains(nameLower, "url") {
		return EnvTypeURL, false
	}

	if value == "true" || value == "false" || strings.Contains(nameLower, "enable") {
		return EnvTypeBoolean, false
	}

	if isNumeric(value) {
		return EnvTypeNumeric, false
	}

	return EnvTypeConfig, false
}

// Mask returns value unchanged unless sensitive.
func Mask(value string, sensitive bool) string {
	if !sensitive || value == "" {
		return value
	}
	return "********"
}

func looksGenerated(value string) bool {
	if len(value) < 8 {
		return false
	}

	// UUID
	if len(value) == 36 && strings.Count(value, "-") == 4 {
		return true
	}

	// JWT tokens (3 base64 parts separated by dots)
	if strings.Count(value, ".") == 2 && len(value) > 50 {
		return true
	}

	if len(value) >= 20 && isURLSafeBase64(value) && hasHighEntropy(value) && containsMixedCase(value) {
		return true
	}

	return false
}

func isURLSafeBase64(s string) bool {
	for _, r := range s {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_') {
			return false
		}
	}
	return true
}

func hasHighEntropy(value string) bool {
	charCount := make(map[rune]int)
	for _, r := range value {
		charCount[r]++
	}

	// High entropy if more than 50% unique characters
	uniqueRatio := float64(len(charCount)) / float64(len(value))
	return uniqueRatio > 0.5
}

func containsMixedCase(value string) bool {
	hasUpper := false
	hasLower := false
	for _, r := range value {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
		if hasUpper && hasLower {
			return true
		}
	}
	return false
}

func isNumeric(value string) bool {
	_, err := strconv.Atoi(value)
	return err == nil
}
