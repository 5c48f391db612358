// Package envutil provides helper functions for host-level environment variables.
package envutil

import (
	"os"
	"strings"

	"github.com/Newmi1988/environmental/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name.
// Example: HostEnvKey("config_file") returns "ENVIRONMENTAL_CONFIG_FILE".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + strings.ToUpper(suffix)
}

// GetHostEnv retrieves a host-level environment variable.
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}

// LookupHostEnv retrieves a host-level environment variable and reports
// whether it is set to a non-blank value.
func LookupHostEnv(suffix string) (string, bool) {
	value, ok := os.LookupEnv(HostEnvKey(suffix))
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

// HostOverrides collects the set host-level variables for the given keys.
func HostOverrides(keys []string) map[string]any {
	out := map[string]any{}
	for _, key := range keys {
		if value, ok := LookupHostEnv(key); ok {
			out[key] = value
		}
	}
	return out
}
