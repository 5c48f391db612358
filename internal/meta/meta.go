// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep names and default file locations in one place.
package meta

const (
	// Project Identity
	AppName   = "environmental"
	EnvPrefix = "ENVIRONMENTAL"

	// File Layout
	DefaultConfigFile  = "mental.yaml"
	DefaultMappingFile = "mapping.yaml"
	EnvFileName        = ".env"
	SettingsDir        = "environmental"
	SettingsFile       = "settings.toml"
)
