// Where: internal/infra/settings/settings.go
// What: Tool settings loaded from TOML and ENVIRONMENTAL_* overrides.
// Why: Let users pin default file locations and prompt behavior per machine.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"

	"github.com/Newmi1988/environmental/internal/domain/failure"
	"github.com/Newmi1988/environmental/internal/infra/envutil"
	"github.com/Newmi1988/environmental/internal/infra/fileops"
	"github.com/Newmi1988/environmental/internal/meta"
)

// Settings are the tool-level defaults. CLI flags take precedence.
type Settings struct {
	ConfigFile        string `toml:"config_file" mapstructure:"config_file"`
	MappingFile       string `toml:"mapping_file" mapstructure:"mapping_file"`
	IncludeBaseFolder bool   `toml:"include_base_folder" mapstructure:"include_base_folder"`
	Emoji             bool   `toml:"emoji" mapstructure:"emoji"`
	Debug             bool   `toml:"debug" mapstructure:"debug"`
	LogJSON           bool   `toml:"log_json" mapstructure:"log_json"`
}

// Keys lists every settings key, in file order.
var Keys = []string{"config_file", "mapping_file", "include_base_folder", "emoji", "debug", "log_json"}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		ConfigFile:        meta.DefaultConfigFile,
		MappingFile:       meta.DefaultMappingFile,
		IncludeBaseFolder: true,
		Emoji:             true,
	}
}

// Path returns the settings file location.
// ENVIRONMENTAL_SETTINGS wins over the user config directory.
func Path() (string, error) {
	if override, ok := envutil.LookupHostEnv("settings"); ok {
		path := strings.TrimSpace(override)
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, meta.SettingsDir, meta.SettingsFile), nil
}

// Load layers defaults, the TOML file at path (if present) and host env overrides.
func Load(path string) (Settings, error) {
	raw := map[string]any{}
	if err := mapstructure.Decode(Default(), &raw); err != nil {
		return Settings{}, fmt.Errorf("encode default settings: %w", err)
	}

	if path != "" {
		fileValues := map[string]any{}
		if _, err := toml.DecodeFile(path, &fileValues); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Settings{}, classify(path, err)
			}
		}
		for key, value := range fileValues {
			raw[key] = value
		}
	}
	for key, value := range envutil.HostOverrides(Keys) {
		raw[key] = value
	}

	var out Settings
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Settings{}, fmt.Errorf("create settings decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Settings{}, fmt.Errorf("%w: settings %s: %w", failure.ErrParse, path, err)
	}
	return out, nil
}

// Save writes settings as TOML to path.
func Save(path string, s Settings) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := fileops.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: write settings %s: %w", failure.ErrIO, path, err)
	}
	return nil
}

func classify(path string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%w: read settings %s: %w", failure.ErrIO, path, err)
	}
	return fmt.Errorf("%w: settings %s: %w", failure.ErrParse, path, err)
}
