// Where: internal/command/session.go
// What: Per-invocation state shared by command handlers.
// Why: Resolve settings, logger and console once before dispatch.
package command

import (
	"errors"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/Newmi1988/environmental/internal/domain/config"
	"github.com/Newmi1988/environmental/internal/domain/mapping"
	"github.com/Newmi1988/environmental/internal/infra/interaction"
	"github.com/Newmi1988/environmental/internal/infra/logging"
	"github.com/Newmi1988/environmental/internal/infra/settings"
	"github.com/Newmi1988/environmental/internal/infra/store"
	"github.com/Newmi1988/environmental/internal/infra/ui"
)

var errPrompterNotConfigured = errors.New("interactive prompter is not configured")

type session struct {
	cli          CLI
	deps         Dependencies
	settings     settings.Settings
	settingsPath string
	logger       hclog.Logger
	console      *ui.Console
}

// newSession resolves settings, logger and console for one invocation.
// When strict is false a broken settings file falls back to the defaults.
func newSession(cli CLI, deps Dependencies, strict bool) (*session, error) {
	path, loaded, settingsErr := resolveSettings(deps)
	if settingsErr != nil {
		if strict {
			return nil, settingsErr
		}
		loaded = settings.Default()
	}

	logger := logging.New(logging.Options{
		Debug:  cli.Debug || loaded.Debug,
		JSON:   loaded.LogJSON,
		Output: deps.ErrOut,
	})
	if settingsErr != nil {
		logger.Debug("settings ignored", "path", path, "error", settingsErr)
	} else {
		logger.Debug("settings resolved", "path", path, "config_file", loaded.ConfigFile)
	}

	s := &session{
		cli:          cli,
		deps:         deps,
		settings:     loaded,
		settingsPath: path,
		logger:       logger,
	}
	s.console = &ui.Console{Out: deps.Out, EmojiEnabled: loaded.Emoji, Styled: s.interactive()}
	return s, nil
}

func resolveSettings(deps Dependencies) (string, settings.Settings, error) {
	resolvePath := deps.SettingsPath
	if resolvePath == nil {
		resolvePath = settings.Path
	}
	path, err := resolvePath()
	if err != nil {
		return "", settings.Settings{}, err
	}
	loaded, err := settings.Load(path)
	if err != nil {
		return path, settings.Settings{}, err
	}
	return path, loaded, nil
}

func (s *session) interactive() bool {
	return s.deps.Interactive != nil && s.deps.Interactive()
}

func (s *session) prompter() (interaction.Prompter, error) {
	if s.deps.Prompter == nil {
		return nil, errPrompterNotConfigured
	}
	return s.deps.Prompter, nil
}

func (s *session) configPath() string {
	if s.cli.Config != "" {
		return s.cli.Config
	}
	return s.settings.ConfigFile
}

// defaultMappingPath places the mapping file next to the configuration.
func (s *session) defaultMappingPath() string {
	return filepath.Join(filepath.Dir(s.configPath()), s.settings.MappingFile)
}

func (s *session) loadConfig() (config.Configuration, error) {
	path := s.configPath()
	cfg, err := store.LoadConfig(path)
	if err != nil {
		return config.Configuration{}, err
	}
	s.logger.Debug("configuration loaded", "path", path, "components", cfg.Len())
	return cfg, nil
}

func (s *session) loadConfigOrEmpty() (config.Configuration, error) {
	path := s.configPath()
	cfg, err := store.LoadConfigOrEmpty(path)
	if err != nil {
		return config.Configuration{}, err
	}
	s.logger.Debug("configuration loaded", "path", path, "components", cfg.Len())
	return cfg, nil
}

func (s *session) saveConfig(cfg config.Configuration) error {
	path := s.configPath()
	if err := store.SaveConfig(path, cfg); err != nil {
		return err
	}
	s.logger.Debug("configuration saved", "path", path, "components", cfg.Len())
	return nil
}

func (s *session) loadMapping(path string) (mapping.Mapping, error) {
	m, err := store.LoadMapping(path)
	if err != nil {
		return mapping.Mapping{}, err
	}
	s.logger.Debug("mapping loaded", "path", path, "entries", len(m.Entries()))
	return m, nil
}
