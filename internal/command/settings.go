// Where: internal/command/settings.go
// What: Settings command handlers.
// Why: Show the effective tool settings and bootstrap a settings file.
package command

import (
	"fmt"

	"github.com/Newmi1988/environmental/internal/infra/fileops"
	"github.com/Newmi1988/environmental/internal/infra/interaction"
	"github.com/Newmi1988/environmental/internal/infra/settings"
	"github.com/Newmi1988/environmental/internal/infra/ui"
)

func runSettingsShow(s *session) error {
	current := s.settings
	s.console.Block("⚙️", "Settings ("+s.settingsPath+")", []ui.KeyValue{
		{Key: "config_file", Value: current.ConfigFile},
		{Key: "mapping_file", Value: current.MappingFile},
		{Key: "include_base_folder", Value: current.IncludeBaseFolder},
		{Key: "emoji", Value: current.Emoji},
		{Key: "debug", Value: current.Debug},
		{Key: "log_json", Value: current.LogJSON},
	})
	return nil
}

func runSettingsInit(s *session) error {
	path := s.settingsPath
	if fileops.FileExists(path) && !s.cli.Settings.Init.Force {
		if !s.interactive() {
			return fmt.Errorf("settings file %s already exists (use --force to overwrite)", path)
		}
		ok, err := interaction.PromptYesNoWithIO(s.deps.In, s.deps.Out, fmt.Sprintf("Overwrite %s?", path))
		if err != nil {
			return err
		}
		if !ok {
			s.console.Info("Settings left unchanged.")
			return nil
		}
	}
	if err := settings.Save(path, settings.Default()); err != nil {
		return err
	}
	s.console.Success("Wrote default settings to " + path)
	return nil
}
