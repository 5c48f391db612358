// Where: cmd/environmental/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/Newmi1988/environmental/internal/command"
	"github.com/Newmi1988/environmental/internal/infra/envfile"
	"github.com/Newmi1988/environmental/internal/infra/interaction"
	"github.com/Newmi1988/environmental/internal/infra/settings"
)

// buildDependencies constructs the runtime collaborators used by the CLI.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		In:           os.Stdin,
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		Prompter:     interaction.HuhPrompter{},
		Interactive:  interaction.Interactive,
		Environment:  envfile.ProcessEnvironment{Environ: os.Environ},
		EnvWriter:    envfile.Writer{},
		SettingsPath: settings.Path,
	}
}
