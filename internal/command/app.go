// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher and the single error boundary.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Newmi1988/environmental/internal/infra/envfile"
	"github.com/Newmi1988/environmental/internal/infra/interaction"
	"github.com/Newmi1988/environmental/internal/meta"
	"github.com/Newmi1988/environmental/internal/usecase/apply"
	"github.com/Newmi1988/environmental/internal/usecase/componentcreate"
)

// Dependencies holds the collaborators injected by cmd/environmental.
// Tests swap them for fakes.
type Dependencies struct {
	In       io.Reader
	Out      io.Writer
	ErrOut   io.Writer
	Prompter interaction.Prompter
	// Interactive reports whether prompts may be shown.
	Interactive  func() bool
	Environment  componentcreate.EnvironmentReader
	EnvWriter    apply.EnvWriter
	SettingsPath func() (string, error)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Config    string       `short:"c" name:"config" placeholder:"FILE" help:"Component configuration file (default from settings, ${default_config})"`
	EnvFile   string       `name:"env-file" placeholder:"FILE" help:"Load variables from a dotenv file before running"`
	Debug     bool         `help:"Enable debug logging on stderr"`
	Component ComponentCmd `cmd:"" help:"Manage components"`
	Map       MapCmd       `cmd:"" help:"Create a folder mapping interactively"`
	Targets   TargetsCmd   `cmd:"" help:"List the target folders of a mapping"`
	Apply     ApplyCmd     `cmd:"" help:"Write or print .env files for mapping targets"`
	Schema    SchemaCmd    `cmd:"" help:"Export the JSON schema of a persisted file"`
	Settings  SettingsCmd  `cmd:"" help:"Show or initialize tool settings"`
	Version   VersionCmd   `cmd:"" help:"Show version information"`
}

type (
	// ComponentCmd groups the component subcommands.
	ComponentCmd struct {
		List   ComponentListCmd   `cmd:"" help:"List component names"`
		Show   ComponentShowCmd   `cmd:"" help:"Print the env lines of a component"`
		Create ComponentCreateCmd `cmd:"" help:"Create a component from flags or the environment"`
		Import ComponentImportCmd `cmd:"" help:"Create a component from a dotenv file"`
	}

	ComponentListCmd struct {
		Format string `help:"Go template rendered per component (sprig functions available)"`
	}

	ComponentShowCmd struct {
		Name string `arg:"" optional:"" help:"Component name"`
	}

	ComponentCreateCmd struct {
		Name    string   `short:"n" help:"Component name"`
		Prefix  string   `short:"p" help:"Prefix prepended to every key"`
		Keys    []string `short:"k" name:"key" sep:"none" help:"Variable name (repeatable)"`
		Values  []string `short:"v" name:"value" sep:"none" help:"Variable value (repeatable, paired with --key)"`
		FromEnv bool     `name:"from-env" help:"Take variables from the current environment"`
		Filter  string   `help:"Only take environment variables starting with this prefix"`
	}

	ComponentImportCmd struct {
		Name   string `short:"n" help:"Component name"`
		Prefix string `short:"p" help:"Prefix prepended to every key"`
		File   string `arg:"" help:"Dotenv file to import"`
	}

	MapCmd struct {
		Base       string `arg:"" optional:"" default:"." help:"Folder whose subfolders are offered as targets"`
		Output     string `short:"o" placeholder:"FILE" help:"Mapping file to write (default next to the configuration)"`
		BaseFolder string `name:"base-folder" enum:"auto,include,exclude" default:"auto" help:"Offer the base folder itself (auto uses settings)"`
	}

	TargetsCmd struct {
		Mapping string `arg:"" help:"Mapping file"`
	}

	ApplyCmd struct {
		Mapping string `arg:"" help:"Mapping file"`
		Target  string `arg:"" optional:"" help:"Only apply this target folder"`
		Print   bool   `help:"Print to stdout instead of writing .env files"`
	}

	SchemaCmd struct {
		Target string `short:"t" placeholder:"PATH" help:"Write the schema to PATH instead of stdout"`
		Kind   string `enum:"config,mapping" default:"config" help:"Document kind (config or mapping)"`
	}

	SettingsCmd struct {
		Show SettingsShowCmd `cmd:"" default:"1" help:"Show the effective settings"`
		Init SettingsInitCmd `cmd:"" help:"Write the default settings file"`
	}

	SettingsShowCmd struct{}

	SettingsInitCmd struct {
		Force bool `help:"Overwrite an existing settings file"`
	}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses args, dispatches to a handler and turns any error into exit code 1.
func Run(args []string, deps Dependencies) int {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.In == nil {
		deps.In = os.Stdin
	}
	out := deps.Out

	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Manage reusable env components and write .env files per folder."),
		kong.Vars{"default_config": meta.DefaultConfigFile},
		kong.Writers(out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, deps)
	}

	if cli.EnvFile != "" {
		if err := envfile.LoadIntoProcess(cli.EnvFile); err != nil {
			return exitWithError(deps.ErrOut, err)
		}
	}

	handler, ok := commandHandlers[commandPath(ctx.Command())]
	if !ok {
		return exitWithError(deps.ErrOut, fmt.Errorf("unknown command %q", ctx.Command()))
	}
	_, lenient := settingsOptional[commandPath(ctx.Command())]
	s, err := newSession(cli, deps, !lenient)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	if err := handler(s); err != nil {
		s.logger.Debug("command failed", "command", ctx.Command(), "error", err)
		return exitWithError(deps.ErrOut, err)
	}
	return 0
}

type commandHandler func(*session) error

// settingsOptional lists commands that still run when the settings file is broken.
var settingsOptional = map[string]struct{}{
	"version": {},
}

var commandHandlers = map[string]commandHandler{
	"component list":   runComponentList,
	"component show":   runComponentShow,
	"component create": runComponentCreate,
	"component import": runComponentImport,
	"map":              runMap,
	"targets":          runTargets,
	"apply":            runApply,
	"schema":           runSchema,
	"settings":         runSettingsShow,
	"settings show":    runSettingsShow,
	"settings init":    runSettingsInit,
	"version":          runVersion,
}

// commandPath drops positional placeholders such as "<name>" from a kong command.
func commandPath(command string) string {
	fields := strings.Fields(command)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if strings.HasPrefix(field, "<") {
			continue
		}
		parts = append(parts, field)
	}
	return strings.Join(parts, " ")
}

// runNoArgs prints a short usage summary.
func runNoArgs(out io.Writer) int {
	cmd := cliName()
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s component create -n <name> -k KEY -v VALUE [-p PREFIX]\n", cmd)
	fmt.Fprintf(out, "  %s map [folder]\n", cmd)
	fmt.Fprintf(out, "  %s apply <mapping> [target] [--print]\n", cmd)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Try: %s --help\n", cmd)
	return 0
}

// handleParseError provides user-friendly messages for parse failures.
func handleParseError(err error, deps Dependencies) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") || strings.Contains(msg, "expected a value") {
		errOut := deps.ErrOut
		cmd := cliName()
		switch {
		case strings.Contains(msg, "--config"):
			fmt.Fprintln(errOut, "`-c/--config` expects a file path.")
			fmt.Fprintf(errOut, "Example: %s -c ./%s component list\n", cmd, meta.DefaultConfigFile)
			return 1
		case strings.Contains(msg, "--env-file"):
			fmt.Fprintln(errOut, "`--env-file` expects a value. Provide a file path.")
			fmt.Fprintf(errOut, "Example: %s --env-file .env.local component create -n app --from-env\n", cmd)
			return 1
		}
	}
	return exitWithError(deps.ErrOut, err)
}
