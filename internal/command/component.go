// Where: internal/command/component.go
// What: Component command handlers.
// Why: Adapt CLI input to the component workflows and persistence.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Newmi1988/environmental/internal/domain/component"
	"github.com/Newmi1988/environmental/internal/domain/config"
	"github.com/Newmi1988/environmental/internal/domain/failure"
	"github.com/Newmi1988/environmental/internal/infra/envfile"
	"github.com/Newmi1988/environmental/internal/infra/ui"
	"github.com/Newmi1988/environmental/internal/usecase/componentcreate"
)

var errComponentNotFound = errors.New("component not found")

// componentView is the record exposed to --format templates.
type componentView struct {
	Name      string
	Prefix    string
	HasPrefix bool
	Keys      []string
	Lines     []string
}

func newComponentView(c component.Component) componentView {
	prefix, ok := c.Prefix()
	return componentView{
		Name:      c.Name(),
		Prefix:    prefix,
		HasPrefix: ok,
		Keys:      c.Keys(),
		Lines:     c.ToEnv(),
	}
}

func runComponentList(s *session) error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}
	if format := s.cli.Component.List.Format; format != "" {
		tmpl, err := ui.ParseFormat(format)
		if err != nil {
			return err
		}
		records := make([]any, 0, cfg.Len())
		for _, c := range cfg.Components() {
			records = append(records, newComponentView(c))
		}
		return tmpl.Render(s.deps.Out, records)
	}

	s.console.Header("📦", "Existing components:")
	for _, name := range cfg.ListComponents() {
		fmt.Fprintf(s.deps.Out, "  %s\n", name)
	}
	return nil
}

func runComponentShow(s *session) error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}
	name := s.cli.Component.Show.Name
	if name == "" {
		if !s.interactive() {
			return fmt.Errorf("%w: component name is required", failure.ErrEmptyInput)
		}
		prompter, err := s.prompter()
		if err != nil {
			return err
		}
		if name, err = prompter.Select("Component", cfg.ListComponents()); err != nil {
			return err
		}
	}
	c, ok := cfg.Component(name)
	if !ok {
		return fmt.Errorf("%w: %q in %s", errComponentNotFound, name, s.configPath())
	}
	for _, line := range c.ToEnv() {
		fmt.Fprintln(s.deps.Out, line)
	}
	return nil
}

func runComponentCreate(s *session) error {
	cmd := s.cli.Component.Create
	req := componentcreate.Request{
		Name:   cmd.Name,
		Prefix: optionalPrefix(cmd.Prefix),
		Keys:   cmd.Keys,
		Values: cmd.Values,
	}
	if cmd.FromEnv {
		if len(cmd.Keys) > 0 || len(cmd.Values) > 0 {
			return fmt.Errorf("--from-env cannot be combined with --key/--value")
		}
		req.Source = componentcreate.SourceEnvironment
		req.Filter = cmd.Filter
	}
	return createComponent(s, req)
}

func runComponentImport(s *session) error {
	cmd := s.cli.Component.Import
	return createComponent(s, componentcreate.Request{
		Name:       cmd.Name,
		Prefix:     optionalPrefix(cmd.Prefix),
		Source:     componentcreate.SourceDotenv,
		DotenvPath: cmd.File,
	})
}

func createComponent(s *session, req componentcreate.Request) error {
	cfg, err := s.loadConfigOrEmpty()
	if err != nil {
		return err
	}
	if req.Name == "" && s.interactive() {
		if req.Name, err = promptComponentName(s, cfg); err != nil {
			return err
		}
	}

	workflow := componentcreate.NewWorkflow(s.deps.Environment, envfile.ReadDotenv, s.logger)
	next, err := workflow.Run(cfg, req)
	if err != nil {
		return err
	}
	if err := s.saveConfig(next); err != nil {
		return err
	}
	s.console.Success(fmt.Sprintf("Created component %q in %s", strings.TrimSpace(req.Name), s.configPath()))
	return nil
}

func promptComponentName(s *session, cfg config.Configuration) (string, error) {
	prompter, err := s.prompter()
	if err != nil {
		return "", err
	}
	for {
		name, err := prompter.Input("Component name", nil)
		if err != nil {
			return "", err
		}
		if name == "" || !cfg.NameExists(name) {
			return name, nil
		}
		s.console.Warn(fmt.Sprintf("Component %q already exists, choose another name", name))
	}
}

// optionalPrefix treats an empty -p value as no prefix.
func optionalPrefix(prefix string) *string {
	if prefix == "" {
		return nil
	}
	return &prefix
}
