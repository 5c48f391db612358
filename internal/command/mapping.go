// Where: internal/command/mapping.go
// What: Mapping command handlers (map, targets, apply).
// Why: Adapt CLI input to the mapping workflows and persistence.
package command

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Newmi1988/environmental/internal/domain/mapping"
	"github.com/Newmi1988/environmental/internal/infra/envfile"
	"github.com/Newmi1988/environmental/internal/infra/folders"
	"github.com/Newmi1988/environmental/internal/infra/store"
	"github.com/Newmi1988/environmental/internal/meta"
	"github.com/Newmi1988/environmental/internal/usecase/apply"
	"github.com/Newmi1988/environmental/internal/usecase/mappingcreate"
)

var errNotInteractive = errors.New("map needs an interactive terminal")

func runMap(s *session) error {
	cmd := s.cli.Map
	if !s.interactive() {
		return errNotInteractive
	}
	prompter, err := s.prompter()
	if err != nil {
		return err
	}
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}

	lister := folders.Lister{IncludeBase: includeBaseFolder(cmd.BaseFolder, s.settings.IncludeBaseFolder)}
	workflow := mappingcreate.NewWorkflow(lister, prompter, s.logger)
	m, err := workflow.Run(cfg, mappingcreate.Request{Base: cmd.Base})
	if err != nil {
		return err
	}

	output := cmd.Output
	if output == "" {
		output = s.defaultMappingPath()
	}
	if err := store.SaveMapping(output, m); err != nil {
		return err
	}
	s.logger.Debug("mapping saved", "path", output, "entries", len(m.Entries()))
	s.console.Success(fmt.Sprintf("Wrote mapping with %d target(s) to %s", len(m.Entries()), output))
	return nil
}

func includeBaseFolder(flag string, fallback bool) bool {
	switch flag {
	case "include":
		return true
	case "exclude":
		return false
	default:
		return fallback
	}
}

func runTargets(s *session) error {
	m, err := s.loadMapping(s.cli.Targets.Mapping)
	if err != nil {
		return err
	}
	for _, target := range m.ListTargets() {
		fmt.Fprintln(s.deps.Out, target)
	}
	return nil
}

func runApply(s *session) error {
	cmd := s.cli.Apply
	m, err := s.loadMapping(cmd.Mapping)
	if err != nil {
		return err
	}
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}

	req := apply.Request{Mapping: m, Config: cfg, Mode: mapping.ModeWriteFile}
	if cmd.Target != "" {
		req.Targets = []string{cmd.Target}
	}
	if cmd.Print {
		req.Mode = mapping.ModePrintOnly
	}

	workflow := apply.NewWorkflow(s.deps.EnvWriter, envfile.Printer{Out: s.deps.Out}, s.logger)
	result, err := workflow.Run(req)
	if err != nil {
		return err
	}
	if len(result.Applied) == 0 && cmd.Target != "" {
		s.logger.Warn("target is not part of the mapping", "target", cmd.Target, "mapping", cmd.Mapping)
	}
	if req.Mode == mapping.ModeWriteFile {
		for _, res := range result.Applied {
			s.console.Success("Wrote " + filepath.Join(res.Path, meta.EnvFileName))
		}
	}
	return nil
}
