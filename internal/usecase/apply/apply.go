// Where: internal/usecase/apply/apply.go
// What: Mapping apply workflow.
// Why: Turn a resolved mapping into .env files or printed output.
package apply

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/Newmi1988/environmental/internal/domain/config"
	"github.com/Newmi1988/environmental/internal/domain/mapping"
)

var errSinkNotConfigured = errors.New("output sink is not configured")

// EnvWriter writes resolved lines into <dir>/.env.
type EnvWriter interface {
	WriteEnvFile(dir string, lines []string) error
}

// EnvPrinter emits resolved lines for a target without touching disk.
type EnvPrinter interface {
	PrintEnv(path string, lines []string) error
}

// Request captures the inputs required to apply a mapping.
type Request struct {
	Mapping mapping.Mapping
	Config  config.Configuration
	// Targets selects mapping paths. Nil applies every target.
	Targets []string
	Mode    mapping.Mode
}

// Result reports the entries that were delivered, in order.
type Result struct {
	Applied []mapping.Resolution
}

// Workflow applies mappings through the configured sinks.
type Workflow struct {
	Writer  EnvWriter
	Printer EnvPrinter
	Logger  hclog.Logger
}

// NewWorkflow constructs a Workflow.
func NewWorkflow(writer EnvWriter, printer EnvPrinter, logger hclog.Logger) Workflow {
	return Workflow{Writer: writer, Printer: printer, Logger: logger}
}

// Run resolves every matching entry in storage order and delivers it.
// The first delivery failure stops the batch; earlier deliveries are kept.
func (w Workflow) Run(req Request) (Result, error) {
	deliver, err := w.sink(req.Mode)
	if err != nil {
		return Result{}, err
	}

	targets := req.Targets
	if targets == nil {
		targets = req.Mapping.ListTargets()
	}
	plan := req.Mapping.Resolve(req.Config, targets)
	w.logger().Debug("resolved mapping", "targets", len(targets), "entries", len(plan), "mode", req.Mode.String())

	result := Result{Applied: make([]mapping.Resolution, 0, len(plan))}
	for _, res := range plan {
		w.logger().Debug("applying entry", "path", res.Path, "lines", len(res.Lines))
		if err := deliver(res.Path, res.Lines); err != nil {
			return result, err
		}
		result.Applied = append(result.Applied, res)
	}
	return result, nil
}

func (w Workflow) sink(mode mapping.Mode) (func(string, []string) error, error) {
	switch mode {
	case mapping.ModeWriteFile:
		if w.Writer == nil {
			return nil, errSinkNotConfigured
		}
		return w.Writer.WriteEnvFile, nil
	case mapping.ModePrintOnly:
		if w.Printer == nil {
			return nil, errSinkNotConfigured
		}
		return w.Printer.PrintEnv, nil
	default:
		return nil, fmt.Errorf("unsupported apply mode %d", mode)
	}
}

func (w Workflow) logger() hclog.Logger {
	if w.Logger == nil {
		return hclog.NewNullLogger()
	}
	return w.Logger
}
