// Where: internal/usecase/componentcreate/componentcreate.go
// What: Component creation workflow.
// Why: Share one validation path for flag, process-env, and dotenv sources.
package componentcreate

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/Newmi1988/environmental/internal/domain/component"
	"github.com/Newmi1988/environmental/internal/domain/config"
	"github.com/Newmi1988/environmental/internal/domain/failure"
)

// Source selects where the key/value pairs come from.
type Source int

const (
	SourceFlags Source = iota
	SourceEnvironment
	SourceDotenv
)

// Request captures the inputs required to create a component.
type Request struct {
	Name   string
	Prefix *string
	Source Source
	Keys   []string
	Values []string
	// Filter restricts SourceEnvironment to keys with this prefix.
	Filter string
	// DotenvPath is read for SourceDotenv.
	DotenvPath string
}

// EnvironmentReader lists process environment variables.
type EnvironmentReader interface {
	Read(filter string) []component.Pair
}

// DotenvReader parses a dotenv file into pairs.
type DotenvReader func(path string) ([]component.Pair, error)

// Workflow builds a new Configuration with one more component.
type Workflow struct {
	Environment EnvironmentReader
	Dotenv      DotenvReader
	Logger      hclog.Logger
}

// NewWorkflow constructs a Workflow.
func NewWorkflow(env EnvironmentReader, dotenv DotenvReader, logger hclog.Logger) Workflow {
	return Workflow{Environment: env, Dotenv: dotenv, Logger: logger}
}

// Run returns cfg extended with the requested component. cfg itself is unchanged.
func (w Workflow) Run(cfg config.Configuration, req Request) (config.Configuration, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return config.Configuration{}, fmt.Errorf("%w: component name is required", failure.ErrEmptyInput)
	}
	if cfg.NameExists(name) {
		return config.Configuration{}, fmt.Errorf("%w: component %q already exists", failure.ErrNameConflict, name)
	}

	pairs, err := w.pairs(req)
	if err != nil {
		return config.Configuration{}, err
	}
	w.logger().Debug("creating component", "name", name, "pairs", len(pairs), "prefixed", req.Prefix != nil)

	return cfg.Add(component.New(name, req.Prefix, pairs))
}

func (w Workflow) pairs(req Request) ([]component.Pair, error) {
	switch req.Source {
	case SourceFlags:
		return component.Pairs(req.Keys, req.Values)
	case SourceEnvironment:
		if w.Environment == nil {
			return nil, fmt.Errorf("environment reader is not configured")
		}
		pairs := w.Environment.Read(req.Filter)
		if len(pairs) == 0 {
			return nil, fmt.Errorf("%w: no environment variables match %q", failure.ErrEmptyInput, req.Filter)
		}
		return pairs, nil
	case SourceDotenv:
		if w.Dotenv == nil {
			return nil, fmt.Errorf("dotenv reader is not configured")
		}
		pairs, err := w.Dotenv(req.DotenvPath)
		if err != nil {
			return nil, err
		}
		if len(pairs) == 0 {
			return nil, fmt.Errorf("%w: %s defines no variables", failure.ErrEmptyInput, req.DotenvPath)
		}
		return pairs, nil
	default:
		return nil, fmt.Errorf("unsupported component source %d", req.Source)
	}
}

func (w Workflow) logger() hclog.Logger {
	if w.Logger == nil {
		return hclog.NewNullLogger()
	}
	return w.Logger
}
