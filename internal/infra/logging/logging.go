// Where: internal/infra/logging/logging.go
// What: Leveled logger factory.
// Why: Keep diagnostics on stderr and away from command output.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/Newmi1988/environmental/internal/meta"
)

// Options configures New.
type Options struct {
	Debug  bool
	JSON   bool
	Output io.Writer
}

// New creates the application logger. Only warnings and errors are shown
// unless Debug is set.
func New(opts Options) hclog.Logger {
	level := hclog.Warn
	if opts.Debug {
		level = hclog.Debug
	}
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       meta.AppName,
		Level:      level,
		Output:     output,
		JSONFormat: opts.JSON,
	})
}
