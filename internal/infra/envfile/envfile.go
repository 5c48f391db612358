// Where: internal/infra/envfile/envfile.go
// What: .env delivery targets: file writer and stdout printer.
// Why: Give the apply workflow concrete sinks for both modes.
package envfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/Newmi1988/environmental/internal/domain/failure"
	"github.com/Newmi1988/environmental/internal/infra/fileops"
	"github.com/Newmi1988/environmental/internal/meta"
)

// Writer writes resolved lines into <dir>/.env.
type Writer struct{}

// WriteEnvFile joins lines with "\n" and overwrites the file in place.
// The target directory must already exist.
func (Writer) WriteEnvFile(dir string, lines []string) error {
	content := strings.Join(lines, "\n")
	if err := fileops.WriteIntoDir(dir, meta.EnvFileName, []byte(content)); err != nil {
		return fmt.Errorf("%w: write %s into %s: %w", failure.ErrIO, meta.EnvFileName, dir, err)
	}
	return nil
}

// Printer writes resolved lines to Out, indented by two spaces.
type Printer struct {
	Out io.Writer
}

// PrintEnv emits one indented line per resolved line.
func (p Printer) PrintEnv(_ string, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintf(p.Out, "  %s\n", line); err != nil {
			return fmt.Errorf("%w: print env: %w", failure.ErrIO, err)
		}
	}
	return nil
}
