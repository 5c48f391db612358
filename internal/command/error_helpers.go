// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Keep failure messages consistent across commands.
package command

import (
	"fmt"
	"io"

	"github.com/Newmi1988/environmental/internal/domain/failure"
)

// exitWithError prints an error message and returns exit code 1.
// Taxonomy errors are tagged with their kind.
func exitWithError(out io.Writer, err error) int {
	if kind := failure.Kind(err); kind != "" {
		fmt.Fprintf(out, "✗ [%s] %v\n", kind, err)
		return 1
	}
	fmt.Fprintf(out, "✗ %v\n", err)
	return 1
}
