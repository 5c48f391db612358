// Where: cmd/environmental/main.go
// What: CLI entrypoint.
// Why: Execute environmental commands with configured dependencies.
package main

import (
	"os"

	"github.com/Newmi1988/environmental/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
