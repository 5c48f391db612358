package command

import (
	"github.com/Newmi1988/environmental/internal/version"
)

// runVersion prints the version information of the CLI.
func runVersion(s *session) error {
	s.console.Info(version.GetVersion())
	return nil
}
