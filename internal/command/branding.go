// Where: internal/command/branding.go
// What: CLI naming.
// Why: Keep user-facing command names consistent when the binary is wrapped.
package command

import (
	"strings"

	"github.com/Newmi1988/environmental/internal/infra/envutil"
	"github.com/Newmi1988/environmental/internal/meta"
)

func cliName() string {
	name := strings.TrimSpace(envutil.GetHostEnv("cli_cmd"))
	if name == "" {
		name = meta.AppName
	}
	return name
}
