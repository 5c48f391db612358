// Where: internal/command/schema.go
// What: Schema export handler.
// Why: Give editors a JSON schema for the persisted YAML files.
package command

import (
	"fmt"

	"github.com/Newmi1988/environmental/internal/infra/store"
)

func runSchema(s *session) error {
	cmd := s.cli.Schema
	kind := store.SchemaKind(cmd.Kind)
	if cmd.Target == "" {
		data, err := store.Schema(kind)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(s.deps.Out, string(data))
		return err
	}
	if err := store.ExportSchema(kind, cmd.Target); err != nil {
		return err
	}
	s.console.Success(fmt.Sprintf("Wrote %s schema to %s", kind, cmd.Target))
	return nil
}
