// Where: internal/infra/ui/format.go
// What: User-supplied output templates for list commands.
// Why: Let scripts shape list output without extra tooling.
package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Format renders one record per line from a text/template with sprig functions.
type Format struct {
	tmpl *template.Template
}

// ParseFormat compiles text. A trailing newline is added per record when text has none.
func ParseFormat(text string) (*Format, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("format template is empty")
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	tmpl, err := template.New("format").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse format: %w", err)
	}
	return &Format{tmpl: tmpl}, nil
}

// Render writes every record to out. Nothing is written when a record fails.
func (f *Format) Render(out io.Writer, records []any) error {
	var buf bytes.Buffer
	for _, record := range records {
		if err := f.tmpl.Execute(&buf, record); err != nil {
			return fmt.Errorf("render format: %w", err)
		}
	}
	_, err := out.Write(buf.Bytes())
	return err
}
