package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewHidesDebugByDefault(t *testing.T) {
	var out bytes.Buffer
	logger := New(Options{Output: &out})
	logger.Debug("hidden")
	logger.Warn("shown", "path", "/srv/app")

	got := out.String()
	if strings.Contains(got, "hidden") {
		t.Fatalf("debug line leaked: %q", got)
	}
	if !strings.Contains(got, "shown") || !strings.Contains(got, "path=/srv/app") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewDebugJSON(t *testing.T) {
	var out bytes.Buffer
	logger := New(Options{Output: &out, Debug: true, JSON: true})
	logger.Debug("resolved", "lines", 3)

	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &record); err != nil {
		t.Fatalf("expected json line, got %q: %v", out.String(), err)
	}
	if record["@message"] != "resolved" || record["@module"] != "environmental" {
		t.Fatalf("unexpected record: %#v", record)
	}
}
