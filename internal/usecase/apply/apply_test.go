package apply

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Newmi1988/environmental/internal/domain/component"
	"github.com/Newmi1988/environmental/internal/domain/config"
	"github.com/Newmi1988/environmental/internal/domain/failure"
	"github.com/Newmi1988/environmental/internal/domain/mapping"
	"github.com/Newmi1988/environmental/internal/infra/envfile"
)

type recordWriter struct {
	calls  []mapping.Resolution
	failAt string
}

func (r *recordWriter) WriteEnvFile(dir string, lines []string) error {
	if dir == r.failAt {
		return failure.ErrIO
	}
	r.calls = append(r.calls, mapping.Resolution{Path: dir, Lines: lines})
	return nil
}

func testConfig(t *testing.T) config.Configuration {
	t.Helper()
	db := "db"
	cfg, err := config.New(
		component.New("postgres", &db, []component.Pair{{Key: "HOST", Value: "localhost"}, {Key: "PORT", Value: "5432"}}),
		component.New("redis", nil, []component.Pair{{Key: "REDIS_URL", Value: "redis://cache"}}),
	)
	if err != nil {
		t.Fatalf("config.New: %v", err)
	}
	return cfg
}

func TestWorkflowRunWritesSelectedTargets(t *testing.T) {
	m := mapping.New([]mapping.Selection{
		{Folder: "api", Components: []string{"redis", "postgres"}},
		{Folder: "web", Components: []string{"redis"}},
	})
	writer := &recordWriter{}
	result, err := NewWorkflow(writer, nil, nil).Run(Request{
		Mapping: m,
		Config:  testConfig(t),
		Targets: []string{"./api"},
		Mode:    mapping.ModeWriteFile,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []mapping.Resolution{{
		Path: "api",
		Lines: []string{
			"# component postgres", `DB_HOST="localhost"`, "DB_PORT=5432",
			"# component redis", `REDIS_URL="redis://cache"`,
		},
	}}
	if !reflect.DeepEqual(writer.calls, want) {
		t.Fatalf("writes = %#v, want %#v", writer.calls, want)
	}
	if !reflect.DeepEqual(result.Applied, want) {
		t.Fatalf("result = %#v", result.Applied)
	}
}

func TestWorkflowRunNilTargetsAppliesAll(t *testing.T) {
	m := mapping.New([]mapping.Selection{
		{Folder: "api", Components: []string{"postgres"}},
		{Folder: "web", Components: []string{"missing"}},
	})
	writer := &recordWriter{}
	if _, err := NewWorkflow(writer, nil, nil).Run(Request{Mapping: m, Config: testConfig(t)}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(writer.calls) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(writer.calls))
	}
	if len(writer.calls[1].Lines) != 0 {
		t.Fatalf("unknown component must resolve to no lines, got %v", writer.calls[1].Lines)
	}
}

func TestWorkflowRunNoMatchingTargets(t *testing.T) {
	m := mapping.New([]mapping.Selection{{Folder: "api", Components: []string{"postgres"}}})
	writer := &recordWriter{}
	result, err := NewWorkflow(writer, nil, nil).Run(Request{
		Mapping: m,
		Config:  testConfig(t),
		Targets: []string{},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(writer.calls) != 0 || len(result.Applied) != 0 {
		t.Fatalf("expected no writes, got %v", writer.calls)
	}
}

func TestWorkflowRunStopsAtFirstFailure(t *testing.T) {
	m := mapping.New([]mapping.Selection{
		{Folder: "a", Components: []string{"redis"}},
		{Folder: "b", Components: []string{"redis"}},
		{Folder: "c", Components: []string{"redis"}},
	})
	writer := &recordWriter{failAt: "b"}
	result, err := NewWorkflow(writer, nil, nil).Run(Request{Mapping: m, Config: testConfig(t)})
	if !errors.Is(err, failure.ErrIO) {
		t.Fatalf("expected io failure, got %v", err)
	}
	if len(writer.calls) != 1 || writer.calls[0].Path != "a" {
		t.Fatalf("writes = %v", writer.calls)
	}
	if len(result.Applied) != 1 {
		t.Fatalf("applied = %v", result.Applied)
	}
}

func TestWorkflowRunPrintOnly(t *testing.T) {
	m := mapping.New([]mapping.Selection{{Folder: "web", Components: []string{"redis"}}})
	var out bytes.Buffer
	_, err := NewWorkflow(nil, envfile.Printer{Out: &out}, nil).Run(Request{
		Mapping: m,
		Config:  testConfig(t),
		Mode:    mapping.ModePrintOnly,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "  # component redis\n  REDIS_URL=\"redis://cache\"\n"
	if out.String() != want {
		t.Fatalf("printed %q, want %q", out.String(), want)
	}
}

func TestWorkflowRunWritesEnvFiles(t *testing.T) {
	root := t.TempDir()
	api := filepath.Join(root, "api")
	if err := os.Mkdir(api, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	m := mapping.New([]mapping.Selection{
		{Folder: api, Components: []string{"postgres"}},
		{Folder: api, Components: []string{"redis"}},
	})
	if _, err := NewWorkflow(envfile.Writer{}, nil, nil).Run(Request{Mapping: m, Config: testConfig(t)}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(api, ".env"))
	if err != nil {
		t.Fatalf("read .env: %v", err)
	}
	if got, want := string(data), "# component redis\nREDIS_URL=\"redis://cache\""; got != want {
		t.Fatalf(".env = %q, want %q (last entry wins)", got, want)
	}

	missing := mapping.New([]mapping.Selection{{Folder: filepath.Join(root, "absent"), Components: []string{"redis"}}})
	_, err = NewWorkflow(envfile.Writer{}, nil, nil).Run(Request{Mapping: missing, Config: testConfig(t)})
	if !errors.Is(err, failure.ErrIO) {
		t.Fatalf("expected io failure for missing folder, got %v", err)
	}
}

func TestWorkflowRunRequiresSink(t *testing.T) {
	_, err := (Workflow{}).Run(Request{Mode: mapping.ModePrintOnly})
	if !errors.Is(err, errSinkNotConfigured) {
		t.Fatalf("expected sink error, got %v", err)
	}
}
