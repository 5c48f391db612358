// Where: internal/infra/envfile/envfile_test.go
// What: Tests for .env writing and key/value sources.
// Why: Lock the written file format and source ordering.
package envfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Newmi1988/environmental/internal/domain/component"
	"github.com/Newmi1988/environmental/internal/domain/failure"
)

func TestWriterJoinsLinesWithoutTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	lines := []string{"# component db", `PG_HOST="localhost"`, "PG_PORT=5432"}
	if err := (Writer{}).WriteEnvFile(dir, lines); err != nil {
		t.Fatalf("WriteEnvFile: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, ".env"))
	if err != nil {
		t.Fatalf("read .env: %v", err)
	}
	want := "# component db\nPG_HOST=\"localhost\"\nPG_PORT=5432"
	if string(got) != want {
		t.Fatalf(".env = %q, want %q", got, want)
	}
}

func TestWriterMissingDirIsIOFailure(t *testing.T) {
	err := (Writer{}).WriteEnvFile(filepath.Join(t.TempDir(), "missing"), []string{"A=1"})
	if !errors.Is(err, failure.ErrIO) {
		t.Fatalf("expected io failure, got %v", err)
	}
}

func TestPrinterIndentsLines(t *testing.T) {
	var out bytes.Buffer
	if err := (Printer{Out: &out}).PrintEnv("/srv/app", []string{"# component db", "A=1"}); err != nil {
		t.Fatalf("PrintEnv: %v", err)
	}
	if got := out.String(); got != "  # component db\n  A=1\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestProcessEnvironmentReadSortsAndFilters(t *testing.T) {
	env := ProcessEnvironment{Environ: func() []string {
		return []string{"PG_PORT=5432", "HOME=/root", "=C:=C:\\", "pg_host=db=primary", "BROKEN"}
	}}

	all := env.Read("")
	wantAll := []component.Pair{
		{Key: "HOME", Value: "/root"},
		{Key: "PG_PORT", Value: "5432"},
		{Key: "pg_host", Value: "db=primary"},
	}
	if !reflect.DeepEqual(all, wantAll) {
		t.Fatalf("Read(\"\") = %#v, want %#v", all, wantAll)
	}

	filtered := env.Read("pg_")
	wantFiltered := []component.Pair{
		{Key: "PG_PORT", Value: "5432"},
		{Key: "pg_host", Value: "db=primary"},
	}
	if !reflect.DeepEqual(filtered, wantFiltered) {
		t.Fatalf("Read(\"pg_\") = %#v, want %#v", filtered, wantFiltered)
	}
}

func TestReadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	content := "# comment\nZETA=last\nALPHA=\"quoted value\"\nexport PORT=8080\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	pairs, err := ReadDotenv(path)
	if err != nil {
		t.Fatalf("ReadDotenv: %v", err)
	}
	want := []component.Pair{
		{Key: "ALPHA", Value: "quoted value"},
		{Key: "PORT", Value: "8080"},
		{Key: "ZETA", Value: "last"},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("ReadDotenv() = %#v, want %#v", pairs, want)
	}
}

func TestReadDotenvMissingFile(t *testing.T) {
	_, err := ReadDotenv(filepath.Join(t.TempDir(), "absent.env"))
	if !errors.Is(err, failure.ErrIO) {
		t.Fatalf("expected io failure, got %v", err)
	}
}

func TestLoadIntoProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.env")
	if err := os.WriteFile(path, []byte("ENVIRONMENTAL_TEST_LOADED=yes\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	t.Setenv("ENVIRONMENTAL_TEST_LOADED", "")
	os.Unsetenv("ENVIRONMENTAL_TEST_LOADED")

	if err := LoadIntoProcess(path); err != nil {
		t.Fatalf("LoadIntoProcess: %v", err)
	}
	if got := os.Getenv("ENVIRONMENTAL_TEST_LOADED"); got != "yes" {
		t.Fatalf("expected variable loaded, got %q", got)
	}
}
