package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Newmi1988/environmental/internal/domain/component"
	"github.com/Newmi1988/environmental/internal/infra/envfile"
	"github.com/Newmi1988/environmental/internal/infra/store"
)

func TestComponentCreateListShow(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(t, "component", "create", "-n", "postgres", "-p", "db",
		"-k", "HOST", "-v", "localhost", "-k", "PORT", "-v", "5432")
	if !strings.Contains(out, `Created component "postgres"`) {
		t.Fatalf("unexpected create output: %q", out)
	}
	env.mustRun(t, "component", "create", "-n", "redis", "-k", "URL", "-v", "redis://cache,replica")

	out = env.mustRun(t, "component", "list")
	if !strings.Contains(out, "Existing components:\n  postgres\n  redis\n") {
		t.Fatalf("unexpected list output: %q", out)
	}

	out = env.mustRun(t, "component", "show", "postgres")
	want := "# component postgres\nDB_HOST=\"localhost\"\nDB_PORT=5432\n"
	if out != want {
		t.Fatalf("show = %q, want %q", out, want)
	}

	out = env.mustRun(t, "component", "show", "redis")
	if !strings.Contains(out, `URL="redis://cache,replica"`) {
		t.Fatalf("comma in value must survive: %q", out)
	}
}

func TestComponentCreateReportsTrimmedName(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(t, "component", "create", "-n", "  cache  ", "-k", "URL", "-v", "redis://cache")
	if !strings.Contains(out, `Created component "cache" in`) {
		t.Fatalf("unexpected create output: %q", out)
	}
	if got := env.mustRun(t, "component", "show", "cache"); !strings.HasPrefix(got, "# component cache\n") {
		t.Fatalf("show = %q", got)
	}
}

func TestComponentListFormat(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "component", "create", "-n", "api", "-p", "svc", "-k", "A", "-v", "1", "-k", "B", "-v", "x")
	out := env.mustRun(t, "component", "list", "--format", `{{ .Name }} {{ .Prefix | upper }} {{ join "," .Keys }}`)
	if out != "api SVC A,B\n" {
		t.Fatalf("format output = %q", out)
	}
}

func TestComponentCreateErrors(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "component", "create", "-n", "app", "-k", "A", "-v", "1")

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"duplicate", []string{"component", "create", "-n", "app", "-k", "B", "-v", "2"}, "[name conflict]"},
		{"arity", []string{"component", "create", "-n", "other", "-k", "A", "-k", "B", "-v", "1"}, "[arity mismatch]"},
		{"empty", []string{"component", "create", "-n", "other"}, "[empty input]"},
		{"missing name", []string{"component", "create", "-k", "A", "-v", "1"}, "[empty input]"},
		{"mixed sources", []string{"component", "create", "-n", "x", "--from-env", "-k", "A", "-v", "1"}, "--from-env"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if code := env.run(tc.args...); code == 0 {
				t.Fatal("expected failure")
			}
			if !strings.Contains(env.errOut.String(), tc.want) {
				t.Fatalf("stderr = %q, want %q", env.errOut.String(), tc.want)
			}
		})
	}

	cfg, err := store.LoadConfig(env.configPath)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got := cfg.ListComponents(); len(got) != 1 || got[0] != "app" {
		t.Fatalf("failed creates must not persist, got %v", got)
	}
}

func TestComponentCreateFromEnvironment(t *testing.T) {
	env := newTestEnv(t)
	env.deps.Environment = fakeEnvironment{pairs: []component.Pair{
		{Key: "APP_NAME", Value: "shop"},
		{Key: "APP_PORT", Value: "8080"},
	}}
	env.mustRun(t, "component", "create", "-n", "app", "--from-env", "--filter", "APP_")
	out := env.mustRun(t, "component", "show", "app")
	if out != "# component app\nAPP_NAME=\"shop\"\nAPP_PORT=8080\n" {
		t.Fatalf("show = %q", out)
	}
}

func TestComponentCreateFromEnvFileFlag(t *testing.T) {
	env := newTestEnv(t)
	env.deps.Environment = envfile.ProcessEnvironment{}
	dotenv := filepath.Join(env.dir, "local.env")
	if err := os.WriteFile(dotenv, []byte("ENVTESTCMD_TOKEN=abc\n"), 0o644); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("ENVTESTCMD_TOKEN") })

	env.mustRun(t, "--env-file", dotenv, "component", "create", "-n", "tok", "--from-env", "--filter", "envtestcmd_")
	out := env.mustRun(t, "component", "show", "tok")
	if out != "# component tok\nENVTESTCMD_TOKEN=\"abc\"\n" {
		t.Fatalf("show = %q", out)
	}
}

func TestComponentImport(t *testing.T) {
	env := newTestEnv(t)
	dotenv := filepath.Join(env.dir, "api.env")
	if err := os.WriteFile(dotenv, []byte("# api\nTOKEN=abc\nPORT=0443\n"), 0o644); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	env.mustRun(t, "component", "import", "-n", "api", "-p", "api", dotenv)
	out := env.mustRun(t, "component", "show", "api")
	if out != "# component api\nAPI_PORT=\"0443\"\nAPI_TOKEN=\"abc\"\n" {
		t.Fatalf("show = %q", out)
	}

	if code := env.run("component", "import", "-n", "missing", filepath.Join(env.dir, "absent.env")); code == 0 {
		t.Fatal("expected failure for missing dotenv")
	}
	if !strings.Contains(env.errOut.String(), "[io failure]") {
		t.Fatalf("stderr = %q", env.errOut.String())
	}
}

func TestComponentShowErrors(t *testing.T) {
	env := newTestEnv(t)
	if code := env.run("component", "show", "x"); code == 0 {
		t.Fatal("expected failure without configuration")
	}
	if !strings.Contains(env.errOut.String(), "[io failure]") {
		t.Fatalf("stderr = %q", env.errOut.String())
	}

	env.mustRun(t, "component", "create", "-n", "app", "-k", "A", "-v", "1")
	if code := env.run("component", "show", "nope"); code == 0 {
		t.Fatal("expected failure for unknown component")
	}
	if code := env.run("component", "show"); code == 0 {
		t.Fatal("expected failure without name when not interactive")
	}
}

func TestComponentInteractivePrompts(t *testing.T) {
	env := newTestEnv(t)
	prompter := &fakePrompter{inputs: []string{"app", "web"}, selects: []string{"web"}}
	env.mustRun(t, "component", "create", "-n", "app", "-k", "A", "-v", "1")
	env.interactive(prompter)

	out := env.mustRun(t, "component", "create", "-k", "B", "-v", "2")
	if !strings.Contains(out, `Component "app" already exists`) || !strings.Contains(out, `Created component "web"`) {
		t.Fatalf("unexpected output: %q", out)
	}

	out = env.mustRun(t, "component", "show")
	if out != "# component web\nB=2\n" {
		t.Fatalf("show = %q", out)
	}
}
