package command

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Newmi1988/environmental/internal/domain/component"
	"github.com/Newmi1988/environmental/internal/domain/failure"
	"github.com/Newmi1988/environmental/internal/infra/envfile"
)

type fakePrompter struct {
	inputs  []string
	selects []string
	multi   map[string][]string
	titles  []string
}

func (f *fakePrompter) Input(title string, _ []string) (string, error) {
	f.titles = append(f.titles, title)
	if len(f.inputs) == 0 {
		return "", fmt.Errorf("%w: no scripted input", failure.ErrSelectionCancelled)
	}
	next := f.inputs[0]
	f.inputs = f.inputs[1:]
	return next, nil
}

func (f *fakePrompter) Select(title string, _ []string) (string, error) {
	f.titles = append(f.titles, title)
	if len(f.selects) == 0 {
		return "", fmt.Errorf("%w: no scripted selection", failure.ErrSelectionCancelled)
	}
	next := f.selects[0]
	f.selects = f.selects[1:]
	return next, nil
}

func (f *fakePrompter) MultiSelect(title string, _ []string) ([]string, error) {
	f.titles = append(f.titles, title)
	return f.multi[title], nil
}

type fakeEnvironment struct {
	pairs []component.Pair
}

func (f fakeEnvironment) Read(string) []component.Pair {
	return f.pairs
}

type testEnv struct {
	deps       Dependencies
	out        *bytes.Buffer
	errOut     *bytes.Buffer
	dir        string
	configPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	settingsPath := filepath.Join(dir, "settings", "settings.toml")
	return &testEnv{
		deps: Dependencies{
			In:           &bytes.Buffer{},
			Out:          out,
			ErrOut:       errOut,
			EnvWriter:    envfile.Writer{},
			SettingsPath: func() (string, error) { return settingsPath, nil },
		},
		out:        out,
		errOut:     errOut,
		dir:        dir,
		configPath: filepath.Join(dir, "mental.yaml"),
	}
}

// run executes the CLI against the test configuration file.
func (e *testEnv) run(args ...string) int {
	e.out.Reset()
	e.errOut.Reset()
	return Run(append([]string{"-c", e.configPath}, args...), e.deps)
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	if code := e.run(args...); code != 0 {
		t.Fatalf("Run(%v) exit = %d, stderr = %q", args, code, e.errOut.String())
	}
	return e.out.String()
}

func (e *testEnv) interactive(p *fakePrompter) {
	e.deps.Interactive = func() bool { return true }
	e.deps.Prompter = p
}
