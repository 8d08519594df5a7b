package lint

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aflah02/pyqa/internal/fsh"
	"github.com/aflah02/pyqa/internal/toolchain"
	"github.com/aflah02/pyqa/internal/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockEnvProvider is a test implementation of fsh.EnvProvider.
type mockEnvProvider struct {
	env map[string]string
}

func (m *mockEnvProvider) Get(key string) string {
	return m.env[key]
}

type toolCall struct {
	tool toolchain.Tool
	args []string
	dir  string
}

// fakeToolRunner is a toolchain.Runner stub which records invocations and
// returns a configured error per tool.
type fakeToolRunner struct {
	errs  map[toolchain.Tool]error
	calls []toolCall
}

func (f *fakeToolRunner) Look(tool toolchain.Tool) (string, error) {
	if _, ok := f.errs[tool].(*toolchain.ToolNotFoundError); ok {
		return "", f.errs[tool]
	}
	return "/usr/bin/" + string(tool), nil
}

func (f *fakeToolRunner) Run(_ context.Context, tool toolchain.Tool, args []string, dir string) error {
	f.calls = append(f.calls, toolCall{tool: tool, args: args, dir: dir})
	return f.errs[tool]
}

func (f *fakeToolRunner) Output(_ context.Context, tool toolchain.Tool, args []string, dir string) ([]byte, error) {
	f.calls = append(f.calls, toolCall{tool: tool, args: args, dir: dir})
	return nil, f.errs[tool]
}

// callFor returns the first recorded invocation of the given tool.
func (f *fakeToolRunner) callFor(tool toolchain.Tool) (toolCall, bool) {
	for _, c := range f.calls {
		if c.tool == tool {
			return c, true
		}
	}
	return toolCall{}, false
}

func (f *fakeToolRunner) called(tool toolchain.Tool) bool {
	_, ok := f.callFor(tool)
	return ok
}

// exitError produces a real *exec.ExitError carrying the given exit code.
func exitError(t *testing.T, code int) error {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs sh")
	}
	err := exec.Command("sh", "-c", fmt.Sprintf("exit %d", code)).Run()
	require.Error(t, err)
	return err
}

// writeProjectFiles writes the given path/content pairs under dir, creating
// parent directories as needed.
func writeProjectFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		full := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
	}
}

// setupTestProject creates a project in a temp directory populated with the
// given files. Include a ".pyqa.yml" entry to control the configuration.
func setupTestProject(t *testing.T, files map[string]string) *Project {
	t.Helper()
	dir := t.TempDir()
	writeProjectFiles(t, dir, files)

	p, err := NewProject(
		dir,
		validator.NewSanthoshCompiler(),
		fsh.NewPathResolver(),
		fsh.NewEnvProvider(),
	)
	require.NoError(t, err)
	return p
}
