package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aflah02/pyqa/internal/fsh"
	"github.com/aflah02/pyqa/internal/lint"
	"github.com/aflah02/pyqa/internal/toolchain"
	"github.com/aflah02/pyqa/internal/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const testConfig = `
targets:
  - "*.py"
  - "pkg"
settingsFile: setup.cfg
`

// compliantProjectFiles is a minimal project that passes every check, as far
// as pyqa itself can tell. Whether the external tools pass is up to the test.
var compliantProjectFiles = map[string]string{
	".pyqa.yml": testConfig,
	"setup.cfg": "[flake8]\n",
	"setup.py":  "# Copyright 2026 The pyqa authors\n",
	"pkg/a.py":  "# Copyright 2026 The pyqa authors\n",
}

type MockGate struct {
	mock.Mock
	project *lint.Project
}

func (m *MockGate) Project() *lint.Project {
	return m.project
}

func (m *MockGate) RunChecks(ctx context.Context, only lint.CheckName, verbose bool,
	format string, useColour bool, continueOnError bool,
) error {
	args := m.Called(ctx, only, verbose, format, useColour, continueOnError)
	return args.Error(0)
}

func (m *MockGate) WatchChecks(ctx context.Context, only lint.CheckName, verbose bool,
	format string, useColour bool, continueOnError bool, readyChan chan<- struct{},
) error {
	args := m.Called(ctx, only, verbose, format, useColour, continueOnError, readyChan)
	return args.Error(0)
}

func (m *MockGate) Format(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGate) Doctor(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// mockEnvProvider is a test implementation of fsh.EnvProvider.
type mockEnvProvider struct {
	values map[string]string
}

func (m *mockEnvProvider) Get(key string) string {
	return m.values[key]
}

// mockPathResolver is a test implementation of fsh.PathResolver.
type mockPathResolver struct {
	canonicalPathFn func(path string) (string, error)
	absFn           func(path string) (string, error)
}

func (m *mockPathResolver) CanonicalPath(path string) (string, error) {
	if m.canonicalPathFn != nil {
		return m.canonicalPathFn(path)
	}
	return path, nil
}

func (m *mockPathResolver) Abs(path string) (string, error) {
	if m.absFn != nil {
		return m.absFn(path)
	}
	return path, nil
}

// writeFiles writes the given path/content pairs under dir.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		full := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
	}
}

// newTestProject builds a real project in a temp directory.
func newTestProject(t *testing.T, files map[string]string) *lint.Project {
	t.Helper()
	dir := t.TempDir()
	writeFiles(t, dir, files)

	p, err := lint.NewProject(dir, validator.NewSanthoshCompiler(), fsh.NewPathResolver(), &mockEnvProvider{})
	require.NoError(t, err)
	return p
}

type runnerCall struct {
	tool toolchain.Tool
	args []string
	dir  string
}

// fakeRunner is a toolchain.Runner stub which records invocations. Tools in
// missing report as not installed; errs configures the error Run returns;
// versions and pipJSON feed the probe helpers.
type fakeRunner struct {
	missing  map[toolchain.Tool]bool
	errs     map[toolchain.Tool]error
	versions map[toolchain.Tool]string
	pipJSON  string

	mu    sync.Mutex
	calls []runnerCall
}

func (f *fakeRunner) record(tool toolchain.Tool, args []string, dir string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, runnerCall{tool: tool, args: args, dir: dir})
}

func (f *fakeRunner) recorded() []runnerCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]runnerCall(nil), f.calls...)
}

func (f *fakeRunner) Look(tool toolchain.Tool) (string, error) {
	if f.missing[tool] {
		return "", &toolchain.ToolNotFoundError{Tool: tool}
	}
	return "/usr/bin/" + string(tool), nil
}

func (f *fakeRunner) Run(_ context.Context, tool toolchain.Tool, args []string, dir string) error {
	f.record(tool, args, dir)
	if f.missing[tool] {
		return &toolchain.ToolNotFoundError{Tool: tool}
	}
	return f.errs[tool]
}

func (f *fakeRunner) Output(_ context.Context, tool toolchain.Tool, args []string, dir string) ([]byte, error) {
	f.record(tool, args, dir)
	if f.missing[tool] {
		return nil, &toolchain.ToolNotFoundError{Tool: tool}
	}
	if len(args) > 0 && args[0] == "-m" {
		return []byte(f.pipJSON), nil
	}
	return []byte(f.versions[tool]), nil
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

// syncBuffer is a bytes.Buffer safe for concurrent use, for watch tests
// where the report is written from the watcher goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// stubTools writes executable shell scripts for the named tools into a fresh
// directory and points PATH at it. The script body decides pass or fail.
func stubTools(t *testing.T, scripts map[toolchain.Tool]string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tools need sh")
	}

	binDir := t.TempDir()
	for tool, body := range scripts {
		path := filepath.Join(binDir, string(tool))
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	}
	t.Setenv("PATH", binDir)
	return binDir
}

// passingTools stubs all four tools to succeed quietly.
func passingTools(t *testing.T) {
	t.Helper()
	stubTools(t, map[toolchain.Tool]string{
		toolchain.ToolPython: `echo "Python 3.10.4"`,
		toolchain.ToolIsort:  "exit 0",
		toolchain.ToolFlake8: "exit 0",
		toolchain.ToolBlack:  "exit 0",
	})
}
