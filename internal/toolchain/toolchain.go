// Package toolchain is the subprocess layer for the external Python tools the
// quality gate drives. The tools are black boxes: pyqa locates them on PATH,
// invokes them with the right flags and interprets their exit codes, but never
// reimplements their logic.
package toolchain

import (
	"context"
	"errors"
	"os/exec"
)

// Tool identifies an external executable on PATH.
type Tool string

const (
	// ToolIsort sorts Python imports; the imports check runs it with -c.
	ToolIsort Tool = "isort"
	// ToolFlake8 reports style violations.
	ToolFlake8 Tool = "flake8"
	// ToolBlack formats Python code; the format check runs it with --check.
	ToolBlack Tool = "black"
	// ToolPython is the interpreter, used for pip introspection.
	ToolPython Tool = "python"
)

func (t Tool) String() string { return string(t) }

// Runner defines the interface for invoking external tools.
type Runner interface {
	// Look resolves the tool to an absolute path on PATH.
	Look(tool Tool) (string, error)

	// Run invokes the tool with the given arguments in dir, streaming its
	// stdout and stderr through unmodified so the tool's own diagnostics
	// reach the user verbatim. A non-zero exit is returned as an error
	// carrying the exit code (see ExitCode).
	Run(ctx context.Context, tool Tool, args []string, dir string) error

	// Output invokes the tool and returns its captured stdout.
	Output(ctx context.Context, tool Tool, args []string, dir string) ([]byte, error)
}

// ExitCode extracts the subprocess exit code from an error returned by Run or
// Output. ok is false when the error carries no exit code, meaning the tool
// could not run at all rather than running and reporting a problem.
func ExitCode(err error) (code int, ok bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
