package toolchain

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// CLIRunner is the concrete implementation of Runner using os/exec.
type CLIRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewCLIRunner creates a new CLIRunner. stdout and stderr receive the
// subprocess streams when Run is used.
func NewCLIRunner(stdout, stderr io.Writer) *CLIRunner {
	return &CLIRunner{stdout: stdout, stderr: stderr}
}

// Look resolves the tool to an absolute path on PATH.
func (r *CLIRunner) Look(tool Tool) (string, error) {
	path, err := exec.LookPath(string(tool))
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", &ToolNotFoundError{Tool: tool}
		}
		return "", err
	}
	return path, nil
}

// Run invokes the tool with its stdout and stderr streamed through.
func (r *CLIRunner) Run(ctx context.Context, tool Tool, args []string, dir string) error {
	path, err := r.Look(tool)
	if err != nil {
		return err
	}

	//nolint:gosec // the executable comes from LookPath and the arguments are built internally
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err = cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// Output invokes the tool and returns its captured stdout.
func (r *CLIRunner) Output(ctx context.Context, tool Tool, args []string, dir string) ([]byte, error) {
	path, err := r.Look(tool)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // the executable comes from LookPath and the arguments are built internally
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir

	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return out, nil
}
