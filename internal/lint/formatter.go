package lint

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/aflah02/pyqa/internal/toolchain"
)

// Formatter rewrites the project sources in place so that the imports and
// format checks pass: isort first, then black, over the same target path set
// the checks use.
type Formatter struct {
	project *Project
	runner  toolchain.Runner
	logger  *slog.Logger
}

// NewFormatter creates a new Formatter for the given project.
func NewFormatter(p *Project, runner toolchain.Runner, logger *slog.Logger) *Formatter {
	return &Formatter{
		project: p,
		runner:  runner,
		logger:  logger.With("component", "formatter"),
	}
}

// Format runs isort and black in write mode over the resolved targets.
func (f *Formatter) Format(ctx context.Context) error {
	targets, err := f.project.ResolveTargets()
	if err != nil {
		return err
	}
	for _, pattern := range targets.Dropped() {
		f.logger.Debug("Target pattern matched nothing", "pattern", pattern)
	}

	cfg := f.project.Config()
	root := f.project.RootDirectory()

	isortArgs := []string{"--sp", cfg.SettingsFile}
	if cfg.Checks.Imports.ForceSingleLine {
		isortArgs = append(isortArgs, "--sl")
	}
	isortArgs = append(isortArgs, targets.Paths()...)

	f.logger.Debug("Sorting imports", "args", isortArgs)
	if err := f.runner.Run(ctx, toolchain.ToolIsort, isortArgs, root); err != nil {
		return err
	}

	blackArgs := []string{"--line-length", strconv.Itoa(cfg.Checks.Format.LineLength)}
	blackArgs = append(blackArgs, targets.Paths()...)

	f.logger.Debug("Formatting code", "args", blackArgs)
	return f.runner.Run(ctx, toolchain.ToolBlack, blackArgs, root)
}
