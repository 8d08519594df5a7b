package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aflah02/pyqa/internal/config"
	"github.com/aflah02/pyqa/internal/lint"
	"github.com/aflah02/pyqa/internal/report"
	"github.com/aflah02/pyqa/internal/toolchain"
)

// Gate defines the business logic for the code quality gate.
type Gate interface {
	RunChecks(ctx context.Context, only lint.CheckName, verbose bool, format string,
		useColour bool, continueOnError bool) error
	WatchChecks(ctx context.Context, only lint.CheckName, verbose bool, format string,
		useColour bool, continueOnError bool, readyChan chan<- struct{}) error
	Format(ctx context.Context) error
	Doctor(ctx context.Context) error
	Project() *lint.Project
}

// Ensure the interface is satisfied.
var _ Gate = (*LazyGate)(nil)

// LazyGate acts as a placeholder for a real Gate implementation, allowing
// for deferred initialization of dependencies.
type LazyGate struct {
	inner Gate
}

func (l *LazyGate) SetInner(g Gate) {
	l.inner = g
}

// HasInner returns true if the inner gate has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyGate) HasInner() bool {
	return l.inner != nil
}

func (l *LazyGate) check() Gate {
	if l.inner == nil {
		panic("LazyGate accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyGate) RunChecks(ctx context.Context, only lint.CheckName, verbose bool,
	format string, useColour bool, continueOnError bool,
) error {
	return l.check().RunChecks(ctx, only, verbose, format, useColour, continueOnError)
}

func (l *LazyGate) WatchChecks(ctx context.Context, only lint.CheckName, verbose bool,
	format string, useColour bool, continueOnError bool, readyChan chan<- struct{},
) error {
	return l.check().WatchChecks(ctx, only, verbose, format, useColour, continueOnError, readyChan)
}

func (l *LazyGate) Format(ctx context.Context) error {
	return l.check().Format(ctx)
}

func (l *LazyGate) Doctor(ctx context.Context) error {
	return l.check().Doctor(ctx)
}

func (l *LazyGate) Project() *lint.Project {
	return l.check().Project()
}

// UnhealthyEnvironmentError reports that doctor found problems which would
// stop a check run.
type UnhealthyEnvironmentError struct {
	Problems int
}

func (e *UnhealthyEnvironmentError) Error() string {
	if e.Problems == 1 {
		return "1 problem found"
	}
	return fmt.Sprintf("%d problems found", e.Problems)
}

// Ensure the interface is satisfied.
var _ Gate = (*CLIGate)(nil)

// CLIGate is the concrete implementation of the Gate interface.
type CLIGate struct {
	logger         *slog.Logger
	project        *lint.Project
	pipeline       *lint.Pipeline
	runner         toolchain.Runner
	reporterWriter io.Writer
}

func NewCLIGate(
	l *slog.Logger,
	p *lint.Project,
	pl *lint.Pipeline,
	runner toolchain.Runner,
	reporterWriter io.Writer,
) *CLIGate {
	return &CLIGate{
		logger:         l,
		project:        p,
		pipeline:       pl,
		runner:         runner,
		reporterWriter: reporterWriter,
	}
}

func (g *CLIGate) Project() *lint.Project {
	return g.project
}

// RunChecks runs the check pipeline once and writes the report. The returned
// error is a lint.ChecksFailedError when the code is non-compliant, which
// callers should surface as a non-zero exit.
func (g *CLIGate) RunChecks(ctx context.Context, only lint.CheckName, verbose bool,
	format string, useColour bool, continueOnError bool,
) error {
	g.logger.Debug("running checks", "only", only, "verbose", verbose, "format", format,
		"useColour", useColour, "continueOnError", continueOnError)

	g.pipeline.SetStopOnFirstError(!continueOnError)
	if only != "" {
		g.pipeline.SetSelection(only)
	} else {
		g.pipeline.SetSelection()
	}

	rep, err := g.pipeline.Run(ctx)

	var failed *lint.ChecksFailedError
	if err != nil && !errors.As(err, &failed) {
		return err
	}

	if wErr := g.writeReport(rep, verbose, format, useColour); wErr != nil {
		return wErr
	}

	return err
}

// WatchChecks watches the project for changes and reruns the checks on each
// one. If you want to know when the watcher is ready to start listening to
// changes, pass a non-nil readyChan to be notified.
func (g *CLIGate) WatchChecks(ctx context.Context, only lint.CheckName, verbose bool,
	format string, useColour bool, continueOnError bool, readyChan chan<- struct{},
) error {
	g.logger.Debug("watching checks", "only", only, "verbose", verbose, "format", format,
		"useColour", useColour, "continueOnError", continueOnError)

	watcher := lint.NewWatcher(g.project, g.logger)

	callback := func(event lint.WatchEvent) {
		g.logger.Info("File changed:", "path", event.Path)

		if filepath.Base(event.Path) == config.ConfigFile {
			if err := g.project.Reset(); err != nil {
				g.logger.Error("Configuration reload failed", "error", err)
				return
			}
		}

		// Create a new pipeline for each event to ensure fresh reporting
		pipeline := lint.NewPipeline(g.project, g.runner, g.logger)
		pipeline.SetStopOnFirstError(!continueOnError)
		if only != "" {
			pipeline.SetSelection(only)
		}

		rep, err := pipeline.Run(ctx)

		var failed *lint.ChecksFailedError
		if err != nil && !errors.As(err, &failed) {
			g.logger.Error("Check run failed", "error", err)
			return
		}

		if wErr := g.writeReport(rep, verbose, format, useColour); wErr != nil {
			g.logger.Error("Failed to write report", "error", wErr)
		}
	}

	// Forward watcher Ready signal if caller wants notification
	if readyChan != nil {
		go func() {
			<-watcher.Ready
			readyChan <- struct{}{}
		}()
	}

	return watcher.Watch(ctx, callback)
}

// Format rewrites the project in place with isort and black.
func (g *CLIGate) Format(ctx context.Context) error {
	g.logger.Debug("formatting project", "root", g.project.RootDirectory())

	return lint.NewFormatter(g.project, g.runner, g.logger).Format(ctx)
}

// doctorTools are probed in this order; python first since the rest are
// useless without it.
var doctorTools = []toolchain.Tool{
	toolchain.ToolPython,
	toolchain.ToolIsort,
	toolchain.ToolFlake8,
	toolchain.ToolBlack,
}

// Doctor probes the tool environment and the project setup, writing one line
// per finding. A failed probe is a finding, not an error; the returned
// UnhealthyEnvironmentError only says how many findings need fixing.
func (g *CLIGate) Doctor(ctx context.Context) error {
	g.logger.Debug("diagnosing environment", "root", g.project.RootDirectory())

	versions := make([]string, len(doctorTools))
	probeErrs := make([]error, len(doctorTools))
	var pipVersions map[string]string

	eg, egCtx := errgroup.WithContext(ctx)
	for i, tool := range doctorTools {
		eg.Go(func() error {
			versions[i], probeErrs[i] = toolchain.Version(egCtx, g.runner, tool)
			return nil
		})
	}
	eg.Go(func() error {
		pkgs, err := toolchain.PipPackages(egCtx, g.runner)
		if err != nil {
			g.logger.Debug("pip package listing unavailable", "error", err)
			return nil
		}
		pipVersions = make(map[string]string, len(pkgs))
		for _, pkg := range pkgs {
			pipVersions[strings.ToLower(pkg.Name)] = pkg.Version
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	var problems int
	for i, tool := range doctorTools {
		if probeErrs[i] != nil {
			problems++
			fmt.Fprintf(g.reporterWriter, "✗ %-8s %v\n", tool, probeErrs[i])
			continue
		}
		line := versions[i]
		if v, ok := pipVersions[string(tool)]; ok && tool != toolchain.ToolPython {
			line = fmt.Sprintf("%s (pip %s)", line, v)
		}
		fmt.Fprintf(g.reporterWriter, "✓ %-8s %s\n", tool, line)
	}

	cfg := g.project.Config()
	if err := g.project.CheckSettingsFile(); err != nil {
		problems++
		fmt.Fprintf(g.reporterWriter, "✗ %-8s %v\n", "settings", err)
	} else {
		fmt.Fprintf(g.reporterWriter, "✓ %-8s %s\n", "settings", cfg.SettingsFile)
	}

	targets, err := g.project.ResolveTargets()
	if err != nil {
		problems++
		fmt.Fprintf(g.reporterWriter, "✗ %-8s %v\n", "targets", err)
	} else {
		files, fErr := targets.PythonFiles(ctx)
		if fErr != nil {
			return fErr
		}
		fmt.Fprintf(g.reporterWriter, "✓ %-8s %d targets, %d Python files\n",
			"targets", len(targets.Targets()), len(files))
	}

	if problems > 0 {
		return &UnhealthyEnvironmentError{Problems: problems}
	}
	return nil
}

// writeReport renders the report in the requested format.
func (g *CLIGate) writeReport(rep *lint.Report, verbose bool, format string, useColour bool) error {
	var reporter lint.Reporter
	switch format {
	case "json":
		reporter = &report.JSONReporter{}
	default:
		reporter = &report.TextReporter{Verbose: verbose, UseColour: useColour}
	}

	return reporter.Write(g.reporterWriter, rep)
}
