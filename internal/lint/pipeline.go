package lint

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aflah02/pyqa/internal/toolchain"
)

// ErrStopChecking is a sentinel error used to signal that the remaining
// checks should be skipped and the report shown.
var ErrStopChecking = errors.New("stopping after failed check")

// Pipeline manages a run of the quality-gate checks against a project.
type Pipeline struct {
	project *Project
	runner  toolchain.Runner
	logger  *slog.Logger

	// Run options
	stopOnFirstError bool
	selection        []CheckName
}

// NewPipeline creates a new pipeline for the given project.
func NewPipeline(p *Project, runner toolchain.Runner, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		project:          p,
		runner:           runner,
		logger:           logger.With("component", "pipeline"),
		stopOnFirstError: true,
	}
}

// SetStopOnFirstError controls whether the run stops at the first failed
// check. It defaults to true, matching CI usage where the first failure
// blocks the build. If false, every selected check runs and the report
// collects all failures.
func (pl *Pipeline) SetStopOnFirstError(b bool) {
	pl.stopOnFirstError = b
}

// SetSelection restricts the run to the named checks. The fixed pipeline
// order still applies regardless of the order given here. An empty selection
// means all checks.
func (pl *Pipeline) SetSelection(names ...CheckName) {
	pl.selection = names
}

// Run executes the selected checks in the fixed order and returns the report.
// A ChecksFailedError accompanies the report when any check found
// non-compliant code; any other error means the run itself broke (missing
// tool, unreadable file, cancelled context) and the report is nil.
func (pl *Pipeline) Run(ctx context.Context) (*Report, error) {
	targets, err := pl.project.ResolveTargets()
	if err != nil {
		return nil, err
	}
	for _, pattern := range targets.Dropped() {
		pl.logger.Debug("Target pattern matched nothing", "pattern", pattern)
	}

	report := NewReport()
	report.StartTime = time.Now()
	defer func() { report.EndTime = time.Now() }()

	for _, check := range pl.checks(targets) {
		if err := pl.runCheck(ctx, check, report); err != nil {
			if errors.Is(err, ErrStopChecking) {
				break
			}
			return nil, err
		}
	}

	if failed := report.FailedChecks(); len(failed) > 0 {
		return report, &ChecksFailedError{Failed: failed}
	}
	return report, nil
}

// runCheck executes one check and records its outcome in the report.
// It returns ErrStopChecking when the check failed and the pipeline is
// configured to stop at the first failure.
func (pl *Pipeline) runCheck(ctx context.Context, check Check, report *Report) error {
	if ce := ctx.Err(); ce != nil {
		return ce
	}

	pl.logger.Debug("Running check", "check", check.Name())

	res := Result{Check: check.Name()}
	start := time.Now()
	if err := check.Run(ctx, &res); err != nil {
		return err
	}
	res.Duration = time.Since(start)

	if !res.Passed {
		res.Remediation = check.Remediation()
	}
	report.Add(res)

	if !res.Passed {
		pl.logger.Debug("Check failed", "check", check.Name(), "detail", res.Detail)
		if pl.stopOnFirstError {
			return ErrStopChecking
		}
		return nil
	}

	pl.logger.Debug("Check passed", "check", check.Name(), "duration", res.Duration)
	return nil
}

// checks builds the concrete checks for this run, honouring the selection.
func (pl *Pipeline) checks(targets *TargetSet) []Check {
	all := []Check{
		newImportsCheck(pl.project, targets, pl.runner),
		newStyleCheck(pl.project, targets, pl.runner),
		newFormatCheck(pl.project, targets, pl.runner),
		newCopyrightCheck(pl.project, targets, !pl.stopOnFirstError),
	}
	if len(pl.selection) == 0 {
		return all
	}

	wanted := make(map[CheckName]bool, len(pl.selection))
	for _, name := range pl.selection {
		wanted[name] = true
	}

	var selected []Check
	for _, check := range all {
		if wanted[check.Name()] {
			selected = append(selected, check)
		}
	}
	return selected
}
