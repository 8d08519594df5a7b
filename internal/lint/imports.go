package lint

import (
	"context"
	"fmt"

	"github.com/aflah02/pyqa/internal/toolchain"
)

// importsCheck verifies import ordering by running isort in check-only mode.
type importsCheck struct {
	project *Project
	targets *TargetSet
	runner  toolchain.Runner
}

func newImportsCheck(p *Project, ts *TargetSet, runner toolchain.Runner) *importsCheck {
	return &importsCheck{project: p, targets: ts, runner: runner}
}

func (c *importsCheck) Name() CheckName { return CheckImports }

func (c *importsCheck) Remediation() string { return FormatRemediation }

// args builds the isort invocation: the shared settings via --sp, single-line
// imports via --sl when configured, and -c for check-only mode.
func (c *importsCheck) args() []string {
	cfg := c.project.Config()
	args := []string{"--sp", cfg.SettingsFile}
	if cfg.Checks.Imports.ForceSingleLine {
		args = append(args, "--sl")
	}
	args = append(args, "-c")
	return append(args, c.targets.Paths()...)
}

func (c *importsCheck) Run(ctx context.Context, result *Result) error {
	err := c.runner.Run(ctx, toolchain.ToolIsort, c.args(), c.project.RootDirectory())
	if err != nil {
		if code, ok := toolchain.ExitCode(err); ok {
			result.Fail(fmt.Sprintf("isort exited with status %d", code))
			return nil
		}
		return err
	}
	result.Pass()
	return nil
}
