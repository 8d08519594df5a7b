package lint

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aflah02/pyqa/internal/toolchain"
)

// formatCheck verifies formatting by running black in check-only mode.
type formatCheck struct {
	project *Project
	targets *TargetSet
	runner  toolchain.Runner
}

func newFormatCheck(p *Project, ts *TargetSet, runner toolchain.Runner) *formatCheck {
	return &formatCheck{project: p, targets: ts, runner: runner}
}

func (c *formatCheck) Name() CheckName { return CheckFormat }

func (c *formatCheck) Remediation() string { return FormatRemediation }

func (c *formatCheck) args() []string {
	cfg := c.project.Config()
	args := []string{"--check", "--line-length", strconv.Itoa(cfg.Checks.Format.LineLength)}
	return append(args, c.targets.Paths()...)
}

func (c *formatCheck) Run(ctx context.Context, result *Result) error {
	err := c.runner.Run(ctx, toolchain.ToolBlack, c.args(), c.project.RootDirectory())
	if err != nil {
		if code, ok := toolchain.ExitCode(err); ok {
			result.Fail(fmt.Sprintf("black exited with status %d", code))
			return nil
		}
		return err
	}
	result.Pass()
	return nil
}
