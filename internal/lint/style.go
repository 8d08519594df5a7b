package lint

import (
	"context"
	"fmt"

	"github.com/aflah02/pyqa/internal/toolchain"
)

// styleCheck lints code style by running flake8.
type styleCheck struct {
	project *Project
	targets *TargetSet
	runner  toolchain.Runner
}

func newStyleCheck(p *Project, ts *TargetSet, runner toolchain.Runner) *styleCheck {
	return &styleCheck{project: p, targets: ts, runner: runner}
}

func (c *styleCheck) Name() CheckName { return CheckStyle }

func (c *styleCheck) Remediation() string { return StyleRemediation }

func (c *styleCheck) args() []string {
	cfg := c.project.Config()
	args := []string{
		"--config", cfg.SettingsFile,
		fmt.Sprintf("--max-line-length=%d", cfg.Checks.Style.MaxLineLength),
	}
	return append(args, c.targets.Paths()...)
}

func (c *styleCheck) Run(ctx context.Context, result *Result) error {
	err := c.runner.Run(ctx, toolchain.ToolFlake8, c.args(), c.project.RootDirectory())
	if err != nil {
		if code, ok := toolchain.ExitCode(err); ok {
			result.Fail(fmt.Sprintf("flake8 exited with status %d", code))
			return nil
		}
		return err
	}
	result.Pass()
	return nil
}
