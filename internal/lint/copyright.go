package lint

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// copyrightCheck scans every target .py file for the configured marker
// substring. This is the one check with no external tool behind it.
type copyrightCheck struct {
	project *Project
	targets *TargetSet

	// aggregate collects every offending file instead of stopping at the
	// first one.
	aggregate bool
}

func newCopyrightCheck(p *Project, ts *TargetSet, aggregate bool) *copyrightCheck {
	return &copyrightCheck{project: p, targets: ts, aggregate: aggregate}
}

func (c *copyrightCheck) Name() CheckName { return CheckCopyright }

func (c *copyrightCheck) Remediation() string { return FormatRemediation }

func (c *copyrightCheck) Run(ctx context.Context, result *Result) error {
	files, err := c.targets.PythonFiles(ctx)
	if err != nil {
		return err
	}

	marker := []byte(c.project.Config().Checks.Copyright.Marker)
	var missing []string

	for _, file := range files {
		if ce := ctx.Err(); ce != nil {
			return ce
		}

		data, rErr := os.ReadFile(filepath.Join(c.targets.Root(), file))
		if rErr != nil {
			return rErr
		}
		if bytes.Contains(data, marker) {
			continue
		}

		missing = append(missing, file)
		if !c.aggregate {
			break
		}
	}

	if len(missing) > 0 {
		result.Fail(fmt.Sprintf("missing the %q marker", string(marker)))
		result.Files = missing
		return nil
	}
	result.Pass()
	return nil
}
