package lint

import (
	"context"
)

// CheckName identifies one check in the pipeline.
type CheckName string

const (
	// CheckImports verifies import ordering with isort.
	CheckImports CheckName = "imports"

	// CheckStyle lints code style with flake8.
	CheckStyle CheckName = "style"

	// CheckFormat verifies formatting with black.
	CheckFormat CheckName = "format"

	// CheckCopyright verifies every target .py file carries the copyright marker.
	CheckCopyright CheckName = "copyright"
)

// Order is the fixed execution order of the pipeline. Checks always run in
// this sequence regardless of how they were selected.
var Order = []CheckName{CheckImports, CheckStyle, CheckFormat, CheckCopyright}

// NewCheckName creates a CheckName from a user-supplied string.
func NewCheckName(s string) (CheckName, error) {
	switch s {
	case "imports":
		return CheckImports, nil
	case "style":
		return CheckStyle, nil
	case "format":
		return CheckFormat, nil
	case "copyright":
		return CheckCopyright, nil
	default:
		return "", &UnknownCheckError{Name: s}
	}
}

func checkNameStrings() []string {
	names := make([]string, len(Order))
	for i, n := range Order {
		names[i] = string(n)
	}
	return names
}

const (
	// FormatRemediation is the instruction for failures the formatter can fix.
	FormatRemediation = `Please run "pyqa fmt" to format the code.`

	// StyleRemediation is the instruction for style violations, which need a
	// manual fix.
	StyleRemediation = "Please fix the code style issue."
)

// Check is a single step of the quality gate.
type Check interface {
	// Name identifies the check in reports and logs.
	Name() CheckName

	// Remediation is the instruction shown to the user when the check fails.
	Remediation() string

	// Run executes the check and records the outcome in result. An error
	// return means the check could not run at all (missing tool, unreadable
	// file, cancelled context); non-compliant code is not an error, it is
	// recorded via result.Fail.
	Run(ctx context.Context, result *Result) error
}
