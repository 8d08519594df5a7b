package lint

import (
	"io"
	"time"
)

// Reporter defines the interface for rendering pipeline reports.
type Reporter interface {
	Write(w io.Writer, report *Report) error
}

// Result is the outcome of a single check.
type Result struct {
	Check    CheckName
	Passed   bool
	Duration time.Duration

	// Detail is a one-line summary of what went wrong, empty on success.
	Detail string

	// Files lists the offending files, when the check identifies them
	// (currently only the copyright check does).
	Files []string

	// Remediation is the instruction to show the user, empty on success.
	Remediation string
}

// Pass marks the check as compliant.
func (r *Result) Pass() {
	r.Passed = true
}

// Fail records non-compliance with a one-line detail.
func (r *Result) Fail(detail string) {
	r.Passed = false
	r.Detail = detail
}

// Report represents the results of a pipeline run.
type Report struct {
	StartTime time.Time
	EndTime   time.Time

	// Results holds one entry per executed check, in execution order. Checks
	// skipped by a short-circuit do not appear.
	Results []Result
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{}
}

// Add appends a check outcome to the report.
func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
}

// FailedChecks returns the names of the failed checks in execution order.
func (r *Report) FailedChecks() []CheckName {
	var failed []CheckName
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res.Check)
		}
	}
	return failed
}

// Passed reports whether every executed check was compliant.
func (r *Report) Passed() bool {
	return len(r.FailedChecks()) == 0
}

// Duration is the wall-clock time of the whole run.
func (r *Report) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
