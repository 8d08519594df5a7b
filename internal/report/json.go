// Package report renders quality-gate reports for humans and machines.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/aflah02/pyqa/internal/lint"
)

// JSONReporter implements lint.Reporter for JSON output.
type JSONReporter struct{}

type jsonResult struct {
	Check       string   `json:"check"`
	Passed      bool     `json:"passed"`
	Duration    string   `json:"duration"`
	Detail      string   `json:"detail,omitempty"`
	Files       []string `json:"files,omitempty"`
	Remediation string   `json:"remediation,omitempty"`
}

type jsonOutput struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  string `json:"duration"`
	Passed    bool   `json:"passed"`
	Stats     struct {
		TotalPassed int `json:"totalPassed"`
		TotalFailed int `json:"totalFailed"`
	} `json:"stats"`
	Results []jsonResult `json:"results"`
}

func (jr *JSONReporter) Write(w io.Writer, r *lint.Report) error {
	out := jsonOutput{
		StartTime: r.StartTime.Format(time.RFC3339),
		EndTime:   r.EndTime.Format(time.RFC3339),
		Duration:  r.Duration().String(),
		Passed:    r.Passed(),
		Results:   make([]jsonResult, 0, len(r.Results)),
	}

	for _, res := range r.Results {
		out.Results = append(out.Results, jsonResult{
			Check:       string(res.Check),
			Passed:      res.Passed,
			Duration:    res.Duration.String(),
			Detail:      res.Detail,
			Files:       res.Files,
			Remediation: res.Remediation,
		})
		if res.Passed {
			out.Stats.TotalPassed++
		} else {
			out.Stats.TotalFailed++
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
