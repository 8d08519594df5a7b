package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/aflah02/pyqa/internal/lint"
)

// TextReporter implements lint.Reporter for plain text output.
type TextReporter struct {
	Verbose   bool
	UseColour bool
}

const (
	colReset     = "\033[0m"
	colRed       = "\033[31m"
	colGreen     = "\033[32m"
	colGrey      = "\033[90m"
	colWhite     = "\033[37m"
	colBoldRed   = "\033[1;31m"
	colBoldGreen = "\033[1;32m"
	colBoldWhite = "\033[1;37m"
)

// cs returns a string which will render with the given colour
// if colourisation is enabled.
func (tr *TextReporter) cs(c, s string) string {
	if !tr.UseColour {
		return s
	}
	return c + s + colReset
}

func (tr *TextReporter) Write(w io.Writer, r *lint.Report) error {
	divider := strings.Repeat("-", 40)

	if tr.Verbose {
		fmt.Fprintf(w, "%s\n", divider)
		fmt.Fprint(w, tr.cs(colBoldWhite, "PYQA CHECK REPORT\n\n"))
		fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Started: "), tr.cs(colWhite, r.StartTime.Format("15:04:05")))
		fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Duration:"), tr.cs(colWhite, r.Duration().String()))
		fmt.Fprintf(w, "%s\n", divider)
	}

	totalPassed := 0
	totalFailed := 0

	for _, res := range r.Results {
		if res.Passed {
			totalPassed++
			if tr.Verbose {
				status := tr.cs(colGreen, "[PASS]")
				fmt.Fprintf(w, "%s %s %s\n", status, tr.cs(colWhite, string(res.Check)),
					tr.cs(colGrey, "("+res.Duration.String()+")"))
			}
			continue
		}

		totalFailed++
		status := tr.cs(colRed, "[FAIL]")
		fmt.Fprintf(w, "%s %s %s\n", status, tr.cs(colRed, string(res.Check)),
			tr.cs(colGrey, "("+res.Duration.String()+")"))
		if res.Detail != "" {
			fmt.Fprintf(w, "  %s %s\n", tr.cs(colRed, "✗"), tr.cs(colGrey, res.Detail))
		}
		for _, file := range res.Files {
			fmt.Fprintf(w, "    %s\n", tr.cs(colGrey, file))
		}
		fmt.Fprintf(w, "  %s\n", tr.cs(colBoldWhite, res.Remediation))
	}

	if tr.Verbose || totalFailed > 0 {
		fmt.Fprintf(w, "%s\n", divider)
		summaryLabel := tr.cs(colBoldWhite, "Check summary: ")
		summaryStats := fmt.Sprintf("%d passed, %d failed", totalPassed, totalFailed)
		statsColor := colBoldGreen
		if totalFailed > 0 {
			statsColor = colBoldRed
		}
		fmt.Fprintf(w, "%s%s\n", summaryLabel, tr.cs(statsColor, summaryStats))
		fmt.Fprintf(w, "%s\n", divider)
	}

	return nil
}
