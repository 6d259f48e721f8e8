package memberimport

import (
	"fmt"
	"io"
)

// WriteReport prints the human-readable batch summary.
func WriteReport(w io.Writer, summary *Summary) {
	fmt.Fprintf(w, "Migration complete: %d total, %d successful, %d failed, %d skipped\n",
		summary.Total, summary.Successful, summary.Failed, summary.Skipped)

	for _, result := range summary.Results {
		switch result.Outcome {
		case OutcomeFailed:
			fmt.Fprintf(w, "  FAILED  row %d %s (%s): %s\n", result.RowNumber, result.Email, result.Name, result.Reason)
		case OutcomeSkipped:
			fmt.Fprintf(w, "  SKIPPED row %d %s: %s\n", result.RowNumber, result.Email, result.Reason)
		}
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  WARNING row %d %s: %s\n", result.RowNumber, result.Email, warning)
		}
	}
}
