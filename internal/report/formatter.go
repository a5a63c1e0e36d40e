package report

import (
	"errors"
	"fmt"
	"io"

	"notidue/internal/jsontree"
)

// ErrorBanner precedes the per-record diagnostics on the error channel.
const ErrorBanner = "Errors encountered while processing todos:"

// Outcome is the result of one report pass: the extracted lines in input
// order plus the per-record error messages for records that were skipped.
// Every input record lands in exactly one of the two.
type Outcome struct {
	Lines  []Line
	Errors []string
}

// RecordsFromResponse pulls the top-level results array out of a query
// response document. A response without it is broken as a whole, not a
// per-record problem.
func RecordsFromResponse(doc jsontree.Value) ([]jsontree.Value, error) {
	records, ok := doc.Get("results").Array()
	if !ok {
		return nil, errors.New("expected 'results' array field which is not present in the response")
	}
	return records, nil
}

// BuildReport extracts every record in order. A record that fails
// extraction contributes its error message and is skipped; it never stops
// the pass. Records are not re-sorted, the backend already orders them by
// ascending due date.
func BuildReport(records []jsontree.Value) Outcome {
	var out Outcome

	for i, rec := range records {
		line, err := ExtractLine(rec, i)
		if err != nil {
			out.Errors = append(out.Errors, err.Error())
			continue
		}
		out.Lines = append(out.Lines, line)
	}

	return out
}

// WriteTo prints the report lines to w and, if any record was skipped,
// the banner plus one message per error to errW after all report lines.
func (o Outcome) WriteTo(w, errW io.Writer) {
	for _, line := range o.Lines {
		fmt.Fprintln(w, line)
	}

	if len(o.Errors) == 0 {
		return
	}
	fmt.Fprintln(errW, ErrorBanner)
	for _, msg := range o.Errors {
		fmt.Fprintln(errW, msg)
	}
}

// Statistics summarizes an outcome for logging and the dashboard export.
func Statistics(o Outcome) map[string]any {
	done := 0
	dated := 0
	for _, line := range o.Lines {
		if line.Done {
			done++
		}
		if line.Start != nil || line.End != nil {
			dated++
		}
	}

	return map[string]any{
		"total":   len(o.Lines) + len(o.Errors),
		"done":    done,
		"open":    len(o.Lines) - done,
		"dated":   dated,
		"skipped": len(o.Errors),
	}
}
