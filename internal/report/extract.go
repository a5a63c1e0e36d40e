package report

import (
	"fmt"
	"strings"

	"notidue/internal/jsontree"
)

// ExtractLine pulls the renderable fields out of one raw record.
//
// Title and the Done checkbox are required and checked in that order; the
// first missing one fails the record with an error tagged by index and the
// remaining fields are not evaluated. Both due dates are optional, and a
// date node of the wrong type counts as absent.
func ExtractLine(rec jsontree.Value, index int) (Line, error) {
	properties := rec.Get("properties")

	title, ok := properties.Get("Name").Get("title").Index(0).Get("plain_text").Str()
	if !ok {
		return Line{}, fmt.Errorf("todo %d: missing or invalid title", index)
	}

	done, ok := properties.Get("Done").Get("checkbox").Bool()
	if !ok {
		return Line{}, fmt.Errorf("todo %d: missing or invalid 'Done' checkbox", index)
	}

	line := Line{Index: index, Done: done, Title: title}

	date := properties.Get("Due").Get("date")
	if start, ok := date.Get("start").Str(); ok {
		line.Start = &start
	}
	if end, ok := date.Get("end").Str(); ok {
		line.End = &end
	}

	return line, nil
}

// FormatDateTime renders an ISO-8601 date-time as "<date> <HH:MM:SS>",
// truncating fractional seconds and the timezone suffix. Values without a
// 'T' separator (date-only due dates) pass through unchanged. Total: it
// never fails, a short time component is simply emitted whole.
func FormatDateTime(raw string) string {
	date, clock, found := strings.Cut(raw, "T")
	if !found {
		return raw
	}
	if len(clock) > 8 {
		clock = clock[:8]
	}
	return date + " " + clock
}

// String renders the line in its fixed report shape. The title field is
// padded to a minimum width of 35; wider titles are not truncated. The
// " | " separator appears even when the record has no dates at all.
func (l Line) String() string {
	marker := " "
	if l.Done {
		marker = "x"
	}

	out := fmt.Sprintf("[%s] %d: %-35s | ", marker, l.Index, l.Title)
	if l.Start != nil {
		out += FormatDateTime(*l.Start)
	}
	if l.End != nil {
		out += " ~ " + FormatDateTime(*l.End)
	}
	return out
}
