package report

import (
	"context"

	"notidue/internal/jsontree"
)

// Line is the renderable projection of one todo record. Start and End are
// nil when the record carries no due date on that side.
type Line struct {
	Index int     `json:"index"`
	Done  bool    `json:"done"`
	Title string  `json:"title"`
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// Source fetches one page of raw records from a todo backend.
type Source interface {
	Name() string
	FetchPage(ctx context.Context) (jsontree.Value, error)
}
