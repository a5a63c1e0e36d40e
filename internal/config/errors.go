package config

import "fmt"

// LineKind identifies which rule a secrets line broke.
type LineKind int

const (
	// KindMalformedLine marks a non-empty line with no '=' delimiter.
	KindMalformedLine LineKind = iota
	// KindEmptyValue marks a value that is empty after trimming.
	KindEmptyValue
	// KindUnexpectedKey marks a key other than DB_URL or API_KEY.
	KindUnexpectedKey
)

// PathError reports a secrets file that could not be opened.
type PathError struct {
	Path string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("'%s' path not found", e.Path)
}

// LineError reports a faulty line, pinpointed by source name and
// 1-based line number.
type LineError struct {
	Kind   LineKind
	Source string
	Line   int
	Key    string // set for KindUnexpectedKey
}

func (e *LineError) Error() string {
	switch e.Kind {
	case KindEmptyValue:
		return fmt.Sprintf("value is empty at %s:%d", e.Source, e.Line)
	case KindUnexpectedKey:
		return fmt.Sprintf("unexpected key '%s' at %s:%d", e.Key, e.Source, e.Line)
	default:
		return fmt.Sprintf("invalid line format at %s:%d", e.Source, e.Line)
	}
}

// MissingKeyError reports a required key that never appeared in the stream.
type MissingKeyError struct {
	Key    string
	Source string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s value not found in %s", e.Key, e.Source)
}
