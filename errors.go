package expense

import (
	"fmt"
)

// FormatError reports a persisted or imported line that does not have the
// expected shape.
type FormatError struct {
	Line   int    // 1-based line number, 0 when unknown
	Text   string // offending input
	Reason string
	Err    error // underlying parse error, if any
}

func (e *FormatError) Error() string {
	msg := e.Reason
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s in %q", e.Line, msg, e.Text)
	}
	return fmt.Sprintf("%s in %q", msg, e.Text)
}

func (e *FormatError) Unwrap() error { return e.Err }

// DateFormatError reports a user supplied date that is not YYYY-MM-DD.
type DateFormatError struct {
	Value string
	Err   error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q, please use YYYY-MM-DD", e.Value)
}

func (e *DateFormatError) Unwrap() error { return e.Err }

// IOError reports a file that could not be opened, read or written.
type IOError struct {
	Op   string // "open", "read", "write" or "close"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
