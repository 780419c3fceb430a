package sexpedit

import "fmt"

// ParseErrorKind enumerates the exhaustive set of fatal parse
// failures. Each carries the byte offset it was detected at.
type ParseErrorKind int

const (
	UnterminatedString ParseErrorKind = iota + 1
	UnmatchedOpen
	UnmatchedClose
	InvalidUtf8
	EmptyInput
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "UnterminatedString"
	case UnmatchedOpen:
		return "UnmatchedOpen"
	case UnmatchedClose:
		return "UnmatchedClose"
	case InvalidUtf8:
		return "InvalidUtf8"
	case EmptyInput:
		return "EmptyInput"
	default:
		return "ParseErrorKind(?)"
	}
}

// ParseError is fatal: no partial tree is ever returned alongside it.
type ParseError struct {
	Kind   ParseErrorKind
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sexpedit: parse error at offset %d: %s", e.Offset, e.Kind)
}

// NotFoundError reports a missing query target: a symbol, property,
// label, or title-block field. Read operations return it as
// structured data (a bool/ok return); write operations that require
// an existing target return it as an error.
type NotFoundError struct {
	What string // e.g. "symbol", "property", "title_block"
	Key  string // the reference/name/text that was looked up
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("sexpedit: %s not found: %q", e.What, e.Key)
}

// OverlappingEditError is raised when a queued edit's span intersects
// an already-queued edit. The offending edit is never enqueued; the
// document and its existing queue remain usable.
type OverlappingEditError struct {
	New, Existing Span
}

func (e *OverlappingEditError) Error() string {
	return fmt.Sprintf("sexpedit: edit at [%d,%d) overlaps pending edit at [%d,%d)",
		e.New.Start, e.New.End, e.Existing.Start, e.Existing.End)
}

// InvalidEditError is raised when an edit's target has the wrong shape
// for the operation (nil, or not an atom/list where one is required),
// or when a domain-level edit request is malformed, such as a title
// block comment field name without a numeric index. Edit spans are
// not otherwise validated against list interiors.
type InvalidEditError struct {
	Reason string
}

func (e *InvalidEditError) Error() string {
	return "sexpedit: invalid edit: " + e.Reason
}

// IoError wraps a filesystem failure encountered during Load or
// Commit. On a Commit failure after the temp file was written, the
// temp file has already been removed and the target file is
// untouched by the time this error is returned.
type IoError struct {
	Op   string
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("sexpedit: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }
