package handler

import "fmt"

// Kind classifies the outcome of a single Tick. The zero Kind is not a valid
// outcome.
type Kind int

const (
	// CacheHit means the clipboard still holds the text last seen or written.
	CacheHit Kind = iota + 1
	// NoContentChange means new text arrived but needed no rewriting.
	NoContentChange
	// Updated means the clipboard was rewritten with flattened text.
	Updated
	// Error means the clipboard could not be read or written.
	Error
)

func (k Kind) String() string {
	switch k {
	case CacheHit:
		return "cache_hit"
	case NoContentChange:
		return "no_content_change"
	case Updated:
		return "updated"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result describes what a Tick did.
type Result struct {
	Kind Kind

	// Text is the flattened text written back (Updated only).
	Text string

	// Breaks is the number of line breaks replaced (Updated only).
	Breaks int

	// Err is a *ReadError or *WriteError (Error only).
	Err error
}

// ReadError reports a failed clipboard read. The cache is untouched.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return "clipboard read: " + e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failed clipboard write. The raw text that was read
// stays cached, so the same content is not retried until it changes.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "clipboard write: " + e.Err.Error() }
func (e *WriteError) Unwrap() error { return e.Err }
