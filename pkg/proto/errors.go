package proto

import "fmt"

// ParseError is the sealed interface satisfied by every message parse
// failure. The set is closed so consumers can match exhaustively.
type ParseError interface {
	error

	// parseError seals the interface to this package.
	parseError()
}

var (
	_ ParseError = (*EmptyMessageError)(nil)
	_ ParseError = (*MissingCommandError)(nil)
)

// EmptyMessageError reports that the input contained no message at all.
type EmptyMessageError struct{}

func (e *EmptyMessageError) Error() string { return "empty message" }
func (e *EmptyMessageError) parseError() {}

// MissingCommandError reports that the input carried tags or a prefix but
// no command.
type MissingCommandError struct{}

func (e *MissingCommandError) Error() string { return "message has no command" }
func (e *MissingCommandError) parseError() {}

// InvalidMessageError is the protocol layer's parse-failure case: a raw
// line that failed to parse, carrying the unparsed input verbatim and the
// detailed parse cause. The protocol layer's other failure case — an I/O
// failure on the underlying stream — passes through as the native error.
//
// Both fields survive conversion into the top-level taxonomy unchanged.
type InvalidMessageError struct {
	// Raw is the string that failed to parse, never sanitized.
	Raw string

	// Cause is the detailed parse failure.
	Cause ParseError
}

func (e *InvalidMessageError) Error() string {
	return fmt.Sprintf("invalid message: %s", e.Raw)
}

// Unwrap returns the detailed parse failure.
func (e *InvalidMessageError) Unwrap() error { return e.Cause }
