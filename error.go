package clargs

import "slices"

// NewError creates a new error with the given error code and error.
func NewError(code ErrorCode, err error) error {
	return &Error{code: code, err: err}
}

// ErrorCode represents an error code for a specific error type. ErrorCode implements error so
// codes can be matched with [errors.Is]:
//
//	if errors.Is(err, clargs.ErrMissingValue) {
//	    // ...
//	}
type ErrorCode int

const (
	// ErrShowHelp can be returned from a handler or an exec function to request help output. See
	// [ParseAndRun].
	ErrShowHelp ErrorCode = iota + 1
	// ErrConfiguration is returned when an argument or handler is registered incorrectly, for
	// example with neither a short nor a long key.
	ErrConfiguration
	// ErrDuplicateKey is returned when a short or long key is registered twice.
	ErrDuplicateKey
	// ErrDuplicateHandler is returned when a second non-key or subcommand handler is registered.
	ErrDuplicateHandler
	// ErrUnknownArgument is returned when a key on the command line was never registered.
	ErrUnknownArgument
	// ErrMissingValue is returned when a value argument is given without a value.
	ErrMissingValue
	// ErrUnexpectedValue is returned when a boolean long key is given a value with "=".
	ErrUnexpectedValue
	// ErrUnknownCommand is returned by [Commands.Handle] for a name it does not know.
	ErrUnknownCommand

	// ErrParse matches every error caused by the command line itself rather than by the program:
	// unknown arguments and commands, and missing or unexpected values.
	ErrParse ErrorCode = 100
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func (c ErrorCode) Error() string {
	return convertErrorCode(c)
}

func (c ErrorCode) isParse() bool {
	switch c {
	case ErrUnknownArgument, ErrMissingValue, ErrUnexpectedValue, ErrUnknownCommand:
		return true
	}
	return false
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrShowHelp:
		return "show help"
	case ErrConfiguration:
		return "configuration error"
	case ErrDuplicateKey:
		return "duplicate key"
	case ErrDuplicateHandler:
		return "duplicate handler"
	case ErrUnknownArgument:
		return "unknown argument"
	case ErrMissingValue:
		return "missing value"
	case ErrUnexpectedValue:
		return "unexpected value"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrParse:
		return "parse error"
	default:
		return "unknown error"
	}
}

// Error represents an error with an error code and an underlying error.
type Error struct {
	code        ErrorCode
	err         error
	suggestions []string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return convertErrorCode(e.code) + ": <nil>"
	}
	return e.err.Error()
}

// Code returns the error code.
func (e *Error) Code() ErrorCode {
	return e.code
}

// Suggestions returns registered names similar to the unknown argument or command that caused the
// error, best match first. It is empty for all other errors.
func (e *Error) Suggestions() []string {
	return slices.Clone(e.suggestions)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Is reports whether target is e's code, or [ErrParse] when e was caused by the command line.
func (e *Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	if !ok {
		return false
	}
	if code == ErrParse {
		return e.code.isParse()
	}
	return code == e.code
}
