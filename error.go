package argparse

import (
	"errors"
	"fmt"
)

// NewError creates a new error with the given error code and error.
func NewError(code ErrorCode, err error) error {
	return &Error{code: code, err: err}
}

// ErrorCode represents an error code for a specific kind of usage error.
type ErrorCode int

const (
	// ErrShowHelp is returned when the tokens ask for the help text.
	ErrShowHelp ErrorCode = iota + 1
	// ErrDuplicateFlag is returned when a flag appears more than once.
	ErrDuplicateFlag
	// ErrDuplicateArgument is returned when an argument appears more than once.
	ErrDuplicateArgument
	// ErrMissingOption is returned when fewer tokens remain than a flag expects option values.
	ErrMissingOption
	// ErrUnknownToken is returned when a token is neither a registered flag nor a registered
	// argument.
	ErrUnknownToken
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrShowHelp:
		return "show help"
	case ErrDuplicateFlag:
		return "duplicate flag"
	case ErrDuplicateArgument:
		return "duplicate argument"
	case ErrMissingOption:
		return "missing option"
	case ErrUnknownToken:
		return "unknown token"
	default:
		return "unknown error"
	}
}

// Error represents a parse failure with an error code and an underlying error. Every parse failure
// returned by [Parser.Parse] is an *Error.
type Error struct {
	code ErrorCode
	err  error

	// Token is the offending token.
	Token string
	// Position is the index of the offending token in the slice given to Parse. The invocation path
	// is position 0.
	Position int
	// Suggestions holds registered names similar to an unknown token, most similar first.
	Suggestions []string
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

// Code returns the kind of failure.
func (e *Error) Code() ErrorCode {
	if e == nil {
		return 0
	}
	return e.code
}

func (e *Error) Unwrap() error {
	return e.err
}

// CodeOf returns the [ErrorCode] of the first *Error in err's chain, or 0 if there is none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return 0
}

func newParseError(code ErrorCode, token string, pos int, format string, args ...any) *Error {
	return &Error{
		code:     code,
		err:      fmt.Errorf(format, args...),
		Token:    token,
		Position: pos,
	}
}
