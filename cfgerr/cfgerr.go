// Package cfgerr holds the error kinds returned by cfglang's packages.
//
// Errors are created with New, wrapping one of the sentinel base errors
// below. Calling errors.Is() against one of the sentinels returns true for
// any error produced by New with that sentinel as its base, so callers can
// switch on error kind without type assertions.
package cfgerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRule is the base error for a rule constructed with an empty
	// right-hand side.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrInvalidGrammarText is the base error for a textual rule
	// ("LHS -> ...") that fails to parse.
	ErrInvalidGrammarText = errors.New("invalid grammar text")

	// ErrDuplicateSymbolName is the base error for two distinct symbol
	// identities sharing the same human-readable name.
	ErrDuplicateSymbolName = errors.New("duplicate symbol name")

	// ErrNoParse is the base error for a sentence the recognizer's chart
	// does not span, or that the extractor cannot derive a tree for.
	ErrNoParse = errors.New("no parse")

	// ErrEvaluateInput is the base error for calling Rule.Evaluate with a
	// value that isn't a positional sequence.
	ErrEvaluateInput = errors.New("evaluate: input is not a positional sequence")

	// ErrGrammarTooExplosive is the base error for a chart state that grew
	// past a caller-configured item limit.
	ErrGrammarTooExplosive = errors.New("grammar too explosive")
)

// Error is a typed error that carries a message plus one base "cause" error.
// Error is compatible with errors.Is: calling errors.Is(err, ErrNoParse) on
// an Error built with New(ErrNoParse, ...) returns true.
type Error struct {
	msg   string
	cause error
}

// New returns an Error wrapping cause, with msg as its detail message.
func New(cause error, msg string) *Error {
	return &Error{msg: msg, cause: cause}
}

// Newf is like New but builds msg from a format string and arguments.
func Newf(cause error, format string, a ...interface{}) *Error {
	return New(cause, fmt.Sprintf(format, a...))
}

// Error returns the detail message, followed by the cause's message if one
// is set.
func (e *Error) Error() string {
	if e.msg == "" {
		if e.cause != nil {
			return e.cause.Error()
		}
		return ""
	}
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap returns the error's cause, for use with errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}
