// Package ferr implements the module's single error type, FormattingError:
// raised by the scanner on malformed tokens, by the parser on structural
// violations, and by the emitter only on internal invariant breaks. Errors
// are never recovered locally; they propagate unchanged to the caller.
package ferr

import (
	"fmt"

	"github.com/simon-lentz/jsonfmt/position"
)

// Error is the one error type this module ever returns. It always carries a
// stable Code and a human-readable Message; Position is the zero value when
// the error has no single source location (rare — the emitter's internal
// errors sometimes don't, since the violated invariant spans a whole
// subtree rather than one point).
type Error struct {
	code    Code
	message string
	pos     position.Position
	hasPos  bool
	cause   error
}

// New constructs an Error with no position. It panics if code is zero or
// message is empty — those are always programmer errors at the call site.
func New(code Code, message string) *Error {
	if code.IsZero() {
		panic("ferr.New: zero code")
	}
	if message == "" {
		panic("ferr.New: empty message")
	}
	return &Error{code: code, message: message}
}

// At constructs an Error positioned at pos.
func At(code Code, pos position.Position, message string) *Error {
	e := New(code, message)
	e.pos = pos
	e.hasPos = true
	return e
}

// Wrap constructs an Error positioned at pos that carries cause as its
// unwrap target, so callers using errors.Is/errors.As can still see the
// underlying stdlib error (e.g. a strconv.NumError from number reparsing).
func Wrap(code Code, pos position.Position, message string, cause error) *Error {
	e := At(code, pos, message)
	e.cause = cause
	return e
}

// Code returns the error's stable programmatic identifier.
func (e *Error) Code() Code { return e.code }

// Position returns the error's source location and whether one is known.
func (e *Error) Position() (position.Position, bool) { return e.pos, e.hasPos }

// Error implements the error interface.
func (e *Error) Error() string {
	if e.hasPos {
		return fmt.Sprintf("%s at %s: %s", e.code, e.pos, e.message)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }
