// Package serrors provides semantic error kinds for the console. Operations
// tag failures with a kind (validation, not-found, state conflict, storage
// unavailable, ...) and callers branch with errors.Is without inspecting
// message text.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It distinguishes semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is the unexported sentinel implementation behind NewKind.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and usable with errors.Is/As through the Error
// wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Error kinds raised by the console's operations.
var (
	// ErrBadRequest indicates invalid input: an unknown scan or threat type,
	// a malformed ID, or a negative count.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrNotFound indicates the requested scan, threat or user does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrConflict indicates an invalid state transition, such as completing a
	// scan that already completed. The losing side of a completion race
	// receives this kind.
	ErrConflict = NewKind("CONFLICT")
	// ErrUnavailable indicates the storage gateway failed. The operation is
	// aborted and never retried automatically.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden indicates the caller is authenticated but not allowed to
	// perform the operation.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind sentinel, an optional wrapped
// cause and an optional message. errors.Is/As match against both the kind and
// the wrapped cause.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind, wrapping err as the
// cause.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As traversal.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches target against the kind sentinel or the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }
