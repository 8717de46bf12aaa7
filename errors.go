package yggdrasil

import (
	"errors"
	"fmt"
)

// Failure kinds. Callers branch on these with errors.Is.
var (
	// ErrInvalidParameter flags a constructor called with out-of-range data.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrLookup flags a request for a named preset that does not exist.
	ErrLookup = errors.New("unknown name")
	// ErrDomain flags an input outside the mathematical domain of a function.
	ErrDomain = errors.New("domain error")
	// ErrUnsupportedSequence flags an Euler rotation sequence other than ZYX.
	ErrUnsupportedSequence = errors.New("unsupported rotation sequence")
	// ErrTypeMismatch flags a comparison across incompatible value types.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrNotImplemented flags a reserved operation.
	ErrNotImplemented = errors.New("not implemented")
)

// Error wraps a failure kind with the offending values.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

func invalidf(format string, args ...interface{}) error {
	return &Error{Kind: ErrInvalidParameter, Msg: fmt.Sprintf(format, args...)}
}

func lookupf(format string, args ...interface{}) error {
	return &Error{Kind: ErrLookup, Msg: fmt.Sprintf(format, args...)}
}

func domainf(format string, args ...interface{}) error {
	return &Error{Kind: ErrDomain, Msg: fmt.Sprintf(format, args...)}
}

func mismatchf(format string, args ...interface{}) error {
	return &Error{Kind: ErrTypeMismatch, Msg: fmt.Sprintf(format, args...)}
}
