package coerce

import (
	"errors"
	"fmt"
)

// ErrMissingFn is returned by construction and composition when neither
// an explicit transform nor a fallback one is supplied.
var ErrMissingFn = errors.New("coerce: no transform supplied")

// CoercionError signals that a transform step could not process its
// input. It records the input handed to the failing step.
type CoercionError struct {
	Input any
	Err   error
}

func NewCoercionError(input any, err error) *CoercionError {
	return &CoercionError{Input: input, Err: err}
}

// Coercionf builds a CoercionError from a format string.
func Coercionf(input any, format string, args ...any) *CoercionError {
	return &CoercionError{Input: input, Err: fmt.Errorf(format, args...)}
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("coerce: cannot transform %v: %v", e.Input, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

// CapabilityError is returned by the delegation fallback when an
// operation has no handler anywhere in the chain.
type CapabilityError struct {
	Op   string
	Kind Kind
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("coerce: %s type has no capability %q", e.Kind, e.Op)
}
