package unit

import (
	"errors"
	"fmt"
)

// AssertionError signals that an expected condition was not met.
// A test that returns or panics with one is reported as failed rather than errored.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	if e.Message == "" {
		return "assertion failed"
	}
	return e.Message
}

// Fail returns an assertion failure with the given message
func Fail(msg string) error {
	return &AssertionError{Message: msg}
}

// Failf returns an assertion failure with a formatted message
func Failf(format string, args ...any) error {
	return &AssertionError{Message: fmt.Sprintf(format, args...)}
}

// Assert returns nil when cond holds and an assertion failure otherwise.
func Assert(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return Failf(format, args...)
}

// IsAssertion reports whether err is, or wraps, an AssertionError.
func IsAssertion(err error) bool {
	var ae *AssertionError
	return errors.As(err, &ae)
}

// Phase identifies the stage of a run in which a hook fault happened.
type Phase string

const (
	PhaseBeforeClass Phase = "beforeClass"
	PhaseBefore      Phase = "before"
	PhaseAfter       Phase = "after"
	PhaseAfterClass  Phase = "afterClass"
)

// HookError is returned when a lifecycle hook fails. Hook faults are not contained:
// they end the run at the point they occur.
type HookError struct {
	Suite string
	Phase Phase
	Err   error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("suite %s: %s hook: %v", e.Suite, e.Phase, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}
