package unit

import (
	"reflect"
	"runtime"
	"strings"
	"time"
)

// Hook is a zero-argument lifecycle procedure.
type Hook func() error

// HookFunc adapts a procedure that cannot fail into a Hook.
func HookFunc(fn func()) Hook {
	if fn == nil {
		return nil
	}
	return func() error {
		fn()
		return nil
	}
}

func noop() error { return nil }

// TestCase is a single test procedure and the identifier it is reported under.
type TestCase struct {
	Name string
	Fn   func() error
}

// Test creates a TestCase
func Test(name string, fn func() error) TestCase {
	return TestCase{Name: name, Fn: fn}
}

// TestFunc creates a TestCase from a procedure that signals faults only by panicking.
func TestFunc(name string, fn func()) TestCase {
	return TestCase{Name: name, Fn: func() error {
		fn()
		return nil
	}}
}

// ID returns the identifier used in reports. Unnamed cases fall back to
// the Go name of their function.
func (tc TestCase) ID() string {
	if tc.Name != "" {
		return tc.Name
	}
	if tc.Fn == nil {
		return "<nil>"
	}
	fn := runtime.FuncForPC(reflect.ValueOf(tc.Fn).Pointer())
	if fn == nil {
		return "<unknown>"
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Outcome classifies how a test invocation ended
type Outcome int

const (
	OutcomePassed Outcome = iota
	OutcomeFailed
	OutcomeErrored
)

func (o Outcome) String() string {
	switch o {
	case OutcomePassed:
		return "passed"
	case OutcomeFailed:
		return "failed"
	case OutcomeErrored:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of executing one test case
type Result struct {
	Suite    string
	Test     string
	Outcome  Outcome
	Err      error // nil when the test passed
	Duration time.Duration
}
