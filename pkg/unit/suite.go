package unit

import (
	"time"

	"github.com/hashicorp/go-hclog"
)

// Hooks holds the four lifecycle hooks of a suite. Nil entries are no-ops.
type Hooks struct {
	BeforeClass Hook
	AfterClass  Hook
	Before      Hook
	After       Hook
}

// Suite is an immutable, ordered bundle of lifecycle hooks and test cases.
type Suite struct {
	name        string
	beforeClass Hook
	afterClass  Hook
	before      Hook
	after       Hook
	tests       []TestCase
}

// NewSuite creates a Suite. The tests are copied, so later changes to the
// caller's slice do not affect the suite.
func NewSuite(name string, hooks Hooks, tests ...TestCase) *Suite {
	s := &Suite{
		name:        name,
		beforeClass: orNoop(hooks.BeforeClass),
		afterClass:  orNoop(hooks.AfterClass),
		before:      orNoop(hooks.Before),
		after:       orNoop(hooks.After),
		tests:       make([]TestCase, len(tests)),
	}
	copy(s.tests, tests)
	return s
}

func orNoop(h Hook) Hook {
	if h == nil {
		return noop
	}
	return h
}

// Name returns the suite name
func (s *Suite) Name() string {
	return s.name
}

// Tests returns a copy of the suite's test cases in execution order.
func (s *Suite) Tests() []TestCase {
	out := make([]TestCase, len(s.tests))
	copy(out, s.tests)
	return out
}

// Len returns the number of test cases
func (s *Suite) Len() int {
	return len(s.tests)
}

// BeforeClass invokes the class-level setup hook.
func (s *Suite) BeforeClass() error {
	return s.beforeClass()
}

// AfterClass invokes the class-level teardown hook.
func (s *Suite) AfterClass() error {
	return s.afterClass()
}

// Run invokes before once, then every test in order, then after once.
// Test faults are classified and handed to rep; they never stop the loop.
// A failing before or after hook is returned as a *HookError.
func (s *Suite) Run(rep Reporter) error {
	return s.run(rep, hclog.NewNullLogger())
}

func (s *Suite) run(rep Reporter, logger hclog.Logger) error {
	if rep == nil {
		rep = MultiReporter(nil)
	}

	logger.Trace("invoking hook", "phase", PhaseBefore)
	if err := s.before(); err != nil {
		return &HookError{Suite: s.name, Phase: PhaseBefore, Err: err}
	}

	for _, tc := range s.tests {
		id := tc.ID()
		start := time.Now()
		outcome, err := Classify(tc.Fn)
		result := Result{
			Suite:    s.name,
			Test:     id,
			Outcome:  outcome,
			Err:      err,
			Duration: time.Since(start),
		}
		logger.Debug("test finished", "test", id, "outcome", outcome, "duration", result.Duration)
		rep.Report(result)
	}

	logger.Trace("invoking hook", "phase", PhaseAfter)
	if err := s.after(); err != nil {
		return &HookError{Suite: s.name, Phase: PhaseAfter, Err: err}
	}
	return nil
}
