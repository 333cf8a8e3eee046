package unit

import (
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Option configures a Runner
type Option func(*Runner)

// WithReporter replaces the default console reporter. Several reporters are
// combined into a MultiReporter.
func WithReporter(reporters ...Reporter) Option {
	return func(r *Runner) {
		if len(reporters) == 1 {
			r.reporter = reporters[0]
			return
		}
		r.reporter = MultiReporter(reporters)
	}
}

// WithLogger sets the logger used for lifecycle events
func WithLogger(logger hclog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Runner is an append-only registry of suites and the driver of a run.
// It is not safe for concurrent use; register everything before calling Run.
type Runner struct {
	suites   []*Suite
	reporter Reporter
	logger   hclog.Logger
}

// NewRunner creates an empty Runner. Without options, non-passing tests are
// written to stdout and nothing is logged.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		reporter: NewConsoleReporter(os.Stdout),
		logger:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register appends one suite
func (r *Runner) Register(suite *Suite) {
	r.suites = append(r.suites, suite)
}

// RegisterAll appends suites in the order given
func (r *Runner) RegisterAll(suites []*Suite) {
	for _, s := range suites {
		r.Register(s)
	}
}

// Suites returns the registered suites in registration order.
func (r *Runner) Suites() []*Suite {
	out := make([]*Suite, len(r.suites))
	copy(out, r.suites)
	return out
}

// TestCount returns the total number of test cases across all registered suites.
func (r *Runner) TestCount() int {
	n := 0
	for _, s := range r.suites {
		n += s.Len()
	}
	return n
}

// Run executes every registered suite in three barrier-separated phases:
// all beforeClass hooks, then each suite's tests, then all afterClass hooks.
//
// Test faults are reported and never returned. The first hook fault ends the
// run immediately and is returned as a *HookError. The registry is not
// consumed, so calling Run again repeats the whole run.
func (r *Runner) Run() error {
	logger := r.logger.With("run_id", uuid.NewString())
	logger.Debug("run started", "suites", len(r.suites), "tests", r.TestCount())

	logger.Debug("phase started", "phase", PhaseBeforeClass)
	for _, s := range r.suites {
		logger.Trace("invoking hook", "suite", s.name, "phase", PhaseBeforeClass)
		if err := s.BeforeClass(); err != nil {
			logger.Error("hook failed", "suite", s.name, "phase", PhaseBeforeClass, "error", err)
			return &HookError{Suite: s.name, Phase: PhaseBeforeClass, Err: err}
		}
	}

	logger.Debug("phase started", "phase", "tests")
	for _, s := range r.suites {
		if err := s.run(r.reporter, logger.With("suite", s.name)); err != nil {
			logger.Error("hook failed", "error", err)
			return err
		}
	}

	logger.Debug("phase started", "phase", PhaseAfterClass)
	for _, s := range r.suites {
		logger.Trace("invoking hook", "suite", s.name, "phase", PhaseAfterClass)
		if err := s.AfterClass(); err != nil {
			logger.Error("hook failed", "suite", s.name, "phase", PhaseAfterClass, "error", err)
			return &HookError{Suite: s.name, Phase: PhaseAfterClass, Err: err}
		}
	}

	logger.Debug("run finished")
	return nil
}
