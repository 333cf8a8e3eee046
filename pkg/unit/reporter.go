package unit

import (
	"fmt"
	"io"
	"sync"
)

// Reporter receives one Result per executed test, in execution order.
type Reporter interface {
	Report(result Result)
}

// ConsoleReporter writes one line per non-passing test: "<id> failed" or "<id> error".
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter creates a ConsoleReporter writing to w
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// Report implements Reporter
func (c *ConsoleReporter) Report(result Result) {
	if result.Outcome == OutcomePassed {
		return
	}
	fmt.Fprintf(c.w, "%s %s\n", result.Test, result.Outcome)
}

// Recorder keeps every reported Result.
type Recorder struct {
	mu      sync.Mutex
	results []Result
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Report implements Reporter
func (r *Recorder) Report(result Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

// Results returns a copy of the recorded results in report order.
func (r *Recorder) Results() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Count returns how many recorded results have the given outcome.
func (r *Recorder) Count(outcome Outcome) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, res := range r.results {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}

// MultiReporter forwards each Result to every wrapped reporter in order.
type MultiReporter []Reporter

// Report implements Reporter
func (m MultiReporter) Report(result Result) {
	for _, r := range m {
		if r != nil {
			r.Report(result)
		}
	}
}
