package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/minunit/minunit/internal/domain"
	"github.com/minunit/minunit/pkg/unit"
	"github.com/ryanuber/columnize"
)

// Summary aggregates the outcome of one run
type Summary struct {
	Suites   int
	Total    int
	Passed   int
	Failed   int
	Errored  int
	Duration time.Duration
}

// Summarize counts outcomes over results
func Summarize(suites int, results []unit.Result, duration time.Duration) Summary {
	s := Summary{Suites: suites, Total: len(results), Duration: duration}
	for _, r := range results {
		switch r.Outcome {
		case unit.OutcomePassed:
			s.Passed++
		case unit.OutcomeFailed:
			s.Failed++
		default:
			s.Errored++
		}
	}
	return s
}

// OK reports whether every test passed
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Errored == 0
}

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintSummary displays run statistics followed by a tree of non-passing tests
func (f *Formatter) PrintSummary(s Summary, results []unit.Result) {
	cyan := color.New(color.FgCyan)
	white := color.New(color.FgWhite)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                    Test Execution Statistics                  ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	rows := []struct {
		label string
		value string
		c     *color.Color
	}{
		{"Suites", fmt.Sprint(s.Suites), white},
		{"Total Tests", fmt.Sprint(s.Total), white},
		{"Passed", fmt.Sprint(s.Passed), green},
		{"Failed", fmt.Sprint(s.Failed), red},
		{"Errors", fmt.Sprint(s.Errored), red},
		{"Duration", fmt.Sprintf("%.2fs", s.Duration.Seconds()), white},
	}

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ ", row.label)
		row.c.Fprintf(f.out, "%-27s", row.value)
		fmt.Fprintln(f.out, " │")
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if s.OK() {
		green.Fprintln(f.out, "✓ All tests passed!")
		return
	}
	red.Fprintf(f.out, "✗ %d test(s) failed, %d test(s) raised an error\n", s.Failed, s.Errored)
	fmt.Fprintln(f.out)
	f.printFailureTree(results)
}

// printFailureTree groups non-passing results under their suite, in run order
func (f *Formatter) printFailureTree(results []unit.Result) {
	var order []string
	bySuite := make(map[string][]unit.Result)
	for _, r := range results {
		if r.Outcome == unit.OutcomePassed {
			continue
		}
		if _, ok := bySuite[r.Suite]; !ok {
			order = append(order, r.Suite)
		}
		bySuite[r.Suite] = append(bySuite[r.Suite], r)
	}

	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)
	for i, suite := range order {
		last := i == len(order)-1
		yellow.Fprintf(f.out, "%s %s\n", branch(last), suite)
		for j, r := range bySuite[suite] {
			prefix := indent(last) + branch(j == len(bySuite[suite])-1)
			red.Fprintf(f.out, "%s %s %s: %v\n", prefix, r.Test, r.Outcome, r.Err)
		}
	}
}

// PrintSuites lists registered suites as a table
func (f *Formatter) PrintSuites(suites []*unit.Suite) {
	if len(suites) == 0 {
		color.New(color.FgYellow).Fprintln(f.out, "No suites registered")
		return
	}

	lines := []string{"#|Suite|Tests"}
	for i, s := range suites {
		names := make([]string, 0, s.Len())
		for _, tc := range s.Tests() {
			names = append(names, tc.ID())
		}
		lines = append(lines, fmt.Sprintf("%d|%s|%s", i+1, s.Name(), strings.Join(names, ", ")))
	}
	fmt.Fprintln(f.out, formatList(lines))
}

// PrintPlans prints discovered suites, optionally with their hooks and tests
func (f *Formatter) PrintPlans(root string, plans []*domain.SuitePlan, showTests bool) {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)
	magenta := color.New(color.FgMagenta)

	green.Fprintf(f.out, "Found %d suite(s):\n\n", len(plans))

	for i, p := range plans {
		last := i == len(plans)-1
		rel, err := filepath.Rel(root, p.FilePath)
		if err != nil {
			rel = p.FilePath
		}
		cyan.Fprintf(f.out, "%s %s (%s, %d test(s))\n", branch(last), p.Name, rel, len(p.Tests))
		if !showTests {
			continue
		}

		var children []string
		for _, kind := range []string{domain.MarkerBeforeClass, domain.MarkerBefore, domain.MarkerAfter, domain.MarkerAfterClass} {
			if ref, ok := p.Hooks()[kind]; ok {
				children = append(children, magenta.Sprintf("@%s %s", kind, ref.Name))
			}
		}
		for _, tc := range p.Tests {
			children = append(children, yellow.Sprint(tc.Name))
		}
		if len(children) == 0 {
			fmt.Fprintf(f.out, "%s%s %s\n", indent(last), branch(true), color.RedString("(empty suite)"))
		}
		for j, child := range children {
			fmt.Fprintf(f.out, "%s%s %s\n", indent(last), branch(j == len(children)-1), child)
		}
	}
}

func branch(last bool) string {
	if last {
		return "└──"
	}
	return "├──"
}

func indent(lastParent bool) string {
	if lastParent {
		return "    "
	}
	return "│   "
}

func formatList(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	return columnize.Format(in, columnConf)
}
