package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/minunit/minunit/pkg/unit"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar renders run progress and implements unit.Reporter
type ProgressBar struct {
	bar     *progressbar.ProgressBar
	mu      sync.Mutex
	passed  int
	failed  int
	errored int
}

// NewProgressBar creates a new progress bar for count tests writing to w
func NewProgressBar(count int, w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

func describe(passed, failed, errored int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d", failed) +
		" | " +
		color.YellowString("error: %d]", errored)
}

// Report implements unit.Reporter
func (p *ProgressBar) Report(result unit.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch result.Outcome {
	case unit.OutcomePassed:
		p.passed++
	case unit.OutcomeFailed:
		p.failed++
	default:
		p.errored++
	}
	p.bar.Describe(describe(p.passed, p.failed, p.errored))
	_ = p.bar.Add(1)
}

// Counts returns the tallies seen so far
func (p *ProgressBar) Counts() (passed, failed, errored int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.passed, p.failed, p.errored
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}
