package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/minunit/minunit/pkg/unit"
	"github.com/rivo/tview"
)

// Viewer displays run results interactively
type Viewer interface {
	View(results []unit.Result) error
}

// FailureViewer displays non-passing tests in an interactive TUI
type FailureViewer struct {
	app *tview.Application
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// NonPassing returns the failed and errored results, in run order
func NonPassing(results []unit.Result) []unit.Result {
	var out []unit.Result
	for _, r := range results {
		if r.Outcome != unit.OutcomePassed {
			out = append(out, r)
		}
	}
	return out
}

// View displays non-passing tests. Nothing is shown when every test passed.
func (fv *FailureViewer) View(results []unit.Result) error {
	failures := NonPassing(results)
	if len(failures) == 0 {
		return nil
	}

	// Reviewed marks are kept for the lifetime of the viewer only
	reviewed := make(map[int]bool)

	app := tview.NewApplication()
	fv.app = app

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		r := failures[index]
		tag := "[red]F"
		if r.Outcome == unit.OutcomeErrored {
			tag = "[orange]E"
		}
		if reviewed[index] {
			return fmt.Sprintf("[gray]✓ %d. %s::%s[white]", index+1, r.Suite, r.Test)
		}
		return fmt.Sprintf("%s [yellow]%d.[white] %s::%s", tag, index+1, r.Suite, r.Test)
	}

	for i := range failures {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		open := 0
		for i := range failures {
			if !reviewed[i] {
				open++
			}
		}
		headerView.SetText(fmt.Sprintf(" Non-passing tests (%d total, %d not reviewed) | ↑↓ navigate, [yellow]R[white] mark reviewed, → details, ← back, Ctrl+C exit ", len(failures), open))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(failures) {
			detailsView.SetText(FormatResultDetails(failures[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(failures) {
					reviewed[index] = !reviewed[index]
					list.SetItemText(index, getListItemText(index), "")
					updateHeader()
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// FormatResultDetails formats a result for display using tview color tags
func FormatResultDetails(r unit.Result) string {
	var b strings.Builder

	kind := "Assertion failure"
	if r.Outcome == unit.OutcomeErrored {
		kind = "Unexpected error"
	}
	fmt.Fprintf(&b, "[red]✗ Test: %s[white]\n\n", tview.Escape(r.Test))
	fmt.Fprintf(&b, "[cyan]Suite: %s[white]\n", tview.Escape(r.Suite))
	fmt.Fprintf(&b, "[yellow]Kind:[white] %s\n", kind)
	fmt.Fprintf(&b, "[yellow]Duration:[white] %s\n\n", r.Duration)
	if r.Err != nil {
		fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n", tview.Escape(r.Err.Error()))
	}
	return b.String()
}
