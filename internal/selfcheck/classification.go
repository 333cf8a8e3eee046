package selfcheck

import (
	"errors"

	"github.com/minunit/minunit/pkg/unit"
)

//minunit:suite classification

// outcomesOf runs tests in a throwaway suite and returns the recorded outcomes
func outcomesOf(tests ...unit.TestCase) ([]unit.Outcome, error) {
	rec := unit.NewRecorder()
	if err := unit.NewSuite("probe", unit.Hooks{}, tests...).Run(rec); err != nil {
		return nil, err
	}
	var outcomes []unit.Outcome
	for _, r := range rec.Results() {
		outcomes = append(outcomes, r.Outcome)
	}
	return outcomes, nil
}

func expectOutcomes(got []unit.Outcome, want ...unit.Outcome) error {
	if len(got) != len(want) {
		return unit.Failf("expected %d outcomes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			return unit.Failf("outcome %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	return nil
}

//minunit:test
func assertionIsFailure() error {
	got, err := outcomesOf(unit.Test("a", func() error { return unit.Fail("x") }))
	if err != nil {
		return err
	}
	return expectOutcomes(got, unit.OutcomeFailed)
}

//minunit:test
func otherErrorIsError() error {
	got, err := outcomesOf(unit.Test("e", func() error { return errors.New("x") }))
	if err != nil {
		return err
	}
	return expectOutcomes(got, unit.OutcomeErrored)
}

//minunit:test
func panicsAreContained() error {
	got, err := outcomesOf(
		unit.TestFunc("p1", func() { panic(unit.Fail("x")) }),
		unit.TestFunc("p2", func() { panic("x") }),
		unit.TestFunc("ok", func() {}),
	)
	if err != nil {
		return err
	}
	return expectOutcomes(got, unit.OutcomeFailed, unit.OutcomeErrored, unit.OutcomePassed)
}
