package unit

import (
	"errors"
	"fmt"
)

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Classify invokes fn and turns however it ends into a tagged outcome.
// Panics are recovered here, so nothing escapes the single-test boundary.
func Classify(fn func() error) (outcome Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = &PanicError{Value: r}
			}
			outcome = outcomeOf(err)
		}
	}()

	if fn == nil {
		err = errors.New("nil test function")
		return OutcomeErrored, err
	}
	err = fn()
	return outcomeOf(err), err
}

func outcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomePassed
	case IsAssertion(err):
		return OutcomeFailed
	default:
		return OutcomeErrored
	}
}
