package selfcheck

import (
	"fmt"
	"strings"

	"github.com/minunit/minunit/pkg/unit"
)

//minunit:suite lifecycle

var calls []string

//minunit:beforeclass
func resetCalls() {
	calls = []string{"beforeClass"}
}

//minunit:before
func recordBefore() {
	calls = append(calls, "before")
}

//minunit:after
func recordAfter() {
	calls = append(calls, "after")
}

// verifyCalls fails the whole run if hooks ran out of order
//
//minunit:afterclass
func verifyCalls() error {
	want := "beforeClass,before,first,second,after"
	if got := strings.Join(calls, ","); got != want {
		return fmt.Errorf("lifecycle order: expected %s, got %s", want, got)
	}
	return nil
}

//minunit:test
func first() error {
	calls = append(calls, "first")
	return unit.Assert(len(calls) == 3 && calls[1] == "before", "before must run once ahead of the first test, calls: %v", calls)
}

//minunit:test
func second() error {
	calls = append(calls, "second")
	return unit.Assert(len(calls) == 4, "before must not run again per test, calls: %v", calls)
}
