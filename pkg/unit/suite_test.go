package unit

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trace records the order in which hooks and tests are invoked
type trace struct {
	calls []string
}

func (tr *trace) hook(name string) Hook {
	return func() error {
		tr.calls = append(tr.calls, name)
		return nil
	}
}

func (tr *trace) test(name string, err error) TestCase {
	return Test(name, func() error {
		tr.calls = append(tr.calls, name)
		return err
	})
}

func TestSuite_Run_MixedOutcomes(t *testing.T) {
	tr := &trace{}
	s := NewSuite("mixed", Hooks{
		Before: tr.hook("before"),
		After:  tr.hook("after"),
	},
		tr.test("passing", nil),
		tr.test("asserting", Fail("expected 1, got 2")),
		tr.test("raising", errors.New("connection refused")),
	)

	var out bytes.Buffer
	rec := NewRecorder()
	err := s.Run(MultiReporter{NewConsoleReporter(&out), rec})
	require.NoError(t, err)

	assert.Equal(t, []string{"before", "passing", "asserting", "raising", "after"}, tr.calls)
	assert.Equal(t, "asserting failed\nraising error\n", out.String())

	results := rec.Results()
	require.Len(t, results, 3)
	assert.Equal(t, OutcomePassed, results[0].Outcome)
	assert.Equal(t, OutcomeFailed, results[1].Outcome)
	assert.Equal(t, OutcomeErrored, results[2].Outcome)
	assert.Equal(t, "mixed", results[2].Suite)
}

func TestSuite_Run_FirstTestFails(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		tr := &trace{}
		tests := []TestCase{tr.test("t0", Fail("nope"))}
		for i := 1; i < n; i++ {
			tests = append(tests, tr.test("ok", nil))
		}
		afterCalls := 0
		s := NewSuite("first", Hooks{After: func() error {
			afterCalls++
			return nil
		}}, tests...)

		var out bytes.Buffer
		require.NoError(t, s.Run(NewConsoleReporter(&out)))

		assert.Equal(t, "t0 failed\n", out.String())
		assert.Len(t, tr.calls, n)
		assert.Equal(t, 1, afterCalls)
	}
}

func TestSuite_Run_EmptyTests(t *testing.T) {
	tr := &trace{}
	s := NewSuite("empty", Hooks{Before: tr.hook("before"), After: tr.hook("after")})

	var out bytes.Buffer
	require.NoError(t, s.Run(NewConsoleReporter(&out)))

	assert.Equal(t, []string{"before", "after"}, tr.calls)
	assert.Empty(t, out.String())
}

func TestSuite_Run_PanicsAreContained(t *testing.T) {
	tests := []struct {
		name     string
		fn       func()
		expected string
	}{
		{
			name:     "assertion panic",
			fn:       func() { panic(Fail("boom")) },
			expected: "p failed\n",
		},
		{
			name:     "runtime panic",
			fn:       func() { var m map[string]int; m["x"] = 1 },
			expected: "p error\n",
		},
		{
			name:     "string panic",
			fn:       func() { panic("oops") },
			expected: "p error\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			ran := false
			s := NewSuite("panics", Hooks{},
				TestFunc("p", tt.fn),
				TestFunc("next", func() { ran = true }),
			)
			require.NoError(t, s.Run(NewConsoleReporter(&out)))
			assert.Equal(t, tt.expected, out.String())
			assert.True(t, ran, "test after a panicking test must still run")
		})
	}
}

func TestSuite_Run_HookFaultsPropagate(t *testing.T) {
	t.Run("before error skips tests and after", func(t *testing.T) {
		tr := &trace{}
		cause := errors.New("no fixture")
		s := NewSuite("s", Hooks{
			Before: func() error { return cause },
			After:  tr.hook("after"),
		}, tr.test("t", nil))

		err := s.Run(nil)
		var he *HookError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, PhaseBefore, he.Phase)
		assert.ErrorIs(t, err, cause)
		assert.Empty(t, tr.calls)
	})

	t.Run("after error is returned once tests ran", func(t *testing.T) {
		tr := &trace{}
		s := NewSuite("s", Hooks{
			After: func() error { return errors.New("cleanup failed") },
		}, tr.test("t", nil))

		err := s.Run(nil)
		var he *HookError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, PhaseAfter, he.Phase)
		assert.Equal(t, []string{"t"}, tr.calls)
	})

	t.Run("hook panic is not recovered", func(t *testing.T) {
		s := NewSuite("s", Hooks{Before: func() error { panic("hook exploded") }})
		assert.PanicsWithValue(t, "hook exploded", func() { _ = s.Run(nil) })
	})
}

func TestNewSuite_CopiesTests(t *testing.T) {
	tests := []TestCase{Test("a", nil), Test("b", nil)}
	s := NewSuite("copy", Hooks{}, tests...)
	tests[0].Name = "changed"

	assert.Equal(t, "a", s.Tests()[0].Name)

	got := s.Tests()
	got[1].Name = "changed"
	assert.Equal(t, "b", s.Tests()[1].Name)
}

func TestNewSuite_NilHooksAreNoops(t *testing.T) {
	s := NewSuite("nil", Hooks{})
	assert.NoError(t, s.BeforeClass())
	assert.NoError(t, s.AfterClass())
	assert.NoError(t, s.Run(nil))
}

func namedTestFunction() error { return Fail("x") }

func TestTestCase_ID(t *testing.T) {
	assert.Equal(t, "given", Test("given", nil).ID())
	assert.Equal(t, "unit.namedTestFunction", Test("", namedTestFunction).ID())
	assert.Equal(t, "<nil>", TestCase{}.ID())
}
