package selfcheck

import (
	"bytes"
	"errors"
	"strings"

	"github.com/minunit/minunit/pkg/unit"
)

//minunit:suite ordering

type recorder struct {
	calls []string
}

func (r *recorder) hook(name string) unit.Hook {
	return func() error {
		r.calls = append(r.calls, name)
		return nil
	}
}

func (r *recorder) suite(name string, tests ...unit.TestCase) *unit.Suite {
	return unit.NewSuite(name, unit.Hooks{
		BeforeClass: r.hook(name + ".beforeClass"),
		AfterClass:  r.hook(name + ".afterClass"),
		Before:      r.hook(name + ".before"),
		After:       r.hook(name + ".after"),
	}, tests...)
}

//minunit:test
func phasesAreBarriers() error {
	rec := &recorder{}
	runner := unit.NewRunner(unit.WithReporter())
	runner.Register(rec.suite("a", unit.Test("a.t", func() error { return errors.New("x") })))
	runner.Register(rec.suite("b"))
	if err := runner.Run(); err != nil {
		return err
	}

	want := "a.beforeClass,b.beforeClass,a.before,a.after,b.before,b.after,a.afterClass,b.afterClass"
	got := strings.Join(rec.calls, ",")
	return unit.Assert(got == want, "expected %s, got %s", want, got)
}

//minunit:test
func reportLinesMatchOutcome() error {
	var out bytes.Buffer
	runner := unit.NewRunner(unit.WithReporter(unit.NewConsoleReporter(&out)))
	runner.Register(unit.NewSuite("s", unit.Hooks{},
		unit.Test("pass", func() error { return nil }),
		unit.Test("fail", func() error { return unit.Fail("x") }),
		unit.Test("err", func() error { return errors.New("x") }),
	))
	if err := runner.Run(); err != nil {
		return err
	}
	return unit.Assert(out.String() == "fail failed\nerr error\n", "unexpected report output %q", out.String())
}

//minunit:test
func emptyRunIsQuiet() error {
	var out bytes.Buffer
	runner := unit.NewRunner(unit.WithReporter(unit.NewConsoleReporter(&out)))
	if err := runner.Run(); err != nil {
		return err
	}
	return unit.Assert(out.Len() == 0, "expected no output, got %q", out.String())
}
