package main

import (
	"os"

	"github.com/minunit/minunit/internal/selfcheck"
	"github.com/minunit/minunit/pkg/unit"
	"github.com/minunit/minunit/pkg/unitmain"
)

func main() {
	os.Exit(unitmain.Main(func(r *unit.Runner) {
		r.RegisterAll(selfcheck.Suites())
	}))
}
