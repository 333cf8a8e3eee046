package unitmain

import (
	"bytes"
	"testing"

	"github.com/minunit/minunit/pkg/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	chdir(t, t.TempDir())

	registered := 0
	root := NewRootCommand("suites-bin", func(r *unit.Runner) {
		registered++
		r.Register(unit.NewSuite("s", unit.Hooks{}, unit.Test("t", func() error { return nil })))
	})

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "suites", "list", "generate"} {
		assert.True(t, names[want], "missing command %s", want)
	}

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"run", "--no-color"})
	require.NoError(t, root.Execute())
	assert.Equal(t, 1, registered)
	assert.Contains(t, out.String(), "All tests passed")
}
