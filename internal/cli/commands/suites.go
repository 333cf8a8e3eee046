package commands

import (
	"github.com/minunit/minunit/internal/ui"
	"github.com/minunit/minunit/pkg/unit"

	"github.com/spf13/cobra"
)

// SuitesCommand handles the suites command
type SuitesCommand struct {
	register RegisterFunc
}

// NewSuitesCommand creates a new SuitesCommand
func NewSuitesCommand(register RegisterFunc) *SuitesCommand {
	return &SuitesCommand{register: register}
}

// Execute runs the command
func (sc *SuitesCommand) Execute(cmd *cobra.Command, args []string) error {
	r := unit.NewRunner(unit.WithReporter())
	if sc.register != nil {
		sc.register(r)
	}
	ui.NewFormatter(cmd.OutOrStdout()).PrintSuites(r.Suites())
	return nil
}
