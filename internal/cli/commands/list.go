package commands

import (
	"github.com/fatih/color"
	"github.com/minunit/minunit/internal/config"
	"github.com/minunit/minunit/internal/discovery"
	"github.com/minunit/minunit/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	parser *discovery.Parser
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, parser *discovery.Parser) *ListCommand {
	return &ListCommand{
		config: cfg,
		parser: parser,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	root := lc.config.GetSourcePath(args)
	files, err := newScanner(lc.config).Scan(root)
	if err != nil {
		return err
	}

	plans, err := lc.parser.FindSuites(files)
	if err != nil {
		return err
	}

	if len(plans) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No suites found")
		return nil
	}

	ui.NewFormatter(cmd.OutOrStdout()).PrintPlans(root, plans, lc.config.Flags.TestCases)
	return nil
}
