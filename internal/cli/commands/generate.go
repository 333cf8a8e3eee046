package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/minunit/minunit/internal/config"
	"github.com/minunit/minunit/internal/discovery"
	"github.com/minunit/minunit/internal/generate"

	"github.com/spf13/cobra"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	config *config.Config
	parser *discovery.Parser
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(cfg *config.Config, parser *discovery.Parser) *GenerateCommand {
	return &GenerateCommand{
		config: cfg,
		parser: parser,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	root := gc.config.GetSourcePath(args)
	files, err := newScanner(gc.config).Scan(root)
	if err != nil {
		return err
	}

	plans, err := gc.parser.FindSuites(files)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(plans) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No suites found")
		return nil
	}

	written, err := generate.NewWriter(gc.config.GeneratedFile).Write(plans)
	for _, path := range written {
		color.New(color.FgGreen).Fprintf(out, "✓ wrote %s\n", path)
	}
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}
	return nil
}
