package commands

import (
	"github.com/fatih/color"
	"github.com/minunit/minunit/internal/cli"
	"github.com/minunit/minunit/internal/config"
	"github.com/minunit/minunit/internal/discovery"
	"github.com/minunit/minunit/internal/ui"
	"github.com/minunit/minunit/pkg/unit"

	"github.com/spf13/cobra"
)

// RegisterFunc fills a freshly constructed Runner during the registration phase
type RegisterFunc func(r *unit.Runner)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	Suites   *SuitesCommand
	List     *ListCommand
	Generate *GenerateCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, register RegisterFunc) *Commands {
	parser := discovery.NewParser()
	viewer := ui.NewFailureViewer()

	return &Commands{
		Run:      NewRunCommand(cfg, register, viewer),
		Suites:   NewSuitesCommand(register),
		List:     NewListCommand(cfg, parser),
		Generate: NewGenerateCommand(cfg, parser),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to a YAML config file (default "+config.DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ConfigFile)
		if err != nil {
			return err
		}
		*cfg = *loaded
		cfg.ApplyFlags(flags.ToConfigFlags())
		if cfg.NoColor {
			color.NoColor = true
		}
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run all registered suites",
		Long:  "Run every registered suite: all beforeClass hooks, then each suite's tests, then all afterClass hooks",
		Args:  cobra.NoArgs,
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().BoolVarP(&flags.Progress, "progress", "p", false, "Show a progress bar on stderr")
	runCmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Open the failure viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// Suites command
	suitesCmd := &cobra.Command{
		Use:   "suites",
		Short: "List registered suites",
		Long:  "Print the registered suites and their tests in execution order",
		Args:  cobra.NoArgs,
		RunE:  c.Suites.Execute,
	}
	rootCmd.AddCommand(suitesCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [path]",
		Short: "List suites declared in Go source",
		Long:  "Scan Go source files for //minunit: markers and list the suites they declare",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.List.Execute,
	}
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "Show hooks and test cases of each suite")
	rootCmd.AddCommand(listCmd)

	// Generate command
	generateCmd := &cobra.Command{
		Use:   "generate [path]",
		Short: "Generate suite registration code",
		Long:  "Scan Go source files for //minunit: markers and write a Suites() function into each package that declares suites",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.Generate.Execute,
	}
	generateCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Name of the generated file (default "+config.DefaultGeneratedFile+")")
	rootCmd.AddCommand(generateCmd)
}

func newScanner(cfg *config.Config) *discovery.Scanner {
	return discovery.NewScanner(cfg.PathsToIgnore, cfg.GeneratedFile)
}
