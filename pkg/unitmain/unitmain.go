// Package unitmain is the entry point for a program that runs its own suites.
//
//	func main() {
//		os.Exit(unitmain.Main(func(r *unit.Runner) {
//			r.RegisterAll(accounts.Suites())
//			r.RegisterAll(billing.Suites())
//		}))
//	}
package unitmain

import (
	"fmt"
	"os"

	"github.com/minunit/minunit/internal/cli"
	"github.com/minunit/minunit/internal/cli/commands"
	"github.com/minunit/minunit/internal/config"
	"github.com/minunit/minunit/pkg/unit"

	"github.com/spf13/cobra"
)

var version = "dev"

// NewRootCommand builds the command tree. register is called on a fresh
// Runner each time a command needs the registered suites.
func NewRootCommand(name string, register func(r *unit.Runner)) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     name,
		Short:   "Minimal unit test runner",
		Long:    `Runs registered test suites with class-level and run-level lifecycle hooks, reporting each failed or erroring test without halting the run.`,
		Version: version,
	}

	cfg := config.New()
	var flags cli.Flags
	commands.NewCommands(cfg, register).Register(rootCmd, &flags, cfg)
	return rootCmd
}

// Main runs the CLI with os.Args and returns the process exit code.
// With no subcommand it behaves like "run".
func Main(register func(r *unit.Runner)) int {
	rootCmd := NewRootCommand(os.Args[0], register)
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"run"}
	}
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
