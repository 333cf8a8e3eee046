package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/minunit/minunit/internal/config"
	"github.com/minunit/minunit/internal/ui"
	"github.com/minunit/minunit/pkg/unit"

	"github.com/spf13/cobra"
)

// ErrTestsFailed is returned by the run command when any test failed or errored
var ErrTestsFailed = errors.New("some tests did not pass")

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	register RegisterFunc
	viewer   ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, register RegisterFunc, viewer ui.Viewer) *RunCommand {
	return &RunCommand{
		config:   cfg,
		register: register,
		viewer:   viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "minunit",
		Level:  hclog.LevelFromString(rc.config.LogLevel),
		Output: stderr,
		Color:  colorOption(rc.config.NoColor),
	})

	recorder := unit.NewRecorder()
	reporters := []unit.Reporter{unit.NewConsoleReporter(stdout), recorder}

	// Registration happens before any reporter that needs the test count exists
	probe := unit.NewRunner(unit.WithReporter())
	if rc.register != nil {
		rc.register(probe)
	}

	var progress *ui.ProgressBar
	if rc.config.Progress {
		progress = ui.NewProgressBar(probe.TestCount(), stderr)
		reporters = append(reporters, progress)
	}

	runner := unit.NewRunner(unit.WithReporter(reporters...), unit.WithLogger(logger))
	runner.RegisterAll(probe.Suites())

	start := time.Now()
	runErr := runner.Run()
	duration := time.Since(start)
	if progress != nil {
		progress.Finish()
	}
	if runErr != nil {
		return fmt.Errorf("run aborted: %w", runErr)
	}

	results := recorder.Results()
	summary := ui.Summarize(len(runner.Suites()), results, duration)
	ui.NewFormatter(stdout).PrintSummary(summary, results)

	if !summary.OK() && rc.config.Interactive && rc.viewer != nil {
		if err := rc.viewer.View(results); err != nil {
			return err
		}
	}

	if !summary.OK() {
		return ErrTestsFailed
	}
	return nil
}

func colorOption(noColor bool) hclog.ColorOption {
	if noColor {
		return hclog.ColorOff
	}
	return hclog.AutoColor
}
