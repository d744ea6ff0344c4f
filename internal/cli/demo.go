package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/termlog/logger"
	"github.com/mordilloSan/termlog/progress"
)

type demoOptions struct {
	toFile    bool
	noClear   bool
	customTag string
	steps     int
	delay     time.Duration
}

func (a *App) demoCommand() *cobra.Command {
	var o demoOptions
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Log a message at every level and draw a progress bar",
		Long: `Log one message per level plus a custom tag, draw a progress bar and
print the loaded configuration.

Example:
  termlog demo
  termlog demo --to-file --log-file ./logs/demo.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd.Context(), o)
		},
	}
	cmd.Flags().BoolVar(&o.toFile, "to-file", false, "Also append every message to the log file")
	cmd.Flags().BoolVar(&o.noClear, "no-clear", false, "Do not clear the terminal first")
	cmd.Flags().StringVar(&o.customTag, "tag", "[MYAPP NAME HERE]", "Tag for the custom message")
	cmd.Flags().IntVar(&o.steps, "steps", 10, "Progress bar steps")
	cmd.Flags().DurationVar(&o.delay, "delay", 100*time.Millisecond, "Delay between progress steps")
	return cmd
}

func (a *App) runDemo(ctx context.Context, o demoOptions) error {
	timer := a.log.StartTimer("demo")
	defer timer.Stop()

	if !o.noClear {
		if err := a.log.ClearTerminal(); err != nil {
			return err
		}
	}

	var opts []logger.WriteOption
	if o.toFile {
		opts = append(opts, logger.ToFile())
	}
	if err := a.log.Info("Starting the application.", opts...); err != nil {
		return err
	}
	if err := a.logLevels(o.customTag, opts...); err != nil {
		return err
	}
	if err := a.runProgress(ctx, o.steps, o.delay, progress.DefaultWidth, progress.DefaultFill); err != nil {
		return err
	}
	return a.log.Info(fmt.Sprintf("Loaded configuration: %s", describeConfig(a.cfg)), opts...)
}

// logLevels writes one demonstration message per level.
func (a *App) logLevels(customTag string, opts ...logger.WriteOption) error {
	a.diag.WithField("to_file", len(opts) > 0).Debug("logging demonstration")
	return errors.Join(
		a.log.Info("This is an informational message.", opts...),
		a.log.Warning("This is a warning message.", opts...),
		a.log.Error("An error occurred during processing.", opts...),
		a.log.Debug("Debugging information.", opts...),
		a.log.Success("Operation completed successfully.", opts...),
		a.log.Failure("Operation failed to complete.", opts...),
		a.log.Critical("Critical error encountered.", opts...),
		a.log.Custom("This is a custom message with a custom symbol and color.",
			customTag, logger.ColorOf(color.FgHiMagenta), opts...),
	)
}

// runProgress draws steps frames of a bar, waiting delay before each one.
// width 0 fits the bar to the terminal.
func (a *App) runProgress(ctx context.Context, steps int, delay time.Duration, width int, fill string) error {
	bar := progress.New(steps, "Progress:", "Complete")
	bar.Out = a.out
	bar.Fill = fill
	bar.Width = width
	if width <= 0 {
		bar.Width = progress.DefaultWidth
		if f, ok := a.out.(interface{ Fd() uintptr }); ok {
			bar.FitWidth(int(f.Fd()))
		}
	}
	for i := 1; i <= steps; i++ {
		if err := a.sleep(ctx, delay); err != nil {
			return err
		}
		if err := bar.Update(i); err != nil {
			return err
		}
	}
	return nil
}

func describeConfig(cfg logger.Config) string {
	return fmt.Sprintf("log_file=%s log_rotation=%t log_rotation_size=%d log_levels=%v",
		cfg.LogFile, cfg.LogRotation, cfg.LogRotationSize, cfg.LogLevels)
}
