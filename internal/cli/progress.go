package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/termlog/progress"
)

func (a *App) progressCommand() *cobra.Command {
	var (
		steps int
		delay time.Duration
		width int
		fill  string
	)
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Draw a progress bar",
		Long: `Draw a progress bar that advances one step per delay.

Example:
  termlog progress --steps 20 --delay 50ms --fill '#'
  termlog progress --width 0     Fit the bar to the terminal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProgress(cmd.Context(), steps, delay, width, fill)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 10, "Number of steps")
	cmd.Flags().DurationVar(&delay, "delay", 500*time.Millisecond, "Delay between steps")
	cmd.Flags().IntVar(&width, "width", progress.DefaultWidth, "Bar width in cells (0 fits the terminal)")
	cmd.Flags().StringVar(&fill, "fill", progress.DefaultFill, "Fill character")
	return cmd
}
