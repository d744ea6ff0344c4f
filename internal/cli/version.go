package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := output{w: a.out}
			out.KeyValue("termlog", Version)
			out.KeyValue("go", runtime.Version())
			out.KeyValue("config", a.opts.configPath)
		},
	}
}
