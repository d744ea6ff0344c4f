package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/termlog/logger"
)

func (a *App) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create configuration files",
	}
	cmd.AddCommand(a.configShowCommand())
	cmd.AddCommand(a.configInitCommand())
	return cmd
}

func (a *App) configShowCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the loaded configuration",
		Long: `Print the configuration in effect, after defaults and flag overrides.

Example:
  termlog config show
  termlog -c config.yaml config show --format toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := logger.ParseEncoding(format)
			if err != nil {
				return err
			}
			return a.cfg.Encode(a.out, enc)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(logger.JSON), "Output format: json/yaml/toml")
	return cmd
}

func (a *App) configInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Long: `Write the built-in default configuration to path (default: the --config value).
The format follows the file extension.

Example:
  termlog config init
  termlog config init ./termlog.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.opts.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}
			if err := logger.WriteConfigFile(path, logger.DefaultConfig()); err != nil {
				return err
			}
			return a.log.Success(fmt.Sprintf("Default configuration written to %s", path))
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
