// Package cli implements the termlog showcase commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mordilloSan/termlog/logger"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

// Color modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// options holds the global flags.
type options struct {
	configPath string
	colorMode  string
	logFile    string
	verbose    bool
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.configPath, "config", "c", "config.json", "Config file path (.json, .yaml or .toml)")
	fs.StringVar(&o.colorMode, "color", colorAuto, "Colorize output: auto/always/never")
	fs.StringVar(&o.logFile, "log-file", "", "Override log_file from the config")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "Enable [DEBUG] output")
}

// App owns the loaded configuration and the logger shared by all commands.
type App struct {
	opts  options
	args  []string
	out   io.Writer
	cfg   logger.Config
	log   *logger.Logger
	diag  *logrus.Logger
	sleep func(ctx context.Context, d time.Duration) error
	tty   func() bool
}

// NewApp resolves the global flags from args, loads the configuration and
// builds the logger. The config is read before cobra runs so the same logger
// can report errors escaping any command.
func NewApp(args []string, out io.Writer) *App {
	a := &App{
		args:  args,
		out:   out,
		sleep: sleepContext,
		tty:   func() bool { return isTerminal(os.Stdin) },
	}
	a.opts = earlyOptions(args)
	a.configure(logger.LoadConfigTo(out, a.opts.configPath))
	return a
}

// earlyOptions parses only the global flags and ignores everything else,
// including help and parse errors, which cobra reports later.
func earlyOptions(args []string) options {
	var o options
	fs := pflag.NewFlagSet("early", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	o.bind(fs)
	fs.BoolP("help", "h", false, "")
	_ = fs.Parse(args)
	return o
}

// configure applies flag overrides to cfg and builds the logger around it.
func (a *App) configure(cfg logger.Config) {
	if a.opts.logFile != "" {
		cfg.LogFile = a.opts.logFile
	}
	if a.opts.verbose {
		levels := make(map[string]bool, len(cfg.LogLevels)+1)
		for k, v := range cfg.LogLevels {
			levels[k] = v
		}
		levels[logger.DebugLevel.Tag] = true
		delete(levels, logger.DebugLevel.Name)
		cfg.LogLevels = levels
	}

	colorize := a.colorEnabled()
	color.NoColor = !colorize

	a.cfg = cfg
	a.log = logger.New(cfg, logger.WithOutput(a.out), logger.WithColor(colorize))

	a.diag = logrus.New()
	a.diag.SetOutput(io.Discard)
	a.diag.AddHook(logger.NewLogrusHook(a.log))
	if a.opts.verbose {
		a.diag.SetLevel(logrus.DebugLevel)
	}
}

func (a *App) colorEnabled() bool {
	switch strings.ToLower(a.opts.colorMode) {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		f, ok := a.out.(*os.File)
		return ok && isTerminal(f)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Logger returns the logger built from the loaded configuration.
func (a *App) Logger() *logger.Logger {
	return a.log
}

// Execute runs the command selected by the App's args.
func (a *App) Execute(ctx context.Context) error {
	root := a.rootCommand()
	root.SetArgs(a.args)
	root.SetOut(a.out)
	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "termlog",
		Short: "Showcase for colored, leveled terminal logging",
		Long: `termlog exercises the logger and progress packages.

Quick Start:
  termlog demo              Log every level, draw a progress bar
  termlog menu              Interactive menu
  termlog progress          Progress bar only
  termlog config show       Print the loaded configuration`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch strings.ToLower(a.opts.colorMode) {
			case colorAuto, colorAlways, colorNever:
				return nil
			default:
				return fmt.Errorf("invalid --color %q (must be one of: auto, always, never)", a.opts.colorMode)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	a.opts.bind(root.PersistentFlags())

	root.AddCommand(a.demoCommand())
	root.AddCommand(a.menuCommand())
	root.AddCommand(a.progressCommand())
	root.AddCommand(a.configCommand())
	root.AddCommand(a.versionCommand())
	return root
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
