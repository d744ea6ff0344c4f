package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/termlog/logger"
	"github.com/mordilloSan/termlog/progress"
)

const (
	menuPrompt  = "Enter your choice (1-5): "
	pausePrompt = "Press Enter to return to the menu..."
	menuTitle   = "TZ Console Application Menu"
)

// lineReader is the part of *readline.Instance the menu needs.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

func (a *App) menuCommand() *cobra.Command {
	var delay time.Duration
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu over the logging and progress demos",
		Long: `Start an interactive menu. Requires a terminal on stdin.

Options:
  1  Demonstrate logging at different levels
  2  Show progress bar
  3  Display configuration
  4  Exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.tty() {
				return fmt.Errorf("stdin is not a terminal (TTY required for the interactive menu)")
			}
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          menuPrompt,
				HistoryLimit:    -1,
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
				Stdin:           os.Stdin,
				Stdout:          os.Stdout,
				Stderr:          os.Stderr,
			})
			if err != nil {
				return fmt.Errorf("failed to initialize readline: %w", err)
			}
			defer rl.Close()
			return a.runMenu(cmd.Context(), rl, delay)
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 500*time.Millisecond, "Delay between progress steps")
	return cmd
}

// runMenu loops until option 4, EOF, or an interrupt.
func (a *App) runMenu(ctx context.Context, in lineReader, delay time.Duration) error {
	out := output{w: a.out}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.printMenu(out); err != nil {
			return err
		}

		in.SetPrompt(menuPrompt)
		line, err := in.Readline()
		if err != nil {
			return menuReadError(err)
		}
		choice := strings.TrimSpace(line)
		a.diag.WithField("choice", choice).Debug("menu selection")

		switch choice {
		case "1":
			if err := a.log.ClearTerminal(); err != nil {
				return err
			}
			out.Banner("Logging Demonstrations")
			if err := a.logLevels("[MYAPP]"); err != nil {
				return err
			}
		case "2":
			if err := a.log.ClearTerminal(); err != nil {
				return err
			}
			out.Banner("Progress Bar Demonstration")
			if err := a.runProgress(ctx, 10, delay, progress.DefaultWidth, progress.DefaultFill); err != nil {
				return err
			}
		case "3":
			if err := a.log.ClearTerminal(); err != nil {
				return err
			}
			out.Banner("Display Configuration")
			if err := a.cfg.Encode(a.out, logger.JSON); err != nil {
				return err
			}
		case "4":
			if err := a.log.ClearTerminal(); err != nil {
				return err
			}
			out.Plain("Exiting the application. Goodbye!")
			return nil
		case "5":
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			out.Plain("%s", wd)
		default:
			out.Warn("Invalid choice. Please enter a number between 1 and 4.")
			if err := a.sleep(ctx, time.Second); err != nil {
				return err
			}
			continue
		}

		if err := pause(in); err != nil {
			return err
		}
	}
}

func (a *App) printMenu(out output) error {
	if err := a.log.ClearTerminal(); err != nil {
		return err
	}
	out.Banner(menuTitle)
	out.Plain("1. Demonstrate logging at different levels")
	out.Plain("2. Show progress bar")
	out.Plain("3. Display configuration")
	out.Plain("4. Exit")
	out.Rule(len(menuTitle) + 10)
	return nil
}

func pause(in lineReader) error {
	in.SetPrompt(pausePrompt)
	if _, err := in.Readline(); err != nil {
		return menuReadError(err)
	}
	return nil
}

// menuReadError turns EOF into a normal exit and Ctrl+C into an interrupt.
func menuReadError(err error) error {
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case errors.Is(err, readline.ErrInterrupt):
		return logger.ErrInterrupted
	default:
		return fmt.Errorf("failed to read input: %w", err)
	}
}
