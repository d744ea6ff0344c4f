package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mordilloSan/termlog/internal/cli"
	"github.com/mordilloSan/termlog/logger"
)

// Usage: termlog [--config config.json] <demo|menu|progress|config|version>
func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(args, os.Stdout)

	// Anything escaping the command, panics included, is logged to the
	// console and forced into the log file before exiting.
	err := logger.Guard(app.Logger(), func() error {
		return app.Execute(ctx)
	})
	return logger.ExitCode(err)
}
