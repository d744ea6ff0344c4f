package logger

import (
	"context"
	"errors"
	"fmt"
)

// ConfigLoadError reports why a configuration document could not be used.
// LoadConfig recovers from it by falling back to DefaultConfig.
type ConfigLoadError struct {
	Path string
	Err  error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("load config %s: %v", e.Path, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// FilesystemError is returned by the file sink when rotating or appending fails.
// It is never swallowed.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// UncaughtError wraps a panic value or error that reached Guard.
type UncaughtError struct {
	Value any
	Stack []byte
	// Panicked is true when Value came from recover().
	Panicked bool
}

func (e *UncaughtError) Error() string {
	return fmt.Sprintf("uncaught: %v", e.Value)
}

func (e *UncaughtError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ErrInterrupted marks an operator-initiated stop. Guard lets it through
// without reporting it.
var ErrInterrupted = errors.New("interrupted")

// Exit codes returned by ExitCode.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitPanic     = 2
	ExitInterrupt = 130
)

// ExitCode maps an error returned by Guard to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if isInterrupt(err) {
		return ExitInterrupt
	}
	var ue *UncaughtError
	if errors.As(err, &ue) && ue.Panicked {
		return ExitPanic
	}
	return ExitFailure
}

func isInterrupt(err error) bool {
	return errors.Is(err, ErrInterrupted) || errors.Is(err, context.Canceled)
}
