package logger

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Guard runs the process entry point and reports anything that escapes it.
// A panic or a non-nil error is logged as "Uncaught exception: <v>" at ERROR,
// then the full trace is appended to the log file even if ERROR is disabled.
// The returned *UncaughtError is meant for ExitCode. Interrupts
// (ErrInterrupted, context.Canceled) pass through unreported.
func Guard(l *Logger, run func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if rerr, ok := r.(error); ok && isInterrupt(rerr) {
			err = rerr
			return
		}
		err = l.reportUncaught(&UncaughtError{Value: r, Stack: debug.Stack(), Panicked: true})
	}()

	if err := run(); err != nil {
		if isInterrupt(err) {
			return err
		}
		return l.reportUncaught(&UncaughtError{Value: err})
	}
	return nil
}

func (l *Logger) reportUncaught(ue *UncaughtError) error {
	var errs []error
	if err := l.Error(fmt.Sprintf("Uncaught exception: %v", ue.Value)); err != nil {
		errs = append(errs, err)
	}
	trace := l.write(
		Record{Tag: ErrorLevel.Tag, Message: ue.trace(), Color: ErrorLevel.Color},
		writeOptions{console: true, toFile: true, forceFile: true, end: "\n"},
	)
	if trace != nil {
		errs = append(errs, trace)
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ue}, errs...)...)
	}
	return ue
}

// trace renders the value and, for panics, the goroutine stack.
func (e *UncaughtError) trace() string {
	if e.Panicked {
		return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("error: %v", e.Value)
}
