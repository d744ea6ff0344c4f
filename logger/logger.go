package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Dependency injection point for testing console output.
var outStdout io.Writer = os.Stdout

// Logger writes gated, formatted records to the console and optionally to a
// rotating log file. It is safe for concurrent use within one process.
type Logger struct {
	mu       sync.Mutex
	cfg      Config
	out      io.Writer
	colorize bool
	now      func() time.Time
	fmt      *formatter
}

// Option customizes a Logger at construction.
type Option func(*Logger)

// WithOutput sends console lines to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) { l.out = w }
}

// WithColor toggles ANSI colors on console lines. File lines are never colored.
// Default: true
func WithColor(on bool) Option {
	return func(l *Logger) { l.colorize = on }
}

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// WithLayout replaces DefaultLayout. It panics if layout has an unterminated
// placeholder.
func WithLayout(layout string) Option {
	return func(l *Logger) { l.fmt = mustFormatter(layout) }
}

// New builds a Logger around a private copy of cfg.
func New(cfg Config, opts ...Option) *Logger {
	l := &Logger{
		cfg:      cfg.clone(),
		out:      outStdout,
		colorize: true,
		now:      timeNow,
		fmt:      defaultFormatter,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Config returns a copy of the configuration the Logger was built with.
func (l *Logger) Config() Config {
	return l.cfg.clone()
}

// Enabled reports whether tag passes gating.
func (l *Logger) Enabled(tag string) bool {
	return l.cfg.Enabled(tag)
}

// WriteOption adjusts a single logging call.
type WriteOption func(*writeOptions)

type writeOptions struct {
	console bool
	toFile  bool
	// forceFile writes to the file even when the tag is gated off.
	forceFile bool
	end       string
}

func newWriteOptions(opts []WriteOption) writeOptions {
	o := writeOptions{console: true, end: "\n"}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ToFile also appends the uncolored line to the configured log file.
func ToFile() WriteOption {
	return func(o *writeOptions) { o.toFile = true }
}

// NoConsole suppresses console output for the call.
func NoConsole() WriteOption {
	return func(o *writeOptions) { o.console = false }
}

// LineEnd replaces the "\n" written after a console line. Use "\r" or "" to
// overwrite the line in place.
func LineEnd(end string) WriteOption {
	return func(o *writeOptions) { o.end = end }
}

// Log writes msg under level's tag and color.
func (l *Logger) Log(level Level, msg string, opts ...WriteOption) error {
	return l.Message(msg, level.Tag, level.Color, opts...)
}

// Message writes msg with an arbitrary tag and color. An empty color means White.
func (l *Logger) Message(msg, tag string, c Color, opts ...WriteOption) error {
	if c == "" {
		c = White
	}
	return l.write(Record{Tag: displayTag(tag), Message: msg, Color: c}, newWriteOptions(opts))
}

// Custom writes msg with a caller-chosen tag and color, defaulting to
// "[CUSTOM]" in blue. Gating looks up the caller's tag.
func (l *Logger) Custom(msg, tag string, c Color, opts ...WriteOption) error {
	if tag == "" {
		tag = CustomLevel.Tag
	}
	if c == "" {
		c = CustomLevel.Color
	}
	return l.Message(msg, tag, c, opts...)
}

// Info logs msg at INFO.
func (l *Logger) Info(msg string, opts ...WriteOption) error { return l.Log(InfoLevel, msg, opts...) }

// Warning logs msg at WARNING.
func (l *Logger) Warning(msg string, opts ...WriteOption) error {
	return l.Log(WarningLevel, msg, opts...)
}

// Error logs msg at ERROR.
func (l *Logger) Error(msg string, opts ...WriteOption) error {
	return l.Log(ErrorLevel, msg, opts...)
}

// Debug logs msg at DEBUG, which is disabled by default.
func (l *Logger) Debug(msg string, opts ...WriteOption) error {
	return l.Log(DebugLevel, msg, opts...)
}

// Success logs msg at SUCCESS.
func (l *Logger) Success(msg string, opts ...WriteOption) error {
	return l.Log(SuccessLevel, msg, opts...)
}

// Failure logs msg at FAILURE.
func (l *Logger) Failure(msg string, opts ...WriteOption) error {
	return l.Log(FailureLevel, msg, opts...)
}

// Critical logs msg at CRITICAL.
func (l *Logger) Critical(msg string, opts ...WriteOption) error {
	return l.Log(CriticalLevel, msg, opts...)
}

// --- Formatted variants (console only) ---

// Infof logs a console-only INFO message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) error {
	return l.Log(InfoLevel, fmt.Sprintf(format, v...))
}

// Warningf logs a console-only WARNING message formatted with fmt.Sprintf.
func (l *Logger) Warningf(format string, v ...any) error {
	return l.Log(WarningLevel, fmt.Sprintf(format, v...))
}

// Errorf logs a console-only ERROR message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) error {
	return l.Log(ErrorLevel, fmt.Sprintf(format, v...))
}

// Debugf logs a console-only DEBUG message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) error {
	return l.Log(DebugLevel, fmt.Sprintf(format, v...))
}

// Successf logs a console-only SUCCESS message formatted with fmt.Sprintf.
func (l *Logger) Successf(format string, v ...any) error {
	return l.Log(SuccessLevel, fmt.Sprintf(format, v...))
}

// Failuref logs a console-only FAILURE message formatted with fmt.Sprintf.
func (l *Logger) Failuref(format string, v ...any) error {
	return l.Log(FailureLevel, fmt.Sprintf(format, v...))
}

// Criticalf logs a console-only CRITICAL message formatted with fmt.Sprintf.
func (l *Logger) Criticalf(format string, v ...any) error {
	return l.Log(CriticalLevel, fmt.Sprintf(format, v...))
}

// write is the single path into both sinks. Gating is shared: a disabled tag
// produces neither console nor file output unless forceFile is set, which only
// reopens the file sink.
func (l *Logger) write(r Record, o writeOptions) error {
	enabled := l.cfg.Enabled(r.Tag)
	if !enabled && !o.forceFile {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	r.Time = l.now()

	var errs []error
	if enabled && o.console {
		line := l.fmt.plain(r)
		if l.colorize {
			line = l.fmt.colored(r)
		}
		if _, err := io.WriteString(l.out, line+o.end); err != nil {
			errs = append(errs, err)
		}
	}
	if o.toFile && (enabled || o.forceFile) {
		if err := l.appendLine(l.fmt.plain(r)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// clearSequence homes the cursor and clears the screen.
const clearSequence = "\033[H\033[2J"

// ClearTerminal clears the console and logs "Terminal cleared" at INFO in green.
func (l *Logger) ClearTerminal() error {
	l.mu.Lock()
	_, err := io.WriteString(l.out, clearSequence)
	l.mu.Unlock()
	if err != nil {
		return err
	}
	return l.Message("Terminal cleared", InfoLevel.Tag, Green)
}
