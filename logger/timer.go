package logger

import (
	"fmt"
	"time"
)

// Timer measures a named block and reports it at DEBUG when stopped.
//
//	t := l.StartTimer("loadLists")
//	defer t.Stop()
type Timer struct {
	l       *Logger
	name    string
	start   time.Time
	elapsed time.Duration
	stopped bool
}

// StartTimer starts a Timer for the block called name.
func (l *Logger) StartTimer(name string) *Timer {
	return &Timer{l: l, name: name, start: l.now()}
}

// Stop logs "Function '<name>' executed in <seconds> seconds." and returns the
// elapsed time. Only the first call logs.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return t.elapsed
	}
	t.stopped = true
	t.elapsed = t.l.now().Sub(t.start)
	_ = t.l.Debug(fmt.Sprintf("Function '%s' executed in %.4f seconds.", t.name, t.elapsed.Seconds()))
	return t.elapsed
}
