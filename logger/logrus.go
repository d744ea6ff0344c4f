package logger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogrusHook forwards logrus entries into a Logger, so code that already
// logs through logrus gets the same gating, tags and colors.
//
//	diag := logrus.New()
//	diag.SetOutput(io.Discard)
//	diag.AddHook(logger.NewLogrusHook(l))
type LogrusHook struct {
	logger *Logger
	opts   []WriteOption
}

// NewLogrusHook returns a hook writing through l with the given write options.
func NewLogrusHook(l *Logger, opts ...WriteOption) *LogrusHook {
	return &LogrusHook{logger: l, opts: opts}
}

// Levels implements logrus.Hook.
func (h *LogrusHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (h *LogrusHook) Fire(e *logrus.Entry) error {
	return h.logger.Log(levelForLogrus(e.Level), e.Message+encodeFields(e.Data), h.opts...)
}

// levelForLogrus maps logrus severities onto the built-in levels.
func levelForLogrus(l logrus.Level) Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel:
		return CriticalLevel
	case logrus.ErrorLevel:
		return ErrorLevel
	case logrus.WarnLevel:
		return WarningLevel
	case logrus.InfoLevel:
		return InfoLevel
	default:
		return DebugLevel
	}
}

// encodeFields formats fields as " key=value" pairs sorted by key.
func encodeFields(fields logrus.Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return " " + strings.Join(parts, " ")
}
