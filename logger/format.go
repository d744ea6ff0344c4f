package logger

import (
	"time"

	"github.com/valyala/fasttemplate"
)

// TimestampLayout is the second-precision local timestamp used in every line.
const TimestampLayout = "2006-01-02 15:04:05"

// DefaultLayout renders "<tag> <time> - <message>". Placeholders are
// {tag}, {time} and {message}.
const DefaultLayout = "{tag} {time} - {message}"

// timeNow is swapped in tests.
var timeNow = time.Now

var defaultFormatter = mustFormatter(DefaultLayout)

// Record is a single message on its way to the sinks.
type Record struct {
	Tag     string
	Message string
	Time    time.Time
	Color   Color
}

type formatter struct {
	tmpl *fasttemplate.Template
}

func newFormatter(layout string) (*formatter, error) {
	t, err := fasttemplate.NewTemplate(layout, "{", "}")
	if err != nil {
		return nil, err
	}
	return &formatter{tmpl: t}, nil
}

func mustFormatter(layout string) *formatter {
	f, err := newFormatter(layout)
	if err != nil {
		panic(err)
	}
	return f
}

// plain renders r without color codes. This is the on-disk form.
func (f *formatter) plain(r Record) string {
	return f.tmpl.ExecuteString(map[string]interface{}{
		"tag":     r.Tag,
		"time":    r.Time.Format(TimestampLayout),
		"message": r.Message,
	})
}

// colored wraps the plain form in r.Color and Reset.
func (f *formatter) colored(r Record) string {
	line := f.plain(r)
	if r.Color == "" {
		return line
	}
	return string(r.Color) + line + string(Reset)
}

// Format returns the console form of a message stamped with the current time:
// <color><tag> <YYYY-MM-DD HH:MM:SS> - <message><reset>.
// A bare built-in level name such as "INFO" is rendered as its tag.
func Format(message, tag string, c Color) string {
	return defaultFormatter.colored(Record{Tag: displayTag(tag), Message: message, Time: timeNow(), Color: c})
}

// FormatPlain returns the file form of a message stamped with the current time:
// <tag> <YYYY-MM-DD HH:MM:SS> - <message>.
func FormatPlain(message, tag string) string {
	return defaultFormatter.plain(Record{Tag: displayTag(tag), Message: message, Time: timeNow()})
}
