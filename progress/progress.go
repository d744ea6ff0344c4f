package progress

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Defaults applied when a width or fill is not set.
const (
	DefaultWidth = 50
	DefaultFill  = "█"
)

var (
	// ErrZeroTotal is returned when total is zero or negative.
	ErrZeroTotal = errors.New("progress: total must be positive")
	// ErrOutOfRange is returned when current is outside [0, total].
	ErrOutOfRange = errors.New("progress: current out of range")
)

// Render writes one frame of a progress bar to w:
//
//	\r<prefix> |####-------| 30.0% <suffix>
//
// The frame ends without a newline so the next call overwrites it, except
// when current == total, where a newline finalizes the line.
func Render(w io.Writer, current, total int, prefix, suffix string, width int, fill string) error {
	if total <= 0 {
		return ErrZeroTotal
	}
	if current < 0 || current > total {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, current, total)
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if fill == "" {
		fill = DefaultFill
	}

	percent := 100 * float64(current) / float64(total)
	filled := width * current / total
	bar := strings.Repeat(fill, filled) + strings.Repeat("-", width-filled)

	frame := fmt.Sprintf("\r%s |%s| %.1f%% %s", prefix, bar, percent, suffix)
	if current == total {
		frame += "\n"
	}
	_, err := io.WriteString(w, frame)
	return err
}

// Bar keeps the settings for repeated Render calls.
type Bar struct {
	Out    io.Writer
	Total  int
	Prefix string
	Suffix string
	Width  int
	Fill   string
}

// New returns a Bar writing to stdout with default width and fill.
func New(total int, prefix, suffix string) *Bar {
	return &Bar{
		Out:    os.Stdout,
		Total:  total,
		Prefix: prefix,
		Suffix: suffix,
		Width:  DefaultWidth,
		Fill:   DefaultFill,
	}
}

// Update renders the bar at current.
func (b *Bar) Update(current int) error {
	return Render(b.Out, current, b.Total, b.Prefix, b.Suffix, b.Width, b.Fill)
}

// FitWidth shrinks Width so a full frame fits on the terminal behind fd.
// Width is left unchanged when fd is not a terminal.
func (b *Bar) FitWidth(fd int) {
	if !term.IsTerminal(fd) {
		return
	}
	cols, _, err := term.GetSize(fd)
	if err != nil {
		return
	}
	b.Width = fitWidth(cols, b.Prefix, b.Suffix, b.Width)
}

// fitWidth returns the widest bar not exceeding want that fits in cols.
// The frame adds " |", "| ", "100.0% " and the labels around the bar.
func fitWidth(cols int, prefix, suffix string, want int) int {
	if want <= 0 {
		want = DefaultWidth
	}
	overhead := utf8.RuneCountInString(prefix) + utf8.RuneCountInString(suffix) + len(" || 100.0% ")
	avail := cols - overhead - 1
	if avail < 1 {
		return 1
	}
	if avail < want {
		return avail
	}
	return want
}
