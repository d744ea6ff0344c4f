package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	colorHeader = color.New(color.Bold, color.FgHiCyan).SprintFunc()
	colorKey    = color.New(color.Bold).SprintFunc()
	colorFaint  = color.New(color.Faint).SprintFunc()
	colorWarn   = color.New(color.FgYellow).SprintFunc()
)

// output prints the plain (non-log) parts of the showcase: banners, menus
// and prompts.
type output struct {
	w io.Writer
}

func (o output) Plain(format string, args ...interface{}) {
	fmt.Fprintf(o.w, format+"\n", args...)
}

// Banner prints "==== title ====".
func (o output) Banner(title string) {
	fmt.Fprintln(o.w, colorHeader("==== "+title+" ===="))
}

// Rule prints a faint separator as wide as the widest banner.
func (o output) Rule(width int) {
	fmt.Fprintln(o.w, colorFaint(strings.Repeat("=", width)))
}

func (o output) KeyValue(key, value string) {
	fmt.Fprintf(o.w, "  %-20s %s\n", colorKey(key+":"), value)
}

func (o output) Warn(format string, args ...interface{}) {
	fmt.Fprintln(o.w, colorWarn(fmt.Sprintf(format, args...)))
}
