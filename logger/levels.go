package logger

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Color is a raw ANSI SGR escape sequence prepended to console lines.
type Color string

// Reset clears any color set by a previous sequence.
const Reset Color = "\033[0m"

// Palette used by the built-in levels.
const (
	Green     Color = "\033[92m"
	Yellow    Color = "\033[93m"
	Red       Color = "\033[91m"
	Blue      Color = "\033[94m"
	Cyan      Color = "\033[96m"
	Magenta   Color = "\033[95m"
	White     Color = "\033[97m"
	Bold      Color = "\033[1m"
	Underline Color = "\033[4m"
)

// ColorOf builds a Color from fatih/color attributes, e.g.
// ColorOf(color.Bold, color.FgHiMagenta).
func ColorOf(attrs ...color.Attribute) Color {
	if len(attrs) == 0 {
		return ""
	}
	codes := make([]string, len(attrs))
	for i, a := range attrs {
		codes[i] = strconv.Itoa(int(a))
	}
	return Color("\033[" + strings.Join(codes, ";") + "m")
}

// Level describes one of the fixed severities.
type Level struct {
	// Name is the canonical upper-case name, e.g. "WARNING".
	Name string
	// Tag is the bracketed display tag written in front of every line, e.g. "[WARN]".
	Tag string
	// Color is the default console color for the level.
	Color Color
	// DefaultEnabled is the flag used by DefaultConfig.
	DefaultEnabled bool
}

// Built-in levels.
var (
	InfoLevel     = Level{Name: "INFO", Tag: "[INFO]", Color: Cyan, DefaultEnabled: true}
	WarningLevel  = Level{Name: "WARNING", Tag: "[WARN]", Color: Yellow, DefaultEnabled: true}
	ErrorLevel    = Level{Name: "ERROR", Tag: "[ERROR]", Color: Red, DefaultEnabled: true}
	DebugLevel    = Level{Name: "DEBUG", Tag: "[DEBUG]", Color: Magenta, DefaultEnabled: false}
	SuccessLevel  = Level{Name: "SUCCESS", Tag: "[SUCCESS]", Color: Green, DefaultEnabled: true}
	FailureLevel  = Level{Name: "FAILURE", Tag: "[FAILURE]", Color: Red, DefaultEnabled: true}
	CriticalLevel = Level{Name: "CRITICAL", Tag: "[CRITICAL]", Color: Bold + Red, DefaultEnabled: true}
	// CustomLevel is never part of the default enabled map; gating for custom
	// messages uses the caller-supplied tag.
	CustomLevel = Level{Name: "CUSTOM", Tag: "[CUSTOM]", Color: Blue, DefaultEnabled: true}
)

// Levels returns all built-in levels in display order.
func Levels() []Level {
	return []Level{
		InfoLevel,
		WarningLevel,
		ErrorLevel,
		DebugLevel,
		SuccessLevel,
		FailureLevel,
		CriticalLevel,
		CustomLevel,
	}
}

// LevelByName finds a built-in level by name or tag, case-insensitively.
// "WARN" and "CRIT" are accepted as short names.
func LevelByName(s string) (Level, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	switch key {
	case "WARN":
		key = WarningLevel.Name
	case "CRIT":
		key = CriticalLevel.Name
	}
	for _, l := range Levels() {
		if key == l.Name || key == l.Tag {
			return l, true
		}
	}
	return Level{}, false
}

// displayTag turns an exact built-in level name ("INFO", "WARNING") into its
// tag. Anything else is returned unchanged.
func displayTag(tag string) string {
	for _, l := range Levels() {
		if tag == l.Name {
			return l.Tag
		}
	}
	return tag
}

// DefaultLevels returns a fresh copy of the default enabled map, keyed by tag.
// CUSTOM is deliberately absent.
func DefaultLevels() map[string]bool {
	m := make(map[string]bool, 7)
	for _, l := range Levels() {
		if l.Name == CustomLevel.Name {
			continue
		}
		m[l.Tag] = l.DefaultEnabled
	}
	return m
}
