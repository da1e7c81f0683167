// Package term holds the ANSI colour state shared by logging and display.
//
// [Configure] sets the colour variables once at startup. When colours are
// off every variable is the empty string, so concatenating them is a no-op.
package term

import (
	"os"
	"strings"

	"github.com/backmassage/fileinfo/internal/config"
)

// ANSI colour codes. Empty when colours are disabled.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	Bold    = ""
	NC      = "" // Reset sequence.
)

// Configure resolves mode against stdout and sets the colour variables.
func Configure(mode config.ColorMode) {
	set(Resolve(mode, os.Stdout))
}

func set(on bool) {
	if !on {
		Red, Green, Yellow, Blue, Cyan, Magenta, Bold, NC = "", "", "", "", "", "", "", ""
		return
	}
	Red = "\033[1;91m"
	Green = "\033[1;92m"
	Yellow = "\033[1;93m"
	Blue = "\033[1;94m"
	Cyan = "\033[1;96m"
	Magenta = "\033[1;95m"
	Bold = "\033[1m"
	NC = "\033[0m"
}

// Enabled reports whether ANSI colours are currently active.
func Enabled() bool { return NC != "" }

// Paint wraps s in color and a reset. It returns s unchanged when colours
// are off.
func Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + NC
}

// Resolve reports whether colours should be used for f. Auto mode needs a
// TTY, an unset NO_COLOR (https://no-color.org) and a TERM other than dumb.
func Resolve(mode config.ColorMode, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return IsTerminal(f) &&
		os.Getenv("NO_COLOR") == "" &&
		strings.ToLower(os.Getenv("TERM")) != "dumb"
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
