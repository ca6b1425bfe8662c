package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders one kind of CLI text. With colors it paints the text;
// without, it wraps the text in open and close so the meaning survives.
type Formatter struct {
	color *color.Color
	open  string
	close string
}

func newFormatter(open, close string, attrs ...color.Attribute) Formatter {
	return Formatter{color: color.New(attrs...), open: open, close: close}
}

// Sprint renders the arguments as fmt.Sprint would.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf renders a format string as fmt.Sprintf would.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if plainOutput() {
		return f.open + text + f.close
	}
	return f.color.Sprint(text)
}

// EnsureNewline appends a newline unless s already ends with one.
func EnsureNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s
	}
	return s + "\n"
}

// plainOutput reports whether colors are off, either through NO_COLOR
// (https://no-color.org/) or fatih/color's own terminal detection.
func plainOutput() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return true
	}
	return color.NoColor
}

var (
	// Code marks commands to run, such as toyrsa keygen. Plain: `backticks`.
	Code = newFormatter("`", "`", color.FgYellow)

	// Path marks key and config file locations.
	Path = newFormatter("", "", color.FgYellow)

	// Flag marks flag names such as --force.
	Flag = newFormatter("", "", color.FgYellow)

	// Success marks ✓ and the verified round trip.
	Success = newFormatter("", "", color.FgGreen)

	// Error marks ✗ and a failed round trip.
	Error = newFormatter("", "", color.FgRed)

	// Warning marks rejected prompt answers.
	Warning = newFormatter("", "", color.FgYellow)

	// Info marks → hints.
	Info = newFormatter("", "", color.FgCyan)

	// Muted marks secondary details like key IDs. Plain: (parentheses).
	Muted = newFormatter("(", ")", color.FgHiBlack)

	// Value marks derived numbers: n, phi, e, d, c and mm.
	Value = newFormatter("", "", color.FgMagenta, color.Bold)
)
