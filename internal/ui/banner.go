package ui

import (
	"fmt"
	"strings"

	"github.com/common-nighthawk/go-figure"
)

// Banner renders text as ASCII art in the given figlet font, coloured like
// Success when colors are enabled. Unknown fonts return an error instead of
// panicking.
func Banner(text, font string) (banner string, err error) {
	defer func() {
		if r := recover(); r != nil {
			banner = ""
			err = fmt.Errorf("rendering banner with font %q: %v", font, r)
		}
	}()

	art := figure.NewFigure(text, font, false).String()
	art = strings.TrimRight(art, "\n")
	if plainOutput() {
		return EnsureNewline(art), nil
	}
	return EnsureNewline(Success.color.Sprint(art)), nil
}
