// Package ui renders toyrsa's terminal output.
//
// Each Formatter stands for one kind of text rather than one color:
//
//	ui.Value.Sprint(kp.D())                   // derived numbers
//	ui.Success.Sprint("OK WORKING EXAMPLE")   // verified round trip
//	ui.Error.Sprint("✗") + " " + err.Error()  // failures
//	ui.Info.Sprint("→") + " Use " + ui.Flag.Sprint("--force")
//	ui.Code.Sprint("toyrsa keygen --out key.toml")
//
// Colors follow fatih/color's terminal detection and are switched off by
// NO_COLOR. Without colors only Code (backticks) and Muted (parentheses)
// change the text.
//
// Banner draws the demo title with go-figure.
package ui
