package display

import "github.com/fatih/color"

var (
	ansiBold      = color.Bold
	ansiUnderline = color.Underline
	ansiRed       = color.FgRed
	ansiYellow    = color.FgYellow
	ansiCyan      = color.FgCyan
)

// ansiHelp styles text with the given attributes. Styling is dropped when
// color output is disabled (NO_COLOR, non-terminal stdout, or SetColor(false)).
func ansiHelp(text string, attrs ...color.Attribute) string {
	return color.New(attrs...).Sprint(text)
}

// SetColor forces styled output on or off for every renderer in this package.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}
