package console

import "github.com/charmbracelet/x/ansi"

// DefaultWidth is the column at which question text is wrapped.
const DefaultWidth = 60

// Wrap breaks text into lines of at most width cells at word boundaries.
// Words longer than width are kept whole.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wordwrap(text, width, "")
}
