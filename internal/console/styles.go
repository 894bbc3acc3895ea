package console

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles renders quiz output with optional ANSI styling.
type Styles struct {
	enabled  bool
	question lipgloss.Style
	correct  lipgloss.Style
	wrong    lipgloss.Style
}

// NewStyles selects styles for out; styling is off when noColor is set or out
// cannot display it.
func NewStyles(out io.Writer, noColor bool) Styles {
	if noColor || !ShouldUseStyling(out) {
		return Styles{}
	}
	renderer := lipgloss.NewRenderer(out)
	return Styles{
		enabled:  true,
		question: renderer.NewStyle().Bold(true),
		correct:  renderer.NewStyle().Foreground(lipgloss.Color("42")),
		wrong:    renderer.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Enabled reports whether styling sequences are emitted.
func (s Styles) Enabled() bool {
	return s.enabled
}

// Question renders question text in bold.
func (s Styles) Question(text string) string {
	return s.render(s.question, text)
}

// Correct renders a success verdict.
func (s Styles) Correct(text string) string {
	return s.render(s.correct, text)
}

// Wrong renders a failure verdict.
func (s Styles) Wrong(text string) string {
	return s.render(s.wrong, text)
}

// render styles each line on its own so lipgloss does not pad lines to a
// common width.
func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
