package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// TestWrapBreaksAtWhitespace verifies wrapping keeps every word intact.
func TestWrapBreaksAtWhitespace(t *testing.T) {
	text := "Is the mitochondria commonly described as the powerhouse of the cell in introductory biology textbooks around the world?"
	wrapped := Wrap(text, DefaultWidth)
	if !strings.Contains(wrapped, "\n") {
		t.Fatalf("expected wrapped output, got %q", wrapped)
	}
	for _, line := range strings.Split(wrapped, "\n") {
		if width := ansi.StringWidth(strings.TrimRight(line, " ")); width > DefaultWidth {
			t.Fatalf("line %q exceeds %d cells", line, DefaultWidth)
		}
	}
	if strings.Join(strings.Fields(wrapped), " ") != strings.Join(strings.Fields(text), " ") {
		t.Fatalf("wrapping changed the words: %q", wrapped)
	}
}

// TestWrapShortText verifies short text is left untouched.
func TestWrapShortText(t *testing.T) {
	if got := Wrap("Dogs are mammals?", DefaultWidth); got != "Dogs are mammals?" {
		t.Fatalf("unexpected wrap %q", got)
	}
	if got := Wrap("a b c", 0); got != "a b c" {
		t.Fatalf("expected no wrap for width 0, got %q", got)
	}
}

// TestStylesDisabled verifies plain styles return text unchanged.
func TestStylesDisabled(t *testing.T) {
	styles := NewStyles(&bytes.Buffer{}, false)
	if styles.Enabled() {
		t.Fatalf("expected styling disabled for a buffer")
	}
	for _, render := range []func(string) string{styles.Question, styles.Correct, styles.Wrong} {
		if got := render("line one\nline two"); got != "line one\nline two" {
			t.Fatalf("unexpected render %q", got)
		}
	}
}

// TestStylesEnabledKeepText verifies styled output keeps text and lines.
func TestStylesEnabledKeepText(t *testing.T) {
	original := IsTerminal
	t.Cleanup(func() { IsTerminal = original })
	IsTerminal = func(any) bool { return true }
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("CLICOLOR", "")

	styles := NewStyles(&bytes.Buffer{}, false)
	if !styles.Enabled() {
		t.Fatalf("expected styling enabled")
	}
	got := styles.Question("short\na much longer line")
	if ansi.Strip(got) != "short\na much longer line" {
		t.Fatalf("styling changed the text: %q", ansi.Strip(got))
	}
	if disabled := NewStyles(&bytes.Buffer{}, true); disabled.Enabled() {
		t.Fatalf("expected noColor to disable styling")
	}
}
