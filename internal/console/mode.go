package console

import (
	"fmt"
	"io"
	"strings"
)

// Mode selects how answers are read from the user.
type Mode string

const (
	// ModeAuto picks ModeLine on a TTY and ModePlain otherwise.
	ModeAuto Mode = "auto"
	// ModeLine uses the line editor from golang.org/x/term.
	ModeLine Mode = "line"
	// ModePlain reads buffered lines without editing support.
	ModePlain Mode = "plain"
	// ModeTUI runs a Bubble Tea text input for every answer.
	ModeTUI Mode = "tui"
)

// ModeDecision captures the resolved input mode and any fallback warning.
type ModeDecision struct {
	Mode    Mode
	Warning string
}

// ParseMode normalizes a mode name; empty means ModeAuto.
func ParseMode(value string) (Mode, error) {
	normalized := Mode(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return ModeAuto, nil
	}
	switch normalized {
	case ModeAuto, ModeLine, ModePlain, ModeTUI:
		return normalized, nil
	default:
		return "", fmt.Errorf("invalid ui mode %q (expected auto|line|plain|tui)", value)
	}
}

// ResolveMode determines the concrete input mode for the given streams.
func ResolveMode(value string, in io.Reader, out io.Writer) (ModeDecision, error) {
	mode, err := ParseMode(value)
	if err != nil {
		return ModeDecision{}, err
	}
	interactive := IsTerminal(in) && IsTerminal(out)
	switch mode {
	case ModeAuto:
		if interactive {
			return ModeDecision{Mode: ModeLine}, nil
		}
		return ModeDecision{Mode: ModePlain}, nil
	case ModeLine, ModeTUI:
		if interactive {
			return ModeDecision{Mode: mode}, nil
		}
		return ModeDecision{
			Mode:    ModePlain,
			Warning: fmt.Sprintf("%s input requested but stdin/stdout is not a TTY; falling back to plain input.", mode),
		}, nil
	default:
		return ModeDecision{Mode: ModePlain}, nil
	}
}
