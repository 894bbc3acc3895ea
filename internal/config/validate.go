package config

import (
	"fmt"
	"strings"

	"flashquiz/internal/console"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config for correctness.
func Validate(cfg Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if cfg.WrapWidth < MinWrapWidth {
		add("wrap_width", fmt.Sprintf("must be >= %d", MinWrapWidth))
	}
	if strings.ContainsAny(cfg.Prompt, "\r\n") {
		add("prompt", "must be a single line")
	}
	if _, err := console.ParseMode(cfg.UI); err != nil {
		add("ui", fmt.Sprintf("unsupported mode %q (expected auto|line|plain|tui)", cfg.UI))
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
