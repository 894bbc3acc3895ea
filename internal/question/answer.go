package question

import "strings"

// InterpretAnswer reports whether free-form user input means "true".
//
// Any input containing a lowercase "w" or "y" counts as true, so "why" and
// "swallow" are true while "no", "N" and "" are false.
func InterpretAnswer(input string) bool {
	return strings.ContainsAny(input, "wy")
}
