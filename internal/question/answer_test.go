package question

import "testing"

// TestInterpretAnswer verifies the substring rule for true answers.
func TestInterpretAnswer(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{input: "y", want: true},
		{input: "why", want: true},
		{input: "w", want: true},
		{input: "swallow", want: true},
		{input: "wn", want: true},
		{input: "yes", want: true},
		{input: "what", want: true},
		{input: "yo", want: true},
		{input: "no", want: false},
		{input: "false", want: false},
		{input: "", want: false},
		{input: "Y", want: false},
		{input: "W", want: false},
		{input: "  ", want: false},
	}
	for _, tc := range cases {
		if got := InterpretAnswer(tc.input); got != tc.want {
			t.Fatalf("InterpretAnswer(%q): expected %v, got %v", tc.input, tc.want, got)
		}
	}
}
