package cli

import (
	"io"
	"os"

	"flashquiz/internal/console"
	"flashquiz/internal/quiz"
)

// newLineReader returns the answer reader for a resolved input mode.
func newLineReader(mode console.Mode, in io.Reader, out io.Writer, prompt string) quiz.LineReader {
	switch mode {
	case console.ModeLine:
		if file, ok := in.(*os.File); ok {
			return console.NewTermReader(file, out, prompt)
		}
	case console.ModeTUI:
		return console.NewTUIReader(in, out, prompt)
	}
	return console.NewPlainReader(in, out, prompt)
}
