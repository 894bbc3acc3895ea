package console

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// TermReader reads answers with the line editor from golang.org/x/term.
// The terminal is switched to raw mode only while a line is being read, so
// regular output between reads needs no translation. Ctrl-D on an empty line
// and Ctrl-C end the input.
type TermReader struct {
	fd       int
	terminal *term.Terminal
	makeRaw  func(fd int) (*term.State, error)
	restore  func(fd int, state *term.State) error
	getSize  func(fd int) (width, height int, err error)
}

// NewTermReader creates a line editor on the TTY behind in.
func NewTermReader(in *os.File, out io.Writer, prompt string) *TermReader {
	return newTermReader(int(in.Fd()), in, out, prompt)
}

func newTermReader(fd int, in io.Reader, out io.Writer, prompt string) *TermReader {
	screen := struct {
		io.Reader
		io.Writer
	}{in, out}
	return &TermReader{
		fd:       fd,
		terminal: term.NewTerminal(screen, prompt),
		makeRaw:  term.MakeRaw,
		restore:  term.Restore,
		getSize:  term.GetSize,
	}
}

// ReadLine returns the next edited line.
func (r *TermReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	state, err := r.makeRaw(r.fd)
	if err != nil {
		return "", fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() {
		_ = r.restore(r.fd, state)
	}()
	if width, height, err := r.getSize(r.fd); err == nil {
		_ = r.terminal.SetSize(width, height)
	}
	return r.terminal.ReadLine()
}
