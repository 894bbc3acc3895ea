package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// PlainReader prompts on out and reads whole lines from in.
type PlainReader struct {
	reader  *bufio.Reader
	out     io.Writer
	prompt  string
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewPlainReader creates a reader for non-interactive or dumb terminals.
func NewPlainReader(in io.Reader, out io.Writer, prompt string) *PlainReader {
	return &PlainReader{reader: bufio.NewReader(in), out: out, prompt: prompt}
}

// ReadLine shows the prompt and returns the next line without its terminator.
// A final line without a terminator is returned before io.EOF is reported.
// When ctx ends first the blocked read is left pending and reused by the next
// call.
func (r *PlainReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(r.out, r.prompt); err != nil {
		return "", err
	}
	if r.pending == nil {
		pending := make(chan lineResult, 1)
		r.pending = pending
		go func() {
			line, err := ReadBufferedLine(r.reader)
			pending <- lineResult{line: line, err: err}
		}()
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-r.pending:
		r.pending = nil
		if result.err == io.EOF && result.line != "" {
			return result.line, nil
		}
		return result.line, result.err
	}
}

// ReadBufferedLine reads a line from the reader, trimming line endings. A final
// line without a terminator is returned together with io.EOF.
func ReadBufferedLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
