package question

import "fmt"

// SyntaxError reports where a question file stopped matching the grammar.
type SyntaxError struct {
	Offset int
	Line   int
	Column int
	Reason string
}

// Error returns a readable message with the failing position.
func (err *SyntaxError) Error() string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("syntax error at line %d, column %d: %s", err.Line, err.Column, err.Reason)
}

// FileAccessError indicates the question file could not be read.
type FileAccessError struct {
	Path string
	Err  error
}

// Error returns a readable message naming the file.
func (err *FileAccessError) Error() string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("read question file %q: %v", err.Path, err.Err)
}

// Unwrap exposes the underlying filesystem error.
func (err *FileAccessError) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.Err
}
