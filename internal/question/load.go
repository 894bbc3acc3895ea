package question

import (
	"fmt"
	"os"
)

// LoadFile reads and parses a question file.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, &FileAccessError{Path: path, Err: err}
	}
	doc, err := Parse(string(data))
	if err != nil {
		return Document{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}
