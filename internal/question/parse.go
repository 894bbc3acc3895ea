package question

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	markerTrue  = 'w'
	markerFalse = 'f'

	horizontalSpace = " \t"
)

// sourceLine is one input line with its terminator removed.
type sourceLine struct {
	text   string
	offset int
	number int
}

// Parse converts the content of a question file into a Document.
//
// A section is a title line followed by question lines up to the next blank
// line or the end of input. Blank lines and leading horizontal whitespace
// between sections are skipped. Every non-blank line after a title must be a
// question line of the form "<w|f><spaces or tabs><text>"; anything else fails
// the whole document with a *SyntaxError.
func Parse(content string) (Document, error) {
	lines := splitLines(content)
	doc := Document{Sections: []Section{}}
	for i := 0; i < len(lines); {
		if isBlank(lines[i].text) {
			i++
			continue
		}
		if err := checkCarriageReturn(lines[i]); err != nil {
			return Document{}, err
		}
		section := Section{
			Title:     strings.TrimLeft(lines[i].text, horizontalSpace),
			Questions: []Question{},
		}
		for i++; i < len(lines) && !isBlank(lines[i].text); i++ {
			item, err := parseQuestionLine(lines[i])
			if err != nil {
				return Document{}, err
			}
			section.Questions = append(section.Questions, item)
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc, nil
}

func parseQuestionLine(line sourceLine) (Question, error) {
	if err := checkCarriageReturn(line); err != nil {
		return Question{}, err
	}
	marker := line.text[0]
	if marker != markerTrue && marker != markerFalse {
		found, _ := utf8.DecodeRuneInString(line.text)
		return Question{}, syntaxErrorAt(line, 0, fmt.Sprintf("expected answer marker %q or %q, found %q", markerTrue, markerFalse, found))
	}
	rest := line.text[1:]
	text := strings.TrimLeft(rest, horizontalSpace)
	if len(text) == len(rest) {
		return Question{}, syntaxErrorAt(line, 1, "expected space or tab after answer marker")
	}
	return Question{Text: text, Answer: answerFor(marker)}, nil
}

// checkCarriageReturn rejects a '\r' left inside a line once its terminator
// has been removed.
func checkCarriageReturn(line sourceLine) error {
	if index := strings.IndexByte(line.text, '\r'); index >= 0 {
		return syntaxErrorAt(line, index, "unexpected carriage return inside line")
	}
	return nil
}

// answerFor maps an already matched marker to its answer.
func answerFor(marker byte) bool {
	return marker == markerTrue
}

func splitLines(content string) []sourceLine {
	var lines []sourceLine
	offset := 0
	for number := 1; offset < len(content); number++ {
		end := strings.IndexByte(content[offset:], '\n')
		if end == -1 {
			end = len(content) - offset
		}
		lines = append(lines, sourceLine{
			text:   strings.TrimSuffix(content[offset:offset+end], "\r"),
			offset: offset,
			number: number,
		})
		offset += end + 1
	}
	return lines
}

func isBlank(text string) bool {
	return strings.Trim(text, horizontalSpace+"\r") == ""
}

func syntaxErrorAt(line sourceLine, index int, reason string) *SyntaxError {
	return &SyntaxError{
		Offset: line.offset + index,
		Line:   line.number,
		Column: index + 1,
		Reason: reason,
	}
}
