//go:build cucumber

package question

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestQuestionFileScenarios runs the question file feature scenarios.
func TestQuestionFileScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "question_file.feature")
	suite := godog.TestSuite{
		Name:                "question-file",
		ScenarioInitializer: InitializeQuestionFileScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeQuestionFileScenario wires steps for parsing scenarios.
func InitializeQuestionFileScenario(ctx *godog.ScenarioContext) {
	state := &questionFileState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*state = questionFileState{}
		return ctx, nil
	})

	ctx.Step(`^a question file:$`, state.givenQuestionFile)
	ctx.Step(`^I parse the question file$`, state.whenParse)
	ctx.Step(`^parsing succeeds with (\d+) sections and (\d+) questions$`, state.thenParsed)
	ctx.Step(`^section (\d+) is titled "([^"]*)" with (\d+) questions$`, state.thenSection)
	ctx.Step(`^question (\d+) of section (\d+) reads "([^"]*)" and is (true|false)$`, state.thenQuestion)
	ctx.Step(`^parsing fails at line (\d+) column (\d+)$`, state.thenFails)
	ctx.Step(`^the canonical form is:$`, state.thenCanonical)
}

type questionFileState struct {
	content string
	doc     Document
	err     error
}

func (s *questionFileState) givenQuestionFile(doc *godog.DocString) error {
	s.content = doc.Content
	return nil
}

func (s *questionFileState) whenParse() error {
	s.doc, s.err = Parse(s.content)
	return nil
}

func (s *questionFileState) thenParsed(sections, questions int) error {
	if s.err != nil {
		return fmt.Errorf("unexpected parse error: %w", s.err)
	}
	if len(s.doc.Sections) != sections || s.doc.Count() != questions {
		return fmt.Errorf("expected %d sections and %d questions, got %d and %d",
			sections, questions, len(s.doc.Sections), s.doc.Count())
	}
	return nil
}

func (s *questionFileState) section(index int) (Section, error) {
	if index < 1 || index > len(s.doc.Sections) {
		return Section{}, fmt.Errorf("no section %d in %d sections", index, len(s.doc.Sections))
	}
	return s.doc.Sections[index-1], nil
}

func (s *questionFileState) thenSection(index int, title string, questions int) error {
	section, err := s.section(index)
	if err != nil {
		return err
	}
	if section.Title != title || len(section.Questions) != questions {
		return fmt.Errorf("expected %q with %d questions, got %q with %d", title, questions, section.Title, len(section.Questions))
	}
	return nil
}

func (s *questionFileState) thenQuestion(index, sectionIndex int, text, answer string) error {
	section, err := s.section(sectionIndex)
	if err != nil {
		return err
	}
	if index < 1 || index > len(section.Questions) {
		return fmt.Errorf("no question %d in section %d", index, sectionIndex)
	}
	got := section.Questions[index-1]
	want := Question{Text: text, Answer: answer == "true"}
	if got != want {
		return fmt.Errorf("expected %+v, got %+v", want, got)
	}
	return nil
}

func (s *questionFileState) thenFails(line, column int) error {
	var syntaxErr *SyntaxError
	if !errors.As(s.err, &syntaxErr) {
		return fmt.Errorf("expected syntax error, got %v", s.err)
	}
	if syntaxErr.Line != line || syntaxErr.Column != column {
		return fmt.Errorf("expected line %d column %d, got %d %d", line, column, syntaxErr.Line, syntaxErr.Column)
	}
	return nil
}

func (s *questionFileState) thenCanonical(doc *godog.DocString) error {
	if s.err != nil {
		return fmt.Errorf("unexpected parse error: %w", s.err)
	}
	want := strings.TrimRight(doc.Content, "\n") + "\n"
	if got := Format(s.doc); got != want {
		return fmt.Errorf("expected canonical form %q, got %q", want, got)
	}
	return nil
}
