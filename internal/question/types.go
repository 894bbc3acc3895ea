package question

// Question is a single true/false prompt parsed from a question file.
type Question struct {
	Text   string `json:"question" yaml:"question"`
	Answer bool   `json:"answer" yaml:"answer"`
}

// Section groups questions under the title line that introduced them.
type Section struct {
	Title     string     `json:"title" yaml:"title"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Document is the parsed content of a whole question file.
type Document struct {
	Sections []Section `json:"sections" yaml:"sections"`
}

// Count returns the number of questions across all sections.
func (doc Document) Count() int {
	total := 0
	for _, section := range doc.Sections {
		total += len(section.Questions)
	}
	return total
}

// Questions flattens all sections into one slice in document order.
func (doc Document) Questions() []Question {
	flat := make([]Question, 0, doc.Count())
	for _, section := range doc.Sections {
		flat = append(flat, section.Questions...)
	}
	return flat
}
