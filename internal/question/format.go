package question

import "strings"

// Format renders a Document in its canonical textual form.
//
// Each section is its title followed by one "<marker> <text>" line per
// question; sections are separated by a single blank line.
func Format(doc Document) string {
	var builder strings.Builder
	for i, section := range doc.Sections {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(section.Title)
		builder.WriteString("\n")
		for _, item := range section.Questions {
			builder.WriteByte(markerFor(item.Answer))
			builder.WriteString(" ")
			builder.WriteString(item.Text)
			builder.WriteString("\n")
		}
	}
	return builder.String()
}

func markerFor(answer bool) byte {
	if answer {
		return markerTrue
	}
	return markerFalse
}
