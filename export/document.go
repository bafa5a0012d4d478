package export

import (
	"class-notes/models"
	"fmt"
	"strings"
)

// Separator closes every note section
var Separator = strings.Repeat("-", 50)

// Block is one labelled content field of a note
type Block struct {
	Label string
	Lines []string
}

// Section holds everything rendered for a single note
type Section struct {
	Heading string
	Blocks  []Block
}

// Document is the format-neutral layout shared by every renderer
type Document struct {
	Title    string
	Sections []Section
}

// BuildDocument lays out the notes of a class in the order given
func BuildDocument(className string, schema models.Schema, notes []models.Note) Document {
	doc := Document{
		Title:    fmt.Sprintf("%s Notes", className),
		Sections: make([]Section, 0, len(notes)),
	}

	for _, note := range notes {
		section := Section{Heading: fmt.Sprintf("Note ID: %d", note.ID)}
		for _, field := range schema.Fields {
			section.Blocks = append(section.Blocks, Block{
				Label: field.Label,
				Lines: splitLines(note.Get(field.Name)),
			})
		}
		doc.Sections = append(doc.Sections, section)
	}

	return doc
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

// Text returns the block as "Label: first line" followed by any remaining lines
func (b Block) Text() []string {
	lines := make([]string, len(b.Lines))
	copy(lines, b.Lines)
	if len(lines) > 0 {
		lines[0] = b.Label + ": " + lines[0]
	}
	return lines
}
