package models

// Field is one content column of a notes table
type Field struct {
	Name      string // column name and JSON key
	Label     string // human label used by forms and exports
	Rules     string // validator tag applied before writes
	Multiline bool
}

// Schema is one layout of the class record: which table it lives in, which content
// columns it carries and how lists and updates behave.
type Schema struct {
	Name    string
	Table   string
	Fields  []Field
	OrderBy string

	// ClassMutable allows an update to move a note to another class
	ClassMutable bool

	// ExportFormat is used when an export doesn't name one
	ExportFormat string
}

var (
	// DatedSchema stores a free-text note and the day it was written.
	DatedSchema = Schema{
		Name:  "dated",
		Table: "class_notes",
		Fields: []Field{
			{Name: "note", Label: "Note", Rules: "required,max=20000", Multiline: true},
			{Name: "date", Label: "Date", Rules: "required,dateformat"},
		},
		OrderBy:      "date DESC",
		ClassMutable: true,
		ExportFormat: "docx",
	}

	// TitledSchema stores a titled note without a date.
	TitledSchema = Schema{
		Name:  "titled",
		Table: "notes",
		Fields: []Field{
			{Name: "title", Label: "Title", Rules: "required,max=200"},
			{Name: "content", Label: "Content", Rules: "required,max=20000", Multiline: true},
		},
		OrderBy:      "id ASC",
		ExportFormat: "pdf",
	}
)

// SchemaByName resolves a schema from configuration
func SchemaByName(name string) (Schema, bool) {
	switch name {
	case DatedSchema.Name:
		return DatedSchema, true
	case TitledSchema.Name:
		return TitledSchema, true
	default:
		return Schema{}, false
	}
}

// Field looks up a content field by column name
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldNames returns the content column names in declaration order
func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}
