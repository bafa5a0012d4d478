package models

// Note is one row of the notes table. Content columns vary by Schema and live in Fields.
type Note struct {
	ID        int64             `json:"id"`
	ClassName string            `json:"class_name"`
	Fields    map[string]string `json:"fields"`
}

// Get returns the value of a content field, or "" if the note doesn't carry it
func (n Note) Get(field string) string {
	return n.Fields[field]
}

// ClassSummary is a roster entry with the number of notes stored for it
type ClassSummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CreateNoteRequest struct {
	Fields map[string]string `json:"fields" validate:"required"`
}

type UpdateNoteRequest struct {
	ClassName string            `json:"class_name" validate:"omitempty,max=100,classname"`
	Fields    map[string]string `json:"fields" validate:"required"`
}
