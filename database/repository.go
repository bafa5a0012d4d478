package database

import (
	"class-notes/models"
	"database/sql"
	"strings"
)

// Repository runs the note statements for one schema. Table and column names come from
// the schema definition, never from callers; values are always bound parameters.
type Repository struct {
	db     *DB
	schema models.Schema
}

func NewRepository(db *DB, schema models.Schema) *Repository {
	return &Repository{db: db, schema: schema}
}

// Schema returns the layout this repository reads and writes
func (r *Repository) Schema() models.Schema {
	return r.schema
}

func (r *Repository) selectColumns() string {
	return "id, class_name, " + strings.Join(r.schema.FieldNames(), ", ")
}

// scanner is satisfied by both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func (r *Repository) scanNote(s scanner) (*models.Note, error) {
	var note models.Note
	values := make([]sql.NullString, len(r.schema.Fields))
	dest := []any{&note.ID, &note.ClassName}
	for i := range values {
		dest = append(dest, &values[i])
	}

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	note.Fields = make(map[string]string, len(values))
	for i, f := range r.schema.Fields {
		note.Fields[f.Name] = values[i].String
	}

	return &note, nil
}

// fieldArgs orders the content values as the schema declares them. Absent keys become "".
func (r *Repository) fieldArgs(fields map[string]string) []any {
	args := make([]any, len(r.schema.Fields))
	for i, f := range r.schema.Fields {
		args[i] = fields[f.Name]
	}
	return args
}
