package services

import (
	"class-notes/export"
	"class-notes/models"
)

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	AddNote(className string, fields map[string]string) (int64, error)
	ListNotesByClass(className string) ([]models.Note, error)
	GetNote(id int64) (*models.Note, error)
	UpdateNote(id int64, className string, fields map[string]string) error
	DeleteNote(id int64) error
	CountNotesByClass() (map[string]int, error)
}

// DocumentExporter renders the notes of a class to a file
// Interface for testability - production uses export.Exporter
type DocumentExporter interface {
	Export(className string, notes []models.Note, format export.Format) (*export.Result, error)
}
