package services

import (
	"class-notes/export"
	"class-notes/models"
	"class-notes/validator"
	"log/slog"
)

// NoteService handles business logic for notes. The repository stores whatever it is
// given; the roster and field checks live here.
type NoteService struct {
	repo      NoteRepository
	exporter  DocumentExporter
	validator *validator.Validator
	schema    models.Schema
	classes   []string
	logger    *slog.Logger
}

// NewNoteService creates a new note service. An empty class list accepts any valid class name.
func NewNoteService(repo NoteRepository, exporter DocumentExporter, v *validator.Validator, schema models.Schema, classes []string, logger *slog.Logger) *NoteService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoteService{
		repo:      repo,
		exporter:  exporter,
		validator: v,
		schema:    schema,
		classes:   classes,
		logger:    logger,
	}
}

// Schema returns the note layout in use
func (ns *NoteService) Schema() models.Schema {
	return ns.schema
}

// Classes returns the roster with note counts, in roster order
func (ns *NoteService) Classes() ([]models.ClassSummary, error) {
	counts, err := ns.repo.CountNotesByClass()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ClassSummary, 0, len(ns.classes))
	for _, name := range ns.classes {
		summaries = append(summaries, models.ClassSummary{Name: name, Count: counts[name]})
	}

	return summaries, nil
}

// checkClass rejects malformed class names and, when a roster is configured, unknown ones
func (ns *NoteService) checkClass(className string) error {
	if err := ns.validator.ValidateClassName(className); err != nil {
		return err
	}
	if len(ns.classes) == 0 {
		return nil
	}
	for _, name := range ns.classes {
		if name == className {
			return nil
		}
	}
	return ErrUnknownClass
}

// Add validates and stores a new note
func (ns *NoteService) Add(className string, fields map[string]string) (*models.Note, error) {
	if err := ns.checkClass(className); err != nil {
		return nil, err
	}
	if err := ns.validator.ValidateFields(ns.schema, fields); err != nil {
		return nil, err
	}

	id, err := ns.repo.AddNote(className, fields)
	if err != nil {
		return nil, err
	}

	note := &models.Note{ID: id, ClassName: className, Fields: make(map[string]string, len(ns.schema.Fields))}
	for _, name := range ns.schema.FieldNames() {
		note.Fields[name] = fields[name]
	}

	ns.logger.Info("note added", "class", className, "id", id)
	return note, nil
}

// List retrieves every note of a class
func (ns *NoteService) List(className string) ([]models.Note, error) {
	if err := ns.checkClass(className); err != nil {
		return nil, err
	}
	return ns.repo.ListNotesByClass(className)
}

// Get retrieves a single note
func (ns *NoteService) Get(id int64) (*models.Note, error) {
	if id < 1 {
		return nil, ErrInvalidNoteID
	}

	note, err := ns.repo.GetNote(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	return note, nil
}

// Update overwrites a note's fields. className is optional and only honoured by layouts
// that let notes move between classes. Unknown IDs are a silent no-op.
func (ns *NoteService) Update(id int64, className string, fields map[string]string) error {
	if id < 1 {
		return ErrInvalidNoteID
	}
	if className != "" {
		if err := ns.checkClass(className); err != nil {
			return err
		}
	}
	if err := ns.validator.ValidateFields(ns.schema, fields); err != nil {
		return err
	}

	if err := ns.repo.UpdateNote(id, className, fields); err != nil {
		return err
	}

	ns.logger.Info("note updated", "id", id)
	return nil
}

// Delete removes a note permanently. Unknown IDs are a silent no-op.
func (ns *NoteService) Delete(id int64) error {
	if id < 1 {
		return ErrInvalidNoteID
	}

	if err := ns.repo.DeleteNote(id); err != nil {
		return err
	}

	ns.logger.Info("note deleted", "id", id)
	return nil
}

// Export writes every note of a class to a document. An empty format uses the schema default.
func (ns *NoteService) Export(className, format string) (*export.Result, error) {
	if format == "" {
		format = ns.schema.ExportFormat
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	notes, err := ns.List(className)
	if err != nil {
		return nil, err
	}

	result, err := ns.exporter.Export(className, notes, f)
	if err != nil {
		return nil, err
	}

	if result.FallbackFont {
		ns.logger.Warn("export rendered with fallback font, non-Latin characters may be lost",
			"class", className,
			"path", result.Path,
		)
	}
	ns.logger.Info("notes exported", "class", className, "format", f, "notes", len(notes), "path", result.Path)

	return result, nil
}
