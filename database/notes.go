package database

import (
	"class-notes/models"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ==================== NOTE OPERATIONS ====================

// AddNote inserts a note and returns its storage-assigned ID
func (r *Repository) AddNote(className string, fields map[string]string) (int64, error) {
	names := r.schema.FieldNames()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)+1), ", ")

	query := fmt.Sprintf(
		"INSERT INTO %s (class_name, %s) VALUES (%s)",
		r.schema.Table, strings.Join(names, ", "), placeholders,
	)

	args := append([]any{className}, r.fieldArgs(fields)...)
	res, err := r.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read note id: %w", err)
	}

	return id, nil
}

// ListNotesByClass retrieves every note of a class in the schema's order
func (r *Repository) ListNotesByClass(className string) ([]models.Note, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE class_name = ?", r.selectColumns(), r.schema.Table)
	if r.schema.OrderBy != "" {
		query += " ORDER BY " + r.schema.OrderBy
	}

	rows, err := r.db.Query(query, className)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := r.scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, *note)
	}

	return notes, rows.Err()
}

// GetNote retrieves a single note. A missing note yields nil without an error.
func (r *Repository) GetNote(id int64) (*models.Note, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", r.selectColumns(), r.schema.Table)

	note, err := r.scanNote(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	return note, nil
}

// UpdateNote overwrites every content field of a note. When the schema allows it and
// className is set, the note is moved to that class too. Unknown IDs are ignored.
func (r *Repository) UpdateNote(id int64, className string, fields map[string]string) error {
	var sets []string
	var args []any

	if r.schema.ClassMutable && className != "" {
		sets = append(sets, "class_name = ?")
		args = append(args, className)
	}
	for _, name := range r.schema.FieldNames() {
		sets = append(sets, name+" = ?")
	}
	args = append(args, r.fieldArgs(fields)...)
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", r.schema.Table, strings.Join(sets, ", "))
	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("update note: %w", err)
	}

	return nil
}

// DeleteNote permanently removes a note. Unknown IDs are ignored.
func (r *Repository) DeleteNote(id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", r.schema.Table)
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// CountNotesByClass returns the number of notes stored per class
func (r *Repository) CountNotesByClass() (map[string]int, error) {
	query := fmt.Sprintf("SELECT class_name, COUNT(*) FROM %s GROUP BY class_name", r.schema.Table)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("count notes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var className string
		var count int
		if err := rows.Scan(&className, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[className] = count
	}

	return counts, rows.Err()
}
