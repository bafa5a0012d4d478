package services

import "errors"

// Common service-level errors
var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrUnknownClass  = errors.New("class not found")
	ErrInvalidNoteID = errors.New("invalid note id")
)
