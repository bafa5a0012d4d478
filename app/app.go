package app

import (
	"class-notes/config"
	"class-notes/services"
	"class-notes/validator"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Notes     *services.NoteService
	Roster    *config.Roster
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(notes *services.NoteService, roster *config.Roster, v *validator.Validator, logger *slog.Logger) *App {
	return &App{
		Notes:     notes,
		Roster:    roster,
		Validator: v,
		Logger:    logger,
	}
}
