package setup

import (
	"class-notes/app"
	"class-notes/config"
	"class-notes/database"
	"class-notes/export"
	"class-notes/services"
	"class-notes/validator"
	"log/slog"
)

// InitDatabase opens the SQLite database once for the whole process and creates the
// notes table for the configured schema
func InitDatabase(cfg *config.Config, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(cfg.NoteSchema()); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", cfg.DBPath, "schema", cfg.Schema, "table", cfg.NoteSchema().Table)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, cfg *config.Config, logger *slog.Logger) (*app.App, error) {
	roster, err := config.LoadRoster(cfg.ClassesFile)
	if err != nil {
		return nil, err
	}
	logger.Info("class roster loaded", "school", roster.School, "classes", len(roster.Classes))

	schema := cfg.NoteSchema()
	repo := database.NewRepository(db, schema)
	exporter := export.New(export.Config{Dir: cfg.ExportDir, FontPath: cfg.FontPath}, schema)
	v := validator.New()

	notes := services.NewNoteService(repo, exporter, v, schema, roster.Classes, logger)

	return app.New(notes, roster, v, logger), nil
}

// Shutdown releases the database handle
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
