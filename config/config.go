package config

import (
	"class-notes/models"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DBPath      string
	Schema      string
	ExportDir   string
	FontPath    string
	ClassesFile string
	CORSOrigins string
	LogLevel    string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = FromEnv()

	if err := AppConfig.Validate(); err != nil {
		log.Fatal(err)
	}
}

// FromEnv reads the configuration without validating it
func FromEnv() *Config {
	return &Config{
		Port:        GetEnv("PORT", "3000"),
		Env:         GetEnv("ENV", "development"),
		DBPath:      GetEnv("DB_PATH", "./data/class-notes.db"),
		Schema:      GetEnv("NOTES_SCHEMA", models.DatedSchema.Name),
		ExportDir:   GetEnv("EXPORT_DIR", "."),
		FontPath:    GetEnv("FONT_PATH", "./fonts/DejaVuSans.ttf"),
		ClassesFile: GetEnv("CLASSES_FILE", "./classes.yaml"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
	}
}

func (c *Config) Validate() error {
	if _, ok := models.SchemaByName(c.Schema); !ok {
		return fmt.Errorf("NOTES_SCHEMA must be %q or %q, got %q", models.DatedSchema.Name, models.TitledSchema.Name, c.Schema)
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	return nil
}

// NoteSchema returns the configured note layout
func (c *Config) NoteSchema() models.Schema {
	schema, _ := models.SchemaByName(c.Schema)
	return schema
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
