package export

import (
	"class-notes/models"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat accepts "docx" or "pdf" in any case
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatDOCX:
		return FormatDOCX, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// ContentType is the MIME type served for a format
func (f Format) ContentType() string {
	switch f {
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Result describes a written export file
type Result struct {
	Path   string `json:"path"`
	Format Format `json:"format"`

	// FallbackFont is set when the PDF could not use the Unicode font and was
	// rendered with a Latin-only core font. Characters outside cp1252 are lost.
	FallbackFont bool `json:"fallback_font"`
}

// Renderer writes a Document to a file
type Renderer interface {
	Render(doc Document, path string) (fallbackFont bool, err error)
}

// Config controls where exports go and how PDFs are rendered
type Config struct {
	Dir          string
	FontPath     string
	Uncompressed bool
}

// Exporter turns the notes of a class into a document file
type Exporter struct {
	dir       string
	schema    models.Schema
	renderers map[Format]Renderer
}

func New(cfg Config, schema models.Schema) *Exporter {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}

	return &Exporter{
		dir:    dir,
		schema: schema,
		renderers: map[Format]Renderer{
			FormatDOCX: &DocxRenderer{},
			FormatPDF:  &PDFRenderer{FontPath: cfg.FontPath, Compress: !cfg.Uncompressed},
		},
	}
}

// FileName is the deterministic export name for a class. Path separators are replaced
// so the file always lands in the export directory.
func FileName(className string, format Format) string {
	safe := strings.NewReplacer("/", "_", "\\", "_").Replace(className)
	return fmt.Sprintf("%s_notes.%s", safe, format)
}

// Export renders the notes and writes them to "{class}_notes.{ext}", replacing any
// previous export of the same class and format.
func (e *Exporter) Export(className string, notes []models.Note, format Format) (*Result, error) {
	renderer, ok := e.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(e.dir, FileName(className, format))
	doc := BuildDocument(className, e.schema, notes)

	fallback, err := renderer.Render(doc, path)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}

	return &Result{Path: path, Format: format, FallbackFont: fallback}, nil
}
