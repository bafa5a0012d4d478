package export

import (
	"archive/zip"
	"class-notes/models"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func class3Notes() []models.Note {
	return []models.Note{
		{ID: 1, ClassName: "Class 3", Fields: map[string]string{"title": "Algebra", "content": "Quadratics"}},
		{ID: 2, ClassName: "Class 3", Fields: map[string]string{"title": "Geometry", "content": "Angles\nTriangles"}},
	}
}

func readDocxBody(t *testing.T, path string) string {
	t.Helper()

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}

	t.Fatalf("word/document.xml not found in %s", path)
	return ""
}

func TestBuildDocument(t *testing.T) {
	doc := BuildDocument("Class 3", models.TitledSchema, class3Notes())

	assert.Equal(t, "Class 3 Notes", doc.Title)
	require.Len(t, doc.Sections, 2)

	first := doc.Sections[0]
	assert.Equal(t, "Note ID: 1", first.Heading)
	require.Len(t, first.Blocks, 2)
	assert.Equal(t, []string{"Title: Algebra"}, first.Blocks[0].Text())
	assert.Equal(t, []string{"Content: Quadratics"}, first.Blocks[1].Text())

	second := doc.Sections[1]
	assert.Equal(t, []string{"Content: Angles", "Triangles"}, second.Blocks[1].Text())
}

func TestBuildDocument_DatedLayout(t *testing.T) {
	notes := []models.Note{
		{ID: 7, ClassName: "Class 1", Fields: map[string]string{"note": "Bring crayons", "date": "2024-09-01"}},
	}

	doc := BuildDocument("Class 1", models.DatedSchema, notes)

	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Note ID: 7", doc.Sections[0].Heading)
	assert.Equal(t, []string{"Note: Bring crayons"}, doc.Sections[0].Blocks[0].Text())
	assert.Equal(t, []string{"Date: 2024-09-01"}, doc.Sections[0].Blocks[1].Text())
}

func TestBuildDocument_NoNotes(t *testing.T) {
	doc := BuildDocument("Class 9", models.TitledSchema, nil)
	assert.Equal(t, "Class 9 Notes", doc.Title)
	assert.Empty(t, doc.Sections)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Class 3_notes.docx", FileName("Class 3", FormatDOCX))
	assert.Equal(t, "Teacher's Application_notes.pdf", FileName("Teacher's Application", FormatPDF))
	assert.Equal(t, ".._x_notes.pdf", FileName("../x", FormatPDF))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat(" docx ")
	require.NoError(t, err)
	assert.Equal(t, FormatDOCX, f)

	_, err = ParseFormat("odt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExport_Docx(t *testing.T) {
	dir := t.TempDir()
	exporter := New(Config{Dir: dir}, models.TitledSchema)

	result, err := exporter.Export("Class 3", class3Notes(), FormatDOCX)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Class 3_notes.docx"), result.Path)
	assert.Equal(t, FormatDOCX, result.Format)
	assert.False(t, result.FallbackFont)

	body := readDocxBody(t, result.Path)
	assert.Contains(t, body, "Class 3")
	assert.Contains(t, body, "Algebra")
	assert.Contains(t, body, "Quadratics")
	assert.Contains(t, body, "Note ID: 2")
}

func TestExport_OverwritesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	exporter := New(Config{Dir: dir}, models.TitledSchema)

	_, err := exporter.Export("Class 3", class3Notes(), FormatDOCX)
	require.NoError(t, err)

	result, err := exporter.Export("Class 3", class3Notes()[:1], FormatDOCX)
	require.NoError(t, err)

	body := readDocxBody(t, result.Path)
	assert.Contains(t, body, "Algebra")
	assert.NotContains(t, body, "Geometry")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExport_PDFFallsBackWithoutFont(t *testing.T) {
	dir := t.TempDir()
	exporter := New(Config{
		Dir:          dir,
		FontPath:     filepath.Join(dir, "missing.ttf"),
		Uncompressed: true,
	}, models.TitledSchema)

	result, err := exporter.Export("Class 3", class3Notes(), FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Class 3_notes.pdf"), result.Path)
	assert.True(t, result.FallbackFont)

	data, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	body := string(data)
	assert.Contains(t, body, "%PDF")
	assert.Contains(t, body, "Class 3")
	assert.Contains(t, body, "Algebra")
	assert.Contains(t, body, "Quadratics")
}

// systemFont returns an absolute path to a Unicode TTF, skipping when none is installed
func systemFont(t *testing.T) string {
	t.Helper()

	candidates := []string{
		os.Getenv("FONT_PATH"),
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/Library/Fonts/Arial Unicode.ttf",
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err == nil {
			return abs
		}
	}

	t.Skip("no Unicode TTF font installed")
	return ""
}

func TestExport_PDFWithAbsoluteFontPath(t *testing.T) {
	fontPath := systemFont(t)
	require.True(t, filepath.IsAbs(fontPath))

	dir := t.TempDir()
	exporter := New(Config{Dir: dir, FontPath: fontPath}, models.TitledSchema)

	notes := []models.Note{
		{ID: 1, ClassName: "Класс 3", Fields: map[string]string{"title": "Алгебра", "content": "Квадратные уравнения"}},
	}
	result, err := exporter.Export("Класс 3", notes, FormatPDF)
	require.NoError(t, err)

	assert.False(t, result.FallbackFont)
	assert.Equal(t, filepath.Join(dir, "Класс 3_notes.pdf"), result.Path)

	data, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExport_PDFWithoutConfiguredFont(t *testing.T) {
	exporter := New(Config{Dir: t.TempDir()}, models.DatedSchema)

	result, err := exporter.Export("Class 1", nil, FormatPDF)
	require.NoError(t, err)
	assert.True(t, result.FallbackFont)

	info, err := os.Stat(result.Path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExport_UnsupportedFormat(t *testing.T) {
	exporter := New(Config{Dir: t.TempDir()}, models.TitledSchema)

	_, err := exporter.Export("Class 3", class3Notes(), Format("odt"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
