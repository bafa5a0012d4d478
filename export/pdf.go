package export

import (
	"os"

	"github.com/go-pdf/fpdf"
)

const (
	unicodeFamily  = "NotesUnicode"
	fallbackFamily = "Helvetica"
)

// PDFRenderer writes A4 PDFs. It prefers the TTF at FontPath and falls back to a
// core Latin font when that can't be loaded.
type PDFRenderer struct {
	FontPath string
	Compress bool
}

func (r *PDFRenderer) Render(doc Document, path string) (bool, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.Compress)
	pdf.SetTitle(doc.Title, true)

	family, tr, fallback := r.loadFont(pdf)

	pdf.AddPage()

	pdf.SetFont(family, "", 20)
	pdf.MultiCell(0, 10, tr(doc.Title), "", "L", false)

	for _, section := range doc.Sections {
		pdf.Ln(4)
		pdf.SetFont(family, "", 14)
		pdf.MultiCell(0, 8, tr(section.Heading), "", "L", false)

		pdf.SetFont(family, "", 11)
		for _, block := range section.Blocks {
			for _, line := range block.Text() {
				pdf.MultiCell(0, 6, tr(line), "", "L", false)
			}
		}
		pdf.MultiCell(0, 6, Separator, "", "L", false)
	}

	return fallback, pdf.OutputFileAndClose(path)
}

// loadFont registers the Unicode font. The TTF is read here rather than through fpdf's
// font directory, which would resolve absolute paths against it. On any failure the
// document error is cleared and Helvetica with a cp1252 translator is used instead.
func (r *PDFRenderer) loadFont(pdf *fpdf.Fpdf) (string, func(string) string, bool) {
	if r.FontPath != "" {
		if data, err := os.ReadFile(r.FontPath); err == nil {
			pdf.AddUTF8FontFromBytes(unicodeFamily, "", data)
			if pdf.Ok() {
				return unicodeFamily, func(s string) string { return s }, false
			}
			pdf.ClearError()
		}
	}

	return fallbackFamily, pdf.UnicodeTranslatorFromDescriptor(""), true
}
