package export

import "github.com/gingfrederik/docx"

const (
	docxTitleSize   = 20
	docxHeadingSize = 14
)

// DocxRenderer writes Word documents. DOCX text is always Unicode, so it never falls back.
type DocxRenderer struct{}

func (r *DocxRenderer) Render(doc Document, path string) (bool, error) {
	f := docx.NewFile()

	f.AddParagraph().AddText(doc.Title).Size(docxTitleSize)

	for _, section := range doc.Sections {
		f.AddParagraph().AddText(section.Heading).Size(docxHeadingSize)
		for _, block := range section.Blocks {
			for _, line := range block.Text() {
				f.AddParagraph().AddText(line)
			}
		}
		f.AddParagraph().AddText(Separator).Color("808080")
	}

	return false, f.Save(path)
}
