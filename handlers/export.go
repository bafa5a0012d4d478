package handlers

import (
	"class-notes/app"
	"mime"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

const fallbackFontWarning = "Unicode font unavailable; rendered with a Latin-only font, non-Latin characters may be missing"

// ExportNotes renders every note of a class and sends the file as a download
func ExportNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		className := classParam(c)

		result, err := a.Notes.Export(className, c.Query("format"))
		if err != nil {
			return serviceError(c, "Failed to export notes", err)
		}

		data, err := os.ReadFile(result.Path)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to read exported file", err)
		}

		if result.FallbackFont {
			c.Set("X-Export-Warning", fallbackFontWarning)
		}
		c.Set(fiber.HeaderContentDisposition, attachmentHeader(filepath.Base(result.Path)))
		c.Set(fiber.HeaderContentType, result.Format.ContentType())

		return c.Send(data)
	}
}

// attachmentHeader keeps the file name readable. Non-ASCII names get an RFC 2231 filename*.
func attachmentHeader(name string) string {
	if header := mime.FormatMediaType("attachment", map[string]string{"filename": name}); header != "" {
		return header
	}
	return "attachment"
}
