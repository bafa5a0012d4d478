package setup

import (
	"class-notes/app"
	"class-notes/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	// Pages
	fiberApp.Get("/", handlers.HomePage(application))
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	fiberApp.Get("/classes/:class", handlers.ClassPage(application))
	fiberApp.Post("/classes/:class/notes", handlers.SubmitNoteForm(application))
	fiberApp.Post("/classes/:class/notes/:id", handlers.SubmitUpdateForm(application))
	fiberApp.Post("/classes/:class/notes/:id/delete", handlers.SubmitDeleteForm(application))

	// JSON API
	api := fiberApp.Group("/api")
	api.Get("/classes", handlers.GetClasses(application))
	api.Get("/classes/:class/notes", handlers.GetNotesByClass(application))
	api.Post("/classes/:class/notes", handlers.CreateNote(application))
	api.Get("/classes/:class/export", handlers.ExportNotes(application))
	api.Get("/notes/:id", handlers.GetNote(application))
	api.Put("/notes/:id", handlers.UpdateNote(application))
	api.Delete("/notes/:id", handlers.DeleteNote(application))
}
