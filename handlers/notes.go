package handlers

import (
	"class-notes/app"
	"class-notes/models"

	"github.com/gofiber/fiber/v2"
)

// GetClasses returns the class roster with note counts
func GetClasses(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		classes, err := a.Notes.Classes()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch classes", err)
		}

		return success(c, fiber.Map{"classes": classes, "schema": a.Notes.Schema().Name})
	}
}

// GetNotesByClass retrieves all notes of a class
func GetNotesByClass(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		className := classParam(c)

		notes, err := a.Notes.List(className)
		if err != nil {
			return serviceError(c, "Failed to fetch notes", err)
		}

		return success(c, fiber.Map{"class": className, "notes": notes})
	}
}

// CreateNote adds a note to a class
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.Notes.Add(classParam(c), req.Fields)
		if err != nil {
			return serviceError(c, "Failed to save note", err)
		}

		return created(c, fiber.Map{"note": note})
	}
}

// GetNote retrieves a single note by ID
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := noteIDParam(c)
		if id == 0 {
			return badRequest(c, "invalid note id")
		}

		note, err := a.Notes.Get(id)
		if err != nil {
			return serviceError(c, "Failed to fetch note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// UpdateNote overwrites a note's fields
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := noteIDParam(c)
		if id == 0 {
			return badRequest(c, "invalid note id")
		}

		var req models.UpdateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if err := a.Notes.Update(id, req.ClassName, req.Fields); err != nil {
			return serviceError(c, "Failed to update note", err)
		}

		return success(c, fiber.Map{"message": "Note updated successfully"})
	}
}

// DeleteNote removes a note permanently
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := noteIDParam(c)
		if id == 0 {
			return badRequest(c, "invalid note id")
		}

		if err := a.Notes.Delete(id); err != nil {
			return serviceError(c, "Failed to delete note", err)
		}

		return success(c, fiber.Map{"message": "Note deleted successfully"})
	}
}
