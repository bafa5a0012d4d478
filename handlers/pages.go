package handlers

import (
	"class-notes/app"
	"class-notes/services"
	"class-notes/templates/pages"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HomePage renders the page without a selected class
func HomePage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return renderPage(c, a, "")
	}
}

// ClassPage renders the notes of one class
func ClassPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return renderPage(c, a, classParam(c))
	}
}

func renderPage(c *fiber.Ctx, a *app.App, className string) error {
	classes, err := a.Notes.Classes()
	if err != nil {
		return serverErrorWithDetails(c, "Failed to fetch classes", err)
	}

	page := pages.Page{
		School:  a.Roster.School,
		Classes: classes,
		Schema:  a.Notes.Schema(),
		Current: className,
		Today:   time.Now().Format("2006-01-02"),
		Flash:   c.Query("flash"),
		Error:   c.Query("error"),
	}

	if className != "" {
		notes, err := a.Notes.List(className)
		if errors.Is(err, services.ErrUnknownClass) {
			return c.Status(fiber.StatusNotFound).SendString("Class not found")
		}
		if err != nil {
			return serviceError(c, "Failed to fetch notes", err)
		}
		page.Notes = notes

		if editID, err := strconv.ParseInt(c.Query("edit"), 10, 64); err == nil {
			if note, err := a.Notes.Get(editID); err == nil && note.ClassName == className {
				page.Editing = note
			}
		}
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return pages.Index(page).Render(c.Context(), c.Response().BodyWriter())
}

// formFields collects the schema's fields from a submitted form
func formFields(c *fiber.Ctx, a *app.App) map[string]string {
	fields := make(map[string]string)
	for _, name := range a.Notes.Schema().FieldNames() {
		fields[name] = c.FormValue(name)
	}
	return fields
}

func redirectToClass(c *fiber.Ctx, className, key, message string) error {
	target := pages.ClassPath(className)
	if message != "" {
		target += "?" + key + "=" + url.QueryEscape(message)
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

// SubmitNoteForm handles the add form
func SubmitNoteForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		className := classParam(c)

		if _, err := a.Notes.Add(className, formFields(c, a)); err != nil {
			return formError(c, className, err)
		}

		return redirectToClass(c, className, "flash", fmt.Sprintf("Note added for %s", className))
	}
}

// SubmitUpdateForm handles the edit form
func SubmitUpdateForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		className := classParam(c)
		id := noteIDParam(c)
		if id == 0 {
			return redirectToClass(c, className, "error", "invalid note id")
		}

		if err := a.Notes.Update(id, className, formFields(c, a)); err != nil {
			return formError(c, className, err)
		}

		return redirectToClass(c, className, "flash", "Note updated!")
	}
}

// SubmitDeleteForm handles the delete button
func SubmitDeleteForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		className := classParam(c)
		id := noteIDParam(c)
		if id == 0 {
			return redirectToClass(c, className, "error", "invalid note id")
		}

		if err := a.Notes.Delete(id); err != nil {
			return formError(c, className, err)
		}

		return redirectToClass(c, className, "flash", "Note deleted!")
	}
}

// formError sends expected failures back to the page and lets the error handler log the rest
func formError(c *fiber.Ctx, className string, err error) error {
	switch {
	case errors.Is(err, services.ErrUnknownClass):
		return c.Status(fiber.StatusNotFound).SendString("Class not found")
	case isClientError(err):
		return redirectToClass(c, className, "error", err.Error())
	default:
		return err
	}
}
