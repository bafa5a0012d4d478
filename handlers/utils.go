package handlers

import (
	"class-notes/export"
	"class-notes/services"
	"class-notes/validator"
	"errors"
	"log/slog"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": verrs,
		})
	}
	return badRequest(c, err.Error())
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// serviceError maps the typed service failures onto HTTP responses
func serviceError(c *fiber.Ctx, message string, err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return validationError(c, err)
	case errors.Is(err, services.ErrNoteNotFound):
		return notFound(c, "Note not found")
	case errors.Is(err, services.ErrUnknownClass):
		return notFound(c, "Class not found")
	case errors.Is(err, services.ErrInvalidNoteID):
		return badRequest(c, "invalid note id")
	case errors.Is(err, export.ErrUnsupportedFormat):
		return badRequest(c, "format must be docx or pdf")
	default:
		return serverErrorWithDetails(c, message, err)
	}
}

// isClientError reports failures caused by the submitted input
func isClientError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs) || errors.Is(err, services.ErrInvalidNoteID)
}

// classParam returns the decoded :class route parameter
func classParam(c *fiber.Ctx) string {
	raw := c.Params("class")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}

// noteIDParam parses the :id route parameter. Zero means it was missing or malformed.
func noteIDParam(c *fiber.Ctx) int64 {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0
	}
	return int64(id)
}
