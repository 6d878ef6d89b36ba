package httpapi

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// errorHandler maps errors to JSON {"error": ...} responses. Caller
// mistakes are 400, lookups that miss are 404, the rest are logged and
// reported as 500 without detail.
func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		switch {
		case errors.As(err, &fe):
			code = fe.Code
		case domain.IsValidation(err):
			code = fiber.StatusBadRequest
		case errors.Is(err, domain.ErrNotFound):
			code = fiber.StatusNotFound
		}

		msg := err.Error()
		if code >= fiber.StatusInternalServerError {
			log.ErrorContext(c.UserContext(), "request failed",
				"method", c.Method(),
				"path", c.Path(),
				"request_id", c.Locals("requestid"),
				"error", err,
			)
			msg = "internal server error"
		}
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
}

func badRequest(format string, args ...any) error {
	return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(format, args...))
}
