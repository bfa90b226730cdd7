package handler

import (
	"github.com/gofiber/fiber/v2"
)

// failurePayload is the uniform failure body: {"success":false,"message":...}.
// Client mistakes and store faults share the same shape and status, matching
// the dashboard contract.
type failurePayload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// writeFailure writes the failure envelope without leaking internal errors.
// The message is a safe, human-readable description of the failed operation.
func writeFailure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(failurePayload{
		Success: false,
		Message: message,
	})
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses into the failure envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusNotFound:
			return writeFailure(c, status, "Route not found.")
		case fiber.StatusMethodNotAllowed:
			return writeFailure(c, status, "Method not allowed.")
		default:
			return writeFailure(c, status, "Internal server error.")
		}
	}
}
