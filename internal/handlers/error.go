package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hjnengare/sayso-server/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is the custom error handler for Fiber. Responses carry the
// generic message only; the underlying error is logged, never returned.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= fiber.StatusInternalServerError {
		logger.GetLogger("http").Errorw("request failed",
			"method", c.Method(), "path", c.Path(), "status", code, "error", err)
	}

	return c.Status(code).JSON(ErrorResponse{
		Error: message,
	})
}
