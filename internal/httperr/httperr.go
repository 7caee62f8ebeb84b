// Package httperr centralizes the translation of failures into the
// uniform error bodies the API exposes. Handlers return plain errors;
// everything is converted here, installed as the Fiber error handler.
package httperr

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"productos/internal/repositories"
	"productos/internal/services"
)

// ErrorResponse is the uniform error body for every failure kind except
// field-level validation.
type ErrorResponse struct {
	Timestamp    time.Time `json:"timestamp"`
	HTTPStatus   int       `json:"httpStatus"`
	ErrorMessage string    `json:"errorMessage"`
	Route        string    `json:"route"`
}

// ValidationError carries the per-field messages produced when a request
// body violates its constraints.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// validationResponse is the body for field-level validation failures. Its
// shape differs from ErrorResponse on purpose: clients get a field map
// instead of a single message.
type validationResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Errors    map[string]string `json:"errors"`
	Path      string            `json:"path"`
}

// Handler is the Fiber error handler. Expected failures that already
// carry a status code pass through with that code; anything unrecognized
// becomes an opaque 500 with no internal detail leaked.
func Handler(c *fiber.Ctx, err error) error {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(validationResponse{
			Timestamp: time.Now(),
			Status:    fiber.StatusBadRequest,
			Errors:    validationErr.Fields,
			Path:      c.Path(),
		})
	}

	if errors.Is(err, repositories.ErrProductNotFound) {
		return respond(c, fiber.StatusNotFound, err.Error())
	}

	if errors.Is(err, services.ErrInsufficientStock) {
		return respond(c, fiber.StatusBadRequest, err.Error())
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return respond(c, fiberErr.Code, fiberErr.Message)
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return respond(c, fiber.StatusInternalServerError, "internal server error")
}

func respond(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Timestamp:    time.Now(),
		HTTPStatus:   status,
		ErrorMessage: message,
		Route:        c.Path(),
	})
}
