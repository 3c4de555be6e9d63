package lib

import (
	"errors"

	"github.com/findit-app/findit-backend/src/logger"
	"github.com/findit-app/findit-backend/src/models"
	"github.com/gofiber/fiber/v2"
)

// AppError is an error that carries the HTTP status it should be answered with.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func BadRequest(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Code: fiber.StatusUnauthorized, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Code: fiber.StatusConflict, Message: message}
}

func Internal(err error) *AppError {
	return &AppError{Code: fiber.StatusInternalServerError, Message: "Internal server error", Err: err}
}

// ErrorHandler turns errors returned by handlers into JSON responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  verr.Errors,
		})
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= fiber.StatusInternalServerError {
			logger.Error().Err(appErr.Err).Str("path", c.Path()).Msg(appErr.Message)
		}
		return c.Status(appErr.Code).JSON(MessageResponse(appErr.Message))
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(MessageResponse(fiberErr.Message))
	}

	logger.Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(MessageResponse("Internal server error"))
}
