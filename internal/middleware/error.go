package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gestione-turni/internal/domain"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	errorCode := "INTERNAL_ERROR"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
		errorCode = codeName(code)
	} else if status, ok := domainStatus(err); ok {
		code = status
		message = err.Error()
		errorCode = codeName(status)
	}

	traceID := uuid.New().String()[:8]

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode,
		Message: message,
		TraceID: traceID,
	})
}

// domainStatus maps the domain sentinels to HTTP statuses so handlers can
// return service errors as-is.
func domainStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, domain.ErrShiftNotFound),
		errors.Is(err, domain.ErrWorkerNotFound),
		errors.Is(err, domain.ErrMachineNotFound),
		errors.Is(err, domain.ErrDepartmentNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		return fiber.StatusNotFound, true
	case errors.Is(err, domain.ErrShiftConflict),
		errors.Is(err, domain.ErrSwapAlreadyPending),
		errors.Is(err, domain.ErrSwapAlreadyResolved):
		return fiber.StatusConflict, true
	case errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrInvalidNotification),
		errors.Is(err, domain.ErrInvalidDecision):
		return fiber.StatusBadRequest, true
	}
	return 0, false
}

func codeName(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	}
	return "INTERNAL_ERROR"
}

func NewError(code int, message string) *fiber.Error {
	return fiber.NewError(code, message)
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func Conflict(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusConflict, message)
}
