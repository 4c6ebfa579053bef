package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/store"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorHandler maps the domain error taxonomy onto HTTP statuses. Handlers
// return store errors as-is; this is the single place they become wire
// responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	errorCode := "INTERNAL_ERROR"

	var permErr *domain.PermissionError
	var notFoundErr *domain.NotFoundError
	var persistErr *domain.PersistenceError
	var validationErr *domain.ValidationError
	var fiberErr *fiber.Error

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated), errors.Is(err, store.ErrInvalidCredentials):
		code = fiber.StatusUnauthorized
		errorCode = "UNAUTHORIZED"
	case errors.As(err, &permErr):
		code = fiber.StatusForbidden
		errorCode = "PERMISSION_DENIED"
	case errors.As(err, &notFoundErr):
		code = fiber.StatusNotFound
		errorCode = "NOT_FOUND"
	case errors.As(err, &validationErr):
		code = fiber.StatusUnprocessableEntity
		errorCode = "VALIDATION_ERROR"
	case errors.As(err, &persistErr):
		code = fiber.StatusBadGateway
		errorCode = "PERSISTENCE_ERROR"
	case errors.Is(err, store.ErrEmailExists):
		code = fiber.StatusConflict
		errorCode = "CONFLICT"
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		errorCode = "BAD_REQUEST"
	}

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode,
		Message: err.Error(),
	})
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}
