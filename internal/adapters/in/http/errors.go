package http

import (
	"errors"
	"net/http"

	"canteen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps a use-case error onto the JSON error envelope.
// Validation and transition errors are recoverable and carry their message to
// the caller for display; anything unrecognized is a storage-level failure
// and stays opaque.
func respondError(ctx echo.Context, err error) error {
	status := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

// respondInvalidID rejects a request whose path identifier is not a UUID.
func respondInvalidID(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "invalid identifier",
	})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrTokenSpaceExhausted):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
