package http

import (
	"errors"
	"net/http"
	"time"

	"fornello/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the structured error body every failing request receives.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Code      int       `json:"code"`
	Status    string    `json:"status"`
	Messages  []string  `json:"messages"`
}

func newErrorResponse(code int, messages ...string) ErrorResponse {
	return ErrorResponse{
		Timestamp: time.Now().UTC(),
		Code:      code,
		Status:    http.StatusText(code),
		Messages:  messages,
	}
}

// statusForError maps the error taxonomy onto HTTP status codes. Anything
// outside the taxonomy is treated as an internal failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as an ErrorResponse with the mapped status code.
// Internal failures never leak their message to the caller.
func writeError(ctx echo.Context, err error) error {
	code := statusForError(err)
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		return ctx.JSON(code, newErrorResponse(code, "internal server error"))
	}
	return ctx.JSON(code, newErrorResponse(code, err.Error()))
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, message))
}

func writeUnauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, newErrorResponse(http.StatusUnauthorized, message))
}

func writeForbidden(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusForbidden, newErrorResponse(http.StatusForbidden, message))
}
