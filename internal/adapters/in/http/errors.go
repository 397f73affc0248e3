package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"littlelemon/internal/generated/servers"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every failed request as {"message": "..."}. Errors that do
// not belong to the errs taxonomy are logged and reported as a bare 500.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := classify(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, servers.Message{Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", writeErr)
		}
	}
}

func classify(err error) (int, string) {
	var (
		httpErr   *echo.HTTPError
		forbidden *errs.ForbiddenError
	)
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, "Invalid token."
	case errors.As(err, &forbidden):
		return http.StatusForbidden, forbidden.Reason
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "Not found."
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, describe(err)
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

// describe turns validation errors, joined or not, into a client-facing sentence.
// A cause carries the user-facing text; without one the parameter is named.
func describe(err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		parts := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			if msg := describe(e); msg != "" {
				parts = append(parts, msg)
			}
		}
		return strings.Join(parts, " ")
	}

	var (
		required   *errs.ValueIsRequiredError
		invalid    *errs.ValueIsInvalidError
		outOfRange *errs.ValueIsOutOfRangeError
	)
	switch {
	case errors.As(err, &required):
		if required.Cause != nil {
			return required.Cause.Error()
		}
		return fmt.Sprintf("The %s field is required.", required.ParamName)
	case errors.As(err, &invalid):
		if invalid.Cause != nil {
			return invalid.Cause.Error()
		}
		return fmt.Sprintf("Invalid %s.", invalid.ParamName)
	case errors.As(err, &outOfRange):
		if outOfRange.Cause != nil {
			return outOfRange.Cause.Error()
		}
		return fmt.Sprintf("The %s must be between %v and %v.", outOfRange.ParamName, outOfRange.Min, outOfRange.Max)
	default:
		return err.Error()
	}
}
