package httpserver

import (
	"movielib/errs"

	"github.com/labstack/echo/v4"
)

const unexpectedErrorMessage = "Something went wrong"

type ErrorResponse struct {
	Errors []ErrorEntry `json:"errors"`
}

type ErrorEntry struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type NotFoundResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// writeList writes items as a bare JSON array, never null.
func writeList[T any](c echo.Context, status int, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.JSON(status, items)
}

func newErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Errors: []ErrorEntry{{Message: message}}}
}

// appErrorResponse renders one entry per field error, or the error message
// alone when there are none.
func appErrorResponse(err error) ErrorResponse {
	fields := errs.ErrorFields(err)
	if len(fields) == 0 {
		return newErrorResponse(errs.ErrorMessage(err))
	}

	entries := make([]ErrorEntry, 0, len(fields))
	for _, f := range fields {
		entries = append(entries, ErrorEntry{Message: f.Message, Field: f.Field})
	}
	return ErrorResponse{Errors: entries}
}

func notFoundResponse() NotFoundResponse {
	return NotFoundResponse{Error: "Not Found"}
}
