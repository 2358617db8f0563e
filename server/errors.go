package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/prior-it/customers/core"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	StatusCode  int       `json:"statusCode"`
	Timestamp   time.Time `json:"timestamp"`
	Message     string    `json:"message"`
	Description string    `json:"description"`
}

// StatusCode maps an error to the HTTP status code it should be reported with.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, core.ErrInvalidRequest), errors.Is(err, core.ErrValidation):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the response body for err. Messages of internal errors are not exposed.
func NewErrorResponse(err error, path string) ErrorResponse {
	code := StatusCode(err)
	response := ErrorResponse{
		StatusCode:  code,
		Timestamp:   time.Now(),
		Message:     http.StatusText(code),
		Description: "uri=" + path,
	}
	if code == http.StatusInternalServerError {
		return response
	}

	var coreErr *core.Error
	if errors.As(err, &coreErr) {
		response.Message = coreErr.Message
		if coreErr.Detail != "" {
			response.Description = coreErr.Detail
		}
	}
	return response
}

func DefaultErrorHandler(ex *Exchange, err error) {
	response := NewErrorResponse(err, ex.Path())
	if response.StatusCode >= http.StatusInternalServerError {
		ex.Error("Server error", "error", err)
		if hub := sentry.GetHubFromContext(ex.Context()); hub != nil {
			hub.CaptureException(err)
		}
	} else {
		ex.Debug("Request failed", "error", err, "status", response.StatusCode)
	}
	ex.RenderJSONStatus(response.StatusCode, response)
}
