package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/prior-it/customers/core"
	"github.com/prior-it/customers/dto"
)

// Exchange wraps a single request and its response writer.
type Exchange struct {
	Writer  http.ResponseWriter
	Request *http.Request
	logger  *slog.Logger
}

// Log the specified error message. args is a list of structured fields to add to the error message.
// The arguments should alternate between a field's name (string) and its value (any).
// This behaves the same as [log/slog.Error]
//
// # Example
//
//	ex.Error("Something went wrong", "error", err, "customer_id", id)
func (ex *Exchange) Error(msg string, args ...any) {
	ex.logger.ErrorContext(ex.Context(), msg, args...)
}

// Log the specified debug message. args is a list of structured fields to add to the message.
// This behaves the same as [log/slog.Debug]
func (ex *Exchange) Debug(msg string, args ...any) {
	ex.logger.DebugContext(ex.Context(), msg, args...)
}

// LogField will add the specified field and its value to the current request's span
//
// # Example
//
//	ex.LogField("customer_id", slog.Int64Value(int64(id)))
func (ex *Exchange) LogField(field string, value slog.Value) {
	httplog.LogEntrySetField(ex.Context(), field, value)
}

// Context returns the request's context.
//
// The context is canceled when the
// client's connection closes, the request is canceled (with HTTP/2),
// or when the ServeHTTP method returns.
func (ex *Exchange) Context() context.Context {
	return ex.Request.Context()
}

// Path returns the full path of the request.
func (ex *Exchange) Path() string {
	return ex.Request.URL.Path
}

// GetPath returns the value for the named path wildcard in the router pattern
// that matched the request.
// It returns the empty string if the request was not matched against a pattern
// or there is no such wildcard in the pattern.
//
// E.g.: A route defined as `/customers/{id}` can call `GetPath("id")` to return the
// value for "id" in the current path.
func (ex *Exchange) GetPath(key string) string {
	return chi.URLParam(ex.Request, key)
}

// ParseBody decodes the JSON request body into v. Unknown fields are ignored.
// Malformed bodies result in a core.ErrValidation error.
//
// # Example:
//
//	var data dto.CustomerDTO
//	if err := ex.ParseBody(&data); err != nil {
//		return err
//	}
func (ex *Exchange) ParseBody(v any) error {
	if err := render.DecodeJSON(ex.Request.Body, v); err != nil {
		return core.NewError(core.ErrValidation, dto.MessageInvalidInput).
			WithDetail(fmt.Sprintf("malformed request body: %v", err))
	}
	return nil
}

// RenderJSON writes v as a JSON response with status 200.
func (ex *Exchange) RenderJSON(v any) {
	render.JSON(ex.Writer, ex.Request, v)
}

// RenderJSONStatus writes v as a JSON response with the given status code.
func (ex *Exchange) RenderJSONStatus(code int, v any) {
	render.Status(ex.Request, code)
	render.JSON(ex.Writer, ex.Request, v)
}

// RenderText writes a plain text response with status 200.
func (ex *Exchange) RenderText(text string) {
	render.PlainText(ex.Writer, ex.Request, text)
}

// RenderTextStatus writes a plain text response with the given status code.
func (ex *Exchange) RenderTextStatus(code int, text string) {
	render.Status(ex.Request, code)
	render.PlainText(ex.Writer, ex.Request, text)
}
