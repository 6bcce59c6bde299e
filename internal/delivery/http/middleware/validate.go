package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	h "eventsapi/internal/delivery/http/helpers"
	"eventsapi/internal/validation"
)

// maxBodyBytes bounds the request body read by ValidateBody.
const maxBodyBytes = 1 << 20

// ValidateBody returns a wrapper that checks the request body against schema
// before calling next. An invalid body gets 400 with the fixed validation
// message and next is not called. A fault inside the schema engine (error or
// panic) is logged and answered with 500. A valid body reaches next unchanged.
func ValidateBody(schema validation.Schema, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					logger.DebugContext(r.Context(), "request body too large", "path", r.URL.Path, "method", r.Method, "limit", tooLarge.Limit)
				}
				h.WriteJSONError(w, http.StatusBadRequest, "", h.ValidationFailedMessage)
				return
			}
			_ = r.Body.Close()

			if err := runSchema(schema, body); err != nil {
				if validation.IsInvalid(err) {
					logger.DebugContext(r.Context(), "request body rejected", "path", r.URL.Path, "method", r.Method, "err", err)
					h.WriteJSONError(w, http.StatusBadRequest, "", h.ValidationFailedMessage)
					return
				}
				logger.ErrorContext(r.Context(), "body validation failed", "path", r.URL.Path, "method", r.Method, "err", err)
				h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			next(w, r)
		}
	}
}

// runSchema turns a panic in the schema engine into an error.
func runSchema(schema validation.Schema, body []byte) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("schema panic: %v", rec)
		}
	}()
	return schema.Validate(body)
}
