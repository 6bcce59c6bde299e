package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrTrailingData is returned by DecodeJSON when the body holds more than one JSON value.
var ErrTrailingData = errors.New("unexpected data after JSON body")

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeNotFound      = "not_found"
	ErrCodeNotCreated    = "not_created"
	ErrCodeNotUpdated    = "not_updated"
	ErrCodeNotDeleted    = "not_deleted"
	ErrCodeInternalError = "internal_error"
)

// ValidationFailedMessage is the fixed message returned when a body fails its schema.
const ValidationFailedMessage = "error, debe mirar que los campos ingresados son los correctos"

// APIError is the body of every error response.
// swagger:model APIError
type APIError struct {
	Msg  string `json:"msg"`
	Code string `json:"code,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode and encodes data.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSONError writes an APIError with the given code and message.
// An empty code is omitted from the body.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, APIError{Msg: message, Code: code})
}

// DecodeJSON decodes the request body into dest, rejecting unknown fields.
func DecodeJSON(r *http.Request, dest any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}
