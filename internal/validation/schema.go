// Package validation checks request payloads against declared schemas.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Schema validates a raw request body.
// It returns a *Error when the payload does not satisfy the schema; any other
// non-nil error means the check itself could not run.
type Schema interface {
	Validate(body []byte) error
}

// Error lists the reasons a payload was rejected.
type Error struct {
	Reasons []string
}

func (e *Error) Error() string {
	return "invalid payload: " + strings.Join(e.Reasons, "; ")
}

// IsInvalid reports whether err is a payload rejection rather than a fault.
func IsInvalid(err error) bool {
	var verr *Error
	return errors.As(err, &verr)
}

// StructSchema decodes the body into T and validates its struct tags.
type StructSchema[T any] struct {
	validate *validator.Validate
	checks   []func(T) []string
}

// Option customises a StructSchema.
type Option[T any] func(*StructSchema[T])

// WithCheck adds a rule that struct tags cannot express. The returned
// messages, if any, reject the payload.
func WithCheck[T any](check func(T) []string) Option[T] {
	return func(s *StructSchema[T]) {
		s.checks = append(s.checks, check)
	}
}

// NewStructSchema returns a Schema for T. Besides the built-in tags it
// understands notblank (non-empty after trimming spaces).
func NewStructSchema[T any](opts ...Option[T]) *StructSchema[T] {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(jsonFieldName)

	s := &StructSchema[T]{validate: v}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *StructSchema[T]) Validate(body []byte) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return &Error{Reasons: []string{"body is required"}}
	}

	var dest T
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dest); err != nil {
		return &Error{Reasons: []string{err.Error()}}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return &Error{Reasons: []string{"unexpected data after JSON body"}}
	}

	if err := s.validate.Struct(dest); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			reasons := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				reasons = append(reasons, fieldReason(fe))
			}
			return &Error{Reasons: reasons}
		}
		return fmt.Errorf("validate %T: %w", dest, err)
	}

	var reasons []string
	for _, check := range s.checks {
		reasons = append(reasons, check(dest)...)
	}
	if len(reasons) > 0 {
		return &Error{Reasons: reasons}
	}
	return nil
}

func fieldReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "notblank":
		return fe.Field() + " must not be blank"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
