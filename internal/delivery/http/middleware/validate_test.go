package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventsapi/internal/validation"

	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// schemaFunc adapts a function to validation.Schema.
type schemaFunc func(body []byte) error

func (f schemaFunc) Validate(body []byte) error { return f(body) }

func TestValidateBody(t *testing.T) {
	const payload = `{"title":"Sample Event"}`

	tests := []struct {
		name       string
		schema     validation.Schema
		wantStatus int
		wantBody   string
		wantNext   bool
	}{
		{
			name:       "valid passes body through",
			schema:     schemaFunc(func([]byte) error { return nil }),
			wantStatus: http.StatusNoContent,
			wantNext:   true,
		},
		{
			name:       "invalid is rejected with fixed message",
			schema:     schemaFunc(func([]byte) error { return &validation.Error{Reasons: []string{"title is required"}} }),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"msg":"error, debe mirar que los campos ingresados son los correctos"}`,
		},
		{
			name:       "engine error is a server error",
			schema:     schemaFunc(func([]byte) error { return errors.New("schema compile failed") }),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"msg":"internal error","code":"internal_error"}`,
		},
		{
			name:       "engine panic is a server error",
			schema:     schemaFunc(func([]byte) error { panic("nil rule") }),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"msg":"internal error","code":"internal_error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := func(w http.ResponseWriter, r *http.Request) {
				called = true
				got, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				require.Equal(t, payload, string(got))
				w.WriteHeader(http.StatusNoContent)
			}
			handler := ValidateBody(tt.schema, discardLogger)(next)
			req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(payload))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			require.Equal(t, tt.wantNext, called)
			if tt.wantBody != "" {
				require.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestValidateBody_WithEventSchema(t *testing.T) {
	handler := ValidateBody(validation.EventCreateSchema(), discardLogger)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"title":"only a title"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(
		`{"title":"t","description":"d","date":"2025-03-14T19:30:00Z","location":"l","organizer":"o"}`))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestValidateBody_OversizedBodyRejected(t *testing.T) {
	called := false
	schemaCalled := false
	handler := ValidateBody(schemaFunc(func([]byte) error {
		schemaCalled = true
		return nil
	}), discardLogger)(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	body := `{"title":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.JSONEq(t, `{"msg":"error, debe mirar que los campos ingresados son los correctos"}`, rr.Body.String())
	require.False(t, schemaCalled)
	require.False(t, called)
}

func TestValidateBody_TrailingDataRejected(t *testing.T) {
	handler := ValidateBody(validation.EventUpdateSchema(), discardLogger)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPatch, "/events/1", strings.NewReader(`{"title":"x"}garbage`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}
