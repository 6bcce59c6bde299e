package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthController_Health(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{"healthy", nil, http.StatusOK, `{"status":"ok"}`},
		{"store down", errors.New("connection refused"), http.StatusServiceUnavailable, `{"msg":"store unreachable","code":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sawDeadline bool
			store := pingerFunc(func(ctx context.Context) error {
				_, sawDeadline = ctx.Deadline()
				return tt.pingErr
			})
			c := NewHealthController(testLogger, store, time.Second)
			rr := httptest.NewRecorder()

			c.Health(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			require.JSONEq(t, tt.wantBody, rr.Body.String())
			require.True(t, sawDeadline)
		})
	}
}
