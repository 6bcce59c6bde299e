package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eventsapi/internal/delivery/http/helpers"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	Logger  *slog.Logger
	Store   Pinger
	Timeout time.Duration
}

func NewHealthController(logger *slog.Logger, store Pinger, timeout time.Duration) *HealthController {
	return &HealthController{Logger: logger, Store: store, Timeout: timeout}
}

// Health godoc
// @Summary Liveness and store reachability
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} helpers.APIError
// @Router /healthz [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.Timeout)
	defer cancel()

	if err := c.Store.Ping(ctx); err != nil {
		c.Logger.WarnContext(r.Context(), "store ping failed", "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, "unavailable", "store unreachable")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
