package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "eventsapi/docs"
	"eventsapi/internal/delivery/http/controllers"
	"eventsapi/internal/delivery/http/middleware"
	"eventsapi/internal/validation"
)

// RouterConfig carries the non-controller dependencies of the router.
type RouterConfig struct {
	Logger         *slog.Logger
	Registry       *prometheus.Registry
	AllowedOrigins []string
}

// NewRouter initializes the HTTP handler with all application routes.
// Create and update bodies pass the validation gate before reaching the controller.
func NewRouter(cfg RouterConfig, events *controllers.EventController, health *controllers.HealthController) http.Handler {
	mux := http.NewServeMux()

	validateCreate := middleware.ValidateBody(validation.EventCreateSchema(), cfg.Logger)
	validateUpdate := middleware.ValidateBody(validation.EventUpdateSchema(), cfg.Logger)

	// API Routes
	mux.HandleFunc("POST /events", validateCreate(events.CreateEvent))
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("GET /events/{id}", events.GetEvent)
	mux.HandleFunc("PUT /events/{id}", validateUpdate(events.UpdateEvent))
	mux.HandleFunc("PATCH /events/{id}", validateUpdate(events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{id}", events.DeleteEvent)

	// Ops
	mux.HandleFunc("GET /healthz", health.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	metrics := middleware.NewMetrics(cfg.Registry)
	var handler http.Handler = metrics.Instrument(mux)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	return middleware.Logging(cfg.Logger, handler)
}
