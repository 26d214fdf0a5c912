package http

import (
	"log/slog"
	"net/http"

	"eventdesk/internal/delivery/http/controllers"
	"eventdesk/internal/delivery/http/middleware"
	"eventdesk/internal/domain"
	"eventdesk/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes.
// Session routes require a bearer token; /metrics and /swagger/ are public.
func NewRouter(sessionController *controllers.SessionController, verifier domain.TokenVerifier, gatherer prometheus.Gatherer, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Sessions
	mux.HandleFunc("GET /events/{eventID}/sessions", auth(sessionController.ListSessions))
	mux.HandleFunc("POST /events/{eventID}/sessions", auth(sessionController.CreateSession))
	mux.HandleFunc("POST /events/{eventID}/sessions/check", auth(sessionController.CheckSession))
	mux.HandleFunc("PATCH /events/{eventID}/sessions/{sessionID}", auth(sessionController.UpdateSession))
	mux.HandleFunc("POST /events/{eventID}/sessions/{sessionID}/cancel", auth(sessionController.CancelSession))
	mux.HandleFunc("DELETE /events/{eventID}/sessions/{sessionID}", auth(sessionController.DeleteSession))

	// Timeline
	mux.HandleFunc("GET /events/{eventID}/timeline", auth(sessionController.Timeline))

	// Health and metrics
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with CORS, request logging and request metrics.
func NewHandler(router http.Handler, logger *slog.Logger, m *metrics.Metrics, allowedOrigins []string) http.Handler {
	var h http.Handler = router
	h = middleware.MetricsMiddleware(m, h)
	h = middleware.LoggingMiddleware(logger, h)
	return middleware.CORS(allowedOrigins, h)
}
