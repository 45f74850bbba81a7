package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/notifyhub/sms-relay/internal/api/handler"
	apimw "github.com/notifyhub/sms-relay/internal/api/middleware"
	"github.com/notifyhub/sms-relay/internal/service"
)

// Send routes, also used as rate limiter keys.
const (
	RouteSendOTP      = "/api/send-otp"
	RouteSendSetupSMS = "/api/send-setup-sms"
)

// RouterConfig carries the optional pieces of the HTTP surface.
type RouterConfig struct {
	AllowedOrigins []string
	// Limiter throttles the send routes; nil disables throttling.
	Limiter apimw.Limiter
}

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(
	svc *service.DispatchService,
	reg prometheus.Gatherer,
	rc RouterConfig,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestSize(1 << 20))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rc.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", apimw.CorrelationIDHeader},
		ExposedHeaders: []string{apimw.CorrelationIDHeader},
		MaxAge:         300,
	}))
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger))

	sh := handler.NewSMSHandler(svc, logger)
	hh := handler.NewHealthHandler()

	r.Get("/health", hh.Health)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.With(apimw.RateLimit(rc.Limiter, RouteSendOTP)).Post(RouteSendOTP, sh.SendOTP)
	r.With(apimw.RateLimit(rc.Limiter, RouteSendSetupSMS)).Post(RouteSendSetupSMS, sh.SendSetupSMS)

	return r
}
