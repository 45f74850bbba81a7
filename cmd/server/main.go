package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/notifyhub/sms-relay/internal/api"
	"github.com/notifyhub/sms-relay/internal/config"
	"github.com/notifyhub/sms-relay/internal/metrics"
	"github.com/notifyhub/sms-relay/internal/otp"
	"github.com/notifyhub/sms-relay/internal/provider"
	"github.com/notifyhub/sms-relay/internal/ratelimiter"
	"github.com/notifyhub/sms-relay/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync() //nolint:errcheck

	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if cfg.GatewayCredential == "" {
		logger.Warn("SMS_GATEWAY_CREDENTIALS is not set; send requests will fail until it is configured")
	}

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	prov := provider.NewSMSGateProvider(cfg.GatewayBaseURL, cfg.GatewaySimNumber, cfg.GatewayTimeout)
	svc := service.NewDispatchService(prov, otp.NewGenerator(otp.CryptoSource{}), cfg.GatewayCredential, logger, m.Hooks())

	rc := api.RouterConfig{AllowedOrigins: cfg.CORSAllowedOrigins}
	if cfg.RateLimit > 0 {
		rc.Limiter = ratelimiter.New(cfg.RateLimit, api.RouteSendOTP, api.RouteSendSetupSMS)
	}

	// ---- HTTP server ----
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      api.NewRouter(svc, reg, rc, logger),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("gateway", cfg.GatewayBaseURL),
			zap.Int("rate_limit", cfg.RateLimit),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}
