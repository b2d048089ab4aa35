package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/stratus-telco/retain/internal/alerts"
	"github.com/stratus-telco/retain/internal/api"
	"github.com/stratus-telco/retain/internal/config"
	"github.com/stratus-telco/retain/internal/model"
	"github.com/stratus-telco/retain/internal/predict"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("retaind starting", "port", cfg.Port)

	// Classifier: lazily loaded behind the guarded accessor, warmed eagerly
	// here so a broken artifact shows up in the logs at boot rather than on
	// the first request.
	models := model.NewLoader(cfg.ModelPath)
	if m, err := models.Get(); err != nil {
		slog.Error("classifier failed to load; predictions will return 503", "path", cfg.ModelPath, "error", err)
	} else {
		slog.Info("classifier loaded", "version", m.Version)
	}

	// NATS alerts (optional — scoring works without a bus, just no events).
	var pub *alerts.Publisher
	if cfg.NatsURL != "" {
		var err error
		pub, err = alerts.NewPublisher(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer pub.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS not configured — running without high-risk alerts")
	}

	predictor := predict.New(models)

	srv := api.NewServer(cfg.Port, predictor, models, pub, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("retaind ready", "port", cfg.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	slog.Info("retaind stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
