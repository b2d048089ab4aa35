// Command scorejob scores every customer in the feature store once and
// publishes the results to NATS. It is meant to run on a schedule; nothing
// is persisted by the job itself.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/stratus-telco/retain/internal/alerts"
	"github.com/stratus-telco/retain/internal/churn"
	"github.com/stratus-telco/retain/internal/config"
	"github.com/stratus-telco/retain/internal/model"
	"github.com/stratus-telco/retain/internal/predict"
	"github.com/stratus-telco/retain/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	jobID := uuid.NewString()
	slog.Info("scorejob starting", "job_id", jobID, "limit", cfg.ScoreJobLimit)

	ctx := context.Background()

	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	db, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var pub *alerts.Publisher
	if cfg.NatsURL != "" {
		pub, err = alerts.NewPublisher(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer pub.Close()
	}

	models := model.NewLoader(cfg.ModelPath)
	m, err := models.Get()
	if err != nil {
		slog.Error("classifier failed to load", "path", cfg.ModelPath, "error", err)
		os.Exit(1)
	}
	slog.Info("classifier loaded", "version", m.Version)

	customers, err := db.ListCustomerFeatures(ctx, cfg.ScoreJobLimit)
	if err != nil {
		slog.Error("failed to load customers", "error", err)
		os.Exit(1)
	}
	slog.Info("customers loaded", "count", len(customers))

	result, err := predict.New(models).PredictBatch(customers)
	if err != nil {
		slog.Error("batch scoring failed", "error", err)
		os.Exit(1)
	}

	for _, pred := range result.Predictions {
		if pred.ChurnRiskCategory != churn.TierHigh {
			continue
		}
		if err := pub.PublishHighRisk(pred); err != nil {
			slog.Warn("failed to publish high-risk alert", "customer_id", pred.CustomerID, "error", err)
		}
	}

	summary := alerts.JobSummary{
		JobID:           jobID,
		TotalProcessed:  result.TotalProcessed,
		HighRiskCount:   result.HighRiskCount,
		MediumRiskCount: result.MediumRiskCount,
		LowRiskCount:    result.LowRiskCount,
		ModelVersion:    m.Version,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}
	if err := pub.PublishJobSummary(summary); err != nil {
		slog.Warn("failed to publish job summary", "error", err)
	}

	slog.Info("scorejob finished",
		"job_id", jobID,
		"total", result.TotalProcessed,
		"high", result.HighRiskCount,
		"medium", result.MediumRiskCount,
		"low", result.LowRiskCount,
	)
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
