package alerts

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/stratus-telco/retain/internal/predict"
)

// NATS subjects published by the retention service.
const (
	// SubjectHighRisk carries one event per High-tier prediction so retention
	// agents can act without polling the API.
	SubjectHighRisk = "retain.churn.high"
	// SubjectJobCompleted carries a summary after each bulk scoring run.
	SubjectJobCompleted = "retain.scorejob.completed"
)

// HighRiskEvent is the payload on SubjectHighRisk.
type HighRiskEvent struct {
	EventID              string  `json:"event_id"`
	CustomerID           string  `json:"customer_id"`
	ChurnProbability     float64 `json:"churn_probability"`
	DaysUntilLikelyChurn int     `json:"days_until_likely_churn"`
	ModelVersion         string  `json:"model_version"`
	Timestamp            string  `json:"timestamp"`
}

// JobSummary is the payload on SubjectJobCompleted.
type JobSummary struct {
	JobID           string `json:"job_id"`
	TotalProcessed  int    `json:"total_processed"`
	HighRiskCount   int    `json:"high_risk_count"`
	MediumRiskCount int    `json:"medium_risk_count"`
	LowRiskCount    int    `json:"low_risk_count"`
	ModelVersion    string `json:"model_version"`
	Timestamp       string `json:"timestamp"`
}

// Publisher emits retention events to NATS. It is optional wiring: callers
// hold a nil *Publisher when NATS is not configured, and every method is
// nil-safe.
type Publisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewPublisher(url, token string, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: nc, logger: logger}, nil
}

// PublishHighRisk emits a high-risk event for one prediction.
func (p *Publisher) PublishHighRisk(pred predict.Prediction) error {
	if p == nil {
		return nil
	}
	return p.publish(SubjectHighRisk, HighRiskEvent{
		EventID:              uuid.NewString(),
		CustomerID:           pred.CustomerID,
		ChurnProbability:     pred.ChurnProbability,
		DaysUntilLikelyChurn: pred.DaysUntilLikelyChurn,
		ModelVersion:         pred.ModelVersion,
		Timestamp:            pred.PredictionTimestamp,
	})
}

// PublishJobSummary emits the completion summary for a bulk scoring run.
func (p *Publisher) PublishJobSummary(summary JobSummary) error {
	if p == nil {
		return nil
	}
	return p.publish(SubjectJobCompleted, summary)
}

func (p *Publisher) publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return p.conn.Publish(subject, payload)
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.conn.Close()
}
