package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stratus-telco/retain/internal/alerts"
	"github.com/stratus-telco/retain/internal/churn"
	"github.com/stratus-telco/retain/internal/model"
	"github.com/stratus-telco/retain/internal/predict"
	"github.com/stratus-telco/retain/internal/wire"
)

type Server struct {
	router    *chi.Mux
	port      int
	predictor *predict.Predictor
	models    *model.Loader
	alerts    *alerts.Publisher
	logger    *slog.Logger
}

func NewServer(port int, predictor *predict.Predictor, models *model.Loader, pub *alerts.Publisher, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:    router,
		port:      port,
		predictor: predictor,
		models:    models,
		alerts:    pub,
		logger:    logger,
	}

	router.Get("/health", s.health)
	router.Get("/model/info", s.modelInfo)
	router.Post("/predict", s.predict)
	router.Post("/predict/batch", s.predictBatch)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

type healthResponse struct {
	Status       string `json:"status"`
	ModelLoaded  bool   `json:"model_loaded"`
	ModelVersion string `json:"model_version"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "healthy"}
	if m, err := s.models.Get(); err != nil {
		resp.Status = "unhealthy"
		resp.ModelVersion = "unknown"
	} else {
		resp.ModelLoaded = true
		resp.ModelVersion = m.Version
	}
	writeJSON(w, http.StatusOK, resp)
}

type modelInfoResponse struct {
	ModelVersion   string            `json:"model_version"`
	FeatureNames   []string          `json:"feature_names"`
	RiskThresholds map[string]string `json:"risk_thresholds"`
	Description    string            `json:"description"`
}

func (s *Server) modelInfo(w http.ResponseWriter, r *http.Request) {
	m, err := s.models.Get()
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, fmt.Sprintf("classifier unavailable: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, modelInfoResponse{
		ModelVersion: m.Version,
		FeatureNames: churn.FeatureNames,
		RiskThresholds: map[string]string{
			"high":   "probability >= 0.60",
			"medium": "0.30 <= probability < 0.60",
			"low":    "probability < 0.30",
		},
		Description: "Churn probability classifier for telecom customer retention",
	})
}

// predict serves both payload shapes on one route: a named customer object,
// or the columnar {"data": [[row_identity, v1, ...], ...]} format used by
// warehouse service functions.
func (s *Server) predict(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("read body: %v", err))
		return
	}

	var probe struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	if probe.Data != nil {
		s.predictColumnar(w, probe.Data)
		return
	}

	var features churn.Features
	if err := json.Unmarshal(body, &features); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unrecognized payload shape: %v", err))
		return
	}

	pred, err := s.predictor.Predict(features)
	if err != nil {
		s.writePredictError(w, err)
		return
	}
	s.notifyHighRisk(pred)
	writeJSON(w, http.StatusOK, pred)
}

func (s *Server) predictColumnar(w http.ResponseWriter, data []json.RawMessage) {
	rows, err := wire.AdaptIn(data)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("malformed batch input: %v", err))
		return
	}

	scored := make([]wire.Scored, len(rows))
	for i, row := range rows {
		pred, err := s.predictor.Predict(row.Features)
		if err != nil {
			s.writePredictError(w, err)
			return
		}
		s.notifyHighRisk(pred)
		scored[i] = wire.Scored{Identity: row.Identity, Result: pred}
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": wire.AdaptOut(scored)})
}

type batchRequest struct {
	Customers []churn.Features `json:"customers"`
}

func (s *Server) predictBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	result, err := s.predictor.PredictBatch(req.Customers)
	if err != nil {
		s.writePredictError(w, err)
		return
	}
	for _, pred := range result.Predictions {
		s.notifyHighRisk(pred)
	}
	writeJSON(w, http.StatusOK, result)
}

// notifyHighRisk emits a NATS event for High-tier predictions. Publishing is
// best effort; a bus outage must never fail a scoring request.
func (s *Server) notifyHighRisk(pred predict.Prediction) {
	if s.alerts == nil || pred.ChurnRiskCategory != churn.TierHigh {
		return
	}
	if err := s.alerts.PublishHighRisk(pred); err != nil {
		s.logger.Warn("failed to publish high-risk alert",
			"customer_id", pred.CustomerID,
			"error", err,
		)
	}
}

func (s *Server) writePredictError(w http.ResponseWriter, err error) {
	if errors.Is(err, predict.ErrClassifierUnavailable) {
		s.writeError(w, http.StatusServiceUnavailable, fmt.Sprintf("model not ready: %v", err))
		return
	}
	s.writeError(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
