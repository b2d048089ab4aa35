package predict

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/stratus-telco/retain/internal/churn"
	"github.com/stratus-telco/retain/internal/model"
)

// ErrClassifierUnavailable marks failures of the classifier capability:
// the model failed to load or rejected the feature vector. Nothing else in
// the pipeline can fail.
var ErrClassifierUnavailable = errors.New("classifier unavailable")

// ModelSource supplies the shared classifier. model.Loader satisfies this;
// tests substitute fixed models.
type ModelSource interface {
	Get() (*model.Model, error)
}

// Prediction is the scored result for one customer.
type Prediction struct {
	CustomerID           string     `json:"customer_id"`
	ChurnProbability     float64    `json:"churn_probability"`
	ChurnRiskCategory    churn.Tier `json:"churn_risk_category"`
	TopChurnFactors      []string   `json:"top_churn_factors"`
	RecommendedActions   []string   `json:"recommended_actions"`
	ModelVersion         string     `json:"model_version"`
	ConfidenceScore      float64    `json:"confidence_score"`
	DaysUntilLikelyChurn int        `json:"days_until_likely_churn"`
	PredictionTimestamp  string     `json:"prediction_timestamp"`
}

// Predictor composes defaulting, vectorization, classification, tiering,
// explanation, recommendation and horizon estimation into one result per
// customer.
type Predictor struct {
	models ModelSource
	now    func() time.Time
}

func New(models ModelSource) *Predictor {
	return &Predictor{models: models, now: time.Now}
}

// Predict scores a single customer. Only the classifier call can fail; every
// other step is total once defaults are applied.
func (p *Predictor) Predict(features churn.Features) (Prediction, error) {
	m, err := p.models.Get()
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	rec := churn.ApplyDefaults(features)

	prob, err := m.Score(churn.Vectorize(rec))
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	tier := churn.TierFor(prob)
	return Prediction{
		CustomerID:           rec.CustomerID,
		ChurnProbability:     round4(prob),
		ChurnRiskCategory:    tier,
		TopChurnFactors:      churn.TopFactors(rec),
		RecommendedActions:   churn.Recommend(tier, rec),
		ModelVersion:         m.Version,
		ConfidenceScore:      round4(math.Max(prob, 1-prob)),
		DaysUntilLikelyChurn: churn.EstimateDays(prob, rec),
		PredictionTimestamp:  p.now().UTC().Format(time.RFC3339),
	}, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
