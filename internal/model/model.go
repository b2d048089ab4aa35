package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/stratus-telco/retain/internal/churn"
)

var (
	// ErrNotLoaded is returned when scoring is attempted before a model exists.
	ErrNotLoaded = errors.New("classifier not loaded")
	// ErrVectorLength is returned when a feature vector does not match the
	// model's trained input layout.
	ErrVectorLength = errors.New("feature vector length mismatch")
)

// Model is a standard-scaled logistic classifier over the fixed feature
// order. Artifacts are produced offline by the training pipeline; this
// package only consumes them.
type Model struct {
	Version   string    `json:"version"`
	Means     []float64 `json:"means"`
	Stddevs   []float64 `json:"stddevs"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// Load reads a model artifact from path. A missing artifact falls back to
// "<base>.example.json" and finally to the baked-in default model, so a fresh
// checkout can serve predictions. A present but unreadable artifact is an
// error: a corrupt model must surface as classifier-unavailable, never score.
func Load(path string) (*Model, error) {
	resolved := filepath.Clean(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read model artifact %s: %w", resolved, err)
		}
		ext := filepath.Ext(resolved)
		fallback := strings.TrimSuffix(resolved, ext) + ".example" + ext
		data, err = os.ReadFile(fallback)
		if err != nil {
			return Default(), nil
		}
		resolved = fallback
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model artifact %s: %w", resolved, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", resolved, err)
	}
	return &m, nil
}

func (m *Model) validate() error {
	if m.Version == "" {
		return errors.New("missing version")
	}
	for name, coeffs := range map[string][]float64{
		"means":   m.Means,
		"stddevs": m.Stddevs,
		"weights": m.Weights,
	} {
		if len(coeffs) != churn.VectorLength {
			return fmt.Errorf("%s has %d entries, want %d", name, len(coeffs), churn.VectorLength)
		}
	}
	for i, sd := range m.Stddevs {
		if sd <= 0 {
			return fmt.Errorf("stddevs[%d] = %v, must be positive", i, sd)
		}
	}
	return nil
}

// Score maps a feature vector to a churn probability in [0,1]. The vector is
// z-score standardised against the training distribution before the logistic
// link is applied.
func (m *Model) Score(features []float64) (float64, error) {
	if m == nil {
		return 0, ErrNotLoaded
	}
	if len(features) != len(m.Weights) {
		return 0, fmt.Errorf("%w: got %d entries, want %d", ErrVectorLength, len(features), len(m.Weights))
	}

	z := m.Intercept
	for i, v := range features {
		z += m.Weights[i] * (v - m.Means[i]) / m.Stddevs[i]
	}
	return 1 / (1 + math.Exp(-z)), nil
}

// Default returns the built-in demo model. Coefficients mirror the intuition
// the explanation rules encode: inactivity, dropped calls, complaints and
// negative sentiment push churn up; usage, NPS, tenure and remaining contract
// pull it down.
func Default() *Model {
	return &Model{
		Version: "v2.0.0",
		Means: []float64{
			0.50, 0.00, 0.50, 2.0, 0.667,
			1.0, 0.3, 0.5, 0.4, 0.70,
			0.40, 0.55, 0.2, 0.25, 0.50,
		},
		Stddevs: []float64{
			0.30, 0.30, 0.30, 3.0, 0.20,
			2.0, 1.0, 1.5, 1.2, 0.20,
			0.30, 0.35, 0.8, 0.43, 0.35,
		},
		Weights: []float64{
			-0.90, -1.10, -0.40, 0.80, -0.70,
			0.60, 0.50, 0.70, 0.80, -0.90,
			-0.50, 0.30, 0.60, -0.20, -0.60,
		},
		Intercept: -0.40,
	}
}
