package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// LogisticModel is a pre-trained binary logistic regression classifier.
// It expects vectors that have already been standardized by the scaler
// fitted alongside it.
type LogisticModel struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

func LoadLogisticModel(path string, featureCount int) (*LogisticModel, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var model LogisticModel
	if err := json.Unmarshal(payload, &model); err != nil {
		return nil, fmt.Errorf("decode logistic model %s: %w", path, err)
	}
	if len(model.Weights) != featureCount {
		return nil, fmt.Errorf("logistic model %s has %d weights, want %d", path, len(model.Weights), featureCount)
	}
	return &model, nil
}

// Proba returns the probability of the positive class.
func (m *LogisticModel) Proba(features []float64) (float64, error) {
	if len(features) != len(m.Weights) {
		return 0, fmt.Errorf("expected %d features, got %d", len(m.Weights), len(features))
	}
	z := m.Intercept
	for i, w := range m.Weights {
		z += w * features[i]
	}
	return sigmoid(z), nil
}

// Predict returns the class label and the positive-class probability.
// The decision threshold is 0.5.
func (m *LogisticModel) Predict(features []float64) (int, float64, error) {
	proba, err := m.Proba(features)
	if err != nil {
		return 0, 0, err
	}
	if proba >= 0.5 {
		return 1, proba, nil
	}
	return 0, proba, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
