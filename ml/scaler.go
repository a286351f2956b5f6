package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// Scaler applies the standardization fitted during training: per feature,
// subtract the mean and divide by the scale.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func LoadScaler(path string, featureCount int) (*Scaler, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scaler Scaler
	if err := json.Unmarshal(payload, &scaler); err != nil {
		return nil, fmt.Errorf("decode scaler %s: %w", path, err)
	}
	if len(scaler.Mean) != featureCount || len(scaler.Scale) != featureCount {
		return nil, fmt.Errorf("scaler %s has %d/%d parameters, want %d", path, len(scaler.Mean), len(scaler.Scale), featureCount)
	}
	for i, s := range scaler.Scale {
		if s == 0 {
			return nil, fmt.Errorf("scaler %s has zero scale for feature %d", path, i)
		}
	}
	return &scaler, nil
}

// Transform returns a scaled copy of the vector. The input is not mutated.
func (s *Scaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) {
		return nil, fmt.Errorf("expected %d features, got %d", len(s.Mean), len(features))
	}
	scaled := make([]float64, len(features))
	for i, value := range features {
		scaled[i] = (value - s.Mean[i]) / s.Scale[i]
	}
	return scaled, nil
}
