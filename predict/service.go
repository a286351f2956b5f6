package predict

import (
	"context"
	"math"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"studentrisk/ml"
	"studentrisk/monitoring"
)

// Result is the prediction response body.
type Result struct {
	LogisticRegression LogisticResult `json:"logistic_regression"`
	DecisionTree       TreeResult     `json:"decision_tree"`
}

type LogisticResult struct {
	Prediction      int     `json:"prediction"`
	RiskProbability float64 `json:"risk_probability"`
	Explanation     string  `json:"explanation"`
}

type TreeResult struct {
	Prediction  int    `json:"prediction"`
	Explanation string `json:"explanation"`
}

// Service runs both classifiers over a validated record. Identical inputs
// are memoized; StudentRecord is comparable so it keys the cache directly.
type Service struct {
	store  *ml.Store
	cache  *lru.Cache[StudentRecord, Result]
	hub    *monitoring.Hub
	logger *zap.Logger
}

const defaultCacheSize = 1024

// NewService wires the scoring pipeline. hub may be nil when the event
// feed is not running.
func NewService(store *ml.Store, cacheSize int, hub *monitoring.Hub, logger *zap.Logger) (*Service, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[StudentRecord, Result](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Service{store: store, cache: cache, hub: hub, logger: logger}, nil
}

// Predict validates the record and runs the full pipeline: scale, score
// with both models, build explanations.
func (s *Service) Predict(ctx context.Context, record StudentRecord) (Result, error) {
	start := time.Now()

	if err := record.Validate(); err != nil {
		monitoring.ValidationFailures.Inc()
		return Result{}, err
	}

	if cached, ok := s.cache.Get(record); ok {
		monitoring.CacheHits.Inc()
		return cached, nil
	}

	bundle := s.store.Bundle()
	features := record.Features()

	// The logistic model scores the standardized vector; the tree scores
	// the raw one.
	scaled, err := bundle.Scaler.Transform(features)
	if err != nil {
		return Result{}, err
	}
	logisticLabel, probability, err := bundle.Logistic.Predict(scaled)
	if err != nil {
		return Result{}, err
	}
	treeLabel, err := bundle.DecisionTree.Predict(features)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		LogisticRegression: LogisticResult{
			Prediction:      logisticLabel,
			RiskProbability: round2(probability),
			Explanation:     explainLogistic(record, logisticLabel),
		},
		DecisionTree: TreeResult{
			Prediction:  treeLabel,
			Explanation: explainTree(record, treeLabel),
		},
	}

	s.cache.Add(record, result)
	s.observe(record, result, time.Since(start))
	return result, nil
}

func (s *Service) observe(record StudentRecord, result Result, elapsed time.Duration) {
	monitoring.PredictionsTotal.WithLabelValues("logistic_regression", strconv.Itoa(result.LogisticRegression.Prediction)).Inc()
	monitoring.PredictionsTotal.WithLabelValues("decision_tree", strconv.Itoa(result.DecisionTree.Prediction)).Inc()
	monitoring.PredictLatency.Observe(elapsed.Seconds())

	s.logger.Info("prediction served",
		zap.Int("logistic_label", result.LogisticRegression.Prediction),
		zap.Float64("risk_probability", result.LogisticRegression.RiskProbability),
		zap.Int("tree_label", result.DecisionTree.Prediction),
		zap.Duration("elapsed", elapsed),
	)

	if s.hub != nil {
		event := struct {
			Input  StudentRecord `json:"input"`
			Result Result        `json:"result"`
		}{Input: record, Result: result}
		if err := s.hub.Publish(monitoring.EventPrediction, event); err != nil {
			s.logger.Warn("failed to publish prediction event", zap.Error(err))
		}
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
