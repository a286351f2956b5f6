// Package ml loads and serves the serialized model artifacts produced by
// the offline training pipeline: a standard scaler, a logistic regression
// and a decision tree.
package ml

import (
	"fmt"
	"path/filepath"
	"sync"
)

// ArtifactPaths locates the three serialized artifacts on disk.
type ArtifactPaths struct {
	Scaler       string
	Logistic     string
	DecisionTree string
}

// Resolve joins the artifact file names onto a base directory.
func (p ArtifactPaths) Resolve(dir string) ArtifactPaths {
	return ArtifactPaths{
		Scaler:       filepath.Join(dir, p.Scaler),
		Logistic:     filepath.Join(dir, p.Logistic),
		DecisionTree: filepath.Join(dir, p.DecisionTree),
	}
}

// Bundle holds one consistent set of loaded artifacts. A bundle is
// immutable after load; the store swaps whole bundles on reload.
type Bundle struct {
	Scaler       *Scaler
	Logistic     *LogisticModel
	DecisionTree *DecisionTree
}

// LoadBundle reads all three artifacts. Any failure fails the whole load.
func LoadBundle(paths ArtifactPaths, featureCount int) (*Bundle, error) {
	scaler, err := LoadScaler(paths.Scaler, featureCount)
	if err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}
	logistic, err := LoadLogisticModel(paths.Logistic, featureCount)
	if err != nil {
		return nil, fmt.Errorf("load logistic model: %w", err)
	}
	tree, err := LoadDecisionTree(paths.DecisionTree, featureCount)
	if err != nil {
		return nil, fmt.Errorf("load decision tree: %w", err)
	}
	return &Bundle{Scaler: scaler, Logistic: logistic, DecisionTree: tree}, nil
}

// Store serves the current bundle to the prediction path and supports
// atomic replacement when artifacts change on disk.
type Store struct {
	mu           sync.RWMutex
	bundle       *Bundle
	paths        ArtifactPaths
	featureCount int
}

// NewStore loads the initial bundle. The process must not serve requests
// if this fails.
func NewStore(paths ArtifactPaths, featureCount int) (*Store, error) {
	bundle, err := LoadBundle(paths, featureCount)
	if err != nil {
		return nil, err
	}
	return &Store{bundle: bundle, paths: paths, featureCount: featureCount}, nil
}

// Bundle returns the current artifact set.
func (s *Store) Bundle() *Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle
}

// Reload re-reads the artifacts and swaps them in. On failure the previous
// bundle stays active.
func (s *Store) Reload() error {
	bundle, err := LoadBundle(s.paths, s.featureCount)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.bundle = bundle
	s.mu.Unlock()
	return nil
}
