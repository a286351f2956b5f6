package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DecisionTree is a pre-trained classification tree. Nodes are stored as a
// flat array; children are referred to by index.
type DecisionTree struct {
	nodes []TreeNode
}

type TreeNode struct {
	FeatureIdx int     `json:"feature_idx"`
	Threshold  float64 `json:"threshold"`
	LeftChild  int     `json:"left_child"`
	RightChild int     `json:"right_child"`
	ClassLabel int     `json:"class_label"`
	IsLeaf     bool    `json:"is_leaf"`
}

// LoadDecisionTree reads a serialized tree and checks that every split
// references a feature inside the expected vector width.
func LoadDecisionTree(path string, featureCount int) (*DecisionTree, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var nodes []TreeNode
	if err := json.Unmarshal(payload, &nodes); err != nil {
		return nil, fmt.Errorf("decode decision tree %s: %w", path, err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("decision tree %s has no nodes", path)
	}
	for i, node := range nodes {
		if node.IsLeaf {
			continue
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= featureCount {
			return nil, fmt.Errorf("decision tree node %d references feature %d, want [0,%d)", i, node.FeatureIdx, featureCount)
		}
		if node.LeftChild < 0 || node.LeftChild >= len(nodes) || node.RightChild < 0 || node.RightChild >= len(nodes) {
			return nil, fmt.Errorf("decision tree node %d has child index out of range", i)
		}
	}
	return &DecisionTree{nodes: nodes}, nil
}

// Predict walks the tree over the raw feature vector and returns the leaf
// class label.
func (dt *DecisionTree) Predict(features []float64) (int, error) {
	if len(dt.nodes) == 0 {
		return 0, errors.New("decision tree not loaded")
	}
	idx := 0
	for {
		node := dt.nodes[idx]
		if node.IsLeaf {
			return node.ClassLabel, nil
		}
		if node.FeatureIdx >= len(features) {
			return 0, fmt.Errorf("feature index %d out of range for vector of %d", node.FeatureIdx, len(features))
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
	}
}
