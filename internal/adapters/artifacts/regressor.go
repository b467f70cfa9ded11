package artifacts

import (
	"fmt"
)

const (
	ModelLinear = "linear"
	ModelGBTree = "gbtree"
)

// Regressor is a trained model producing one scalar per row.
type Regressor interface {
	Kind() string
	FeatureNames() []string
	Predict(row []float64) float64
}

// modelFile is the on-disk form of a trained model.
type modelFile struct {
	Kind         string    `json:"kind"`
	FeatureNames []string  `json:"feature_names"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
	BaseScore    float64   `json:"base_score"`
	Trees        []Tree    `json:"trees"`
}

// LinearRegressor computes intercept + Σ coef_i * x_i.
type LinearRegressor struct {
	features  []string
	intercept float64
	coef      []float64
}

// NewLinearRegressor validates and builds a linear model.
func NewLinearRegressor(features []string, intercept float64, coef []float64) (*LinearRegressor, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("model declares no feature names")
	}
	if len(coef) != len(features) {
		return nil, fmt.Errorf("model has %d coefficients for %d features", len(coef), len(features))
	}
	return &LinearRegressor{
		features:  append([]string(nil), features...),
		intercept: intercept,
		coef:      append([]float64(nil), coef...),
	}, nil
}

func (m *LinearRegressor) Kind() string { return ModelLinear }

func (m *LinearRegressor) FeatureNames() []string { return append([]string(nil), m.features...) }

func (m *LinearRegressor) Predict(row []float64) float64 {
	y := m.intercept
	for i, c := range m.coef {
		y += c * row[i]
	}
	return y
}

// TreeNode is one node of a regression tree. A node without children is a
// leaf. Rows with x[Split] < Threshold go to Yes, otherwise to No.
type TreeNode struct {
	Split     int     `json:"split"`
	Threshold float64 `json:"threshold"`
	Yes       int     `json:"yes"`
	No        int     `json:"no"`
	Leaf      float64 `json:"leaf"`
}

func (n TreeNode) isLeaf() bool { return n.Yes == 0 && n.No == 0 }

// Tree is one regression tree; node 0 is the root.
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// TreeEnsemble is a boosted tree ensemble: base_score + Σ leaf(tree, x).
type TreeEnsemble struct {
	features  []string
	baseScore float64
	trees     []Tree
}

// NewTreeEnsemble validates node references and builds the ensemble.
func NewTreeEnsemble(features []string, baseScore float64, trees []Tree) (*TreeEnsemble, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("model declares no feature names")
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("tree ensemble has no trees")
	}
	for t, tree := range trees {
		if len(tree.Nodes) == 0 {
			return nil, fmt.Errorf("tree %d has no nodes", t)
		}
		for n, node := range tree.Nodes {
			if node.isLeaf() {
				continue
			}
			if node.Split < 0 || node.Split >= len(features) {
				return nil, fmt.Errorf("tree %d node %d splits on feature %d of %d", t, n, node.Split, len(features))
			}
			// Children must come after their parent, which also rules out cycles.
			if node.Yes <= n || node.Yes >= len(tree.Nodes) || node.No <= n || node.No >= len(tree.Nodes) {
				return nil, fmt.Errorf("tree %d node %d has invalid children %d/%d", t, n, node.Yes, node.No)
			}
		}
	}
	return &TreeEnsemble{
		features:  append([]string(nil), features...),
		baseScore: baseScore,
		trees:     trees,
	}, nil
}

func (m *TreeEnsemble) Kind() string { return ModelGBTree }

func (m *TreeEnsemble) FeatureNames() []string { return append([]string(nil), m.features...) }

func (m *TreeEnsemble) Predict(row []float64) float64 {
	y := m.baseScore
	for _, tree := range m.trees {
		i := 0
		for !tree.Nodes[i].isLeaf() {
			node := tree.Nodes[i]
			if row[node.Split] < node.Threshold {
				i = node.Yes
			} else {
				i = node.No
			}
		}
		y += tree.Nodes[i].Leaf
	}
	return y
}

func newRegressorFromFile(f modelFile) (Regressor, error) {
	switch f.Kind {
	case ModelLinear:
		return NewLinearRegressor(f.FeatureNames, f.Intercept, f.Coefficients)
	case ModelGBTree:
		return NewTreeEnsemble(f.FeatureNames, f.BaseScore, f.Trees)
	default:
		return nil, fmt.Errorf("unknown model kind %q", f.Kind)
	}
}
