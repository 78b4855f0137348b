package protein_classifier

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"prot_classifier_go/kmer_analyzer"
)

// TreeNode is one node of a gradient-boosted tree in the nested JSON dump
// layout (dump_model(format="json")). Leaves carry Leaf, splits carry the rest.
type TreeNode struct {
	NodeID         int        `json:"nodeid"`
	Split          string     `json:"split,omitempty"`
	SplitCondition float64    `json:"split_condition,omitempty"`
	Yes            int        `json:"yes,omitempty"`
	No             int        `json:"no,omitempty"`
	Missing        int        `json:"missing,omitempty"`
	Leaf           *float64   `json:"leaf,omitempty"`
	Children       []TreeNode `json:"children,omitempty"`
}

// BoosterSpec is the serialized multi-class tree ensemble.
type BoosterSpec struct {
	NumClass   int        `json:"num_class"`
	BaseScore  *float64   `json:"base_score"`
	Objective  string     `json:"objective"`
	NumFeature int        `json:"num_feature"`
	Trees      []TreeNode `json:"trees"`
	TreeInfo   []int      `json:"tree_info"` // class of each tree; defaults to tree index mod num_class
}

type flatNode struct {
	leaf      bool
	value     float64 // leaf value
	feature   int
	threshold float64
	yes, no   int
	missing   int
}

type flatTree struct {
	class int
	nodes []flatNode
}

// Booster evaluates a softmax tree ensemble. Immutable once built.
type Booster struct {
	numClass   int
	baseScore  float64
	maxFeature int
	trees      []flatTree
}

// NewBooster validates spec and flattens its trees for evaluation.
func NewBooster(spec BoosterSpec) (*Booster, error) {
	if spec.NumClass < 1 {
		return nil, fmt.Errorf("num_class must be positive, got %d", spec.NumClass)
	}
	switch spec.Objective {
	case "", "multi:softprob", "multi:softmax":
	default:
		return nil, fmt.Errorf("unsupported objective %q", spec.Objective)
	}
	if len(spec.Trees) == 0 {
		return nil, fmt.Errorf("booster has no trees")
	}
	if len(spec.TreeInfo) != 0 && len(spec.TreeInfo) != len(spec.Trees) {
		return nil, fmt.Errorf("tree_info has %d entries for %d trees", len(spec.TreeInfo), len(spec.Trees))
	}

	b := &Booster{numClass: spec.NumClass, baseScore: 0.5, maxFeature: -1}
	if spec.BaseScore != nil {
		b.baseScore = *spec.BaseScore
	}

	for t, root := range spec.Trees {
		class := t % spec.NumClass
		if len(spec.TreeInfo) != 0 {
			class = spec.TreeInfo[t]
		}
		if class < 0 || class >= spec.NumClass {
			return nil, fmt.Errorf("tree %d: class %d outside [0, %d)", t, class, spec.NumClass)
		}
		nodes, err := flattenTree(root)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", t, err)
		}
		for _, n := range nodes {
			if !n.leaf && n.feature > b.maxFeature {
				b.maxFeature = n.feature
			}
		}
		b.trees = append(b.trees, flatTree{class: class, nodes: nodes})
	}
	if spec.NumFeature > 0 && b.maxFeature >= spec.NumFeature {
		return nil, fmt.Errorf("split on feature %d but num_feature is %d", b.maxFeature, spec.NumFeature)
	}
	return b, nil
}

// flattenTree indexes the nested dump by nodeid. Pruned trees may skip ids, so
// the slice is sized by the largest id and unused slots stay unreferenced.
// Every referenced child must exist and no path from the root may revisit a node.
func flattenTree(root TreeNode) ([]flatNode, error) {
	byID := make(map[int]TreeNode)
	maxID := -1
	var walk func(n TreeNode) error
	walk = func(n TreeNode) error {
		if n.NodeID < 0 {
			return fmt.Errorf("negative nodeid %d", n.NodeID)
		}
		if _, dup := byID[n.NodeID]; dup {
			return fmt.Errorf("duplicate nodeid %d", n.NodeID)
		}
		byID[n.NodeID] = n
		if n.NodeID > maxID {
			maxID = n.NodeID
		}
		for _, c := range n.Children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	if _, ok := byID[0]; !ok {
		return nil, fmt.Errorf("tree has no root node 0")
	}

	nodes := make([]flatNode, maxID+1)
	for id, n := range byID {
		if n.Leaf != nil {
			nodes[id] = flatNode{leaf: true, value: *n.Leaf}
			continue
		}
		feature, err := parseFeature(n.Split)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", id, err)
		}
		for _, child := range []int{n.Yes, n.No, n.Missing} {
			if _, ok := byID[child]; !ok {
				return nil, fmt.Errorf("node %d: child %d does not exist", id, child)
			}
		}
		nodes[id] = flatNode{
			feature:   feature,
			threshold: n.SplitCondition,
			yes:       n.Yes,
			no:        n.No,
			missing:   n.Missing,
		}
	}

	// 0 unvisited, 1 on the current path, 2 done
	state := make([]byte, len(nodes))
	var visit func(id int) error
	visit = func(id int) error {
		switch state[id] {
		case 1:
			return fmt.Errorf("cycle through node %d", id)
		case 2:
			return nil
		}
		state[id] = 1
		if n := nodes[id]; !n.leaf {
			for _, child := range []int{n.yes, n.no, n.missing} {
				if err := visit(child); err != nil {
					return err
				}
			}
		}
		state[id] = 2
		return nil
	}
	if err := visit(0); err != nil {
		return nil, err
	}
	return nodes, nil
}

// parseFeature accepts "f12" or "12".
func parseFeature(split string) (int, error) {
	idx, err := strconv.Atoi(strings.TrimPrefix(split, "f"))
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("invalid split feature %q", split)
	}
	return idx, nil
}

// NumClass is the size of the probability vector returned by PredictProba.
func (b *Booster) NumClass() int { return b.numClass }

// MaxFeature is the highest feature index any split reads, or -1.
func (b *Booster) MaxFeature() int { return b.maxFeature }

// Margins sums the leaf values reached in each class's trees.
// A feature absent from the sparse vector is missing and follows the
// node's missing branch; a present feature goes to yes when value < threshold.
func (b *Booster) Margins(fv kmer_analyzer.FeatureVector) []float64 {
	margins := make([]float64, b.numClass)
	for i := range margins {
		margins[i] = b.baseScore
	}
	for _, tree := range b.trees {
		id := 0
		for !tree.nodes[id].leaf {
			n := tree.nodes[id]
			val, ok := fv.Get(n.feature)
			switch {
			case !ok:
				id = n.missing
			case val < n.threshold:
				id = n.yes
			default:
				id = n.no
			}
		}
		margins[tree.class] += tree.nodes[id].value
	}
	return margins
}

// PredictProba returns the softmax of the class margins.
func (b *Booster) PredictProba(fv kmer_analyzer.FeatureVector) ([]float64, error) {
	margins := b.Margins(fv)
	lse := floats.LogSumExp(margins)
	if math.IsInf(lse, 0) || math.IsNaN(lse) {
		return nil, fmt.Errorf("degenerate margins (log-sum-exp %v)", lse)
	}
	probs := make([]float64, len(margins))
	for i, m := range margins {
		probs[i] = math.Exp(m - lse)
	}
	return probs, nil
}
