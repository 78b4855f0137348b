package protein_classifier

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"prot_classifier_go/kmer_analyzer"
)

// Vectorizer turns a normalized sequence into a fixed-dimension feature vector.
type Vectorizer interface {
	Transform(seq string) kmer_analyzer.FeatureVector
	Dim() int
}

// Classifier produces a probability distribution over NumClass classes.
// Implementations must be safe for concurrent use.
type Classifier interface {
	NumClass() int
	PredictProba(fv kmer_analyzer.FeatureVector) ([]float64, error)
}

// LabelDecoder maps class indices back to names.
type LabelDecoder interface {
	Len() int
	InverseTransform(idx int) (string, error)
}

// Prediction is the outcome of one inference call.
type Prediction struct {
	Label         string    `json:"label"`
	Index         int       `json:"index"`
	Confidence    float64   `json:"confidence"` // probability of Label, in [0,1]
	Features      int       `json:"features"`   // vocabulary k-mers found in the sequence
	Probabilities []float64 `json:"-"`
}

// ClassScore pairs a label with its probability.
type ClassScore struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// Predictor runs vectorize -> classify -> decode. It holds no mutable state.
type Predictor struct {
	vect   Vectorizer
	clf    Classifier
	labels LabelDecoder
}

// NewPredictor wires the three model parts together after checking that the
// classifier and the label decoder agree on the number of classes.
func NewPredictor(vect Vectorizer, clf Classifier, labels LabelDecoder) (*Predictor, error) {
	if vect == nil || clf == nil || labels == nil {
		return nil, fmt.Errorf("predictor needs a vectorizer, a classifier and a label decoder")
	}
	if clf.NumClass() != labels.Len() {
		return nil, fmt.Errorf("classifier has %d classes but label encoder has %d", clf.NumClass(), labels.Len())
	}
	return &Predictor{vect: vect, clf: clf, labels: labels}, nil
}

// Predict classifies an already normalized sequence. An empty sequence is
// not rejected here: it vectorizes to all zeros and gets whatever the model
// predicts for that.
func (p *Predictor) Predict(seq string) (Prediction, error) {
	fv := p.vect.Transform(seq)
	probs, err := p.clf.PredictProba(fv)
	if err != nil {
		return Prediction{}, fmt.Errorf("classifier failed: %w", err)
	}
	if len(probs) != p.labels.Len() {
		return Prediction{}, fmt.Errorf("classifier returned %d probabilities for %d classes", len(probs), p.labels.Len())
	}
	for i, pr := range probs {
		if math.IsNaN(pr) {
			return Prediction{}, fmt.Errorf("classifier returned NaN for class %d", i)
		}
	}

	// First maximum wins, so ties go to the lowest index
	idx := floats.MaxIdx(probs)
	label, err := p.labels.InverseTransform(idx)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{
		Label:         label,
		Index:         idx,
		Confidence:    clamp01(probs[idx]),
		Features:      fv.NNZ(),
		Probabilities: probs,
	}, nil
}

// Rank returns the n most probable classes of pred, highest first.
// Equal probabilities keep class index order.
func (p *Predictor) Rank(pred Prediction, n int) []ClassScore {
	order := make([]int, len(pred.Probabilities))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return pred.Probabilities[order[a]] > pred.Probabilities[order[b]]
	})
	if n > len(order) {
		n = len(order)
	}
	if n < 0 {
		n = 0
	}
	scores := make([]ClassScore, 0, n)
	for _, idx := range order[:n] {
		label, err := p.labels.InverseTransform(idx)
		if err != nil {
			continue
		}
		scores = append(scores, ClassScore{Label: label, Probability: clamp01(pred.Probabilities[idx])})
	}
	return scores
}

// Dim is the feature dimensionality of the wrapped vectorizer.
func (p *Predictor) Dim() int { return p.vect.Dim() }

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
