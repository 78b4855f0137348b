package protein_classifier

import (
	"path/filepath"
	"testing"

	"prot_classifier_go/config"
	"prot_classifier_go/kmer_analyzer"
)

var (
	testBundle = filepath.Join("testdata", "xgb_model.json")
	testLabels = filepath.Join("testdata", "label_encoder.json")
)

func loadTestArtifacts(t *testing.T) *Artifacts {
	t.Helper()
	arts, err := LoadArtifacts(ArtifactPaths{Bundle: testBundle, Labels: testLabels, Backend: config.BackendTrees})
	if err != nil {
		t.Fatalf("LoadArtifacts: %v", err)
	}
	t.Cleanup(arts.Close)
	return arts
}

func loadTestService(t *testing.T) (*Service, *Artifacts) {
	t.Helper()
	arts := loadTestArtifacts(t)
	pred, err := arts.Predictor()
	if err != nil {
		t.Fatalf("Predictor: %v", err)
	}
	return NewService(pred), arts
}

// fixedClassifier returns the same distribution for every input and counts calls.
type fixedClassifier struct {
	probs []float64
	err   error
	calls int
}

func (f *fixedClassifier) NumClass() int { return len(f.probs) }

func (f *fixedClassifier) PredictProba(kmer_analyzer.FeatureVector) ([]float64, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]float64(nil), f.probs...), nil
}

func mockPredictor(t *testing.T, labels []string, probs []float64) (*Predictor, *fixedClassifier) {
	t.Helper()
	vect, err := kmer_analyzer.NewAlphabetVectorizer(kmer_analyzer.StandardAminoAcids, 1)
	if err != nil {
		t.Fatal(err)
	}
	le, err := NewLabelEncoder(labels)
	if err != nil {
		t.Fatal(err)
	}
	clf := &fixedClassifier{probs: probs}
	p, err := NewPredictor(vect, clf, le)
	if err != nil {
		t.Fatal(err)
	}
	return p, clf
}
