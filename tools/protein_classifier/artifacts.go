package protein_classifier

import (
	"encoding/json"
	"fmt"

	"prot_classifier_go/config"
	"prot_classifier_go/kmer_analyzer"
	common "prot_classifier_go/utils"
)

// classifierBundle mirrors the training-side dict {"vect": ..., "xgb": ...}.
type classifierBundle struct {
	Vect *kmer_analyzer.VectorizerSpec `json:"vect"`
	XGB  *BoosterSpec                  `json:"xgb"`
}

// labelBundle mirrors {"le": ...}.
type labelBundle struct {
	LE *LabelEncoderSpec `json:"le"`
}

// ArtifactPaths says where the model artifacts live and which backend
// evaluates the classifier.
type ArtifactPaths struct {
	Bundle    string
	Labels    string
	Backend   string // config.BackendTrees (default) or config.BackendONNX
	ONNXModel string
	ONNXLib   string
}

// PathsFromSettings copies the artifact locations out of runtime settings.
func PathsFromSettings(s *config.Settings) ArtifactPaths {
	return ArtifactPaths{
		Bundle:    s.BundlePath,
		Labels:    s.LabelsPath,
		Backend:   s.Backend,
		ONNXModel: s.ONNXModelPath,
		ONNXLib:   s.ONNXLibPath,
	}
}

// Artifacts is the loaded, read-only model shared by every request.
type Artifacts struct {
	Vectorizer *kmer_analyzer.Vectorizer
	Classifier Classifier
	Labels     *LabelEncoder
	Backend    string

	close func()
}

// LoadArtifacts reads the classifier bundle and the label encoder and checks
// that they fit together. Every failure wraps ErrArtifact.
func LoadArtifacts(paths ArtifactPaths) (*Artifacts, error) {
	var bundle classifierBundle
	if err := readJSON(paths.Bundle, &bundle); err != nil {
		return nil, err
	}
	var labels labelBundle
	if err := readJSON(paths.Labels, &labels); err != nil {
		return nil, err
	}

	if bundle.Vect == nil {
		return nil, fmt.Errorf("%w: %s: missing \"vect\"", ErrArtifact, paths.Bundle)
	}
	vect, err := kmer_analyzer.NewVectorizer(*bundle.Vect)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: vectorizer: %v", ErrArtifact, paths.Bundle, err)
	}

	if labels.LE == nil {
		return nil, fmt.Errorf("%w: %s: missing \"le\"", ErrArtifact, paths.Labels)
	}
	le, err := NewLabelEncoder(labels.LE.Classes)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifact, paths.Labels, err)
	}

	a := &Artifacts{Vectorizer: vect, Labels: le, Backend: paths.Backend, close: func() {}}
	switch paths.Backend {
	case "", config.BackendTrees:
		a.Backend = config.BackendTrees
		if bundle.XGB == nil {
			return nil, fmt.Errorf("%w: %s: missing \"xgb\"", ErrArtifact, paths.Bundle)
		}
		booster, err := NewBooster(*bundle.XGB)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: booster: %v", ErrArtifact, paths.Bundle, err)
		}
		if booster.MaxFeature() >= vect.Dim() {
			return nil, fmt.Errorf("%w: %s: trees split on feature %d but the vectorizer has %d features",
				ErrArtifact, paths.Bundle, booster.MaxFeature(), vect.Dim())
		}
		a.Classifier = booster
	case config.BackendONNX:
		onnx, err := NewONNXClassifier(paths.ONNXModel, paths.ONNXLib, vect.Dim(), le.Len())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrArtifact, paths.ONNXModel, err)
		}
		a.Classifier = onnx
		a.close = onnx.Close
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrArtifact, paths.Backend)
	}

	if a.Classifier.NumClass() != le.Len() {
		a.Close()
		return nil, fmt.Errorf("%w: classifier has %d classes, label encoder %s has %d",
			ErrArtifact, a.Classifier.NumClass(), paths.Labels, le.Len())
	}
	return a, nil
}

// Predictor wraps the artifacts for inference.
func (a *Artifacts) Predictor() (*Predictor, error) {
	return NewPredictor(a.Vectorizer, a.Classifier, a.Labels)
}

// Close releases backend resources. Safe to call more than once.
func (a *Artifacts) Close() {
	if a.close != nil {
		a.close()
		a.close = nil
	}
}

// readJSON decodes a plain or gzipped JSON file. The file handle is released
// on every path.
func readJSON(path string, v any) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrArtifact)
	}
	rc, err := common.OpenMaybeGzip(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrArtifact, path, err)
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrArtifact, path, err)
	}
	return nil
}
