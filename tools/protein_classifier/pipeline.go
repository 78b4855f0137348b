package protein_classifier

import (
	"fmt"
	"math"
)

// TopClasses is how many ranked classes a Report carries.
const TopClasses = 5

// Report is everything shown for one classified sequence.
type Report struct {
	Source            string         `json:"source"`
	Input             string         `json:"input"`
	Normalized        string         `json:"normalized"`
	Label             string         `json:"label"`
	ClassIndex        int            `json:"class_index"`
	Confidence        float64        `json:"confidence"`
	ConfidencePercent float64        `json:"confidence_percent"`
	KmerFeatures      int            `json:"kmer_features"` // 0: nothing in the model vocabulary matched
	Top               []ClassScore   `json:"top"`
	Frequencies       FrequencyTable `json:"frequencies"`
	UniqueCodes       int            `json:"unique_codes"`
}

// Service runs the request -> normalize -> predict -> frequency pipeline.
// It is stateless apart from the read-only predictor and safe for concurrent use.
type Service struct {
	predictor *Predictor
}

func NewService(p *Predictor) *Service {
	return &Service{predictor: p}
}

// Classify handles one request. Input problems come back as ErrNotAlphabetic,
// ErrEmptySequence or ErrUnknownPreset and no prediction is attempted.
func (s *Service) Classify(req Request) (*Report, error) {
	raw, err := req.Resolve()
	if err != nil {
		return nil, err
	}
	rep, err := s.ClassifySequence(raw)
	if err != nil {
		return nil, err
	}
	rep.Source = req.Source.String()
	return rep, nil
}

// ClassifySequence runs the pipeline on an already resolved raw sequence.
// Sequences with nothing left after normalization are rejected.
func (s *Service) ClassifySequence(raw string) (*Report, error) {
	normalized := Normalize(raw)
	if normalized == "" {
		return nil, ErrEmptySequence
	}

	pred, err := s.predictor.Predict(normalized)
	if err != nil {
		return nil, fmt.Errorf("prediction failed: %w", err)
	}

	freqs := CodeFrequencies(raw)
	return &Report{
		Input:             raw,
		Normalized:        normalized,
		Label:             pred.Label,
		ClassIndex:        pred.Index,
		Confidence:        pred.Confidence,
		ConfidencePercent: RoundPercent(pred.Confidence),
		KmerFeatures:      pred.Features,
		Top:               s.predictor.Rank(pred, TopClasses),
		Frequencies:       freqs,
		UniqueCodes:       freqs.UniqueCodes(),
	}, nil
}

// RoundPercent converts a probability to a percentage with 2 decimals.
func RoundPercent(p float64) float64 {
	return math.Round(p*100*100) / 100
}
