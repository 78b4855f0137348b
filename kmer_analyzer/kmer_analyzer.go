// Package kmer_analyzer turns protein sequences into bag-of-k-mers count
// vectors. A Vectorizer is built once from a fixed vocabulary and is safe for
// concurrent use afterwards; it never mutates its vocabulary.
package kmer_analyzer

import (
	"fmt"
	"strings"
)

// StandardAminoAcids is the 20-letter alphabet in alphabetical order.
var StandardAminoAcids = []rune("ACDEFGHIKLMNPQRSTVWY")

// VectorizerSpec is the serialized form of a character k-mer count vectorizer.
type VectorizerSpec struct {
	Analyzer   string         `json:"analyzer"`    // only "char" is supported
	NgramRange [2]int         `json:"ngram_range"` // inclusive [min, max] k
	Lowercase  *bool          `json:"lowercase"`   // defaults to true when absent
	Vocabulary map[string]int `json:"vocabulary"`  // k-mer -> feature index
}

// Vectorizer maps a sequence onto a fixed-dimension sparse count vector.
type Vectorizer struct {
	minK, maxK int
	lowercase  bool
	vocab      map[string]int
	dim        int
}

// FeatureVector is a sparse k-mer count vector. Absent indices are zero.
type FeatureVector struct {
	Dim    int
	Counts map[int]float64
}

// NewVectorizer validates spec and builds a Vectorizer from it.
// Vocabulary indices must cover [0, len(vocabulary)) exactly once.
func NewVectorizer(spec VectorizerSpec) (*Vectorizer, error) {
	if spec.Analyzer != "" && spec.Analyzer != "char" {
		return nil, fmt.Errorf("unsupported analyzer %q", spec.Analyzer)
	}
	minK, maxK := spec.NgramRange[0], spec.NgramRange[1]
	if minK < 1 || maxK < minK {
		return nil, fmt.Errorf("invalid ngram_range [%d, %d]", minK, maxK)
	}
	if len(spec.Vocabulary) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}

	lowercase := true
	if spec.Lowercase != nil {
		lowercase = *spec.Lowercase
	}

	dim := len(spec.Vocabulary)
	seen := make([]bool, dim)
	vocab := make(map[string]int, dim)
	for kmer, idx := range spec.Vocabulary {
		if idx < 0 || idx >= dim {
			return nil, fmt.Errorf("vocabulary index %d for %q outside [0, %d)", idx, kmer, dim)
		}
		if seen[idx] {
			return nil, fmt.Errorf("vocabulary index %d assigned twice", idx)
		}
		seen[idx] = true
		vocab[kmer] = idx
	}

	return &Vectorizer{minK: minK, maxK: maxK, lowercase: lowercase, vocab: vocab, dim: dim}, nil
}

// NewAlphabetVectorizer builds a vectorizer whose vocabulary is every k-mer
// over alphabet, indexed in lexical order. Sequences are not lower-cased.
func NewAlphabetVectorizer(alphabet []rune, k int) (*Vectorizer, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}
	kmers := AllKmers(alphabet, k)
	vocab := make(map[string]int, len(kmers))
	for i, kmer := range kmers {
		vocab[kmer] = i
	}
	lower := false
	return NewVectorizer(VectorizerSpec{
		Analyzer:   "char",
		NgramRange: [2]int{k, k},
		Lowercase:  &lower,
		Vocabulary: vocab,
	})
}

// Dim is the fixed feature-vector dimensionality.
func (v *Vectorizer) Dim() int { return v.dim }

// Transform counts every vocabulary k-mer occurring in seq. K-mers missing
// from the vocabulary are ignored, so an empty or very short sequence yields
// an all-zero vector of the same dimension.
func (v *Vectorizer) Transform(seq string) FeatureVector {
	if v.lowercase {
		seq = strings.ToLower(seq)
	}
	fv := FeatureVector{Dim: v.dim, Counts: make(map[int]float64)}
	for k := v.minK; k <= v.maxK; k++ {
		counts, _ := CountKmers(seq, k)
		for kmer, c := range counts {
			if idx, ok := v.vocab[kmer]; ok {
				fv.Counts[idx] += float64(c)
			}
		}
	}
	return fv
}

// AllKmers returns all possible k-length strings over alphabet, in the
// alphabet's order (lexical when the alphabet is sorted).
func AllKmers(alphabet []rune, k int) []string {
	var kmers []string

	// Build k-mers one residue at a time
	var build func(prefix string, depth int)
	build = func(prefix string, depth int) {
		if depth == 0 {
			kmers = append(kmers, prefix)
			return
		}
		for _, r := range alphabet {
			build(prefix+string(r), depth-1)
		}
	}
	if k > 0 {
		build("", k)
	}
	return kmers
}

// CountKmers slides a window of k runes across seq and returns the count of
// each k-mer, along with the total number of windows.
func CountKmers(seq string, k int) (map[string]int, int) {
	runes := []rune(seq)
	counts := make(map[string]int)
	total := 0
	for i := 0; i+k <= len(runes); i++ {
		counts[string(runes[i:i+k])]++
		total++
	}
	return counts, total
}

// Get returns the value at index i and whether it is present.
func (fv FeatureVector) Get(i int) (float64, bool) {
	val, ok := fv.Counts[i]
	return val, ok
}

// NNZ is the number of non-zero features.
func (fv FeatureVector) NNZ() int { return len(fv.Counts) }

// Dense32 expands the vector for backends that take dense float32 input.
func (fv FeatureVector) Dense32() []float32 {
	out := make([]float32, fv.Dim)
	for i, val := range fv.Counts {
		out[i] = float32(val)
	}
	return out
}
