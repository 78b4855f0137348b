package seq_generator

import (
	"math/rand"
)

// 20 standard amino acids
var aminoAcids = []byte("ACDEFGHIKLMNPQRSTVWY")

// Codes the classifier strips before vectorizing
var nonStandard = []byte("XUZOB")

// GenerateProtein returns a random protein starting with methionine.
// Each residue after the first is a non-standard code with probability nonStd.
func GenerateProtein(r *rand.Rand, length int, nonStd float64) string {
	if length < 1 {
		return ""
	}
	seq := make([]byte, length)
	seq[0] = 'M'
	for i := 1; i < length; i++ {
		if nonStd > 0 && r.Float64() < nonStd {
			seq[i] = nonStandard[r.Intn(len(nonStandard))]
			continue
		}
		seq[i] = aminoAcids[r.Intn(len(aminoAcids))]
	}
	return string(seq)
}
