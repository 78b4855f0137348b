package protein_classifier

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"
)

const examplePreset = "MEHTIAVIPGSFDPITYGHLDIIERSTDRFDEIHVCVLKNSKKEGTFSLEERMDLIEQSVKHLPNVKVHQFSGLLVDYCEQVGAKTIIRGLRAVSDFEYELRLTSMNKKLNNEIETLYMMSSTNYSFISSSIVKEVAAYRADISEFVPPYVEKALKKKFK"

func TestClassifyPresetEndToEnd(t *testing.T) {
	svc, arts := loadTestService(t)
	if Presets[1] != examplePreset {
		t.Fatal("preset list changed")
	}

	first, err := svc.Classify(PresetChoice(1))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(arts.Labels.Classes(), first.Label) || first.Confidence < 0 || first.Confidence > 1 {
		t.Fatalf("bad report %+v", first)
	}
	if first.Label != "hydrolase" || first.ConfidencePercent != 20.33 {
		t.Fatalf("got %s %.2f%%, want hydrolase 20.33%%", first.Label, first.ConfidencePercent)
	}
	if math.Abs(first.Confidence-0.2033097922952409) > 1e-9 {
		t.Fatalf("confidence = %v", first.Confidence)
	}
	if first.Source != "preset" || first.Input != examplePreset {
		t.Fatalf("source/input not recorded: %s", first.Source)
	}
	if first.Frequencies.Sum() != len(examplePreset) || first.UniqueCodes != first.Frequencies.UniqueCodes() {
		t.Fatalf("frequency table inconsistent: %+v", first.Frequencies)
	}
	if len(first.Top) != TopClasses || first.Top[0].Label != first.Label {
		t.Fatalf("top classes = %+v", first.Top)
	}

	second, err := svc.Classify(PresetChoice(1))
	if err != nil {
		t.Fatal(err)
	}
	if second.Label != first.Label || second.Confidence != first.Confidence {
		t.Fatalf("non-deterministic: %v/%v vs %v/%v", first.Label, first.Confidence, second.Label, second.Confidence)
	}
}

func TestClassifyFreeTextMatchesPreset(t *testing.T) {
	svc, _ := loadTestService(t)
	typed, err := svc.Classify(FreeText(" " + examplePreset + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	chosen, _ := svc.Classify(PresetChoice(1))
	if typed.Label != chosen.Label || typed.Confidence != chosen.Confidence {
		t.Fatal("both input paths must share one pipeline")
	}
	if typed.Source != "free_text" {
		t.Fatalf("source = %s", typed.Source)
	}
}

func TestClassifyCountsTrimmedFreeText(t *testing.T) {
	svc, _ := loadTestService(t)
	rep, err := svc.Classify(FreeText("  MKV\n"))
	if err != nil {
		t.Fatal(err)
	}
	if rep.Input != "MKV" {
		t.Fatalf("input = %q", rep.Input)
	}
	if rep.Frequencies.Sum() != len(rep.Input) || rep.UniqueCodes != 3 {
		t.Fatalf("frequencies = %+v", rep.Frequencies)
	}
}

func TestClassifyLowerCaseInput(t *testing.T) {
	svc, _ := loadTestService(t)
	rep, err := svc.Classify(FreeText("mkw"))
	if err != nil {
		t.Fatal(err)
	}
	if rep.Normalized != "MKW" || rep.Label != "transferase" {
		t.Fatalf("got %+v", rep)
	}
	// frequencies come from the raw text
	if rep.Frequencies.Codes[0].Code != "m" {
		t.Fatalf("frequencies = %+v", rep.Frequencies.Codes)
	}
}

func TestClassifyUnknownKmersFallsBackToPrior(t *testing.T) {
	svc, _ := loadTestService(t)
	rep, err := svc.Classify(FreeText("JJJ"))
	if err != nil {
		t.Fatal(err)
	}
	// J survives normalization but is not in the vocabulary
	if rep.KmerFeatures != 0 || rep.Label != "transferase" || rep.ConfidencePercent != 2.94 {
		t.Fatalf("got %+v", rep)
	}

	known, _ := svc.Classify(PresetChoice(1))
	if known.KmerFeatures == 0 {
		t.Fatal("preset should match vocabulary k-mers")
	}
}

func TestClassifyRejectsBeforePredicting(t *testing.T) {
	labels := []string{"lectin", "ligase"}
	p, clf := mockPredictor(t, labels, []float64{0.6, 0.4})
	svc := NewService(p)

	cases := []struct {
		req  Request
		want error
	}{
		{FreeText("12345"), ErrNotAlphabetic},
		{FreeText("MKV 2"), ErrNotAlphabetic},
		{FreeText(""), ErrEmptySequence},
		{FreeText("XXUZOB"), ErrEmptySequence},
		{PresetChoice(-1), ErrUnknownPreset},
		{PresetChoice(len(Presets)), ErrUnknownPreset},
	}
	for _, tc := range cases {
		if _, err := svc.Classify(tc.req); !errors.Is(err, tc.want) {
			t.Errorf("%+v: err = %v, want %v", tc.req, err, tc.want)
		}
	}
	if clf.calls != 0 {
		t.Fatalf("classifier called %d times for rejected input", clf.calls)
	}

	if _, err := svc.Classify(Request{Source: Source(9)}); err == nil {
		t.Fatal("unknown source should fail")
	}
}

func TestClassifyRandomSequences(t *testing.T) {
	svc, arts := loadTestService(t)
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		seq := randomLetters(r, 1+r.Intn(120))
		rep, err := svc.Classify(FreeText(seq))
		if errors.Is(err, ErrEmptySequence) {
			continue // only non-standard letters were drawn
		}
		if err != nil {
			t.Fatalf("%q: %v", seq, err)
		}
		if !slices.Contains(arts.Labels.Classes(), rep.Label) || rep.Confidence < 0 || rep.Confidence > 1 {
			t.Fatalf("%q: bad report %+v", seq, rep)
		}
		if rep.Frequencies.Sum() != len(seq) {
			t.Fatalf("%q: counts sum to %d", seq, rep.Frequencies.Sum())
		}
	}
}

func TestRoundPercent(t *testing.T) {
	for p, want := range map[float64]float64{0: 0, 1: 100, 0.123456: 12.35, 0.5: 50} {
		if got := RoundPercent(p); got != want {
			t.Errorf("RoundPercent(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestSourceString(t *testing.T) {
	if SourceFreeText.String() != "free_text" || SourcePreset.String() != "preset" || Source(5).String() != "Source(5)" {
		t.Fatal("unexpected source names")
	}
}
