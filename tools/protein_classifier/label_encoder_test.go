package protein_classifier

import (
	"errors"
	"testing"
)

func TestLabelEncoder(t *testing.T) {
	le, err := NewLabelEncoder([]string{"hydrolase", "toxin", "virus"})
	if err != nil {
		t.Fatal(err)
	}
	if le.Len() != 3 {
		t.Fatalf("len = %d", le.Len())
	}
	if got, _ := le.InverseTransform(1); got != "toxin" {
		t.Fatalf("InverseTransform(1) = %q", got)
	}
	if _, err := le.InverseTransform(3); !errors.Is(err, ErrUnknownClass) {
		t.Fatalf("err = %v", err)
	}
	if _, err := le.InverseTransform(-1); !errors.Is(err, ErrUnknownClass) {
		t.Fatalf("err = %v", err)
	}

	classes := le.Classes()
	classes[0] = "changed"
	if got, _ := le.InverseTransform(0); got != "hydrolase" {
		t.Fatal("Classes must return a copy")
	}
}

func TestNewLabelEncoderRejects(t *testing.T) {
	for name, classes := range map[string][]string{
		"empty":     nil,
		"blank":     {"toxin", ""},
		"duplicate": {"toxin", "toxin"},
	} {
		if _, err := NewLabelEncoder(classes); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}
