package sanity_check

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	pc "prot_classifier_go/tools/protein_classifier"
)

var modelArgs = []string{
	"-bundle", filepath.Join("..", "protein_classifier", "testdata", "xgb_model.json"),
	"-labels", filepath.Join("..", "protein_classifier", "testdata", "label_encoder.json"),
	"-backend", "trees",
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	if err := Run(append(modelArgs, "-preset", "1"), &out); err != nil {
		t.Fatalf("Run: %v\n%s", err, out.String())
	}
	for _, want := range []string{"Classes:\t75", "Features:\t20", "hydrolase (20.33 %)", "Successfully running"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunMissingArtifacts(t *testing.T) {
	var out bytes.Buffer
	err := Run([]string{"-bundle", filepath.Join(t.TempDir(), "none.json"), "-backend", "trees"}, &out)
	if !errors.Is(err, pc.ErrArtifact) {
		t.Fatalf("err = %v", err)
	}
}
