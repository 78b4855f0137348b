package protein_classifier

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"prot_classifier_go/config"
)

func writeJSON(t *testing.T, name string, v any, gz bool) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if gz {
		zw := gzip.NewWriter(f)
		zw.Write(data)
		if err := zw.Close(); err != nil {
			t.Fatal(err)
		}
		return path
	}
	if _, err := f.Write(data); err != nil {
		t.Fatal(err)
	}
	return path
}

func readTestBundle(t *testing.T) map[string]any {
	t.Helper()
	data, err := os.ReadFile(testBundle)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestLoadArtifacts(t *testing.T) {
	arts := loadTestArtifacts(t)
	if arts.Labels.Len() != 75 {
		t.Fatalf("labels = %d, want 75", arts.Labels.Len())
	}
	if arts.Vectorizer.Dim() != 20 {
		t.Fatalf("dim = %d", arts.Vectorizer.Dim())
	}
	if arts.Classifier.NumClass() != 75 || arts.Backend != config.BackendTrees {
		t.Fatalf("classifier classes = %d backend = %q", arts.Classifier.NumClass(), arts.Backend)
	}
	arts.Close()
	arts.Close() // second close is a no-op
}

func TestLoadArtifactsGzip(t *testing.T) {
	bundle := writeJSON(t, "xgb_model.json.gz", readTestBundle(t), true)
	arts, err := LoadArtifacts(ArtifactPaths{Bundle: bundle, Labels: testLabels})
	if err != nil {
		t.Fatalf("LoadArtifacts: %v", err)
	}
	defer arts.Close()
	if arts.Backend != config.BackendTrees {
		t.Fatalf("empty backend should default to trees, got %q", arts.Backend)
	}
}

func TestLoadArtifactsMissingFile(t *testing.T) {
	_, err := LoadArtifacts(ArtifactPaths{Bundle: filepath.Join(t.TempDir(), "nope.json"), Labels: testLabels})
	if !errors.Is(err, ErrArtifact) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v", err)
	}
	_, err = LoadArtifacts(ArtifactPaths{Bundle: testBundle, Labels: ""})
	if !errors.Is(err, ErrArtifact) {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadArtifactsCorrupt(t *testing.T) {
	corrupt := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(corrupt, []byte(`{"vect": {`), 0644); err != nil {
		t.Fatal(err)
	}

	noVect := readTestBundle(t)
	delete(noVect, "vect")
	noXGB := readTestBundle(t)
	delete(noXGB, "xgb")
	farFeature := readTestBundle(t)
	farFeature["xgb"].(map[string]any)["num_feature"] = 0
	farFeature["xgb"].(map[string]any)["trees"].([]any)[0].(map[string]any)["split"] = "f25"

	threeLabels := writeJSON(t, "le.json", map[string]any{"le": map[string]any{"classes": []string{"a", "b", "c"}}}, false)
	noLE := writeJSON(t, "le.json", map[string]any{"encoder": nil}, false)

	cases := map[string]ArtifactPaths{
		"corrupt bundle":       {Bundle: corrupt, Labels: testLabels},
		"corrupt labels":       {Bundle: testBundle, Labels: corrupt},
		"missing vect":         {Bundle: writeJSON(t, "b.json", noVect, false), Labels: testLabels},
		"missing xgb":          {Bundle: writeJSON(t, "b.json", noXGB, false), Labels: testLabels},
		"missing le":           {Bundle: testBundle, Labels: noLE},
		"class count mismatch": {Bundle: testBundle, Labels: threeLabels},
		"feature out of range": {Bundle: writeJSON(t, "b.json", farFeature, false), Labels: testLabels},
		"unknown backend":      {Bundle: testBundle, Labels: testLabels, Backend: "torch"},
		"onnx without a model": {Bundle: testBundle, Labels: testLabels, Backend: config.BackendONNX},
	}
	for name, paths := range cases {
		t.Run(name, func(t *testing.T) {
			arts, err := LoadArtifacts(paths)
			if err == nil {
				arts.Close()
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrArtifact) {
				t.Fatalf("err = %v, want ErrArtifact", err)
			}
		})
	}
}

func TestPathsFromSettings(t *testing.T) {
	s := &config.Settings{BundlePath: "b", LabelsPath: "l", Backend: "onnx", ONNXModelPath: "m", ONNXLibPath: "lib"}
	p := PathsFromSettings(s)
	if p != (ArtifactPaths{Bundle: "b", Labels: "l", Backend: "onnx", ONNXModel: "m", ONNXLib: "lib"}) {
		t.Fatalf("got %+v", p)
	}
}
