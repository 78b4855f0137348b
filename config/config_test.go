package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PROTCLASS_BUNDLE", "PROTCLASS_LABELS", "PROTCLASS_BACKEND", "PROTCLASS_ONNX_MODEL", "PROTCLASS_LOG_LEVEL", "PORT"} {
		t.Setenv(k, "")
	}
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.BundlePath != "models/xgb_model.json" || s.LabelsPath != "models/label_encoder.json" {
		t.Fatalf("unexpected artifact paths: %+v", s)
	}
	if s.Backend != BackendTrees {
		t.Fatalf("backend = %q, want %q", s.Backend, BackendTrees)
	}
	if s.ListenAddr != ":8080" {
		t.Fatalf("listen addr = %q", s.ListenAddr)
	}
	if s.LogLevel != slog.LevelInfo {
		t.Fatalf("log level = %v", s.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PROTCLASS_BUNDLE", "/srv/bundle.json.gz")
	t.Setenv("PROTCLASS_LABELS", "/srv/labels.json")
	t.Setenv("PROTCLASS_BACKEND", "ONNX")
	t.Setenv("PROTCLASS_ONNX_MODEL", "/srv/xgb.onnx")
	t.Setenv("PROTCLASS_LOG_LEVEL", "debug")
	t.Setenv("PORT", "9000")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Backend != BackendONNX || s.ONNXModelPath != "/srv/xgb.onnx" {
		t.Fatalf("onnx settings not picked up: %+v", s)
	}
	if s.BundlePath != "/srv/bundle.json.gz" || s.LabelsPath != "/srv/labels.json" {
		t.Fatalf("paths not picked up: %+v", s)
	}
	if s.ListenAddr != ":9000" || s.LogLevel != slog.LevelDebug {
		t.Fatalf("server settings not picked up: %+v", s)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown backend":    {"PROTCLASS_BACKEND": "torch"},
		"onnx without model": {"PROTCLASS_BACKEND": "onnx", "PROTCLASS_ONNX_MODEL": ""},
		"bad log level":      {"PROTCLASS_LOG_LEVEL": "loud"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("PROTCLASS_BACKEND", "")
			t.Setenv("PROTCLASS_LOG_LEVEL", "")
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

// inDir runs the rest of the test with dir as working directory.
func inDir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PROTCLASS_BUNDLE=/from/dotenv.json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PROTCLASS_BUNDLE", "")
	os.Unsetenv("PROTCLASS_BUNDLE") // godotenv never overrides a set variable
	t.Setenv("PROTCLASS_BACKEND", "")
	t.Setenv("PROTCLASS_LOG_LEVEL", "")
	inDir(t, dir)

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.BundlePath != "/from/dotenv.json" {
		t.Fatalf("bundle = %q", s.BundlePath)
	}
}

func TestLoadRejectsMalformedDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PROTCLASS_BUNDLE=\"unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PROTCLASS_BACKEND", "")
	t.Setenv("PROTCLASS_LOG_LEVEL", "")
	inDir(t, dir)

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a malformed .env")
	}
}
