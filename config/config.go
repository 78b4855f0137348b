package config // Runtime configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Classifier backends accepted in PROTCLASS_BACKEND
const (
	BackendTrees = "trees"
	BackendONNX  = "onnx"
)

// Settings holds everything a tool needs to locate and load the model artifacts.
// Tool flags are applied on top of the values returned by Load.
type Settings struct {
	BundlePath string // PROTCLASS_BUNDLE, vectorizer + boosted trees
	LabelsPath string // PROTCLASS_LABELS, label encoder

	Backend       string // PROTCLASS_BACKEND=trees|onnx
	ONNXModelPath string // PROTCLASS_ONNX_MODEL
	ONNXLibPath   string // PROTCLASS_ONNX_LIB, onnxruntime shared library (optional)

	LogLevel   slog.Level // PROTCLASS_LOG_LEVEL=debug|info|warn|error
	ListenAddr string     // ":" + PORT
}

// Load reads .env (if present) then environment variables and returns Settings.
func Load() (*Settings, error) {
	// A missing .env is the normal case; a broken one is not
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	backend := strings.ToLower(envOr("PROTCLASS_BACKEND", BackendTrees))
	if backend != BackendTrees && backend != BackendONNX {
		return nil, fmt.Errorf("unsupported PROTCLASS_BACKEND %q (expected %q or %q)", backend, BackendTrees, BackendONNX)
	}

	level, err := ParseLogLevel(envOr("PROTCLASS_LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	s := &Settings{
		BundlePath:    envOr("PROTCLASS_BUNDLE", "models/xgb_model.json"),
		LabelsPath:    envOr("PROTCLASS_LABELS", "models/label_encoder.json"),
		Backend:       backend,
		ONNXModelPath: envOr("PROTCLASS_ONNX_MODEL", ""),
		ONNXLibPath:   envOr("PROTCLASS_ONNX_LIB", ""),
		LogLevel:      level,
		ListenAddr:    ":" + envOr("PORT", "8080"),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate reports settings that cannot possibly load a model.
func (s *Settings) Validate() error {
	if s.BundlePath == "" {
		return fmt.Errorf("classifier bundle path is empty")
	}
	if s.LabelsPath == "" {
		return fmt.Errorf("label encoder path is empty")
	}
	if s.Backend == BackendONNX && s.ONNXModelPath == "" {
		return fmt.Errorf("PROTCLASS_ONNX_MODEL is required when PROTCLASS_BACKEND=%s", BackendONNX)
	}
	return nil
}

// ParseLogLevel maps a level name onto slog levels.
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
