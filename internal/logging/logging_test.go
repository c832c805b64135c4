package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestSetupConsoleOnly(t *testing.T) {
	logger, err := Setup("", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("hello")
}

func TestSetupWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roofcalc.log")
	logger, err := Setup(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("estimate complete", zap.String("roof", "GABLE"))
	logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "estimate complete") {
		t.Errorf("log file missing entry: %q", string(data))
	}
}

func TestSetupBadPath(t *testing.T) {
	if _, err := Setup(filepath.Join(t.TempDir(), "no", "such", "dir.log"), false); err == nil {
		t.Error("expected error for unwritable log path")
	}
}
