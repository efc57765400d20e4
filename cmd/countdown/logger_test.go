package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saas786/component-countdown-timer/internal/config"
)

func TestSetupTUILogger_WritesToFile(t *testing.T) {
	tmpDir := t.TempDir()

	result := SetupTUILogger(tmpDir, slog.LevelInfo, config.Default().LogRotation)

	// Verify file path is correct
	expectedPath := filepath.Join(tmpDir, "countdown-debug.log")
	if result.FilePath != expectedPath {
		t.Errorf("FilePath = %q, want %q", result.FilePath, expectedPath)
	}

	// Write a log message and flush
	result.Logger.Info("test message", "key", "value")
	if err := result.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Read back the file and verify content
	content, err := os.ReadFile(result.FilePath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if !strings.Contains(string(content), "test message") {
		t.Errorf("log file should contain 'test message', got: %s", content)
	}
	if !strings.Contains(string(content), `"key":"value"`) {
		t.Errorf("log file should contain key=value, got: %s", content)
	}
}

func TestSetupTUILogger_RespectsLevel(t *testing.T) {
	tmpDir := t.TempDir()

	result := SetupTUILogger(tmpDir, slog.LevelInfo, config.Default().LogRotation)

	result.Logger.Debug("debug message")
	result.Logger.Info("info message")
	if err := result.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	content, err := os.ReadFile(result.FilePath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if strings.Contains(string(content), "debug message") {
		t.Error("debug message logged despite info level")
	}
	if !strings.Contains(string(content), "info message") {
		t.Error("info message missing from log file")
	}
}

func TestSetupTUILoggerWithWriter(t *testing.T) {
	var buf bytes.Buffer

	logger := SetupTUILoggerWithWriter(&buf, slog.LevelDebug)
	logger.Debug("captured", "n", 1)

	if !strings.Contains(buf.String(), "captured") {
		t.Errorf("writer output missing message: %s", buf.String())
	}
}
