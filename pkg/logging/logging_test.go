package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(999), "UNKNOWN"},
	}

	for _, test := range tests {
		result := test.level.String()
		if result != test.expected {
			t.Errorf("LogLevel(%d).String() = %s, expected %s", test.level, result, test.expected)
		}
	}
}

func TestLogLevel_SlogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{LogLevel(999), slog.LevelInfo}, // Default for unknown
	}

	for _, test := range tests {
		result := test.level.SlogLevel()
		if result != test.expected {
			t.Errorf("LogLevel(%d).SlogLevel() = %v, expected %v", test.level, result, test.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	if err != nil || level != LevelDebug {
		t.Errorf("ParseLevel(debug) = %v, %v", level, err)
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestInitForCLI(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	if defaultLogger == nil {
		t.Fatal("Expected defaultLogger to be set after InitForCLI")
	}

	Info("test-subsystem", "test message %d", 42)

	output := buf.String()
	if !strings.Contains(output, "test message 42") {
		t.Error("Expected log message to appear in CLI output")
	}
	if !strings.Contains(output, "test-subsystem") {
		t.Error("Expected subsystem to appear in CLI output")
	}
}

func TestCLILevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Debug("test", "debug message")
	Info("test", "info message")
	Warn("test", "warn message")
	Error("test", errors.New("boom"), "error message")

	output := buf.String()
	if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
		t.Errorf("Expected debug and info to be filtered, got %q", output)
	}
	if !strings.Contains(output, "warn message") {
		t.Error("Expected warn message in output")
	}
	if !strings.Contains(output, "error=boom") {
		t.Errorf("Expected error attribute in output, got %q", output)
	}
}

func TestAudit(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Audit(AuditEvent{
		Action:    "job_create",
		Outcome:   "success",
		Target:    "Daily Run",
		ProjectID: 7,
		JobID:     42,
	})

	output := buf.String()
	for _, want := range []string{"[AUDIT] job_create", "outcome=success", "job_id=42", "project_id=7"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in audit output %q", want, output)
		}
	}
}

func TestAuditRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Audit(AuditEvent{Action: "job_update", Outcome: "success", Target: "x"})

	if buf.Len() != 0 {
		t.Errorf("Expected audit to be filtered at warn level, got %q", buf.String())
	}
}
