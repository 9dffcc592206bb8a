package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	zlog := zerolog.New(buf).With().Timestamp().Logger()
	return &Logger{zlog: zlog}
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("production", WithOutput(&buf))

	log.Info("document composed", map[string]interface{}{"sections": 12})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON output, got error: %v", err)
	}
	if entry["message"] != "document composed" {
		t.Errorf("Expected message field, got %v", entry["message"])
	}
	if entry["service"] != "faasdoc" {
		t.Errorf("Expected service field faasdoc, got %v", entry["service"])
	}
	if entry["sections"] != float64(12) {
		t.Errorf("Expected sections field 12, got %v", entry["sections"])
	}
}

func TestNew_ProductionSkipsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New("production", WithOutput(&buf))

	log.Debug("debug message", nil)

	if buf.Len() != 0 {
		t.Errorf("Expected no output for debug in production, got %q", buf.String())
	}
}

func TestNew_DevelopmentLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New("development", WithOutput(&buf))

	log.Debug("debug message", map[string]interface{}{"key": "value1"})

	output := buf.String()
	if !strings.Contains(output, "debug message") {
		t.Error("Expected console output to contain message")
	}
	if !strings.Contains(output, "value1") {
		t.Error("Expected console output to contain field value")
	}
}

func TestNew_WithLevelOverride(t *testing.T) {
	var buf bytes.Buffer
	log := New("production", WithOutput(&buf), WithLevel("warn"))

	log.Info("info message", nil)
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered at warn level, got %q", buf.String())
	}

	log.Warn("warn message", nil)
	if !strings.Contains(buf.String(), "warn message") {
		t.Error("Expected warn message to be logged")
	}
}

func TestNew_InvalidLevelKeepsDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New("production", WithOutput(&buf), WithLevel("loud"))

	log.Info("info message", nil)
	if !strings.Contains(buf.String(), "info message") {
		t.Error("Expected info level to remain the default")
	}
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	log.Warn("data quality warning", map[string]interface{}{
		"code": "discriminator_mismatch",
	})

	output := buf.String()
	if !strings.Contains(output, "data quality warning") {
		t.Error("Expected log output to contain message")
	}
	if !strings.Contains(output, "discriminator_mismatch") {
		t.Error("Expected log output to contain code field")
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	log.Error("composition failed validation", errors.New("table too short"), map[string]interface{}{
		"variant": "faas",
	})

	output := buf.String()
	if !strings.Contains(output, "composition failed validation") {
		t.Error("Expected log output to contain message")
	}
	if !strings.Contains(output, "table too short") {
		t.Error("Expected log output to contain error message")
	}
	if !strings.Contains(output, "faas") {
		t.Error("Expected log output to contain variant field")
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	child := log.With(map[string]interface{}{
		"component": "composer",
	})
	child.Info("test message", nil)

	if !strings.Contains(buf.String(), "composer") {
		t.Error("Expected log output to contain component field from context")
	}
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	log.WithRequestID("req-12345").Info("request received", nil)

	output := buf.String()
	if !strings.Contains(output, "req-12345") {
		t.Error("Expected log output to contain request ID")
	}
	if !strings.Contains(output, "request_id") {
		t.Error("Expected log output to have request_id field")
	}
}

func TestWithDocument(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	log.WithDocument("tax_declaration", "F-001").Info("composing", nil)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON output, got error: %v", err)
	}
	if entry["variant"] != "tax_declaration" {
		t.Errorf("Expected variant field, got %v", entry["variant"])
	}
	if entry["faas_id"] != "F-001" {
		t.Errorf("Expected faas_id field, got %v", entry["faas_id"])
	}
}

func TestNop(t *testing.T) {
	log := Nop()

	// Should not panic and should produce nothing observable
	log.Info("ignored", map[string]interface{}{"key": "value"})
	log.Error("ignored", errors.New("boom"), nil)

	if log.GetZerolog() == nil {
		t.Error("Expected zerolog instance to be available")
	}
}

func TestNilFields(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	log.Info("message with nil fields", nil)

	if !strings.Contains(buf.String(), "message with nil fields") {
		t.Error("Expected message to be logged even with nil fields")
	}
}
