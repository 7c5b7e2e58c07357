package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"
	"testing"
	"time"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(999), "UNKNOWN"}, // Invalid level
	}

	for _, test := range tests {
		if result := test.level.String(); result != test.expected {
			t.Errorf("Level.String() = %v, expected %v", result, test.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"trace", TraceLevel},
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"WARN", WarnLevel},
		{"Error", ErrorLevel},
		{"bogus", InfoLevel},
		{"", InfoLevel},
	}

	for _, test := range tests {
		if result := ParseLevel(test.input); result != test.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestLoggerInitialization(t *testing.T) {
	config := Config{
		Level:     InfoLevel,
		UseColor:  false,
		JSON:      false,
		Component: "test",
		NoOp:      false,
	}

	err := Initialize(config)
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	if defaultLogger == nil {
		t.Fatal("Initialize() did not set defaultLogger")
	}

	if defaultLogger.config.Component != "test" {
		t.Errorf("Initialize() did not set config correctly, got component: %s", defaultLogger.config.Component)
	}
}

func TestLoggerPrettyFormatting(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{
		config: Config{
			Level:     InfoLevel,
			UseColor:  false,
			JSON:      false,
			Component: "test",
			NoOp:      false,
		},
		logger: log.New(&buf, "", 0),
	}

	entry := LogEntry{
		Time:      time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		Level:     "INFO",
		Message:   "test message",
		Component: "test",
		Fields:    map[string]interface{}{"key": "value"},
	}

	output := logger.formatPretty(entry)

	if !strings.Contains(output, "2025-01-01 12:00:00") {
		t.Errorf("formatPretty() missing timestamp: %s", output)
	}
	if !strings.Contains(output, "[INFO]") {
		t.Errorf("formatPretty() missing level: %s", output)
	}
	if !strings.Contains(output, "test:") {
		t.Errorf("formatPretty() missing component: %s", output)
	}
	if !strings.Contains(output, "test message") {
		t.Errorf("formatPretty() missing message: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("formatPretty() missing field: %s", output)
	}
}

func TestLoggerNoOpIndicator(t *testing.T) {
	logger := &Logger{
		config: Config{
			Level:     InfoLevel,
			UseColor:  false,
			Component: "test",
			NoOp:      true,
		},
		logger: log.New(&bytes.Buffer{}, "", 0),
	}

	entry := LogEntry{
		Time:    time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		Level:   "INFO",
		Message: "would write file",
	}

	output := logger.formatPretty(entry)
	if !strings.Contains(output, "[NO-OP]") {
		t.Errorf("formatPretty() missing no-op indicator: %s", output)
	}
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{
		config: Config{
			Level:     InfoLevel,
			JSON:      true,
			Component: "test",
		},
		logger: log.New(&buf, "", 0),
	}

	logger.Log(InfoLevel, "json message", String("isbn", "9780140449136"))

	var entry LogEntry
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("JSON output did not parse: %v\n%s", err, buf.String())
	}
	if entry.Message != "json message" {
		t.Errorf("JSON entry message = %q, expected %q", entry.Message, "json message")
	}
	if entry.Fields["isbn"] != "9780140449136" {
		t.Errorf("JSON entry missing isbn field: %v", entry.Fields)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{
		config: Config{Level: WarnLevel, Component: "test"},
		logger: log.New(&buf, "", 0),
	}

	logger.Log(InfoLevel, "should be filtered")
	if buf.Len() != 0 {
		t.Errorf("Log() emitted below-threshold message: %s", buf.String())
	}

	logger.Log(ErrorLevel, "should pass")
	if !strings.Contains(buf.String(), "should pass") {
		t.Errorf("Log() dropped above-threshold message")
	}
}

func TestFieldConstructors(t *testing.T) {
	if f := String("k", "v"); f.Key != "k" || f.Value != "v" {
		t.Errorf("String() = %+v", f)
	}
	if f := Int("n", 42); f.Key != "n" || f.Value != 42 {
		t.Errorf("Int() = %+v", f)
	}
	if f := Bool("b", true); f.Key != "b" || f.Value != true {
		t.Errorf("Bool() = %+v", f)
	}
}
