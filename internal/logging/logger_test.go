package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gametitle/internal/config"
)

func boolPtr(v bool) *bool { return &v }

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf, Color: boolPtr(false)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	NewComponentLogger(logger, "scan").Info("guessed title",
		String(FieldPath, "/games/Elliot Quest"),
		String(FieldTitle, "Elliot Quest"),
		Int("count", 3),
	)

	line := strings.TrimSpace(buf.String())
	for _, want := range []string{
		" INFO scan: guessed title",
		`path="/games/Elliot Quest"`,
		`title="Elliot Quest"`,
		"count=3",
	} {
		if !strings.Contains(line, want) {
			t.Fatalf("console line %q missing %q", line, want)
		}
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be rendered as a prefix, got %q", line)
	}
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("unexpected color codes in %q", line)
	}
}

func TestConsoleColor(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Writer: &buf, Color: boolPtr(true)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Warn("careful")
	if !strings.Contains(buf.String(), ansiYellow+"WARN"+ansiReset) {
		t.Fatalf("expected colored level, got %q", buf.String())
	}
}

func TestConsoleGroups(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Writer: &buf, Color: boolPtr(false)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.WithGroup("corpus").Info("scored", slog.Group("report", Int("score", -10)))
	if !strings.Contains(buf.String(), "corpus.report.score=-10") {
		t.Fatalf("expected dotted group key, got %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("scan complete", Int("entries", 2), Error(errors.New("boom")))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if payload["msg"] != "scan complete" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key in %v", payload)
	}
	if payload["entries"] != float64(2) {
		t.Fatalf("unexpected entries: %v", payload["entries"])
	}
	if payload["error"] != "boom" {
		t.Fatalf("unexpected error: %v", payload["error"])
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		debug bool
		info  bool
		warn  bool
	}{
		{level: "debug", debug: true, info: true, warn: true},
		{level: "", info: true, warn: true},
		{level: "INFO", info: true, warn: true},
		{level: "warning", warn: true},
		{level: "error"},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(Options{Level: tt.level, Writer: &buf, Color: boolPtr(false)})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			out := buf.String()
			if got := strings.Contains(out, "DEBUG"); got != tt.debug {
				t.Fatalf("debug emitted=%v, want %v: %q", got, tt.debug, out)
			}
			if got := strings.Contains(out, "INFO"); got != tt.info {
				t.Fatalf("info emitted=%v, want %v: %q", got, tt.info, out)
			}
			if got := strings.Contains(out, "WARN"); got != tt.warn {
				t.Fatalf("warn emitted=%v, want %v: %q", got, tt.warn, out)
			}
		})
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLogFileReceivesCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gametitle.log")
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf, File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Fatalf("log file missing record: %q", data)
	}
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Fatalf("writer missing record: %q", buf.String())
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "debug"
	cfg.Logging.File = filepath.Join(t.TempDir(), "gametitle.log")

	logger, err := NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if !logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Fatal("expected debug to be enabled")
	}
	logger.Debug("probe")
	data, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"source":"logger_test.go:`) {
		t.Fatalf("expected source at debug level, got %q", data)
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewComponentLogger(nil, "quiet")
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Fatal("nop logger should not be enabled")
	}
	logger.Error("dropped", Error(nil))
}

func TestFormatValueQuoting(t *testing.T) {
	tests := []struct {
		value slog.Value
		want  string
	}{
		{slog.StringValue("plain"), "plain"},
		{slog.StringValue(""), `""`},
		{slog.StringValue("two words"), `"two words"`},
		{slog.StringValue("a=b"), `"a=b"`},
		{slog.BoolValue(true), "true"},
		{slog.Float64Value(1.5), "1.5"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.value); got != tt.want {
			t.Fatalf("formatValue(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
