package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("info", "json", &buf)

	logger.Debug("hidden")
	logger.Info("palette generated", "roles", 16)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line (debug filtered), got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if entry["msg"] != "palette generated" || entry["service"] != "themebuilder" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestSetupText(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", "text", &buf).Debug("shown")

	if !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("expected text output, got %q", buf.String())
	}
}
