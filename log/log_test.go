package log

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(LevelInfo)

	SetLevel(LevelInfo)
	Debug("hidden")
	Info("visible", "spec", "isit", "year", 2)
	Error("failed", errors.New("boom"), "url", "https://vsu.by")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be filtered at INFO level:\n%s", out)
	}
	if !strings.Contains(out, "[INFO] visible spec=isit year=2") {
		t.Errorf("missing info line:\n%s", out)
	}
	if !strings.Contains(out, "[ERROR] failed err=boom url=https://vsu.by") {
		t.Errorf("missing error line:\n%s", out)
	}

	buf.Reset()
	SetLevel(LevelError)
	Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("info message should be filtered at ERROR level: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.expected {
			t.Errorf("ParseLevel(%q) = %s, expected %s", tt.input, got, tt.expected)
		}
	}
}
