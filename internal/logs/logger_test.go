package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"", slog.LevelWarn, true},
		{"DEBUG", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"error", slog.LevelError, true},
		{"loud", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestFanoutToConsoleAndFile(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "uriql.log")
	l, err := New(Options{Level: "info", Console: &console, File: path})
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("hidden")
	l.Info("tokenized", "count", 3)
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(console.String(), "hidden") || !strings.Contains(console.String(), "msg=tokenized count=3") {
		t.Fatalf("console = %q", console.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &rec); err != nil {
		t.Fatalf("log file is not one JSON record: %v\n%s", err, data)
	}
	if rec["msg"] != "tokenized" || rec["count"] != float64(3) {
		t.Fatalf("file record = %v", rec)
	}
}

func TestLevelIsAdjustable(t *testing.T) {
	var console bytes.Buffer
	l, err := New(Options{Console: &console})
	if err != nil {
		t.Fatal(err)
	}
	l.Info("before")
	l.Level.Set(slog.LevelDebug)
	l.Debug("after")
	if out := console.String(); strings.Contains(out, "before") || !strings.Contains(out, "after") {
		t.Fatalf("console = %q", out)
	}
}
