package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withLogFile(t *testing.T) string {
	t.Helper()
	prevPath := Path()
	prevTrace := TraceEnabled()
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure(prevPath)
		SetTraceEnabled(prevTrace)
	})
	return path
}

func TestTraceWritesJSONLinesWhenEnabled(t *testing.T) {
	path := withLogFile(t)
	SetTraceEnabled(true)
	Trace("picker.confirm", map[string]interface{}{"target": "main:1.1"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected trace file, got %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("trace line is not JSON: %v", err)
	}
	if entry.Event != "picker.confirm" {
		t.Fatalf("expected event picker.confirm, got %q", entry.Event)
	}
	if entry.Payload["target"] != "main:1.1" {
		t.Fatalf("expected target in payload, got %#v", entry.Payload)
	}
}

func TestTraceSilentWhenDisabled(t *testing.T) {
	path := withLogFile(t)
	SetTraceEnabled(false)
	Trace("picker.cancel", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no trace file, stat returned %v", err)
	}
}

func TestErrorAppendsMessage(t *testing.T) {
	path := withLogFile(t)
	Error(errors.New("capture-pane main:1.1: exit status 1"))
	Error(nil)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got %v", err)
	}
	if !strings.Contains(string(data), "capture-pane main:1.1") {
		t.Fatalf("expected error text in log, got %q", data)
	}
	if strings.Count(strings.TrimSpace(string(data)), "\n") != 0 {
		t.Fatalf("expected a single log line, got %q", data)
	}
}

func TestDefaultPathPrefersXDGState(t *testing.T) {
	got := DefaultPath(map[string]string{"XDG_STATE_HOME": "/state", "HOME": "/home/me"})
	if got != filepath.Join("/state", "rmux-helper", defaultLogFile) {
		t.Fatalf("unexpected path %q", got)
	}
	got = DefaultPath(map[string]string{"HOME": "/home/me"})
	if got != filepath.Join("/home/me", ".local", "state", "rmux-helper", defaultLogFile) {
		t.Fatalf("unexpected path %q", got)
	}
	if got := DefaultPath(map[string]string{}); got != "" {
		t.Fatalf("expected empty path, got %q", got)
	}
}
