package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevelAndFormat(t *testing.T) {
	if ParseLevel("WARNING") != Warn {
		t.Fatalf("expected warn")
	}
	if ParseLevel("nonsense") != Info {
		t.Fatalf("expected info fallback")
	}
	if ParseFormat(" JSON ") != FormatJSON {
		t.Fatalf("expected json")
	}
	if ParseFormat("") != FormatText {
		t.Fatalf("expected text default")
	}
}

func TestJSONLogger_WritesFieldsAndRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "test-app", Output: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"patient_id": "p-1"}).Info("analysis finished", map[string]any{"medications": 3, "": "skip"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line (debug filtered), got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid json log line: %v", err)
	}
	if entry["msg"] != "analysis finished" || entry["app"] != "test-app" || entry["patient_id"] != "p-1" {
		t.Fatalf("unexpected entry %#v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key, got %#v", entry)
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty keys must be skipped")
	}
}
