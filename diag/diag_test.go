package diag

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestListSink(t *testing.T) {
	var s ListSink
	s.Report(Message{Severity: Warning, Pointer: "/a", Text: "odd"})
	if s.HasErrors() {
		t.Errorf("warning counted as error")
	}
	s.Report(Message{Severity: Error, Pointer: "/b", Text: "bad"})
	if !s.HasErrors() || len(s.Messages) != 2 {
		t.Errorf("messages %v", s.Messages)
	}
}

func TestConsoleSinkPlain(t *testing.T) {
	var buf strings.Builder
	s := &ConsoleSink{W: &buf}
	s.Report(Message{Severity: Error, Pointer: "/creatures/0", Meta: "mod/a.json", Text: "not a mapping"})
	want := "error: /creatures/0 (from mod/a.json): not a mapping\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestLogSink(t *testing.T) {
	var buf strings.Builder
	s := NewLogSink(&buf)
	s.Report(Message{Severity: Error, Pointer: "/x", Text: "bad"})
	var rec map[string]any
	if err := json.Unmarshal([]byte(buf.String()), &rec); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if rec["level"] != "ERROR" || rec["msg"] != "bad" || rec["pointer"] != "/x" {
		t.Errorf("record %v", rec)
	}
}
