// Package diag carries validation diagnostics from the engine to a
// consumer. A Sink receives one Message per finding; the engine never
// formats or filters, that is sink policy.
package diag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Severity of a single finding.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Message is one validation finding.
type Message struct {
	Severity Severity
	// Pointer locates the offending node within the document root.
	Pointer string
	// Meta is the provenance of the offending node, if any.
	Meta string
	Text string
}

func (m Message) String() string {
	if m.Meta == "" {
		return fmt.Sprintf("%s: %s: %s", m.Severity, m.Pointer, m.Text)
	}
	return fmt.Sprintf("%s: %s (from %s): %s", m.Severity, m.Pointer, m.Meta, m.Text)
}

// Sink receives validation findings.
type Sink interface {
	Report(m Message)
}

// ListSink collects findings in order.
type ListSink struct {
	Messages []Message
}

func (s *ListSink) Report(m Message) {
	s.Messages = append(s.Messages, m)
}

// HasErrors tells whether any collected finding is an Error.
func (s *ListSink) HasErrors() bool {
	for _, m := range s.Messages {
		if m.Severity == Error {
			return true
		}
	}
	return false
}

// ConsoleSink writes human-readable findings, colored when the
// destination is a terminal.
type ConsoleSink struct {
	W      io.Writer
	Colors bool
}

// Console returns a sink on stderr with colors auto-detected.
func Console() *ConsoleSink {
	return &ConsoleSink{W: os.Stderr, Colors: isatty.IsTerminal(os.Stderr.Fd())}
}

var (
	warnColor = color.RGB(231, 175, 45)
	errColor  = color.RGB(216, 30, 91)
)

func (s *ConsoleSink) Report(m Message) {
	if !s.Colors {
		fmt.Fprintln(s.W, m)
		return
	}
	c := warnColor
	if m.Severity == Error {
		c = errColor
	}
	fmt.Fprintf(s.W, "%s: %s", c.Sprint(m.Severity), m.Pointer)
	if m.Meta != "" {
		fmt.Fprintf(s.W, " (from %s)", m.Meta)
	}
	fmt.Fprintf(s.W, ": %s\n", m.Text)
}

// LogSink forwards findings to a structured logger.
type LogSink struct {
	Log *slog.Logger
}

// NewLogSink builds a sink over a JSON slog handler on w.
func NewLogSink(w io.Writer) *LogSink {
	return &LogSink{Log: slog.New(slog.NewJSONHandler(w, nil))}
}

func (s *LogSink) Report(m Message) {
	level := slog.LevelWarn
	if m.Severity == Error {
		level = slog.LevelError
	}
	s.Log.Log(context.Background(), level, m.Text, "pointer", m.Pointer, "meta", m.Meta)
}
