package log_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/randomizedcoder/bounded-deque/internal/log"
)

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		format  string
		wantErr bool
	}{
		{"", false},
		{log.FormatConsole, false},
		{log.FormatDev, false},
		{log.FormatNone, false},
		{"json", true},
	}

	for _, c := range cases {
		t.Run(c.format, func(t *testing.T) {
			t.Parallel()

			l, err := log.New(c.format, &bytes.Buffer{}, slog.LevelInfo)
			if c.wantErr {
				if err == nil {
					t.Errorf("log.New(%q) error = nil, want error", c.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("log.New(%q) error = %v, want nil", c.format, err)
			}
			if l == nil {
				t.Errorf("log.New(%q) returned nil logger", c.format)
			}
		})
	}
}

func TestNewConsole_WritesErrorAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := log.NewConsole(&buf, slog.LevelDebug)
	l.Warn("push rejected", "error", errors.New("deque: full"))

	out := buf.String()
	if !strings.Contains(out, "push rejected") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "deque: full") {
		t.Errorf("expected error text in output, got %q", out)
	}
}

func TestNewConsole_HonorsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := log.NewConsole(&buf, slog.LevelWarn)
	l.Debug("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected no output below level, got %q", buf.String())
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(t.Context(), slog.LevelError) {
		t.Error("expected Noop logger to be disabled at every level")
	}
	log.Noop.With("k", "v").WithGroup("g").Error("dropped")
}
