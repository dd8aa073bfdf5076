// Package log provides the slog loggers used by the deque and the tools.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"
)

// Format names accepted by New.
const (
	FormatConsole = "console"
	FormatDev     = "dev"
	FormatNone    = "none"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByKind(slog.KindDuration, func(v slog.Value) slog.Value {
		return slog.StringValue(v.Duration().String())
	}),
)

// Def is a default logger.
var Def = NewConsole(os.Stdout, slog.LevelInfo)

// Dev is a developer logger.
var Dev = NewDev(os.Stdout, slog.LevelDebug)

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

// NewConsole returns a human readable logger writing to out.
func NewConsole(out io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		console.NewHandler(out, &console.HandlerOptions{
			AddSource:  true,
			Level:      lvl,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// NewDev returns a developer logger writing to out.
func NewDev(out io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		devslog.NewHandler(out, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     lvl,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// New returns a logger for the named format.
func New(format string, out io.Writer, lvl slog.Leveler) (*slog.Logger, error) {
	switch format {
	case FormatConsole, "":
		return NewConsole(out, lvl), nil
	case FormatDev:
		return NewDev(out, lvl), nil
	case FormatNone:
		return Noop, nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
