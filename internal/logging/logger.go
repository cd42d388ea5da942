// Package logging provides leveled logging for the sessim CLI. It builds a
// slog.Logger for stderr and adapts it to the printf-style Logger interface
// used by the simulation engine.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LevelTrace is a custom slog level below Debug for per-batch output.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "error", "warn", "info", "debug", "trace" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled slog.Logger writing text records to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Printf adapts a slog.Logger to the Debugf/Infof/Warnf/Errorf interface.
// A nil Printf or nil inner logger discards everything.
type Printf struct {
	L *slog.Logger
}

// NewPrintf wraps l.
func NewPrintf(l *slog.Logger) *Printf { return &Printf{L: l} }

func (p *Printf) log(level slog.Level, format string, args ...any) {
	if p == nil || p.L == nil {
		return
	}
	ctx := context.Background()
	if !p.L.Enabled(ctx, level) {
		return
	}
	p.L.Log(ctx, level, fmt.Sprintf(format, args...))
}

func (p *Printf) Debugf(format string, args ...any) { p.log(slog.LevelDebug, format, args...) }
func (p *Printf) Infof(format string, args ...any)  { p.log(slog.LevelInfo, format, args...) }
func (p *Printf) Warnf(format string, args ...any)  { p.log(slog.LevelWarn, format, args...) }
func (p *Printf) Errorf(format string, args ...any) { p.log(slog.LevelError, format, args...) }
