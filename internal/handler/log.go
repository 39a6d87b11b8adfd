package handler

import (
	"context"
	"log/slog"
)

const previewLen = 120

// LogResult logs a tick outcome: updates at INFO (text preview at DEBUG),
// failures at WARN, and quiet ticks at DEBUG.
func LogResult(r Result) {
	switch r.Kind {
	case Updated:
		slog.Info("clipboard flattened", "breaks", r.Breaks, "chars", len([]rune(r.Text)))
		if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
			slog.Debug("clipboard text", "preview", Preview(r.Text))
		}
	case Error:
		slog.Warn("clipboard access failed", "err", r.Err)
	default:
		slog.Debug("clipboard unchanged", "result", r.Kind.String())
	}
}

// Preview truncates s to previewLen runes for log output.
func Preview(s string) string {
	r := []rune(s)
	if len(r) <= previewLen {
		return s
	}
	return string(r[:previewLen]) + "…"
}
