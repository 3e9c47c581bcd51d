// Package logging sets up the slog loggers used by the rowreduce CLI.
// Records go to the writer the caller supplies, normally stderr, and never
// to the report stream.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LevelTrace sits one step below slog.LevelDebug. The solve command logs
// each elimination step at this level.
const LevelTrace = slog.LevelDebug - 4

// levelNames lists the accepted config spellings, lower-cased.
var levelNames = map[string]slog.Level{
	"info":  slog.LevelInfo,
	"debug": slog.LevelDebug,
	"trace": LevelTrace,
}

// ParseLevel looks name up case-insensitively. Anything it does not
// recognise, including the empty string, means info.
func ParseLevel(name string) slog.Level {
	if lvl, ok := levelNames[strings.ToLower(name)]; ok {
		return lvl
	}

	return slog.LevelInfo
}

// NewLogger returns a text-format logger on w that drops records below level.
func NewLogger(level string, w io.Writer) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       ParseLevel(level),
		ReplaceAttr: labelTrace,
	})

	return slog.New(h)
}

// labelTrace prints LevelTrace as TRACE; slog would render it DEBUG-4.
func labelTrace(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}

	return a
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 4}))
}
