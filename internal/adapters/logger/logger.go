// Package logger implements ports.Logger on top of log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
)

// messager is implemented by errors that can report their own message without the chain,
// such as *zerr.Error.
type messager interface {
	Message() string
}

// metadataer is implemented by errors that carry structured metadata, such as *zerr.Error.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	level    *slog.LevelVar
	jsonMode bool
	output   io.Writer
}

// New creates a Logger writing human-readable lines to stderr at info level.
func New() *Logger {
	l := &Logger{
		level:  &slog.LevelVar{},
		output: os.Stderr,
	}
	l.rebuild()
	return l
}

// rebuild replaces the slog handler. Callers must hold mu or own l exclusively.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: l.level}
	if l.jsonMode {
		l.logger = slog.New(slog.NewJSONHandler(l.output, opts))
		return
	}
	l.logger = slog.New(NewPrettyHandler(l.output, opts))
}

// SetOutput changes the destination of log lines. A nil writer means stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON lines and pretty output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose enables debug lines.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err together with its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err.Error())
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// errorEntry is one link of an error chain.
type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain of err. Errors exposing Message contribute their own
// message and the walk continues with their cause; the first plain error ends the walk with its
// full text. Metadata attached to a link without a message is folded into its neighbour.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	for current := err; current != nil; {
		var meta map[string]any
		if m, ok := current.(metadataer); ok {
			meta = m.Metadata()
		}

		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: mergeMeta(pending, meta)})
			pending = nil
			break
		}

		if m.Message() == "" {
			if len(entries) > 0 {
				last := &entries[len(entries)-1]
				last.metadata = mergeMeta(last.metadata, meta)
			} else {
				pending = mergeMeta(pending, meta)
			}
			current = errors.Unwrap(current)
			continue
		}

		entries = append(entries, errorEntry{message: m.Message(), metadata: mergeMeta(pending, meta)})
		pending = nil
		current = errors.Unwrap(current)
	}

	return entries
}

func mergeMeta(a, b map[string]any) map[string]any {
	if len(a) == 0 {
		return b
	}
	out := maps.Clone(a)
	maps.Copy(out, b)
	return out
}

// formatErrorEntries renders the chain as
//
//	Error: <message>
//	       key: value
//
//	  Caused by:
//	    → <message>
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")
		head, indent := "    → ", "      "
		if i == 0 {
			head, indent = "Error: ", "       "
		} else if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
