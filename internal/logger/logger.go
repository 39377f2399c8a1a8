// Package logger writes structured logs to a file. The terminal belongs to
// the UI, so nothing is ever logged to stdout or stderr.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

var (
	mu       sync.Mutex
	base     = slog.New(slog.NewTextHandler(io.Discard, nil))
	levelVar = new(slog.LevelVar)
	logFile  *os.File
)

// Init opens (or creates) the log file at path and routes all loggers to it.
// Until Init is called, logs are discarded. Calling Init again switches files.
func Init(path string, debug bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	SetDebug(debug)
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	base.Info("logger initialized", "path", path)
	return nil
}

// SetDebug toggles debug level logging.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
		return
	}
	levelVar.Set(slog.LevelInfo)
}

// ComponentLogger returns a logger with the component attribute attached.
// It always writes through the current output, so loggers created before
// Init, or kept across a later Init or Close, follow the switch.
//
//	log := logger.ComponentLogger("chapterpanel")
//	log.Debug("layout", "width", w, "height", h)
func ComponentLogger(component string) *slog.Logger {
	return slog.New(forwardHandler{}).With(slog.String("component", component))
}

func current() slog.Handler {
	mu.Lock()
	defer mu.Unlock()
	return base.Handler()
}

// forwardHandler resolves the current base handler on every record and
// replays the attributes and groups it was derived with.
type forwardHandler struct {
	derive []func(slog.Handler) slog.Handler
}

func (h forwardHandler) handler() slog.Handler {
	out := current()
	for _, d := range h.derive {
		out = d(out)
	}
	return out
}

func (h forwardHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return current().Enabled(ctx, level)
}

func (h forwardHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.handler().Handle(ctx, r)
}

func (h forwardHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.with(func(next slog.Handler) slog.Handler { return next.WithAttrs(attrs) })
}

func (h forwardHandler) WithGroup(name string) slog.Handler {
	return h.with(func(next slog.Handler) slog.Handler { return next.WithGroup(name) })
}

func (h forwardHandler) with(d func(slog.Handler) slog.Handler) slog.Handler {
	return forwardHandler{derive: append(slices.Clone(h.derive), d)}
}

// Close closes the log file. Later logs are discarded.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = slog.New(slog.NewTextHandler(io.Discard, nil))
}
