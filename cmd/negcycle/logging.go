package main

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds a JSON slog.Logger writing to stderr, or to a rotated
// file via lumberjack when path is non-empty, grounded on
// Hola-to-network_logistics_problem/pkg/logger's Config.Output switch. The
// returned close func flushes nothing (lumberjack writes are unbuffered)
// but keeps the call site symmetric with resources that do need closing.
func newLogger(path string) (logger *slog.Logger, closeFn func()) {
	var w io.Writer = os.Stderr
	closeFn = func() {}

	if path != "" {
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		w = lj
		closeFn = func() { _ = lj.Close() }
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler), closeFn
}
