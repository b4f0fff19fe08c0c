package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide logger. It defaults to a JSON handler on stdout so
// packages can log before Init runs (tests, early startup errors).
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
