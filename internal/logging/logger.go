package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup points the process-wide logger at stdout as JSON, at the level named
// by LOG_LEVEL. It runs before the database is up; AttachStore re-points the
// logger once the Postgres sink exists.
func Setup() {
	slog.SetDefault(slog.New(stdoutHandler()))
}

// AttachStore routes the default logger through a fan-out: the stdout stream
// keeps the configured level, the Postgres sink takes errors only.
func AttachStore(pg *PGHandler) {
	slog.SetDefault(slog.New(NewFanout(stdoutHandler(), pg)))
}

func stdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
