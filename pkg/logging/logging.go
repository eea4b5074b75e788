// Package logging builds the structured logger used by the giturl CLI.
package logging

import (
	"io"
	"log/slog"

	"github.com/goliatone/giturl/pkg/config"
)

// Logger is the narrow logging surface shared by the packages in this
// module. It is satisfied by giturl.Logger as well.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Level resolves the effective slog level. Quiet wins over verbose, and
// both win over the configured level.
func Level(cfg config.LoggingConfig) slog.Level {
	if cfg.Quiet {
		return slog.LevelWarn
	}
	if cfg.Verbose {
		return slog.LevelDebug
	}

	switch cfg.Level {
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

// New creates a logger writing to w in the configured format.
func New(cfg config.LoggingConfig, w io.Writer) Logger {
	opts := &slog.HandlerOptions{Level: Level(cfg)}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &slogAdapter{logger: slog.New(handler)}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &slogAdapter{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// slogAdapter adapts slog.Logger to implement our Logger interface.
type slogAdapter struct {
	logger *slog.Logger
}

func (s *slogAdapter) Debug(msg string, args ...any) {
	s.logger.Debug(msg, args...)
}

func (s *slogAdapter) Info(msg string, args ...any) {
	s.logger.Info(msg, args...)
}

func (s *slogAdapter) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}

func (s *slogAdapter) Error(msg string, args ...any) {
	s.logger.Error(msg, args...)
}
