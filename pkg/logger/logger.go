package logger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/AriqGChowdhury/WSU-Forum/config"
)

// Logger wraps slog with the small surface the usecases need.
type Logger struct {
	base *slog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := parseLevel(cfg.LoggerMode.Level)

	var handler slog.Handler
	if cfg.LoggerMode.Development {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return &Logger{base: slog.New(handler)}, nil
}

func parseLevel(s string) slog.Level {
	switch s {
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

func (l *Logger) logger() *slog.Logger {
	if l == nil || l.base == nil {
		return slog.Default()
	}
	return l.base
}

func (l Logger) Debug(msg string, args ...any) { l.logger().Debug(msg, args...) }
func (l Logger) Info(msg string, args ...any)  { l.logger().Info(msg, args...) }
func (l Logger) Warn(msg string, args ...any)  { l.logger().Warn(msg, args...) }
func (l Logger) Error(msg string, args ...any) { l.logger().Error(msg, args...) }

func (l Logger) Infof(format string, args ...any) {
	l.logger().Info(fmt.Sprintf(format, args...))
}

func (l Logger) Errorf(format string, args ...any) {
	l.logger().Error(fmt.Sprintf(format, args...))
}
