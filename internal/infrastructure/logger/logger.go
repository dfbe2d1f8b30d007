package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

type Logger struct {
	*slog.Logger
}

var (
	defaultLogger *Logger
	level         = new(slog.LevelVar)
	once          sync.Once
)

// Init builds the process-wide logger. Format is "text" or "json"; the level
// starts at error and is raised later via SetVerbosity once flags are parsed.
func Init(format string, output io.Writer) {
	once.Do(func() {
		if output == nil {
			output = os.Stderr
		}
		level.Set(slog.LevelError)

		opts := &slog.HandlerOptions{Level: level}
		var handler slog.Handler
		switch format {
		case "json":
			handler = slog.NewJSONHandler(output, opts)
		default:
			handler = slog.NewTextHandler(output, opts)
		}
		defaultLogger = &Logger{slog.New(handler)}
	})
}

// SetVerbosity maps the repeatable -v flag to a log level: 0 errors only,
// 1 informational, 2 and up debug.
func SetVerbosity(v int) {
	switch {
	case v >= 2:
		level.Set(slog.LevelDebug)
	case v == 1:
		level.Set(slog.LevelInfo)
	default:
		level.Set(slog.LevelError)
	}
}

func L() *Logger {
	if defaultLogger == nil {
		Init("text", os.Stderr)
	}
	return defaultLogger
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}

func Debug(msg string, args ...any) { L().Debug(msg, args...) }
func Info(msg string, args ...any)  { L().Info(msg, args...) }
func Warn(msg string, args ...any)  { L().Warn(msg, args...) }
func Error(msg string, args ...any) { L().Error(msg, args...) }
