// Package log is a small facade over [log/slog] used by the physconst
// command. The library package itself never logs.
package log

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
)

type (
	Attr    = slog.Attr
	Handler = slog.Handler
)

var DiscardHandler = slog.DiscardHandler

var (
	level         = new(slog.LevelVar)
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
)

func init() {
	level.Set(slog.LevelWarn)
}

// SetLogLevel sets the minimum level of the default logger.
func SetLogLevel(l Level) {
	level.Set(slog.Level(l))
}

// LogLevel returns the minimum level of the default logger.
func LogLevel() Level {
	return Level(level.Level())
}

// SetHandler replaces the handler of the default logger.
func SetHandler(h Handler) {
	defaultLogger = slog.New(h)
}

// SetTextHandler logs to w in logfmt.
func SetTextHandler(w io.Writer) {
	SetHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetJSONHandler logs to w as JSON lines.
func SetJSONHandler(w io.Writer) {
	SetHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetOutput logs to w with the default text format.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
	SetTextHandler(w)
}

// With adds attributes to every following record of the default logger.
func With(args ...any) {
	defaultLogger = defaultLogger.With(args...)
}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs msg at [LevelError]. A non-nil err is added as the "cause" attribute.
func Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"cause", err}, args...)
	}
	defaultLogger.Error(msg, args...)
}

// Fatal is [Error] followed by os.Exit(1).
func Fatal(msg string, err error, args ...any) {
	Error(msg, err, args...)
	os.Exit(1)
}

func Printf(format string, v ...any) {
	defaultLogger.Info(fmt.Sprintf(format, v...))
}
