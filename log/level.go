package log

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
)

// A Level is the importance or severity of a log event. It extends
// [slog.Level] with [LevelDisabled], which silences all output.
type Level slog.Level

const (
	LevelDebug    = Level(slog.LevelDebug)
	LevelInfo     = Level(slog.LevelInfo)
	LevelWarn     = Level(slog.LevelWarn)
	LevelError    = Level(slog.LevelError)
	LevelDisabled = Level(1<<31 - 1)
)

// String returns the upper-case name of l, as [slog.Level.String] does,
// or "DISABLED" for [LevelDisabled].
func (l Level) String() string {
	if l >= LevelDisabled {
		return "DISABLED"
	}
	return slog.Level(l).String()
}

// Level implements [slog.Leveler].
func (l Level) Level() slog.Level { return slog.Level(l) }

// MarshalJSON implements [encoding/json.Marshaler].
func (l Level) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, l.String()), nil
}

// UnmarshalJSON implements [encoding/json.Unmarshaler]. It accepts the
// same strings as [Level.UnmarshalText].
func (l *Level) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	return l.UnmarshalText([]byte(s))
}

// AppendText implements [encoding.TextAppender].
func (l Level) AppendText(b []byte) ([]byte, error) {
	return append(b, l.String()...), nil
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	return l.AppendText(nil)
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Besides the names
// understood by [slog.Level.UnmarshalText], such as "warn" or "Error+1",
// it accepts "disable", "disabled" and "false", ignoring case.
func (l *Level) UnmarshalText(data []byte) error {
	switch string(bytes.ToLower(bytes.TrimSpace(data))) {
	case "disable", "disabled", "false":
		*l = LevelDisabled
		return nil
	}
	return (*slog.Level)(l).UnmarshalText(data)
}

// LevelFlag is a [Level] usable as a [github.com/spf13/pflag.Value].
type LevelFlag Level

func (lf *LevelFlag) String() string {
	return Level(*lf).String()
}

func (lf *LevelFlag) Set(s string) error {
	return (*Level)(lf).UnmarshalText([]byte(s))
}

func (lf *LevelFlag) Type() string {
	return "level"
}

// Choices lists the level names for help text and completion.
func Choices() []string {
	return []string{
		strings.ToLower(LevelDebug.String()),
		strings.ToLower(LevelInfo.String()),
		strings.ToLower(LevelWarn.String()),
		strings.ToLower(LevelError.String()),
		"disabled",
	}
}
