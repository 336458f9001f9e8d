package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// L is the global logger instance. It discards everything until Init enables it.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Environment variables read by FromEnv.
const (
	EnvEnabled = "ST_DEBUG"
	EnvLevel   = "ST_DEBUG_LEVEL"
	EnvFile    = "ST_DEBUG_FILE"
)

type Options struct {
	Enabled bool       // If false, all logging is discarded
	File    string     // Appended to if set, otherwise logs go to stderr
	Level   slog.Level // Minimum level
}

// FromEnv builds Options from the ST_DEBUG variables. Unset variables leave logging off at LevelDebug.
func FromEnv(getenv func(string) string) (Options, error) {
	opts := Options{Level: slog.LevelDebug, File: getenv(EnvFile)}
	if s := getenv(EnvEnabled); s != "" {
		on, err := strconv.ParseBool(s)
		if err != nil {
			return opts, fmt.Errorf("%s: %w", EnvEnabled, err)
		}
		opts.Enabled = on
	}
	if s := getenv(EnvLevel); s != "" {
		if err := opts.Level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
			return opts, fmt.Errorf("%s: %w", EnvLevel, err)
		}
	}
	return opts, nil
}

// Init configures logging. If opts.Enabled is false, all log output is discarded.
func Init(opts Options) error {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}
	var w io.Writer = os.Stderr
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		w = f
	}
	L = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: opts.Level}))
	return nil
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }

func Warn(msg string, args ...any) { L.Warn(msg, args...) }
