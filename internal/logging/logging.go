// Package logging configures the logrus logger. Logs go to a file: the
// terminal belongs to the picker and stdout carries the chosen path.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options selects the log destination and verbosity.
type Options struct {
	File  string
	Level string
	Debug bool
}

// Setup returns a logger writing to opts.File. When the file cannot be
// opened the logger discards output; the returned closer is always safe to
// call.
func Setup(opts Options) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := ParseLevel(opts.Level)
	if opts.Debug {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	out, closer, openErr := openFile(opts.File)
	logger.SetOutput(out)
	if openErr != nil {
		return logger, closer, openErr
	}
	return logger, closer, err
}

// ParseLevel maps a config value to a level, defaulting to warn.
func ParseLevel(s string) (logrus.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return logrus.WarnLevel, nil
	}
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.WarnLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// Discard returns a logger that writes nothing.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func openFile(path string) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	if path == "" {
		return io.Discard, noop, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, noop, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, noop, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}
