// Package logging provides per-component logrus loggers for the diagnostic
// stream. User-visible failures go to the workspace notice feed; this stream
// is for developers.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	base = newBase()
)

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	l.SetLevel(levelFromEnv(logrus.InfoLevel))
	return l
}

// levelFromEnv reads SCRIBE_LOG_LEVEL, falling back to def.
func levelFromEnv(def logrus.Level) logrus.Level {
	if env := os.Getenv("SCRIBE_LOG_LEVEL"); env != "" {
		if lvl, err := logrus.ParseLevel(strings.TrimSpace(env)); err == nil {
			return lvl
		}
	}
	return def
}

// NewLogger returns the logger for a component, creating it on first use.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, ok := loggers[component]; ok {
		return logger
	}
	logger := base.WithField("component", component)
	loggers[component] = logger
	return logger
}

// SetLevel parses and applies a level name ("debug", "info", "warn", ...).
// The SCRIBE_LOG_LEVEL environment variable wins over the argument.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	base.SetLevel(levelFromEnv(lvl))
	return nil
}

// SetOutput redirects every component logger.
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// Base exposes the shared logger for packages that need raw access.
func Base() *logrus.Logger {
	return base
}
