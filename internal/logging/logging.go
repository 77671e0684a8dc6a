// Package logging builds the application logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger at level ("debug", "info", ...) with the given format
// ("text" or "json"). LOG_LEVEL and LOG_FORMAT override both when set.
// Unknown levels fall back to info.
func New(level, format string) *logrus.Logger {
	return NewTo(os.Stdout, level, format)
}

// NewTo is New writing to out.
func NewTo(out io.Writer, level, format string) *logrus.Logger {
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		level = v
	}
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok {
		format = v
	}

	l := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	l.SetOutput(out)
	return l
}

// Discard is a logger that drops everything, for tests and headless tools.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
