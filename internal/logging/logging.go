// Package logging configures the logrus logger used by the CLI and HTTP server.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

type appNameHook struct {
	appName string
}

// Levels implements logrus.Hook interface.
func (h *appNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook interface.
func (h *appNameHook) Fire(entry *logrus.Entry) error {
	entry.Message = "[" + h.appName + "] " + entry.Message
	return nil
}

// New returns a logger writing to out at the named level. An unknown level
// falls back to info with a warning.
func New(appName, level string, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	name := strings.ToLower(strings.TrimSpace(level))
	if name == "" {
		name = "info"
	}
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		l.Warnf("Invalid log level '%s', defaulting to INFO", level)
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if appName != "" {
		l.AddHook(&appNameHook{appName})
	}
	return l
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
