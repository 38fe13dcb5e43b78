package app

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a JSON logger writing to w at the named level. An
// unknown level falls back to warn.
func NewLogger(w io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.JSONFormatter{})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}
