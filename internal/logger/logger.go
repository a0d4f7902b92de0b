// Package logger builds the application logrus.Logger from configuration.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathery/internal/config"
)

// New returns a logger writing to stdout. An unknown level falls back to info;
// Format "json" selects the JSON formatter, anything else full-timestamp text.
func New(cfg config.Log) *logrus.Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(cfg config.Log, w io.Writer) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.JSON() {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	l.SetOutput(w)

	return l
}
