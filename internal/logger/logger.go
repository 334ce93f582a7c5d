package logger

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"pms-project-backend/internal/config"
)

type contextLoggerKey struct{}

var stdEntry = logrus.NewEntry(logrus.StandardLogger())

// Setup configures the standard logrus logger from cfg.
func Setup(cfg config.LogConfig) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(level)
	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// WithLogger returns a new context carrying entry.
func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, contextLoggerKey{}, entry)
}

// FromContext returns the logger stored in ctx, or the standard logger.
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx == nil {
		return stdEntry
	}
	if entry, ok := ctx.Value(contextLoggerKey{}).(*logrus.Entry); ok {
		return entry
	}
	return stdEntry
}
