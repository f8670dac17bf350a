package logging

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

type contextKey string

const loggerKey = contextKey("logger")

var (
	defaultLogger     *logrus.Entry
	defaultLoggerOnce sync.Once
)

// DefaultLogger is used when the context carries no logger. It only reports warnings,
// so the library stays quiet unless the caller opts in
func DefaultLogger() *logrus.Entry {
	defaultLoggerOnce.Do(func() {
		defaultLogger = NewLogger(os.Stderr, logrus.WarnLevel).WithField("component", "kurlar")
	})
	return defaultLogger
}

func NewLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	return logger
}

// ParseLevel falls back to info for unknown level names
func ParseLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func FromContext(ctx context.Context) *logrus.Entry {
	if logger, ok := ctx.Value(loggerKey).(*logrus.Entry); ok {
		return logger
	}
	return DefaultLogger()
}
