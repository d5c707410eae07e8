package logging

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w at the given level.
// Unrecognized levels fall back to info.
func New(level string, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(ParseLevel(level))

	return logger
}

// ParseLevel converts a level name to a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}

	return parsed
}

// WithRunID tags every entry of one crawl run with a fresh run_id.
func WithRunID(logger logrus.FieldLogger) *logrus.Entry {
	return logger.WithField("run_id", uuid.NewString())
}
