// Package log wraps logrus with the leveled helpers used throughout sheets-records.
package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const APP = "sheets-records"

var logger = logrus.New()

func init() {
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// SetDebug enables or disables debug level logging.
func SetDebug(enabled bool) {
	if enabled {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// SetFormat selects 'text' (default) or 'json' formatted log entries.
func SetFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})

	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})

	default:
		return fmt.Errorf("invalid log format '%s' - expected 'text' or 'json'", format)
	}

	return nil
}

func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func Debugf(format string, args ...any) {
	entry().Debugf(format, args...)
}

func Infof(format string, args ...any) {
	entry().Infof(format, args...)
}

func Warnf(format string, args ...any) {
	entry().Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	entry().Errorf(format, args...)
}

func entry() *logrus.Entry {
	return logger.WithFields(logrus.Fields{"app": APP})
}
