package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Both loggers are usable before InitLogger runs, so packages and tests that
// never call it still log.
var (
	InfoLogger  = logrus.New()
	ErrorLogger = logrus.New()
)

// InitLogger configures the info logger for stdout and the error logger for
// stderr. level is a logrus level name; an unknown or empty one means info.
func InitLogger(level string) {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	InfoLogger.SetOutput(os.Stdout)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	ErrorLogger.SetOutput(os.Stderr)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	InfoLogger.SetLevel(lvl)
	// Warnings about skipped data go through the error logger too.
	ErrorLogger.SetLevel(logrus.WarnLevel)
}
