package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// logger reports diagnostics on stderr, results go to stdout.
var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetupLogging applies the verbosity flag, it must be called after the flags are parsed.
func SetupLogging() {
	if *Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
}
