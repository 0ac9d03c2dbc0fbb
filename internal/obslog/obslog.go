// Package obslog provides the package-wide logrus logger shared by the
// engine and the CLI, following the package-level-logger-plus-WithField
// pattern dolthub/go-mysql-server's auth package uses rather than
// threading a logger through every call site.
package obslog

import "github.com/sirupsen/logrus"

var logger = logrus.New()

func init() {
	logger.SetLevel(logrus.InfoLevel)
}

// L returns the shared logger. Callers attach structured context with
// WithField/WithFields rather than formatting it into the message.
func L() *logrus.Logger { return logger }

// SetLevel adjusts the shared logger's verbosity. The CLI's --verbose flag
// uses it to switch to debug level.
func SetLevel(level logrus.Level) { logger.SetLevel(level) }
