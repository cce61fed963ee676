// Package logging hands out pion/logging leveled loggers. Levels are picked up
// from the PION_LOG_* environment variables by the default factory.
package logging

import (
	"github.com/pion/logging"
)

const scopePrefix = "faceframe/"

var loggerFactory logging.LoggerFactory = logging.NewDefaultLoggerFactory()

// NewLogger returns a logger for scope, namespaced under this module.
func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scopePrefix + scope)
}
