// Package logging hands out leveled loggers for the library's subsystems.
// Verbosity follows pion conventions (PION_LOG_DEBUG=all etc).
package logging

import (
	"github.com/pion/logging"
)

var loggerFactory = logging.NewDefaultLoggerFactory()

func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger("spiggot/" + scope)
}
