package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// DebugEnabled returns true if debug mode is enabled via TD_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TD_DEBUG") != ""
}

// Debugf logs a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		log.Debugf(format, args...)
	}
}

// Debugln logs a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		log.Debugln(args...)
	}
}
