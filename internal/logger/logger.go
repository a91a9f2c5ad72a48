// Package logger configures the go-logging loggers used by the hosted
// packages. Setting TEXTMODE_DEBUG to any value enables debug output.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

var debug bool

func init() {
	debug = os.Getenv("TEXTMODE_DEBUG") != ""

	level := logging.INFO
	if debug {
		level = logging.DEBUG
	}
	logging.SetLevel(level, "")
}

// New returns the logger for module.
func New(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}

// Debug reports whether debug output was requested.
func Debug() bool {
	return debug
}
