// Package log provides the process-wide logger used by all uf packages.
// The default logger discards everything; the CLI installs a real adapter
// once flags are parsed.
package log

import (
	"github.com/anchore/go-logger"
	"github.com/anchore/go-logger/adapter/discard"
)

var log logger.Logger = discard.New()

// Set installs the given logger as the process-wide logger.
func Set(l logger.Logger) {
	if l == nil {
		return
	}
	log = l
}

// Get returns the current process-wide logger.
func Get() logger.Logger {
	return log
}

func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

func Error(args ...interface{}) {
	log.Error(args...)
}

func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

func Warn(args ...interface{}) {
	log.Warn(args...)
}

func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func Info(args ...interface{}) {
	log.Info(args...)
}

func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

func Debug(args ...interface{}) {
	log.Debug(args...)
}

func Tracef(format string, args ...interface{}) {
	log.Tracef(format, args...)
}

func Trace(args ...interface{}) {
	log.Trace(args...)
}

// Nested returns a logger carrying the given key-value fields.
func Nested(fields ...interface{}) logger.Logger {
	return log.Nested(fields...)
}
