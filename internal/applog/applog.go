// Package applog is the structured logging facade used by cmd/sqltoast.
// It wraps logrus behind the go-kit FieldLogger interface so the CLI
// depends on a narrow contract rather than the concrete logger.
package applog

import (
	"github.com/go-extras/go-kit/logger"
	"github.com/sirupsen/logrus"
)

type Fields = logrus.Fields
type FieldLogger = logger.FieldLogger[logrus.Fields, *logrus.Entry]

var log FieldLogger = logrus.StandardLogger()

// SetLogger swaps the package-level logger, e.g. for tests that want to
// capture output.
func SetLogger(l FieldLogger) {
	log = l
}

func Debugf(format string, args ...any) { log.Debugf(format, args...) }
func Infof(format string, args ...any)  { log.Infof(format, args...) }
func Warnf(format string, args ...any)  { log.Warnf(format, args...) }
func Errorf(format string, args ...any) { log.Errorf(format, args...) }

func Debug(args ...any) { log.Debug(args...) }
func Info(args ...any)  { log.Info(args...) }
func Warn(args ...any)  { log.Warn(args...) }
func Error(args ...any) { log.Error(args...) }

func WithField(key string, value any) FieldLogger {
	return log.WithField(key, value)
}

func WithFields(fields Fields) FieldLogger {
	return log.WithFields(fields)
}

func WithError(err error) FieldLogger {
	return log.WithError(err)
}
