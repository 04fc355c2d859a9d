// Package logrus adapts a *logrus.Entry to lzy.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/lzy"
)

var _ lzy.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New returns a LogrusLogger that tags every entry with component=lzy.
func New(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{E: l.WithField("component", "lzy")}
}

func (l LogrusLogger) Debug(msg string, f lzy.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f lzy.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f lzy.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f lzy.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
