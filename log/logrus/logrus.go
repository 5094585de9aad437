package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/multiread"
)

var _ multiread.Logger = LogrusLogger{}

// LogrusLogger adapts a *logrus.Entry. Fields are attached with WithFields.
type LogrusLogger struct{ E *logrus.Entry }

// New wraps l with a "component" field set to "multiread".
func New(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{E: l.WithField("component", "multiread")}
}

func (l LogrusLogger) Debug(msg string, f multiread.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f multiread.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l LogrusLogger) Warn(msg string, f multiread.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l LogrusLogger) Error(msg string, f multiread.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
