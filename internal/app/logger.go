package app

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/rook-computer/duelicons/internal/system"
)

// Logger is the component-tagged logger every stage accepts.
type Logger = system.Logger

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// LogrusLogger forwards to logrus with the component as a field.
type LogrusLogger struct{ l *logrus.Logger }

// NewLogrusLogger logs text lines to w.
func NewLogrusLogger(w io.Writer) LogrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return LogrusLogger{l: l}
}

func (l LogrusLogger) Infof(component string, format string, args ...interface{}) {
	l.l.WithField("component", component).Infof(format, args...)
}

func (l LogrusLogger) Errorf(component string, format string, args ...interface{}) {
	l.l.WithField("component", component).Errorf(format, args...)
}
