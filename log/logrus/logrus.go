package logrus

import (
	logrus "github.com/sirupsen/logrus"

	"github.com/winunc/go-winunc/log"
)

// Logrus adapts a logrus logger to the log.Log interface. A
// zero Level logs at InfoLevel.
type Logrus struct {
	Logger *logrus.Logger
	Level  logrus.Level
}

func (l *Logrus) Line(msg string) {
	l.Logger.Log(l.level(), msg)
}

func (l *Logrus) level() logrus.Level {
	if l.Level == 0 {
		return logrus.InfoLevel
	}
	return l.Level
}

var _ log.Log = (*Logrus)(nil)

// Default returns an adapter around a fresh logrus logger.
func Default() *Logrus {
	return &Logrus{Logger: logrus.New()}
}
