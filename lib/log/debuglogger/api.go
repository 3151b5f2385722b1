package debuglogger

import (
	"github.com/chenzhuo1005/OpENer/lib/log"
)

type Logger struct {
	level int16
	log.Logger
}

// New wraps logger. Debug output is disabled until SetLevel is called.
func New(logger log.Logger) *Logger {
	return &Logger{-1, logger}
}

// Upgrade returns logger if it already is a log.DebugLogger, otherwise it
// wraps it with debug output disabled.
func Upgrade(logger log.Logger) log.DebugLogger {
	if debugLogger, ok := logger.(log.DebugLogger); ok {
		return debugLogger
	}
	return New(logger)
}

func (l *Logger) Debug(level uint8, v ...interface{}) {
	if l.level >= int16(level) {
		l.Print(v...)
	}
}

func (l *Logger) Debugf(level uint8, format string, v ...interface{}) {
	if l.level >= int16(level) {
		l.Printf(format, v...)
	}
}

func (l *Logger) Debugln(level uint8, v ...interface{}) {
	if l.level >= int16(level) {
		l.Println(v...)
	}
}

func (l *Logger) GetLevel() int16 {
	return l.level
}

func (l *Logger) SetLevel(maxLevel int16) {
	l.level = maxLevel
}
