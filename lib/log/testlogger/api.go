// Package testlogger adapts a *testing.T (or *testing.B) to log.DebugLogger.
// Every message is also kept so tests can check what was reported.
package testlogger

import (
	"fmt"
	"strings"
	"sync"
)

type Logger struct {
	logger TestLogger
	mutex  sync.Mutex
	lines  []string
}

type TestLogger interface {
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})
	Log(v ...interface{})
	Logf(format string, v ...interface{})
}

func New(logger TestLogger) *Logger {
	return &Logger{logger: logger}
}

// Contains returns true if any logged message contains substr.
func (l *Logger) Contains(substr string) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// Lines returns a copy of the logged messages.
func (l *Logger) Lines() []string {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return append([]string(nil), l.lines...)
}

func (l *Logger) Debug(level uint8, v ...interface{}) {
	l.log(fmt.Sprint(v...))
}

func (l *Logger) Debugf(level uint8, format string, v ...interface{}) {
	l.log(fmt.Sprintf(format, v...))
}

func (l *Logger) Debugln(level uint8, v ...interface{}) {
	l.log(fmt.Sprintln(v...))
}

func (l *Logger) Fatal(v ...interface{}) {
	l.logger.Fatal(fmt.Sprint(v...))
}

func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatal(fmt.Sprintf(format, v...))
}

func (l *Logger) Fatalln(v ...interface{}) {
	l.logger.Fatal(fmt.Sprint(v...))
}

func (l *Logger) Panic(v ...interface{}) {
	s := fmt.Sprint(v...)
	l.logger.Fatal(s)
	panic(s)
}

func (l *Logger) Panicf(format string, v ...interface{}) {
	s := fmt.Sprintf(format, v...)
	l.logger.Fatal(s)
	panic(s)
}

func (l *Logger) Panicln(v ...interface{}) {
	s := fmt.Sprintln(v...)
	l.logger.Fatal(s)
	panic(s)
}

func (l *Logger) Print(v ...interface{}) {
	l.log(fmt.Sprint(v...))
}

func (l *Logger) Printf(format string, v ...interface{}) {
	l.log(fmt.Sprintf(format, v...))
}

func (l *Logger) Println(v ...interface{}) {
	l.log(fmt.Sprintln(v...))
}

func (l *Logger) log(line string) {
	line = strings.TrimSuffix(line, "\n")
	l.mutex.Lock()
	l.lines = append(l.lines, line)
	l.mutex.Unlock()
	l.logger.Log(line)
}
