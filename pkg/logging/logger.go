// Package logging is a small leveled logger writing to stderr.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level represents severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel int32 = int32(LevelInfo)

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// SetLevel parses and sets the global log level. Unknown names are ignored.
func SetLevel(s string) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return
	}
	atomic.StoreInt32(&currentLevel, int32(l))
}

// GetLevel returns the current global log level.
func GetLevel() Level { return Level(atomic.LoadInt32(&currentLevel)) }

// SetOutput redirects log output and returns the logger it replaced so
// callers (mostly tests) can restore it.
func SetOutput(w io.Writer) *log.Logger {
	saved := baseLogger
	baseLogger = log.New(w, "", 0)
	return saved
}

// Restore puts back a logger returned by SetOutput.
func Restore(l *log.Logger) { baseLogger = l }

func logf(l Level, format string, args ...interface{}) {
	if GetLevel() > l {
		return
	}
	prefix := "INFO"
	switch l {
	case LevelDebug:
		prefix = "DEBUG"
	case LevelWarn:
		prefix = "WARN"
	case LevelError:
		prefix = "ERROR"
	}
	baseLogger.Printf("[%s] %s", prefix, fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs at debug level how long a phase took.
//
//	defer logging.TimeTrack(time.Now(), "build charts")
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
