package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

type LoggerImpl struct {
	mu     sync.Mutex
	stdout *logrus.Logger
}

var (
	defaultLogger     *LoggerImpl
	defaultLoggerInit sync.Once
)

// New returns a logger at info level writing text entries to stderr.
func New() *LoggerImpl {
	l := &LoggerImpl{
		stdout: logrus.New(),
	}
	l.SetLevel(string(InfoLevel))
	return l
}

// Default returns the process-wide logger, creating it on first use.
func Default() *LoggerImpl {
	defaultLoggerInit.Do(func() {
		defaultLogger = New()
	})
	return defaultLogger
}

func (l *LoggerImpl) decorate(skip int) *logrus.Entry {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return logrus.NewEntry(l.stdout)
	}
	fName := runtime.FuncForPC(pc).Name()
	path := strings.Split(file, string(os.PathSeparator))
	if len(path) > 3 {
		path = path[len(path)-3:]
	}
	position := fmt.Sprintf("%s:%d", strings.Join(path, string(os.PathSeparator)), line)
	return l.stdout.WithField("position", position).WithField("func", fName)
}

func (l *LoggerImpl) Trace(format string, v ...interface{}) {
	l.decorate(2).Tracef(format, v...)
}

func (l *LoggerImpl) Debug(format string, v ...interface{}) {
	l.decorate(2).Debugf(format, v...)
}

func (l *LoggerImpl) Info(format string, v ...interface{}) {
	l.decorate(2).Infof(format, v...)
}

func (l *LoggerImpl) Warn(format string, v ...interface{}) {
	l.decorate(2).Warnf(format, v...)
}

func (l *LoggerImpl) Error(format string, v ...interface{}) {
	l.decorate(2).Errorf(format, v...)
}

func (l *LoggerImpl) Fatal(format string, v ...interface{}) {
	l.decorate(2).Fatalf(format, v...)
}

func (l *LoggerImpl) Panic(format string, v ...interface{}) {
	l.decorate(2).Panicf(format, v...)
}

func (l *LoggerImpl) SetOutput(out io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout.SetOutput(out)
}

func (l *LoggerImpl) GetOutput() io.Writer {
	if l.stdout != nil && l.stdout.Out != nil {
		return l.stdout.Out
	}
	return nil
}

func (l *LoggerImpl) GetLevel() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return int(l.stdout.GetLevel())
}

func (l *LoggerImpl) setLevel(level int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout.SetLevel(logrus.Level(level))
}

// SetLevel accepts the names of the level constants; anything else means info.
func (l *LoggerImpl) SetLevel(level string) {
	switch strings.ToLower(level) {
	case string(TraceLevel):
		l.setLevel(LevelTrace)
	case string(DebugLevel):
		l.setLevel(LevelDebug)
	case string(WarnLevel):
		l.setLevel(LevelWarn)
	case string(ErrorLevel):
		l.setLevel(LevelError)
	default:
		l.setLevel(LevelInfo)
	}
}

func (l *LoggerImpl) SetFormatter(formatter logrus.Formatter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout.SetFormatter(formatter)
}
