// ==============================================================================
// LOGGER PACKAGE - pkg/logger/logger.go
// ==============================================================================
package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Info(message string, fields map[string]interface{})
	Error(message string, fields map[string]interface{})
	Warn(message string, fields map[string]interface{})
	Debug(message string, fields map[string]interface{})
	Fatal(message string, fields map[string]interface{})
	With(fields map[string]interface{}) Logger
}

// Options tune the logrus backend. The zero value logs JSON at info level
// to stdout.
type Options struct {
	Level  string
	Format string
	// File, when set, receives a copy of every entry with size-based rotation.
	File string
}

type logrusLogger struct {
	entry *logrus.Entry
}

func New(serviceName string) Logger {
	return NewWithOptions(serviceName, Options{})
}

func NewWithOptions(serviceName string, opts Options) Logger {
	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		})
	}
	return newLogger(serviceName, opts, out)
}

func newLogger(serviceName string, opts Options, out io.Writer) Logger {
	l := logrus.New()
	l.SetOutput(out)

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if opts.Format == "text" {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}

	return &logrusLogger{entry: l.WithField("service", serviceName)}
}

func (l *logrusLogger) Info(message string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(message)
}

func (l *logrusLogger) Error(message string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(message)
}

func (l *logrusLogger) Warn(message string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(message)
}

func (l *logrusLogger) Debug(message string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(message)
}

// Fatal logs and exits with status 1.
func (l *logrusLogger) Fatal(message string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Fatal(message)
}

func (l *logrusLogger) With(fields map[string]interface{}) Logger {
	return &logrusLogger{entry: l.entry.WithFields(fields)}
}

func NewNop() Logger {
	return &nopLogger{}
}

type nopLogger struct{}

func (l *nopLogger) Info(message string, fields map[string]interface{})  {}
func (l *nopLogger) Error(message string, fields map[string]interface{}) {}
func (l *nopLogger) Warn(message string, fields map[string]interface{})  {}
func (l *nopLogger) Debug(message string, fields map[string]interface{}) {}
func (l *nopLogger) Fatal(message string, fields map[string]interface{}) {}

func (l *nopLogger) With(fields map[string]interface{}) Logger {
	return l
}
