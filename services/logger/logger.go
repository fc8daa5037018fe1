package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
	WithField(key string, value interface{}) Logger
}

// Options cấu hình logger; File rỗng thì ghi ra stdout
type Options struct {
	Level      Level
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	JSON       bool
}

// LogrusLogger implement Logger bằng logrus
type LogrusLogger struct {
	base   *logrus.Logger
	entry  *logrus.Entry
	closer io.Closer
}

// New tạo logger, xoay vòng file bằng lumberjack khi có File
func New(opts Options) *LogrusLogger {
	var out io.Writer = os.Stdout
	var closer io.Closer
	if opts.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 10),
			MaxBackups: orDefault(opts.MaxBackups, 5),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
			LocalTime:  true,
		}
		out = io.MultiWriter(os.Stdout, rotating)
		closer = rotating
	}

	l := NewWithWriter(out, opts.Level)
	if opts.JSON {
		l.base.SetFormatter(&logrus.JSONFormatter{})
	}
	l.closer = closer
	return l
}

// NewWithWriter dùng cho test, ví dụ io.Discard
func NewWithWriter(w io.Writer, level Level) *LogrusLogger {
	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(toLogrus(level))
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &LogrusLogger{base: base, entry: logrus.NewEntry(base)}
}

// ParseLevel đọc LOG_LEVEL, mặc định info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l *LogrusLogger) Info(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

func (l *LogrusLogger) Warn(format string, v ...interface{}) {
	l.entry.Warnf(format, v...)
}

func (l *LogrusLogger) Error(format string, v ...interface{}) {
	l.entry.Errorf(format, v...)
}

func (l *LogrusLogger) Debug(format string, v ...interface{}) {
	l.entry.Debugf(format, v...)
}

func (l *LogrusLogger) WithField(key string, value interface{}) Logger {
	return &LogrusLogger{base: l.base, entry: l.entry.WithField(key, value), closer: l.closer}
}

func (l *LogrusLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func toLogrus(level Level) logrus.Level {
	switch level {
	case DebugLevel:
		return logrus.DebugLevel
	case WarnLevel:
		return logrus.WarnLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
