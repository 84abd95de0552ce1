package logger

import (
	"io"
	"log"
	"os"
)

type Level int

const (
	LevelInfo Level = iota
	LevelDebug
	LevelTrace
)

// Logger is a thin leveled wrapper around the standard library logger.
// Info and Warn always print, Debug is gated by the verbose flag and
// Trace by the level.
type Logger struct {
	*log.Logger
	level   Level
	verbose bool
}

type Option func(*Logger)

func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.Logger = log.New(w, l.Logger.Prefix(), l.Logger.Flags())
	}
}

func WithPrefix(prefix string) Option {
	return func(l *Logger) {
		l.Logger = log.New(l.Logger.Writer(), prefix, l.Logger.Flags())
	}
}

func WithFlags(flags int) Option {
	return func(l *Logger) {
		l.Logger = log.New(l.Logger.Writer(), l.Logger.Prefix(), flags)
	}
}

func New(options ...Option) *Logger {
	l := &Logger{
		Logger: log.New(os.Stdout, "", log.LstdFlags),
		level:  LevelInfo,
	}

	for _, opt := range options {
		opt(l)
	}

	return l
}

func (l *Logger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.Printf(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.Printf("WARNING: "+format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbose {
		l.Printf("DEBUG: "+format, args...)
	}
}

func (l *Logger) Trace(format string, args ...interface{}) {
	if l.level >= LevelTrace {
		l.Printf("TRACE: "+format, args...)
	}
}

func (l *Logger) Fatal(format string, args ...interface{}) {
	l.Fatalf("ERROR: "+format, args...)
}
