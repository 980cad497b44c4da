// Package logger is a small wrapper over the standard log package providing
// the leveled methods the server half uses.
package logger

import (
	"io"
	"log"
	"os"
)

type Logger struct {
	std *log.Logger
}

func New() *Logger {
	return &Logger{std: log.New(os.Stdout, "", log.LstdFlags|log.Lmsgprefix)}
}

// NewDiscard returns a logger whose output is suppressed. Used in tests.
func NewDiscard() *Logger {
	return &Logger{std: log.New(io.Discard, "", 0)}
}

func (l *Logger) Info(msg string, kvs ...interface{}) {
	l.std.Printf("INFO: %s %v", msg, kvs)
}

func (l *Logger) Error(msg string, kvs ...interface{}) {
	l.std.Printf("ERROR: %s %v", msg, kvs)
}

func (l *Logger) Fatal(msg string, kvs ...interface{}) {
	l.std.Printf("FATAL: %s %v", msg, kvs)
	os.Exit(1)
}
