package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"
)

// Logger writes timestamped lines with caller info. It logs to stderr unless
// LOG_FILE points somewhere else.
type Logger struct {
	logger *log.Logger
}

func NewLogger() *Logger {
	var out io.Writer = os.Stderr
	if path := os.Getenv("LOG_FILE"); path != "" {
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		out = file
	}
	return &Logger{
		logger: log.New(out, "", 0),
	}
}

func (l *Logger) Log(message string) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file = "unknown"
		line = 0
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	l.logger.Printf("[%s] %s:%d %s\n", timestamp, file, line, message)
}

func (l *Logger) Logf(format string, args ...interface{}) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file = "unknown"
		line = 0
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	l.logger.Printf("[%s] %s:%d %s\n", timestamp, file, line, fmt.Sprintf(format, args...))
}
