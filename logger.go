package registro

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Logger receives structured debug output. Implementations must be safe for
// concurrent use. Key/value pairs follow the msg argument.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// SimpleLogger is a minimal console Logger built on the standard library.
type SimpleLogger struct {
	logger *log.Logger
}

// NewSimpleLogger creates a SimpleLogger writing to stderr.
func NewSimpleLogger() *SimpleLogger {
	return &SimpleLogger{
		logger: log.New(os.Stderr, "registro ", log.LstdFlags|log.Lmicroseconds),
	}
}

func (l *SimpleLogger) logf(level, msg string, keysAndValues ...interface{}) {
	var builder strings.Builder
	builder.WriteString(level)
	builder.WriteString(" ")
	builder.WriteString(msg)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		builder.WriteString(fmt.Sprintf(" %v=%v", keysAndValues[i], keysAndValues[i+1]))
	}
	l.logger.Print(builder.String())
}

// Debug logs at debug level.
func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logf("DEBUG", msg, keysAndValues...)
}

// Info logs at info level.
func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logf("INFO", msg, keysAndValues...)
}

// Warn logs at warn level.
func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logf("WARN", msg, keysAndValues...)
}

// Error logs at error level.
func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logf("ERROR", msg, keysAndValues...)
}

// DebugConfig controls which areas of the client emit debug logs. Logging
// only happens when Enabled is true and a Logger is configured.
type DebugConfig struct {
	Enabled      bool
	LogRequests  bool
	LogResponses bool
	LogWatch     bool
	RequestIDGen func() string
}

var requestIDCounter uint64

// DefaultDebugConfig returns a config with all areas enabled (but debug
// itself off) and a sequential request ID generator.
func DefaultDebugConfig() *DebugConfig {
	return &DebugConfig{
		Enabled:      false,
		LogRequests:  true,
		LogResponses: true,
		LogWatch:     true,
		RequestIDGen: func() string {
			return fmt.Sprintf("req-%d", atomic.AddUint64(&requestIDCounter, 1))
		},
	}
}
