// Package log provides a simple wrapper around logrus
// with context-aware helpers (Infof, Errorf, etc.)
package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	logcontext "github.com/faredesk/faredesk/context"
)

// Logger is the global logger instance
var Logger = logrus.New()

// CustomFormatter formats entries as [<time>] [LEVEL] [file:line] <message>
type CustomFormatter struct {
	TimestampFormat string
}

// Format implements logrus.Formatter
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	fmt.Fprintf(b, "[%s] ", entry.Time.Format(f.TimestampFormat))
	fmt.Fprintf(b, "[%s] ", strings.ToUpper(entry.Level.String()))

	// Walk the stack for the real call site, skipping logrus internals
	// and this wrapper.
	if file, line := callSite(); file != "" {
		parts := strings.Split(file, "/")
		fmt.Fprintf(b, "[%s:%d] ", parts[len(parts)-1], line)
	}

	b.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		if requestID, ok := entry.Data["request_id"].(string); ok && requestID != "" {
			fmt.Fprintf(b, " [req:%s]", requestID)
		}
		for key, value := range entry.Data {
			if key != "request_id" {
				fmt.Fprintf(b, " %s=%v", key, value)
			}
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func callSite() (string, int) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		skip := strings.Contains(frame.File, "github.com/sirupsen/logrus") ||
			strings.HasSuffix(frame.File, "log/log.go") ||
			strings.Contains(frame.File, "runtime/")
		if !skip {
			return frame.File, frame.Line
		}
		if !more {
			return "", 0
		}
	}
}

// entryFor attaches the request ID from the context, when present.
func entryFor(ctx context.Context) *logrus.Entry {
	requestID := ""
	if ctx != nil {
		requestID = logcontext.RequestIDFromContext(ctx)
	}
	return Logger.WithField("request_id", requestID)
}

// Infof logs formatted message at info level
func Infof(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Infof(format, args...)
}

// Info logs a message at info level
func Info(ctx context.Context, args ...interface{}) {
	entryFor(ctx).Info(args...)
}

// Debugf logs formatted message at debug level
func Debugf(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Debugf(format, args...)
}

// Debug logs a message at debug level
func Debug(ctx context.Context, args ...interface{}) {
	entryFor(ctx).Debug(args...)
}

// Warnf logs formatted message at warning level
func Warnf(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Warnf(format, args...)
}

// Errorf logs formatted message at error level
func Errorf(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Errorf(format, args...)
}

// Error logs a message at error level
func Error(ctx context.Context, args ...interface{}) {
	entryFor(ctx).Error(args...)
}

// Fatalf logs formatted message at fatal level and exits
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Fatalf(format, args...)
}

// SetLevel sets the global log level
func SetLevel(level logrus.Level) {
	Logger.SetLevel(level)
}

// SetOutput sets the global log output
func SetOutput(out io.Writer) {
	Logger.SetOutput(out)
}

// WithFields creates a logger with predefined fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Logger.WithFields(fields)
}

// Init initializes the logger with default settings
func Init() {
	Logger.SetFormatter(&CustomFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
	Logger.SetLevel(logrus.InfoLevel)
}
