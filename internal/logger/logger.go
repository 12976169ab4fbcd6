// Package logger provides the logging collaborator injected into the
// discovery pipeline. The core packages never write to a terminal directly;
// they report structured, leveled events through the Logger interface and the
// caller decides where those events go.
package logger

// Logger is the observability collaborator consumed by the discovery
// pipeline. Implementations must be safe for concurrent use; the pipeline
// itself is fully synchronous but loggers may be shared.
type Logger interface {
	// Debugf reports a debug-level event (most verbose).
	Debugf(format string, args ...any)
	// Infof reports an info-level event.
	Infof(format string, args ...any)
	// Warnf reports a warning-level event (non-fatal conditions such as
	// skipped backup files).
	Warnf(format string, args ...any)
	// Errorf reports an error-level event.
	Errorf(format string, args ...any)
}

// NoOpLogger is a Logger implementation that discards all events.
// Useful for tests and for callers that do not want diagnostics.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debugf is a no-op implementation.
func (n *NoOpLogger) Debugf(format string, args ...any) {}

// Infof is a no-op implementation.
func (n *NoOpLogger) Infof(format string, args ...any) {}

// Warnf is a no-op implementation.
func (n *NoOpLogger) Warnf(format string, args ...any) {}

// Errorf is a no-op implementation.
func (n *NoOpLogger) Errorf(format string, args ...any) {}
