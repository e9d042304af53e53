package logger

import (
	"context"
	"time"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey struct{}

// logContextKey is the key for LogContext in context.Context
var logContextKey = contextKey{}

// LogContext holds connection-scoped logging context for one RPC client
// instance.
type LogContext struct {
	RequestID     string    // correlation id of the in-flight request, if any
	RequestKind   string    // request-kind name (GET, SETATTR, REGISTER, ...)
	InterpreterID string    // caller identity registered at connection init
	StartTime     time.Time // for duration calculation
}

// WithContext returns a new context with the given LogContext
func WithContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, logContextKey, lc)
}

// FromContext retrieves the LogContext from context, or nil if not present
func FromContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(logContextKey).(*LogContext)
	return lc
}

// NewLogContext creates a new LogContext for a freshly registered
// interpreter.
func NewLogContext(interpreterID string) *LogContext {
	return &LogContext{
		InterpreterID: interpreterID,
		StartTime:     time.Now(),
	}
}

// Clone creates a copy of the LogContext
func (lc *LogContext) Clone() *LogContext {
	if lc == nil {
		return nil
	}
	return &LogContext{
		RequestID:     lc.RequestID,
		RequestKind:   lc.RequestKind,
		InterpreterID: lc.InterpreterID,
		StartTime:     lc.StartTime,
	}
}

// WithRequest returns a copy with the in-flight request's id and kind set.
func (lc *LogContext) WithRequest(requestID, requestKind string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.RequestID = requestID
		clone.RequestKind = requestKind
	}
	return clone
}

// DurationMs returns the duration since StartTime in milliseconds
func (lc *LogContext) DurationMs() float64 {
	if lc == nil || lc.StartTime.IsZero() {
		return 0
	}
	return float64(time.Since(lc.StartTime).Microseconds()) / 1000.0
}
