package logger

import (
	"log/slog"
)

// Standard field keys for structured logging across the codec and RPC
// client. Use these keys consistently so log lines can be aggregated and
// queried without per-call-site drift.
const (
	// ========================================================================
	// Connection & Request
	// ========================================================================
	KeyRequestID     = "request_id"     // correlation id of a request frame
	KeyRequestKind   = "request_kind"   // request-kind name (GET, SETATTR, ...)
	KeyInterpreterID = "interpreter_id" // caller identity from REGISTER
	KeyFrameType     = "frame_type"     // reply, error, wait, call
	KeyDurationMs    = "duration_ms"    // operation duration in milliseconds

	// ========================================================================
	// Codec & Protocol Errors
	// ========================================================================
	KeyDecodeErrorKind = "decode_error_kind" // missing-data, unknown-type, missing-function
	KeyRemoteErrorKind = "remote_error_kind" // abort/break, attribute, import, index, generic request
	KeyWireType        = "wire_type"         // raw Tom::GScript::* taxonomy string

	// ========================================================================
	// Callables
	// ========================================================================
	KeyCallableHandle = "callable_handle" // decimal handle of a registered Fn

	// ========================================================================
	// Items
	// ========================================================================
	KeyItemID       = "item_id"
	KeyItemCategory = "item_category"
	KeyItemStage    = "item_stage"

	// ========================================================================
	// Transport
	// ========================================================================
	KeyBytesSent     = "bytes_sent"
	KeyBytesReceived = "bytes_received"

	// ========================================================================
	// Generic
	// ========================================================================
	KeyError = "error" // error message
)

// RequestID returns a slog.Attr for a request's correlation id.
func RequestID(id string) slog.Attr {
	return slog.String(KeyRequestID, id)
}

// RequestKind returns a slog.Attr for a request-kind name.
func RequestKind(kind string) slog.Attr {
	return slog.String(KeyRequestKind, kind)
}

// InterpreterID returns a slog.Attr for the registered interpreter identity.
func InterpreterID(id string) slog.Attr {
	return slog.String(KeyInterpreterID, id)
}

// FrameType returns a slog.Attr for an inbound frame's classifier.
func FrameType(kind string) slog.Attr {
	return slog.String(KeyFrameType, kind)
}

// CallableHandle returns a slog.Attr for a registered Fn's decimal handle.
func CallableHandle(handle string) slog.Attr {
	return slog.String(KeyCallableHandle, handle)
}

// WireType returns a slog.Attr for a raw taxonomy string from an error
// frame.
func WireType(wireType string) slog.Attr {
	return slog.String(KeyWireType, wireType)
}

// DurationMs returns a slog.Attr for an operation duration in milliseconds.
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error. Nil errors produce an empty attr,
// which slog drops from output.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}
