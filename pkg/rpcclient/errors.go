package rpcclient

import (
	"fmt"

	"github.com/TRenneke/gom-go/pkg/cdc"
)

// ErrorKind classifies a protocol-layer error frame. Unlike a
// cdc.DecodeError, a RemoteError originates in the server's runtime, not in
// this client's decoding of the wire.
type ErrorKind int

const (
	KindBreak ErrorKind = iota
	KindAttribute
	KindImportError
	KindIndexError
	KindGenericRequest
)

func (k ErrorKind) String() string {
	switch k {
	case KindBreak:
		return "abort/break"
	case KindAttribute:
		return "attribute"
	case KindImportError:
		return "import"
	case KindIndexError:
		return "index"
	default:
		return "generic request"
	}
}

// wireErrorKinds maps the dotted error-type strings the server sends to a
// typed ErrorKind. Any string not in this table maps to KindGenericRequest.
var wireErrorKinds = map[string]ErrorKind{
	"Tom::GScript::BreakException":     KindBreak,
	"Tom::GScript::AttributeException": KindAttribute,
	"Tom::GScript::ImportException":    KindImportError,
	"Tom::GScript::IndexException":     KindIndexError,
}

func errorKindForWireString(s string) ErrorKind {
	if kind, ok := wireErrorKinds[s]; ok {
		return kind
	}
	return KindGenericRequest
}

// RemoteError wraps one "error" frame. The wire type string is preserved
// verbatim in WireType alongside the mapped Kind, since some callers want
// the raw taxonomy string for logging even after dispatch has classified
// it.
type RemoteError struct {
	Kind        ErrorKind
	WireType    string
	Description string
	Code        int64
	Log         string
	Value       []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("rpcclient: remote error (%s): %s [code=%d]", e.Kind, e.Description, e.Code)
}

// ConnectionError marks the connection as unrecoverable. Once returned
// from any Client method, the Client must not be reused.
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("rpcclient: connection closed: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// ProtocolError is returned when an inbound frame's "type" field is
// something other than reply/error/wait/call: this is fatal to the
// connection.
type ProtocolError struct {
	FrameType string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("rpcclient: unknown frame type %q", e.FrameType)
}

// remoteErrorFromFrame builds a RemoteError from a decoded "error" frame's
// Map payload. The frame reuses the key "type" for both the outer frame
// classifier and the inner taxonomy string; Map decoding keeps the last
// pair for a repeated key, so by the time this is called "type" holds
// only the taxonomy string (see classifyFrame).
func remoteErrorFromFrame(m cdc.Map) (*RemoteError, error) {
	wireType, _ := cdc.ExpectString(m["type"])
	description, _ := cdc.ExpectString(m["description"])
	code, _ := cdc.ExpectInteger(m["code"])
	logMsg, _ := cdc.ExpectString(m["log"])

	var value []byte
	if blob, ok := cdc.ExpectBlob(m["value"]); ok {
		value = []byte(blob)
	}

	return &RemoteError{
		Kind:        errorKindForWireString(string(wireType)),
		WireType:    string(wireType),
		Description: string(description),
		Code:        int64(code),
		Log:         string(logMsg),
		Value:       value,
	}, nil
}
