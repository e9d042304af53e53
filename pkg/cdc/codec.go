package cdc

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a codec-level failure. These are local bugs or
// adversarial input, never protocol-layer errors from the peer.
type ErrorKind int

const (
	// ErrMissingData means the buffer was shorter than the claimed length
	// of some field.
	ErrMissingData ErrorKind = iota
	// ErrUnknownType means the discriminant byte was not one of the
	// variants in the tag table, or a nested type constraint was
	// violated (e.g. a Slice slot decoded to something other than None
	// or Integer).
	ErrUnknownType
	// ErrMissingFunction means a Callable's handle was not present in
	// the decoding Codec's callable registry.
	ErrMissingFunction
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMissingData:
		return "missing-data"
	case ErrUnknownType:
		return "unknown-type"
	case ErrMissingFunction:
		return "missing-function"
	default:
		return "unknown-error-kind"
	}
}

// DecodeError is returned by Codec.Decode. It always carries a Kind so
// callers (in particular pkg/rpcclient) can branch on the failure without
// string matching.
type DecodeError struct {
	Kind ErrorKind
	Msg  string
}

func (e *DecodeError) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newDecodeError(kind ErrorKind, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a *DecodeError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

// Codec is a stateful encoder/decoder for Value. Its only piece of state is
// the callable registry: entries are inserted by NewCallable and
// RegisterCallable (Encode itself inserts nothing) and live for the
// lifetime of the Codec. One RPC connection owns exactly one Codec, so the
// registry is scoped to that connection.
type Codec struct {
	callables *callableRegistry
}

// NewCodec returns a Codec with a fresh, empty callable registry.
func NewCodec() *Codec {
	return &Codec{callables: newCallableRegistry()}
}

// Encode drains v into a freshly allocated byte slice.
func (c *Codec) Encode(v Value) ([]byte, error) {
	buf := make([]byte, 0, 64)
	buf, err := c.encodeValue(buf, v)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Decode consumes a prefix of buf and returns the decoded Value along with
// the unread suffix.
func (c *Codec) Decode(buf []byte) (Value, []byte, error) {
	return c.decodeValue(buf)
}

// RegisterCallable inserts fn into the registry and returns its freshly
// allocated handle. Encode does not register anything: it writes a
// Callable's Handle as given, so a Callable whose handle was never
// registered here fails to decode with ErrMissingFunction. NewCallable
// wraps this call and returns the ready-made Callable value.
func (c *Codec) RegisterCallable(fn Fn) uint64 {
	return c.callables.register(fn)
}

// LookupCallable resolves a decoded handle string back to the Fn that was
// registered for it, or reports false if the handle is not resident.
func (c *Codec) LookupCallable(handle string) (Fn, bool) {
	return c.callables.lookup(handle)
}

// NewCallable registers fn with the Codec and returns the Callable value
// that refers to it. The returned value only decodes successfully when fed
// back through this same Codec instance.
func (c *Codec) NewCallable(fn Fn) Callable {
	id := c.callables.register(fn)
	return Callable{Handle: handleString(id)}
}
