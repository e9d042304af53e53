// Package transport defines the message boundary the RPC client consumes.
// The wire framing itself is delegated entirely to an implementation of
// this interface: the core module never touches a net.Conn directly.
package transport

// Transport carries whole CDC-encoded values as discrete messages; framing
// them onto an actual byte stream is left to the implementation. Send and
// Recv are each one suspension point: a caller blocks on them and nothing
// else.
type Transport interface {
	// Send writes one complete message. It must not return until the
	// message has been handed off to the underlying medium.
	Send(msg []byte) error
	// Recv blocks until one complete message is available and returns it.
	Recv() ([]byte, error)
	// Close releases any resources held by the transport. Calling Send
	// or Recv after Close must return an error.
	Close() error
}
