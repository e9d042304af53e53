// Package rpcclient implements the request/reply RPC client that drives a
// host application's scripting runtime over a single full-duplex,
// message-oriented socket. The client is single-threaded and synchronous:
// exactly one Request may be in flight at a time per Client instance,
// though a dispatched upcall may itself reenter Request on the same
// instance (LIFO reentrancy).
package rpcclient

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/TRenneke/gom-go/internal/logger"
	"github.com/TRenneke/gom-go/pkg/cdc"
	"github.com/TRenneke/gom-go/pkg/transport"
)

// outcome is what a correlation id eventually resolves to: either a reply
// value or a typed remote error, never both.
type outcome struct {
	value  cdc.Value
	remote *RemoteError
}

// Client owns the transport, the codec, and the per-connection pending
// table. It is not safe for concurrent use by more than one goroutine:
// the single-thread rule above is the caller's responsibility to uphold,
// not something Client enforces with locks.
type Client struct {
	transport transport.Transport
	codec     *cdc.Codec
	apikey    string

	pending map[string]outcome

	closed    bool
	closedErr error
}

// New wires a Client to an already-open Transport. Call Register next to
// perform the handshake.
func New(t transport.Transport, apikey string) *Client {
	return &Client{
		transport: t,
		codec:     cdc.NewCodec(),
		apikey:    apikey,
		pending:   make(map[string]outcome),
	}
}

// Codec exposes the Client's Codec so callers can register upcall Fns
// before any frame referencing them is sent.
func (c *Client) Codec() *cdc.Codec { return c.codec }

// Register performs connection initialisation: issues a REGISTER request
// and treats the reply as an opaque success token.
func (c *Client) Register(interpreterID, file string) error {
	if interpreterID == "" {
		interpreterID = uuid.NewString()
	}
	_, err := c.Request(KindRegister, cdc.Map{
		"id":   cdc.String(interpreterID),
		"file": cdc.String(file),
	})
	return err
}

// Request sends a fresh request frame and blocks until its own correlation
// id resolves. Frames for other ids encountered meanwhile are
// stashed in pending so a later Request can pick them up without
// re-reading the socket; wait frames are discarded; call frames are
// dispatched to a registered Fn before the read loop continues.
func (c *Client) Request(kind RequestKind, params cdc.Map) (cdc.Value, error) {
	if c.closed {
		return nil, &ConnectionError{Cause: c.closedErr}
	}

	id := uuid.NewString()
	frame := buildRequestFrame(c.apikey, id, kind, params)

	buf, err := c.codec.Encode(frame)
	if err != nil {
		return nil, fmt.Errorf("rpcclient: encode request: %w", err)
	}
	if err := c.transport.Send(buf); err != nil {
		return nil, c.fatal(fmt.Errorf("send request: %w", err))
	}

	logger.Debug("request sent", "id", id, "kind", int64(kind))

	for {
		if out, ok := c.pending[id]; ok {
			delete(c.pending, id)
			return outcomeResult(out)
		}

		msgBuf, err := c.transport.Recv()
		if err != nil {
			return nil, c.fatal(fmt.Errorf("recv: %w", err))
		}

		value, remainder, err := c.codec.Decode(msgBuf)
		if err != nil {
			return nil, c.fatal(fmt.Errorf("decode frame: %w", err))
		}
		_ = remainder // transport frames carry exactly one value

		frame, err := classifyFrame(value)
		if err != nil {
			return nil, c.fatal(err)
		}

		switch frame.kind {
		case frameWait:
			logger.Debug("wait frame discarded")
			continue

		case frameCall:
			if err := c.dispatchCall(frame); err != nil {
				logger.Warn("call dispatch failed", "error", err)
			}
			continue

		case frameReply:
			if frame.id == id {
				delete(c.pending, id)
				return frame.reply, nil
			}
			c.pending[frame.id] = outcome{value: frame.reply}

		case frameError:
			if frame.id == id {
				return nil, frame.remote
			}
			c.pending[frame.id] = outcome{remote: frame.remote}
		}
	}
}

func outcomeResult(out outcome) (cdc.Value, error) {
	if out.remote != nil {
		return nil, out.remote
	}
	return out.value, nil
}

// fatal marks the connection unusable and abandons every pending
// correlation id: subsequent Request calls observe a ConnectionError
// rather than attempting to reuse the socket.
func (c *Client) fatal(cause error) error {
	c.closed = true
	c.closedErr = cause
	c.pending = nil
	logger.Warn("connection closed", "error", cause)
	return &ConnectionError{Cause: cause}
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	c.closed = true
	return c.transport.Close()
}
