package transport

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/TRenneke/gom-go/internal/bufpool"
)

// maxMessageSize bounds a single frame so a corrupt or hostile peer cannot
// make NetTransport allocate an unbounded buffer from a forged length
// header.
const maxMessageSize = 64 << 20 // 64 MiB

// NetTransport frames messages over a net.Conn as a 4-byte big-endian
// length header followed by that many payload bytes. It is the default,
// swappable implementation of Transport: the core consumes only
// Send/Recv, never net.Conn directly.
type NetTransport struct {
	conn net.Conn

	writeMu sync.Mutex
}

// Dial opens a NetTransport to addr over TCP.
func Dial(addr string) (*NetTransport, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", addr, err)
	}
	return NewNetTransport(conn), nil
}

// NewNetTransport wraps an already-connected net.Conn.
func NewNetTransport(conn net.Conn) *NetTransport {
	return &NetTransport{conn: conn}
}

// Send writes one length-framed message. The header and payload are
// assembled into a single pooled buffer and written with one conn.Write,
// rather than two, so the kernel never has the option of splitting them
// into separate packets. Writes are serialized so replies sent from the
// upcall-dispatch path never interleave with a caller's outbound request.
func (t *NetTransport) Send(msg []byte) error {
	if len(msg) > maxMessageSize {
		return fmt.Errorf("transport: message of %d bytes exceeds max %d", len(msg), maxMessageSize)
	}

	framed := bufpool.Get(4 + len(msg))
	defer bufpool.Put(framed)

	binary.BigEndian.PutUint32(framed[:4], uint32(len(msg)))
	copy(framed[4:], msg)

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	if _, err := t.conn.Write(framed); err != nil {
		return fmt.Errorf("transport: write frame: %w", err)
	}
	return nil
}

// Recv blocks until one complete framed message is available.
func (t *NetTransport) Recv() ([]byte, error) {
	var header [4]byte
	if _, err := io.ReadFull(t.conn, header[:]); err != nil {
		return nil, wrapRecvErr(err)
	}

	length := binary.BigEndian.Uint32(header[:])
	if length > maxMessageSize {
		return nil, fmt.Errorf("transport: claimed length %d exceeds max %d", length, maxMessageSize)
	}

	out := make([]byte, length)
	if _, err := io.ReadFull(t.conn, out); err != nil {
		return nil, wrapRecvErr(err)
	}
	return out, nil
}

func wrapRecvErr(err error) error {
	if err == io.EOF {
		return io.EOF
	}
	return fmt.Errorf("transport: read: %w", err)
}

// Close closes the underlying connection.
func (t *NetTransport) Close() error {
	return t.conn.Close()
}
