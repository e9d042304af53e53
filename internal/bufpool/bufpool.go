// Package bufpool provides a tiered buffer pool for efficient memory reuse.
//
// The buffer pool provides reusable byte slices for I/O operations,
// reducing GC pressure and allocation overhead on the transport's send
// path, which assembles every outbound frame in a pooled buffer.
//
// The pool uses three size tiers to balance memory efficiency with reuse:
//   - Small buffers (default 4KB): most request frames
//   - Medium buffers (default 64KB): frames with list/map arguments
//   - Large buffers (default 1MB): bulk Blob payloads
//
// Buffers larger than the large tier are allocated directly and not pooled,
// to avoid keeping very large buffers resident indefinitely.
package bufpool

import (
	"sync"
)

const (
	// DefaultSmallSize handles most request frames (4KB).
	DefaultSmallSize = 4 << 10

	// DefaultMediumSize handles frames with moderate arguments (64KB).
	DefaultMediumSize = 64 << 10

	// DefaultLargeSize handles bulk Blob transfers (1MB).
	DefaultLargeSize = 1 << 20
)

// Pool manages a set of byte slice pools organized by size class.
type Pool struct {
	small      sync.Pool
	medium     sync.Pool
	large      sync.Pool
	smallSize  int
	mediumSize int
	largeSize  int
}

// Config holds configuration for creating a custom buffer pool.
type Config struct {
	SmallSize  int
	MediumSize int
	LargeSize  int
}

// DefaultConfig returns the default pool configuration.
func DefaultConfig() Config {
	return Config{
		SmallSize:  DefaultSmallSize,
		MediumSize: DefaultMediumSize,
		LargeSize:  DefaultLargeSize,
	}
}

// NewPool creates a new buffer pool with the given configuration. If cfg is
// nil, default values are used.
func NewPool(cfg *Config) *Pool {
	if cfg == nil {
		defaultCfg := DefaultConfig()
		cfg = &defaultCfg
	}
	if cfg.SmallSize <= 0 {
		cfg.SmallSize = DefaultSmallSize
	}
	if cfg.MediumSize <= 0 {
		cfg.MediumSize = DefaultMediumSize
	}
	if cfg.LargeSize <= 0 {
		cfg.LargeSize = DefaultLargeSize
	}

	p := &Pool{
		smallSize:  cfg.SmallSize,
		mediumSize: cfg.MediumSize,
		largeSize:  cfg.LargeSize,
	}

	p.small = sync.Pool{New: func() any { buf := make([]byte, p.smallSize); return &buf }}
	p.medium = sync.Pool{New: func() any { buf := make([]byte, p.mediumSize); return &buf }}
	p.large = sync.Pool{New: func() any { buf := make([]byte, p.largeSize); return &buf }}

	return p
}

// Get returns a byte slice of at least the requested size. The caller must
// call Put when finished; failing to do so leaks the buffer out of the
// pool (not out of memory - it is just GC'd normally).
func (p *Pool) Get(size int) []byte {
	var bufPtr *[]byte

	switch {
	case size <= p.smallSize:
		bufPtr = p.small.Get().(*[]byte)
	case size <= p.mediumSize:
		bufPtr = p.medium.Get().(*[]byte)
	case size <= p.largeSize:
		bufPtr = p.large.Get().(*[]byte)
	default:
		return make([]byte, size)
	}

	buf := *bufPtr
	return buf[:size]
}

// Put returns a buffer obtained from Get back to the pool.
func (p *Pool) Put(buf []byte) {
	if buf == nil {
		return
	}

	switch cap(buf) {
	case p.smallSize:
		fullBuf := buf[:cap(buf)]
		p.small.Put(&fullBuf)
	case p.mediumSize:
		fullBuf := buf[:cap(buf)]
		p.medium.Put(&fullBuf)
	case p.largeSize:
		fullBuf := buf[:cap(buf)]
		p.large.Put(&fullBuf)
	default:
		return
	}
}

var globalPool = NewPool(nil)

// Get returns a byte slice of at least the requested size from the global
// pool.
func Get(size int) []byte {
	return globalPool.Get(size)
}

// Put returns a buffer to the global pool. Always pair with Get via defer.
func Put(buf []byte) {
	globalPool.Put(buf)
}
