// Package gomclient is the public façade over pkg/rpcclient: thin,
// per-entity methods (get attribute of item X, call command Y) rather than
// raw RequestKind/params plumbing. It wraps RPC calls the way dittofs's
// apiclient wraps REST calls: one small Client core plus one file per
// resource area.
package gomclient

import (
	"fmt"

	"github.com/TRenneke/gom-go/pkg/connurl"
	"github.com/TRenneke/gom-go/pkg/rpcclient"
	"github.com/TRenneke/gom-go/pkg/transport"
	"github.com/TRenneke/gom-go/pkg/typeregistry"
)

// Client is the public entry point an embedder uses to drive the server's
// scripting runtime.
type Client struct {
	rpc   *rpcclient.Client
	types *typeregistry.Registry
}

// Dial parses a connection URL, opens a NetTransport, and registers the
// interpreter with the server.
func Dial(connectionURL, file string) (*Client, error) {
	cfg, err := connurl.Parse(connectionURL)
	if err != nil {
		return nil, err
	}

	t, err := transport.Dial(cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("gomclient: dial: %w", err)
	}

	c := New(t, cfg.APIKey)
	if err := c.rpc.Register(cfg.InterpreterID, file); err != nil {
		_ = t.Close()
		return nil, fmt.Errorf("gomclient: register: %w", err)
	}
	return c, nil
}

// New wires a Client around an already-open Transport, skipping URL parsing
// and the REGISTER handshake. Callers that need the handshake should use
// Dial, or call rpc.Register themselves via RPC.
func New(t transport.Transport, apikey string) *Client {
	return &Client{
		rpc:   rpcclient.New(t, apikey),
		types: typeregistry.New(),
	}
}

// RPC exposes the underlying rpcclient.Client for callers that need
// RegisterCallable/NewCallable access or a raw Request escape hatch.
func (c *Client) RPC() *rpcclient.Client { return c.rpc }

// Types exposes the type-name registry populated by ObjectTypes.
func (c *Client) Types() *typeregistry.Registry { return c.types }

// Close releases the underlying connection.
func (c *Client) Close() error { return c.rpc.Close() }
