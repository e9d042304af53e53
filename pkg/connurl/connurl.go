// Package connurl parses the single connection URL string that carries all
// client configuration via query parameters.
package connurl

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// Config is the parsed form of a connection URL.
type Config struct {
	// Addr is the URL's host part ("host:port"); scheme, path and query
	// are dropped, so it can be passed to the transport's dialer as is.
	Addr string

	// APIKey is the server credential. Empty if not supplied.
	APIKey string

	// InterpreterID is the caller identity. A random UUID is generated
	// when the query parameter is omitted.
	InterpreterID string

	// StripTracebacks is the parsed strip_tracebacks setting ("1" is
	// true, any other non-empty value false). Defaults to true. Nothing in
	// this module sends it to the server.
	StripTracebacks bool
}

// Parse reads a connection URL and returns its Config. Unknown query
// parameters are ignored rather than rejected, since new ones may be added
// without breaking older clients.
func Parse(raw string) (Config, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("connurl: parse %q: %w", raw, err)
	}

	q := u.Query()

	cfg := Config{
		Addr:            u.Host,
		APIKey:          q.Get("apikey"),
		StripTracebacks: true,
	}

	if id := q.Get("interpreter_id"); id != "" {
		cfg.InterpreterID = id
	} else {
		cfg.InterpreterID = uuid.NewString()
	}

	if raw := q.Get("strip_tracebacks"); raw != "" {
		cfg.StripTracebacks = raw == "1"
	}

	return cfg, nil
}
