package gomclient

import (
	"github.com/TRenneke/gom-go/pkg/cdc"
	"github.com/TRenneke/gom-go/pkg/rpcclient"
)

// Command invokes a named server-side command with positional args.
func (c *Client) Command(name string, args cdc.List) (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindCommand, cdc.Map{
		"name": cdc.String(name),
		"args": args,
	})
}

// Console evaluates a line of input in the server's interactive console.
func (c *Client) Console(line string) (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindConsole, cdc.Map{"line": cdc.String(line)})
}

// RunAPI invokes a registered API function by name.
func (c *Client) RunAPI(name string, args cdc.List, kwargs cdc.Map) (cdc.Value, error) {
	if kwargs == nil {
		kwargs = cdc.Map{}
	}
	return c.rpc.Request(rpcclient.KindRunAPI, cdc.Map{
		"name":   cdc.String(name),
		"args":   args,
		"kwargs": kwargs,
	})
}

// API looks up metadata for a registered API function by name.
func (c *Client) API(name string) (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindAPI, cdc.Map{"name": cdc.String(name)})
}

// Import loads a server-side module by name.
func (c *Client) Import(name string) (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindImport, cdc.Map{"name": cdc.String(name)})
}

// Service fetches a handle to a named server-side service.
func (c *Client) Service(name string) (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindService, cdc.Map{"name": cdc.String(name)})
}

// SetEnv sets a server-side environment variable visible to the running
// script.
func (c *Client) SetEnv(key string, value cdc.Value) error {
	_, err := c.rpc.Request(rpcclient.KindSetEnv, cdc.Map{
		"key":   cdc.String(key),
		"value": value,
	})
	return err
}

// Log writes a message to the server's log at the given severity.
func (c *Client) Log(level, message string) error {
	_, err := c.rpc.Request(rpcclient.KindLog, cdc.Map{
		"level":   cdc.String(level),
		"message": cdc.String(message),
	})
	return err
}

// Line fetches the current source line being executed server-side, for
// error reporting and debugging.
func (c *Client) Line() (int64, error) {
	result, err := c.rpc.Request(rpcclient.KindLine, nil)
	if err != nil {
		return 0, err
	}
	n, _ := cdc.ExpectInteger(result)
	return int64(n), nil
}

// Configuration fetches server configuration as a Map.
func (c *Client) Configuration() (cdc.Map, error) {
	result, err := c.rpc.Request(rpcclient.KindConfiguration, nil)
	if err != nil {
		return nil, err
	}
	m, _ := cdc.ExpectMap(result)
	return m, nil
}

// Tokens fetches the server's current scripting token table.
func (c *Client) Tokens() (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindTokens, nil)
}

// Translate maps a string through the server's localization table.
func (c *Client) Translate(key string) (string, error) {
	result, err := c.rpc.Request(rpcclient.KindTranslate, cdc.Map{"key": cdc.String(key)})
	if err != nil {
		return "", err
	}
	s, _ := cdc.ExpectString(result)
	return string(s), nil
}

// Exit requests an orderly shutdown of the server-side interpreter.
func (c *Client) Exit() error {
	_, err := c.rpc.Request(rpcclient.KindExit, nil)
	return err
}
