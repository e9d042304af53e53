package gomclient

import (
	"fmt"

	"github.com/TRenneke/gom-go/pkg/cdc"
	"github.com/TRenneke/gom-go/pkg/rpcclient"
)

// GetAttr fetches the value of a named attribute on item.
func (c *Client) GetAttr(item cdc.Item, name string) (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindGetAttr, cdc.Map{
		"item": item,
		"name": cdc.String(name),
	})
}

// SetAttr assigns value to a named attribute on item.
func (c *Client) SetAttr(item cdc.Item, name string, value cdc.Value) error {
	_, err := c.rpc.Request(rpcclient.KindSetAttr, cdc.Map{
		"item":  item,
		"name":  cdc.String(name),
		"value": value,
	})
	return err
}

// Get fetches item[key], the generic subscript operation.
func (c *Client) Get(item cdc.Item, key cdc.Value) (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindGet, cdc.Map{
		"item": item,
		"key":  key,
	})
}

// Len returns len(item).
func (c *Client) Len(item cdc.Item) (int64, error) {
	result, err := c.rpc.Request(rpcclient.KindLen, cdc.Map{"item": item})
	if err != nil {
		return 0, err
	}
	n, ok := cdc.ExpectInteger(result)
	if !ok {
		return 0, fmt.Errorf("gomclient: Len: expected Integer reply, got %T", result)
	}
	return int64(n), nil
}

// Index returns the position of value within item, per the server's
// index() semantics.
func (c *Client) Index(item cdc.Item, value cdc.Value) (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindIndex, cdc.Map{
		"item":  item,
		"value": value,
	})
}

// Key returns the server's canonical key representation for item.
func (c *Client) Key(item cdc.Item) (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindKey, cdc.Map{"item": item})
}

// Equal reports whether two items compare equal on the server.
func (c *Client) Equal(a, b cdc.Item) (bool, error) {
	result, err := c.rpc.Request(rpcclient.KindEqual, cdc.Map{"left": a, "right": b})
	if err != nil {
		return false, err
	}
	v, ok := cdc.ExpectBool(result)
	if !ok {
		return false, fmt.Errorf("gomclient: Equal: expected Bool reply, got %T", result)
	}
	return bool(v), nil
}

// Less reports whether a orders before b on the server.
func (c *Client) Less(a, b cdc.Item) (bool, error) {
	result, err := c.rpc.Request(rpcclient.KindLess, cdc.Map{"left": a, "right": b})
	if err != nil {
		return false, err
	}
	v, ok := cdc.ExpectBool(result)
	if !ok {
		return false, fmt.Errorf("gomclient: Less: expected Bool reply, got %T", result)
	}
	return bool(v), nil
}

// Repr returns the server's repr() string for item.
func (c *Client) Repr(item cdc.Item) (string, error) {
	result, err := c.rpc.Request(rpcclient.KindRepr, cdc.Map{"item": item})
	if err != nil {
		return "", err
	}
	s, _ := cdc.ExpectString(result)
	return string(s), nil
}

// Doc returns the server's docstring for item.
func (c *Client) Doc(item cdc.Item) (string, error) {
	result, err := c.rpc.Request(rpcclient.KindDoc, cdc.Map{"item": item})
	if err != nil {
		return "", err
	}
	s, _ := cdc.ExpectString(result)
	return string(s), nil
}

// Release tells the server this client no longer holds a reference to
// item, allowing it to be garbage collected server-side.
func (c *Client) Release(item cdc.Item) error {
	_, err := c.rpc.Request(rpcclient.KindRelease, cdc.Map{"item": item})
	return err
}
