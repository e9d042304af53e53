package gomclient

import (
	"fmt"

	"github.com/TRenneke/gom-go/pkg/cdc"
	"github.com/TRenneke/gom-go/pkg/rpcclient"
)

// ObjectTypes refreshes the type-name registry from the server's current
// dynamically discovered type table, keyed by category id.
func (c *Client) ObjectTypes() error {
	result, err := c.rpc.Request(rpcclient.KindObjectTypes, nil)
	if err != nil {
		return err
	}
	m, ok := cdc.ExpectMap(result)
	if !ok {
		return fmt.Errorf("gomclient: ObjectTypes: expected Map reply, got %T", result)
	}
	for idStr, nameVal := range m {
		var id int64
		if _, err := fmt.Sscanf(idStr, "%d", &id); err != nil {
			continue
		}
		name, ok := cdc.ExpectString(nameVal)
		if !ok {
			continue
		}
		c.types.Set(id, string(name))
	}
	return nil
}

// TypeCall invokes a server type's callable protocol (e.g. calling an
// instance like a function).
func (c *Client) TypeCall(item cdc.Item, args cdc.List, kwargs cdc.Map) (cdc.Value, error) {
	if kwargs == nil {
		kwargs = cdc.Map{}
	}
	return c.rpc.Request(rpcclient.KindTypeCall, cdc.Map{
		"item":   item,
		"args":   args,
		"kwargs": kwargs,
	})
}

// TypeConstruct constructs a new instance of a server type by category.
func (c *Client) TypeConstruct(category int64, args cdc.List, kwargs cdc.Map) (cdc.Value, error) {
	if kwargs == nil {
		kwargs = cdc.Map{}
	}
	return c.rpc.Request(rpcclient.KindTypeConstruct, cdc.Map{
		"category": cdc.Integer(category),
		"args":     args,
		"kwargs":   kwargs,
	})
}

// TypeCmp compares two items via their type's comparison protocol.
func (c *Client) TypeCmp(a, b cdc.Item) (int64, error) {
	result, err := c.rpc.Request(rpcclient.KindTypeCmp, cdc.Map{"left": a, "right": b})
	if err != nil {
		return 0, err
	}
	n, _ := cdc.ExpectInteger(result)
	return int64(n), nil
}

// TypeDoc fetches the docstring of a server type by category.
func (c *Client) TypeDoc(category int64) (string, error) {
	result, err := c.rpc.Request(rpcclient.KindTypeDoc, cdc.Map{"category": cdc.Integer(category)})
	if err != nil {
		return "", err
	}
	s, _ := cdc.ExpectString(result)
	return string(s), nil
}

// TypeGetAttr fetches a named attribute through an item's type protocol,
// distinct from GetAttr which goes through the instance directly.
func (c *Client) TypeGetAttr(item cdc.Item, name string) (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindTypeGetAttr, cdc.Map{
		"item": item,
		"name": cdc.String(name),
	})
}

// TypeSetAttr sets a named attribute through an item's type protocol.
func (c *Client) TypeSetAttr(item cdc.Item, name string, value cdc.Value) error {
	_, err := c.rpc.Request(rpcclient.KindTypeSetAttr, cdc.Map{
		"item":  item,
		"name":  cdc.String(name),
		"value": value,
	})
	return err
}

// TypeGetItem subscripts item through its type protocol.
func (c *Client) TypeGetItem(item cdc.Item, key cdc.Value) (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindTypeGetItem, cdc.Map{
		"item": item,
		"key":  key,
	})
}

// TypeSetItem assigns through item's subscript protocol.
func (c *Client) TypeSetItem(item cdc.Item, key, value cdc.Value) error {
	_, err := c.rpc.Request(rpcclient.KindTypeSetItem, cdc.Map{
		"item":  item,
		"key":   key,
		"value": value,
	})
	return err
}

// TypeIter begins iteration over item through its type protocol, returning
// an Indexable the caller can step through.
func (c *Client) TypeIter(item cdc.Item) (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindTypeIter, cdc.Map{"item": item})
}

// TypeLen returns len(item) through the type protocol.
func (c *Client) TypeLen(item cdc.Item) (int64, error) {
	result, err := c.rpc.Request(rpcclient.KindTypeLen, cdc.Map{"item": item})
	if err != nil {
		return 0, err
	}
	n, _ := cdc.ExpectInteger(result)
	return int64(n), nil
}

// TypeRepr returns repr(item) through the type protocol.
func (c *Client) TypeRepr(item cdc.Item) (string, error) {
	result, err := c.rpc.Request(rpcclient.KindTypeRepr, cdc.Map{"item": item})
	if err != nil {
		return "", err
	}
	s, _ := cdc.ExpectString(result)
	return string(s), nil
}

// TypeStr returns str(item) through the type protocol.
func (c *Client) TypeStr(item cdc.Item) (string, error) {
	result, err := c.rpc.Request(rpcclient.KindTypeStr, cdc.Map{"item": item})
	if err != nil {
		return "", err
	}
	s, _ := cdc.ExpectString(result)
	return string(s), nil
}
