package gomclient

import (
	"github.com/TRenneke/gom-go/pkg/cdc"
	"github.com/TRenneke/gom-go/pkg/rpcclient"
)

// DataArray fetches a server-side data-array view for item.
func (c *Client) DataArray(item cdc.Item, key string, index []int64) (cdc.Array, error) {
	idx := make(cdc.List, len(index))
	for i, v := range index {
		idx[i] = cdc.Integer(v)
	}
	result, err := c.rpc.Request(rpcclient.KindDataArray, cdc.Map{
		"item":  item,
		"key":   cdc.String(key),
		"index": idx,
	})
	if err != nil {
		return cdc.Array{}, err
	}
	arr, _ := cdc.ExpectArray(result)
	return arr, nil
}

// DataAttr fetches a named attribute of a data array.
func (c *Client) DataAttr(item cdc.Item, name string) (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindDataAttr, cdc.Map{
		"item": item,
		"name": cdc.String(name),
	})
}

// DataIndex resolves an index path within a data array to its value.
func (c *Client) DataIndex(item cdc.Item, index []int64) (cdc.Value, error) {
	idx := make(cdc.List, len(index))
	for i, v := range index {
		idx[i] = cdc.Integer(v)
	}
	return c.rpc.Request(rpcclient.KindDataIndex, cdc.Map{
		"item":  item,
		"index": idx,
	})
}

// DataShape fetches the dimensions of a data array.
func (c *Client) DataShape(item cdc.Item) ([]int64, error) {
	result, err := c.rpc.Request(rpcclient.KindDataShape, cdc.Map{"item": item})
	if err != nil {
		return nil, err
	}
	list, _ := cdc.ExpectList(result)
	shape := make([]int64, 0, len(list))
	for _, v := range list {
		n, ok := cdc.ExpectInteger(v)
		if ok {
			shape = append(shape, int64(n))
		}
	}
	return shape, nil
}

// ResourceKey resolves an Indexable's access token to a server-side
// resource key.
func (c *Client) ResourceKey(ix cdc.Indexable) (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindResourceKey, cdc.Map{"indexable": ix})
}

// ResourceLen returns the declared size of an Indexable's resource.
func (c *Client) ResourceLen(ix cdc.Indexable) (int64, error) {
	result, err := c.rpc.Request(rpcclient.KindResourceLen, cdc.Map{"indexable": ix})
	if err != nil {
		return 0, err
	}
	n, _ := cdc.ExpectInteger(result)
	return int64(n), nil
}

// Filter evaluates a server-side filter predicate (typically a Callable
// registered via c.RPC().Codec().NewCallable) over item.
func (c *Client) Filter(item cdc.Item, predicate cdc.Callable) (cdc.Value, error) {
	return c.rpc.Request(rpcclient.KindFilter, cdc.Map{
		"item":      item,
		"predicate": predicate,
	})
}

// Query runs a server-side structured query described by params.
func (c *Client) Query(item cdc.Item, params cdc.Map) (cdc.Value, error) {
	if params == nil {
		params = cdc.Map{}
	}
	params["item"] = item
	return c.rpc.Request(rpcclient.KindQuery, params)
}
