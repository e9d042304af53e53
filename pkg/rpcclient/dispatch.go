package rpcclient

import (
	"fmt"

	"github.com/TRenneke/gom-go/pkg/cdc"
)

// dispatchCall invokes the Fn registered for a call frame's Callable and
// sends the bare return value back as a reply. Unlike a request frame, the
// reply to a call frame carries no correlation id and no outer envelope:
// it is just the encoded return Value.
//
// If the invoked Fn returns an error, that error is encoded as an Error
// value and sent in place of a result, giving the host runtime something
// to surface rather than silently dropping the upcall.
func (c *Client) dispatchCall(frame *classifiedFrame) error {
	fn, ok := c.codec.LookupCallable(frame.callable.Handle)
	if !ok {
		return fmt.Errorf("rpcclient: call frame references unknown handle %q", frame.callable.Handle)
	}

	kwargs := make(map[string]cdc.Value, len(frame.kwargs))
	for k, v := range frame.kwargs {
		kwargs[k] = v
	}

	result, err := fn.Invoke([]cdc.Value(frame.args), kwargs)
	if err != nil {
		result = cdc.Error{
			ID:   "Tom::GScript::RequestException",
			Text: err.Error(),
		}
	}
	if result == nil {
		result = cdc.None{}
	}

	buf, err := c.codec.Encode(result)
	if err != nil {
		return fmt.Errorf("rpcclient: encode call result: %w", err)
	}
	if err := c.transport.Send(buf); err != nil {
		return c.fatal(fmt.Errorf("send call result: %w", err))
	}
	return nil
}
