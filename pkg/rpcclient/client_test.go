package rpcclient

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TRenneke/gom-go/pkg/cdc"
)

// scriptedTransport is an in-memory transport.Transport whose Recv queue is
// driven by a respond callback invoked synchronously from Send, letting a
// test script exactly how many frames a Request call must read before its
// own correlation id resolves.
type scriptedTransport struct {
	codec     *cdc.Codec
	recvQueue [][]byte
	requests  []cdc.Map
	results   []cdc.Value

	respond func(id string, kind RequestKind, params cdc.Map) []cdc.Value
}

func newScriptedTransport() *scriptedTransport {
	return &scriptedTransport{codec: cdc.NewCodec()}
}

func (t *scriptedTransport) Send(msg []byte) error {
	v, _, err := t.codec.Decode(msg)
	if err != nil {
		return err
	}

	if m, ok := cdc.ExpectMap(v); ok {
		if typeStr, ok := cdc.ExpectString(m["type"]); ok && string(typeStr) == "request" {
			t.requests = append(t.requests, m)

			id, _ := cdc.ExpectString(m["id"])
			kindVal, _ := cdc.ExpectInteger(m["value"])
			params, _ := cdc.ExpectMap(m["params"])

			if t.respond != nil {
				for _, frame := range t.respond(string(id), RequestKind(kindVal), params) {
					buf, err := t.codec.Encode(frame)
					if err != nil {
						return err
					}
					t.recvQueue = append(t.recvQueue, buf)
				}
			}
			return nil
		}
	}

	t.results = append(t.results, v)
	return nil
}

func (t *scriptedTransport) Recv() ([]byte, error) {
	if len(t.recvQueue) == 0 {
		return nil, io.EOF
	}
	buf := t.recvQueue[0]
	t.recvQueue = t.recvQueue[1:]
	return buf, nil
}

func (t *scriptedTransport) Close() error { return nil }

func replyFrame(id string, value cdc.Value) cdc.Map {
	return cdc.Map{
		"type":  cdc.String("reply"),
		"id":    cdc.String(id),
		"value": value,
	}
}

func waitFrame() cdc.Map {
	return cdc.Map{"type": cdc.String("wait")}
}

func errorFrame(id, wireType, description string, code int64) cdc.Map {
	return cdc.Map{
		"type":        cdc.String(wireType),
		"id":          cdc.String(id),
		"description": cdc.String(description),
		"code":        cdc.Integer(code),
		"log":         cdc.String(""),
	}
}

func TestRequestResolvesOwnReply(t *testing.T) {
	tr := newScriptedTransport()
	tr.respond = func(id string, kind RequestKind, params cdc.Map) []cdc.Value {
		assert.Equal(t, KindAPI, kind)
		return []cdc.Value{replyFrame(id, cdc.Integer(42))}
	}

	c := New(tr, "test-key")
	result, err := c.Request(KindAPI, cdc.Map{"name": cdc.String("foo")})
	require.NoError(t, err)
	assert.Equal(t, cdc.Integer(42), result)
	require.Len(t, tr.requests, 1)
	apikey, _ := cdc.ExpectString(tr.requests[0]["apikey"])
	assert.Equal(t, "test-key", string(apikey))
}

func TestWaitFrameIsDiscarded(t *testing.T) {
	tr := newScriptedTransport()
	tr.respond = func(id string, kind RequestKind, params cdc.Map) []cdc.Value {
		return []cdc.Value{waitFrame(), waitFrame(), replyFrame(id, cdc.String("done"))}
	}

	c := New(tr, "test-key")
	result, err := c.Request(KindCommand, nil)
	require.NoError(t, err)
	assert.Equal(t, cdc.String("done"), result)
}

func TestErrorFrameMapsToRemoteError(t *testing.T) {
	tr := newScriptedTransport()
	tr.respond = func(id string, kind RequestKind, params cdc.Map) []cdc.Value {
		return []cdc.Value{errorFrame(id, "Tom::GScript::IndexException", "list index out of range", 7)}
	}

	c := New(tr, "test-key")
	_, err := c.Request(KindIndex, nil)
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, KindIndexError, remote.Kind)
	assert.Equal(t, "list index out of range", remote.Description)
	assert.Equal(t, int64(7), remote.Code)
}

func TestFrameForOtherIDIsStashedThenIgnoredFromHere(t *testing.T) {
	tr := newScriptedTransport()
	tr.respond = func(id string, kind RequestKind, params cdc.Map) []cdc.Value {
		return []cdc.Value{
			replyFrame("some-other-correlation-id", cdc.Integer(1)),
			replyFrame(id, cdc.Integer(2)),
		}
	}

	c := New(tr, "test-key")
	result, err := c.Request(KindGet, nil)
	require.NoError(t, err)
	assert.Equal(t, cdc.Integer(2), result)
	assert.Contains(t, c.pending, "some-other-correlation-id")
}

// echoFn implements cdc.Fn by returning its first positional argument.
type echoFn struct{}

func (echoFn) Invoke(args []cdc.Value, kwargs map[string]cdc.Value) (cdc.Value, error) {
	if len(args) == 0 {
		return cdc.None{}, nil
	}
	return args[0], nil
}

func TestCallFrameDispatchesRegisteredFnBeforeReply(t *testing.T) {
	tr := newScriptedTransport()
	c := New(tr, "test-key")

	callable := c.Codec().NewCallable(echoFn{})

	tr.respond = func(id string, kind RequestKind, params cdc.Map) []cdc.Value {
		return []cdc.Value{
			cdc.Map{
				"type":   cdc.String("call"),
				"value":  callable,
				"args":   cdc.List{cdc.String("ping")},
				"kwargs": cdc.Map{},
			},
			replyFrame(id, cdc.Integer(99)),
		}
	}

	result, err := c.Request(KindAPI, cdc.Map{})
	require.NoError(t, err)
	assert.Equal(t, cdc.Integer(99), result)

	require.Len(t, tr.results, 1)
	assert.Equal(t, cdc.String("ping"), tr.results[0])
}

func TestUnknownFrameTypeWithoutErrorPayloadIsFatal(t *testing.T) {
	tr := newScriptedTransport()
	tr.respond = func(id string, kind RequestKind, params cdc.Map) []cdc.Value {
		return []cdc.Value{cdc.Map{"type": cdc.String("bogus")}}
	}

	c := New(tr, "test-key")
	_, err := c.Request(KindAPI, nil)
	require.Error(t, err)

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, "bogus", protoErr.FrameType)

	_, err = c.Request(KindAPI, nil)
	require.ErrorAs(t, err, &connErr)
}

func TestClosedAfterConnectionErrorRejectsFurtherRequests(t *testing.T) {
	tr := newScriptedTransport()
	// No respond callback: Recv immediately returns io.EOF.
	c := New(tr, "test-key")

	_, err := c.Request(KindAPI, nil)
	require.Error(t, err)

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)

	_, err = c.Request(KindAPI, nil)
	require.ErrorAs(t, err, &connErr)
}
