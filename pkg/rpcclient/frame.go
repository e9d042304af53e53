package rpcclient

import (
	"fmt"

	"github.com/TRenneke/gom-go/pkg/cdc"
)

// buildRequestFrame assembles the top-level request Map. All keys are part
// of the wire contract and must not be renamed.
func buildRequestFrame(apikey, id string, kind RequestKind, params cdc.Map) cdc.Map {
	if params == nil {
		params = cdc.Map{}
	}
	return cdc.Map{
		"type":   cdc.String("request"),
		"apikey": cdc.String(apikey),
		"id":     cdc.String(id),
		"value":  cdc.Integer(kind),
		"params": params,
	}
}

// frameKind is the classifier read from an inbound frame's "type" key.
type frameKind string

const (
	frameReply frameKind = "reply"
	frameError frameKind = "error"
	frameWait  frameKind = "wait"
	frameCall  frameKind = "call"
)

// classifiedFrame is the parsed form of one inbound Map frame.
type classifiedFrame struct {
	kind frameKind

	// reply / error
	id     string
	reply  cdc.Value
	remote *RemoteError

	// call
	callable cdc.Callable
	args     cdc.List
	kwargs   cdc.Map
}

// classifyFrame inspects a decoded inbound value and returns its
// classification. Any frame whose "type" is not reply/wait/call and does
// not carry an error payload either is rejected with a *ProtocolError,
// which is fatal to the connection.
func classifyFrame(v cdc.Value) (*classifiedFrame, error) {
	m, ok := cdc.ExpectMap(v)
	if !ok {
		return nil, fmt.Errorf("rpcclient: inbound frame is not a Map (got %T)", v)
	}

	typeVal, ok := cdc.ExpectString(m["type"])
	if !ok {
		return nil, fmt.Errorf("rpcclient: inbound frame missing string \"type\" key")
	}

	switch frameKind(typeVal) {
	case frameWait:
		return &classifiedFrame{kind: frameWait}, nil

	case frameReply:
		id, _ := cdc.ExpectString(m["id"])
		return &classifiedFrame{kind: frameReply, id: string(id), reply: m["value"]}, nil

	case frameCall:
		callable, _ := cdc.ExpectCallable(m["value"])
		args, _ := cdc.ExpectList(m["args"])
		kwargs, _ := cdc.ExpectMap(m["kwargs"])
		return &classifiedFrame{kind: frameCall, callable: callable, args: args, kwargs: kwargs}, nil

	default:
		// Error frames reuse the key "type" for both the frame classifier
		// and the error taxonomy string: the wire encodes two (String,
		// Value) pairs both keyed "type", and Map decoding is
		// last-pair-wins, so by the time a Map reaches here "type"
		// already holds the taxonomy string, not the literal "error"
		// classifier the first pair carried. An error frame is
		// distinguished from a genuinely unknown frame type by the
		// presence of the error payload: any of "description", "code",
		// or "log" set means this is the error-frame collision, not a
		// malformed peer, and the surviving "type" value IS the taxonomy
		// string. A frame with none of those keys is a real protocol
		// violation and poisons the connection.
		if !hasErrorPayload(m) {
			return nil, &ProtocolError{FrameType: string(typeVal)}
		}
		id, _ := cdc.ExpectString(m["id"])
		remote, err := remoteErrorFromFrame(m)
		if err != nil {
			return nil, err
		}
		return &classifiedFrame{kind: frameError, id: string(id), remote: remote}, nil
	}
}

// hasErrorPayload reports whether m carries any of the fields an error
// frame's taxonomy payload sets.
func hasErrorPayload(m cdc.Map) bool {
	_, hasDescription := m["description"]
	_, hasCode := m["code"]
	_, hasLog := m["log"]
	return hasDescription || hasCode || hasLog
}
