package commands

import (
	"encoding/json"
	"fmt"

	"github.com/TRenneke/gom-go/pkg/cdc"
)

// parseJSONValue decodes a JSON-encoded argument into a cdc.Value, for
// commands that accept ad-hoc call arguments on the command line.
func parseJSONValue(raw string) (cdc.Value, error) {
	if raw == "" {
		return cdc.None{}, nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("invalid JSON %q: %w", raw, err)
	}
	return toValue(decoded)
}

// toValue converts a value produced by encoding/json.Unmarshal (nil, bool,
// float64, string, []any, map[string]any) into the matching cdc.Value.
func toValue(decoded any) (cdc.Value, error) {
	switch v := decoded.(type) {
	case nil:
		return cdc.None{}, nil
	case bool:
		return cdc.Bool(v), nil
	case float64:
		if v == float64(int64(v)) {
			return cdc.Integer(int64(v)), nil
		}
		return cdc.Float(v), nil
	case string:
		return cdc.String(v), nil
	case []any:
		list := make(cdc.List, 0, len(v))
		for _, item := range v {
			elem, err := toValue(item)
			if err != nil {
				return nil, err
			}
			list = append(list, elem)
		}
		return list, nil
	case map[string]any:
		m := make(cdc.Map, len(v))
		for key, item := range v {
			elem, err := toValue(item)
			if err != nil {
				return nil, err
			}
			m[key] = elem
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported JSON value type %T", decoded)
	}
}

// valueToJSON converts a decoded cdc.Value back into a JSON-marshalable
// representation for display.
func valueToJSON(v cdc.Value) any {
	switch val := v.(type) {
	case nil:
		return nil
	case cdc.None:
		return nil
	case cdc.Bool:
		return bool(val)
	case cdc.Integer:
		return int64(val)
	case cdc.Float:
		return float64(val)
	case cdc.String:
		return string(val)
	case cdc.List:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = valueToJSON(elem)
		}
		return out
	case cdc.Map:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = valueToJSON(elem)
		}
		return out
	case cdc.Error:
		return map[string]any{"id": val.ID, "text": val.Text, "line": val.Line}
	default:
		return fmt.Sprintf("%v", v)
	}
}
