package cdc

import (
	"encoding/binary"
	"fmt"
	"math"
)

// languageTag is the second string field of an encoded Callable. The wire
// format fixes it on encode; decoders must ignore it.
const languageTag = "rust function"

func appendUint64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendInt64(buf []byte, v int64) []byte {
	return appendUint64(buf, uint64(v))
}

func appendFloat64(buf []byte, v float64) []byte {
	return appendUint64(buf, math.Float64bits(v))
}

func appendString(buf []byte, s string) []byte {
	buf = appendUint64(buf, uint64(len(s)))
	return append(buf, s...)
}

func appendBlob(buf []byte, b []byte) []byte {
	buf = appendUint64(buf, uint64(len(b)))
	return append(buf, b...)
}

// encodeValue emits the discriminant then dispatches on variant, appending
// each variant's payload fields in its fixed order. All multi-byte integers
// and floats are little-endian.
func (c *Codec) encodeValue(buf []byte, v Value) ([]byte, error) {
	if v == nil {
		v = None{}
	}
	buf = append(buf, byte(v.Tag()))

	switch val := v.(type) {
	case None:
		return buf, nil

	case Bool:
		if val {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
		return buf, nil

	case Integer:
		return appendInt64(buf, int64(val)), nil

	case Float:
		return appendFloat64(buf, float64(val)), nil

	case String:
		return appendString(buf, string(val)), nil

	case List:
		buf = appendUint64(buf, uint64(len(val)))
		for _, elem := range val {
			var err error
			buf, err = c.encodeValue(buf, elem)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil

	case Map:
		buf = appendUint64(buf, uint64(len(val)))
		for key, elem := range val {
			buf = appendString(buf, key)
			var err error
			buf, err = c.encodeValue(buf, elem)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil

	case Slice:
		var err error
		buf, err = c.encodeValue(buf, nonNil(val.Start))
		if err != nil {
			return nil, err
		}
		buf, err = c.encodeValue(buf, nonNil(val.Stop))
		if err != nil {
			return nil, err
		}
		return buf, nil

	case Item:
		buf = appendString(buf, val.ID)
		buf = appendInt64(buf, val.Category)
		buf = appendInt64(buf, val.Stage)
		return buf, nil

	case Indexable:
		var err error
		buf, err = c.encodeValue(buf, val.Of)
		if err != nil {
			return nil, err
		}
		buf = appendString(buf, val.Token)
		buf = appendInt64(buf, val.Size)
		return buf, nil

	case Command:
		return appendString(buf, val.Name), nil

	case Callable:
		buf = appendString(buf, val.Handle)
		buf = appendString(buf, languageTag)
		return buf, nil

	case Error:
		buf = appendString(buf, val.ID)
		buf = appendString(buf, val.Text)
		buf = appendInt64(buf, val.Line)
		return buf, nil

	case Trait:
		buf = appendString(buf, val.ID)
		var err error
		buf, err = c.encodeValue(buf, val.Args)
		if err != nil {
			return nil, err
		}
		buf, err = c.encodeValue(buf, val.Kwargs)
		if err != nil {
			return nil, err
		}
		return buf, nil

	case Object:
		buf = appendString(buf, val.TypeID)
		buf = appendString(buf, val.Repr)
		buf = appendUint64(buf, uint64(len(val.Attributes)))
		for key, elem := range val.Attributes {
			buf = appendString(buf, key)
			var err error
			buf, err = c.encodeValue(buf, elem)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil

	case Array:
		var err error
		buf, err = c.encodeValue(buf, nonNil(val.Project))
		if err != nil {
			return nil, err
		}
		buf, err = c.encodeValue(buf, nonNil(val.Item))
		if err != nil {
			return nil, err
		}
		buf = appendString(buf, val.Key)
		buf = appendUint64(buf, uint64(len(val.Index)))
		for _, idx := range val.Index {
			buf = appendInt64(buf, idx)
		}
		if val.Selected {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
		// The has-transformation flag byte is always written, and the
		// transformation value follows only when it is set.
		if val.HasTransform {
			buf = append(buf, 1)
			buf, err = c.encodeValue(buf, nonNil(val.Transformation))
			if err != nil {
				return nil, err
			}
		} else {
			buf = append(buf, 0)
		}
		return buf, nil

	case Package:
		buf = appendString(buf, val.Reference)
		buf = appendUint64(buf, uint64(len(val.Entries)))
		for _, entry := range val.Entries {
			buf = appendString(buf, entry.Key)
			var err error
			buf, err = c.encodeValue(buf, entry.Value)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil

	case Vec2d:
		buf = appendFloat64(buf, val.X)
		buf = appendFloat64(buf, val.Y)
		return buf, nil

	case Vec3d:
		buf = appendFloat64(buf, val.X)
		buf = appendFloat64(buf, val.Y)
		buf = appendFloat64(buf, val.Z)
		return buf, nil

	case ResourceAccess:
		return buf, nil

	case Blob:
		return appendBlob(buf, val), nil

	default:
		return nil, fmt.Errorf("cdc: encode: unsupported value type %T", v)
	}
}

func nonNil(v Value) Value {
	if v == nil {
		return None{}
	}
	return v
}
