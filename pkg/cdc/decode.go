package cdc

import (
	"encoding/binary"
	"math"
	"strings"
)

// maxDecodeDepth bounds recursive descent into nested containers so that an
// adversarial buffer with deeply nested Lists/Maps cannot exhaust the Go
// call stack. It is generous enough for any real server payload.
const maxDecodeDepth = 1024

func readByte(buf []byte) (byte, []byte, error) {
	if len(buf) < 1 {
		return 0, nil, newDecodeError(ErrMissingData, "expected 1 byte, got 0")
	}
	return buf[0], buf[1:], nil
}

func readUint64(buf []byte) (uint64, []byte, error) {
	if len(buf) < 8 {
		return 0, nil, newDecodeError(ErrMissingData, "expected 8 bytes for length/integer, got %d", len(buf))
	}
	return binary.LittleEndian.Uint64(buf[:8]), buf[8:], nil
}

func readInt64(buf []byte) (int64, []byte, error) {
	v, rest, err := readUint64(buf)
	if err != nil {
		return 0, nil, err
	}
	return int64(v), rest, nil
}

func readFloat64(buf []byte) (float64, []byte, error) {
	v, rest, err := readUint64(buf)
	if err != nil {
		return 0, nil, err
	}
	return math.Float64frombits(v), rest, nil
}

// readLength reads an 8-byte little-endian length prefix and validates it:
// negative values are rejected, and the claimed length must not exceed the
// bytes actually remaining, so a corrupt or hostile length never drives an
// allocation past what the buffer can actually back.
func readLength(buf []byte) (int, []byte, error) {
	n, rest, err := readInt64(buf)
	if err != nil {
		return 0, nil, err
	}
	if n < 0 {
		return 0, nil, newDecodeError(ErrMissingData, "negative length %d", n)
	}
	if n > int64(len(rest)) {
		return 0, nil, newDecodeError(ErrMissingData, "claimed length %d exceeds remaining %d bytes", n, len(rest))
	}
	return int(n), rest, nil
}

func readString(buf []byte) (string, []byte, error) {
	n, rest, err := readLength(buf)
	if err != nil {
		return "", nil, err
	}
	if len(rest) < n {
		return "", nil, newDecodeError(ErrMissingData, "string: claimed %d bytes, have %d", n, len(rest))
	}
	raw := rest[:n]
	rest = rest[n:]
	// Decode is lossy on invalid UTF-8: this is not symmetric with Encode,
	// which passes invalid bytes through untouched.
	s := strings.ToValidUTF8(string(raw), "�")
	return s, rest, nil
}

func readBlob(buf []byte) (Blob, []byte, error) {
	n, rest, err := readLength(buf)
	if err != nil {
		return nil, nil, err
	}
	if len(rest) < n {
		return nil, nil, newDecodeError(ErrMissingData, "blob: claimed %d bytes, have %d", n, len(rest))
	}
	out := make([]byte, n)
	copy(out, rest[:n])
	return Blob(out), rest[n:], nil
}

// Decode consumes a prefix of buf and returns the decoded Value and the
// unread suffix.
func (c *Codec) decodeValue(buf []byte) (Value, []byte, error) {
	return c.decodeValueDepth(buf, 0)
}

func (c *Codec) decodeValueDepth(buf []byte, depth int) (Value, []byte, error) {
	if depth > maxDecodeDepth {
		return nil, nil, newDecodeError(ErrUnknownType, "nesting exceeds %d levels", maxDecodeDepth)
	}

	tagByte, rest, err := readByte(buf)
	if err != nil {
		return nil, nil, err
	}

	switch Tag(tagByte) {
	case TagNone:
		return None{}, rest, nil

	case TagBool:
		b, rest, err := readByte(rest)
		if err != nil {
			return nil, nil, err
		}
		return Bool(b != 0), rest, nil

	case TagInteger:
		n, rest, err := readInt64(rest)
		if err != nil {
			return nil, nil, err
		}
		return Integer(n), rest, nil

	case TagFloat:
		f, rest, err := readFloat64(rest)
		if err != nil {
			return nil, nil, err
		}
		return Float(f), rest, nil

	case TagString:
		s, rest, err := readString(rest)
		if err != nil {
			return nil, nil, err
		}
		return String(s), rest, nil

	case TagList:
		n, rest, err := readLength(rest)
		if err != nil {
			return nil, nil, err
		}
		out := make(List, 0, n)
		for i := 0; i < n; i++ {
			var elem Value
			elem, rest, err = c.decodeValueDepth(rest, depth+1)
			if err != nil {
				return nil, nil, err
			}
			out = append(out, elem)
		}
		return out, rest, nil

	case TagMap:
		n, rest, err := readLength(rest)
		if err != nil {
			return nil, nil, err
		}
		out := make(Map, n)
		for i := 0; i < n; i++ {
			var key string
			key, rest, err = readString(rest)
			if err != nil {
				return nil, nil, err
			}
			var elem Value
			elem, rest, err = c.decodeValueDepth(rest, depth+1)
			if err != nil {
				return nil, nil, err
			}
			out[key] = elem
		}
		return out, rest, nil

	case TagSlice:
		start, rest, err := c.decodeValueDepth(rest, depth+1)
		if err != nil {
			return nil, nil, err
		}
		if err := checkSliceSlot(start); err != nil {
			return nil, nil, err
		}
		stop, rest2, err := c.decodeValueDepth(rest, depth+1)
		if err != nil {
			return nil, nil, err
		}
		if err := checkSliceSlot(stop); err != nil {
			return nil, nil, err
		}
		return Slice{Start: start, Stop: stop}, rest2, nil

	case TagItem:
		item, rest, err := decodeItem(rest)
		if err != nil {
			return nil, nil, err
		}
		return item, rest, nil

	case TagIndexable:
		ofVal, rest, err := c.decodeValueDepth(rest, depth+1)
		if err != nil {
			return nil, nil, err
		}
		of, ok := ofVal.(Item)
		if !ok {
			return nil, nil, newDecodeError(ErrUnknownType, "indexable: first slot must be Item, got %T", ofVal)
		}
		token, rest, err := readString(rest)
		if err != nil {
			return nil, nil, err
		}
		size, rest, err := readInt64(rest)
		if err != nil {
			return nil, nil, err
		}
		return Indexable{Of: of, Token: token, Size: size}, rest, nil

	case TagCommand:
		name, rest, err := readString(rest)
		if err != nil {
			return nil, nil, err
		}
		return Command{Name: name}, rest, nil

	case TagCallable:
		handle, rest, err := readString(rest)
		if err != nil {
			return nil, nil, err
		}
		// The second string is fixed on encode and ignored on decode.
		_, rest, err = readString(rest)
		if err != nil {
			return nil, nil, err
		}
		if _, ok := c.LookupCallable(handle); !ok {
			return nil, nil, newDecodeError(ErrMissingFunction, "handle %q not registered", handle)
		}
		return Callable{Handle: handle}, rest, nil

	case TagError:
		id, rest, err := readString(rest)
		if err != nil {
			return nil, nil, err
		}
		text, rest, err := readString(rest)
		if err != nil {
			return nil, nil, err
		}
		line, rest, err := readInt64(rest)
		if err != nil {
			return nil, nil, err
		}
		return Error{ID: id, Text: text, Line: line}, rest, nil

	case TagTrait:
		id, rest, err := readString(rest)
		if err != nil {
			return nil, nil, err
		}
		argsVal, rest, err := c.decodeValueDepth(rest, depth+1)
		if err != nil {
			return nil, nil, err
		}
		args, ok := argsVal.(List)
		if !ok {
			return nil, nil, newDecodeError(ErrUnknownType, "trait: args must be List, got %T", argsVal)
		}
		kwargsVal, rest, err := c.decodeValueDepth(rest, depth+1)
		if err != nil {
			return nil, nil, err
		}
		kwargs, ok := kwargsVal.(Map)
		if !ok {
			return nil, nil, newDecodeError(ErrUnknownType, "trait: kwargs must be Map, got %T", kwargsVal)
		}
		return Trait{ID: id, Args: args, Kwargs: kwargs}, rest, nil

	case TagObject:
		typeID, rest, err := readString(rest)
		if err != nil {
			return nil, nil, err
		}
		repr, rest, err := readString(rest)
		if err != nil {
			return nil, nil, err
		}
		n, rest, err := readLength(rest)
		if err != nil {
			return nil, nil, err
		}
		attrs := make(Map, n)
		for i := 0; i < n; i++ {
			var key string
			key, rest, err = readString(rest)
			if err != nil {
				return nil, nil, err
			}
			var elem Value
			elem, rest, err = c.decodeValueDepth(rest, depth+1)
			if err != nil {
				return nil, nil, err
			}
			attrs[key] = elem
		}
		return Object{TypeID: typeID, Repr: repr, Attributes: attrs}, rest, nil

	case TagArray:
		project, rest, err := c.decodeValueDepth(rest, depth+1)
		if err != nil {
			return nil, nil, err
		}
		item, rest, err := c.decodeValueDepth(rest, depth+1)
		if err != nil {
			return nil, nil, err
		}
		key, rest, err := readString(rest)
		if err != nil {
			return nil, nil, err
		}
		n, rest, err := readLength(rest)
		if err != nil {
			return nil, nil, err
		}
		index := make([]int64, n)
		for i := 0; i < n; i++ {
			index[i], rest, err = readInt64(rest)
			if err != nil {
				return nil, nil, err
			}
		}
		selectedByte, rest, err := readByte(rest)
		if err != nil {
			return nil, nil, err
		}
		// The has-transformation flag byte is always consumed whether or
		// not a transformation follows it; this decoder advances the flag
		// byte identically in both branches.
		hasTransformByte, rest, err := readByte(rest)
		if err != nil {
			return nil, nil, err
		}
		arr := Array{
			Project:  project,
			Item:     item,
			Key:      key,
			Index:    index,
			Selected: selectedByte != 0,
		}
		if hasTransformByte != 0 {
			arr.HasTransform = true
			arr.Transformation, rest, err = c.decodeValueDepth(rest, depth+1)
			if err != nil {
				return nil, nil, err
			}
		}
		return arr, rest, nil

	case TagPackage:
		reference, rest, err := readString(rest)
		if err != nil {
			return nil, nil, err
		}
		n, rest, err := readLength(rest)
		if err != nil {
			return nil, nil, err
		}
		entries := make([]PackageEntry, 0, n)
		for i := 0; i < n; i++ {
			var key string
			key, rest, err = readString(rest)
			if err != nil {
				return nil, nil, err
			}
			var elem Value
			elem, rest, err = c.decodeValueDepth(rest, depth+1)
			if err != nil {
				return nil, nil, err
			}
			entries = append(entries, PackageEntry{Key: key, Value: elem})
		}
		return Package{Reference: reference, Entries: entries}, rest, nil

	case TagVec2d:
		x, rest, err := readFloat64(rest)
		if err != nil {
			return nil, nil, err
		}
		y, rest, err := readFloat64(rest)
		if err != nil {
			return nil, nil, err
		}
		return Vec2d{X: x, Y: y}, rest, nil

	case TagVec3d:
		x, rest, err := readFloat64(rest)
		if err != nil {
			return nil, nil, err
		}
		y, rest, err := readFloat64(rest)
		if err != nil {
			return nil, nil, err
		}
		z, rest, err := readFloat64(rest)
		if err != nil {
			return nil, nil, err
		}
		return Vec3d{X: x, Y: y, Z: z}, rest, nil

	case TagResourceAccess:
		return ResourceAccess{}, rest, nil

	case TagBlob:
		b, rest, err := readBlob(rest)
		if err != nil {
			return nil, nil, err
		}
		return b, rest, nil

	default:
		return nil, nil, newDecodeError(ErrUnknownType, "discriminant 0x%02x", tagByte)
	}
}

func decodeItem(buf []byte) (Item, []byte, error) {
	id, rest, err := readString(buf)
	if err != nil {
		return Item{}, nil, err
	}
	category, rest, err := readInt64(rest)
	if err != nil {
		return Item{}, nil, err
	}
	stage, rest, err := readInt64(rest)
	if err != nil {
		return Item{}, nil, err
	}
	return Item{ID: id, Category: category, Stage: stage}, rest, nil
}

// checkSliceSlot enforces that a Slice's Start/Stop slot decoded to either
// None or Integer.
func checkSliceSlot(v Value) error {
	switch v.(type) {
	case None, Integer:
		return nil
	default:
		return newDecodeError(ErrUnknownType, "slice slot must be None or Integer, got %T", v)
	}
}
