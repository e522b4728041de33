package validatorjs

import (
	"bytes"
	"encoding/json"
	"math"
)

// EncodeJSON serialises v as JSON.
//
//   - Null, NaN and ±Inf encode as null.
//   - Undefined and Function members of an Object are omitted; inside an
//     Array or Set they encode as null.
//   - Sets encode as arrays, Maps as arrays of [key, value] pairs.
//   - WeakSet and WeakMap encode as {}.
//
// A root that is Undefined or a Function has no JSON form and fails with
// ErrType.  Nesting beyond MaxDepth (including cycles) fails with
// ErrLimitDepth.
func EncodeJSON(v Value) ([]byte, error) {
	if !encodable(v) {
		return nil, newErr(ErrType, "root value of type "+TypeOf(v)+" has no JSON form")
	}
	var buf bytes.Buffer
	if err := encodeTo(&buf, v, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodable reports whether v produces output as an object member.
func encodable(v Value) bool {
	return !IsUndefined(v) && !IsFunction(v)
}

func encodeTo(buf *bytes.Buffer, v Value, depth int) error {
	switch val := v.(type) {

	case nil, Undefined, Null, *Function:
		buf.WriteString("null")

	case Bool:
		if bool(val) {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}

	case Number:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			buf.WriteString("null")
			return nil
		}
		// encoding/json formats floats the way ECMAScript does.
		b, err := json.Marshal(f)
		if err != nil {
			return newErr(ErrType, err.Error())
		}
		buf.Write(b)

	case String:
		writeJSONString(buf, string(val))

	case *Array:
		return encodeList(buf, val.Values(), depth)

	case *Set:
		return encodeList(buf, val.Values(), depth)

	case *Map:
		if depth+1 > MaxDepth {
			return newErr(ErrLimitDepth, "depth exceeds MaxDepth")
		}
		buf.WriteByte('[')
		first := true
		for k, member := range val.All() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := encodeList(buf, []Value{k, member}, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case *Object:
		if depth+1 > MaxDepth {
			return newErr(ErrLimitDepth, "depth exceeds MaxDepth")
		}
		buf.WriteByte('{')
		first := true
		for k, member := range val.All() {
			if !encodable(member) {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			writeJSONString(buf, k)
			buf.WriteByte(':')
			if err := encodeTo(buf, member, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('}')

	case *WeakSet, *WeakMap:
		buf.WriteString("{}")

	default:
		return newErr(ErrType, "unknown value type")
	}
	return nil
}

func encodeList(buf *bytes.Buffer, elems []Value, depth int) error {
	if depth+1 > MaxDepth {
		return newErr(ErrLimitDepth, "depth exceeds MaxDepth")
	}
	buf.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeTo(buf, e, depth+1); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

// writeJSONString writes s as a JSON string literal without HTML escaping.
func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // strings always encode
	// Encode terminates each value with a newline.
	buf.Truncate(buf.Len() - 1)
}
