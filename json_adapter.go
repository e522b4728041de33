package validatorjs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ParseJSON converts raw UTF-8 JSON into the Value model.
//
// Objects become *Object with keys in discovery order; a repeated key
// overwrites the earlier value in place.  Arrays become *Array, numbers
// Number, null Null.  Numbers beyond float64 range become ±Inf.
func ParseJSON(raw []byte) (Value, error) {
	if len(raw) > MaxInputBytes {
		return nil, newErr(ErrLimitSize, "input exceeds MaxInputBytes")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	val, err := decodeJSONValue(dec, 0)
	if err != nil {
		return nil, err
	}

	// Exactly one root value.
	if _, err := dec.Token(); err != io.EOF {
		return nil, newErr(ErrSyntax, "trailing JSON content")
	}
	return val, nil
}

// decodeJSONValue decodes one JSON value.  depth counts the containers
// enclosing it.
func decodeJSONValue(dec *json.Decoder, depth int) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, newErr(ErrSyntax, "unexpected EOF")
		}
		return nil, newErr(ErrSyntax, err.Error())
	}

	switch v := tok.(type) {

	case json.Delim:
		switch v {
		case '{':
			return decodeJSONObject(dec, depth+1)
		case '[':
			return decodeJSONArray(dec, depth+1)
		default:
			return nil, newErr(ErrSyntax, "unexpected delimiter")
		}

	case string:
		return String(v), nil

	case bool:
		return Bool(v), nil

	case json.Number:
		return convertJSONNumber(v)

	case nil:
		return Null{}, nil

	default:
		return nil, newErr(ErrType, fmt.Sprintf("unexpected JSON type: %T", tok))
	}
}

// decodeJSONObject decodes a JSON object.  The opening '{' has already
// been consumed.
func decodeJSONObject(dec *json.Decoder, depth int) (Value, error) {
	if depth > MaxDepth {
		return nil, newErr(ErrLimitDepth, "exceeds MaxDepth")
	}

	obj := NewObject()
	for dec.More() {
		kTok, err := dec.Token()
		if err != nil {
			return nil, newErr(ErrSyntax, "JSON parse error reading key")
		}
		key, ok := kTok.(string)
		if !ok {
			return nil, newErr(ErrSyntax, "JSON key is not a string")
		}
		val, err := decodeJSONValue(dec, depth)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return obj, nil
}

// decodeJSONArray decodes a JSON array.  The opening '[' has already been
// consumed.
func decodeJSONArray(dec *json.Decoder, depth int) (Value, error) {
	if depth > MaxDepth {
		return nil, newErr(ErrLimitDepth, "exceeds MaxDepth")
	}

	elems := make([]Value, 0, 8)
	for dec.More() {
		val, err := decodeJSONValue(dec, depth)
		if err != nil {
			return nil, err
		}
		elems = append(elems, val)
	}

	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return NewArray(elems...), nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return newErr(ErrSyntax, fmt.Sprintf("JSON parse error: missing '%c'", want))
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return newErr(ErrSyntax, fmt.Sprintf("expected '%c'", want))
	}
	return nil
}

// convertJSONNumber parses the raw number token.  Overflow is not an
// error: the result saturates to ±Inf, which IsNumber then rejects.
func convertJSONNumber(n json.Number) (Value, error) {
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, newErr(ErrSyntax, "bad number: "+n.String())
	}
	return Number(f), nil
}
