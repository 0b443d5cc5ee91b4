package decoder

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeMap converts a generic JSON mapping into T. Keys that T does not declare are
// ignored.
func DecodeMap[T any](m map[string]any) (T, error) {
	return decodeMap[T](m, false)
}

// DecodeMapStrict is like DecodeMap but fails when the mapping carries a key that T
// does not declare.
func DecodeMapStrict[T any](m map[string]any) (T, error) {
	return decodeMap[T](m, true)
}

func decodeMap[T any](m map[string]any, strict bool) (T, error) {
	var out T

	b, err := json.Marshal(m)
	if err != nil {
		return out, fmt.Errorf("failed to marshal map: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	if strict {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("failed to decode map: %w", err)
	}

	return out, nil
}

// ToMap is the inverse of DecodeMap. It produces the mapping a value would have on the
// wire, which is what the catalog store operations take as a request body.
func ToMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("value does not encode to a json object: %w", err)
	}

	return m, nil
}
