package decode

import (
	"encoding/json"
	"errors"
)

// Shape records where FlatOrNested found its value
type Shape int

const (
	ShapeNone Shape = iota
	ShapeFlat
	ShapeNested
	// ShapeBoth means flattened fields and the nested key were both present.
	// The nested value wins; the two are not merged.
	ShapeBoth
)

func (s Shape) String() string {
	switch s {
	case ShapeFlat:
		return "flat"
	case ShapeNested:
		return "nested"
	case ShapeBoth:
		return "both"
	default:
		return "none"
	}
}

// FlatOrNested decodes a T that the upstream sometimes inlines into the
// enclosing object and sometimes nests under key.
//
// The flattened layout counts as present when decoding the enclosing object
// into T yields a non-zero value. The nested layout counts as present when key
// holds an object, or an empty array (the upstream's spelling of an empty
// object). When neither layout is present the result is a MissingField error
// for key.
func FlatOrNested[T comparable](data []byte, key string) (T, Shape, error) {
	var zero T

	obj, err := ParseObject(data)
	if err != nil {
		return zero, ShapeNone, err
	}

	nested, nestedOK, err := decodeNested[T](obj, key)
	if err != nil {
		return zero, ShapeNone, err
	}

	var flat T
	flatErr := json.Unmarshal(data, &flat)
	flatOK := flatErr == nil && flat != zero

	switch {
	case nestedOK && flatOK:
		return nested, ShapeBoth, nil
	case nestedOK:
		return nested, ShapeNested, nil
	case flatOK:
		return flat, ShapeFlat, nil
	case flatErr != nil:
		return zero, ShapeNone, Wrap("", flatErr)
	default:
		return zero, ShapeNone, Missing(key)
	}
}

func decodeNested[T any](obj Object, key string) (T, bool, error) {
	var v T
	if !obj.Has(key) {
		return v, false, nil
	}
	raw := obj[key]
	switch firstByte(raw) {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return v, false, Unrecognized(key, err)
		}
		if len(items) != 0 {
			return v, false, Unrecognized(key, errors.New("expected an object or an empty array"))
		}
		return v, true, nil
	case '{':
		if err := json.Unmarshal(raw, &v); err != nil {
			return v, false, Wrap(key, err)
		}
		return v, true, nil
	default:
		return v, false, Unrecognized(key, errors.New("expected an object or an empty array"))
	}
}
