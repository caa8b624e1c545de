package decode

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Object is a JSON object split into its members, values left undecoded
type Object map[string]json.RawMessage

// ParseObject splits data into members, failing if it is not a JSON object
func ParseObject(data []byte) (Object, error) {
	if firstByte(data) != '{' {
		return nil, Unrecognized("", errors.New("expected a JSON object"))
	}
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, Unrecognized("", err)
	}
	return obj, nil
}

// Has reports whether key is present with a non-null value
func (o Object) Has(key string) bool {
	raw, ok := o[key]
	return ok && !isNull(raw)
}

// Require fails with MissingField for the first key that is absent or null
func (o Object) Require(keys ...string) error {
	for _, key := range keys {
		if !o.Has(key) {
			return Missing(key)
		}
	}
	return nil
}

// Into checks the required keys of an object and then decodes it into v.
// Callers pass an alias of their own type as v to avoid recursing into
// their UnmarshalJSON. The split object is returned for further probing.
func Into(data []byte, v any, required ...string) (Object, error) {
	obj, err := ParseObject(data)
	if err != nil {
		return nil, err
	}
	if err := obj.Require(required...); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return nil, Wrap("", err)
	}
	return obj, nil
}

// Lookup returns the first present key among aliases
func (o Object) Lookup(aliases ...string) (string, json.RawMessage, bool) {
	for _, key := range aliases {
		if o.Has(key) {
			return key, o[key], true
		}
	}
	return "", nil, false
}

// Field decodes the member under key into T, wrapping failures with the key
func Field[T any](o Object, key string) (T, error) {
	var v T
	raw, ok := o[key]
	if !ok {
		return v, Missing(key)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, Wrap(key, err)
	}
	return v, nil
}

// Optional decodes the first present alias into a *T; nil when none is present
func Optional[T any](o Object, aliases ...string) (*T, error) {
	key, raw, ok := o.Lookup(aliases...)
	if !ok {
		return nil, nil
	}
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, Wrap(key, err)
	}
	return v, nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func firstByte(data []byte) byte {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
