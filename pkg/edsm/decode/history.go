package decode

import (
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"
)

// History is a time series keyed by Unix-timestamp strings. The upstream
// sends an empty JSON array rather than an empty object when nothing was
// recorded, so History has two variants: Empty (Entries == nil) and Map
// (Entries != nil, possibly with no members when the upstream sent {}).
type History[V any] struct {
	Entries map[string]V
}

// Entry is one point of a History
type Entry[V any] struct {
	Key   string
	At    time.Time
	Value V
}

// NewHistory builds the Map variant from entries
func NewHistory[V any](entries map[string]V) History[V] {
	if entries == nil {
		entries = map[string]V{}
	}
	return History[V]{Entries: entries}
}

// IsEmpty reports whether this is the Empty variant
func (h History[V]) IsEmpty() bool {
	return h.Entries == nil
}

// Get returns the value recorded under the given timestamp key
func (h History[V]) Get(key string) (V, bool) {
	v, ok := h.Entries[key]
	return v, ok
}

// Sorted returns the entries oldest first. Keys that are not integers sort
// after the numeric ones, by string order, with a zero At.
func (h History[V]) Sorted() []Entry[V] {
	out := make([]Entry[V], 0, len(h.Entries))
	for key, value := range h.Entries {
		e := Entry[V]{Key: key, Value: value}
		if secs, err := strconv.ParseInt(key, 10, 64); err == nil {
			e.At = time.Unix(secs, 0).UTC()
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		zi, zj := out[i].At.IsZero(), out[j].At.IsZero()
		if zi != zj {
			return zj
		}
		if !out[i].At.Equal(out[j].At) {
			return out[i].At.Before(out[j].At)
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// UnmarshalJSON accepts [] (Empty) or an object (Map); anything else fails
func (h *History[V]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	switch firstByte(data) {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return Unrecognized("", err)
		}
		if len(items) != 0 {
			return Unrecognized("", errors.New("history list must be empty"))
		}
		h.Entries = nil
		return nil
	case '{':
		entries := map[string]V{}
		if err := json.Unmarshal(data, &entries); err != nil {
			return Wrap("", err)
		}
		h.Entries = entries
		return nil
	default:
		return Unrecognized("", errors.New("expected an empty array or an object"))
	}
}

// MarshalJSON writes the Empty variant as [] so output mirrors the upstream
func (h History[V]) MarshalJSON() ([]byte, error) {
	if h.Entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(h.Entries)
}
