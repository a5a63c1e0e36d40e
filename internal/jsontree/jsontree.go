// Package jsontree wraps a decoded JSON document in a value type whose
// lookups never fail: reading a key off a non-object or indexing past the
// end of an array yields an absent value instead of an error, and typed
// accessors report absence or a wrong-shaped node through their ok result.
package jsontree

import "encoding/json"

// Value is one node of a decoded JSON document. The zero Value is absent.
type Value struct {
	data    any
	present bool
}

// Decode parses a JSON document from raw bytes.
func Decode(raw []byte) (Value, error) {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return Value{}, err
	}
	return Value{data: data, present: true}, nil
}

// Wrap adopts an already-decoded JSON tree (as produced by encoding/json
// into an any).
func Wrap(data any) Value {
	return Value{data: data, present: true}
}

// Present reports whether the node exists in the document. A JSON null is
// present; a lookup that ran off the tree is not.
func (v Value) Present() bool {
	return v.present
}

// Get returns the value at key. Absent values and non-objects yield an
// absent value, never an error.
func (v Value) Get(key string) Value {
	obj, ok := v.data.(map[string]any)
	if !v.present || !ok {
		return Value{}
	}
	child, ok := obj[key]
	if !ok {
		return Value{}
	}
	return Value{data: child, present: true}
}

// Index returns the i-th element of an array node. Out-of-range indexes
// and non-arrays yield an absent value.
func (v Value) Index(i int) Value {
	arr, ok := v.data.([]any)
	if !v.present || !ok || i < 0 || i >= len(arr) {
		return Value{}
	}
	return Value{data: arr[i], present: true}
}

// Str returns the node as a string. ok is false when the node is absent
// or not a JSON string (null included).
func (v Value) Str() (string, bool) {
	s, ok := v.data.(string)
	if !v.present {
		return "", false
	}
	return s, ok
}

// Bool returns the node as a boolean. ok is false when the node is absent
// or not a JSON boolean.
func (v Value) Bool() (bool, bool) {
	b, ok := v.data.(bool)
	if !v.present {
		return false, false
	}
	return b, ok
}

// Array returns the node's elements. ok is false when the node is absent
// or not a JSON array.
func (v Value) Array() ([]Value, bool) {
	arr, ok := v.data.([]any)
	if !v.present || !ok {
		return nil, false
	}
	out := make([]Value, len(arr))
	for i, el := range arr {
		out[i] = Value{data: el, present: true}
	}
	return out, ok
}
