package reel

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errNotObject = errors.New("value is not a JSON object")

// optional holds a value decoded from an untrusted document.
// A null, missing or wrong-typed value leaves it unset instead of failing the decode.
type optional[T any] struct {
	value T
	set   bool
}

// Get returns the value and whether it was present with the expected type.
func (o optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// Ptr returns a pointer to the value, or nil when unset.
func (o optional[T]) Ptr() *T {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

func (o *optional[T]) decode(raw json.RawMessage) {
	if isNull(raw) {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return
	}
	o.value, o.set = v, true
}

type lenientField interface {
	decode(raw json.RawMessage)
}

// decodeObject reads a JSON object and fills each named field using exact key matches.
func decodeObject(data []byte, fields map[string]lenientField) error {
	if isNull(data) {
		return errNotObject
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return errNotObject
	}
	for key, field := range fields {
		if raw, ok := members[key]; ok {
			field.decode(raw)
		}
	}
	return nil
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
