// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Value, the three-state result of synthesizing an option:
// absent (leave the option alone), a scalar string, or an ordered list.

package option

import (
	"encoding/json"
	"slices"
)

type valueState uint8

const (
	stateAbsent valueState = iota
	stateScalar
	stateList
)

// Value is an option value. The zero Value is absent.
type Value struct {
	state  valueState
	scalar string
	list   []string
}

// Absent returns the value meaning "no change".
func Absent() Value {
	return Value{}
}

// Scalar returns a single-string value.
func Scalar(s string) Value {
	return Value{state: stateScalar, scalar: s}
}

// List returns a list value holding a copy of items. A nil slice yields a
// present, empty list.
func List(items []string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{state: stateList, list: cp}
}

// IsAbsent reports whether the value carries no change.
func (v Value) IsAbsent() bool {
	return v.state == stateAbsent
}

// IsList reports whether the value is a list.
func (v Value) IsList() bool {
	return v.state == stateList
}

// Scalar returns the scalar string and whether the value is a scalar.
func (v Value) Scalar() (string, bool) {
	return v.scalar, v.state == stateScalar
}

// List returns a copy of the list and whether the value is a list.
func (v Value) List() ([]string, bool) {
	if v.state != stateList {
		return nil, false
	}
	return slices.Clone(v.list), true
}

// Equal reports whether two values have the same state and contents.
func (v Value) Equal(o Value) bool {
	if v.state != o.state {
		return false
	}
	switch v.state {
	case stateScalar:
		return v.scalar == o.scalar
	case stateList:
		return slices.Equal(v.list, o.list)
	}
	return true
}

// MarshalJSON encodes absent as null, a scalar as a string and a list as an array.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.state {
	case stateScalar:
		return json.Marshal(v.scalar)
	case stateList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	}
	return []byte("null"), nil
}

// Resolved pairs an option slot with the value synthesized for it.
type Resolved struct {
	ID    string `json:"id"`
	Kind  Kind   `json:"kind"`
	Value Value  `json:"value"`
	// Clear is set when the slot's existing list must be emptied first.
	Clear bool `json:"clear,omitempty"`
}

// MarshalText lets Kind appear by name in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
