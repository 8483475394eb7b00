// Copyright 2020-2026 The PBJ-Go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pbj

import "sort"

// UnknownField is one field encountered during parse whose number is not
// present in the consuming schema, captured for forward-compatible
// round-tripping.
//
// Payload is exactly the bytes that followed the tag on the wire: for
// VARINT/FIXED32/FIXED64 that is the encoded scalar itself; for
// LENGTH_DELIMITED it is the varint length prefix followed by the body,
// as a single contiguous slice.
type UnknownField struct {
	Number   uint32
	WireType WireType
	Payload  Bytes
}

// UnknownFields is a message's registry of fields it could not interpret.
// The zero value is an empty, usable registry.
type UnknownFields struct {
	fields []UnknownField
}

// Len returns the number of captured fields.
func (u *UnknownFields) Len() int {
	if u == nil {
		return 0
	}
	return len(u.fields)
}

// IsEmpty reports whether no fields have been captured.
func (u *UnknownFields) IsEmpty() bool { return u.Len() == 0 }

// Add appends a captured field to the registry, preserving input order for
// same-numbered repeats; see [UnknownFields.Sorted] for wire order.
func (u *UnknownFields) Add(number uint32, wt WireType, payload Bytes) {
	u.fields = append(u.fields, UnknownField{Number: number, WireType: wt, Payload: payload})
}

// All returns the captured fields in the order they were added.
func (u *UnknownFields) All() []UnknownField {
	if u == nil {
		return nil
	}
	return u.fields
}

// Sorted returns the captured fields sorted ascending by field number,
// stable on ties, matching the order [UnknownFields.Write] emits them in.
func (u *UnknownFields) Sorted() []UnknownField {
	out := append([]UnknownField(nil), u.All()...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Equal reports whether u and other hold the same fields, ignoring
// insertion order (both are compared in sorted form), matching the
// registry's role in a message's structural equality.
func (u *UnknownFields) Equal(other *UnknownFields) bool {
	a, b := u.Sorted(), other.Sorted()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Number != b[i].Number || a[i].WireType != b[i].WireType || !a[i].Payload.Equal(b[i].Payload) {
			return false
		}
	}
	return true
}

// Write re-emits every captured field, tag followed by verbatim payload,
// in ascending field-number order.
func (u *UnknownFields) Write(out Writable) error {
	for _, f := range u.Sorted() {
		if err := WriteTag(out, f.Number, f.WireType); err != nil {
			return err
		}
		if _, err := out.WriteBytesData(f.Payload); err != nil {
			return err
		}
	}
	return nil
}

// MeasureRecord returns the total byte length Write would produce.
func (u *UnknownFields) MeasureRecord() int {
	n := 0
	for _, f := range u.fields {
		n += TagLen(f.Number, f.WireType) + f.Payload.Length()
	}
	return n
}
