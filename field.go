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

// FieldKind is the scalar representation a field's value takes on the
// wire; it is the same closed set [ScalarKind] enumerates.
type FieldKind = ScalarKind

// FieldDef describes one field of a generated message type: its wire
// number, representation, and cardinality. Message types expose these
// alongside their present-field iteration.
type FieldDef interface {
	// Number is the field's wire number.
	Number() uint32
	// Kind is the field's wire representation.
	Kind() FieldKind
	// Repeated reports whether the field holds a list of values.
	Repeated() bool
	// OneOf reports whether the field belongs to a mutually exclusive
	// group; the active case is always emitted on write.
	OneOf() bool
	// Name is the field's schema name, for diagnostics.
	Name() string
}

// fieldDef is the straightforward [FieldDef] implementation a hand-written
// message type constructs once per field, typically as a package-level
// variable.
type fieldDef struct {
	number   uint32
	kind     FieldKind
	repeated bool
	oneOf    bool
	name     string
}

// NewFieldDef constructs a [FieldDef].
func NewFieldDef(number uint32, kind FieldKind, repeated, oneOf bool, name string) FieldDef {
	return fieldDef{number: number, kind: kind, repeated: repeated, oneOf: oneOf, name: name}
}

func (f fieldDef) Number() uint32  { return f.number }
func (f fieldDef) Kind() FieldKind { return f.kind }
func (f fieldDef) Repeated() bool  { return f.repeated }
func (f fieldDef) OneOf() bool     { return f.oneOf }
func (f fieldDef) Name() string    { return f.name }

// OneOfCase is the tag half of a [OneOf] value. The zero case, OneOfUnset,
// means no branch of the group is live.
type OneOfCase int

// OneOfUnset is the zero value of [OneOfCase]: no branch of the group is
// live.
const OneOfUnset OneOfCase = 0

// OneOf holds the single live branch of a mutually exclusive field
// group: setting any case clears the previous one, and exactly one case
// (or none) is live.
type OneOf[T any] struct {
	Case  OneOfCase
	Value T
}

// IsSet reports whether any branch of the group is live.
func (o OneOf[T]) IsSet() bool { return o.Case != OneOfUnset }

// Map is an insertion-ordered, immutable map, built via [MapBuilder]. Map
// fields are written as repeated synthetic two-field entries (key=1,
// value=2) in insertion order, so iteration order must be preserved
// rather than left to Go's randomized map order.
type Map[K comparable, V any] struct {
	keys  []K
	index map[K]V
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int { return len(m.keys) }

// Get looks up a key, reporting whether it was present.
func (m Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.index[key]
	return v, ok
}

// Keys returns the map's keys in insertion order. The returned slice is a
// copy; mutating it does not affect m.
func (m Map[K, V]) Keys() []K {
	return append([]K(nil), m.keys...)
}

// Range calls f for every entry in insertion order, stopping early if f
// returns false.
func (m Map[K, V]) Range(f func(key K, value V) bool) {
	for _, k := range m.keys {
		if !f(k, m.index[k]) {
			return
		}
	}
}

// MapBuilder accumulates entries for a [Map], normalizing repeated puts of
// the same key to an update in place rather than a duplicate entry.
type MapBuilder[K comparable, V any] struct {
	keys  []K
	index map[K]V
}

// NewMapBuilder returns an empty [MapBuilder].
func NewMapBuilder[K comparable, V any]() *MapBuilder[K, V] {
	return &MapBuilder[K, V]{index: make(map[K]V)}
}

// Put inserts or updates key's value, returning the builder for chaining.
func (b *MapBuilder[K, V]) Put(key K, value V) *MapBuilder[K, V] {
	if _, exists := b.index[key]; !exists {
		b.keys = append(b.keys, key)
	}
	b.index[key] = value
	return b
}

// Build returns an immutable [Map] snapshot of the builder's current
// contents. The builder remains usable afterward; further Put calls do
// not affect maps already built.
func (b *MapBuilder[K, V]) Build() Map[K, V] {
	idx := make(map[K]V, len(b.index))
	for k, v := range b.index {
		idx[k] = v
	}
	return Map[K, V]{keys: append([]K(nil), b.keys...), index: idx}
}
