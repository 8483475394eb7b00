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

// WireType identifies how the bytes following a tag are framed on the wire.
type WireType uint8

const (
	// WireVarint frames a base-128 varint.
	WireVarint WireType = 0
	// WireFixed64 frames 8 raw little-endian bytes.
	WireFixed64 WireType = 1
	// WireLengthDelimited frames a varint length prefix followed by that
	// many raw bytes.
	WireLengthDelimited WireType = 2
	// WireGroupStart is a deprecated, unsupported wire type; encountering
	// it on the wire is always a parse failure.
	WireGroupStart WireType = 3
	// WireGroupEnd is a deprecated, unsupported wire type; encountering
	// it on the wire is always a parse failure.
	WireGroupEnd WireType = 4
	// WireFixed32 frames 4 raw little-endian bytes.
	WireFixed32 WireType = 5
)

// Valid reports whether w is one of the wire types pbj accepts on the wire:
// groups (3, 4) are rejected.
func (w WireType) Valid() bool {
	switch w {
	case WireVarint, WireFixed64, WireLengthDelimited, WireFixed32:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (w WireType) String() string {
	switch w {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "fixed64"
	case WireLengthDelimited:
		return "length-delimited"
	case WireGroupStart:
		return "group-start"
	case WireGroupEnd:
		return "group-end"
	case WireFixed32:
		return "fixed32"
	default:
		return "invalid"
	}
}

// Tag is the decomposed form of a wire-format field tag: a field number
// paired with the wire type of the value that follows it.
type Tag struct {
	Number   uint32
	WireType WireType
}

// encodeTag packs a Tag into its wire representation: (number << 3) | type.
func encodeTag(number uint32, wt WireType) uint64 {
	return uint64(number)<<3 | uint64(wt&7)
}

// decodeTag unpacks a raw tag varint into a field number and wire type.
func decodeTag(raw uint64) Tag {
	return Tag{
		Number:   uint32(raw >> 3),
		WireType: WireType(raw & 7),
	}
}
