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

import (
	"math"

	"github.com/hashgraph/pbj-go/internal/zigzag"
)

// decodeUint32 interprets a 4-byte window as an unsigned 32-bit integer in
// the given byte order. raw must have length exactly 4.
func decodeUint32(raw []byte, order Endian) uint32 {
	if order == LittleEndian {
		return uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16 | uint32(raw[3])<<24
	}
	return uint32(raw[3]) | uint32(raw[2])<<8 | uint32(raw[1])<<16 | uint32(raw[0])<<24
}

// decodeUint64 interprets an 8-byte window as an unsigned 64-bit integer in
// the given byte order. raw must have length exactly 8.
func decodeUint64(raw []byte, order Endian) uint64 {
	if order == LittleEndian {
		return uint64(raw[0]) | uint64(raw[1])<<8 | uint64(raw[2])<<16 | uint64(raw[3])<<24 |
			uint64(raw[4])<<32 | uint64(raw[5])<<40 | uint64(raw[6])<<48 | uint64(raw[7])<<56
	}
	return uint64(raw[7]) | uint64(raw[6])<<8 | uint64(raw[5])<<16 | uint64(raw[4])<<24 |
		uint64(raw[3])<<32 | uint64(raw[2])<<40 | uint64(raw[1])<<48 | uint64(raw[0])<<56
}

// encodeUint32 writes v into dst (which must have length exactly 4) in the
// given byte order.
func encodeUint32(dst []byte, v uint32, order Endian) {
	if order == LittleEndian {
		dst[0], dst[1], dst[2], dst[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
		return
	}
	dst[0], dst[1], dst[2], dst[3] = byte(v>>24), byte(v>>16), byte(v>>8), byte(v)
}

// encodeUint64 writes v into dst (which must have length exactly 8) in the
// given byte order.
func encodeUint64(dst []byte, v uint64, order Endian) {
	if order == LittleEndian {
		dst[0], dst[1], dst[2], dst[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
		dst[4], dst[5], dst[6], dst[7] = byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56)
		return
	}
	dst[0], dst[1], dst[2], dst[3] = byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32)
	dst[4], dst[5], dst[6], dst[7] = byte(v>>24), byte(v>>16), byte(v>>8), byte(v)
}

// bitsToFloat32 reinterprets the IEEE-754 bit pattern u as a float32.
func bitsToFloat32(u uint32) float32 { return math.Float32frombits(u) }

// bitsToFloat64 reinterprets the IEEE-754 bit pattern u as a float64.
func bitsToFloat64(u uint64) float64 { return math.Float64frombits(u) }

// float32ToBits reinterprets v's IEEE-754 bit pattern as a uint32.
func float32ToBits(v float32) uint32 { return math.Float32bits(v) }

// float64ToBits reinterprets v's IEEE-754 bit pattern as a uint64.
func float64ToBits(v float64) uint64 { return math.Float64bits(v) }

// zigzagDecode32 maps a zig-zag encoded varint payload back to a signed
// 32-bit value.
func zigzagDecode32(u uint64) int32 { return zigzag.Decode[int32](u) }

// zigzagDecode64 maps a zig-zag encoded varint payload back to a signed
// 64-bit value.
func zigzagDecode64(u uint64) int64 { return zigzag.Decode[int64](u) }

// zigzagEncode32 maps a signed 32-bit value to its zig-zag varint payload.
func zigzagEncode32(v int32) uint64 { return zigzag.Encode(v) }

// zigzagEncode64 maps a signed 64-bit value to its zig-zag varint payload.
func zigzagEncode64(v int64) uint64 { return zigzag.Encode(v) }

// ScalarKind is a closed enumeration of the protobuf scalar wire
// representations pbj codecs dispatch on.
type ScalarKind uint8

const (
	// KindInt32 is a plain (non-zig-zag) varint, sign-extended to 64 bits
	// on the wire, truncated back to 32 bits on decode.
	KindInt32 ScalarKind = iota
	// KindInt64 is a plain varint.
	KindInt64
	// KindUint32 is a plain varint with no sign handling.
	KindUint32
	// KindUint64 is a plain varint with no sign handling.
	KindUint64
	// KindSint32 is a zig-zag encoded varint.
	KindSint32
	// KindSint64 is a zig-zag encoded varint.
	KindSint64
	// KindBool is a varint restricted to the values 0 and 1.
	KindBool
	// KindEnum is a plain varint; values with no matching enum constant
	// are preserved rather than rejected, for forward compatibility with
	// schemas that add enum constants later.
	KindEnum
	// KindFixed32 is 4 raw little-endian bytes, unsigned.
	KindFixed32
	// KindSfixed32 is 4 raw little-endian bytes, signed.
	KindSfixed32
	// KindFloat is 4 raw little-endian bytes, IEEE-754 single precision.
	KindFloat
	// KindFixed64 is 8 raw little-endian bytes, unsigned.
	KindFixed64
	// KindSfixed64 is 8 raw little-endian bytes, signed.
	KindSfixed64
	// KindDouble is 8 raw little-endian bytes, IEEE-754 double precision.
	KindDouble
	// KindString is a length-delimited UTF-8 payload.
	KindString
	// KindBytes is a length-delimited opaque payload.
	KindBytes
	// KindMessage is a length-delimited nested-message payload.
	KindMessage
)

// WireTypeOf returns the wire type a scalar of this kind is framed with.
func (k ScalarKind) WireTypeOf() WireType {
	switch k {
	case KindInt32, KindInt64, KindUint32, KindUint64, KindSint32, KindSint64, KindBool, KindEnum:
		return WireVarint
	case KindFixed32, KindSfixed32, KindFloat:
		return WireFixed32
	case KindFixed64, KindSfixed64, KindDouble:
		return WireFixed64
	case KindString, KindBytes, KindMessage:
		return WireLengthDelimited
	default:
		return WireVarint
	}
}

// DecodeBool interprets a varint payload as a protobuf BOOL: only 0 and 1
// are legal; anything else is a malformed encoding. Receivers must not
// silently coerce other values to true.
func DecodeBool(u uint64) (bool, error) {
	switch u {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, newError(KindMalformedEncoding, -1, "BOOL varint must be 0 or 1, got %d", u)
	}
}

// EncodeBool maps a bool to its varint payload.
func EncodeBool(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}
