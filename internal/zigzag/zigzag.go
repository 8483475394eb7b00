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

// Package zigzag implements the zig-zag mapping used by protobuf's SINT32
// and SINT64 wire encodings, which rewrites signed integers so that small
// negative values still encode as short varints.
package zigzag

// Signed is any signed integer type this package can zig-zag encode/decode.
type Signed interface {
	~int32 | ~int64
}

// Encode maps a signed value to its zig-zag encoded unsigned representation:
// v -> (v << 1) XOR (v >> bits-1).
func Encode[T Signed](v T) uint64 {
	switch any(v).(type) {
	case int32:
		u := uint32(v)
		return uint64(uint32((u << 1)) ^ uint32((int32(v) >> 31)))
	default:
		u := uint64(v)
		return (u << 1) ^ uint64(int64(v)>>63)
	}
}

// Decode maps a zig-zag encoded unsigned value back to its signed form:
// u -> (u >>> 1) XOR -(u & 1).
func Decode[T Signed](u uint64) T {
	switch any(*new(T)).(type) {
	case int32:
		v := uint32(u)
		return T(int32(v>>1) ^ -int32(v&1))
	default:
		return T(int64(u>>1) ^ -int64(u&1))
	}
}
