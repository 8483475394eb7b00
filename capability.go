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

import "io"

// RandomAccess is the capability set for reading bytes at arbitrary
// absolute offsets, without moving any cursor. Both [Bytes] and
// [BufferedData] satisfy it.
type RandomAccess interface {
	// Length returns the number of addressable bytes.
	Length() int
	// GetByte returns the signed byte at offset.
	GetByte(offset int) (int8, error)
	// GetUnsignedByte returns the unsigned byte at offset.
	GetUnsignedByte(offset int) (uint8, error)
	// CopyBytes copies min(len(dst), Length()-offset) bytes starting at
	// offset into dst, returning the count copied.
	CopyBytes(offset int, dst []byte) (int, error)
	// Slice returns a zero-copy view of [offset, offset+length).
	Slice(offset, length int) (Bytes, error)
	// Int32 reads a 4-byte signed integer at offset.
	Int32(offset int, order Endian) (int32, error)
	// Int64 reads an 8-byte signed integer at offset.
	Int64(offset int, order Endian) (int64, error)
	// Float32 reads a 4-byte IEEE-754 float at offset.
	Float32(offset int, order Endian) (float32, error)
	// Float64 reads an 8-byte IEEE-754 double at offset.
	Float64(offset int, order Endian) (float64, error)
	// GetVarInt32 reads a varint at offset, returning the value and the
	// number of bytes it occupied.
	GetVarInt32(offset int, zigzag bool) (int32, int, error)
	// GetVarInt64 reads a varint at offset, returning the value and the
	// number of bytes it occupied.
	GetVarInt64(offset int, zigzag bool) (int64, int, error)
	// Contains reports whether prefix occurs at offset.
	Contains(offset int, prefix []byte) bool
	// MatchesPrefix reports whether this data begins with prefix.
	MatchesPrefix(prefix []byte) bool
}

// Sequential is the capability set of a byte stream with a position cursor
// and a limit: `0 <= position <= limit <= capacity`.
type Sequential interface {
	// Position returns the current cursor position.
	Position() int
	// SetPosition moves the cursor to p, which must satisfy 0 <= p <= Limit().
	SetPosition(p int) error
	// Limit returns the current limit.
	Limit() int
	// SetLimit moves the limit to l, clamped into [Position(), Capacity()].
	SetLimit(l int) error
	// Capacity returns the fixed total size of the underlying region.
	Capacity() int
	// Remaining returns Limit() - Position().
	Remaining() int
	// HasRemaining reports whether Remaining() > 0.
	HasRemaining() bool
	// Skip advances the position by min(n, Remaining()) and returns the
	// actual number of bytes skipped.
	Skip(n int) int
}

// Readable is the capability set of a sequential cursor that can be read
// from; each read advances Position() by the number of bytes consumed.
type Readable interface {
	Sequential

	// ReadByte reads and returns the next signed byte.
	ReadByte() (int8, error)
	// ReadUnsignedByte reads and returns the next unsigned byte.
	ReadUnsignedByte() (uint8, error)
	// ReadBytes reads len(dst) bytes into dst.
	ReadBytes(dst []byte) (int, error)
	// ReadBytesAsBytes reads length bytes and returns them as a Bytes,
	// which may share the underlying array when the source is
	// heap-backed.
	ReadBytesAsBytes(length int) (Bytes, error)
	// ReadInt32 reads a 4-byte signed integer.
	ReadInt32(order Endian) (int32, error)
	// ReadInt64 reads an 8-byte signed integer.
	ReadInt64(order Endian) (int64, error)
	// ReadFloat32 reads a 4-byte IEEE-754 float.
	ReadFloat32(order Endian) (float32, error)
	// ReadFloat64 reads an 8-byte IEEE-754 double.
	ReadFloat64(order Endian) (float64, error)
	// ReadVarInt32 reads a varint and advances past it.
	ReadVarInt32(zigzag bool) (int32, error)
	// ReadVarInt64 reads a varint and advances past it.
	ReadVarInt64(zigzag bool) (int64, error)
	// View returns a new Readable over the next length bytes, advancing
	// this cursor's position by length.
	View(length int) (Readable, error)
}

// Writable is the capability set of a sequential cursor that can be written
// to; each write advances Position() by the number of bytes produced.
type Writable interface {
	Sequential

	// WriteByte writes a signed byte.
	WriteByte(v int8) error
	// WriteUnsignedByte writes an unsigned byte.
	WriteUnsignedByte(v uint8) error
	// WriteBytes writes all of src.
	WriteBytes(src []byte) (int, error)
	// WriteBytesData writes all of src, a RandomAccess source.
	WriteBytesData(src RandomAccess) (int, error)
	// WriteFrom copies up to max bytes from r, stopping at EOF.
	WriteFrom(r io.Reader, max int64) (int64, error)
	// WriteInt32 writes a 4-byte signed integer.
	WriteInt32(v int32, order Endian) error
	// WriteInt64 writes an 8-byte signed integer.
	WriteInt64(v int64, order Endian) error
	// WriteFloat32 writes a 4-byte IEEE-754 float.
	WriteFloat32(v float32, order Endian) error
	// WriteFloat64 writes an 8-byte IEEE-754 double.
	WriteFloat64(v float64, order Endian) error
	// WriteVarInt32 writes a varint.
	WriteVarInt32(v int32, zigzag bool) error
	// WriteVarInt64 writes a varint.
	WriteVarInt64(v int64, zigzag bool) error
}

// BufferedData is a cursor-bearing, bidirectional byte buffer: the mutable
// counterpart to the immutable [Bytes]. It implements [RandomAccess],
// [Readable], and [Writable] all at once.
//
// Three variants exist — heap-array, direct (off-heap), and unsafe-heap —
// selected by the constructor used ([WrapBuffer], [Allocate], [AllocateDirect],
// [AllocateUnsafe]); all three satisfy this same interface identically, as
// a closed tagged-variant type rather than three separate concrete types.
type BufferedData interface {
	RandomAccess
	Readable
	Writable

	// Flip sets Limit() to the current Position(), then resets Position()
	// to 0: the idiomatic switch from filling a buffer to draining it.
	Flip()
	// Reset sets Position() to 0 and Limit() to Capacity().
	Reset()
	// ResetPosition sets Position() to 0, leaving Limit() unchanged.
	ResetPosition()
}
