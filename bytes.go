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
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"io"

	"github.com/hashgraph/pbj-go/internal/varint"
)

// Endian selects the byte order used by a multi-byte read or write. Every
// such read and write takes an explicit order; the zero value is BigEndian.
// Protobuf's own fixed32/fixed64/float/double wire encoding is
// little-endian (see the ScalarKind constants in scalar.go).
type Endian int

const (
	// BigEndian orders the most significant byte first.
	BigEndian Endian = iota
	// LittleEndian orders the least significant byte first.
	LittleEndian
)

// Bytes is an immutable view over a contiguous region of a byte array: a
// zero-copy slice that may share its backing array with other Bytes values.
// The zero value is [Empty], the empty instance.
//
// Callers must not mutate the array passed to [Wrap] (or any of its
// variants) for as long as any Bytes value derived from it is reachable;
// doing so is undefined behavior.
type Bytes struct {
	buf   []byte
	start int
	len   int
}

// Empty is the canonical zero-length Bytes value. Every zero-length slice
// operation returns this singleton rather than allocating.
var Empty = Bytes{}

// Wrap returns a Bytes viewing the entirety of array.
func Wrap(array []byte) Bytes {
	if len(array) == 0 {
		return Empty
	}
	return Bytes{buf: array, start: 0, len: len(array)}
}

// WrapRange returns a Bytes viewing array[off : off+length].
func WrapRange(array []byte, off, length int) (Bytes, error) {
	if off < 0 || length < 0 {
		return Bytes{}, newError(KindArgument, -1, "negative offset (%d) or length (%d)", off, length)
	}
	if off+length > len(array) {
		return Bytes{}, newError(KindOutOfBounds, off, "range [%d, %d) exceeds array of length %d", off, off+length, len(array))
	}
	if length == 0 {
		return Empty, nil
	}
	return Bytes{buf: array, start: off, len: length}, nil
}

// WrapString returns a Bytes viewing the UTF-8 encoding of s.
func WrapString(s string) Bytes {
	if len(s) == 0 {
		return Empty
	}
	return Wrap([]byte(s))
}

// FromBase64 decodes standard base64 text into a new, owned Bytes.
func FromBase64(s string) (Bytes, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Bytes{}, newError(KindArgument, -1, "invalid base64: %v", err)
	}
	return Wrap(raw), nil
}

// FromHex decodes hexadecimal text into a new, owned Bytes.
func FromHex(s string) (Bytes, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Bytes{}, newError(KindArgument, -1, "invalid hex: %v", err)
	}
	return Wrap(raw), nil
}

// Length returns the number of bytes in this view.
func (b Bytes) Length() int { return b.len }

// IsEmpty reports whether this view has zero length.
func (b Bytes) IsEmpty() bool { return b.len == 0 }

func (b Bytes) checkOffset(offset int) error {
	if offset < 0 || offset >= b.len {
		return newError(KindOutOfBounds, offset, "offset out of range [0, %d)", b.len)
	}
	return nil
}

// GetByte returns the signed byte at offset.
func (b Bytes) GetByte(offset int) (int8, error) {
	if err := b.checkOffset(offset); err != nil {
		return 0, err
	}
	return int8(b.buf[b.start+offset]), nil
}

// GetUnsignedByte returns the unsigned byte at offset.
func (b Bytes) GetUnsignedByte(offset int) (uint8, error) {
	if err := b.checkOffset(offset); err != nil {
		return 0, err
	}
	return b.buf[b.start+offset], nil
}

// CopyBytes copies min(len(dst), Length()-offset) bytes starting at offset
// into dst, returning the number of bytes copied.
func (b Bytes) CopyBytes(offset int, dst []byte) (int, error) {
	if offset < 0 {
		return 0, newError(KindArgument, offset, "negative offset")
	}
	if offset > b.len {
		return 0, newError(KindOutOfBounds, offset, "offset out of range [0, %d]", b.len)
	}
	n := copy(dst, b.buf[b.start+offset:b.start+b.len])
	return n, nil
}

// Slice returns a zero-copy view of b[off : off+length], sharing the
// underlying array.
func (b Bytes) Slice(off, length int) (Bytes, error) {
	if off < 0 || length < 0 {
		return Bytes{}, newError(KindArgument, -1, "negative offset (%d) or length (%d)", off, length)
	}
	if off+length > b.len {
		return Bytes{}, newError(KindOutOfBounds, off, "range [%d, %d) exceeds length %d", off, off+length, b.len)
	}
	if length == 0 {
		return Empty, nil
	}
	return Bytes{buf: b.buf, start: b.start + off, len: length}, nil
}

// GetBytes is an alias for [Bytes.Slice].
func (b Bytes) GetBytes(off, length int) (Bytes, error) { return b.Slice(off, length) }

func (b Bytes) readFixed(offset, size int) ([]byte, error) {
	if offset < 0 {
		return nil, newError(KindArgument, offset, "negative offset")
	}
	if offset+size > b.len {
		return nil, newError(KindUnderflow, offset, "need %d bytes, only %d remain", size, b.len-offset)
	}
	return b.buf[b.start+offset : b.start+offset+size], nil
}

// Int32 reads a 4-byte signed integer at offset in the given byte order.
func (b Bytes) Int32(offset int, order Endian) (int32, error) {
	raw, err := b.readFixed(offset, 4)
	if err != nil {
		return 0, err
	}
	return int32(decodeUint32(raw, order)), nil
}

// Int64 reads an 8-byte signed integer at offset in the given byte order.
func (b Bytes) Int64(offset int, order Endian) (int64, error) {
	raw, err := b.readFixed(offset, 8)
	if err != nil {
		return 0, err
	}
	return int64(decodeUint64(raw, order)), nil
}

// Float32 reads a 4-byte IEEE-754 float at offset in the given byte order.
func (b Bytes) Float32(offset int, order Endian) (float32, error) {
	v, err := b.Int32(offset, order)
	if err != nil {
		return 0, err
	}
	return bitsToFloat32(uint32(v)), nil
}

// Float64 reads an 8-byte IEEE-754 double at offset in the given byte order.
func (b Bytes) Float64(offset int, order Endian) (float64, error) {
	v, err := b.Int64(offset, order)
	if err != nil {
		return 0, err
	}
	return bitsToFloat64(uint64(v)), nil
}

// GetVarInt32 reads a varint at offset, truncating to 32 bits, optionally
// zig-zag decoding it. It returns the decoded value and the number of bytes
// consumed.
func (b Bytes) GetVarInt32(offset int, zigzag bool) (int32, int, error) {
	v, n, err := b.getVarUint(offset)
	if err != nil {
		return 0, 0, err
	}
	if zigzag {
		return zigzagDecode32(v), n, nil
	}
	return int32(v), n, nil
}

// GetVarInt64 reads a varint at offset, optionally zig-zag decoding it. It
// returns the decoded value and the number of bytes consumed.
func (b Bytes) GetVarInt64(offset int, zigzag bool) (int64, int, error) {
	v, n, err := b.getVarUint(offset)
	if err != nil {
		return 0, 0, err
	}
	if zigzag {
		return zigzagDecode64(v), n, nil
	}
	return int64(v), n, nil
}

func (b Bytes) getVarUint(offset int) (uint64, int, error) {
	if offset < 0 || offset > b.len {
		return 0, 0, newError(KindOutOfBounds, offset, "offset out of range [0, %d]", b.len)
	}
	v, n, err := varint.Consume(b.buf[b.start+offset : b.start+b.len])
	if err != nil {
		return 0, 0, newError(KindMalformedEncoding, offset, "%v", err)
	}
	return v, n, nil
}

// AsUTF8String decodes the entire view as UTF-8 text.
func (b Bytes) AsUTF8String() string {
	return string(b.buf[b.start : b.start+b.len])
}

// AsUTF8StringRange decodes b[off : off+length] as UTF-8 text.
func (b Bytes) AsUTF8StringRange(off, length int) (string, error) {
	s, err := b.Slice(off, length)
	if err != nil {
		return "", err
	}
	return s.AsUTF8String(), nil
}

// CompareTo performs an unsigned byte-wise lexicographic comparison against
// other, with a length tiebreak (shorter wins) when one is a prefix of the
// other. It returns -1, 0, or 1.
func (b Bytes) CompareTo(other Bytes) int {
	n := min(b.len, other.len)
	for i := 0; i < n; i++ {
		x, y := b.buf[b.start+i], other.buf[other.start+i]
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	switch {
	case b.len < other.len:
		return -1
	case b.len > other.len:
		return 1
	default:
		return 0
	}
}

// Equal reports whether b and other have identical content, regardless of
// whether they share a backing array.
func (b Bytes) Equal(other Bytes) bool {
	if b.len != other.len {
		return false
	}
	return bytes.Equal(b.buf[b.start:b.start+b.len], other.buf[other.start:other.start+other.len])
}

// Hash returns a content-only hash: two Bytes with equal content always
// produce equal hashes, regardless of backing array identity or start
// offset.
func (b Bytes) Hash() uint64 {
	// FNV-1a. No identity or offset is mixed in, only content.
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for _, c := range b.buf[b.start : b.start+b.len] {
		h ^= uint64(c)
		h *= prime64
	}
	return h
}

// Contains reports whether prefix occurs at offset within b.
func (b Bytes) Contains(offset int, prefix []byte) bool {
	if offset < 0 || offset+len(prefix) > b.len {
		return false
	}
	return bytes.Equal(b.buf[b.start+offset:b.start+offset+len(prefix)], prefix)
}

// ContainsBytes is like Contains, but compares against another Bytes.
func (b Bytes) ContainsBytes(offset int, prefix Bytes) bool {
	return b.Contains(offset, prefix.buf[prefix.start:prefix.start+prefix.len])
}

// MatchesPrefix reports whether b begins with prefix.
func (b Bytes) MatchesPrefix(prefix []byte) bool {
	return b.Contains(0, prefix)
}

// MatchesPrefixBytes is like MatchesPrefix, but compares against another
// Bytes.
func (b Bytes) MatchesPrefixBytes(prefix Bytes) bool {
	return b.ContainsBytes(0, prefix)
}

// Append returns a new Bytes holding b's content followed by more.
func (b Bytes) Append(more []byte) Bytes {
	out := make([]byte, b.len+len(more))
	copy(out, b.buf[b.start:b.start+b.len])
	copy(out[b.len:], more)
	return Wrap(out)
}

// AppendBytes is like Append, but appends another Bytes.
func (b Bytes) AppendBytes(more Bytes) Bytes {
	return b.Append(more.buf[more.start : more.start+more.len])
}

// WriteTo streams this view's content to w without an intermediate copy,
// implementing [io.WriterTo].
func (b Bytes) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf[b.start : b.start+b.len])
	if err != nil {
		return int64(n), newError(KindIO, -1, "%v", err)
	}
	return int64(n), nil
}

// Replicate returns a deep copy of b with its own backing array, which can
// be safely retained even if the original backing array is later reused.
func (b Bytes) Replicate() Bytes {
	out := make([]byte, b.len)
	copy(out, b.buf[b.start:b.start+b.len])
	return Wrap(out)
}

// ToInputStream returns an [io.Reader] over this view's full content. Each
// call returns an independent reader; concurrent readers do not interfere
// with one another.
func (b Bytes) ToInputStream() io.Reader {
	return bytes.NewReader(b.buf[b.start : b.start+b.len])
}

// ToReadableSequential adapts b to the [Readable] sequential cursor
// contract, starting at position 0. The returned buffer shares b's
// backing array; it is not copied.
func (b Bytes) ToReadableSequential() Readable {
	return WrapBuffer(b.buf[b.start : b.start+b.len])
}
