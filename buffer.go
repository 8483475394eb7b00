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
	"io"

	"github.com/hashgraph/pbj-go/internal/varint"
)

// variant tags the three closed [BufferedData] implementations. The
// choice here is a thin tag carried on one concrete type rather than
// three separate types behind an interface, since the difference between
// them is entirely in how the backing array was obtained and, for
// variantUnsafe, how fixed-width fields are read and written off it.
type variant uint8

const (
	variantHeap variant = iota
	variantDirect
	variantUnsafe
)

// buffer is the concrete implementation backing every [BufferedData]
// returned by this package's constructors. arr is always a real Go byte
// slice — on unix platforms even the direct variant's arr is backed by
// OS-mapped memory obtained through golang.org/x/sys/unix, reinterpreted
// as a []byte by Mmap itself, so no unsafe slice construction is needed to
// get a zero-copy, GC-untracked region. Elsewhere the direct variant's arr
// is an ordinary heap slice (see buffer_direct_other.go).
type buffer struct {
	arr     []byte
	pos     int
	lim     int
	kind    variant
	release func() error // non-nil only for variantDirect.
}

// WrapBuffer returns a heap-backed [BufferedData] viewing the entirety of
// array; writes to the returned buffer mutate array in place.
func WrapBuffer(array []byte) BufferedData {
	return &buffer{arr: array, pos: 0, lim: len(array), kind: variantHeap}
}

// Allocate returns a new heap-backed [BufferedData] with the given fixed
// capacity, position 0 and limit equal to capacity.
func Allocate(capacity int) (BufferedData, error) {
	if capacity < 0 {
		return nil, newError(KindArgument, -1, "negative capacity %d", capacity)
	}
	return &buffer{arr: make([]byte, capacity), pos: 0, lim: capacity, kind: variantHeap}, nil
}

// AllocateUnsafe returns a new heap-backed [BufferedData] whose fixed-width
// scalar reads and writes bypass per-byte bounds checking in favor of a
// single up-front range check followed by a raw memory access. It is
// otherwise behaviorally identical to [Allocate].
func AllocateUnsafe(capacity int) (BufferedData, error) {
	if capacity < 0 {
		return nil, newError(KindArgument, -1, "negative capacity %d", capacity)
	}
	return &buffer{arr: make([]byte, capacity), pos: 0, lim: capacity, kind: variantUnsafe}, nil
}

// AllocateDirect returns a new off-heap [BufferedData] backed by an
// anonymous memory mapping rather than the Go heap. The caller must call
// [Release] when done; on platforms without an mmap-backed implementation
// it falls back to a regular heap allocation (see buffer_direct_other.go).
func AllocateDirect(capacity int) (BufferedData, error) {
	if capacity < 0 {
		return nil, newError(KindArgument, -1, "negative capacity %d", capacity)
	}
	acquireDirectSlot()
	arr, release, err := directAlloc(capacity)
	if err != nil {
		releaseDirectSlot()
		return nil, newError(KindIO, -1, "mmap allocation failed: %v", err)
	}
	return &buffer{arr: arr, pos: 0, lim: capacity, kind: variantDirect, release: release}, nil
}

// Release frees a direct buffer's off-heap memory. It is a no-op for
// heap-backed and unsafe-heap buffers. Calling it more than once, or using
// b after calling it, is undefined behavior.
func Release(b BufferedData) error {
	buf, ok := b.(*buffer)
	if !ok || buf.release == nil {
		return nil
	}
	release := buf.release
	buf.release = nil
	buf.arr = nil
	defer releaseDirectSlot()
	return release()
}

// --- Sequential ---

func (b *buffer) Position() int { return b.pos }

func (b *buffer) SetPosition(p int) error {
	if p < 0 || p > b.lim {
		return newError(KindArgument, p, "position out of range [0, %d]", b.lim)
	}
	b.pos = p
	return nil
}

func (b *buffer) Limit() int { return b.lim }

func (b *buffer) SetLimit(l int) error {
	if l < b.pos {
		l = b.pos
	}
	if l > len(b.arr) {
		l = len(b.arr)
	}
	b.lim = l
	return nil
}

func (b *buffer) Capacity() int { return len(b.arr) }

func (b *buffer) Remaining() int { return b.lim - b.pos }

func (b *buffer) HasRemaining() bool { return b.pos < b.lim }

func (b *buffer) Skip(n int) int {
	if n < 0 {
		n = 0
	}
	if n > b.Remaining() {
		n = b.Remaining()
	}
	b.pos += n
	return n
}

func (b *buffer) Flip() {
	b.lim = b.pos
	b.pos = 0
}

func (b *buffer) Reset() {
	b.pos = 0
	b.lim = len(b.arr)
}

func (b *buffer) ResetPosition() { b.pos = 0 }

// --- RandomAccess ---

func (b *buffer) Length() int { return len(b.arr) }

func (b *buffer) checkOffset(offset int) error {
	if offset < 0 || offset >= len(b.arr) {
		return newError(KindOutOfBounds, offset, "offset out of range [0, %d)", len(b.arr))
	}
	return nil
}

func (b *buffer) GetByte(offset int) (int8, error) {
	if err := b.checkOffset(offset); err != nil {
		return 0, err
	}
	return int8(b.arr[offset]), nil
}

func (b *buffer) GetUnsignedByte(offset int) (uint8, error) {
	if err := b.checkOffset(offset); err != nil {
		return 0, err
	}
	return b.arr[offset], nil
}

func (b *buffer) CopyBytes(offset int, dst []byte) (int, error) {
	if offset < 0 || offset > len(b.arr) {
		return 0, newError(KindOutOfBounds, offset, "offset out of range [0, %d]", len(b.arr))
	}
	return copy(dst, b.arr[offset:]), nil
}

func (b *buffer) Slice(offset, length int) (Bytes, error) {
	if offset < 0 || length < 0 {
		return Bytes{}, newError(KindArgument, -1, "negative offset (%d) or length (%d)", offset, length)
	}
	if offset+length > len(b.arr) {
		return Bytes{}, newError(KindOutOfBounds, offset, "range [%d, %d) exceeds capacity %d", offset, offset+length, len(b.arr))
	}
	if length == 0 {
		return Empty, nil
	}
	return Wrap(b.arr[offset : offset+length]), nil
}

func (b *buffer) rangeCheck(offset, size int) error {
	if offset < 0 {
		return newError(KindArgument, offset, "negative offset")
	}
	if offset+size > len(b.arr) {
		return newError(KindOutOfBounds, offset, "need %d bytes at offset %d, capacity is %d", size, offset, len(b.arr))
	}
	return nil
}

func (b *buffer) Int32(offset int, order Endian) (int32, error) {
	if err := b.rangeCheck(offset, 4); err != nil {
		return 0, err
	}
	if b.kind == variantUnsafe {
		return int32(unsafeReadUint32(b.arr, offset, order)), nil
	}
	return int32(decodeUint32(b.arr[offset:offset+4], order)), nil
}

func (b *buffer) Int64(offset int, order Endian) (int64, error) {
	if err := b.rangeCheck(offset, 8); err != nil {
		return 0, err
	}
	if b.kind == variantUnsafe {
		return int64(unsafeReadUint64(b.arr, offset, order)), nil
	}
	return int64(decodeUint64(b.arr[offset:offset+8], order)), nil
}

func (b *buffer) Float32(offset int, order Endian) (float32, error) {
	v, err := b.Int32(offset, order)
	if err != nil {
		return 0, err
	}
	return bitsToFloat32(uint32(v)), nil
}

func (b *buffer) Float64(offset int, order Endian) (float64, error) {
	v, err := b.Int64(offset, order)
	if err != nil {
		return 0, err
	}
	return bitsToFloat64(uint64(v)), nil
}

func (b *buffer) getVarUint(offset int) (uint64, int, error) {
	if offset < 0 || offset > len(b.arr) {
		return 0, 0, newError(KindOutOfBounds, offset, "offset out of range [0, %d]", len(b.arr))
	}
	v, n, err := varint.Consume(b.arr[offset:])
	if err != nil {
		return 0, 0, newError(KindMalformedEncoding, offset, "%v", err)
	}
	return v, n, nil
}

func (b *buffer) GetVarInt32(offset int, zigzag bool) (int32, int, error) {
	v, n, err := b.getVarUint(offset)
	if err != nil {
		return 0, 0, err
	}
	if zigzag {
		return zigzagDecode32(v), n, nil
	}
	return int32(v), n, nil
}

func (b *buffer) GetVarInt64(offset int, zigzag bool) (int64, int, error) {
	v, n, err := b.getVarUint(offset)
	if err != nil {
		return 0, 0, err
	}
	if zigzag {
		return zigzagDecode64(v), n, nil
	}
	return int64(v), n, nil
}

func (b *buffer) Contains(offset int, prefix []byte) bool {
	if offset < 0 || offset+len(prefix) > len(b.arr) {
		return false
	}
	for i, c := range prefix {
		if b.arr[offset+i] != c {
			return false
		}
	}
	return true
}

func (b *buffer) MatchesPrefix(prefix []byte) bool { return b.Contains(0, prefix) }

// --- Readable ---

func (b *buffer) ReadByte() (int8, error) {
	if b.Remaining() < 1 {
		return 0, newError(KindUnderflow, b.pos, "need 1 byte, only %d remain", b.Remaining())
	}
	v := int8(b.arr[b.pos])
	b.pos++
	return v, nil
}

func (b *buffer) ReadUnsignedByte() (uint8, error) {
	if b.Remaining() < 1 {
		return 0, newError(KindUnderflow, b.pos, "need 1 byte, only %d remain", b.Remaining())
	}
	v := b.arr[b.pos]
	b.pos++
	return v, nil
}

func (b *buffer) ReadBytes(dst []byte) (int, error) {
	if len(dst) > b.Remaining() {
		return 0, newError(KindUnderflow, b.pos, "need %d bytes, only %d remain", len(dst), b.Remaining())
	}
	n := copy(dst, b.arr[b.pos:b.lim])
	b.pos += n
	return n, nil
}

func (b *buffer) ReadBytesAsBytes(length int) (Bytes, error) {
	if length < 0 {
		return Bytes{}, newError(KindArgument, b.pos, "negative length %d", length)
	}
	if length > b.Remaining() {
		return Bytes{}, newError(KindUnderflow, b.pos, "need %d bytes, only %d remain", length, b.Remaining())
	}
	out := Wrap(b.arr[b.pos : b.pos+length])
	b.pos += length
	return out, nil
}

func (b *buffer) ReadInt32(order Endian) (int32, error) {
	if b.Remaining() < 4 {
		return 0, newError(KindUnderflow, b.pos, "need 4 bytes, only %d remain", b.Remaining())
	}
	var v int32
	if b.kind == variantUnsafe {
		v = int32(unsafeReadUint32(b.arr, b.pos, order))
	} else {
		v = int32(decodeUint32(b.arr[b.pos:b.pos+4], order))
	}
	b.pos += 4
	return v, nil
}

func (b *buffer) ReadInt64(order Endian) (int64, error) {
	if b.Remaining() < 8 {
		return 0, newError(KindUnderflow, b.pos, "need 8 bytes, only %d remain", b.Remaining())
	}
	var v int64
	if b.kind == variantUnsafe {
		v = int64(unsafeReadUint64(b.arr, b.pos, order))
	} else {
		v = int64(decodeUint64(b.arr[b.pos:b.pos+8], order))
	}
	b.pos += 8
	return v, nil
}

func (b *buffer) ReadFloat32(order Endian) (float32, error) {
	v, err := b.ReadInt32(order)
	if err != nil {
		return 0, err
	}
	return bitsToFloat32(uint32(v)), nil
}

func (b *buffer) ReadFloat64(order Endian) (float64, error) {
	v, err := b.ReadInt64(order)
	if err != nil {
		return 0, err
	}
	return bitsToFloat64(uint64(v)), nil
}

func (b *buffer) ReadVarInt32(zigzag bool) (int32, error) {
	v, n, err := b.GetVarInt32(b.pos, zigzag)
	if err != nil {
		return 0, err
	}
	if b.pos+n > b.lim {
		return 0, newError(KindUnderflow, b.pos, "varint runs past limit")
	}
	b.pos += n
	return v, nil
}

func (b *buffer) ReadVarInt64(zigzag bool) (int64, error) {
	v, n, err := b.GetVarInt64(b.pos, zigzag)
	if err != nil {
		return 0, err
	}
	if b.pos+n > b.lim {
		return 0, newError(KindUnderflow, b.pos, "varint runs past limit")
	}
	b.pos += n
	return v, nil
}

func (b *buffer) View(length int) (Readable, error) {
	bs, err := b.ReadBytesAsBytes(length)
	if err != nil {
		return nil, err
	}
	return bs.ToReadableSequential(), nil
}


// --- Writable ---

func (b *buffer) WriteByte(v int8) error {
	if b.Remaining() < 1 {
		return newError(KindOverflow, b.pos, "need 1 byte, only %d remain", b.Remaining())
	}
	b.arr[b.pos] = byte(v)
	b.pos++
	return nil
}

func (b *buffer) WriteUnsignedByte(v uint8) error {
	if b.Remaining() < 1 {
		return newError(KindOverflow, b.pos, "need 1 byte, only %d remain", b.Remaining())
	}
	b.arr[b.pos] = v
	b.pos++
	return nil
}

func (b *buffer) WriteBytes(src []byte) (int, error) {
	if len(src) > b.Remaining() {
		return 0, newError(KindOverflow, b.pos, "need %d bytes, only %d remain", len(src), b.Remaining())
	}
	n := copy(b.arr[b.pos:b.lim], src)
	b.pos += n
	return n, nil
}

func (b *buffer) WriteBytesData(src RandomAccess) (int, error) {
	n := src.Length()
	if n > b.Remaining() {
		return 0, newError(KindOverflow, b.pos, "need %d bytes, only %d remain", n, b.Remaining())
	}
	got, err := src.CopyBytes(0, b.arr[b.pos:b.pos+n])
	if err != nil {
		return 0, err
	}
	b.pos += got
	return got, nil
}

func (b *buffer) WriteFrom(r io.Reader, max int64) (int64, error) {
	limit := int64(b.Remaining())
	if max >= 0 && max < limit {
		limit = max
	}
	n, err := io.CopyN(sliceWriter{b}, r, limit)
	if err != nil && err != io.EOF {
		return n, newError(KindIO, b.pos, "%v", err)
	}
	return n, nil
}

// sliceWriter adapts buffer's cursor-advancing writes to [io.Writer].
type sliceWriter struct{ b *buffer }

func (w sliceWriter) Write(p []byte) (int, error) {
	n, err := w.b.WriteBytes(p)
	if err != nil {
		return n, err
	}
	return n, nil
}

func (b *buffer) WriteInt32(v int32, order Endian) error {
	if b.Remaining() < 4 {
		return newError(KindOverflow, b.pos, "need 4 bytes, only %d remain", b.Remaining())
	}
	if b.kind == variantUnsafe {
		unsafeWriteUint32(b.arr, b.pos, uint32(v), order)
	} else {
		encodeUint32(b.arr[b.pos:b.pos+4], uint32(v), order)
	}
	b.pos += 4
	return nil
}

func (b *buffer) WriteInt64(v int64, order Endian) error {
	if b.Remaining() < 8 {
		return newError(KindOverflow, b.pos, "need 8 bytes, only %d remain", b.Remaining())
	}
	if b.kind == variantUnsafe {
		unsafeWriteUint64(b.arr, b.pos, uint64(v), order)
	} else {
		encodeUint64(b.arr[b.pos:b.pos+8], uint64(v), order)
	}
	b.pos += 8
	return nil
}

func (b *buffer) WriteFloat32(v float32, order Endian) error {
	return b.WriteInt32(int32(float32ToBits(v)), order)
}

func (b *buffer) WriteFloat64(v float64, order Endian) error {
	return b.WriteInt64(int64(float64ToBits(v)), order)
}

func (b *buffer) writeVarUint(u uint64) error {
	need := varint.Len(u)
	if need > b.Remaining() {
		return newError(KindOverflow, b.pos, "need %d bytes, only %d remain", need, b.Remaining())
	}
	n := varint.Put(b.arr[b.pos:b.pos+need], u)
	b.pos += n
	return nil
}

func (b *buffer) WriteVarInt32(v int32, zigzag bool) error {
	if zigzag {
		return b.writeVarUint(zigzagEncode32(v))
	}
	// Negative INT32/ENUM values sign-extend through 64 bits on the wire,
	// per protobuf's own encoder, producing a full 10-byte varint.
	return b.writeVarUint(uint64(int64(v)))
}

func (b *buffer) WriteVarInt64(v int64, zigzag bool) error {
	if zigzag {
		return b.writeVarUint(zigzagEncode64(v))
	}
	return b.writeVarUint(uint64(v))
}
