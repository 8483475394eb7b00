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
	"errors"

	"github.com/hashgraph/pbj-go/internal/dbg"
	"github.com/hashgraph/pbj-go/internal/varint"
)

// defaultMaxDepth is a conservative default recursion ceiling.
const defaultMaxDepth = 32

// defaultMaxSize keeps length-delimited payloads well below int overflow
// range on 32-bit platforms.
const defaultMaxSize = 64 << 20 // 64 MiB

// ParseOptions configures a [Codec] Parse call.
type ParseOptions struct {
	// StrictMode rejects duplicate non-repeated fields and out-of-range
	// enum ordinals instead of accepting the last-seen value.
	StrictMode bool
	// ParseUnknownFields captures fields absent from the schema into the
	// message's [UnknownFields] registry instead of discarding them.
	ParseUnknownFields bool
	// MaxDepth caps MESSAGE field recursion.
	MaxDepth uint
	// MaxSize caps any single LENGTH_DELIMITED payload.
	MaxSize uint
	// SizeHint is an approximate wire size a caller may pass on to
	// [CheckoutSubBufferSized]: a hint above the pool's default capacity
	// gets a dedicated buffer of that size, avoiding the overflow-then-
	// fallback path; smaller hints use the pool as is. Nothing in this
	// package reads it on its own. Purely a performance knob; it changes no
	// observable parse result.
	SizeHint int
}

// DefaultParseOptions returns the options every [ParseOption] is applied
// on top of.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{MaxDepth: defaultMaxDepth, MaxSize: defaultMaxSize}
}

// ParseOption mutates a [ParseOptions] value.
type ParseOption func(*ParseOptions)

// WithStrictMode toggles strict-mode validation.
func WithStrictMode(strict bool) ParseOption {
	return func(o *ParseOptions) { o.StrictMode = strict }
}

// WithUnknownFields toggles unknown-field capture.
func WithUnknownFields(capture bool) ParseOption {
	return func(o *ParseOptions) { o.ParseUnknownFields = capture }
}

// WithMaxDepth overrides the nested-message recursion ceiling.
func WithMaxDepth(depth uint) ParseOption {
	return func(o *ParseOptions) { o.MaxDepth = depth }
}

// WithMaxSize overrides the length-delimited payload ceiling.
func WithMaxSize(size uint) ParseOption {
	return func(o *ParseOptions) { o.MaxSize = size }
}

// WithSizeHint sets the performance-only pool sizing hint.
func WithSizeHint(hint int) ParseOption {
	return func(o *ParseOptions) { o.SizeHint = hint }
}

// ResolveParseOptions applies opts on top of [DefaultParseOptions]. Message
// types implementing [Codec].Parse call this once at the top of the
// method before invoking [ParseLoop].
func ResolveParseOptions(opts ...ParseOption) ParseOptions {
	o := DefaultParseOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Codec is the contract a generated message type's companion codec value
// implements. pbj ships no code generator; hand-written message types implement this
// directly, using [ParseLoop]/[WriteTag]/[ReadLengthDelimited] and friends
// below to share the tag/guard/unknown-field bookkeeping that would
// otherwise be duplicated per message.
type Codec[T any] interface {
	// Write appends exactly MeasureRecord(msg) bytes to out.
	Write(msg T, out Writable) error
	// Parse decodes a value of type T from input.
	Parse(input Readable, opts ...ParseOption) (T, error)
	// MeasureRecord returns the exact length Write(msg, ...) would produce.
	MeasureRecord(msg T) int
	// ToBytes allocates a buffer, writes msg into it, and returns the
	// result.
	ToBytes(msg T) (Bytes, error)
}

// WriteTag writes a field tag: (number << 3) | wireType.
func WriteTag(out Writable, number uint32, wt WireType) error {
	return out.WriteVarInt64(int64(encodeTag(number, wt)), false)
}

// TagLen returns the number of bytes [WriteTag] would produce for the same
// arguments.
func TagLen(number uint32, wt WireType) int {
	return varint.Len(encodeTag(number, wt))
}

// ReadTag reads and decodes a field tag, rejecting the deprecated group
// wire types (3, 4) and field number 0, which is never legal on the wire.
func ReadTag(in Readable) (Tag, error) {
	raw, err := in.ReadVarInt64(false)
	if err != nil {
		return Tag{}, err
	}
	tag := decodeTag(uint64(raw))
	if tag.Number == 0 {
		return Tag{}, newError(KindMalformedEncoding, in.Position(), "field number 0 is not a valid tag")
	}
	if !tag.WireType.Valid() {
		return Tag{}, newError(KindMalformedEncoding, in.Position(), "wire type %d (group start/end) is not supported", tag.WireType)
	}
	return tag, nil
}

// ReadLengthDelimited reads a varint length prefix followed by that many
// bytes, enforcing maxSize on the prefix.
func ReadLengthDelimited(in Readable, maxSize uint) (Bytes, error) {
	length, err := in.ReadVarInt64(false)
	if err != nil {
		return Bytes{}, err
	}
	if length < 0 || uint64(length) > uint64(maxSize) {
		dbg.Log("parse.guard", "%v", dbg.Dict("sizeLimit", "length", length, "maxSize", maxSize))
		return Bytes{}, newError(KindSizeLimit, in.Position(), "length-delimited payload of %d bytes exceeds max_size %d", length, maxSize)
	}
	return in.ReadBytesAsBytes(int(length))
}

// EnterMessage accounts for one level of MESSAGE-field recursion against a
// remaining depth budget. It returns the budget to use
// for the nested parse.
func EnterMessage(remainingDepth uint) (uint, error) {
	if remainingDepth == 0 {
		dbg.Log("parse.guard", "max depth exceeded")
		return 0, newError(KindMaxDepth, -1, "nested message recursion exceeds configured max_depth")
	}
	return remainingDepth - 1, nil
}

// SkipField discards the payload of a field whose number is not of
// interest to the caller.
func SkipField(in Readable, wt WireType, maxSize uint) error {
	switch wt {
	case WireVarint:
		_, err := in.ReadVarInt64(false)
		return err
	case WireFixed32:
		if in.Skip(4) != 4 {
			return newError(KindUnderflow, in.Position(), "need 4 bytes to skip a fixed32 field")
		}
		return nil
	case WireFixed64:
		if in.Skip(8) != 8 {
			return newError(KindUnderflow, in.Position(), "need 8 bytes to skip a fixed64 field")
		}
		return nil
	case WireLengthDelimited:
		_, err := ReadLengthDelimited(in, maxSize)
		return err
	default:
		return newError(KindMalformedEncoding, in.Position(), "wire type %d is not supported", wt)
	}
}

// CaptureField reads the raw payload bytes following a tag, for storage in
// an [UnknownFields] registry. The returned Bytes is exactly the raw bytes
// that followed the tag: the encoded scalar for VARINT/FIXED32/FIXED64,
// or the length prefix plus body for LENGTH_DELIMITED.
func CaptureField(in Readable, wt WireType, maxSize uint) (Bytes, error) {
	switch wt {
	case WireVarint:
		return captureVarint(in)
	case WireFixed32:
		return in.ReadBytesAsBytes(4)
	case WireFixed64:
		return in.ReadBytesAsBytes(8)
	case WireLengthDelimited:
		return captureLengthDelimited(in, maxSize)
	default:
		return Bytes{}, newError(KindMalformedEncoding, in.Position(), "wire type %d is not supported", wt)
	}
}

func captureVarint(in Readable) (Bytes, error) {
	var raw [varint.MaxLen]byte
	for i := 0; i < varint.MaxLen; i++ {
		b, err := in.ReadUnsignedByte()
		if err != nil {
			return Bytes{}, err
		}
		raw[i] = b
		if b < 0x80 {
			return Wrap(append([]byte(nil), raw[:i+1]...)), nil
		}
	}
	return Bytes{}, newError(KindMalformedEncoding, in.Position(), "varint continues past 10 bytes")
}

func captureLengthDelimited(in Readable, maxSize uint) (Bytes, error) {
	prefix, err := captureVarint(in)
	if err != nil {
		return Bytes{}, err
	}
	length, _, err := prefix.GetVarInt64(0, false)
	if err != nil {
		return Bytes{}, err
	}
	if length < 0 || uint64(length) > uint64(maxSize) {
		return Bytes{}, newError(KindSizeLimit, in.Position(), "length-delimited payload of %d bytes exceeds max_size %d", length, maxSize)
	}
	body, err := in.ReadBytesAsBytes(int(length))
	if err != nil {
		return Bytes{}, err
	}
	// The length prefix is kept exactly as it appeared on the wire, so a
	// non-minimal prefix is re-emitted unchanged.
	return prefix.AppendBytes(body), nil
}

// FieldHandler decodes one known field's payload, given its tag, and
// reports whether it recognized the field number. Unrecognized fields are
// left for [ParseLoop] to skip or capture.
type FieldHandler func(tag Tag, in Readable, depth uint, opts *ParseOptions) (handled bool, err error)

// ParseLoop implements the core field dispatch loop: read a tag,
// hand it to handle for schema-specific decoding, and — when handle
// reports it did not recognize the field — either capture it into unknown
// (when enabled) or discard it. It runs until in is exhausted.
// Malformed-encoding, size-limit and max-depth failures are returned
// wrapped in a *[ParseError]; other failures are returned unchanged.
func ParseLoop(in Readable, opts ParseOptions, depth uint, unknown *UnknownFields, handle FieldHandler) (err error) {
	defer func() {
		var pe *ParseError
		var e *Error
		if err == nil || errors.As(err, &pe) || !errors.As(err, &e) {
			return
		}
		switch e.Kind {
		case KindMalformedEncoding, KindSizeLimit, KindMaxDepth:
			err = &ParseError{cause: e}
		}
	}()
	for in.HasRemaining() {
		tag, err := ReadTag(in)
		if err != nil {
			return err
		}
		handled, err := handle(tag, in, depth, &opts)
		if err != nil {
			return err
		}
		if handled {
			continue
		}
		if opts.ParseUnknownFields {
			payload, err := CaptureField(in, tag.WireType, opts.MaxSize)
			if err != nil {
				return err
			}
			if unknown != nil {
				unknown.Add(tag.Number, tag.WireType, payload)
			}
			continue
		}
		if err := SkipField(in, tag.WireType, opts.MaxSize); err != nil {
			return err
		}
	}
	return nil
}
