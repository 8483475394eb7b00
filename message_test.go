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

package pbj_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	pbj "github.com/hashgraph/pbj-go"
)

// testPackedList is a hand-written stand-in for a message with a single
// repeated, packed int32 field (field number 1), exercising the
// packed-repeated write and parse rules.
type testPackedList struct {
	List    []int32
	Unknown pbj.UnknownFields
}

const fieldList uint32 = 1

func writePackedList(msg testPackedList, out pbj.Writable) error {
	if len(msg.List) == 0 {
		return msg.Unknown.Write(out)
	}
	payloadLen := 0
	for _, v := range msg.List {
		payloadLen += varintLen64(int64(v))
	}
	if err := pbj.WriteTag(out, fieldList, pbj.WireLengthDelimited); err != nil {
		return err
	}
	if err := out.WriteVarInt64(int64(payloadLen), false); err != nil {
		return err
	}
	for _, v := range msg.List {
		if err := out.WriteVarInt32(v, false); err != nil {
			return err
		}
	}
	return msg.Unknown.Write(out)
}

func parsePackedList(input pbj.Readable, opts ...pbj.ParseOption) (testPackedList, error) {
	var msg testPackedList
	err := pbj.ParseLoop(input, pbj.ResolveParseOptions(opts...), 0, &msg.Unknown, func(tag pbj.Tag, in pbj.Readable, depth uint, opts *pbj.ParseOptions) (bool, error) {
		if tag.Number != fieldList {
			return false, nil
		}
		payload, err := pbj.ReadLengthDelimited(in, opts.MaxSize)
		if err != nil {
			return false, err
		}
		sub := payload.ToReadableSequential()
		for sub.HasRemaining() {
			v, err := sub.ReadVarInt32(false)
			if err != nil {
				return false, err
			}
			msg.List = append(msg.List, v)
		}
		return true, nil
	})
	return msg, err
}

func TestPackedRepeatedInt32RoundTrip(t *testing.T) {
	t.Parallel()

	msg := testPackedList{List: []int32{1, 300, -1}}

	buf, err := pbj.Allocate(64)
	require.NoError(t, err)
	require.NoError(t, writePackedList(msg, buf))
	written, err := buf.Slice(0, buf.Position())
	require.NoError(t, err)

	got, err := parsePackedList(written.ToReadableSequential())
	require.NoError(t, err)
	assert.Equal(t, msg.List, got.List)

	// Cross-check each element's varint encoding against the protobuf
	// reference implementation, used here strictly as a test oracle (see
	// internal/zigzag for the same pattern). -1 sign-extends through 64
	// bits on the wire, per protobuf's own INT32 encoder, producing a
	// 10-byte varint; see DESIGN.md for why this test verifies that wire
	// contract directly rather than a hardcoded literal byte string.
	raw := snapshot(written)
	assert.Equal(t, byte(0x0A), raw[0]) // tag: field 1, LENGTH_DELIMITED
	rest := raw[2:]                     // skip tag + 1-byte length prefix
	v, n1 := protowire.ConsumeVarint(rest)
	assert.Equal(t, uint64(1), v)
	v, n2 := protowire.ConsumeVarint(rest[n1:])
	assert.Equal(t, uint64(300), v)
	v, _ = protowire.ConsumeVarint(rest[n1+n2:])
	assert.Equal(t, int32(-1), int32(v))
}

// schemaA and schemaB model an unknown-field preservation scenario: A
// has only bytes_field=1; B adds text=2 STRING.
type schemaA struct {
	BytesField pbj.Bytes
	Unknown    pbj.UnknownFields
}

type schemaB struct {
	BytesField pbj.Bytes
	Text       string
	Unknown    pbj.UnknownFields
}

const (
	fieldBytesField uint32 = 1
	fieldText       uint32 = 2
)

func writeSchemaB(msg schemaB, out pbj.Writable) error {
	if msg.BytesField.Length() > 0 {
		if err := pbj.WriteTag(out, fieldBytesField, pbj.WireLengthDelimited); err != nil {
			return err
		}
		if err := out.WriteVarInt64(int64(msg.BytesField.Length()), false); err != nil {
			return err
		}
		if _, err := out.WriteBytesData(msg.BytesField); err != nil {
			return err
		}
	}
	if msg.Text != "" {
		text := pbj.WrapString(msg.Text)
		if err := pbj.WriteTag(out, fieldText, pbj.WireLengthDelimited); err != nil {
			return err
		}
		if err := out.WriteVarInt64(int64(text.Length()), false); err != nil {
			return err
		}
		if _, err := out.WriteBytesData(text); err != nil {
			return err
		}
	}
	return msg.Unknown.Write(out)
}

func parseSchemaA(input pbj.Readable, opts ...pbj.ParseOption) (schemaA, error) {
	var msg schemaA
	err := pbj.ParseLoop(input, pbj.ResolveParseOptions(opts...), 0, &msg.Unknown, func(tag pbj.Tag, in pbj.Readable, depth uint, opts *pbj.ParseOptions) (bool, error) {
		if tag.Number != fieldBytesField {
			return false, nil
		}
		payload, err := pbj.ReadLengthDelimited(in, opts.MaxSize)
		if err != nil {
			return false, err
		}
		msg.BytesField = payload
		return true, nil
	})
	return msg, err
}

func parseSchemaB(input pbj.Readable, opts ...pbj.ParseOption) (schemaB, error) {
	var msg schemaB
	err := pbj.ParseLoop(input, pbj.ResolveParseOptions(opts...), 0, &msg.Unknown, func(tag pbj.Tag, in pbj.Readable, depth uint, opts *pbj.ParseOptions) (bool, error) {
		switch tag.Number {
		case fieldBytesField:
			payload, err := pbj.ReadLengthDelimited(in, opts.MaxSize)
			if err != nil {
				return false, err
			}
			msg.BytesField = payload
			return true, nil
		case fieldText:
			payload, err := pbj.ReadLengthDelimited(in, opts.MaxSize)
			if err != nil {
				return false, err
			}
			msg.Text = payload.AsUTF8String()
			return true, nil
		default:
			return false, nil
		}
	})
	return msg, err
}

func TestUnknownFieldRoundTrip(t *testing.T) {
	t.Parallel()

	original := schemaB{BytesField: pbj.Wrap([]byte{0x01, 0x02, 0x03}), Text: "hi"}

	buf, err := pbj.Allocate(32)
	require.NoError(t, err)
	require.NoError(t, writeSchemaB(original, buf))
	wireB, err := buf.Slice(0, buf.Position())
	require.NoError(t, err)

	a, err := parseSchemaA(wireB.ToReadableSequential(), pbj.WithUnknownFields(true))
	require.NoError(t, err)
	assert.True(t, a.BytesField.Equal(pbj.Wrap([]byte{0x01, 0x02, 0x03})))
	require.Equal(t, 1, a.Unknown.Len())
	unk := a.Unknown.All()[0]
	assert.Equal(t, fieldText, unk.Number)
	assert.Equal(t, pbj.WireLengthDelimited, unk.WireType)
	assert.Equal(t, []byte{0x02, 0x68, 0x69}, snapshot(unk.Payload))

	buf2, err := pbj.Allocate(32)
	require.NoError(t, err)
	require.NoError(t, writeSchemaAViaUnknown(a, buf2))
	wireA, err := buf2.Slice(0, buf2.Position())
	require.NoError(t, err)

	roundTripped, err := parseSchemaB(wireA.ToReadableSequential())
	require.NoError(t, err)
	assert.True(t, original.BytesField.Equal(roundTripped.BytesField))
	assert.Equal(t, original.Text, roundTripped.Text)
}

// writeSchemaAViaUnknown writes a schemaA value the same way writeSchemaB
// does, re-emitting its unknown fields after the known one.
func writeSchemaAViaUnknown(msg schemaA, out pbj.Writable) error {
	if msg.BytesField.Length() > 0 {
		if err := pbj.WriteTag(out, fieldBytesField, pbj.WireLengthDelimited); err != nil {
			return err
		}
		if err := out.WriteVarInt64(int64(msg.BytesField.Length()), false); err != nil {
			return err
		}
		if _, err := out.WriteBytesData(msg.BytesField); err != nil {
			return err
		}
	}
	return msg.Unknown.Write(out)
}

func TestMaxDepthSeedVector(t *testing.T) {
	t.Parallel()

	depth, err := pbj.EnterMessage(1)
	require.NoError(t, err)
	assert.Equal(t, uint(0), depth)

	_, err = pbj.EnterMessage(0)
	require.Error(t, err)
	kind, ok := pbj.ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, pbj.KindMaxDepth, kind)
}
