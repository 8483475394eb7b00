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

	pbj "github.com/hashgraph/pbj-go"
)

func TestBytesIdempotentEquality(t *testing.T) {
	t.Parallel()

	original := []byte("hyperledger")
	clone := append([]byte(nil), original...)

	a := pbj.Wrap(original)
	b := pbj.Wrap(clone)

	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.CompareTo(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestBytesSliceSharesBackingArray(t *testing.T) {
	t.Parallel()

	arr := []byte{10, 20, 30, 40, 50}
	whole := pbj.Wrap(arr)

	view, err := whole.Slice(1, 3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := view.GetByte(i)
		require.NoError(t, err)
		assert.Equal(t, int8(arr[1+i]), got)
	}

	arr[2] = 99
	got, err := view.GetByte(1)
	require.NoError(t, err)
	assert.Equal(t, int8(99), got, "Slice must share the backing array, not copy it")
}

func TestBytesMatchesPrefix(t *testing.T) {
	t.Parallel()

	x := pbj.Wrap([]byte("protocol-buffers"))

	prefix, err := x.Slice(0, len("protocol"))
	require.NoError(t, err)
	assert.True(t, x.MatchesPrefixBytes(prefix))

	notPrefix := pbj.WrapString("buffers")
	assert.False(t, x.MatchesPrefixBytes(notPrefix))
}

func TestBytesEndianDuality(t *testing.T) {
	t.Parallel()

	for _, order := range []pbj.Endian{pbj.LittleEndian, pbj.BigEndian} {
		buf, err := pbj.Allocate(12)
		require.NoError(t, err)
		require.NoError(t, buf.WriteInt32(-42, order))
		require.NoError(t, buf.WriteInt64(1<<40, order))
		view, err := buf.Slice(0, buf.Position())
		require.NoError(t, err)

		i32, err := view.Int32(0, order)
		require.NoError(t, err)
		assert.Equal(t, int32(-42), i32)

		i64, err := view.Int64(4, order)
		require.NoError(t, err)
		assert.Equal(t, int64(1<<40), i64)
	}
}

func TestBytesOutOfBounds(t *testing.T) {
	t.Parallel()

	x := pbj.WrapString("ab")
	_, err := x.GetByte(2)
	require.Error(t, err)
	kind, ok := pbj.ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, pbj.KindOutOfBounds, kind)

	_, err = x.Slice(1, 5)
	require.Error(t, err)
	kind, ok = pbj.ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, pbj.KindOutOfBounds, kind)
}

func TestBytesFromBase64AndHex(t *testing.T) {
	t.Parallel()

	b64, err := pbj.FromBase64("aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "hello", b64.AsUTF8String())

	hex, err := pbj.FromHex("68656c6c6f")
	require.NoError(t, err)
	assert.Equal(t, "hello", hex.AsUTF8String())
}

func TestBytesReplicateIsIndependent(t *testing.T) {
	t.Parallel()

	arr := []byte{1, 2, 3}
	view := pbj.Wrap(arr)
	copy2 := view.Replicate()

	arr[0] = 255
	got, err := copy2.GetByte(0)
	require.NoError(t, err)
	assert.Equal(t, int8(1), got)
}
