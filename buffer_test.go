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

// variantCtors enumerates the three BufferedData constructors so every
// behavioral test below runs identically against all of them: heap,
// off-heap, and unsafe-fast-path must be indistinguishable to a caller.
func variantCtors(t *testing.T) map[string]func(int) pbj.BufferedData {
	t.Helper()
	return map[string]func(int) pbj.BufferedData{
		"heap": func(n int) pbj.BufferedData {
			b, err := pbj.Allocate(n)
			require.NoError(t, err)
			return b
		},
		"unsafe": func(n int) pbj.BufferedData {
			b, err := pbj.AllocateUnsafe(n)
			require.NoError(t, err)
			return b
		},
		"direct": func(n int) pbj.BufferedData {
			b, err := pbj.AllocateDirect(n)
			require.NoError(t, err)
			t.Cleanup(func() { _ = pbj.Release(b) })
			return b
		},
	}
}

func TestBufferCursorInvariants(t *testing.T) {
	t.Parallel()

	for name, newBuf := range variantCtors(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			b := newBuf(8)
			assert.Equal(t, 8, b.Capacity())
			assert.Equal(t, 0, b.Position())
			assert.Equal(t, 8, b.Limit())
			assert.Equal(t, 8, b.Remaining())
			assert.True(t, b.HasRemaining())

			require.NoError(t, b.WriteVarInt32(300, false))
			assert.Equal(t, 2, b.Position())

			b.Flip()
			assert.Equal(t, 0, b.Position())
			assert.Equal(t, 2, b.Limit())

			v, err := b.ReadVarInt32(false)
			require.NoError(t, err)
			assert.Equal(t, int32(300), v)
			assert.False(t, b.HasRemaining())

			b.Reset()
			assert.Equal(t, 8, b.Limit())
			assert.Equal(t, 0, b.Position())
		})
	}
}

func TestBufferFixedWidthRoundTrip(t *testing.T) {
	t.Parallel()

	for name, newBuf := range variantCtors(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			b := newBuf(16)
			require.NoError(t, b.WriteInt32(-1, pbj.LittleEndian))
			require.NoError(t, b.WriteInt64(0x0102030405060708, pbj.BigEndian))
			b.Flip()

			i32, err := b.ReadInt32(pbj.LittleEndian)
			require.NoError(t, err)
			assert.Equal(t, int32(-1), i32)

			i64, err := b.ReadInt64(pbj.BigEndian)
			require.NoError(t, err)
			assert.Equal(t, int64(0x0102030405060708), i64)
		})
	}
}

func TestBufferOverflowAndUnderflow(t *testing.T) {
	t.Parallel()

	b, err := pbj.Allocate(2)
	require.NoError(t, err)

	err = b.WriteInt32(1, pbj.LittleEndian)
	require.Error(t, err)
	kind, ok := pbj.ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, pbj.KindOverflow, kind)

	b.Reset()
	_ = b.SetLimit(0)
	_, err = b.ReadByte()
	require.Error(t, err)
	kind, ok = pbj.ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, pbj.KindUnderflow, kind)
}

func TestWrapBufferSharesBackingArray(t *testing.T) {
	t.Parallel()

	arr := make([]byte, 4)
	b := pbj.WrapBuffer(arr)
	require.NoError(t, b.WriteUnsignedByte(0xAB))
	assert.Equal(t, byte(0xAB), arr[0])
}
