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

package varint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hashgraph/pbj-go/internal/varint"
)

func TestBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{^uint64(0), []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, varint.Append(nil, c.v))
		assert.Equal(t, len(c.want), varint.Len(c.v))

		v, n, err := varint.Consume(c.want)
		assert.NoError(t, err)
		assert.Equal(t, c.v, v)
		assert.Equal(t, len(c.want), n)
	}
}

func TestOverflowAfterTenBytes(t *testing.T) {
	t.Parallel()

	buf := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	_, _, err := varint.Consume(buf)
	assert.ErrorIs(t, err, varint.ErrOverflow)
}

func TestTruncated(t *testing.T) {
	t.Parallel()

	_, _, err := varint.Consume([]byte{0x80, 0x80})
	assert.ErrorIs(t, err, varint.ErrTruncated)
}

func TestRoundTripFuzzLike(t *testing.T) {
	t.Parallel()

	values := []uint64{0, 1, 2, 300, 1 << 20, 1<<63 - 1, ^uint64(0)}
	for _, want := range values {
		buf := varint.Append(nil, want)
		// Pad so both the fast and slow decode paths are exercised.
		padded := append(append([]byte{}, buf...), make([]byte, varint.MaxLen)...)

		got, n, err := varint.Consume(padded)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, len(buf), n)

		got, n, err = varint.Consume(buf)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, len(buf), n)
	}
}
