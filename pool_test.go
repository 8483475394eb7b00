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

func TestCheckoutSubBufferIsResetBetweenUses(t *testing.T) {
	t.Parallel()

	buf, release := pbj.CheckoutSubBuffer()
	require.NoError(t, buf.WriteUnsignedByte(0xFF))
	assert.Equal(t, 1, buf.Position())
	release()

	buf2, release2 := pbj.CheckoutSubBuffer()
	defer release2()
	assert.Equal(t, 0, buf2.Position(), "a checked-out buffer must start reset")
	assert.Equal(t, buf2.Capacity(), buf2.Limit())
}

func TestCheckoutSubBufferOverflowsPastDefaultCapacity(t *testing.T) {
	t.Parallel()

	buf, release := pbj.CheckoutSubBuffer()
	defer release()

	_, err := buf.WriteBytes(make([]byte, buf.Capacity()+1))
	require.Error(t, err)
	kind, ok := pbj.ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, pbj.KindOverflow, kind)
}

func TestAllocateDirectRoundTrip(t *testing.T) {
	t.Parallel()

	buf, err := pbj.AllocateDirect(64)
	require.NoError(t, err)
	defer func() { assert.NoError(t, pbj.Release(buf)) }()

	require.NoError(t, buf.WriteInt64(123456789, pbj.LittleEndian))
	buf.Flip()
	v, err := buf.ReadInt64(pbj.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, int64(123456789), v)
}
