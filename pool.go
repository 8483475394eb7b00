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
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/hashgraph/pbj-go/internal/dbg"
	"github.com/hashgraph/pbj-go/internal/sync2"
)

// defaultSubBufferCapacity sizes a fresh pooled sub-buffer: large enough
// for the overwhelming majority of submessages encountered in practice. A
// message that measures larger than this is simply allocated outside the
// pool by the caller (see MeasureRecord-first callers in [Codec]
// implementations); the pool never grows a buffer in place.
const defaultSubBufferCapacity = 4096

// subBufferPool is process-wide but backed by [sync.Pool], which Go
// shards per-P internally: in practice each goroutine scheduled on a
// distinct P draws from its own free list, giving thread-local reuse
// without this package managing per-goroutine state itself.
var subBufferPool = sync2.Pool[buffer]{
	New: func() *buffer {
		arr := make([]byte, defaultSubBufferCapacity)
		return &buffer{arr: arr, pos: 0, lim: len(arr), kind: variantHeap}
	},
	Reset: func(b *buffer) {
		b.pos = 0
		b.lim = len(b.arr)
	},
}

// CheckoutSubBuffer returns a reset, pool-owned [BufferedData] suitable
// for serializing one submessage before its length is known, so the
// eventual length-delimited tag can be written with the real length
// instead of a placeholder. The caller MUST call the returned release
// function exactly once when done; the buffer must not be retained past
// that call.
//
// If a submessage turns out to need more than [defaultSubBufferCapacity]
// bytes, writing into the checked-out buffer fails with [KindOverflow];
// the caller should fall back to [Allocate] with a measured size instead
// of growing the pooled buffer.
func CheckoutSubBuffer() (buf BufferedData, release func()) {
	v, drop := subBufferPool.Get()
	dbg.Log("pool.checkout", "%v", dbg.Dict("subBuffer", "capacity", v.Capacity()))
	return v, func() {
		dbg.Log("pool.release", "%v", dbg.Dict("subBuffer", "position", v.Position()))
		drop()
	}
}

// CheckoutSubBufferSized is [CheckoutSubBuffer], but lets a caller that
// already knows an approximate wire size (see [ParseOptions.SizeHint])
// skip the pool entirely when that size exceeds what the pool hands out,
// avoiding the overflow-then-fallback round trip. When hint is within the
// pool's capacity, this is identical to [CheckoutSubBuffer].
func CheckoutSubBufferSized(hint int) (buf BufferedData, release func()) {
	if hint <= defaultSubBufferCapacity {
		return CheckoutSubBuffer()
	}
	dbg.Log("pool.checkout", "%v", dbg.Dict("oversizedSubBuffer", "hint", hint))
	b := &buffer{arr: make([]byte, hint), pos: 0, lim: hint, kind: variantHeap}
	return b, func() {}
}

// directSlots bounds the number of concurrently live off-heap
// [AllocateDirect] buffers, since each one holds a real OS memory mapping
// rather than heap memory the garbage collector can reclaim under
// pressure. [AllocateDirect] blocks until a slot is free; the codec core
// offers no cooperative cancellation at this layer, so there is no
// context to thread through here either.
var directSlots = semaphore.NewWeighted(maxOutstandingDirectBuffers)

// maxOutstandingDirectBuffers is the width of the [directSlots] semaphore.
const maxOutstandingDirectBuffers = 256

func acquireDirectSlot() {
	_ = directSlots.Acquire(context.Background(), 1)
	dbg.Log("pool.direct", "acquired a direct-buffer slot")
}

func releaseDirectSlot() {
	directSlots.Release(1)
	dbg.Log("pool.direct", "released a direct-buffer slot")
}
