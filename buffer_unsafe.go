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
	"unsafe"

	"github.com/hashgraph/pbj-go/internal/xunsafe"
)

// hostLittleEndian reports whether this process is running on a
// little-endian architecture. Computed once; every amd64 and arm64 build
// — the targets this fast path exists for — is little-endian.
var hostLittleEndian = func() bool {
	var probe uint16 = 1
	return *(*byte)(unsafe.Pointer(&probe)) == 1
}()

// unsafeReadUint32 loads a raw little- or big-endian uint32 at offset
// directly off arr's backing array, skipping the byte-by-byte assembly
// [decodeUint32] does, when the requested order matches the host's native
// order. It falls back to the portable path otherwise, so it is always
// correct, never merely fast.
func unsafeReadUint32(arr []byte, offset int, order Endian) uint32 {
	if order == LittleEndian && hostLittleEndian {
		return xunsafe.ByteLoad[uint32](&arr[0], offset)
	}
	return decodeUint32(arr[offset:offset+4], order)
}

// unsafeReadUint64 is [unsafeReadUint32] for the 8-byte fixed-width fields.
func unsafeReadUint64(arr []byte, offset int, order Endian) uint64 {
	if order == LittleEndian && hostLittleEndian {
		return xunsafe.ByteLoad[uint64](&arr[0], offset)
	}
	return decodeUint64(arr[offset:offset+8], order)
}

// unsafeWriteUint32 is the write-side counterpart of [unsafeReadUint32].
func unsafeWriteUint32(arr []byte, offset int, v uint32, order Endian) {
	if order == LittleEndian && hostLittleEndian {
		xunsafe.ByteStore(&arr[0], offset, v)
		return
	}
	encodeUint32(arr[offset:offset+4], v, order)
}

// unsafeWriteUint64 is the write-side counterpart of [unsafeReadUint64].
func unsafeWriteUint64(arr []byte, offset int, v uint64, order Endian) {
	if order == LittleEndian && hostLittleEndian {
		xunsafe.ByteStore(&arr[0], offset, v)
		return
	}
	encodeUint64(arr[offset:offset+8], v, order)
}
