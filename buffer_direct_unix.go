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

//go:build unix

package pbj

import "golang.org/x/sys/unix"

// directAlloc maps an anonymous, zero-filled region of the requested size
// directly with the kernel, bypassing the Go heap and its garbage
// collector entirely. unix.Mmap already hands back a real []byte header
// over that mapping, so the rest of [buffer] treats it exactly like any
// other backing array. A zero-length mapping is rejected by mmap itself,
// so capacity 0 is special-cased to an empty, already-"valid" slice.
func directAlloc(capacity int) ([]byte, func() error, error) {
	if capacity == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	arr, err := unix.Mmap(-1, 0, capacity, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, nil, err
	}
	return arr, func() error { return unix.Munmap(arr) }, nil
}
