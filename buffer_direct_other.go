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

//go:build !unix

package pbj

// directAlloc falls back to a plain heap allocation on platforms without
// an mmap-backed implementation (see buffer_direct_unix.go). The resulting
// [BufferedData] is still tagged variantDirect and behaves identically;
// it simply isn't actually off-heap here.
func directAlloc(capacity int) ([]byte, func() error, error) {
	return make([]byte, capacity), func() error { return nil }, nil
}
