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

// Package pbj is a standalone Protocol Buffers wire-format runtime: an
// immutable byte-sequence type, a cursor-bearing buffer with heap, direct,
// and unsafe-heap variants, and the scalar/tag/length-delimited codec
// rules generated message types are built on top of.
//
// It does not generate code from .proto schemas and does not interpret
// messages via reflection; a message type is any Go type whose author has
// hand-written (or generated through some other means) a [Codec]
// implementation using the helpers in codec.go, unknown.go, and field.go.
package pbj
