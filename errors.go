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
	"errors"
	"fmt"
)

// Kind is a closed enumeration of the ways a pbj operation can fail.
type Kind int

const (
	// KindUnderflow means a read required more bytes than remain up to
	// the limit.
	KindUnderflow Kind = iota + 1
	// KindOverflow means a write required more bytes than remain up to
	// the limit.
	KindOverflow
	// KindOutOfBounds means an absolute offset/length pair falls outside
	// the addressed region.
	KindOutOfBounds
	// KindArgument means a negative length or otherwise invalid call
	// parameter was supplied.
	KindArgument
	// KindMalformedEncoding means a varint ran past 10 bytes, an
	// unsupported wire type (group start/end) was encountered, or a BOOL
	// field held a byte other than 0 or 1.
	KindMalformedEncoding
	// KindSizeLimit means a length-delimited prefix exceeded the
	// configured maximum payload size.
	KindSizeLimit
	// KindMaxDepth means nested MESSAGE recursion exceeded the
	// configured maximum depth.
	KindMaxDepth
	// KindIO means the underlying stream or channel reported a failure.
	KindIO
	// KindInternal means an invariant was violated, such as a Bytes
	// implementation writing fewer bytes than its reported length.
	KindInternal
)

var kindNames = [...]string{
	KindUnderflow:         "underflow",
	KindOverflow:          "overflow",
	KindOutOfBounds:       "out-of-bounds",
	KindArgument:          "argument",
	KindMalformedEncoding: "malformed-encoding",
	KindSizeLimit:         "size-limit",
	KindMaxDepth:          "max-depth",
	KindIO:                "i-o",
	KindInternal:          "internal",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the concrete error type returned by every fallible pbj
// operation. It always carries a closed [Kind] and records the byte offset
// at which the failure was detected, when known: the cursor position for a
// sequential read or write, or the requested absolute offset for a
// random-access one.
type Error struct {
	Kind   Kind
	Offset int // -1 if not applicable.
	msg    string
}

// newError constructs an *Error with the given kind and formatted detail.
func newError(kind Kind, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("pbj: %s at offset %d: %s", e.Kind, e.Offset, e.msg)
	}
	return fmt.Sprintf("pbj: %s: %s", e.Kind, e.msg)
}

// Is reports whether target is (or wraps) an *Error of the same Kind as e,
// so that errors.Is(err, &pbj.Error{Kind: pbj.KindUnderflow}) matches any
// underflow failure. For a direct Kind comparison, see [ErrorKind].
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// ErrorKind returns the [Kind] of err if it is (or wraps) a *pbj.Error, and
// ok=false otherwise.
func ErrorKind(err error) (kind Kind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// ParseError is returned by [Codec].Parse implementations. It always wraps
// an underlying *[Error] describing the specific failure kind:
// malformed-encoding, size-limit, and max-depth failures from the wire
// codec are surfaced this way, while underflow/overflow/out-of-bounds
// propagate unchanged to signal caller misuse rather than a data error.
type ParseError struct {
	cause *Error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "pbj: parse failed: " + e.cause.Error()
}

// Unwrap supports errors.Is/errors.As against the underlying *Error.
func (e *ParseError) Unwrap() error { return e.cause }

// Kind returns the failure kind of the underlying error.
func (e *ParseError) Kind() Kind { return e.cause.Kind }
