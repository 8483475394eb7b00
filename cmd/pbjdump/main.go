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

// pbjdump cleans up a raw protobuf wire stream into something readable,
// field by field, without a schema.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	pbj "github.com/hashgraph/pbj-go"
)

var (
	maxDepth = flag.Uint("max-depth", 32, "nested MESSAGE recursion ceiling")
	maxSize  = flag.Uint("max-size", 64<<20, "length-delimited payload ceiling, in bytes")
	framed   = flag.Bool("framed", true, "stdin is a stream of varint-length-delimited records, one message per record; if false, stdin is a single message")
)

// record is one top-level message read off stdin, identified by a
// synthetic id so multiple records in one stream can be told apart in the
// dump output.
type record struct {
	id    uuid.UUID
	bytes pbj.Bytes
}

// readRecords splits stdin into records, per the -framed flag.
func readRecords(r io.Reader) ([]record, error) {
	raw, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}

	if !*framed {
		return []record{{id: uuid.New(), bytes: pbj.Wrap(raw)}}, nil
	}

	var records []record
	in := pbj.Wrap(raw).ToReadableSequential()
	for in.HasRemaining() {
		msg, err := pbj.ReadLengthDelimited(in, *maxSize)
		if err != nil {
			return nil, fmt.Errorf("reading record %d: %w", len(records), err)
		}
		records = append(records, record{id: uuid.New(), bytes: msg})
	}
	return records, nil
}

// dumpField writes one decoded field line to out. It makes no attempt to
// interpret a LENGTH_DELIMITED payload as a nested message; it shows the
// raw bytes and leaves nesting to a second pass over that slice, invoked
// with -framed=false.
func dumpField(out io.Writer, indent string, tag pbj.Tag, payload pbj.Bytes) error {
	switch tag.WireType {
	case pbj.WireVarint:
		v, _, err := payload.GetVarInt64(0, false)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%sfield %d: varint = %d\n", indent, tag.Number, v)
		return err
	case pbj.WireFixed32:
		v, err := payload.Int32(0, pbj.LittleEndian)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%sfield %d: fixed32 = %d (0x%08x)\n", indent, tag.Number, v, uint32(v))
		return err
	case pbj.WireFixed64:
		v, err := payload.Int64(0, pbj.LittleEndian)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%sfield %d: fixed64 = %d (0x%016x)\n", indent, tag.Number, v, uint64(v))
		return err
	case pbj.WireLengthDelimited:
		_, err := fmt.Fprintf(out, "%sfield %d: length-delimited, %d bytes = %x\n", indent, tag.Number, payload.Length(), snapshot(payload))
		return err
	default:
		_, err := fmt.Fprintf(out, "%sfield %d: unsupported wire type %d\n", indent, tag.Number, tag.WireType)
		return err
	}
}

// dumpRecord decodes one message with no schema: every field is unknown,
// so the dump walks pbj.ParseLoop with a handler that always declines,
// relying entirely on the capture path to surface tag/wire-type/payload.
func dumpRecord(out io.Writer, rec record) error {
	fmt.Fprintf(out, "record %s (%d bytes)\n", rec.id, rec.bytes.Length())

	opts := pbj.ResolveParseOptions(pbj.WithUnknownFields(true), pbj.WithMaxDepth(*maxDepth), pbj.WithMaxSize(*maxSize))
	var unknown pbj.UnknownFields
	never := func(pbj.Tag, pbj.Readable, uint, *pbj.ParseOptions) (bool, error) { return false, nil }
	if err := pbj.ParseLoop(rec.bytes.ToReadableSequential(), opts, 0, &unknown, never); err != nil {
		return err
	}

	for _, f := range unknown.Sorted() {
		if err := dumpField(out, "  ", pbj.Tag{Number: f.Number, WireType: f.WireType}, f.Payload); err != nil {
			return err
		}
	}
	return nil
}

func snapshot(b pbj.Bytes) []byte {
	out := make([]byte, b.Length())
	_, _ = b.CopyBytes(0, out)
	return out
}

func run(in io.Reader, out io.Writer) error {
	records, err := readRecords(in)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if err := dumpRecord(out, rec); err != nil {
			return fmt.Errorf("record %s: %w", rec.id, err)
		}
	}
	return nil
}

func main() {
	flag.Parse()
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
