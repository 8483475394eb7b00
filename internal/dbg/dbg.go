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

// Package dbg includes debugging helpers for tracing buffer growth, pool
// checkout/release, and parse-guard trips. Logging is a no-op unless
// PBJ_DEBUG is set in the environment, so callers should not gate calls to
// Log behind Enabled themselves except to avoid formatting costs.
package dbg

import (
	"fmt"
	"os"
	"sync"
)

var (
	once    sync.Once
	enabled bool
)

// Enabled reports whether debug logging is turned on for this process.
func Enabled() bool {
	once.Do(func() {
		enabled = os.Getenv("PBJ_DEBUG") != ""
	})
	return enabled
}

// Log prints a debugging line to stderr, tagged with the given operation
// name. It is a no-op unless [Enabled] returns true.
func Log(operation string, format string, args ...any) {
	if !Enabled() {
		return
	}
	fmt.Fprintf(os.Stderr, "pbj: %s: %s\n", operation, fmt.Sprintf(format, args...))
}

// Formatter is a fmt.Formatter implementation that just calls a function;
// useful for deferring formatting work until (and unless) it is actually
// printed by Log.
type Formatter func(s fmt.State)

// Format implements [fmt.Formatter].
func (f Formatter) Format(s fmt.State, verb rune) {
	if verb != 'v' {
		fmt.Fprintf(s, "%%!%c(dbg.Formatter)", verb)
		return
	}
	f(s)
}

func (f Formatter) String() string { return fmt.Sprint(f) }

// Dict pretty-prints the given key/value pairs as a dictionary, with an
// optional prefix label.
func Dict(prefix any, kv ...any) Formatter {
	return Formatter(func(s fmt.State) {
		if len(kv)%2 != 0 {
			panic("dbg: length must be divisible by 2")
		}

		if prefix == nil {
			prefix = ""
		}

		first := true
		fmt.Fprintf(s, "%v{", prefix)
		for i := range len(kv) / 2 {
			k := kv[2*i]
			v := kv[2*i+1]
			if v == nil {
				continue
			}

			if !first {
				fmt.Fprint(s, ", ")
			}
			first = false
			fmt.Fprintf(s, "%v: %v", k, v)
		}
		fmt.Fprint(s, "}")
	})
}
