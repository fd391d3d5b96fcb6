//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package assert provides cheap, compiled-out-by-default invariant checks.
// Internal invariant violations (bitboard/piece-array divergence, pop_lsb
// on an empty bitboard, make/undo mismatch) are programming errors, not
// expected runtime conditions, so they panic rather than return an error --
// but only when DEBUG is true. Release builds set DEBUG to false so the
// check (and the formatting work behind it) costs nothing.
package assert

import "fmt"

// DEBUG toggles whether Assert panics. Flip to false for a release build.
const DEBUG = true

// Assert panics with a formatted message if cond is false. Only called
// when assert.DEBUG is true; callers are expected to guard calls with
// `if assert.DEBUG { ... }` so the format arguments are never evaluated in
// release builds.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
