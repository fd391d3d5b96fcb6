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

// Package moveslice provides a scratch-reusable slice of Move, the data
// structure the move generator fills and the search iterates over.
package moveslice

import (
	"fmt"
	"sort"
	"strings"

	. "github.com/kjd-chess/harrier/internal/types"
)

// MoveSlice is a growable, scratch-reusable list of moves.
type MoveSlice []Move

// NewMoveSlice creates a new move slice with the given capacity and 0
// elements. Equivalent to MoveSlice(make([]Move, 0, cap)).
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored in the slice.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Cap returns the capacity of the slice.
func (ms *MoveSlice) Cap() int {
	return cap(*ms)
}

// PushBack appends a move at the end of the slice.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// PopBack removes and returns the move from the back of the slice. Panics
// if the slice is empty.
func (ms *MoveSlice) PopBack() Move {
	if len(*ms) <= 0 {
		panic("MoveSlice: PopBack() called on empty slice")
	}
	backMove := (*ms)[len(*ms)-1]
	*ms = (*ms)[:len(*ms)-1]
	return backMove
}

// At returns the move at index i without removing it. Panics on an
// out-of-bounds index.
func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		panic("MoveSlice: index out of bounds")
	}
	return (*ms)[i]
}

// Set stores move at index i. Panics on an out-of-bounds index.
func (ms *MoveSlice) Set(i int, m Move) {
	if i < 0 || i >= len(*ms) {
		panic("MoveSlice: index out of bounds")
	}
	(*ms)[i] = m
}

// Clone returns a deep copy of the slice.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]Move, ms.Len(), ms.Cap())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Equals returns true if both slices hold the same moves in the same
// order.
func (ms *MoveSlice) Equals(other *MoveSlice) bool {
	if ms.Len() != other.Len() {
		return false
	}
	for i, m := range *ms {
		if m != (*other)[i] {
			return false
		}
	}
	return true
}

// ForEach calls f with the index of each element, in stored order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for index := range *ms {
		f(index)
	}
}

// Clear removes all moves but keeps the underlying array, so repeated
// reuse at high frequency (one scratch MoveSlice per search ply) does not
// trigger garbage collection.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// MoveOrderKey ranks a move for ordering purposes: higher sorts first.
// Used by Sort to place captures before quiets and promotions before
// non-promotions, per the spec's minimum ordering requirement.
type MoveOrderKey func(m Move) int

// Sort stably reorders the slice from highest key to lowest, using a
// stable sort since move lists are short and move ordering only needs to
// be a partition, not a total order. Ties keep generation order.
func (ms *MoveSlice) Sort(key MoveOrderKey) {
	sort.SliceStable(*ms, func(i, j int) bool {
		return key((*ms)[i]) > key((*ms)[j])
	})
}

// CaptureBeforeQuietKey implements the spec's baseline ordering: captures
// and en-passant captures before quiets, promotions before non-promotions.
// isCapture reports whether m captures a piece on its destination square
// (the caller supplies this since MoveSlice has no board access).
func CaptureBeforeQuietKey(m Move, isCapture func(Move) bool) int {
	key := 0
	if m.IsEnPassant() || isCapture(m) {
		key += 2
	}
	if m.IsPromotion() {
		key++
	}
	return key
}

// String returns a human-readable representation of the move list.
func (ms *MoveSlice) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MoveList: [%d] { ", len(*ms))
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString(" }")
	return b.String()
}

// StringUci returns a space-separated list of the moves in UCI long
// algebraic form.
func (ms *MoveSlice) StringUci() string {
	var b strings.Builder
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.StringUci())
	}
	return b.String()
}
