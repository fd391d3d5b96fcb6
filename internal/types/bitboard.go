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

// Package types holds the foundational value types shared by the whole
// engine: squares, colors, pieces, bitboards, moves and the precomputed
// attack tables built on top of them.
package types

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares; bit i corresponds to Square(i).
type Bitboard uint64

// Bitboard constants.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// File masks.
var (
	FileA_Bb Bitboard
	FileB_Bb Bitboard
	FileC_Bb Bitboard
	FileD_Bb Bitboard
	FileE_Bb Bitboard
	FileF_Bb Bitboard
	FileG_Bb Bitboard
	FileH_Bb Bitboard
	fileBb   [FileLength]Bitboard
)

// Rank masks, indexed by the spec's rank ordering (Rank8 == 0 ... Rank1 ==
// 7).
var (
	Rank8_Bb Bitboard
	Rank7_Bb Bitboard
	Rank6_Bb Bitboard
	Rank5_Bb Bitboard
	Rank4_Bb Bitboard
	Rank3_Bb Bitboard
	Rank2_Bb Bitboard
	Rank1_Bb Bitboard
	rankBb   [int(RankLength)]Bitboard
)

// PushSquare sets the bit for sq.
func (bb *Bitboard) PushSquare(sq Square) {
	*bb |= sq.Bb()
}

// PopSquare clears the bit for sq.
func (bb *Bitboard) PopSquare(sq Square) {
	*bb &^= sq.Bb()
}

// Has returns true if the bit for sq is set.
func (bb Bitboard) Has(sq Square) bool {
	return bb&sq.Bb() != 0
}

// PopCount returns the number of set bits.
func (bb Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(bb))
}

// Lsb returns the square of the least significant set bit. Undefined
// (returns SqNone) if bb is empty.
func (bb Bitboard) Lsb() Square {
	if bb == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(bb)))
}

// Msb returns the square of the most significant set bit. Undefined
// (returns SqNone) if bb is empty.
func (bb Bitboard) Msb() Square {
	if bb == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(bb)))
}

// PopLsb returns the square of the least significant set bit and clears it
// in *bb. Precondition: *bb != 0.
func (bb *Bitboard) PopLsb() Square {
	sq := bb.Lsb()
	*bb &= *bb - 1
	return sq
}

// ShiftBitboard shifts bb one step in Direction d, masking off squares that
// would wrap around a file edge.
func ShiftBitboard(bb Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return bb >> 8
	case South:
		return bb << 8
	case East:
		return (bb &^ FileH_Bb) << 1
	case West:
		return (bb &^ FileA_Bb) >> 1
	case NorthEast:
		return (bb &^ FileH_Bb) >> 7
	case NorthWest:
		return (bb &^ FileA_Bb) >> 9
	case SouthEast:
		return (bb &^ FileH_Bb) << 9
	case SouthWest:
		return (bb &^ FileA_Bb) << 7
	default:
		return 0
	}
}

// SquaresBb returns a bitboard with exactly the given squares set.
func SquaresBb(squares ...Square) Bitboard {
	var bb Bitboard
	for _, sq := range squares {
		bb.PushSquare(sq)
	}
	return bb
}

// String returns a compact hex representation of bb.
func (bb Bitboard) String() string {
	return fmt.Sprintf("0x%016X", uint64(bb))
}

// StringBoard renders bb as an 8x8 grid of '1'/'.' with rank 8 on top,
// matching the square numbering (rank index 0 == rank 8).
func (bb Bitboard) StringBoard() string {
	var s strings.Builder
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			sq := MakeSquare(File(f), Rank(r))
			if bb.Has(sq) {
				s.WriteString("1 ")
			} else {
				s.WriteString(". ")
			}
		}
		s.WriteString("\n")
	}
	return s.String()
}
