//
// Harrier - a Go chess move-generation and search kernel
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

package types

// Color distinguishes the two sides of a chess game. Black is 0 and White is
// 1 so that a color can directly index the two-slot arrays used throughout
// (piecesBb[2], occupiedBb[2], kingSquare[2], ...).
type Color int8

// Color constants. Note the value assignment: White == 1, Black == 0.
const (
	Black Color = iota
	White
	ColorNone
	ColorLength = 2
)

// IsValid returns true if c is Black or White.
func (c Color) IsValid() bool {
	return c == Black || c == White
}

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return 1 - c
}

// String returns "w" or "b", the FEN side-to-move token.
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// ColorFromChar parses a FEN side-to-move token ("w"/"b") into a Color.
// Returns ColorNone on anything else.
func ColorFromChar(s string) Color {
	switch s {
	case "w":
		return White
	case "b":
		return Black
	default:
		return ColorNone
	}
}

// Direction returns the pawn-forward direction for this color: North for
// White (toward rank 8, the low end of the square index space), South for
// Black (toward rank 1).
func (c Color) Direction() Direction {
	if c == White {
		return North
	}
	return South
}

// PawnRank returns the rank index (0 == rank 8 ... 7 == rank 1) on which
// this color's pawns start.
func (c Color) PawnRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// PromotionRank returns the rank index this color's pawns promote on.
func (c Color) PromotionRank() Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}
