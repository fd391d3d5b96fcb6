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

package types

// Square is an index into the 64 squares of a chess board, numbered
// rank-major with a8 = 0 and h1 = 63: rank = sq/8 (0 == rank 8), file =
// sq%8 (0 == file a).
type Square int8

// Square constants for the named squares, plus SqNone as the sentinel for
// "no square" (e.g. no en-passant target).
//noinspection GoUnusedConst
const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqNone
	SqLength = 64
)

// IsValid returns true if sq is a real board square (0..63).
func (sq Square) IsValid() bool {
	return sq >= SqA8 && sq <= SqH1
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of sq (0 == rank 8 ... 7 == rank 1).
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// Bb returns the single-bit Bitboard for sq.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// MakeSquare builds a Square from a File and a Rank.
func MakeSquare(f File, r Rank) Square {
	return Square(int(r)<<3 + int(f))
}

// SquareFromString parses an algebraic square name (e.g. "e4") into a
// Square. Returns SqNone for anything malformed.
func SquareFromString(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := FileFromChar(s[0])
	r := RankFromChar(s[1])
	if f == FileNone || r == RankNone {
		return SqNone
	}
	return MakeSquare(f, r)
}

// String returns the algebraic notation of sq (e.g. "e4"), or "-" for
// SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// FileDistance returns the absolute file distance between two squares.
func FileDistance(s1, s2 Square) int {
	d := int(s1.FileOf()) - int(s2.FileOf())
	if d < 0 {
		return -d
	}
	return d
}

// RankDistance returns the absolute rank distance between two squares.
func RankDistance(s1, s2 Square) int {
	d := int(s1.RankOf()) - int(s2.RankOf())
	if d < 0 {
		return -d
	}
	return d
}

// SquareDistance returns the Chebyshev distance between two squares (the
// number of king moves needed to go from one to the other).
func SquareDistance(s1, s2 Square) int {
	fd := FileDistance(s1, s2)
	rd := RankDistance(s1, s2)
	if fd > rd {
		return fd
	}
	return rd
}

// directionFileDelta gives the expected signed file delta for each of the
// eight ray directions, used by To() to reject moves that would wrap around
// the east/west edge of the board.
var directionFileDelta = map[Direction]int{
	North:     0,
	South:     0,
	East:      1,
	West:      -1,
	NorthEast: 1,
	NorthWest: -1,
	SouthEast: 1,
	SouthWest: -1,
}

// To returns the square reached by stepping one unit in Direction d from
// sq, or SqNone if that step would leave the board (including wrapping
// around a file edge).
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	to := Square(int(sq) + int(d))
	if !to.IsValid() {
		return SqNone
	}
	wantFileDelta, ok := directionFileDelta[d]
	if !ok {
		return SqNone
	}
	if int(to.FileOf())-int(sq.FileOf()) != wantFileDelta {
		return SqNone
	}
	return to
}
