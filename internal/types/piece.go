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

// Piece is one of the twelve piece kinds, ordered six White piece kinds
// followed by six Black piece kinds, in PieceType order (pawn, knight,
// bishop, rook, queen, king).
type Piece int8

// Piece constants.
//noinspection GoUnusedConst
const (
	WP Piece = iota
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
	PieceNone
	PieceLength = 12
)

// Pawn, Knight, Bishop, Rook, Queen and King build the Piece for a color
// and the named kind.
func Pawn(c Color) Piece   { return MakePiece(c, PtPawn) }
func Knight(c Color) Piece { return MakePiece(c, PtKnight) }
func Bishop(c Color) Piece { return MakePiece(c, PtBishop) }
func Rook(c Color) Piece   { return MakePiece(c, PtRook) }
func Queen(c Color) Piece  { return MakePiece(c, PtQueen) }
func King(c Color) Piece   { return MakePiece(c, PtKing) }

// MakePiece builds the Piece for the given color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if c == White {
		return Piece(pt)
	}
	return Piece(int(pt) + PieceTypeLength)
}

// IsValid returns true if p is one of the twelve piece kinds.
func (p Piece) IsValid() bool {
	return p >= WP && p < PieceNone
}

// ColorOf returns the color of p.
func (p Piece) ColorOf() Color {
	if p < BP {
		return White
	}
	return Black
}

// TypeOf returns the piece type of p, discarding color.
func (p Piece) TypeOf() PieceType {
	return PieceType(int(p) % PieceTypeLength)
}

// IsPawn, IsKnight, ... are kind predicates.
func (p Piece) IsPawn() bool   { return p.TypeOf() == PtPawn }
func (p Piece) IsKnight() bool { return p.TypeOf() == PtKnight }
func (p Piece) IsBishop() bool { return p.TypeOf() == PtBishop }
func (p Piece) IsRook() bool   { return p.TypeOf() == PtRook }
func (p Piece) IsQueen() bool  { return p.TypeOf() == PtQueen }
func (p Piece) IsKing() bool   { return p.TypeOf() == PtKing }

// Value returns the material value of p (always non-negative; the side is
// applied by the caller).
func (p Piece) Value() Value {
	if !p.IsValid() {
		return 0
	}
	return p.TypeOf().Value()
}

// pieceToChar gives the FEN character for each piece, upper case for White.
var pieceToChar = [PieceLength]byte{
	WP: 'P', WN: 'N', WB: 'B', WR: 'R', WQ: 'Q', WK: 'K',
	BP: 'p', BN: 'n', BB: 'b', BR: 'r', BQ: 'q', BK: 'k',
}

// String returns the FEN character for p, or "-" if p is not valid.
func (p Piece) String() string {
	if !p.IsValid() {
		return "-"
	}
	return string(pieceToChar[p])
}

// PieceFromChar returns the Piece corresponding to a single FEN piece
// character. Returns PieceNone if s is not exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	for p := WP; p < PieceNone; p++ {
		if pieceToChar[p] == s[0] {
			return p
		}
	}
	return PieceNone
}
