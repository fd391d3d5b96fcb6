package types

// PieceType is a kind of chess piece, independent of color.
type PieceType int8

// PieceType constants.
const (
	PtPawn PieceType = iota
	PtKnight
	PtBishop
	PtRook
	PtQueen
	PtKing
	PtNone
	PieceTypeLength = 6
)

// IsValid returns true if pt is one of the six piece kinds.
func (pt PieceType) IsValid() bool {
	return pt >= PtPawn && pt <= PtKing
}

// pieceTypeValue holds the material value in centipawns for each piece
// type. The king's value is 0: it is never traded and never contributes to
// material balance.
var pieceTypeValue = [PieceTypeLength]Value{
	PtPawn:   100,
	PtKnight: 315,
	PtBishop: 325,
	PtRook:   500,
	PtQueen:  900,
	PtKing:   0,
}

// Value returns the material value of pt.
func (pt PieceType) Value() Value {
	return pieceTypeValue[pt]
}

var pieceTypeChar = [PieceTypeLength]byte{
	PtPawn:   'p',
	PtKnight: 'n',
	PtBishop: 'b',
	PtRook:   'r',
	PtQueen:  'q',
	PtKing:   'k',
}

// String returns the lower-case algebraic letter for pt ("-" if invalid).
func (pt PieceType) String() string {
	if !pt.IsValid() {
		return "-"
	}
	return string(pieceTypeChar[pt])
}

// Value is a centipawn score or material amount.
type Value int32
