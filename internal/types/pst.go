package types

// Piece-square tables, one flat (non-tapered) table per piece type, always
// expressed from White's point of view with the spec's a8=0 square
// numbering (index 0 is rank 8, the far side from White). Values taken
// from the teacher engine's midgame tables.
var pieceSquareTable = [PieceTypeLength][SqLength]Value{
	PtPawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -30, -30, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 30, 30, 0, 0, 0,
		5, 5, 10, 30, 30, 10, 5, 5,
		0, 5, 5, 5, 5, 5, 5, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	PtKnight: {
		-50, -25, -20, -30, -30, -20, -25, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	PtBishop: {
		-20, -10, -40, -10, -10, -40, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	PtRook: {
		-15, -10, 15, 15, 15, 15, -10, -15,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		10, 10, 10, 10, 10, 10, 10, 10,
		5, 5, 5, 5, 5, 5, 5, 5,
	},
	PtQueen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 2, 2, 2, 2, 0, -5,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	PtKing: {
		20, 50, 0, -20, -20, 0, 50, 20,
		0, 0, -20, -20, -20, -20, 0, 0,
		-10, -20, -20, -30, -30, -30, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

// MirrorSquare returns the rank-flipped square used to read a White-POV
// table from Black's perspective.
func MirrorSquare(sq Square) Square {
	return Square(int(sq) ^ 56)
}

// PieceSquareValue returns the signed, White-perspective contribution of
// piece p standing on sq: its material value plus (White) or minus
// (Black, mirrored) its piece-square table entry.
func PieceSquareValue(p Piece, sq Square) Value {
	pt := p.TypeOf()
	if p.ColorOf() == White {
		return pt.Value() + pieceSquareTable[pt][sq]
	}
	return -(pt.Value() + pieceSquareTable[pt][MirrorSquare(sq)])
}
