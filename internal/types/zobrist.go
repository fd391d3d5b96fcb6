package types

// Zobrist holds the random keys used to incrementally hash a Position.
// The piece-square keys are the only family the spec requires for
// correctness; side-to-move, castling and en-passant keys are included as
// well (see SPEC_FULL.md / DESIGN.md) so the hash is also adequate for a
// future transposition table, per the spec's design note on Zobrist
// coverage.
var (
	zobristPieceSquare [PieceLength][SqLength]uint64
	zobristSideToMove  uint64
	zobristCastling    [int(CastlingAny) + 1]uint64
	zobristEnPassant   [FileLength]uint64
)

// InitZobrist fills the random key tables deterministically, so that two
// processes running the same binary agree on every key. Call once, after
// types.Init().
func InitZobrist() {
	rng := newPrnG(0x9E3779B97F4A7C15)
	for p := WP; p < PieceNone; p++ {
		for sq := SqA8; sq <= SqH1; sq++ {
			zobristPieceSquare[p][sq] = rng.rand64()
		}
	}
	zobristSideToMove = rng.rand64()
	for i := range zobristCastling {
		zobristCastling[i] = rng.rand64()
	}
	for f := FileA; f <= FileH; f++ {
		zobristEnPassant[f] = rng.rand64()
	}
}

// ZobristPieceSquare returns the key for piece p standing on sq.
func ZobristPieceSquare(p Piece, sq Square) uint64 {
	return zobristPieceSquare[p][sq]
}

// ZobristSideToMove returns the key XORed in when it is Black to move
// (conventionally XORed in whenever the side to move is not the "base"
// color used to seed the hash).
func ZobristSideToMove() uint64 {
	return zobristSideToMove
}

// ZobristCastling returns the key for a given castling-rights mask.
func ZobristCastling(cr CastlingRights) uint64 {
	return zobristCastling[cr]
}

// ZobristEnPassant returns the key for an en-passant target on file f.
func ZobristEnPassant(f File) uint64 {
	return zobristEnPassant[f]
}
