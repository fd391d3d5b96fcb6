package position

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kjd-chess/harrier/internal/types"
)

func TestMain(m *testing.M) {
	Init()
	InitZobrist()
	os.Exit(m.Run())
}

func TestNewPositionStartFen(t *testing.T) {
	p, err := NewPosition()
	assert.NoError(t, err)
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
	assert.Equal(t, StartFen, p.Fen())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	}
	for _, fen := range fens {
		p, err := NewPosition(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.Fen())
	}
}

func TestMakeUndoQuietMove(t *testing.T) {
	p, _ := NewPosition()
	before := *p
	m := NewMove(SqE2, SqE4)
	u := p.MakeMove(m)
	assert.Equal(t, Pawn(White), p.GetPiece(SqE4))
	assert.Equal(t, PieceNone, p.GetPiece(SqE2))
	assert.Equal(t, Black, p.NextPlayer())
	assert.Equal(t, SqE3, p.EnPassantSquare())

	p.UndoMove(m, u)
	assert.Equal(t, before.Fen(), p.Fen())
	assert.Equal(t, before.zobristKey, p.zobristKey)
	assert.Equal(t, before.psqScore, p.psqScore)
}

func TestMakeUndoCapture(t *testing.T) {
	p, _ := NewPosition("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	before := *p
	m := NewMove(SqF3, SqE5)
	u := p.MakeMove(m)
	assert.Equal(t, Knight(White), p.GetPiece(SqE5))
	assert.Equal(t, Pawn(Black), u.CapturedPiece)
	assert.Equal(t, 0, p.HalfMoveClock())

	p.UndoMove(m, u)
	assert.Equal(t, before.Fen(), p.Fen())
	assert.Equal(t, before.zobristKey, p.zobristKey)
}

func TestMakeUndoEnPassant(t *testing.T) {
	p, _ := NewPosition("8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1")
	before := *p
	m := NewEnPassantMove(SqE4, SqD4)
	u := p.MakeMove(m)
	assert.Equal(t, Pawn(Black), p.GetPiece(SqD3))
	assert.Equal(t, PieceNone, p.GetPiece(SqE4))
	assert.Equal(t, PieceNone, p.GetPiece(SqD4))
	assert.Equal(t, Pawn(White), u.CapturedPiece)

	p.UndoMove(m, u)
	assert.Equal(t, before.Fen(), p.Fen())
	assert.Equal(t, before.zobristKey, p.zobristKey)
}

func TestMakeUndoCastle(t *testing.T) {
	p, _ := NewPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	before := *p
	m := NewCastleMove(SqE1, SqG1, CastleKingSide)
	u := p.MakeMove(m)
	assert.Equal(t, King(White), p.GetPiece(SqG1))
	assert.Equal(t, Rook(White), p.GetPiece(SqF1))
	assert.Equal(t, PieceNone, p.GetPiece(SqE1))
	assert.Equal(t, PieceNone, p.GetPiece(SqH1))
	assert.False(t, p.CastlingRights().Has(CastlingWK))
	assert.False(t, p.CastlingRights().Has(CastlingWQ))

	p.UndoMove(m, u)
	assert.Equal(t, before.Fen(), p.Fen())
	assert.Equal(t, before.zobristKey, p.zobristKey)
}

func TestMakeUndoPromotion(t *testing.T) {
	p, _ := NewPosition("8/4P3/8/2k5/8/8/4K3/8 w - - 0 1")
	before := *p
	m := NewPromotionMove(SqE7, SqE8, PromoQueen)
	u := p.MakeMove(m)
	assert.Equal(t, Queen(White), p.GetPiece(SqE8))
	assert.Equal(t, PieceNone, u.CapturedPiece)

	p.UndoMove(m, u)
	assert.Equal(t, before.Fen(), p.Fen())
	assert.Equal(t, before.zobristKey, p.zobristKey)
}

func TestIsAttacked(t *testing.T) {
	p, _ := NewPosition()
	assert.True(t, p.IsAttacked(SqE3, White))
	assert.False(t, p.IsAttacked(SqE5, White))
}

func TestHasInsufficientMaterial(t *testing.T) {
	p, _ := NewPosition("8/8/8/4k3/8/8/4K3/8 w - - 0 1")
	assert.True(t, p.HasInsufficientMaterial())

	p, _ = NewPosition("8/8/8/4k3/8/8/3NK3/8 w - - 0 1")
	assert.True(t, p.HasInsufficientMaterial())

	p, _ = NewPosition(StartFen)
	assert.False(t, p.HasInsufficientMaterial())
}
