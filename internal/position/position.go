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

// Package position implements Position (the Board): the authoritative,
// incrementally-mutated chess position with reversible make/undo and a
// running Zobrist hash and material+piece-square score.
package position

import (
	"fmt"
	"strings"

	"github.com/kjd-chess/harrier/internal/assert"
	. "github.com/kjd-chess/harrier/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the authoritative chess board state.
type Position struct {
	board      [SqLength]Piece
	piecesBb   [ColorLength][PieceTypeLength]Bitboard
	occupiedBb [ColorLength]Bitboard

	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	fullMoveNumber  int
	nextPlayer      Color

	zobristKey uint64
	kingSquare [ColorLength]Square

	// psqScore is the running material + piece-square score, White's
	// perspective, maintained incrementally by putPiece/removePiece. The
	// Evaluator reads this rather than recomputing it per node.
	psqScore Value

	// keyHistory holds the Zobrist key of every position reached so far,
	// starting with the one set up from FEN; its last entry is the current
	// key. IsRepetition only ever needs to look back halfMoveClock plies (the
	// span since the last irreversible move), but this is never trimmed.
	keyHistory []uint64
}

// UndoInfo captures everything MakeMove cannot reconstruct from the Move
// alone, so UndoMove can restore the exact prior state.
type UndoInfo struct {
	Move            Move
	CapturedPiece   Piece
	CastlingRights  CastlingRights
	EnPassantSquare Square
	HalfMoveClock   int
	ScoreDelta      Value
}

// NewPosition creates a Position from an optional FEN string (defaults to
// the standard starting position).
func NewPosition(fen ...string) (*Position, error) {
	f := StartFen
	if len(fen) > 0 && strings.TrimSpace(fen[0]) != "" {
		f = fen[0]
	}
	p := &Position{}
	if err := p.setupFromFen(f); err != nil {
		return nil, err
	}
	return p, nil
}

// --- piece placement primitives -------------------------------------------------

func (p *Position) putPiece(piece Piece, sq Square) {
	if assert.DEBUG {
		assert.Assert(p.board[sq] == PieceNone, "putPiece: square %s already occupied", sq)
	}
	p.board[sq] = piece
	c := piece.ColorOf()
	pt := piece.TypeOf()
	p.piecesBb[c][pt].PushSquare(sq)
	p.occupiedBb[c].PushSquare(sq)
	p.zobristKey ^= ZobristPieceSquare(piece, sq)
	p.psqScore += PieceSquareValue(piece, sq)
	if pt == PtKing {
		p.kingSquare[c] = sq
	}
}

func (p *Position) removePiece(sq Square) Piece {
	piece := p.board[sq]
	if assert.DEBUG {
		assert.Assert(piece != PieceNone, "removePiece: square %s already empty", sq)
	}
	p.board[sq] = PieceNone
	c := piece.ColorOf()
	pt := piece.TypeOf()
	p.piecesBb[c][pt].PopSquare(sq)
	p.occupiedBb[c].PopSquare(sq)
	p.zobristKey ^= ZobristPieceSquare(piece, sq)
	p.psqScore -= PieceSquareValue(piece, sq)
	return piece
}

func (p *Position) movePiece(from, to Square) {
	piece := p.removePiece(from)
	p.putPiece(piece, to)
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= ZobristEnPassant(p.enPassantSquare.FileOf())
		p.enPassantSquare = SqNone
	}
}

func (p *Position) setCastlingRights(cr CastlingRights) {
	p.zobristKey ^= ZobristCastling(p.castlingRights)
	p.castlingRights = cr
	p.zobristKey ^= ZobristCastling(p.castlingRights)
}

// homeCastlingRight returns the single castling right that must be cleared
// when a piece leaves (or is captured on) sq, or CastlingNone if sq is not
// a home corner for either king or rook.
func homeCastlingRight(sq Square) CastlingRights {
	switch sq {
	case SqE1:
		return CastlingWhite
	case SqE8:
		return CastlingBlack
	case SqA1:
		return CastlingWQ
	case SqH1:
		return CastlingWK
	case SqA8:
		return CastlingBQ
	case SqH8:
		return CastlingBK
	default:
		return CastlingNone
	}
}

// --- make / undo -----------------------------------------------------------------

// MakeMove applies m, which must be legal for the side to move, and
// returns the UndoInfo needed to reverse it.
func (p *Position) MakeMove(m Move) UndoInfo {
	if assert.DEBUG {
		assert.Assert(m.IsValid(), "MakeMove: invalid move %s", m)
	}

	scoreBefore := p.psqScore
	undo := UndoInfo{
		Move:            m,
		CastlingRights:  p.castlingRights,
		EnPassantSquare: p.enPassantSquare,
		HalfMoveClock:   p.halfMoveClock,
	}

	us := p.nextPlayer
	from := m.From()
	movingPiece := p.board[from]

	irreversible := movingPiece.TypeOf() == PtPawn
	p.halfMoveClock++

	switch m.Type() {
	case MtEnPassant:
		capturedSq := m.To()
		dest := m.EnPassantDestination(us)
		undo.CapturedPiece = p.removePiece(capturedSq)
		p.movePiece(from, dest)
		p.clearEnPassant()
		irreversible = true

	case MtCastle:
		to := m.To()
		p.movePiece(from, to)
		rookFrom, rookTo := castleRookSquares(us, m.CastleSide())
		p.movePiece(rookFrom, rookTo)
		p.setCastlingRights(p.castlingRights.Remove(colorCastlingMask(us)))
		p.clearEnPassant()
		irreversible = true

	case MtPromotion:
		to := m.To()
		if p.board[to] != PieceNone {
			undo.CapturedPiece = p.removePiece(to)
			if r := homeCastlingRight(to); r != CastlingNone {
				p.setCastlingRights(p.castlingRights.Remove(r))
			}
			irreversible = true
		}
		p.removePiece(from)
		p.putPiece(MakePiece(us, m.PromotionType()), to)
		p.clearEnPassant()
		irreversible = true

	default: // quiet move or plain capture
		to := m.To()
		if p.board[to] != PieceNone {
			undo.CapturedPiece = p.removePiece(to)
			if r := homeCastlingRight(to); r != CastlingNone {
				p.setCastlingRights(p.castlingRights.Remove(r))
			}
			irreversible = true
		}
		p.movePiece(from, to)

		p.clearEnPassant()
		if movingPiece.TypeOf() == PtPawn && SquareDistance(from, to) == 2 && from.FileOf() == to.FileOf() {
			mid := Square((int(from) + int(to)) / 2)
			p.enPassantSquare = mid
			p.zobristKey ^= ZobristEnPassant(mid.FileOf())
		}
		if movingPiece.TypeOf() == PtKing {
			p.setCastlingRights(p.castlingRights.Remove(colorCastlingMask(us)))
		} else if r := homeCastlingRight(from); r != CastlingNone {
			p.setCastlingRights(p.castlingRights.Remove(r))
		}
	}

	if irreversible {
		p.halfMoveClock = 0
	}

	if us == Black {
		p.fullMoveNumber++
	}
	p.nextPlayer = us.Flip()
	p.zobristKey ^= ZobristSideToMove()
	p.keyHistory = append(p.keyHistory, p.zobristKey)

	undo.ScoreDelta = p.psqScore - scoreBefore
	return undo
}

// UndoMove restores the Position to its exact state before m was made,
// given the UndoInfo MakeMove returned for it.
func (p *Position) UndoMove(m Move, u UndoInfo) {
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= ZobristSideToMove()
	us := p.nextPlayer
	from := m.From()

	switch m.Type() {
	case MtEnPassant:
		capturedSq := m.To()
		dest := m.EnPassantDestination(us)
		p.movePiece(dest, from)
		p.putPiece(u.CapturedPiece, capturedSq)

	case MtCastle:
		to := m.To()
		rookFrom, rookTo := castleRookSquares(us, m.CastleSide())
		p.movePiece(rookTo, rookFrom)
		p.movePiece(to, from)

	case MtPromotion:
		to := m.To()
		p.removePiece(to)
		p.putPiece(Pawn(us), from)
		if u.CapturedPiece != PieceNone {
			p.putPiece(u.CapturedPiece, to)
		}

	default:
		to := m.To()
		p.movePiece(to, from)
		if u.CapturedPiece != PieceNone {
			p.putPiece(u.CapturedPiece, to)
		}
	}

	if p.enPassantSquare != SqNone {
		p.zobristKey ^= ZobristEnPassant(p.enPassantSquare.FileOf())
	}
	p.enPassantSquare = u.EnPassantSquare
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= ZobristEnPassant(p.enPassantSquare.FileOf())
	}

	if p.castlingRights != u.CastlingRights {
		p.zobristKey ^= ZobristCastling(p.castlingRights)
		p.castlingRights = u.CastlingRights
		p.zobristKey ^= ZobristCastling(p.castlingRights)
	}

	p.halfMoveClock = u.HalfMoveClock
	if us == Black {
		p.fullMoveNumber--
	}
	p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]
}

func colorCastlingMask(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}

// castleRookSquares returns the rook's home and landing squares for a
// castle move by color c to the given side.
func castleRookSquares(c Color, side uint16) (from, to Square) {
	if c == White {
		if side == CastleKingSide {
			return SqH1, SqF1
		}
		return SqA1, SqD1
	}
	if side == CastleKingSide {
		return SqH8, SqF8
	}
	return SqA8, SqD8
}

// --- attack queries ----------------------------------------------------------------

// Occupied returns the union of all occupied squares.
func (p *Position) Occupied() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// AttackersTo returns the set of squares holding a piece of color `by`
// that attacks sq, given board occupancy occ (passed explicitly so
// callers can probe a hypothetical occupancy, e.g. with the king removed).
func (p *Position) AttackersTo(sq Square, occ Bitboard, by Color) Bitboard {
	var attackers Bitboard
	attackers |= GetAttacksBb(PtBishop, sq, occ) & (p.piecesBb[by][PtBishop] | p.piecesBb[by][PtQueen])
	attackers |= GetAttacksBb(PtRook, sq, occ) & (p.piecesBb[by][PtRook] | p.piecesBb[by][PtQueen])
	attackers |= KnightAttacks(sq) & p.piecesBb[by][PtKnight]
	attackers |= KingAttacks(sq) & p.piecesBb[by][PtKing]
	attackers |= PawnAttacks(by.Flip(), sq) & p.piecesBb[by][PtPawn]
	return attackers
}

// IsAttacked returns true if sq is attacked by any piece of color `by`
// under the current board occupancy.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	return p.AttackersTo(sq, p.Occupied(), by) != 0
}

// Clone returns an independent copy of p, safe to mutate (via MakeMove,
// UndoMove, etc.) on a separate goroutine without affecting p.
func (p *Position) Clone() *Position {
	clone := *p
	clone.keyHistory = make([]uint64, len(p.keyHistory))
	copy(clone.keyHistory, p.keyHistory)
	return &clone
}

// --- getters -------------------------------------------------------------------

func (p *Position) GetPiece(sq Square) Piece                { return p.board[sq] }
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }
func (p *Position) OccupiedBb(c Color) Bitboard             { return p.occupiedBb[c] }
func (p *Position) NextPlayer() Color                       { return p.nextPlayer }
func (p *Position) CastlingRights() CastlingRights          { return p.castlingRights }
func (p *Position) EnPassantSquare() Square                 { return p.enPassantSquare }
func (p *Position) HalfMoveClock() int                      { return p.halfMoveClock }
func (p *Position) FullMoveNumber() int                     { return p.fullMoveNumber }
func (p *Position) ZobristKey() uint64                      { return p.zobristKey }
func (p *Position) KingSquare(c Color) Square               { return p.kingSquare[c] }
func (p *Position) PsqScore() Value                         { return p.psqScore }

// IsDraw50 reports the 50-move-rule draw condition (halfmove clock >= 100
// half-moves since the last pawn move or capture).
func (p *Position) IsDraw50() bool {
	return p.halfMoveClock >= 100
}

// IsRepetition reports whether the current position's Zobrist key has
// occurred at least `count` times within the reversible-move span (the
// last halfMoveClock plies, since an irreversible move can never repeat a
// position from before it). count=3 for threefold repetition. Optional per
// the spec; the search may ignore it and only rely on IsDraw50.
func (p *Position) IsRepetition(count int) bool {
	n := len(p.keyHistory)
	if n == 0 {
		return false
	}
	span := p.halfMoveClock
	if span > n-1 {
		span = n - 1
	}
	seen := 0
	key := p.zobristKey
	for i := n - 1; i >= n-1-span; i-- {
		if p.keyHistory[i] == key {
			seen++
			if seen >= count {
				return true
			}
		}
	}
	return false
}

// HasInsufficientMaterial reports true for the draws by insufficient
// material this engine recognizes: K v K, K+N v K, and K+B v K (including
// K+B v K+B with bishops on the same color square). Optional per the spec.
func (p *Position) HasInsufficientMaterial() bool {
	minor := func(c Color) (knights, bishops int, bishopSquares Bitboard) {
		knights = p.piecesBb[c][PtKnight].PopCount()
		bb := p.piecesBb[c][PtBishop]
		bishops = bb.PopCount()
		return knights, bishops, bb
	}
	if p.piecesBb[White][PtPawn]|p.piecesBb[Black][PtPawn]|
		p.piecesBb[White][PtRook]|p.piecesBb[Black][PtRook]|
		p.piecesBb[White][PtQueen]|p.piecesBb[Black][PtQueen] != 0 {
		return false
	}
	wn, wb, wbb := minor(White)
	bn, bb2, bbb := minor(Black)
	total := wn + wb + bn + bb2
	if total == 0 {
		return true // K v K
	}
	if total == 1 {
		return true // K+N v K or K+B v K
	}
	if total == 2 && wn == 0 && bn == 0 && wb == 1 && bb2 == 1 {
		// K+B v K+B: drawn only if both bishops are on the same color.
		whiteSq := wbb.Lsb()
		blackSq := bbb.Lsb()
		return isLightSquare(whiteSq) == isLightSquare(blackSq)
	}
	return false
}

func isLightSquare(sq Square) bool {
	return (int(sq.FileOf())+int(sq.RankOf()))%2 == 0
}

// String renders the board as an 8x8 grid with file/rank labels.
func (p *Position) String() string {
	var b strings.Builder
	for r := Rank8; r <= Rank1; r++ {
		b.WriteString(r.String())
		b.WriteString(" ")
		for f := FileA; f <= FileH; f++ {
			pc := p.board[MakeSquare(f, r)]
			if pc == PieceNone {
				b.WriteString(". ")
			} else {
				b.WriteString(pc.String())
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("  a b c d e f g h\n")
	fmt.Fprintf(&b, "fen: %s\n", p.Fen())
	return b.String()
}
