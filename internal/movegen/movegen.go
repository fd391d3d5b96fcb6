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

// Package movegen generates fully legal moves for a position: king safety,
// checks, pins and castling are all resolved during generation, so every
// move handed back is playable without a post-hoc legality check.
package movegen

import (
	"github.com/kjd-chess/harrier/internal/assert"
	"github.com/kjd-chess/harrier/internal/moveslice"
	"github.com/kjd-chess/harrier/internal/position"
	. "github.com/kjd-chess/harrier/internal/types"
)

// castlingInfo describes the fixed squares involved in one castling move.
type castlingInfo struct {
	right        CastlingRights
	kingFrom     Square
	kingTo       Square
	rookFrom     Square
	rookTo       Square
	between      Bitboard // squares that must be empty
	kingTransit  [2]Square // squares the king crosses, checked for attack (excludes kingFrom)
}

var castlingTable = [ColorLength][2]castlingInfo{
	White: {
		{right: CastlingWK, kingFrom: SqE1, kingTo: SqG1, rookFrom: SqH1, rookTo: SqF1,
			between: SquaresBb(SqF1, SqG1), kingTransit: [2]Square{SqF1, SqG1}},
		{right: CastlingWQ, kingFrom: SqE1, kingTo: SqC1, rookFrom: SqA1, rookTo: SqD1,
			between: SquaresBb(SqB1, SqC1, SqD1), kingTransit: [2]Square{SqD1, SqC1}},
	},
	Black: {
		{right: CastlingBK, kingFrom: SqE8, kingTo: SqG8, rookFrom: SqH8, rookTo: SqF8,
			between: SquaresBb(SqF8, SqG8), kingTransit: [2]Square{SqF8, SqG8}},
		{right: CastlingBQ, kingFrom: SqE8, kingTo: SqC8, rookFrom: SqA8, rookTo: SqD8,
			between: SquaresBb(SqB8, SqC8, SqD8), kingTransit: [2]Square{SqD8, SqC8}},
	},
}

// Generate appends every fully legal move for the side to move in p to
// list. The caller is responsible for clearing list beforehand; Generate
// never reads list's prior contents.
func Generate(p *position.Position, list *moveslice.MoveSlice) {
	us := p.NextPlayer()
	them := us.Flip()
	occ := p.Occupied()
	friendly := p.OccupiedBb(us)
	enemy := p.OccupiedBb(them)
	kpos := p.KingSquare(us)

	generateKingMoves(p, us, them, occ, friendly, kpos, list)

	checkers := p.AttackersTo(kpos, occ, them)
	switch checkers.PopCount() {
	case 2:
		return // double check: only king moves are legal
	case 1:
		checkerSq := checkers.Lsb()
		blockers := Bitboard(0)
		if isSlider(p.GetPiece(checkerSq).TypeOf()) {
			blockers = Intermediate(kpos, checkerSq)
		}
		moveMask := checkers | blockers
		generateNonKingMoves(p, us, them, occ, friendly, enemy, kpos, moveMask, list)
	default:
		moveMask := BbAll
		generateNonKingMoves(p, us, them, occ, friendly, enemy, kpos, moveMask, list)
		generateCastling(p, us, occ, them, list)
	}

	assertConsistent(list)
}

func isSlider(pt PieceType) bool {
	return pt == PtBishop || pt == PtRook || pt == PtQueen
}

func generateKingMoves(p *position.Position, us, them Color, occ, friendly Bitboard, kpos Square, list *moveslice.MoveSlice) {
	occWithoutKing := occ &^ kpos.Bb()
	targets := KingAttacks(kpos) &^ friendly
	for targets != 0 {
		to := targets.PopLsb()
		if p.AttackersTo(to, occWithoutKing, them) == 0 {
			list.PushBack(NewMove(kpos, to))
		}
	}
}

// pinState holds the absolutely-pinned pieces of the side to move and, for
// each, the ray (including the pinning piece's own square) its moves are
// confined to.
type pinState struct {
	pinned Bitboard
	ray    [SqLength]Bitboard
}

func computePins(p *position.Position, us, them Color, friendly, enemy Bitboard, kpos Square) pinState {
	var ps pinState
	bishopPinners := GetAttacksBb(PtBishop, kpos, enemy) & (p.PiecesBb(them, PtBishop) | p.PiecesBb(them, PtQueen))
	rookPinners := GetAttacksBb(PtRook, kpos, enemy) & (p.PiecesBb(them, PtRook) | p.PiecesBb(them, PtQueen))
	pinners := bishopPinners | rookPinners
	for pinners != 0 {
		pinnerSq := pinners.PopLsb()
		between := Intermediate(pinnerSq, kpos)
		onRay := between & friendly
		if onRay.PopCount() == 1 {
			pinnedSq := onRay.Lsb()
			ps.pinned.PushSquare(pinnedSq)
			ps.ray[pinnedSq] = between | pinnerSq.Bb()
		}
	}
	return ps
}

func generateNonKingMoves(p *position.Position, us, them Color, occ, friendly, enemy Bitboard, kpos Square, moveMask Bitboard, list *moveslice.MoveSlice) {
	ps := computePins(p, us, them, friendly, enemy, kpos)
	generateKnightMoves(p, us, friendly, moveMask, ps, list)
	generateSliderMoves(p, us, PtBishop, occ, friendly, moveMask, ps, list)
	generateSliderMoves(p, us, PtRook, occ, friendly, moveMask, ps, list)
	generateSliderMoves(p, us, PtQueen, occ, friendly, moveMask, ps, list)
	generatePawnMoves(p, us, them, occ, enemy, moveMask, ps, kpos, list)
}

func pieceAllowed(ps pinState, from Square, moveMask Bitboard) Bitboard {
	if ps.pinned.Has(from) {
		return moveMask & ps.ray[from]
	}
	return moveMask
}

func generateKnightMoves(p *position.Position, us Color, friendly, moveMask Bitboard, ps pinState, list *moveslice.MoveSlice) {
	knights := p.PiecesBb(us, PtKnight)
	for knights != 0 {
		from := knights.PopLsb()
		targets := KnightAttacks(from) &^ friendly & pieceAllowed(ps, from, moveMask)
		for targets != 0 {
			list.PushBack(NewMove(from, targets.PopLsb()))
		}
	}
}

func generateSliderMoves(p *position.Position, us Color, pt PieceType, occ, friendly, moveMask Bitboard, ps pinState, list *moveslice.MoveSlice) {
	pieces := p.PiecesBb(us, pt)
	for pieces != 0 {
		from := pieces.PopLsb()
		targets := GetAttacksBb(pt, from, occ) &^ friendly & pieceAllowed(ps, from, moveMask)
		for targets != 0 {
			list.PushBack(NewMove(from, targets.PopLsb()))
		}
	}
}

func pawnCaptureDirections(c Color) (east, west Direction) {
	if c == White {
		return NorthEast, NorthWest
	}
	return SouthEast, SouthWest
}

func generatePawnMoves(p *position.Position, us, them Color, occ, enemy, moveMask Bitboard, ps pinState, kpos Square, list *moveslice.MoveSlice) {
	pawns := p.PiecesBb(us, PtPawn)
	fwd := us.Direction()
	promoRank := us.PromotionRank().Bb()

	single := ShiftBitboard(pawns, fwd) &^ occ
	emitPawnPushes(single, fwd, promoRank, ps, moveMask, list)

	doubleSources := pawns & us.PawnRank().Bb()
	singleFromDouble := ShiftBitboard(doubleSources, fwd) &^ occ
	double := ShiftBitboard(singleFromDouble, fwd) &^ occ
	emitPawnDoublePushes(double, fwd, ps, moveMask, list)

	east, west := pawnCaptureDirections(us)
	capEast := ShiftBitboard(pawns, east) & enemy
	capWest := ShiftBitboard(pawns, west) & enemy
	emitPawnPushes(capEast, east, promoRank, ps, moveMask, list)
	emitPawnPushes(capWest, west, promoRank, ps, moveMask, list)

	generateEnPassant(p, us, them, occ, pawns, kpos, list)
}

// emitPawnPushes handles any pawn move type reachable by a single shift in
// direction dir (straight pushes and diagonal captures), splitting into the
// four promotion moves when the target lands on the promotion rank.
func emitPawnPushes(targets Bitboard, dir Direction, promoRank Bitboard, ps pinState, moveMask Bitboard, list *moveslice.MoveSlice) {
	targets &= moveMask
	for targets != 0 {
		to := targets.PopLsb()
		from := to.To(-dir)
		if ps.pinned.Has(from) && !ps.ray[from].Has(to) {
			continue
		}
		if promoRank.Has(to) {
			list.PushBack(NewPromotionMove(from, to, PromoQueen))
			list.PushBack(NewPromotionMove(from, to, PromoRook))
			list.PushBack(NewPromotionMove(from, to, PromoBishop))
			list.PushBack(NewPromotionMove(from, to, PromoKnight))
		} else {
			list.PushBack(NewMove(from, to))
		}
	}
}

// emitPawnDoublePushes handles two-square pawn advances; the source is two
// steps back in dir and a double push never lands on the promotion rank.
func emitPawnDoublePushes(targets Bitboard, dir Direction, ps pinState, moveMask Bitboard, list *moveslice.MoveSlice) {
	targets &= moveMask
	for targets != 0 {
		to := targets.PopLsb()
		from := to.To(-dir).To(-dir)
		if ps.pinned.Has(from) && !ps.ray[from].Has(to) {
			continue
		}
		list.PushBack(NewMove(from, to))
	}
}

// generateEnPassant handles the (at most two) pawns adjacent to the
// en-passant target. Legality is checked by building the hypothetical
// occupancy the capture would leave behind and re-testing the king square,
// rather than mutating the real board, so it also catches the horizontal
// discovered-check case where both the moving and captured pawn share the
// king's rank.
func generateEnPassant(p *position.Position, us, them Color, occ, pawns Bitboard, kpos Square, list *moveslice.MoveSlice) {
	epSq := p.EnPassantSquare()
	if epSq == SqNone {
		return
	}
	capturedSq := epSq.To(them.Direction())
	if capturedSq == SqNone || p.GetPiece(capturedSq) != Pawn(them) {
		return
	}
	candidates := PawnAttacks(them, epSq) & pawns
	for candidates != 0 {
		from := candidates.PopLsb()
		hypOcc := occ
		hypOcc &^= from.Bb()
		hypOcc &^= capturedSq.Bb()
		hypOcc |= epSq.Bb()
		// AttackersTo reads piece bitboards that still show the captured
		// pawn on capturedSq; hypOcc only fixes up slider blocking, so mask
		// that square out of the result to discount the pawn being removed.
		if p.AttackersTo(kpos, hypOcc, them)&^capturedSq.Bb() == 0 {
			list.PushBack(NewEnPassantMove(from, capturedSq))
		}
	}
}

func generateCastling(p *position.Position, us Color, occ Bitboard, them Color, list *moveslice.MoveSlice) {
	for i := range castlingTable[us] {
		info := &castlingTable[us][i]
		if !p.CastlingRights().Has(info.right) {
			continue
		}
		if occ&info.between != 0 {
			continue
		}
		if p.IsAttacked(info.kingFrom, them) {
			continue
		}
		blocked := false
		for _, sq := range info.kingTransit {
			if p.IsAttacked(sq, them) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		list.PushBack(NewCastleMove(info.kingFrom, info.kingTo, castleSideOf(info)))
	}
}

func castleSideOf(info *castlingInfo) uint16 {
	if info.right == CastlingWK || info.right == CastlingBK {
		return CastleKingSide
	}
	return CastleQueenSide
}

// assertConsistent is a debug-only sanity check a caller may run after
// generation; kept here rather than inline to avoid cluttering the hot
// path with the loop it needs.
func assertConsistent(list *moveslice.MoveSlice) {
	if !assert.DEBUG {
		return
	}
	list.ForEach(func(i int) {
		assert.Assert(list.At(i).IsValid(), "movegen: generated invalid move at index %d", i)
	})
}
