package types

import "strings"

// Move packs a chess move into 16 bits: end:6 | start:6 | type:2 | aux:2
// (aux occupies the low two bits).
//
//  bits 0-1:  aux   (castle side, or promotion piece kind)
//  bits 2-3:  type  (MtNormal, MtCastle, MtEnPassant, MtPromotion)
//  bits 4-9:  start square
//  bits 10-15: end square
type Move uint16

// MoveNone is the zero move, never a legal move.
const MoveNone Move = 0

// MoveType distinguishes the four move shapes.
type MoveType uint16

const (
	MtNormal    MoveType = 0 // quiet move or plain capture
	MtCastle    MoveType = 1
	MtEnPassant MoveType = 2
	MtPromotion MoveType = 3
)

// Castle-side aux values.
const (
	CastleQueenSide uint16 = 0
	CastleKingSide  uint16 = 1
)

// Promotion-piece aux values.
const (
	PromoKnight uint16 = 0
	PromoBishop uint16 = 1
	PromoRook   uint16 = 2
	PromoQueen  uint16 = 3
)

const (
	moveAuxMask   = 0x3
	moveTypeShift = 2
	moveTypeMask  = 0x3
	moveFromShift = 4
	moveFromMask  = 0x3F
	moveToShift   = 10
	moveToMask    = 0x3F
)

// NewMove builds a plain (quiet or capturing) move.
func NewMove(from, to Square) Move {
	return encode(from, to, MtNormal, 0)
}

// NewCastleMove builds a castling move; side is CastleKingSide or
// CastleQueenSide. end is the king's destination square.
func NewCastleMove(from, to Square, side uint16) Move {
	return encode(from, to, MtCastle, side)
}

// NewEnPassantMove builds an en-passant capture. capturedSq is the
// square the captured enemy pawn sits on (the move's "end" field for this
// move type); the capturing pawn's actual landing square is the position's
// current en-passant target, not stored in the move itself.
func NewEnPassantMove(from, capturedSq Square) Move {
	return encode(from, capturedSq, MtEnPassant, 0)
}

// NewPromotionMove builds a promotion move. promo is one of the Promo*
// constants.
func NewPromotionMove(from, to Square, promo uint16) Move {
	return encode(from, to, MtPromotion, promo)
}

func encode(from, to Square, mt MoveType, aux uint16) Move {
	return Move(uint16(aux&moveAuxMask) |
		(uint16(mt&moveTypeMask) << moveTypeShift) |
		(uint16(from&moveFromMask) << moveFromShift) |
		(uint16(to&moveToMask) << moveToShift))
}

// From returns the move's source square.
func (m Move) From() Square {
	return Square((uint16(m) >> moveFromShift) & moveFromMask)
}

// To returns the move's encoded "end" square: the destination square for
// a normal move, castle or promotion, but the *captured pawn's* square for
// an en-passant move (see EnPassantDestination for the capturing pawn's
// actual landing square).
func (m Move) To() Square {
	return Square((uint16(m) >> moveToShift) & moveToMask)
}

// Type returns the move's MoveType.
func (m Move) Type() MoveType {
	return MoveType((uint16(m) >> moveTypeShift) & moveTypeMask)
}

// Aux returns the raw two-bit aux field.
func (m Move) Aux() uint16 {
	return uint16(m) & moveAuxMask
}

// IsCastle, IsEnPassant, IsPromotion classify m by its MoveType.
func (m Move) IsCastle() bool    { return m.Type() == MtCastle }
func (m Move) IsEnPassant() bool { return m.Type() == MtEnPassant }
func (m Move) IsPromotion() bool { return m.Type() == MtPromotion }

// CastleSide returns CastleKingSide/CastleQueenSide for a castling move.
func (m Move) CastleSide() uint16 {
	return m.Aux()
}

// PromotionType returns the PieceType a promotion move promotes to.
// Only meaningful when IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	switch m.Aux() {
	case PromoKnight:
		return PtKnight
	case PromoBishop:
		return PtBishop
	case PromoRook:
		return PtRook
	case PromoQueen:
		return PtQueen
	default:
		return PtNone
	}
}

// PromotionAux returns the aux value encoding the given promotion piece
// type. pt must be one of Knight, Bishop, Rook, Queen.
func PromotionAux(pt PieceType) uint16 {
	switch pt {
	case PtKnight:
		return PromoKnight
	case PtBishop:
		return PromoBishop
	case PtRook:
		return PromoRook
	case PtQueen:
		return PromoQueen
	default:
		return PromoQueen
	}
}

// IsValid returns true if m has distinct, valid from/to squares.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// EnPassantDestination returns the capturing pawn's actual landing square
// for an en-passant move made by moverColor: the captured pawn's square
// advanced one more step in moverColor's own forward direction. Only
// meaningful when IsEnPassant() is true.
func (m Move) EnPassantDestination(moverColor Color) Square {
	return m.To().To(moverColor.Direction())
}

// destination returns the square to print in external notation: To() for
// every move type except en-passant, where it is the capturing pawn's
// actual landing square.
func (m Move) destination(moverColor Color) Square {
	if m.IsEnPassant() {
		return m.EnPassantDestination(moverColor)
	}
	return m.To()
}

// String returns a human-readable move representation, e.g. "e2-e4". For
// en-passant moves this renders the captured pawn's square (the move's raw
// "end" field); use UciString for the spec's external notation.
func (m Move) String() string {
	if m == MoveNone {
		return "no move"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString("-")
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteString("=")
		b.WriteString(m.PromotionType().String())
	}
	return b.String()
}

// StringUci returns the long-algebraic UCI representation of m using the
// raw encoded squares (e.g. "e2e4" or "e7e8q"). For en-passant moves,
// prefer UciString, which renders the capturing pawn's real destination as
// required by the external move-notation contract.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteString(m.PromotionType().String())
	}
	return b.String()
}

// UciString renders m in long algebraic notation the way the external UCI
// layer requires: start square, destination square (the capturing pawn's
// landing square for en-passant, not the captured pawn's square), and a
// trailing promotion-piece letter from {n,b,r,q}.
func (m Move) UciString(moverColor Color) string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.destination(moverColor).String())
	if m.IsPromotion() {
		b.WriteString(m.PromotionType().String())
	}
	return b.String()
}
