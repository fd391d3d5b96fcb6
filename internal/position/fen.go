package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/kjd-chess/harrier/internal/types"
)

// setupFromFen resets p and places every field from the six FEN fields:
// piece placement, side to move, castling rights, en-passant target,
// halfmove clock, fullmove number.
func (p *Position) setupFromFen(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("position: invalid fen %q: need at least 4 fields, got %d", fen, len(fields))
	}

	*p = Position{enPassantSquare: SqNone}
	for i := range p.board {
		p.board[i] = PieceNone
	}

	if err := p.setupBoard(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		p.nextPlayer = White
	case "b":
		p.nextPlayer = Black
	default:
		return fmt.Errorf("position: invalid fen %q: bad side to move %q", fen, fields[1])
	}

	var cr CastlingRights
	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			c := fields[2][i]
			right := CastlingFromChar(c)
			if right == CastlingNone {
				return fmt.Errorf("position: invalid fen %q: bad castling right %q", fen, c)
			}
			cr = cr.Add(right)
		}
	}
	p.castlingRights = cr

	p.enPassantSquare = SqNone
	if fields[3] != "-" {
		sq := SquareFromString(fields[3])
		if sq == SqNone {
			return fmt.Errorf("position: invalid fen %q: bad en-passant square %q", fen, fields[3])
		}
		p.enPassantSquare = sq
	}

	p.halfMoveClock = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return fmt.Errorf("position: invalid fen %q: bad halfmove clock %q", fen, fields[4])
		}
		p.halfMoveClock = n
	}

	p.fullMoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return fmt.Errorf("position: invalid fen %q: bad fullmove number %q", fen, fields[5])
		}
		p.fullMoveNumber = n
	}

	p.zobristKey = p.computeZobristKey()
	p.keyHistory = append(p.keyHistory[:0], p.zobristKey)
	return nil
}

// setupBoard parses FEN's piece-placement field and populates board,
// bitboards and psqScore via putPieceNoZobrist (Zobrist is folded in afterward by
// computeZobristKey, since side-to-move/castling/en-passant aren't known
// until the remaining fields are parsed).
func (p *Position) setupBoard(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: invalid piece placement %q: need 8 ranks, got %d", placement, len(ranks))
	}
	for r, rankStr := range ranks {
		f := 0
		for i := 0; i < len(rankStr); i++ {
			c := rankStr[i]
			if c >= '1' && c <= '8' {
				f += int(c - '0')
				continue
			}
			if f >= 8 {
				return fmt.Errorf("position: invalid piece placement %q: rank %d overflows", placement, r+1)
			}
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("position: invalid piece placement %q: bad character %q", placement, c)
			}
			sq := MakeSquare(File(f), Rank(r))
			p.putPieceNoZobrist(piece, sq)
			f++
		}
		if f != 8 {
			return fmt.Errorf("position: invalid piece placement %q: rank %d has %d files", placement, r+1, f)
		}
	}
	return nil
}

// putPieceNoZobrist places a piece during initial board setup without
// touching the Zobrist key, which is computed once in full afterward.
func (p *Position) putPieceNoZobrist(piece Piece, sq Square) {
	p.board[sq] = piece
	c := piece.ColorOf()
	pt := piece.TypeOf()
	p.piecesBb[c][pt].PushSquare(sq)
	p.occupiedBb[c].PushSquare(sq)
	p.psqScore += PieceSquareValue(piece, sq)
	if pt == PtKing {
		p.kingSquare[c] = sq
	}
}

// computeZobristKey folds in every piece, the side to move, the castling
// rights and the en-passant target, from scratch.
func (p *Position) computeZobristKey() uint64 {
	var key uint64
	for sq := SqA8; sq <= SqH1; sq++ {
		if piece := p.board[sq]; piece != PieceNone {
			key ^= ZobristPieceSquare(piece, sq)
		}
	}
	if p.nextPlayer == Black {
		key ^= ZobristSideToMove()
	}
	key ^= ZobristCastling(p.castlingRights)
	if p.enPassantSquare != SqNone {
		key ^= ZobristEnPassant(p.enPassantSquare.FileOf())
	}
	return key
}

// Fen serializes the position back into Forsyth-Edwards Notation.
func (p *Position) Fen() string {
	var b strings.Builder
	for r := Rank8; r <= Rank1; r++ {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			piece := p.board[MakeSquare(f, r)]
			if piece == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&b, "%d", empty)
				empty = 0
			}
			b.WriteString(piece.String())
		}
		if empty > 0 {
			fmt.Fprintf(&b, "%d", empty)
		}
		if r != Rank1 {
			b.WriteString("/")
		}
	}

	b.WriteString(" ")
	b.WriteString(p.nextPlayer.String())
	b.WriteString(" ")
	b.WriteString(p.castlingRights.String())
	b.WriteString(" ")
	b.WriteString(p.enPassantSquare.String())
	fmt.Fprintf(&b, " %d %d", p.halfMoveClock, p.fullMoveNumber)
	return b.String()
}
