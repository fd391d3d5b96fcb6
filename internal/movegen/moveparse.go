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

package movegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kjd-chess/harrier/internal/moveslice"
	"github.com/kjd-chess/harrier/internal/position"
	. "github.com/kjd-chess/harrier/internal/types"
)

var regexUciMove = regexp.MustCompile(`([a-h][1-8][a-h][1-8])([nbrqNBRQ])?`)

// MoveFromUci matches a UCI long-algebraic move string (e.g. "e2e4" or
// "e7e8q") against p's legal moves and returns the one move it names.
// This is deliberately a generate-and-compare-strings lookup rather than a
// direct decode, since the wire string alone can't distinguish an
// en-passant capture or a castle from a plain move with the same squares.
func MoveFromUci(p *position.Position, uciMove string) (Move, error) {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone, fmt.Errorf("move string %q does not match uci move pattern", uciMove)
	}
	movePart := matches[1]
	promoPart := strings.ToLower(matches[2])

	list := moveslice.NewMoveSlice(64)
	Generate(p, list)
	us := p.NextPlayer()
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.UciString(us) == movePart+promoPart {
			return m, nil
		}
	}
	return MoveNone, fmt.Errorf("uci move %q is not legal in position: %s", uciMove, p.String())
}

var regexSanMove = regexp.MustCompile(`([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?[!?+#]*`)

// MoveFromSan matches a short-algebraic (SAN) move string, as used by EPD
// test-suite files' "bm"/"am" opcodes, against p's legal moves. Returns an
// error if the string is malformed, ambiguous (matches more than one legal
// move) or names no legal move.
func MoveFromSan(p *position.Position, sanMove string) (Move, error) {
	matches := regexSanMove.FindStringSubmatch(strings.TrimSpace(sanMove))
	if matches == nil {
		return MoveNone, fmt.Errorf("move string %q does not match san move pattern", sanMove)
	}
	pieceLetter := matches[1]
	disambFile := matches[2]
	disambRank := matches[3]
	toSquare := matches[4]
	promoLetter := strings.ToLower(matches[6])

	list := moveslice.NewMoveSlice(64)
	Generate(p, list)

	found := MoveNone
	count := 0
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)

		if m.IsCastle() {
			castleStr := "O-O"
			if m.CastleSide() == CastleQueenSide {
				castleStr = "O-O-O"
			}
			if castleStr == toSquare {
				found = m
				count++
			}
			continue
		}

		to := m.To()
		if m.IsEnPassant() {
			to = m.EnPassantDestination(p.NextPlayer())
		}
		if to.String() != toSquare {
			continue
		}
		pt := p.GetPiece(m.From()).TypeOf()
		if pieceLetter == "" {
			if pt != PtPawn {
				continue
			}
		} else if !strings.EqualFold(pt.String(), pieceLetter) {
			continue
		}
		if disambFile != "" && m.From().FileOf().String() != disambFile {
			continue
		}
		if disambRank != "" && m.From().RankOf().String() != disambRank {
			continue
		}
		if m.IsPromotion() != (promoLetter != "") {
			continue
		}
		if m.IsPromotion() && m.PromotionType().String() != promoLetter {
			continue
		}
		found = m
		count++
	}

	if count > 1 {
		return MoveNone, fmt.Errorf("san move %q is ambiguous (%d matches) on position: %s", sanMove, count, p.String())
	}
	if count == 0 {
		return MoveNone, fmt.Errorf("san move %q is not legal in position: %s", sanMove, p.String())
	}
	return found, nil
}
