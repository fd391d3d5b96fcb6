/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import "github.com/kjd-chess/harrier/internal/assert"

// Magic holds the magic-bitboard lookup data relevant for a single square:
// the relevance mask, the magic multiplier, the shift, and the slice of
// this square's region of the shared attack table.
// Taken from Stockfish; see https://stockfishchess.org/about/
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index computes the table index for an occupancy via the fancy-magic
// formula: ((occupied & mask) * magic) >> shift.
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

// initMagics computes, for every square, the relevance mask, shift, and a
// magic multiplier that perfectly hashes every blocker subset of the mask
// to the correct sliding-attack bitboard. Enumerates blocker subsets via
// the Carry-Rippler trick and verifies each candidate magic against every
// subset before accepting it.
// Taken from Stockfish.
func initMagics(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction) {
	// Optimal PRNG seeds to find a good magic in few attempts, one per rank.
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var edges, b Bitboard
	cnt := 0
	size := 0
	var epoch [4096]int

	for sq := SqA8; sq <= SqH1; sq++ {
		edges = ((Rank8_Bb | Rank1_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		m := &(*magics)[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		if sq == SqA8 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		// Enumerate every subset of the mask (Carry-Rippler) and record the
		// true ray attack for that occupancy subset.
		b = 0
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[int(sq.RankOf())%8])

		for i := 0; i < size; {
			for m.Magic = 0; ; {
				m.Magic = Bitboard(rng.sparseRand())
				if ((m.Magic * m.Mask) >> 56).PopCount() < 6 {
					break
				}
			}

			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack brute-forces the sliding attack set from sq along the
// given directions given board occupation occupied. Construction-time only
// -- not used during move generation or search.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		s := sq
		for {
			next := s.To(directions[i])
			if next == SqNone {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// GetAttacksBb returns the attack bitboard for a sliding piece type (Rook,
// Bishop, or Queen) on sq given the full board occupancy occ. Panics for
// any non-sliding piece type; callers use the pseudo-attack tables for
// those instead.
func GetAttacksBb(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case PtBishop:
		m := &bishopMagics[sq]
		return m.Attacks[m.index(occ)]
	case PtRook:
		m := &rookMagics[sq]
		return m.Attacks[m.index(occ)]
	case PtQueen:
		mb := &bishopMagics[sq]
		mr := &rookMagics[sq]
		return mb.Attacks[mb.index(occ)] | mr.Attacks[mr.index(occ)]
	default:
		if assert.DEBUG {
			assert.Assert(false, "GetAttacksBb only supports sliding piece types")
		}
		return BbZero
	}
}

// PrnG is the xorshift64star pseudo-random generator used for magic-number
// search. Based on code written and dedicated to the public domain by
// Sebastiano Vigna (2014).
type PrnG struct {
	s uint64
}

func newPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

func (r *PrnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand produces candidates with roughly 1/8th of their bits set on
// average, which tends to yield good magics faster.
func (r *PrnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
