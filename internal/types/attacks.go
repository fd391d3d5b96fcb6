package types

// This file holds the one-shot initialization of every precomputed attack
// table: knight and king hops, pawn attacks, magic-bitboard sliding attacks
// for rooks and bishops, and the between-squares ("slider range") tables
// used for check evasion and pin-ray restriction.

var (
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
	pawnAttacks   [2][SqLength]Bitboard

	rookMagics   [SqLength]Magic
	bishopMagics [SqLength]Magic
	rookTable    []Bitboard
	bishopTable  []Bitboard

	// intermediate[a][b] is the set of squares strictly between a and b if
	// they share a rank, file or diagonal; otherwise empty. This is the
	// spec's slider_range[a][b].
	intermediate [SqLength][SqLength]Bitboard

	// rayBb[o][sq] is the full ray from sq in orientation o, including
	// every square further out to the edge of the board, not including sq.
	rayBb [OrientLength][SqLength]Bitboard

	initialized bool
)

var knightDeltas = [8]Direction{
	Direction(-17), Direction(-15), Direction(-10), Direction(-6),
	Direction(6), Direction(10), Direction(15), Direction(17),
}

// knightFileDelta constrains which of the eight raw deltas above are legal
// from a given square, keyed by the expected file delta (to reject wraps).
var knightFileDelta = map[Direction]int{
	-17: -1, -15: 1, -10: -2, -6: 2, 6: -2, 10: 2, 15: -1, 17: 1,
}

func knightStep(sq Square, d Direction) Square {
	to := Square(int(sq) + int(d))
	if !to.IsValid() {
		return SqNone
	}
	want := knightFileDelta[d]
	if int(to.FileOf())-int(sq.FileOf()) != want {
		return SqNone
	}
	return to
}

// Init builds every precomputed table. Must be called once before any
// move generation or attack query; safe to call more than once (idempotent
// after the first call).
func Init() {
	if initialized {
		return
	}

	for f := FileA; f <= FileH; f++ {
		fileBb[f] = 0
		for r := Rank8; r <= Rank1; r++ {
			fileBb[f].PushSquare(MakeSquare(f, r))
		}
	}
	FileA_Bb, FileB_Bb, FileC_Bb, FileD_Bb = fileBb[FileA], fileBb[FileB], fileBb[FileC], fileBb[FileD]
	FileE_Bb, FileF_Bb, FileG_Bb, FileH_Bb = fileBb[FileE], fileBb[FileF], fileBb[FileG], fileBb[FileH]

	for r := Rank8; r <= Rank1; r++ {
		rankBb[r] = 0
		for f := FileA; f <= FileH; f++ {
			rankBb[r].PushSquare(MakeSquare(f, r))
		}
	}
	Rank8_Bb, Rank7_Bb, Rank6_Bb, Rank5_Bb = rankBb[Rank8], rankBb[Rank7], rankBb[Rank6], rankBb[Rank5]
	Rank4_Bb, Rank3_Bb, Rank2_Bb, Rank1_Bb = rankBb[Rank4], rankBb[Rank3], rankBb[Rank2], rankBb[Rank1]

	initKnightAndKingAttacks()
	initPawnAttacks()
	initRaysAndIntermediate()

	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)
	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)

	initialized = true
}

func initKnightAndKingAttacks() {
	for sq := SqA8; sq <= SqH1; sq++ {
		var kn, ki Bitboard
		for _, d := range knightDeltas {
			if to := knightStep(sq, d); to != SqNone {
				kn.PushSquare(to)
			}
		}
		knightAttacks[sq] = kn
		for o := OrientN; o < OrientLength; o++ {
			if to := sq.To(o.Direction()); to != SqNone {
				ki.PushSquare(to)
			}
		}
		kingAttacks[sq] = ki
	}
}

func initPawnAttacks() {
	for sq := SqA8; sq <= SqH1; sq++ {
		var wAtt, bAtt Bitboard
		if to := sq.To(NorthEast); to != SqNone {
			wAtt.PushSquare(to)
		}
		if to := sq.To(NorthWest); to != SqNone {
			wAtt.PushSquare(to)
		}
		if to := sq.To(SouthEast); to != SqNone {
			bAtt.PushSquare(to)
		}
		if to := sq.To(SouthWest); to != SqNone {
			bAtt.PushSquare(to)
		}
		pawnAttacks[White][sq] = wAtt
		pawnAttacks[Black][sq] = bAtt
	}
}

func initRaysAndIntermediate() {
	for sq := SqA8; sq <= SqH1; sq++ {
		for o := OrientN; o < OrientLength; o++ {
			var ray Bitboard
			s := sq
			for {
				to := s.To(o.Direction())
				if to == SqNone {
					break
				}
				ray.PushSquare(to)
				s = to
			}
			rayBb[o][sq] = ray
		}
	}
	for a := SqA8; a <= SqH1; a++ {
		for o := OrientN; o < OrientLength; o++ {
			s := a
			var between Bitboard
			for {
				to := s.To(o.Direction())
				if to == SqNone {
					break
				}
				if rayBb[o][a].Has(to) {
					intermediate[a][to] = between
				}
				between.PushSquare(to)
				s = to
			}
		}
	}
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// PawnAttacks returns the pawn-capture attack set from sq for color c.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

// Intermediate returns the set of squares strictly between sq1 and sq2 if
// they lie on a shared rank, file or diagonal, else the empty bitboard.
// This is the spec's slider_range[a][b].
func Intermediate(sq1, sq2 Square) Bitboard {
	return intermediate[sq1][sq2]
}

// Ray returns the full ray of squares from sq in orientation o, out to the
// edge of the board, not including sq itself.
func Ray(o Orientation, sq Square) Bitboard {
	return rayBb[o][sq]
}
