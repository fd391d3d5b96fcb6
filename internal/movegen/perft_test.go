package movegen

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjd-chess/harrier/internal/moveslice"
	"github.com/kjd-chess/harrier/internal/position"
	. "github.com/kjd-chess/harrier/internal/types"
)

func TestMain(m *testing.M) {
	Init()
	InitZobrist()
	os.Exit(m.Run())
}

func TestPerftStartPosShallow(t *testing.T) {
	p, _ := position.NewPosition()
	assert.Equal(t, uint64(20), Count(p, 1).Nodes)
	assert.Equal(t, uint64(400), Count(p, 2).Nodes)
	assert.Equal(t, uint64(8902), Count(p, 3).Nodes)
	assert.Equal(t, uint64(197281), Count(p, 4).Nodes)
}

func TestPerftStartPosDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("deep perft skipped in -short mode")
	}
	p, _ := position.NewPosition()
	assert.Equal(t, uint64(4865609), Count(p, 5).Nodes)
	assert.Equal(t, uint64(119060324), Count(p, 6).Nodes)
}

func TestPerftKiwipete(t *testing.T) {
	if testing.Short() {
		t.Skip("deep perft skipped in -short mode")
	}
	p, _ := position.NewPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.Equal(t, uint64(193690690), Count(p, 5).Nodes)
}

func TestPerftEndgameRook(t *testing.T) {
	if testing.Short() {
		t.Skip("deep perft skipped in -short mode")
	}
	p, _ := position.NewPosition("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	assert.Equal(t, uint64(11030083), Count(p, 6).Nodes)
}

func TestPerftPromotionHeavy(t *testing.T) {
	if testing.Short() {
		t.Skip("deep perft skipped in -short mode")
	}
	p, _ := position.NewPosition("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	assert.Equal(t, uint64(15833292), Count(p, 5).Nodes)
}

func TestPerftEnPassantDiscoveredCheck(t *testing.T) {
	p, _ := position.NewPosition("8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1")
	assert.Equal(t, uint64(9), Count(p, 1).Nodes)
}

func TestDivideMatchesTotal(t *testing.T) {
	p, _ := position.NewPosition()
	results, total, err := Divide(p, 3)
	assert.NoError(t, err)
	assert.Equal(t, uint64(8902), total)
	var sum uint64
	for _, r := range results {
		sum += r.Nodes
	}
	assert.Equal(t, total, sum)
}

func TestGenerateNoMovesLeaveKingInCheck(t *testing.T) {
	p, _ := position.NewPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	list := moveslice.NewMoveSlice(64)
	Generate(p, list)
	list.ForEach(func(i int) {
		m := list.At(i)
		u := p.MakeMove(m)
		mover := p.NextPlayer().Flip()
		inCheck := p.IsAttacked(p.KingSquare(mover), mover.Flip())
		p.UndoMove(m, u)
		assert.False(t, inCheck, "move %s left %s king in check", m, mover)
	})
}
