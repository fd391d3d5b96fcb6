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
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kjd-chess/harrier/internal/moveslice"
	"github.com/kjd-chess/harrier/internal/position"
	. "github.com/kjd-chess/harrier/internal/types"
)

// Perft counts the legal move tree below a position to a fixed depth: the
// standard correctness oracle for a legal move generator.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	CheckCounter     uint64
}

// Count runs perft on p to the given depth, making and undoing moves on p
// itself (p is back in its original state on return), and returns the
// total leaf-node count with its per-kind leaf counters. CheckCounter is
// not tallied and stays zero.
func Count(p *position.Position, depth int) Perft {
	var perft Perft
	if depth <= 0 {
		perft.Nodes = 1
		return perft
	}
	perft.Nodes = perft.search(p, depth)
	return perft
}

func (perft *Perft) search(p *position.Position, depth int) uint64 {
	list := moveslice.NewMoveSlice(64)
	Generate(p, list)

	if depth == 1 {
		var nodes uint64
		list.ForEach(func(i int) {
			m := list.At(i)
			perft.tallyLeaf(p, m)
			u := p.MakeMove(m)
			nodes++
			p.UndoMove(m, u)
		})
		return nodes
	}

	var nodes uint64
	list.ForEach(func(i int) {
		m := list.At(i)
		u := p.MakeMove(m)
		nodes += perft.search(p, depth-1)
		p.UndoMove(m, u)
	})
	return nodes
}

func (perft *Perft) tallyLeaf(p *position.Position, m Move) {
	if m.IsEnPassant() {
		perft.EnpassantCounter++
		perft.CaptureCounter++
	} else if p.GetPiece(m.To()) != PieceNone {
		perft.CaptureCounter++
	}
	if m.IsCastle() {
		perft.CastleCounter++
	}
	if m.IsPromotion() {
		perft.PromotionCounter++
	}
}

// DivideResult is the node count contributed by a single root move.
type DivideResult struct {
	Move  Move
	Nodes uint64
}

// Divide runs perft independently below each legal root move of p,
// concurrently, and returns one DivideResult per root move plus the total
// node count across all of them. This is the "go perft N" breakdown the
// external layer prints.
func Divide(p *position.Position, depth int) ([]DivideResult, uint64, error) {
	list := moveslice.NewMoveSlice(64)
	Generate(p, list)

	results := make([]DivideResult, list.Len())
	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < list.Len(); i++ {
		i := i
		m := list.At(i)
		g.Go(func() error {
			// Each goroutine works its own Position copy; Make/Undo mutate
			// shared state and must never run concurrently on one board.
			scratch := p.Clone()
			u := scratch.MakeMove(m)
			var nodes uint64
			if depth <= 1 {
				nodes = 1
			} else {
				nodes = Count(scratch, depth-1).Nodes
			}
			scratch.UndoMove(m, u)
			results[i] = DivideResult{Move: m, Nodes: nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return results, total, nil
}
