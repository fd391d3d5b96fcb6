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

// Package search implements negamax alpha-beta with iterative deepening
// over the kernel's move generator and evaluator. The core is
// single-threaded and synchronous: FindBestMove and IterativeDeepening run
// on their caller's goroutine and return when the search is done. Stop
// sets a flag that IterativeDeepening checks before starting each depth.
package search

import (
	"time"

	"github.com/op/go-logging"

	"github.com/kjd-chess/harrier/internal/evaluator"
	myLogging "github.com/kjd-chess/harrier/internal/logging"
	"github.com/kjd-chess/harrier/internal/movegen"
	"github.com/kjd-chess/harrier/internal/moveslice"
	"github.com/kjd-chess/harrier/internal/position"
	. "github.com/kjd-chess/harrier/internal/types"
	"github.com/kjd-chess/harrier/internal/util"
)

// Result is the outcome of a completed (or deadline-stopped) search.
type Result struct {
	BestMove Move
	Value    Value
	Depth    int
}

// Search holds the state of one engine instance's search: its logger,
// evaluator, and the scratch move lists reused across recursion depths.
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	eval *evaluator.Evaluator

	stopFlag  *util.Bool
	startTime time.Time
	deadline  time.Time

	lists      []*moveslice.MoveSlice
	rootDepth  int
	statistics Statistics
}

// NewSearch creates a ready-to-use Search instance.
func NewSearch() *Search {
	return &Search{
		log:      myLogging.GetLog(),
		slog:     myLogging.GetSearchLog(),
		eval:     evaluator.NewEvaluator(),
		stopFlag: util.NewBool(false),
	}
}

// Stop requests the running search return at the next depth boundary.
// Has no effect mid-depth: per the kernel's concurrency model there are
// no suspension points inside a single negamax call.
func (s *Search) Stop() {
	s.stopFlag.Store(true)
}

// Statistics returns the statistics gathered by the most recent search.
func (s *Search) Statistics() Statistics {
	return s.statistics
}

// scratchLists grows s.lists, if needed, so every recursion depth up to
// maxDepth has its own reusable MoveSlice: the search owns a scratch array
// of move lists sized to max_depth, cleared rather than freed between
// invocations.
func (s *Search) scratchLists(maxDepth int) {
	for len(s.lists) <= maxDepth {
		s.lists = append(s.lists, moveslice.NewMoveSlice(64))
	}
}

// FindBestMove runs one fixed-depth negamax search from the root and
// returns the best move and its score.
func (s *Search) FindBestMove(p *position.Position, depth int) (Move, Value) {
	s.eval.InitScore(p)
	s.scratchLists(depth)
	s.rootDepth = depth
	best, value := s.negamaxRoot(p, depth)
	return best, value
}

// IterativeDeepening runs FindBestMove for depths 1..maxDepth, keeping the
// latest complete result and stopping when the wall-clock deadline is
// reached, checked only between depths; the in-flight depth always
// completes. A zero deadline means no time limit.
func (s *Search) IterativeDeepening(p *position.Position, maxDepth int, deadline time.Duration) Result {
	s.stopFlag.Store(false)
	s.startTime = time.Now()
	if deadline > 0 {
		s.deadline = s.startTime.Add(deadline)
	} else {
		s.deadline = time.Time{}
	}
	s.statistics = Statistics{}

	var result Result
	for d := 1; d <= maxDepth; d++ {
		if s.stopFlag.Load() {
			break
		}
		s.statistics.CurrentIterationDepth = d
		move, value := s.FindBestMove(p, d)
		result = Result{BestMove: move, Value: value, Depth: d}
		s.statistics.BestMove = move
		s.statistics.BestValue = value
		s.slog.Debugf("depth %d: %s (%d), nodes %d", d, move, value, s.statistics.NodesVisited)

		if !s.deadline.IsZero() && time.Now().After(s.deadline) {
			break
		}
	}
	return result
}

// negamaxRoot runs one ply of negamax at the root, tracking the best move
// alongside the usual alpha-beta bookkeeping so FindBestMove can return a
// move, not just a score.
func (s *Search) negamaxRoot(p *position.Position, depth int) (Move, Value) {
	list := s.lists[0]
	list.Clear()
	movegen.Generate(p, list)

	if list.Len() == 0 {
		return MoveNone, ValueZero
	}
	s.orderMoves(p, list)

	alpha, beta := -ValueInfinite, ValueInfinite
	best := list.At(0)
	bestValue := -ValueInfinite

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		u := p.MakeMove(m)
		s.eval.UpdateScore(u.ScoreDelta)
		s.statistics.NodesVisited++
		v := -s.negamax(p, depth-1, -beta, -alpha)
		p.UndoMove(m, u)
		s.eval.UpdateScore(-u.ScoreDelta)

		if v > bestValue {
			bestValue = v
			best = m
		}
		if v > alpha {
			alpha = v
		}
	}
	return best, bestValue
}

// negamax implements the spec's negamax-with-alpha-beta pseudocode
// verbatim: depth-0 returns the evaluator's score for the side to move,
// an empty move list returns -MATE (plus the ply distance from the root,
// so MateDistance can count the moves to it) if in check else a draw, and
// the 50-move rule is checked before generating moves.
func (s *Search) negamax(p *position.Position, depth int, alpha, beta Value) Value {
	if depth == 0 {
		s.statistics.LeafsEvaluated++
		return s.eval.Score(p.NextPlayer())
	}
	if p.IsDraw50() {
		return ValueDraw
	}

	list := s.lists[depth]
	list.Clear()
	movegen.Generate(p, list)

	if list.Len() == 0 {
		if p.IsAttacked(p.KingSquare(p.NextPlayer()), p.NextPlayer().Flip()) {
			return -ValueMate + Value(s.rootDepth-depth)
		}
		return ValueDraw
	}
	s.orderMoves(p, list)

	best := Value(-ValueInfinite)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		u := p.MakeMove(m)
		s.eval.UpdateScore(u.ScoreDelta)
		s.statistics.NodesVisited++
		v := -s.negamax(p, depth-1, -beta, -alpha)
		p.UndoMove(m, u)
		s.eval.UpdateScore(-u.ScoreDelta)

		if v > best {
			best = v
		}
		if v > alpha {
			alpha = v
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			break
		}
	}
	return best
}

// orderMoves applies the spec's baseline ordering: captures (including
// en-passant) before quiets, promotions before non-promotions, ties
// broken stably by generation order.
func (s *Search) orderMoves(p *position.Position, list *moveslice.MoveSlice) {
	list.Sort(func(m Move) int {
		return moveslice.CaptureBeforeQuietKey(m, func(mv Move) bool {
			return p.GetPiece(mv.To()) != PieceNone
		})
	})
}
