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

// Package evaluator scores a position for the search: material plus
// piece-square tables, maintained incrementally by the position itself and
// read out here from the side to move's perspective.
package evaluator

import (
	"github.com/kjd-chess/harrier/internal/config"
	"github.com/kjd-chess/harrier/internal/position"
	. "github.com/kjd-chess/harrier/internal/types"
)

// Evaluator tracks the running material+PST score alongside a Position,
// mirroring Position.MakeMove/UndoMove's own incremental bookkeeping one
// ply behind the search: InitScore seeds it from scratch, UpdateScore
// applies the signed delta MakeMove/UndoMove already computed.
type Evaluator struct {
	position *position.Position
	score    Value
}

// NewEvaluator creates an Evaluator with no attached position.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// InitScore attaches p as the evaluator's current position and recomputes
// score from scratch off p's own incrementally-maintained PsqScore. Called
// once per search root, where there is no prior delta to apply.
func (e *Evaluator) InitScore(p *position.Position) {
	e.position = p
	e.score = p.PsqScore()
}

// UpdateScore applies delta to the running score. The caller passes
// UndoInfo.ScoreDelta after MakeMove and its negation after UndoMove, the
// same signed-delta shape Position itself uses internally.
func (e *Evaluator) UpdateScore(delta Value) {
	e.score += delta
}

// Score returns the running material+PST score from side's point of view
// plus a tempo bonus, or ValueDraw if the position has insufficient
// material for either side to force mate. This is the value the side to
// move wants to maximize, as negamax requires.
func (e *Evaluator) Score(side Color) Value {
	if e.position.HasInsufficientMaterial() {
		return ValueDraw
	}
	v := e.score
	if side == Black {
		v = -v
	}
	return v + Value(config.Settings.Eval.Tempo)
}
