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

package evaluator

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjd-chess/harrier/internal/position"
	. "github.com/kjd-chess/harrier/internal/types"
)

func TestMain(m *testing.M) {
	Init()
	InitZobrist()
	os.Exit(m.Run())
}

func TestScoreStartPositionIsSymmetricModuloTempo(t *testing.T) {
	p, err := position.NewPosition()
	assert.NoError(t, err)
	e := NewEvaluator()
	e.InitScore(p)
	white := e.Score(White)
	black := e.Score(Black)
	// psq score is 0 for the symmetric start position, so both sides see
	// only the tempo bonus.
	assert.Equal(t, white, black)
}

func TestScoreFavorsMaterialAdvantage(t *testing.T) {
	// White is up a rook.
	p, err := position.NewPosition("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()
	e.InitScore(p)
	assert.Greater(t, int(e.Score(White)), 400)
	assert.Less(t, int(e.Score(Black)), -400)
}

func TestScoreInsufficientMaterialIsDraw(t *testing.T) {
	p, err := position.NewPosition("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()
	e.InitScore(p)
	assert.Equal(t, ValueDraw, e.Score(White))
	assert.Equal(t, ValueDraw, e.Score(Black))
}

func TestScoreTracksMakeUndo(t *testing.T) {
	p, err := position.NewPosition()
	assert.NoError(t, err)
	e := NewEvaluator()
	e.InitScore(p)
	before := p.PsqScore()

	m := NewMove(SqE2, SqE4)
	u := p.MakeMove(m)
	e.UpdateScore(u.ScoreDelta)
	assert.NotEqual(t, before, p.PsqScore())
	assert.Equal(t, p.PsqScore(), e.score)

	p.UndoMove(m, u)
	e.UpdateScore(-u.ScoreDelta)
	assert.Equal(t, before, p.PsqScore())
	assert.Equal(t, p.PsqScore(), e.score)
}
