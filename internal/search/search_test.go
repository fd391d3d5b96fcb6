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

package search

import (
	"os"
	"path"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kjd-chess/harrier/internal/config"
	"github.com/kjd-chess/harrier/internal/position"
	. "github.com/kjd-chess/harrier/internal/types"
)

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	Init()
	InitZobrist()
	os.Exit(m.Run())
}

func TestFindBestMoveFindsMateInOne(t *testing.T) {
	// White to move: a king boxed in by its own pawns, Ra1-a8 is a back-rank mate.
	p, err := position.NewPosition("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	assert.NoError(t, err)
	s := NewSearch()
	move, value := s.FindBestMove(p, 2)
	assert.Equal(t, SqA1, move.From())
	assert.Equal(t, SqA8, move.To())
	assert.Greater(t, int(value), int(ValueMate)-100)
}

func TestFindBestMoveStalemateScoresDraw(t *testing.T) {
	// Black to move, stalemated: king has no moves and is not in check.
	p, err := position.NewPosition("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	s := NewSearch()
	_, value := s.FindBestMove(p, 1)
	assert.Equal(t, ValueDraw, value)
}

func TestIterativeDeepeningRespectsDeadline(t *testing.T) {
	p, err := position.NewPosition()
	assert.NoError(t, err)
	s := NewSearch()
	start := time.Now()
	result := s.IterativeDeepening(p, 20, 50*time.Millisecond)
	assert.True(t, result.BestMove.IsValid())
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestIterativeDeepeningFixedDepthCompletes(t *testing.T) {
	p, err := position.NewPosition()
	assert.NoError(t, err)
	s := NewSearch()
	result := s.IterativeDeepening(p, 3, 0)
	assert.Equal(t, 3, result.Depth)
	assert.True(t, result.BestMove.IsValid())
}

func TestPositionUnchangedAfterSearch(t *testing.T) {
	p, err := position.NewPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	before := p.Fen()
	s := NewSearch()
	s.FindBestMove(p, 3)
	assert.Equal(t, before, p.Fen())
}
