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

package uci

import (
	"bufio"
	"bytes"
	"os"
	"path"
	"runtime"
	"strings"
	"testing"

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

func TestLoopExitsOnQuit(t *testing.T) {
	u := NewHandler()
	u.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buf := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buf)
	u.Loop()
	assert.Contains(t, buf.String(), "uciok")
}

func TestUciCommand(t *testing.T) {
	u := NewHandler()
	result := u.Command("uci")
	assert.Contains(t, result, "id name "+engineName)
	assert.Contains(t, result, "uciok")
}

func TestIsReadyCommand(t *testing.T) {
	u := NewHandler()
	result := u.Command("isready")
	assert.Contains(t, result, "readyok")
}

func TestPositionCommand(t *testing.T) {
	u := NewHandler()

	u.Command("position startpos")
	assert.Equal(t, position.StartFen, u.myPosition.Fen())

	u.Command("position fen " + position.StartFen)
	assert.Equal(t, position.StartFen, u.myPosition.Fen())

	before := u.myPosition
	u.Command("position fen")
	assert.Same(t, before, u.myPosition, "malformed command leaves position unchanged")

	u.Command("position startpos moves e2e4 e7e5 g1f3 b8c6")
	assert.Equal(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", u.myPosition.Fen())

	before = u.myPosition
	u.Command("position startpos moves e2e4 e7e5 bogusmove")
	assert.Same(t, before, u.myPosition, "illegal move leaves prior position unchanged")
}

func TestGoDepthReturnsBestMove(t *testing.T) {
	u := NewHandler()
	u.Command("position fen 6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	result := u.Command("go depth 2")
	assert.Contains(t, result, "bestmove a1a8")
}

func TestGoPerftReportsNodeCount(t *testing.T) {
	u := NewHandler()
	u.Command("position startpos")
	result := u.Command("go perft 2")
	assert.Contains(t, result, "Nodes searched: 400")
}
