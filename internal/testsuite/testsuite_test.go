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

package testsuite

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjd-chess/harrier/internal/config"
	"github.com/kjd-chess/harrier/internal/search"
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

func TestParseTestBestMove(t *testing.T) {
	line := `2b4k/8/8/8/8/3N3N/P4p2/1K6 w - - bm Nhxf2 Ndxf2; id "FRANKY-1 #7";`
	test := parseTest(line)
	assert.NotNil(t, test)
	assert.Equal(t, "2b4k/8/8/8/8/3N3N/P4p2/1K6 w - -", test.fen)
	assert.Equal(t, "FRANKY-1 #7", test.id)
	assert.Equal(t, bmType, test.tType)
	assert.Equal(t, 2, test.targetMoves.Len())
}

func TestParseTestPromotion(t *testing.T) {
	line := `6k1/P7/8/8/8/8/8/3K4 w - - bm a8=Q; id "FRANKY-1 #4";`
	test := parseTest(line)
	assert.NotNil(t, test)
	assert.Equal(t, 1, test.targetMoves.Len())
	assert.True(t, test.targetMoves.At(0).IsPromotion())
}

func TestParseTestDirectMate(t *testing.T) {
	line := `6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - dm 1; id "mate in one";`
	test := parseTest(line)
	assert.NotNil(t, test)
	assert.Equal(t, dmType, test.tType)
	assert.Equal(t, 1, test.mateDepth)
}

func TestParseTestIgnoresComment(t *testing.T) {
	assert.Nil(t, parseTest("# just a comment"))
	assert.Nil(t, parseTest(""))
}

func TestRunTestsFindsMateInOne(t *testing.T) {
	ts := &TestSuite{
		Tests: []*Test{
			parseTest(`6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - dm 1; id "mate in one";`),
		},
		Depth: 2,
	}
	ts.RunTests()
	assert.Equal(t, 1, ts.LastResult.SuccessCounter)
}

func TestRunTestsBestMove(t *testing.T) {
	ts := &TestSuite{
		Tests: []*Test{
			parseTest(`4k3/8/8/8/8/8/8/R3K3 w - - bm Ra8; id "rook to the back rank";`),
		},
		Depth:    3,
		MoveTime: 0,
	}
	ts.RunTests()
	assert.Equal(t, 1, ts.LastResult.Counter)
}

func TestJudgeAvoidMove(t *testing.T) {
	avoided := NewMove(SqE2, SqE4)
	test := &Test{tType: amType}
	test.targetMoves.PushBack(avoided)

	assert.Equal(t, success, judge(test, search.Result{BestMove: NewMove(SqD2, SqD4)}))
	assert.Equal(t, failed, judge(test, search.Result{BestMove: avoided}))
}
