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

// Package testsuite runs EPD (Extended Position Description) test files
// against the search: each line is a FEN plus a "bm" (best move), "am"
// (avoid move) or "dm" (direct mate) opcode. These are the only three
// opcodes implemented, the ones useful for sanity-checking a move
// generator and search rather than full engine strength testing.
// https://www.chessprogramming.org/Extended_Position_Description
package testsuite

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/kjd-chess/harrier/internal/logging"
	"github.com/kjd-chess/harrier/internal/movegen"
	"github.com/kjd-chess/harrier/internal/moveslice"
	"github.com/kjd-chess/harrier/internal/position"
	"github.com/kjd-chess/harrier/internal/search"
	. "github.com/kjd-chess/harrier/internal/types"
)

var out = message.NewPrinter(language.English)
var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// testType is the EPD opcode a Test was built from.
type testType uint8

const (
	noneType testType = iota
	dmType
	bmType
	amType
)

func (tt testType) String() string {
	switch tt {
	case bmType:
		return "bm"
	case amType:
		return "am"
	case dmType:
		return "dm"
	default:
		return "n/a"
	}
}

// resultType is the outcome of running one Test.
type resultType uint8

const (
	notTested resultType = iota
	failed
	success
)

func (rt resultType) String() string {
	switch rt {
	case failed:
		return "Failed"
	case success:
		return "Success"
	default:
		return "Not tested"
	}
}

// SuiteResult sums the per-test outcomes of one TestSuite run.
type SuiteResult struct {
	Counter        int
	SuccessCounter int
	FailedCounter  int
	NotTested      int
	Nodes          uint64
	Time           time.Duration
}

// Test is one EPD line: the position, what's being asked of it, and -
// once RunTests has run - the actual result.
type Test struct {
	id          string
	fen         string
	line        string
	tType       testType
	targetMoves moveslice.MoveSlice
	mateDepth   int

	actual Move
	value  Value
	rType  resultType
}

// TestSuite is every Test read from one EPD file, plus the search budget
// to run them with.
type TestSuite struct {
	Tests      []*Test
	MoveTime   time.Duration
	Depth      int
	FilePath   string
	LastResult *SuiteResult
}

// NewTestSuite reads filePath and builds a Test per recognized EPD line.
func NewTestSuite(filePath string, moveTime time.Duration, depth int) (*TestSuite, error) {
	lines, err := readLines(filePath)
	if err != nil {
		return nil, err
	}
	ts := &TestSuite{
		Tests:    make([]*Test, 0, len(lines)),
		MoveTime: moveTime,
		Depth:    depth,
		FilePath: filePath,
	}
	for _, line := range lines {
		if t := parseTest(line); t != nil {
			ts.Tests = append(ts.Tests, t)
		}
	}
	return ts, nil
}

// RunTests runs every Test in ts sequentially, with a fresh Search per
// test, and stores a SuiteResult in ts.LastResult.
func (ts *TestSuite) RunTests() {
	if len(ts.Tests) == 0 {
		out.Println("no tests to run")
		return
	}

	start := time.Now()
	maxDepth := ts.Depth
	if maxDepth <= 0 {
		maxDepth = 64
	}
	var totalNodes uint64

	for i, t := range ts.Tests {
		out.Printf("test %d of %d: %s (target %s %s)\n", i+1, len(ts.Tests), t.fen, t.tType, t.targetMoves.StringUci())
		s := search.NewSearch()
		p, err := position.NewPosition(t.fen)
		if err != nil {
			log.Warningf("test %q: invalid fen: %v", t.id, err)
			t.rType = notTested
			continue
		}
		result := s.IterativeDeepening(p, maxDepth, ts.MoveTime)
		t.actual = result.BestMove
		t.value = result.Value
		t.rType = judge(t, result)
		totalNodes += s.Statistics().NodesVisited
		out.Printf("  result: %s, move %s, value %s\n\n", t.rType, t.actual.UciString(p.NextPlayer()), formatValue(t.value))
	}

	sr := &SuiteResult{Nodes: totalNodes, Time: time.Since(start)}
	for _, t := range ts.Tests {
		sr.Counter++
		switch t.rType {
		case success:
			sr.SuccessCounter++
		case failed:
			sr.FailedCounter++
		default:
			sr.NotTested++
		}
	}
	ts.LastResult = sr

	out.Printf("%s: %d/%d successful (%d failed, %d not tested), %s, %d nodes\n",
		ts.FilePath, sr.SuccessCounter, sr.Counter, sr.FailedCounter, sr.NotTested, sr.Time, sr.Nodes)
}

// judge decides whether result satisfies t's opcode.
func judge(t *Test, result search.Result) resultType {
	switch t.tType {
	case dmType:
		if result.Value.IsMateValue() && result.Value.MateDistance() == t.mateDepth {
			return success
		}
		return failed
	case bmType:
		for i := 0; i < t.targetMoves.Len(); i++ {
			if t.targetMoves.At(i) == result.BestMove {
				return success
			}
		}
		return failed
	case amType:
		for i := 0; i < t.targetMoves.Len(); i++ {
			if t.targetMoves.At(i) == result.BestMove {
				return failed
			}
		}
		return success
	default:
		return notTested
	}
}

func formatValue(v Value) string {
	if v.IsMateValue() {
		return fmt.Sprintf("mate %d", v.MateDistance())
	}
	return fmt.Sprintf("cp %d", int(v))
}

var leadingComment = regexp.MustCompile(`^\s*#.*$`)
var trailingComment = regexp.MustCompile(`^(.*)#([^;]*)$`)
var epdLine = regexp.MustCompile(`^\s*(.*?) (bm|dm|am) (.*?);(.* id "(.*?)";)?.*$`)

// parseTest turns one EPD line into a Test, or nil if the line is blank,
// a comment, or doesn't match a recognized opcode.
func parseTest(line string) *Test {
	line = strings.TrimSpace(line)
	line = leadingComment.ReplaceAllString(line, "")
	line = trailingComment.ReplaceAllString(line, "")
	if line == "" {
		return nil
	}

	m := epdLine.FindStringSubmatch(line)
	if m == nil {
		log.Warningf("no EPD found in line: %s", line)
		return nil
	}
	fen := m[1]
	p, err := position.NewPosition(fen)
	if err != nil {
		log.Warningf("EPD fen is invalid: %s", fen)
		return nil
	}

	var tt testType
	switch m[2] {
	case "dm":
		tt = dmType
	case "bm":
		tt = bmType
	case "am":
		tt = amType
	default:
		log.Warningf("unsupported EPD opcode: %s", m[2])
		return nil
	}

	targets := moveslice.NewMoveSlice(4)
	mateDepth := 0
	if tt == bmType || tt == amType {
		for _, token := range strings.Fields(strings.NewReplacer("!", "", "?", "").Replace(m[3])) {
			move, err := movegen.MoveFromSan(p, token)
			if err != nil {
				log.Warningf("EPD target move invalid: %v", err)
				continue
			}
			targets.PushBack(move)
		}
		if targets.Len() == 0 {
			log.Warningf("EPD line has no valid target moves: %s", m[3])
			return nil
		}
	} else {
		mateDepth, err = strconv.Atoi(strings.TrimSpace(m[3]))
		if err != nil {
			log.Warningf("EPD direct-mate depth invalid: %s", m[3])
			return nil
		}
	}

	return &Test{
		id:          m[5],
		fen:         fen,
		line:        line,
		tType:       tt,
		targetMoves: *targets,
		mateDepth:   mateDepth,
	}
}

func readLines(filePath string) ([]string, error) {
	if !filepath.IsAbs(filePath) {
		wd, _ := os.Getwd()
		filePath = filepath.Join(wd, filePath)
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("testsuite: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("testsuite: %w", err)
	}
	return lines, nil
}
