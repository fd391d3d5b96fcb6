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

// Package uci is the external text-protocol layer: it reads UCI commands
// from stdin and drives the position/search/movegen core, but holds none
// of the core's state or rules itself. Everything it decides - when a
// search runs, which position is current - is a thin dispatch over the
// core's public API.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kjd-chess/harrier/internal/config"
	myLogging "github.com/kjd-chess/harrier/internal/logging"
	"github.com/kjd-chess/harrier/internal/movegen"
	"github.com/kjd-chess/harrier/internal/position"
	"github.com/kjd-chess/harrier/internal/search"
	. "github.com/kjd-chess/harrier/internal/types"
)

var out = message.NewPrinter(language.English)

// engineName and engineAuthor answer the "uci" handshake.
const (
	engineName   = "Harrier"
	engineAuthor = "harrier contributors"
)

// Handler owns one engine instance's protocol state: the current
// position and search, and the io streams it reads commands from and
// writes responses to.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	log    *logging.Logger
	uciLog *logging.Logger

	mySearch   *search.Search
	myPosition *position.Position
}

// NewHandler creates a Handler wired to os.Stdin/os.Stdout. Replace InIo/
// OutIo before calling Loop to redirect them, e.g. in tests.
func NewHandler() *Handler {
	p, _ := position.NewPosition()
	return &Handler{
		InIo:       bufio.NewScanner(os.Stdin),
		OutIo:      bufio.NewWriter(os.Stdout),
		log:        myLogging.GetLog(),
		uciLog:     myLogging.GetUciLog(),
		mySearch:   search.NewSearch(),
		myPosition: p,
	}
}

// Loop reads commands from InIo until "quit" or EOF.
func (u *Handler) Loop() {
	for u.InIo.Scan() {
		if u.handleCommand(u.InIo.Text()) {
			return
		}
	}
}

// Command runs a single command line and returns everything it wrote to
// the protocol output. Mainly useful for tests.
func (u *Handler) Command(cmd string) string {
	saved := u.OutIo
	buf := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buf)
	u.handleCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = saved
	return buf.String()
}

var regexWhitespace = regexp.MustCompile(`\s+`)

// handleCommand dispatches a single line. Returns true if the engine
// should exit its read loop.
func (u *Handler) handleCommand(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	u.uciLog.Infof("<< %s", cmd)
	tokens := regexWhitespace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		u.uciCommand()
	case "isready":
		u.send("readyok")
	case "ucinewgame":
		u.uciNewGameCommand()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.mySearch.Stop()
	default:
		u.log.Warningf("unknown command: %s", cmd)
	}
	return false
}

// uciCommand answers the protocol handshake. This kernel exposes no
// configurable options (§1 Non-goals: no book/TT/pondering to toggle).
func (u *Handler) uciCommand() {
	u.send(fmt.Sprintf("id name %s", engineName))
	u.send(fmt.Sprintf("id author %s", engineAuthor))
	u.send("uciok")
}

func (u *Handler) uciNewGameCommand() {
	p, _ := position.NewPosition()
	u.myPosition = p
}

// positionCommand replaces the current position from "startpos" or
// "fen <6 tokens>", then replays any trailing "moves ...". A malformed
// command or an illegal move is logged and otherwise ignored, leaving the
// prior position unchanged.
func (u *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.log.Warningf("position command malformed: %v", tokens)
		return
	}
	i := 1
	var fen string
	switch tokens[i] {
	case "startpos":
		fen = position.StartFen
		i++
	case "fen":
		i++
		var b strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString(tokens[i])
			i++
		}
		fen = b.String()
		if strings.TrimSpace(fen) == "" {
			u.log.Warningf("position command malformed: %v", tokens)
			return
		}
	default:
		u.log.Warningf("position command malformed: %v", tokens)
		return
	}

	p, err := position.NewPosition(fen)
	if err != nil {
		u.log.Warningf("position command: invalid fen %q: %v", fen, err)
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m, err := movegen.MoveFromUci(p, tokens[i])
			if err != nil {
				u.log.Warningf("position command: %v", err)
				return
			}
			p.MakeMove(m)
		}
	}
	u.myPosition = p
	u.log.Debugf("new position: %s", u.myPosition.String())
}

// goCommand starts a search under "depth N", "movetime MS" or "perft N". A
// bare "go", or any subcommand this kernel doesn't special-case (e.g. the
// engine-vs-engine clock tokens "wtime"/"btime"), searches with the
// configured default depth and move time.
// The search runs synchronously on the caller's goroutine; the kernel has
// no background search loop to manage (§1 Non-goals).
func (u *Handler) goCommand(tokens []string) {
	if len(tokens) < 2 {
		u.search(config.Settings.Search.DefaultDepth, time.Duration(config.Settings.Search.DefaultMoveTimeMs)*time.Millisecond)
		return
	}
	switch tokens[1] {
	case "perft":
		depth := 4
		if len(tokens) > 2 {
			if d, err := strconv.Atoi(tokens[2]); err == nil {
				depth = d
			}
		}
		u.perft(depth)
	case "depth":
		depth := config.Settings.Search.DefaultDepth
		if len(tokens) > 2 {
			if d, err := strconv.Atoi(tokens[2]); err == nil {
				depth = d
			}
		}
		u.search(depth, 0)
	case "movetime":
		if len(tokens) < 3 {
			u.log.Warningf("go movetime malformed: %v", tokens)
			return
		}
		ms, err := strconv.ParseInt(tokens[2], 10, 64)
		if err != nil {
			u.log.Warningf("go movetime malformed: %v", tokens)
			return
		}
		u.search(64, time.Duration(ms)*time.Millisecond)
	default:
		u.search(config.Settings.Search.DefaultDepth, time.Duration(config.Settings.Search.DefaultMoveTimeMs)*time.Millisecond)
	}
}

// search runs iterative deepening to maxDepth (or until deadline, if
// non-zero), then reports one "info" line for the final result and the
// "bestmove" result.
func (u *Handler) search(maxDepth int, deadline time.Duration) {
	start := time.Now()
	result := u.mySearch.IterativeDeepening(u.myPosition, maxDepth, deadline)
	elapsed := time.Since(start)
	stats := u.mySearch.Statistics()

	nps := uint64(0)
	if elapsed > 0 {
		nps = uint64(float64(stats.NodesVisited) / elapsed.Seconds())
	}
	u.send(out.Sprintf("info depth %d score %s nodes %d nps %d time %d pv %s",
		result.Depth, formatScore(result.Value), stats.NodesVisited, nps,
		elapsed.Milliseconds(), result.BestMove.UciString(u.myPosition.NextPlayer())))
	u.send(fmt.Sprintf("bestmove %s", result.BestMove.UciString(u.myPosition.NextPlayer())))
}

// formatScore renders a Value as the UCI wire format expects: "cp N" for
// an ordinary evaluation, "mate N" (signed, in moves not plies) once the
// score is a forced mate.
func formatScore(v Value) string {
	if v.IsMateValue() {
		return fmt.Sprintf("mate %d", v.MateDistance())
	}
	return fmt.Sprintf("cp %d", int(v))
}

// perft runs movegen.Divide at depth and prints the teacher's per-move
// breakdown, followed by the total node count and nodes/second.
func (u *Handler) perft(depth int) {
	start := time.Now()
	results, total, err := movegen.Divide(u.myPosition, depth)
	if err != nil {
		u.log.Warningf("perft failed: %v", err)
		return
	}
	elapsed := time.Since(start)
	us := u.myPosition.NextPlayer()
	for _, r := range results {
		u.send(fmt.Sprintf("%s: %d", r.Move.UciString(us), r.Nodes))
	}
	nps := uint64(0)
	if elapsed > 0 {
		nps = uint64(float64(total) / elapsed.Seconds())
	}
	u.send(out.Sprintf("Nodes searched: %d (%d nps)", total, nps))
}

// send writes s to the protocol output, newline-terminated, and logs it
// to the UCI traffic log.
func (u *Handler) send(s string) {
	u.uciLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
