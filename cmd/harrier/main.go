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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kjd-chess/harrier/internal/config"
	"github.com/kjd-chess/harrier/internal/logging"
	"github.com/kjd-chess/harrier/internal/movegen"
	"github.com/kjd-chess/harrier/internal/position"
	"github.com/kjd-chess/harrier/internal/testsuite"
	"github.com/kjd-chess/harrier/internal/types"
	"github.com/kjd-chess/harrier/internal/uci"
)

const version = "0.1.0"

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	doProfile := flag.Bool("profile", false, "run with a CPU profiler attached")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen and exit")
	fen := flag.String("fen", position.StartFen, "fen used by -perft")
	testSuite := flag.String("testsuite", "", "path to an EPD test-suite file or directory")
	testMoveTimeMs := flag.Int("testtime", 2000, "search time per test-suite position, in milliseconds")
	testDepth := flag.Int("testdepth", 0, "search depth per test-suite position (0: use -testtime instead)")
	versionInfo := flag.Bool("version", false, "print version info and exit")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	log := logging.GetLog()

	types.Init()
	types.InitZobrist()

	if *perftDepth > 0 {
		p, err := position.NewPosition(*fen)
		if err != nil {
			fmt.Println("invalid -fen:", err)
			os.Exit(1)
		}
		for d := 1; d <= *perftDepth; d++ {
			result := movegen.Count(p, d)
			out.Printf("perft depth %d: %d nodes (captures %d, en passant %d, castles %d, promotions %d)\n",
				d, result.Nodes, result.CaptureCounter, result.EnpassantCounter,
				result.CastleCounter, result.PromotionCounter)
		}
		return
	}

	if *testSuite != "" {
		fi, err := os.Stat(*testSuite)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		moveTime := time.Duration(*testMoveTimeMs) * time.Millisecond
		if fi.IsDir() {
			testsuite.RunDirectory(*testSuite, moveTime, *testDepth)
		} else {
			ts, err := testsuite.NewTestSuite(*testSuite, moveTime, *testDepth)
			if err != nil {
				log.Errorf("could not load test suite: %v", err)
				os.Exit(1)
			}
			ts.RunTests()
		}
		return
	}

	uci.NewHandler().Loop()
}

func printVersionInfo() {
	out.Printf("harrier %s\n", version)
	out.Printf("Go version %s, %s/%s, %d CPUs\n", runtime.Version(), runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
}
