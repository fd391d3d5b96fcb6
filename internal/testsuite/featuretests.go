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
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/kjd-chess/harrier/internal/util"
)

// RunDirectory runs every ".epd" file in folder and prints a combined
// report across all of them.
func RunDirectory(folder string, moveTime time.Duration, depth int) string {
	entries, err := os.ReadDir(folder)
	if err != nil {
		log.Errorf("could not read directory %s: %v", folder, err)
		return ""
	}

	var files []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".epd" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	results := make(map[string]*TestSuite, len(files))
	start := time.Now()
	totalTests := 0
	for _, name := range files {
		ts, err := NewTestSuite(filepath.Join(folder, name), moveTime, depth)
		if err != nil {
			log.Warningf("skipping %s: %v", name, err)
			continue
		}
		ts.RunTests()
		results[name] = ts
		totalTests += len(ts.Tests)
	}
	duration := time.Since(start)

	var b strings.Builder
	var totalNodes uint64
	var totalSuccess, totalFailed, totalNotTested int
	b.WriteString(out.Sprintf("Feature test report\n"))
	b.WriteString(out.Sprintf("date: %s, duration: %s, suites: %d, tests: %d\n", time.Now(), duration, len(results), totalTests))
	for _, name := range files {
		ts, ok := results[name]
		if !ok || ts.LastResult == nil {
			continue
		}
		r := ts.LastResult
		totalNodes += r.Nodes
		totalSuccess += r.SuccessCounter
		totalFailed += r.FailedCounter
		totalNotTested += r.NotTested
		rate := 0.0
		if r.Counter > 0 {
			rate = 100 * float64(r.SuccessCounter) / float64(r.Counter)
		}
		b.WriteString(out.Sprintf("%-25s %5.1f%% success  %8d ok  %8d failed  %8d nodes\n",
			name, rate, r.SuccessCounter, r.FailedCounter, r.Nodes))
	}
	b.WriteString(out.Sprintf("total: %d ok, %d failed, %d not tested, %d nodes, %d nps\n",
		totalSuccess, totalFailed, totalNotTested, totalNodes, util.Nps(totalNodes, duration)))
	report := b.String()
	out.Print(report)
	return report
}
