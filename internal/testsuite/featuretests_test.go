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
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// writeTempSuite writes a single EPD file into a fresh temp directory and
// returns the directory path.
func writeTempSuite(t *testing.T, epd string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "featuretests")
	assert.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	err = ioutil.WriteFile(filepath.Join(dir, "sample.epd"), []byte(epd), 0644)
	assert.NoError(t, err)
	return dir
}

func TestRunDirectory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode")
	}
	dir := writeTempSuite(t, `6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - dm 1; id "mate in one";`+"\n")
	report := RunDirectory(dir+"/", 0, 2)
	assert.Contains(t, report, "sample.epd")
	assert.Contains(t, report, "1 ok")
}
