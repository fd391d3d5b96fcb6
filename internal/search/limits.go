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

import "time"

// Limits controls how far and how long a search runs. The kernel has no
// time-management beyond a wall-clock deadline (§1 Non-goals), so this is
// deliberately thinner than a full UCI "go" parameter set: just a maximum
// depth and, optionally, a deadline after which iterative deepening stops
// between depths.
type Limits struct {
	// Depth is the maximum depth iterative deepening will reach.
	Depth int

	// MoveTime, if non-zero, is the wall-clock budget for the whole
	// search; the deadline is checked between completed depths, never
	// mid-depth.
	MoveTime time.Duration
}

// NewSearchLimits creates an empty Limits instance.
func NewSearchLimits() *Limits {
	return &Limits{}
}
