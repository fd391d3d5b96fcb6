package types

import "fmt"

// Named Value constants used by the evaluator and search. ValueMate is
// chosen well above any realistic material+PST score so mate scores never
// get confused with a material advantage; ValueInfinite seeds alpha-beta's
// initial window.
const (
	ValueZero     Value = 0
	ValueDraw     Value = 0
	ValueMate     Value = 32000
	ValueInfinite Value = 32001
)

// mateThreshold is the score magnitude above which a value is considered
// a mate score rather than a material+PST evaluation.
const mateThreshold = ValueMate - 1000

// String renders v for human-readable logging, not the UCI wire format
// (see the uci package for "cp"/"mate" score formatting).
func (v Value) String() string {
	return fmt.Sprintf("%d", int(v))
}

// IsMateValue reports whether v represents a forced mate rather than a
// material+PST evaluation.
func (v Value) IsMateValue() bool {
	return v > mateThreshold || v < -mateThreshold
}

// MateDistance returns the number of moves to the mate v represents,
// signed positive if the side to move delivers it and negative if it is
// delivered against them. Only meaningful when IsMateValue() is true.
func (v Value) MateDistance() int {
	if v > 0 {
		return int(ValueMate-v+1) / 2
	}
	return -int(ValueMate+v) / 2
}
