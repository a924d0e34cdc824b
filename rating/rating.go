// Package rating implements ordinal paint ratings, such as permanence and
// transparency, that carry a numeric value so they can be averaged.
package rating

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrBadValue is returned when text names no level of a rating scale.
var ErrBadValue = errors.New("unrecognized rating value")

// Level is one entry of a rating scale.
type Level struct {
	Abbrev string
	Descr  string
	Value  float64
}

// Scale describes a rating table. Implementations are empty structs used
// as type parameters; the table they return must not be modified.
type Scale interface {
	Name() string
	Levels() []Level
}

// Rating is a value on scale S. Sums and weighted averages of ratings
// are ratings too; they are shown as the nearest level.
type Rating[S Scale] struct {
	val float64
}

// FromValue returns the rating with numeric value v.
func FromValue[S Scale](v float64) Rating[S] {
	return Rating[S]{val: v}
}

// Parse returns the rating named by s: a level abbreviation, a level
// description or any finite number. Numbers outside the scale's range are
// kept as given and shown as the nearest end of the scale.
func Parse[S Scale](s string) (Rating[S], error) {
	var sc S
	s = strings.TrimSpace(s)
	for _, l := range sc.Levels() {
		if s == l.Abbrev || strings.EqualFold(s, l.Descr) {
			return Rating[S]{val: l.Value}, nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Rating[S]{}, fmt.Errorf("%s: %w: %q", sc.Name(), ErrBadValue, s)
	}
	return Rating[S]{val: v}, nil
}

// MustParse is like Parse but panics on error. It is meant for literals.
func MustParse[S Scale](s string) Rating[S] {
	r, err := Parse[S](s)
	if err != nil {
		panic(err)
	}
	return r
}

// Levels returns a copy of the scale's table.
func Levels[S Scale]() []Level {
	var sc S
	return append([]Level(nil), sc.Levels()...)
}

func bounds[S Scale]() (lo, hi float64) {
	var sc S
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, l := range sc.Levels() {
		lo = math.Min(lo, l.Value)
		hi = math.Max(hi, l.Value)
	}
	return lo, hi
}

// Value returns the numeric value, which may lie between levels.
func (r Rating[S]) Value() float64 { return r.val }

// Level returns the level nearest to the rating's value. Halves round to
// even, so 2.5 is level 2.
func (r Rating[S]) Level() Level {
	var sc S
	levels := sc.Levels()
	lo, hi := bounds[S]()
	v := math.Max(lo, math.Min(hi, math.RoundToEven(r.val)))
	best := levels[0]
	for _, l := range levels[1:] {
		if math.Abs(l.Value-v) < math.Abs(best.Value-v) {
			best = l
		}
	}
	return best
}

// Nearest returns the rating snapped to its nearest level.
func (r Rating[S]) Nearest() Rating[S] {
	return Rating[S]{val: r.Level().Value}
}

func (r Rating[S]) Abbrev() string { return r.Level().Abbrev }
func (r Rating[S]) Description() string { return r.Level().Descr }

func (r Rating[S]) Scale(m float64) Rating[S] { return Rating[S]{val: r.val * m} }
func (r Rating[S]) Add(o Rating[S]) Rating[S] { return Rating[S]{val: r.val + o.val} }
func (r Rating[S]) Div(d float64) Rating[S] { return Rating[S]{val: r.val / d} }

// Compare orders ratings by value.
func (r Rating[S]) Compare(o Rating[S]) int {
	switch {
	case r.val < o.val:
		return -1
	case r.val > o.val:
		return 1
	}
	return 0
}

// String returns the abbreviation of the nearest level.
func (r Rating[S]) String() string { return r.Abbrev() }

// GoString returns a form that shows the exact value.
func (r Rating[S]) GoString() string {
	var sc S
	return fmt.Sprintf("%s(%g)", sc.Name(), r.val)
}
