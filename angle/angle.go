package angle

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// Angle is an angle in radians normalized into (-π, π].
// The zero value is a valid angle of 0.
type Angle struct {
	rad float64
}

const twoPi = 2 * math.Pi

var (
	Zero  = Angle{}
	Pi30  = Angle{math.Pi / 6}
	Pi60  = Angle{math.Pi / 3}
	Pi90  = Angle{math.Pi / 2}
	Pi120 = Angle{2 * math.Pi / 3}
	Pi150 = Angle{5 * math.Pi / 6}
	Pi180 = Angle{math.Pi}
)

// FromRadians returns rad wrapped into (-π, π].
// It panics if rad is NaN, since a NaN angle has no hue.
func FromRadians(rad float64) Angle {
	if math.IsNaN(rad) {
		panic("angle: NaN")
	}
	return Angle{normalize(unit.Angle(rad))}
}

// FromDegrees returns the angle for deg degrees.
func FromDegrees(deg float64) Angle {
	return FromRadians(unit.AngleFromDeg(deg).Rad())
}

func normalize(a unit.Angle) float64 {
	if a > -math.Pi && a <= math.Pi {
		return a.Rad()
	}
	r := a.Mod1().Rad() // [0, 2π)
	if r > math.Pi {
		r -= twoPi
	}
	return r
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return a.rad }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return unit.Angle(a.rad).Deg() }

func (a Angle) Sin() float64 { return unit.Angle(a.rad).Sin() }
func (a Angle) Cos() float64 { return unit.Angle(a.rad).Cos() }

// Add returns a + b, wrapped.
func (a Angle) Add(b Angle) Angle {
	return Angle{normalize(unit.Angle(a.rad + b.rad))}
}

// Sub returns a - b, wrapped.
func (a Angle) Sub(b Angle) Angle {
	return Angle{normalize(unit.Angle(a.rad - b.rad))}
}

// Neg returns -a. The result of negating π is π.
func (a Angle) Neg() Angle {
	return Angle{normalize(unit.Angle(-a.rad))}
}

// Abs returns |a|, in [0, π].
func (a Angle) Abs() Angle {
	return Angle{math.Abs(a.rad)}
}

// Mul returns a * f, wrapped.
func (a Angle) Mul(f float64) Angle {
	return FromRadians(a.rad * f)
}

// Compare returns -1, 0 or +1 depending on whether a is less than,
// equal to or greater than b.
func (a Angle) Compare(b Angle) int {
	switch {
	case a.rad < b.rad:
		return -1
	case a.rad > b.rad:
		return 1
	default:
		return 0
	}
}

func (a Angle) IsZero() bool { return a.rad == 0 }

func (a Angle) String() string {
	return fmt.Sprintf("%.2f°", a.Degrees())
}
