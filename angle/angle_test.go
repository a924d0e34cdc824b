package angle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRadiansWraps(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"pi", math.Pi, math.Pi},
		{"minus pi", -math.Pi, math.Pi},
		{"one and a half turns", 3 * math.Pi, math.Pi},
		{"just past pi", math.Pi + 0.5, -math.Pi + 0.5},
		{"just before minus pi", -math.Pi - 0.5, math.Pi - 0.5},
		{"two turns", 4 * math.Pi, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, FromRadians(c.in).Radians(), 1e-12)
		})
	}
}

func TestArithmeticStaysNormalized(t *testing.T) {
	a := Pi150.Add(Pi120)
	assert.InDelta(t, -math.Pi/2, a.Radians(), 1e-12)

	b := Pi150.Neg().Sub(Pi120)
	assert.InDelta(t, math.Pi/2, b.Radians(), 1e-12)

	assert.Equal(t, Pi180, Pi180.Neg())
	assert.InDelta(t, math.Pi/3, Pi120.Mul(0.5).Radians(), 1e-12)
	assert.InDelta(t, 120.0, Pi120.Degrees(), 1e-9)
	assert.InDelta(t, math.Pi/4, FromDegrees(45).Radians(), 1e-12)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, Pi60.Compare(Pi120))
	assert.Equal(t, 1, Pi60.Compare(Pi120.Neg()))
	assert.Equal(t, 0, Pi60.Compare(FromDegrees(60)))
	assert.Equal(t, Pi60, Pi60.Neg().Abs())
}

func TestNaNPanics(t *testing.T) {
	assert.Panics(t, func() { FromRadians(math.NaN()) })
}
