// Package rgb implements red/green/blue triples over exact or fixed-point
// channel types, their projection onto the chromaticity plane, and hues.
package rgb

import (
	"fmt"
	"math/big"

	"github.com/echoflaresat/paintmix/vectors"
)

// Channel indices.
const (
	R = iota
	G
	B
)

// RGB is a red, green, blue triple with all channels of type T.
type RGB[T Channel[T]] [3]T

// RGB16 is the working colour type of the paint model.
type RGB16 = RGB[Fixed16]

// RGB8 is the colour type of legacy series files.
type RGB8 = RGB[Fixed8]

// RGBP holds exact proportions of full intensity.
type RGBP = RGB[Prop]

func New[T Channel[T]](red, green, blue T) RGB[T] {
	return RGB[T]{red, green, blue}
}

func one[T Channel[T]]() T {
	var z T
	return z.One()
}

func zero[T Channel[T]]() T {
	var z T
	return z.FromRat(new(big.Rat))
}

func Black[T Channel[T]]() RGB[T] {
	z := zero[T]()
	return RGB[T]{z, z, z}
}

func Red[T Channel[T]]() RGB[T] {
	z := zero[T]()
	return RGB[T]{one[T](), z, z}
}

func Green[T Channel[T]]() RGB[T] {
	z := zero[T]()
	return RGB[T]{z, one[T](), z}
}

func Blue[T Channel[T]]() RGB[T] {
	z := zero[T]()
	return RGB[T]{z, z, one[T]()}
}

func Cyan[T Channel[T]]() RGB[T] { return Green[T]().Add(Blue[T]()) }
func Magenta[T Channel[T]]() RGB[T] { return Red[T]().Add(Blue[T]()) }
func Yellow[T Channel[T]]() RGB[T] { return Red[T]().Add(Green[T]()) }

func White[T Channel[T]]() RGB[T] {
	o := one[T]()
	return RGB[T]{o, o, o}
}

// Grey returns the grey whose value (mean channel fraction) is v.
func Grey[T Channel[T]](v *big.Rat) RGB[T] {
	return White[T]().Mul(v)
}

func (c RGB[T]) Red() T { return c[R] }
func (c RGB[T]) Green() T { return c[G] }
func (c RGB[T]) Blue() T { return c[B] }

func (c RGB[T]) apply(f func(i int) *big.Rat) RGB[T] {
	var z T
	var out RGB[T]
	for i := range c {
		out[i] = z.FromRat(f(i))
	}
	return out
}

// Add returns c + o. Fixed-point channels saturate at One.
func (c RGB[T]) Add(o RGB[T]) RGB[T] {
	return c.apply(func(i int) *big.Rat { return new(big.Rat).Add(c[i].Rat(), o[i].Rat()) })
}

// Sub returns c - o. Fixed-point channels saturate at zero.
func (c RGB[T]) Sub(o RGB[T]) RGB[T] {
	return c.apply(func(i int) *big.Rat { return new(big.Rat).Sub(c[i].Rat(), o[i].Rat()) })
}

// Mul returns c with every channel multiplied by m, rounded to nearest
// for fixed-point channels.
func (c RGB[T]) Mul(m *big.Rat) RGB[T] {
	return c.apply(func(i int) *big.Rat { return new(big.Rat).Mul(c[i].Rat(), m) })
}

// Div returns c with every channel divided by d, rounded to nearest for
// fixed-point channels. It panics if d is zero.
func (c RGB[T]) Div(d *big.Rat) RGB[T] {
	return c.apply(func(i int) *big.Rat { return new(big.Rat).Quo(c[i].Rat(), d) })
}

// Sum returns the exact channel total in channel units.
func (c RGB[T]) Sum() *big.Rat {
	s := new(big.Rat)
	for _, ch := range c {
		s.Add(s, ch.Rat())
	}
	return s
}

// Value returns the mean channel value as a fraction of One.
func (c RGB[T]) Value() *big.Rat {
	d := new(big.Rat).Mul(one[T]().Rat(), big.NewRat(3, 1))
	return d.Quo(c.Sum(), d)
}

// NComps returns the number of non-zero channels.
func (c RGB[T]) NComps() int {
	n := 0
	for _, ch := range c {
		if !ch.IsZero() {
			n++
		}
	}
	return n
}

// IndicesValueOrder returns the channel indices sorted by descending
// channel value. Ties resolve as in (2, 1, 0) order for a grey.
func (c RGB[T]) IndicesValueOrder() [3]int {
	r, g, b := c[0].Rat(), c[1].Rat(), c[2].Rat()
	gt := func(x, y *big.Rat) bool { return x.Cmp(y) > 0 }
	if gt(r, g) {
		if gt(r, b) {
			if gt(g, b) {
				return [3]int{0, 1, 2}
			}
			return [3]int{0, 2, 1}
		}
		return [3]int{2, 0, 1}
	} else if gt(g, b) {
		if gt(r, b) {
			return [3]int{1, 0, 2}
		}
		return [3]int{1, 2, 0}
	}
	return [3]int{2, 1, 0}
}

// IsGrey reports whether all three channels are equal.
func (c RGB[T]) IsGrey() bool {
	r := c[0].Rat()
	return r.Cmp(c[1].Rat()) == 0 && r.Cmp(c[2].Rat()) == 0
}

// Equal reports whether c and o hold the same channel values.
func (c RGB[T]) Equal(o RGB[T]) bool {
	for i := range c {
		if c[i].Rat().Cmp(o[i].Rat()) != 0 {
			return false
		}
	}
	return true
}

// Units returns the channels as floats in channel units.
func (c RGB[T]) Units() vectors.Vec3 {
	f := func(ch T) float64 {
		v, _ := ch.Rat().Float64()
		return v
	}
	return vectors.Vec3{X: f(c[0]), Y: f(c[1]), Z: f(c[2])}
}

// Floats returns the channels as fractions of One.
func (c RGB[T]) Floats() vectors.Vec3 {
	return vectors.Vec3{X: c[0].Float(), Y: c[1].Float(), Z: c[2].Float()}
}

// FromFloats returns the RGB nearest to the channel fractions in v.
func FromFloats[T Channel[T]](v vectors.Vec3) RGB[T] {
	o, _ := one[T]().Rat().Float64()
	var z T
	ch := func(f float64) T { return z.FromRat(ratFromFloat(f * o)) }
	return RGB[T]{ch(v.X), ch(v.Y), ch(v.Z)}
}

// RGBA implements image/color.Color. Colours are opaque.
func (c RGB[T]) RGBA() (r, g, b, a uint32) {
	f := c.Floats()
	return to16(f.X), to16(f.Y), to16(f.Z), 0xFFFF
}

func to16(x float64) uint32 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 0xFFFF
	}
	return uint32(x*0xFFFF + 0.5)
}

func (c RGB[T]) String() string {
	return fmt.Sprintf("RGB(%v, %v, %v)", c[0], c[1], c[2])
}

func ratFromFloat(f float64) *big.Rat {
	r := new(big.Rat)
	if r.SetFloat64(f) == nil {
		return new(big.Rat)
	}
	return r
}
