package rgb

import (
	"fmt"
	"math"
	"math/big"

	"github.com/echoflaresat/paintmix/angle"
)

// Hue is a hue angle together with the maximum chroma RGB for it: the
// brightest colour of that hue with at most two non-zero channels.
// The grey hue has no angle and its RGB is white.
type Hue[T Channel[T]] struct {
	rgb   RGB[T]
	angle angle.Angle
	grey  bool
}

// GreyHue returns the hue of colours with equal channels.
func GreyHue[T Channel[T]]() Hue[T] {
	return Hue[T]{rgb: White[T](), grey: true}
}

// HueFromAngle returns the hue at a.
func HueFromAngle[T Channel[T]](a angle.Angle) Hue[T] {
	o := one[T]()
	oneF, _ := o.Rat().Float64()
	z := zero[T]()
	other := func(oa angle.Angle) T {
		scale := oa.Sin() / angle.Pi120.Sub(oa).Sin()
		return z.FromRat(ratFromFloat(oneF * scale))
	}
	pos := a.Compare(angle.Zero) >= 0
	aha := a.Abs()
	var c RGB[T]
	switch {
	case aha.Compare(angle.Pi60) <= 0:
		x := other(aha)
		if pos {
			c = RGB[T]{o, x, z}
		} else {
			c = RGB[T]{o, z, x}
		}
	case aha.Compare(angle.Pi120) <= 0:
		x := other(angle.Pi120.Sub(aha))
		if pos {
			c = RGB[T]{x, o, z}
		} else {
			c = RGB[T]{x, z, o}
		}
	default:
		x := other(aha.Sub(angle.Pi120))
		if pos {
			c = RGB[T]{z, o, x}
		} else {
			c = RGB[T]{z, x, o}
		}
	}
	return Hue[T]{rgb: c, angle: a}
}

// HueOf returns the hue of c.
func HueOf[T Channel[T]](c RGB[T]) Hue[T] {
	if c.IsGrey() {
		return GreyHue[T]()
	}
	a, ok := Project(c).Angle()
	if !ok {
		return GreyHue[T]()
	}
	return HueFromAngle[T](a)
}

// RGB returns the maximum chroma RGB of the hue.
func (h Hue[T]) RGB() RGB[T] { return h.rgb }

// Angle returns the hue angle; it is zero for the grey hue.
func (h Hue[T]) Angle() angle.Angle { return h.angle }

func (h Hue[T]) IsGrey() bool { return h.grey }

// Rotated returns the hue delta away from h. Grey stays grey.
func (h Hue[T]) Rotated(delta angle.Angle) Hue[T] {
	if h.grey {
		return h
	}
	return HueFromAngle[T](h.angle.Add(delta))
}

// Compare orders hues by angle, with grey before every other hue.
func (h Hue[T]) Compare(o Hue[T]) int {
	switch {
	case h.grey && o.grey:
		return 0
	case h.grey:
		return -1
	case o.grey:
		return 1
	}
	return h.angle.Compare(o.angle)
}

// MaxChromaValue returns the value of the hue's maximum chroma RGB.
func (h Hue[T]) MaxChromaValue() *big.Rat {
	return h.rgb.Value()
}

// ChromaCorrection returns the factor that maps the hexagonal boundary of
// the RGB cube's chromaticity projection onto a unit circle for this hue.
func (h Hue[T]) ChromaCorrection() float64 {
	io := h.rgb.IndicesValueOrder()
	a := h.rgb[io[0]].Float()
	b := h.rgb[io[1]].Float()
	if a == b || b == 0 {
		// exact 1 where float error would otherwise creep in
		return 1.0
	}
	return a / math.Sqrt(a*a+b*b-a*b)
}

// RGBWithTotal returns the RGB of this hue whose channels sum to total
// (in channel units). When total is more than the maximum chroma RGB can
// hold, the weakest channel is raised first and the middle one takes the
// rest, which keeps the hue and loses as little chroma as possible on the
// way to white.
func (h Hue[T]) RGBWithTotal(total *big.Rat) RGB[T] {
	o := one[T]().Rat()
	limit := new(big.Rat).Mul(o, big.NewRat(3, 1))
	switch {
	case total.Sign() <= 0:
		return Black[T]()
	case total.Cmp(limit) >= 0:
		return White[T]()
	}
	cur := h.rgb.Sum()
	shortfall := new(big.Rat).Sub(total, cur)
	switch shortfall.Sign() {
	case 0:
		return h.rgb
	case -1:
		return h.rgb.Mul(new(big.Rat).Quo(total, cur))
	}
	var z T
	io := h.rgb.IndicesValueOrder()
	mid := h.rgb[io[1]].Rat()
	// weakest = shortfall·ONE / (2·ONE - mid)
	den := new(big.Rat).Mul(o, big.NewRat(2, 1))
	den.Sub(den, mid)
	weakest := z.FromRat(new(big.Rat).Quo(new(big.Rat).Mul(shortfall, o), den))
	m := new(big.Rat).Add(mid, shortfall)
	m.Sub(m, weakest.Rat())
	var out RGB[T]
	out[io[0]] = one[T]()
	out[io[1]] = z.FromRat(m)
	out[io[2]] = weakest
	return out
}

// RGBWithValue returns the RGB of this hue whose value is v, in the same
// way as RGBWithTotal. Black at 0, white at 1.
func (h Hue[T]) RGBWithValue(v *big.Rat) RGB[T] {
	total := new(big.Rat).Mul(v, one[T]().Rat())
	total.Mul(total, big.NewRat(3, 1))
	return h.RGBWithTotal(roundTotal[T](total))
}

// roundTotal rounds a channel total half up for fixed-point channel types
// so that the channels of the result add up to it exactly.
func roundTotal[T Channel[T]](total *big.Rat) *big.Rat {
	var z T
	half := big.NewRat(1, 2)
	if z.FromRat(half).Rat().Cmp(half) == 0 {
		return total
	}
	n := new(big.Int).Add(new(big.Int).Lsh(total.Num(), 1), total.Denom())
	n.Quo(n, new(big.Int).Lsh(total.Denom(), 1))
	return new(big.Rat).SetInt(n)
}

func (h Hue[T]) String() string {
	if h.grey {
		return "Hue(grey)"
	}
	return fmt.Sprintf("Hue(%s, %s)", h.angle, h.rgb)
}
