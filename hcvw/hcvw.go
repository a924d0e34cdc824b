// Package hcvw decomposes RGB colours into hue, chroma, value and warmth,
// and builds RGB colours back from those attributes.
package hcvw

import (
	"fmt"
	"math"
	"math/big"

	"github.com/echoflaresat/paintmix/angle"
	"github.com/echoflaresat/paintmix/rgb"
)

// HCVW is a read-only snapshot of the perceptual attributes of an RGB.
// It is never modified; a changed colour gets a new HCVW.
type HCVW[T rgb.Channel[T]] struct {
	rgb    rgb.RGB[T]
	hue    rgb.Hue[T]
	value  *big.Rat
	warmth float64
	chroma float64
}

// New returns the decomposition of c.
func New[T rgb.Channel[T]](c rgb.RGB[T]) HCVW[T] {
	xy := rgb.Project(c)
	one := oneFloat[T]()
	h := HCVW[T]{
		rgb:    c,
		hue:    rgb.HueOf(c),
		value:  c.Value(),
		warmth: clamp(xy.X/one, -1, 1),
	}
	if !h.hue.IsGrey() {
		h.chroma = clamp(xy.Hypot()*h.hue.ChromaCorrection()/one, 0, 1)
	}
	return h
}

func oneFloat[T rgb.Channel[T]]() float64 {
	var z T
	f, _ := z.One().Rat().Float64()
	return f
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func (h HCVW[T]) RGB() rgb.RGB[T] { return h.rgb }
func (h HCVW[T]) Hue() rgb.Hue[T] { return h.hue }

// HueRGB returns the maximum chroma RGB of the colour's hue.
func (h HCVW[T]) HueRGB() rgb.RGB[T] { return h.hue.RGB() }

// Value returns the mean channel value as an exact fraction of full
// intensity.
func (h HCVW[T]) Value() *big.Rat { return new(big.Rat).Set(h.value) }

func (h HCVW[T]) ValueFloat() float64 {
	f, _ := h.value.Float64()
	return f
}

// Warmth returns the position on the cyan (-1) to red (+1) axis.
func (h HCVW[T]) Warmth() float64 { return h.warmth }

// Chroma returns the hue-corrected distance from grey in [0, 1]. Greys
// have chroma 0.
func (h HCVW[T]) Chroma() float64 { return h.chroma }

// ValueRGB returns the grey with the same value.
func (h HCVW[T]) ValueRGB() rgb.RGB[T] {
	return rgb.Grey[T](h.value)
}

// WarmthRGB returns the colour on the cyan-red line that represents the
// warmth.
func (h HCVW[T]) WarmthRGB() rgb.RGB[T] {
	red := new(big.Rat).SetFloat64((1 + h.warmth) / 2)
	cyan := new(big.Rat).SetFloat64((1 - h.warmth) / 2)
	return rgb.Cyan[T]().Mul(cyan).Add(rgb.Red[T]().Mul(red))
}

// HueRGBForValue returns the most chromatic colour of this hue with the
// same value.
func (h HCVW[T]) HueRGBForValue() rgb.RGB[T] {
	return h.hue.RGBWithValue(h.value)
}

// ZeroChromaRGB returns the grey that, mixed with the hue's maximum chroma
// RGB in proportion to the chroma, gives the colour. A colour at full
// chroma holds no grey; it gets black or white, whichever is nearer the
// hue's maximum chroma value.
func (h HCVW[T]) ZeroChromaRGB() rgb.RGB[T] {
	if h.hue.IsGrey() {
		return h.rgb
	}
	vh := maxChromaValue(h.hue)
	if h.chroma >= 1-chromaEpsilon {
		// the nearer end of the grey scale
		if vh < 0.5 {
			return rgb.Black[T]()
		}
		return rgb.White[T]()
	}
	g := greyLevel(h.ValueFloat(), h.chroma, vh)
	return rgb.Grey[T](new(big.Rat).SetFloat64(g))
}

// ChromaSide returns white if the colour is lighter than its hue's
// maximum chroma RGB and black otherwise. It picks the end of the
// chroma gradient the colour sits on.
func (h HCVW[T]) ChromaSide() rgb.RGB[T] {
	if h.rgb.Sum().Cmp(h.hue.RGB().Sum()) > 0 {
		return rgb.White[T]()
	}
	return rgb.Black[T]()
}

// RotatedRGB returns the colour with its hue rotated by delta, keeping the
// value and, where the new hue allows it, the chroma.
func (h HCVW[T]) RotatedRGB(delta angle.Angle) rgb.RGB[T] {
	if h.hue.IsGrey() || delta.IsZero() {
		return h.rgb
	}
	switch h.rgb.NComps() {
	case 1:
		return h.rgb.Rotated(delta)
	case 2:
		// blending would lose chroma; rebuild at the target hue instead
		return h.hue.Rotated(delta).RGBWithValue(h.value)
	default:
		return Compose(h.hue.Rotated(delta), h.chroma, h.value)
	}
}

func (h HCVW[T]) String() string {
	return fmt.Sprintf("HCVW(rgb=%v, hue=%v, chroma=%.4f, value=%s, warmth=%.4f)",
		h.rgb, h.hue, h.chroma, h.value.FloatString(4), h.warmth)
}
