package rgb

import (
	"math/big"

	"github.com/echoflaresat/paintmix/angle"
)

// blend holds the weights used to redistribute channels during rotation.
// They are exact rationals taken from the float sines so that every
// channel is divided by the same denominator.
type blend struct {
	k1, k2, k3 *big.Rat
}

func newBlend(delta angle.Angle) blend {
	a := ratFromFloat(delta.Sin())
	b := ratFromFloat(angle.Pi120.Sub(delta).Sin())
	return blend{k1: b, k2: a, k3: new(big.Rat).Add(a, b)}
}

// mix returns (k1·x + k2·y) / k3.
func (k blend) mix(x, y *big.Rat) *big.Rat {
	s := new(big.Rat).Mul(k.k1, x)
	s.Add(s, new(big.Rat).Mul(k.k2, y))
	return s.Quo(s, k.k3)
}

// Rotated returns a copy of c with its hue rotated by delta and the channel
// total unchanged (up to rounding).
//
// Chroma changes when c has fewer than 3 non-zero channels. For 2 non-zero
// channels that change is unwanted and callers should rebuild the colour
// from its target hue instead (see hcvw.HCVW.RotatedRGB).
func (c RGB[T]) Rotated(delta angle.Angle) RGB[T] {
	if delta.IsZero() {
		return c
	}
	ch := [3]*big.Rat{c[0].Rat(), c[1].Rat(), c[2].Rat()}
	var k blend
	// src[i] gives the pair of source channels blended into channel i
	var src [3][2]int
	switch {
	case delta.Compare(angle.Pi120) > 0:
		k = newBlend(delta.Sub(angle.Pi120))
		src = [3][2]int{{2, 1}, {0, 2}, {1, 0}}
	case delta.Compare(angle.Zero) > 0:
		k = newBlend(delta)
		src = [3][2]int{{0, 2}, {1, 0}, {2, 1}}
	case delta.Compare(angle.Pi120.Neg()) < 0:
		k = newBlend(delta.Abs().Sub(angle.Pi120))
		src = [3][2]int{{1, 2}, {2, 0}, {0, 1}}
	default:
		k = newBlend(delta.Abs())
		src = [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	}
	var z T
	var out RGB[T]
	for i, s := range src {
		out[i] = z.FromRat(k.mix(ch[s[0]], ch[s[1]]))
	}
	return out
}
