package hcvw

import (
	"math/big"

	"github.com/echoflaresat/paintmix/rgb"
)

const chromaEpsilon = 1e-9

func maxChromaValue[T rgb.Channel[T]](hue rgb.Hue[T]) float64 {
	f, _ := hue.MaxChromaValue().Float64()
	return f
}

// MaxChroma returns the highest chroma a colour of the given hue can have
// at value v. Dark colours are limited by black, light ones by white.
func MaxChroma[T rgb.Channel[T]](hue rgb.Hue[T], v *big.Rat) float64 {
	if hue.IsGrey() {
		return 0
	}
	vf, _ := v.Float64()
	vh := maxChromaValue(hue)
	switch {
	case vf <= 0 || vf >= 1:
		return 0
	case vf <= vh:
		return vf / vh
	default:
		return clamp((1-vf)/(1-vh), 0, 1)
	}
}

// greyLevel returns the grey value g with c·vh + (1-c)·g = v.
func greyLevel(v, c, vh float64) float64 {
	return clamp((v-c*vh)/(1-c), 0, 1)
}

// Compose returns the colour with the given hue, chroma and value: the
// hue's maximum chroma RGB mixed with a grey in proportion chroma. Chroma
// is reduced to the maximum the hue can have at that value.
func Compose[T rgb.Channel[T]](hue rgb.Hue[T], chroma float64, value *big.Rat) rgb.RGB[T] {
	c := min(chroma, MaxChroma(hue, value))
	if c <= 0 {
		return rgb.Grey[T](value)
	}
	if c >= 1-chromaEpsilon {
		return hue.RGBWithValue(value)
	}
	vf, _ := value.Float64()
	g := greyLevel(vf, c, maxChromaValue(hue))

	var z T
	cr := new(big.Rat).SetFloat64(c)
	rest := new(big.Rat).Sub(big.NewRat(1, 1), cr)
	grey := new(big.Rat).Mul(rest, new(big.Rat).SetFloat64(g))
	grey.Mul(grey, z.One().Rat())

	hrgb := hue.RGB()
	var out rgb.RGB[T]
	for i := range out {
		ch := new(big.Rat).Mul(cr, hrgb[i].Rat())
		out[i] = z.FromRat(ch.Add(ch, grey))
	}
	return out
}
