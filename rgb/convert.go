package rgb

import "image/color"

// FromColor converts any image colour to an RGB16, undoing alpha
// premultiplication. Fully transparent colours become black.
func FromColor(c color.Color) RGB16 {
	if v, ok := c.(RGB16); ok {
		return v
	}

	r16, g16, b16, a16 := c.RGBA()
	if a16 == 0 {
		return RGB16{}
	}

	// De-premultiply, rounding to nearest
	ch := func(x uint32) Fixed16 {
		return Fixed16(min(0xFFFF, (x*0xFFFF+a16/2)/a16))
	}
	return RGB16{ch(r16), ch(g16), ch(b16)}
}
