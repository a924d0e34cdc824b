package paint

import (
	"fmt"

	"github.com/echoflaresat/paintmix/rgb"
	"github.com/echoflaresat/paintmix/vectors"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses "#rgb" or "#rrggbb".
func ParseHex(s string) (rgb.RGB16, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return rgb.RGB16{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return rgb.FromFloats[rgb.Fixed16](vectors.Vec3{X: c.R, Y: c.G, Z: c.B}), nil
}

// Hex returns the colour as "#rrggbb".
func (c Colour) Hex() string {
	cf, _ := colorful.MakeColor(c.RGB())
	return cf.Hex()
}
