// Package paint models artists' paints: colours with transparency and
// permanence ratings, tube colours grouped into series, and mixtures of
// paints by parts.
package paint

import (
	"fmt"
	"math/big"

	"github.com/echoflaresat/paintmix/angle"
	"github.com/echoflaresat/paintmix/hcvw"
	"github.com/echoflaresat/paintmix/rating"
	"github.com/echoflaresat/paintmix/rgb"
)

// Colour is an RGB colour with the ratings of the paint it stands for.
// Its HCVW attributes are rebuilt whenever the RGB is replaced.
type Colour struct {
	hcvw         hcvw.HCVW[rgb.Fixed16]
	transparency rating.Transparency
	permanence   rating.Permanence
}

// NewColour returns a colour with the given RGB and ratings.
func NewColour(c rgb.RGB16, t rating.Transparency, p rating.Permanence) Colour {
	return Colour{hcvw: hcvw.New(c), transparency: t, permanence: p}
}

// NewDefaultColour returns an opaque, moderately durable colour.
func NewDefaultColour(c rgb.RGB16) Colour {
	return NewColour(c, rating.DefaultTransparency, rating.DefaultPermanence)
}

func (c *Colour) SetRGB(v rgb.RGB16) { c.hcvw = hcvw.New(v) }
func (c *Colour) SetTransparency(t rating.Transparency) { c.transparency = t }
func (c *Colour) SetPermanence(p rating.Permanence) { c.permanence = p }

func (c Colour) RGB() rgb.RGB16 { return c.hcvw.RGB() }
func (c Colour) HCVW() hcvw.HCVW[rgb.Fixed16] { return c.hcvw }
func (c Colour) Hue() rgb.Hue[rgb.Fixed16] { return c.hcvw.Hue() }
func (c Colour) HueAngle() angle.Angle { return c.hcvw.Hue().Angle() }
func (c Colour) HueRGB() rgb.RGB16 { return c.hcvw.HueRGB() }
func (c Colour) Value() *big.Rat { return c.hcvw.Value() }
func (c Colour) ValueRGB() rgb.RGB16 { return c.hcvw.ValueRGB() }
func (c Colour) Chroma() float64 { return c.hcvw.Chroma() }
func (c Colour) Warmth() float64 { return c.hcvw.Warmth() }
func (c Colour) WarmthRGB() rgb.RGB16 { return c.hcvw.WarmthRGB() }
func (c Colour) Transparency() rating.Transparency { return c.transparency }
func (c Colour) Permanence() rating.Permanence { return c.permanence }

func (c Colour) String() string {
	return fmt.Sprintf("RGB: %v Transparency: %v Permanence: %v %v",
		c.RGB(), c.transparency, c.permanence, c.hcvw)
}
