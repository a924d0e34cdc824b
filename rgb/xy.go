package rgb

import (
	"math"

	"github.com/echoflaresat/paintmix/angle"
	"github.com/echoflaresat/paintmix/vectors"
)

var (
	sin120 = math.Sin(2 * math.Pi / 3)
	// cos(120°) is exactly -0.5; math.Cos is slightly out.
	xAxis = vectors.Vec3{X: 1, Y: -0.5, Z: -0.5}
	yAxis = vectors.Vec3{X: 0, Y: sin120, Z: -sin120}
)

// XY is the projection of an RGB onto the chromaticity plane, using unit
// vectors at 0°, 120° and 240° for red, green and blue. Coordinates are
// in channel units; grey projects to the origin.
type XY struct {
	X, Y float64
}

// Project returns the chromaticity plane coordinates of c.
func Project[T Channel[T]](c RGB[T]) XY {
	u := c.Units()
	return XY{X: u.Dot(xAxis), Y: u.Dot(yAxis)}
}

// Hypot returns the distance from the grey axis.
func (xy XY) Hypot() float64 {
	return math.Hypot(xy.X, xy.Y)
}

// Angle returns the hue angle of the point. ok is false at the origin,
// where there is no hue.
func (xy XY) Angle() (a angle.Angle, ok bool) {
	if xy.X == 0 && xy.Y == 0 {
		return angle.Zero, false
	}
	return angle.FromRadians(math.Atan2(xy.Y, xy.X)), true
}
