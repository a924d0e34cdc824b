package hcvw

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/echoflaresat/paintmix/angle"
	"github.com/echoflaresat/paintmix/rgb"
	"github.com/stretchr/testify/assert"
)

// Largest per channel differences allowed after rotating there and back.
// Single channel colours come back through a two channel colour rebuilt
// from its rounded hue, which can cost one more unit.
const (
	roundTripTolerance              = 1
	singleChannelRoundTripTolerance = 2
)

func closeRGB(t *testing.T, want, got rgb.RGB16, tol int, msgAndArgs ...any) {
	t.Helper()
	for i := range want {
		d := int(want[i]) - int(got[i])
		if d < -tol || d > tol {
			assert.Fail(t, "rgb mismatch", "want %v got %v: %v", want, got, msgAndArgs)
			return
		}
	}
}

func TestGrey(t *testing.T) {
	h := New(rgb.RGB16{0x4000, 0x4000, 0x4000})
	assert.True(t, h.Hue().IsGrey())
	assert.Equal(t, 0.0, h.Chroma())
	assert.Equal(t, 0.0, h.Warmth())
	assert.Equal(t, 0, big.NewRat(0x4000, 0xFFFF).Cmp(h.Value()))
	assert.Equal(t, h.RGB(), h.ZeroChromaRGB())
	assert.Equal(t, h.RGB(), h.RotatedRGB(angle.Pi60))
	assert.Equal(t, h.RGB(), h.HueRGBForValue())
}

func TestPrimaries(t *testing.T) {
	cases := []struct {
		name   string
		c      rgb.RGB16
		warmth float64
		value  *big.Rat
	}{
		{"red", rgb.Red[rgb.Fixed16](), 1, big.NewRat(1, 3)},
		{"cyan", rgb.Cyan[rgb.Fixed16](), -1, big.NewRat(2, 3)},
		{"yellow", rgb.Yellow[rgb.Fixed16](), 0.5, big.NewRat(2, 3)},
		{"blue", rgb.Blue[rgb.Fixed16](), -0.5, big.NewRat(1, 3)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := New(c.c)
			assert.InDelta(t, 1.0, h.Chroma(), 1e-9)
			assert.InDelta(t, c.warmth, h.Warmth(), 1e-9)
			assert.Equal(t, 0, c.value.Cmp(h.Value()))
			assert.Equal(t, c.c, h.HueRGB())
		})
	}
}

func TestChromaIsHueIndependent(t *testing.T) {
	// half strength of any maximum chroma RGB has chroma one half
	for _, deg := range []float64{0, 15, 30, 45, 90, 150, -100} {
		hue := rgb.HueFromAngle[rgb.Fixed16](angle.FromDegrees(deg))
		h := New(hue.RGB().Mul(big.NewRat(1, 2)))
		assert.InDelta(t, 0.5, h.Chroma(), 1e-4, "hue %v°", deg)
	}
}

func TestRotatedRoundTrip(t *testing.T) {
	cases := []struct {
		c   rgb.RGB16
		tol int
	}{
		{rgb.Red[rgb.Fixed16](), singleChannelRoundTripTolerance},
		{rgb.RGB16{0, 0xC000, 0}, singleChannelRoundTripTolerance},
		{rgb.RGB16{0x8000, 0x6000, 0x4000}, roundTripTolerance},
		{rgb.RGB16{0x3000, 0x5000, 0x9000}, roundTripTolerance},
		{rgb.RGB16{0xA000, 0x9000, 0x8800}, roundTripTolerance},
	}
	for _, c := range cases {
		for _, deg := range []float64{1, 10, 30, 45, -50, 90} {
			t.Run(fmt.Sprintf("%v/%g°", c.c, deg), func(t *testing.T) {
				delta := angle.FromDegrees(deg)
				there := New(c.c).RotatedRGB(delta)
				back := New(there).RotatedRGB(delta.Neg())
				closeRGB(t, c.c, back, c.tol, "rotated by", deg)
			})
		}
	}
}

func TestRotatedTwoComponentsKeepsValue(t *testing.T) {
	c := rgb.RGB16{0xFFFF, 0x4000, 0}
	h := New(c)
	for _, deg := range []float64{20, 75, -140} {
		got := New(h.RotatedRGB(angle.FromDegrees(deg)))
		diff, _ := new(big.Rat).Sub(got.Value(), h.Value()).Float64()
		assert.InDelta(t, 0, diff, 2.0/(3*0xFFFF), "rotated by %v°", deg)
		assert.InDelta(t, MaxChroma(got.Hue(), got.Value()), got.Chroma(), 1e-3, "rotated by %v°", deg)
	}
}

func TestRotatedHue(t *testing.T) {
	c := rgb.RGB16{0x8000, 0x6000, 0x4000}
	h := New(c)
	got := New(h.RotatedRGB(angle.FromDegrees(40)))
	assert.InDelta(t, h.Hue().Angle().Add(angle.FromDegrees(40)).Radians(), got.Hue().Angle().Radians(), 1e-3)
	assert.InDelta(t, h.Chroma(), got.Chroma(), 1e-3)
	diff, _ := new(big.Rat).Sub(got.Value(), h.Value()).Float64()
	assert.InDelta(t, 0, diff, 1e-4)
}

func TestComposeInvertsNew(t *testing.T) {
	hue := rgb.HueFromAngle[rgb.Fixed16](angle.FromDegrees(200))
	v := big.NewRat(2, 5)
	h := New(Compose(hue, 0.3, v))
	assert.InDelta(t, 0.3, h.Chroma(), 1e-3)
	assert.InDelta(t, 0.4, h.ValueFloat(), 1e-4)
	assert.InDelta(t, hue.Angle().Radians(), h.Hue().Angle().Radians(), 1e-3)

	// too much chroma for a light colour is cut back
	light := New(Compose(hue, 1, big.NewRat(9, 10)))
	assert.InDelta(t, MaxChroma(hue, big.NewRat(9, 10)), light.Chroma(), 1e-3)

	assert.Equal(t, rgb.Grey[rgb.Fixed16](v), Compose(hue, 0, v))
	assert.Equal(t, rgb.Grey[rgb.Fixed16](v), Compose(rgb.GreyHue[rgb.Fixed16](), 0.5, v))
}

func TestMaxChroma(t *testing.T) {
	red := rgb.HueFromAngle[rgb.Fixed16](angle.Zero)
	assert.InDelta(t, 1, MaxChroma(red, big.NewRat(1, 3)), 1e-9)
	assert.InDelta(t, 0.5, MaxChroma(red, big.NewRat(1, 6)), 1e-9)
	assert.InDelta(t, 0.5, MaxChroma(red, big.NewRat(2, 3)), 1e-9)
	assert.Equal(t, 0.0, MaxChroma(red, big.NewRat(1, 1)))
	assert.Equal(t, 0.0, MaxChroma(rgb.GreyHue[rgb.Fixed16](), big.NewRat(1, 2)))
}

func TestShadesAndTints(t *testing.T) {
	shade := New(rgb.RGB16{0x8000, 0, 0})
	assert.Equal(t, rgb.Black[rgb.Fixed16](), shade.ZeroChromaRGB())
	assert.Equal(t, rgb.Black[rgb.Fixed16](), shade.ChromaSide())

	tint := New(rgb.RGB16{0xFFFF, 0x8000, 0x8000})
	assert.Equal(t, rgb.White[rgb.Fixed16](), tint.ZeroChromaRGB())
	assert.Equal(t, rgb.White[rgb.Fixed16](), tint.ChromaSide())
}

func TestZeroChromaRGBAtFullChroma(t *testing.T) {
	cases := []struct {
		name string
		c    rgb.RGB16
		want rgb.RGB16
	}{
		{"red", rgb.Red[rgb.Fixed16](), rgb.Black[rgb.Fixed16]()},
		{"blue", rgb.Blue[rgb.Fixed16](), rgb.Black[rgb.Fixed16]()},
		{"yellow", rgb.Yellow[rgb.Fixed16](), rgb.White[rgb.Fixed16]()},
		{"cyan", rgb.Cyan[rgb.Fixed16](), rgb.White[rgb.Fixed16]()},
		{"magenta", rgb.Magenta[rgb.Fixed16](), rgb.White[rgb.Fixed16]()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, New(c.c).ZeroChromaRGB())
		})
	}
}

func TestDerivedRGBs(t *testing.T) {
	red := New(rgb.Red[rgb.Fixed16]())
	assert.Equal(t, rgb.Red[rgb.Fixed16](), red.WarmthRGB())
	assert.Equal(t, rgb.RGB16{0x5555, 0x5555, 0x5555}, red.ValueRGB())

	grey := New(rgb.RGB16{0x2000, 0x2000, 0x2000})
	assert.Equal(t, rgb.RGB16{0x8000, 0x8000, 0x8000}, grey.WarmthRGB())

	c := New(rgb.RGB16{0x8000, 0x6000, 0x4000})
	got := New(c.HueRGBForValue())
	diff, _ := new(big.Rat).Sub(got.Value(), c.Value()).Float64()
	assert.InDelta(t, 0, diff, 2.0/(3*0xFFFF))
	assert.InDelta(t, MaxChroma(c.Hue(), c.Value()), got.Chroma(), 1e-3)
}
