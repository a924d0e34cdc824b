// Package manip nudges a colour's value, chroma and hue in small steps,
// the way a colour is adjusted by eye while matching a sample.
//
// Every nudge reports whether it changed anything. A nudge that starts at
// its limit does nothing and returns false; one that would overshoot stops
// at the limit.
package manip

import (
	"math"
	"math/big"

	"github.com/echoflaresat/paintmix/angle"
	"github.com/echoflaresat/paintmix/hcvw"
	"github.com/echoflaresat/paintmix/rgb"
)

// Step sizes matching a single click in a colour editor.
const (
	DefaultValueStep  = 0.005
	DefaultChromaStep = 0.005
)

var DefaultHueStep = angle.FromRadians(math.Pi / 100)

const limitEpsilon = 1e-9

type Manipulator struct {
	orig rgb.RGB16
	cur  hcvw.HCVW[rgb.Fixed16]
}

func New(c rgb.RGB16) *Manipulator {
	return &Manipulator{orig: c, cur: hcvw.New(c)}
}

func (m *Manipulator) RGB() rgb.RGB16 { return m.cur.RGB() }
func (m *Manipulator) HCVW() hcvw.HCVW[rgb.Fixed16] { return m.cur }

// SetRGB replaces the current colour. Reset still returns to the colour
// the manipulator was created with.
func (m *Manipulator) SetRGB(c rgb.RGB16) {
	m.cur = hcvw.New(c)
}

func (m *Manipulator) Reset() {
	m.cur = hcvw.New(m.orig)
}

// AutoMatch takes c, typically the mean colour of a sample, and replaces
// the current colour with the most chromatic colour of its hue and value.
// Samples photographed in poor light are usually greyer than the paint.
func (m *Manipulator) AutoMatch(c rgb.RGB16) {
	m.cur = hcvw.New(hcvw.New(c).HueRGBForValue())
}

func (m *Manipulator) IncrValue(delta float64) bool {
	v := m.cur.ValueFloat()
	if v >= 1 {
		return false
	}
	return m.setValue(math.Min(1, v+delta))
}

func (m *Manipulator) DecrValue(delta float64) bool {
	v := m.cur.ValueFloat()
	if v <= 0 {
		return false
	}
	return m.setValue(math.Max(0, v-delta))
}

func (m *Manipulator) setValue(v float64) bool {
	value := new(big.Rat).SetFloat64(v)
	return m.set(hcvw.Compose(m.cur.Hue(), m.cur.Chroma(), value))
}

// IncrChroma moves the colour away from grey. The limit is the highest
// chroma the hue can have at the current value.
func (m *Manipulator) IncrChroma(delta float64) bool {
	if m.cur.Hue().IsGrey() {
		return false
	}
	limit := hcvw.MaxChroma(m.cur.Hue(), m.cur.Value())
	c := m.cur.Chroma()
	if c >= limit-limitEpsilon {
		return false
	}
	return m.setChroma(math.Min(limit, c+delta))
}

// DecrChroma moves the colour toward the grey of the same value.
func (m *Manipulator) DecrChroma(delta float64) bool {
	c := m.cur.Chroma()
	if m.cur.Hue().IsGrey() || c <= limitEpsilon {
		return false
	}
	return m.setChroma(math.Max(0, c-delta))
}

func (m *Manipulator) setChroma(c float64) bool {
	return m.set(hcvw.Compose(m.cur.Hue(), c, m.cur.Value()))
}

// set makes c current and reports whether it differs from the current
// colour. A step too small to move any channel, or one made at a limit
// the rounded colour only appears to be short of, changes nothing.
func (m *Manipulator) set(c rgb.RGB16) bool {
	if c == m.cur.RGB() {
		return false
	}
	m.cur = hcvw.New(c)
	return true
}

// RotateHue turns the hue by delta, anticlockwise for positive angles.
// Greys have no hue to turn.
func (m *Manipulator) RotateHue(delta angle.Angle) bool {
	if m.cur.Hue().IsGrey() || delta.IsZero() {
		return false
	}
	return m.set(m.cur.RotatedRGB(delta))
}
