package manip

import (
	"testing"

	"github.com/echoflaresat/paintmix/angle"
	"github.com/echoflaresat/paintmix/hcvw"
	"github.com/echoflaresat/paintmix/rgb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCloseRGB(t *testing.T, want, got rgb.RGB16, tol int) {
	t.Helper()
	for i := range want {
		d := int(want[i]) - int(got[i])
		if d < -tol || d > tol {
			t.Errorf("channel %d: want %v, got %v (rgb %v vs %v)", i, want[i], got[i], want, got)
		}
	}
}

var (
	mid   = rgb.Grey[rgb.Fixed16](rgb.NewProp(1, 2).Rat())
	ochre = rgb.RGB16{0xC000, 0x8000, 0x2000}
)

func TestLimits(t *testing.T) {
	cases := []struct {
		name string
		c    rgb.RGB16
		op   func(*Manipulator) bool
		want bool
	}{
		{"white value up", rgb.White[rgb.Fixed16](), func(m *Manipulator) bool { return m.IncrValue(DefaultValueStep) }, false},
		{"white value down", rgb.White[rgb.Fixed16](), func(m *Manipulator) bool { return m.DecrValue(DefaultValueStep) }, true},
		{"black value down", rgb.Black[rgb.Fixed16](), func(m *Manipulator) bool { return m.DecrValue(DefaultValueStep) }, false},
		{"black value up", rgb.Black[rgb.Fixed16](), func(m *Manipulator) bool { return m.IncrValue(DefaultValueStep) }, true},
		{"grey rotate", mid, func(m *Manipulator) bool { return m.RotateHue(DefaultHueStep) }, false},
		{"grey chroma up", mid, func(m *Manipulator) bool { return m.IncrChroma(DefaultChromaStep) }, false},
		{"grey chroma down", mid, func(m *Manipulator) bool { return m.DecrChroma(DefaultChromaStep) }, false},
		{"red chroma up", rgb.Red[rgb.Fixed16](), func(m *Manipulator) bool { return m.IncrChroma(DefaultChromaStep) }, false},
		{"red chroma down", rgb.Red[rgb.Fixed16](), func(m *Manipulator) bool { return m.DecrChroma(DefaultChromaStep) }, true},
		{"zero rotation", ochre, func(m *Manipulator) bool { return m.RotateHue(angle.Angle{}) }, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := New(c.c)
			assert.Equal(t, c.want, c.op(m))
			if !c.want {
				assert.Equal(t, c.c, m.RGB(), "refused nudges leave the colour alone")
			}
		})
	}
}

func TestOvershootStopsAtLimit(t *testing.T) {
	m := New(mid)
	require.True(t, m.IncrValue(2))
	assert.Equal(t, rgb.White[rgb.Fixed16](), m.RGB())
	assert.False(t, m.IncrValue(DefaultValueStep))

	require.True(t, m.DecrValue(5))
	assert.Equal(t, rgb.Black[rgb.Fixed16](), m.RGB())

	m = New(ochre)
	require.True(t, m.DecrChroma(2))
	assert.True(t, m.HCVW().Hue().IsGrey())
	assert.False(t, m.DecrChroma(DefaultChromaStep))
}

func TestValueSteps(t *testing.T) {
	m := New(ochre)
	before := m.HCVW()
	require.True(t, m.IncrValue(0.05))
	after := m.HCVW()
	assert.InDelta(t, before.ValueFloat()+0.05, after.ValueFloat(), 1e-4)
	assert.InDelta(t, before.Hue().Angle().Degrees(), after.Hue().Angle().Degrees(), 0.05)
	assert.InDelta(t, before.Chroma(), after.Chroma(), 1e-3)

	require.True(t, m.DecrValue(0.05))
	assertCloseRGB(t, ochre, m.RGB(), 4)
}

func TestChromaSteps(t *testing.T) {
	m := New(rgb.Red[rgb.Fixed16]())
	require.True(t, m.DecrChroma(0.1))
	h := m.HCVW()
	assert.InDelta(t, 0.9, h.Chroma(), 1e-3)
	assert.InDelta(t, 1.0/3, h.ValueFloat(), 1e-4)
	assert.InDelta(t, 0, h.Hue().Angle().Degrees(), 0.01)

	require.True(t, m.IncrChroma(0.5))
	assertCloseRGB(t, rgb.Red[rgb.Fixed16](), m.RGB(), 4)

	// light colours are limited by white, not by 1
	m = New(rgb.RGB16{0xFFFF, 0xC000, 0xC000})
	limit := hcvw.MaxChroma(m.HCVW().Hue(), m.HCVW().Value())
	require.Less(t, limit, 1.0)
	if m.IncrChroma(1) {
		assert.InDelta(t, limit, m.HCVW().Chroma(), 1e-3)
	}
	assert.False(t, m.IncrChroma(DefaultChromaStep))
}

func TestUnchangedColourReportsFalse(t *testing.T) {
	t.Run("chroma at rounded limit", func(t *testing.T) {
		m := New(rgb.RGB16{0x7770, 0x7EC9, 0})
		m.IncrChroma(2)
		at := m.RGB()
		assert.False(t, m.IncrChroma(DefaultChromaStep))
		assert.Equal(t, at, m.RGB())
	})

	steps := []struct {
		name string
		op   func(*Manipulator) bool
	}{
		{"value up", func(m *Manipulator) bool { return m.IncrValue(1e-9) }},
		{"value down", func(m *Manipulator) bool { return m.DecrValue(1e-9) }},
		{"chroma up", func(m *Manipulator) bool { return m.IncrChroma(1e-9) }},
		{"chroma down", func(m *Manipulator) bool { return m.DecrChroma(1e-9) }},
	}
	for _, s := range steps {
		t.Run(s.name, func(t *testing.T) {
			m := New(ochre)
			before := m.HCVW()
			assert.False(t, s.op(m), "step too small to move a channel")
			assert.Equal(t, ochre, m.RGB())
			assert.Equal(t, before, m.HCVW())
		})
	}
}

func TestRotateHue(t *testing.T) {
	m := New(ochre)
	start := m.HCVW().Hue().Angle()
	require.True(t, m.RotateHue(DefaultHueStep))
	turned := m.HCVW().Hue().Angle().Sub(start)
	assert.InDelta(t, DefaultHueStep.Degrees(), turned.Degrees(), 0.05)

	require.True(t, m.RotateHue(DefaultHueStep.Neg()))
	assertCloseRGB(t, ochre, m.RGB(), 8)
}

func TestResetAndSetRGB(t *testing.T) {
	m := New(ochre)
	m.RotateHue(angle.FromDegrees(40))
	m.DecrValue(0.1)
	m.SetRGB(rgb.Blue[rgb.Fixed16]())
	assert.Equal(t, rgb.Blue[rgb.Fixed16](), m.RGB())
	m.Reset()
	assert.Equal(t, ochre, m.RGB())
}

func TestAutoMatch(t *testing.T) {
	dull := rgb.RGB16{0xC000, 0x8000, 0x8000}
	m := New(mid)
	m.AutoMatch(dull)
	h := m.HCVW()
	assert.InDelta(t, hcvw.New(dull).ValueFloat(), h.ValueFloat(), 1e-4)
	assert.InDelta(t, 0, h.Hue().Angle().Degrees(), 0.01)
	assert.InDelta(t, hcvw.MaxChroma(h.Hue(), h.Value()), h.Chroma(), 1e-3)
	assert.Greater(t, h.Chroma(), hcvw.New(dull).Chroma())
}
