package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in     string
		abbrev string
		value  float64
	}{
		{"AA", "AA", 4},
		{"Permanent", "A", 3},
		{"moderately durable", "B", 2},
		{" C ", "C", 1},
		{"2.4", "B", 2.4},
		{"3.5", "AA", 3.5},
		{"9", "AA", 9},
		{"-2", "C", -2},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			p, err := Parse[PermanenceScale](c.in)
			require.NoError(t, err)
			assert.Equal(t, c.abbrev, p.String())
			assert.Equal(t, c.value, p.Value())
		})
	}
}

func TestParseBadValue(t *testing.T) {
	for _, in := range []string{"", "X", "Very Permanent", "NaN", "Inf", "-Inf", "1e400"} {
		_, err := Parse[TransparencyScale](in)
		assert.ErrorIs(t, err, ErrBadValue, "input %q", in)
	}
}

func TestOrdering(t *testing.T) {
	aa := MustParse[PermanenceScale]("AA")
	c := MustParse[PermanenceScale]("C")
	assert.Equal(t, 1, aa.Compare(c))
	assert.Equal(t, -1, c.Compare(aa))
	assert.Equal(t, 0, aa.Compare(FromValue[PermanenceScale](4)))
}

func TestAverageRoundsToEven(t *testing.T) {
	aa := MustParse[PermanenceScale]("AA")
	c := MustParse[PermanenceScale]("C")
	avg := aa.Scale(1).Add(c.Scale(1)).Div(2)
	assert.Equal(t, 2.5, avg.Value())
	assert.Equal(t, "B", avg.Abbrev())
	assert.Equal(t, "Moderately Durable", avg.Description())
	assert.Equal(t, 2.0, avg.Nearest().Value())
	assert.Equal(t, "AA", FromValue[PermanenceScale](3.5).Abbrev())
	assert.Equal(t, "C", FromValue[PermanenceScale](0.2).Abbrev())
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "O", DefaultTransparency.String())
	assert.Equal(t, "Opaque", DefaultTransparency.Description())
	assert.Equal(t, "B", DefaultPermanence.String())
	assert.Equal(t, "Permanence(2)", DefaultPermanence.GoString())
	assert.Len(t, Levels[TransparencyScale](), 4)
}
