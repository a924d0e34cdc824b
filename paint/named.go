package paint

import (
	"fmt"
	"strings"

	"github.com/echoflaresat/paintmix/rating"
	"github.com/echoflaresat/paintmix/rgb"
)

// Paint is anything that can be put into a mixture: a named colour, a
// tube colour from a series, or a mixed colour.
type Paint interface {
	Name() string
	RGB() rgb.RGB16
	Transparency() rating.Transparency
	Permanence() rating.Permanence
	isPaint()
}

// NamedColour is a colour with a name. The name never changes; renaming
// means replacing the colour.
type NamedColour struct {
	Colour
	name string
}

func NewNamedColour(name string, c Colour) *NamedColour {
	return &NamedColour{Colour: c, name: name}
}

func (n *NamedColour) Name() string { return n.name }
func (n *NamedColour) String() string { return n.name }
func (*NamedColour) isPaint() {}

// TubeColour is a named colour belonging to a paint series.
type TubeColour struct {
	NamedColour
	series *Series
}

// Series returns the series the colour belongs to.
func (t *TubeColour) Series() *Series { return t.series }

func (t *TubeColour) String() string {
	if t.series == nil {
		return t.name
	}
	return fmt.Sprintf("%s (%s: %s)", t.name, t.series.id.Maker, t.series.id.Name)
}

var idealColours = []struct {
	name string
	rgb  func() rgb.RGB16
}{
	{"WHITE", rgb.White[rgb.Fixed16]},
	{"MAGENTA", rgb.Magenta[rgb.Fixed16]},
	{"RED", rgb.Red[rgb.Fixed16]},
	{"YELLOW", rgb.Yellow[rgb.Fixed16]},
	{"GREEN", rgb.Green[rgb.Fixed16]},
	{"CYAN", rgb.Cyan[rgb.Fixed16]},
	{"BLUE", rgb.Blue[rgb.Fixed16]},
	{"BLACK", rgb.Black[rgb.Fixed16]},
}

// IdealColours returns new named colours for white, the primaries, the
// secondaries and black, with default ratings.
func IdealColours() []*NamedColour {
	out := make([]*NamedColour, 0, len(idealColours))
	for _, c := range idealColours {
		out = append(out, NewNamedColour(c.name, NewDefaultColour(c.rgb())))
	}
	return out
}

// Describe returns a one line description of p for display.
func Describe(p Paint) string {
	switch p := p.(type) {
	case *TubeColour:
		return fmt.Sprintf("%s %v %s/%s", p, p.RGB(), p.Transparency(), p.Permanence())
	case *MixedColour:
		var b strings.Builder
		name := p.Name()
		if name == "" {
			name = "Mixed Colour"
		}
		fmt.Fprintf(&b, "%s %v %s/%s:", name, p.RGB(), p.Transparency(), p.Permanence())
		for _, blob := range p.blobs {
			fmt.Fprintf(&b, " %d×%s", blob.Parts, blob.Paint.Name())
		}
		return b.String()
	case *NamedColour:
		return fmt.Sprintf("%s %v %s/%s", p.Name(), p.RGB(), p.Transparency(), p.Permanence())
	default:
		return fmt.Sprintf("%v", p)
	}
}
