package paint

import (
	"cmp"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/echoflaresat/paintmix/rating"
	"github.com/echoflaresat/paintmix/rgb"
)

// Blob is an amount of a paint in a mixture.
type Blob struct {
	Paint Paint
	Parts int
}

// MixedColour is the colour made by mixing blobs of paint. Blobs are
// kept in descending order of parts. A mixture with no parts is empty:
// black with default ratings.
type MixedColour struct {
	Colour
	blobs []Blob
	name  string
	notes string
}

// Mix returns the mixture of blobs. The RGB and the ratings are the
// parts-weighted averages of the blobs'; the RGB is summed exactly and
// rounded once.
func Mix(blobs []Blob) *MixedColour {
	kept := make([]Blob, 0, len(blobs))
	for _, b := range blobs {
		if b.Parts > 0 && b.Paint != nil {
			kept = append(kept, b)
		}
	}
	slices.SortStableFunc(kept, func(a, b Blob) int { return cmp.Compare(b.Parts, a.Parts) })

	m := &MixedColour{blobs: kept}
	total := 0
	var sums [3]big.Rat
	var tr rating.Transparency
	var pm rating.Permanence
	for _, b := range kept {
		total += b.Parts
		parts := big.NewRat(int64(b.Parts), 1)
		c := b.Paint.RGB()
		for i := range sums {
			sums[i].Add(&sums[i], new(big.Rat).Mul(c[i].Rat(), parts))
		}
		tr = tr.Add(b.Paint.Transparency().Scale(float64(b.Parts)))
		pm = pm.Add(b.Paint.Permanence().Scale(float64(b.Parts)))
	}
	if total == 0 {
		m.Colour = NewDefaultColour(rgb.Black[rgb.Fixed16]())
		return m
	}

	var z rgb.Fixed16
	d := big.NewRat(int64(total), 1)
	var c rgb.RGB16
	for i := range c {
		c[i] = z.FromRat(new(big.Rat).Quo(&sums[i], d))
	}
	n := float64(total)
	m.Colour = NewColour(c, tr.Div(n).Nearest(), pm.Div(n).Nearest())
	return m
}

// MixNamed is like Mix but names the result and attaches notes.
func MixNamed(blobs []Blob, name, notes string) *MixedColour {
	m := Mix(blobs)
	m.name = name
	m.notes = notes
	return m
}

// Name returns the mixture's name, which is empty for unnamed mixtures.
func (m *MixedColour) Name() string { return m.name }
func (m *MixedColour) Notes() string { return m.notes }
func (*MixedColour) isPaint() {}

func (m *MixedColour) SetNotes(notes string) { m.notes = notes }

// IsEmpty reports whether the mixture has no parts.
func (m *MixedColour) IsEmpty() bool { return len(m.blobs) == 0 }

// Blobs returns the mixture's blobs in descending order of parts.
func (m *MixedColour) Blobs() []Blob { return slices.Clone(m.blobs) }

// Parts returns the total number of parts.
func (m *MixedColour) Parts() int {
	n := 0
	for _, b := range m.blobs {
		n += b.Parts
	}
	return n
}

// Contains reports whether p is one of the mixture's paints.
func (m *MixedColour) Contains(p Paint) bool {
	return slices.ContainsFunc(m.blobs, func(b Blob) bool { return b.Paint == p })
}

func (m *MixedColour) String() string {
	var b strings.Builder
	if m.name != "" {
		fmt.Fprintf(&b, "Name: %q Notes: %q ", m.name, m.notes)
	} else {
		b.WriteString("Mixed Colour: ")
	}
	b.WriteString(m.Colour.String())
	b.WriteString("\nComponents:\n")
	for _, blob := range m.blobs {
		fmt.Fprintf(&b, "\t%d Part(s): %v\n", blob.Parts, blob.Paint)
	}
	return b.String()
}
