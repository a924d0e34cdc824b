package paint

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrDuplicateName is returned when a series already has a colour of the
// same name.
var ErrDuplicateName = errors.New("duplicate colour name")

// SeriesID identifies a series by manufacturer and series name.
type SeriesID struct {
	Maker string
	Name  string
}

// Compare orders series by maker, then name.
func (id SeriesID) Compare(o SeriesID) int {
	if c := cmp.Compare(id.Maker, o.Maker); c != 0 {
		return c
	}
	return cmp.Compare(id.Name, o.Name)
}

func (id SeriesID) String() string {
	return id.Maker + ": " + id.Name
}

// Series is a manufacturer's range of tube colours, keyed by name.
type Series struct {
	id    SeriesID
	tubes map[string]*TubeColour
}

func NewSeries(maker, name string) *Series {
	return &Series{
		id:    SeriesID{Maker: maker, Name: name},
		tubes: make(map[string]*TubeColour),
	}
}

func (s *Series) ID() SeriesID { return s.id }
func (s *Series) Len() int { return len(s.tubes) }

// Add creates a tube colour in the series from c.
func (s *Series) Add(c *NamedColour) (*TubeColour, error) {
	if _, ok := s.tubes[c.name]; ok {
		return nil, fmt.Errorf("series %s: %w: %q", s.id, ErrDuplicateName, c.name)
	}
	t := &TubeColour{NamedColour: *c, series: s}
	s.tubes[c.name] = t
	return t, nil
}

// Lookup returns the tube colour called name.
func (s *Series) Lookup(name string) (*TubeColour, bool) {
	t, ok := s.tubes[name]
	return t, ok
}

// Remove deletes the colour called name and reports whether it existed.
func (s *Series) Remove(name string) bool {
	if _, ok := s.tubes[name]; !ok {
		return false
	}
	delete(s.tubes, name)
	return true
}

// Colours returns the series' tube colours sorted by name.
func (s *Series) Colours() []*TubeColour {
	names := slices.Sorted(maps.Keys(s.tubes))
	out := make([]*TubeColour, len(names))
	for i, n := range names {
		out[i] = s.tubes[n]
	}
	return out
}
