// Package palette holds the paints an artist is mixing with, the number of
// parts of each in the current mixture, and the mixtures saved so far.
package palette

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/echoflaresat/paintmix/paint"
	lru "github.com/hashicorp/golang-lru"
)

var (
	ErrInUse         = errors.New("paint in use")
	ErrUnknownPaint  = errors.New("paint not in palette")
	ErrTooFewPaints  = errors.New("a mixture needs at least two paints")
	ErrNegativeParts = paint.ErrNegativeParts
)

const (
	mixCacheSize      = 128
	mixedNameTemplate = "Mix #%03d"
)

// InUseError lists the mixtures that stop a paint from being removed.
type InUseError struct {
	Paint paint.Paint
	Users []*paint.MixedColour
}

func (e *InUseError) Error() string {
	names := make([]string, len(e.Users))
	for i, u := range e.Users {
		names[i] = u.Name()
	}
	return fmt.Sprintf("colour %q is used in: %s", e.Paint.Name(), strings.Join(names, ", "))
}

func (e *InUseError) Unwrap() error { return ErrInUse }

type entry struct {
	paint paint.Paint
	parts int
}

// Palette is not safe for concurrent use.
type Palette struct {
	paints     []entry
	mixed      []entry // always *paint.MixedColour
	mixedCount int
	cache      *lru.Cache // contributions key -> *paint.MixedColour
}

func New() *Palette {
	cache, _ := lru.New(mixCacheSize)
	return &Palette{cache: cache}
}

func indexOf(entries []entry, p paint.Paint) int {
	return slices.IndexFunc(entries, func(e entry) bool { return e.paint == p })
}

// AddPaint puts p on the palette with no parts. It reports false if p is
// already there.
func (pl *Palette) AddPaint(p paint.Paint) bool {
	if indexOf(pl.paints, p) >= 0 || indexOf(pl.mixed, p) >= 0 {
		return false
	}
	pl.paints = append(pl.paints, entry{paint: p})
	return true
}

// Paints returns the palette's unmixed paints in the order they were added.
func (pl *Palette) Paints() []paint.Paint {
	out := make([]paint.Paint, len(pl.paints))
	for i, e := range pl.paints {
		out[i] = e.paint
	}
	return out
}

// Mixed returns the saved mixtures in the order they were made.
func (pl *Palette) Mixed() []*paint.MixedColour {
	out := make([]*paint.MixedColour, len(pl.mixed))
	for i, e := range pl.mixed {
		out[i] = e.paint.(*paint.MixedColour)
	}
	return out
}

func (pl *Palette) lookup(p paint.Paint) (*entry, error) {
	if i := indexOf(pl.paints, p); i >= 0 {
		return &pl.paints[i], nil
	}
	if i := indexOf(pl.mixed, p); i >= 0 {
		return &pl.mixed[i], nil
	}
	name := "<nil>"
	if p != nil {
		name = p.Name()
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPaint, name)
}

// SetParts sets the number of parts of p in the current mixture.
func (pl *Palette) SetParts(p paint.Paint, parts int) error {
	if parts < 0 {
		return fmt.Errorf("%s: %w: %d", p.Name(), ErrNegativeParts, parts)
	}
	e, err := pl.lookup(p)
	if err != nil {
		return err
	}
	e.parts = parts
	return nil
}

// Parts returns the number of parts of p in the current mixture.
func (pl *Palette) Parts(p paint.Paint) (int, error) {
	e, err := pl.lookup(p)
	if err != nil {
		return 0, err
	}
	return e.parts, nil
}

// Contributions returns the paints with parts in the current mixture,
// unmixed paints first.
func (pl *Palette) Contributions() []paint.Blob {
	var out []paint.Blob
	for _, e := range slices.Concat(pl.paints, pl.mixed) {
		if e.parts > 0 {
			out = append(out, paint.Blob{Paint: e.paint, Parts: e.parts})
		}
	}
	return out
}

// Current returns the current mixture, which is empty when no paint has
// parts. Mixtures are cached by contribution, so repeated calls while the
// parts are unchanged are cheap. Each call returns a fresh copy the caller
// may modify.
func (pl *Palette) Current() *paint.MixedColour {
	blobs := pl.Contributions()
	key := mixKey(blobs)
	var m *paint.MixedColour
	if v, ok := pl.cache.Get(key); ok {
		m = v.(*paint.MixedColour)
	} else {
		m = paint.Mix(blobs)
		pl.cache.Add(key, m)
	}
	c := *m
	return &c
}

// mixKey identifies a list of contributions by paint identity and the
// values a mixture is computed from. The values are included because a
// paint's colour and ratings can be changed in place.
func mixKey(blobs []paint.Blob) string {
	var b strings.Builder
	for _, blob := range blobs {
		p := blob.Paint
		fmt.Fprintf(&b, "%p/%d/%v/%g/%g;", p, blob.Parts, p.RGB(),
			p.Transparency().Value(), p.Permanence().Value())
	}
	return b.String()
}

// Simplify divides all parts by their greatest common divisor.
func (pl *Palette) Simplify() {
	var parts []int
	for _, e := range slices.Concat(pl.paints, pl.mixed) {
		parts = append(parts, e.parts)
	}
	g := paint.GCD(parts...)
	if g <= 1 {
		return
	}
	for _, list := range [][]entry{pl.paints, pl.mixed} {
		for i := range list {
			list[i].parts /= g
		}
	}
}

// ResetParts sets every paint's parts to zero.
func (pl *Palette) ResetParts() {
	for _, list := range [][]entry{pl.paints, pl.mixed} {
		for i := range list {
			list[i].parts = 0
		}
	}
}

// AddMixed saves the current mixture, in its simplest proportions, as a
// new named mixed colour and resets the parts.
func (pl *Palette) AddMixed(notes string) (*paint.MixedColour, error) {
	blobs := pl.Contributions()
	if len(blobs) < 2 {
		return nil, ErrTooFewPaints
	}
	pl.mixedCount++
	m := paint.MixNamed(paint.Simplify(blobs), fmt.Sprintf(mixedNameTemplate, pl.mixedCount), notes)
	pl.mixed = append(pl.mixed, entry{paint: m})
	pl.ResetParts()
	return m, nil
}

// Users returns the saved mixtures that contain p.
func (pl *Palette) Users(p paint.Paint) []*paint.MixedColour {
	var out []*paint.MixedColour
	for _, m := range pl.Mixed() {
		if m.Contains(p) {
			out = append(out, m)
		}
	}
	return out
}

func (pl *Palette) remove(list *[]entry, p paint.Paint) error {
	i := indexOf(*list, p)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownPaint, p.Name())
	}
	if users := pl.Users(p); len(users) > 0 {
		slog.Warn("not removing paint in use", "paint", p.Name(), "users", len(users))
		return &InUseError{Paint: p, Users: users}
	}
	*list = slices.Delete(*list, i, i+1)
	// cached mixtures may refer to p
	pl.cache.Purge()
	return nil
}

// RemovePaint takes p off the palette. It fails with an *InUseError if a
// saved mixture contains p.
func (pl *Palette) RemovePaint(p paint.Paint) error {
	return pl.remove(&pl.paints, p)
}

// RemoveMixed deletes a saved mixture. It fails with an *InUseError if
// another saved mixture contains it.
func (pl *Palette) RemoveMixed(m *paint.MixedColour) error {
	return pl.remove(&pl.mixed, m)
}

// RemoveUnused takes every paint that no saved mixture uses off the
// palette and returns them.
func (pl *Palette) RemoveUnused() []paint.Paint {
	var removed []paint.Paint
	pl.paints = slices.DeleteFunc(pl.paints, func(e entry) bool {
		if len(pl.Users(e.paint)) == 0 {
			removed = append(removed, e.paint)
			return true
		}
		return false
	})
	if len(removed) > 0 {
		pl.cache.Purge()
	}
	return removed
}
