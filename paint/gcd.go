package paint

import (
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

var (
	ErrNegativeParts = errors.New("negative parts")
	ErrTooManyParts  = errors.New("too many parts")
)

// GCD returns the greatest common divisor of vals, ignoring signs.
// GCD of nothing, or of zeros only, is 0.
func GCD[T constraints.Integer](vals ...T) T {
	var g T
	for _, v := range vals {
		if v < 0 {
			v = -v
		}
		for v != 0 {
			g, v = v, g%v
		}
	}
	return g
}

// Simplify returns blobs with their parts divided by the greatest common
// divisor of all parts. Zero part blobs stay zero.
func Simplify(blobs []Blob) []Blob {
	parts := make([]int, len(blobs))
	for i, b := range blobs {
		parts[i] = b.Parts
	}
	g := GCD(parts...)
	out := make([]Blob, len(blobs))
	for i, b := range blobs {
		out[i] = b
		if g > 1 {
			out[i].Parts = b.Parts / g
		}
	}
	return out
}

// Share is a rational amount of a paint.
type Share struct {
	Paint  Paint
	Weight *big.Rat
}

// BlobsFromShares converts rational shares to the smallest whole numbers
// of parts in the same proportions.
func BlobsFromShares(shares []Share) ([]Blob, error) {
	lcm := big.NewInt(1)
	for _, s := range shares {
		if s.Weight.Sign() < 0 {
			return nil, fmt.Errorf("%s: %w: %s", s.Paint.Name(), ErrNegativeParts, s.Weight.RatString())
		}
		d := s.Weight.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Quo(d, g))
	}
	blobs := make([]Blob, len(shares))
	for i, s := range shares {
		n := new(big.Int).Mul(s.Weight.Num(), lcm)
		n.Quo(n, s.Weight.Denom())
		if !n.IsInt64() || n.Int64() > int64(maxParts) {
			return nil, fmt.Errorf("%s: %w", s.Paint.Name(), ErrTooManyParts)
		}
		blobs[i] = Blob{Paint: s.Paint, Parts: int(n.Int64())}
	}
	return Simplify(blobs), nil
}

const maxParts = 1 << 30
