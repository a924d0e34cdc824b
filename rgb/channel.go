package rgb

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Channel is the arithmetic an RGB component type provides.
// Values are converted through exact rationals, so the only rounding
// happens in FromRat.
type Channel[T any] interface {
	// Rat returns the exact channel value in channel units.
	Rat() *big.Rat
	// FromRat returns the representable channel value nearest to r.
	// The receiver is only used to select the type.
	FromRat(r *big.Rat) T
	// One returns the channel maximum.
	One() T
	IsZero() bool
	// Float returns the channel value as a fraction of One.
	Float() float64
}

// Fixed16 is a 16 bit fixed-point channel: 0 is none, 0xFFFF is full.
type Fixed16 uint16

// Fixed8 is an 8 bit channel, as found in legacy series files.
type Fixed8 uint8

const (
	One16 Fixed16 = 0xFFFF
	One8  Fixed8  = 0xFF
)

func (c Fixed16) Rat() *big.Rat { return new(big.Rat).SetUint64(uint64(c)) }
func (Fixed16) FromRat(r *big.Rat) Fixed16 { return roundClamp(r, One16) }
func (Fixed16) One() Fixed16 { return One16 }
func (c Fixed16) IsZero() bool { return c == 0 }
func (c Fixed16) Float() float64 { return float64(c) / float64(One16) }
func (c Fixed16) String() string { return fmt.Sprintf("0x%X", uint16(c)) }

func (c Fixed8) Rat() *big.Rat { return new(big.Rat).SetUint64(uint64(c)) }
func (Fixed8) FromRat(r *big.Rat) Fixed8 { return roundClamp(r, One8) }
func (Fixed8) One() Fixed8 { return One8 }
func (c Fixed8) IsZero() bool { return c == 0 }
func (c Fixed8) Float() float64 { return float64(c) / float64(One8) }
func (c Fixed8) String() string { return fmt.Sprintf("0x%X", uint8(c)) }

// Widen converts an 8 bit channel to 16 bits by shifting it left 8 bits.
// This is the conversion legacy series files were written for: 0xFF
// becomes 0xFF00, not 0xFFFF.
func (c Fixed8) Widen() Fixed16 {
	return Fixed16(uint16(c) << 8)
}

// roundClamp rounds r half up to an integer and clamps it into [0, one].
func roundClamp[T constraints.Unsigned](r *big.Rat, one T) T {
	if r.Sign() <= 0 {
		return 0
	}
	// floor((2·num + den) / (2·den)) for positive r
	num := new(big.Int).Lsh(r.Num(), 1)
	num.Add(num, r.Denom())
	den := new(big.Int).Lsh(r.Denom(), 1)
	q := num.Quo(num, den)
	if !q.IsUint64() || q.Uint64() > uint64(one) {
		return one
	}
	return T(q.Uint64())
}

// Prop is an exact rational channel holding a proportion of full
// intensity; One is 1. The zero value is 0. Prop values are immutable.
type Prop struct {
	q *big.Rat
}

// NewProp returns the proportion num/den.
func NewProp(num, den int64) Prop {
	return Prop{big.NewRat(num, den)}
}

// PropOf returns the proportion r. r is copied.
func PropOf(r *big.Rat) Prop {
	return Prop{new(big.Rat).Set(r)}
}

func (p Prop) Rat() *big.Rat {
	if p.q == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.q)
}

func (Prop) FromRat(r *big.Rat) Prop { return PropOf(r) }
func (Prop) One() Prop { return NewProp(1, 1) }
func (p Prop) IsZero() bool { return p.q == nil || p.q.Sign() == 0 }

func (p Prop) Float() float64 {
	f, _ := p.Rat().Float64()
	return f
}

func (p Prop) String() string {
	return p.Rat().RatString()
}
