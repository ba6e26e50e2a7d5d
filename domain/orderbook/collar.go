package orderbook

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Collar bounds how far a new best or worst price may sit from the market
// price, expressed as the exact fraction num/den of the market price. The zero
// Collar is disabled.
type Collar struct {
	num int64
	den int64
}

// DefaultCollar tolerates 1/6 of the market price, the 10:12 reference ratio.
var DefaultCollar = Collar{num: 1, den: 6}

func NewCollar(num, den int64) (Collar, error) {
	if den <= 0 || num < 0 {
		return Collar{}, fmt.Errorf("collar %d/%d: numerator must be >= 0 and denominator > 0", num, den)
	}
	return Collar{num: num, den: den}, nil
}

// ParseCollar accepts a ratio ("1/6"), a decimal fraction ("0.15") or
// "off" to disable the guard.
func ParseCollar(s string) (Collar, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "off", "none", "disabled":
		return Collar{}, nil
	}

	if a, b, ok := strings.Cut(s, "/"); ok {
		num, err := decimal.NewFromString(strings.TrimSpace(a))
		if err != nil {
			return Collar{}, fmt.Errorf("collar %q: %w", s, err)
		}
		den, err := decimal.NewFromString(strings.TrimSpace(b))
		if err != nil {
			return Collar{}, fmt.Errorf("collar %q: %w", s, err)
		}
		if !num.IsInteger() || !den.IsInteger() {
			return Collar{}, fmt.Errorf("collar %q: ratio terms must be integers", s)
		}
		return NewCollar(num.IntPart(), den.IntPart())
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Collar{}, fmt.Errorf("collar %q: %w", s, err)
	}
	if d.Exponent() >= 0 {
		return NewCollar(d.IntPart(), 1)
	}
	scale := -d.Exponent()
	if scale > 18 || !d.Coefficient().IsInt64() {
		return Collar{}, fmt.Errorf("collar %q: too precise", s)
	}
	return NewCollar(d.Coefficient().Int64(), decimal.New(1, scale).IntPart())
}

func (c Collar) Enabled() bool {
	return c.den != 0
}

func (c Collar) Fraction() decimal.Decimal {
	if !c.Enabled() {
		return decimal.Zero
	}
	return decimal.NewFromInt(c.num).Div(decimal.NewFromInt(c.den))
}

func (c Collar) String() string {
	if !c.Enabled() {
		return "off"
	}
	return fmt.Sprintf("%d/%d", c.num, c.den)
}

// AllowsWorst reports whether price may become the new worst price on side
// given the current market price. Buys may not rest below market×(1−f),
// sells may not rest above market×(1+f). Comparisons are exact.
func (c Collar) AllowsWorst(side Side, price, market int64) bool {
	if !c.Enabled() || market <= 0 {
		return true
	}
	if side == Buy {
		return !c.scaled(price).LessThan(c.bound(market, -1))
	}
	return !c.scaled(price).GreaterThan(c.bound(market, 1))
}

// AllowsBest reports whether price may rest as the new best price on side.
// Buys may not rest above market×(1+f), sells may not rest below
// market×(1−f).
func (c Collar) AllowsBest(side Side, price, market int64) bool {
	if !c.Enabled() || market <= 0 {
		return true
	}
	if side == Buy {
		return !c.scaled(price).GreaterThan(c.bound(market, 1))
	}
	return !c.scaled(price).LessThan(c.bound(market, -1))
}

func (c Collar) scaled(price int64) decimal.Decimal {
	return decimal.NewFromInt(price).Mul(decimal.NewFromInt(c.den))
}

// bound is market×(den+sign×num), the band edge scaled by den.
func (c Collar) bound(market int64, sign int64) decimal.Decimal {
	return decimal.NewFromInt(market).Mul(decimal.NewFromInt(c.den + sign*c.num))
}
