package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// FloatingRound is the number of decimal places a price is rounded to for
// tick-map indexing purposes. Raw (unrounded) prices are always used for
// arithmetic; only index keys are rounded.
const FloatingRound = 3

// Amount is a non-negative 128-bit-or-wider integer quantity. cosmossdk.io/math.Int
// is backed by math/big, so it widens without overflow for any product this
// module computes — the corpus's usual stand-in for a fixed-width uint128.
type Amount struct {
	math.Int
}

// NewAmount wraps a math.Int as an Amount.
func NewAmount(i math.Int) Amount { return Amount{i} }

// NewAmountFromUint64 builds an Amount from a uint64 literal.
func NewAmountFromUint64(v uint64) Amount { return Amount{math.NewIntFromUint64(v)} }

// ZeroAmount returns the zero amount.
func ZeroAmount() Amount { return Amount{math.ZeroInt()} }

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a.Int.IsZero() }

// Add returns a + b.
func (a Amount) Add(b Amount) Amount { return Amount{a.Int.Add(b.Int)} }

// Sub returns a - b, or an error if the result would be negative
// (spec.md §7: "any checked-sub producing a negative value raises a fatal underflow").
func (a Amount) Sub(b Amount) (Amount, error) {
	if b.Int.GT(a.Int) {
		return Amount{}, fmt.Errorf("%w: %s - %s", ErrArithmeticUnderflow, a.Int, b.Int)
	}
	return Amount{a.Int.Sub(b.Int)}, nil
}

// Min returns the smaller of a and b.
func (a Amount) Min(b Amount) Amount {
	if a.Int.LT(b.Int) {
		return a
	}
	return b
}

// GT, GTE, LT, LTE, Equal delegate to the wrapped math.Int.
func (a Amount) GT(b Amount) bool    { return a.Int.GT(b.Int) }
func (a Amount) GTE(b Amount) bool   { return a.Int.GTE(b.Int) }
func (a Amount) LT(b Amount) bool    { return a.Int.LT(b.Int) }
func (a Amount) LTE(b Amount) bool   { return a.Int.LTE(b.Int) }
func (a Amount) Equal(b Amount) bool { return a.Int.Equal(b.Int) }
func (a Amount) IsPositive() bool    { return a.Int.IsPositive() }

// priceAtomicsExponent is the number of fractional digits backing Price's
// fixed-point representation (spec.md §4.2: "atomics = price · 10^18").
// math.LegacyDec already carries exactly 18 fractional digits internally, so
// Price is a thin, explicitly-named wrapper rather than a reimplementation.
const priceAtomicsExponent = 18

// Price is a quote-per-base exchange rate, stored as an 18-fractional-digit
// fixed-point decimal (spec.md §4.2).
type Price struct {
	math.LegacyDec
}

// NewPriceFromDec wraps a math.LegacyDec as a Price.
func NewPriceFromDec(d math.LegacyDec) Price { return Price{d} }

// NewPriceFromAmounts computes a Buy order's price (ask/offer) or a Sell
// order's price (offer/ask) per spec.md §3.1 and §4.2.
func NewPriceFromAmounts(direction OrderDirection, offer, ask Amount) (Price, error) {
	if offer.IsZero() || ask.IsZero() {
		return Price{}, ErrAssetMustNotBeZero
	}
	if direction == OrderDirectionBuy {
		return Price{math.LegacyNewDecFromInt(ask.Int).Quo(math.LegacyNewDecFromInt(offer.Int))}, nil
	}
	return Price{math.LegacyNewDecFromInt(offer.Int).Quo(math.LegacyNewDecFromInt(ask.Int))}, nil
}

// Rounded returns the price truncated to FloatingRound decimal places, used
// only for deriving tick-map index keys — never for settlement arithmetic.
func (p Price) Rounded() Price {
	return Price{p.LegacyDec.MulInt64(1000).TruncateDec().QuoInt64(1000)}
}

// IndexBytes renders the rounded price as a fixed-width, sign-free decimal
// ASCII string whose byte-lexicographic order equals numeric order
// (spec.md §4.1). 24 integer digits is comfortably above anything a
// math.Int-backed Amount ratio can produce for realistic pair amounts, and
// 3 fractional digits matches FloatingRound.
func (p Price) IndexBytes() []byte {
	r := p.Rounded()
	integer := r.LegacyDec.TruncateInt()
	frac := r.LegacyDec.Sub(math.LegacyNewDecFromInt(integer)).MulInt64(1000).TruncateInt()
	return []byte(fmt.Sprintf("%s.%s", zeroPad(integer.String(), 24), zeroPad(frac.String(), 3)))
}

// zeroPad left-pads a non-negative decimal digit string with '0' so that
// byte-lexicographic comparison between two padded strings of equal width
// matches numeric comparison of the underlying values.
func zeroPad(digits string, width int) string {
	if len(digits) >= width {
		return digits
	}
	pad := make([]byte, width-len(digits))
	for i := range pad {
		pad[i] = '0'
	}
	return string(pad) + digits
}

// MulAmount computes floor(amount * price) using LegacyDec's internal
// 18-fractional-digit fixed point, matching spec.md §4.2's
// `amount * price.atomics / 10^18` with floor semantics.
func (p Price) MulAmount(amount Amount) Amount {
	product := math.LegacyNewDecFromInt(amount.Int).Mul(p.LegacyDec)
	return Amount{product.TruncateInt()}
}

// DivAmount computes floor(amount / price), matching spec.md §4.2's
// `amount * 10^18 / price.atomics` with floor semantics. QuoTruncate is
// required here, not Quo: Quo rounds half-even at the 18th fractional digit
// before TruncateInt, so a true quotient just below an integer can round up
// and then truncate one unit high.
func (p Price) DivAmount(amount Amount) Amount {
	quotient := math.LegacyNewDecFromInt(amount.Int).QuoTruncate(p.LegacyDec)
	return Amount{quotient.TruncateInt()}
}

// IsZero reports whether the price is zero (only possible for a malformed order).
func (p Price) IsZero() bool { return p.LegacyDec.IsZero() }

// LT, Equal compare two prices by their raw (unrounded) value.
func (p Price) LT(o Price) bool    { return p.LegacyDec.LT(o.LegacyDec) }
func (p Price) Equal(o Price) bool { return p.LegacyDec.Equal(o.LegacyDec) }
