// number.go: dual-width integer literals and exact fractions.
package steel

import (
	"math/big"
	"strconv"
)

// Int is an integer literal value. Values inside the signed 64-bit range
// stay inline; anything wider is promoted to math/big. The split is a
// representation optimization only: two Ints holding the same value always
// compare equal regardless of how they were produced.
type Int struct {
	small int64
	big   *big.Int // nil unless the value exceeds the int64 range
}

// IntFromInt64 wraps a native-width value.
func IntFromInt64(v int64) Int { return Int{small: v} }

// ParseInt reads a base-10 integer of any width. The second result is false
// when the text is not a valid decimal integer.
func ParseInt(s string) (Int, bool) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int{small: v}, true
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, false
	}
	return intFromBig(b), true
}

// intFromBig normalizes to the inline form whenever the value fits.
func intFromBig(b *big.Int) Int {
	if b.IsInt64() {
		return Int{small: b.Int64()}
	}
	return Int{big: b}
}

// IsBig reports whether the value is carried in arbitrary-precision form.
func (n Int) IsBig() bool { return n.big != nil }

// Int64 returns the native-width value. The second result is false when the
// value does not fit.
func (n Int) Int64() (int64, bool) {
	if n.big != nil {
		return 0, false
	}
	return n.small, true
}

// BigInt returns the value as a fresh *big.Int.
func (n Int) BigInt() *big.Int {
	if n.big != nil {
		return new(big.Int).Set(n.big)
	}
	return big.NewInt(n.small)
}

func (n Int) String() string {
	if n.big != nil {
		return n.big.String()
	}
	return strconv.FormatInt(n.small, 10)
}

// Equal compares by value across both representations.
func (n Int) Equal(m Int) bool {
	if n.big == nil && m.big == nil {
		return n.small == m.small
	}
	return n.BigInt().Cmp(m.BigInt()) == 0
}

// Rational is an exact numerator/denominator literal, kept unreduced and
// sign-unnormalized exactly as written.
type Rational struct {
	Num Int
	Den Int
}

func (r Rational) String() string { return r.Num.String() + "/" + r.Den.String() }
