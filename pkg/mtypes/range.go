package mtypes

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// BitWidth is any integer type usable to describe a bit count: the width
// parameter is plain data (an int, or occasionally a narrower integer type
// coming from a caller), never a type-level const generic — see
// SPEC_FULL.md §3.4 / Design Notes §9.
type BitWidth = constraints.Integer

// RangeUnsigned returns the inclusive range [0, 2^n - 1] representable by
// an unsigned value of n bits. RangeUnsigned(0) returns [0, 0].
func RangeUnsigned[N BitWidth](n N) (lo, hi *big.Int) {
	lo = big.NewInt(0)
	if n <= 0 {
		return lo, big.NewInt(0)
	}
	hi = new(big.Int).Lsh(big.NewInt(1), uint(n))
	hi.Sub(hi, big.NewInt(1))
	return lo, hi
}

// RangeSigned returns the inclusive range [-2^(n-1), 2^(n-1) - 1]
// representable by a two's-complement signed value of n bits.
func RangeSigned[N BitWidth](n N) (lo, hi *big.Int) {
	if n <= 0 {
		return big.NewInt(0), big.NewInt(0)
	}
	half := new(big.Int).Lsh(big.NewInt(1), uint(n-1))
	lo = new(big.Int).Neg(half)
	hi = new(big.Int).Sub(half, big.NewInt(1))
	return lo, hi
}

// IsInRangeUnsigned reports whether v lies within [0, 2^n - 1].
func IsInRangeUnsigned[N BitWidth](v *big.Int, n N) bool {
	lo, hi := RangeUnsigned(n)
	return v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0
}

// IsInRangeSigned reports whether v lies within [-2^(n-1), 2^(n-1) - 1].
func IsInRangeSigned[N BitWidth](v *big.Int, n N) bool {
	lo, hi := RangeSigned(n)
	return v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0
}
