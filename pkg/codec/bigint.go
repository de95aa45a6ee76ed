package codec

import (
	"math/big"

	"github.com/tidbytes/tidbytes/pkg/mtypes"
	"github.com/tidbytes/tidbytes/pkg/region"
)

// naturalBitsFromUnsigned expands v's magnitude into n LSB-first bits,
// matching a byte-for-byte little-endian memory layout of an n-bit
// unsigned value (spec.md §4.2.3).
func naturalBitsFromUnsigned(v *big.Int, n int) []int {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = int(v.Bit(i))
	}
	return out
}

// FromNaturalBigIntegerUnsigned packs v, an arbitrary-precision unsigned
// value, as n bits of raw memory. Contract: 0 <= v < 2^n. n == 0 always
// yields the null region, regardless of v (spec.md §4.2.3).
func FromNaturalBigIntegerUnsigned(v *big.Int, n int) (*region.Region, error) {
	if err := mtypes.Ensure(n >= 0, "from_natural_big_integer_unsigned: n must be non-negative, got %d", n); err != nil {
		return nil, err
	}
	if n == 0 {
		return region.Null(), nil
	}
	if err := mtypes.EnsureKind(mtypes.IsInRangeUnsigned(v, n), mtypes.OutOfRange,
		"from_natural_big_integer_unsigned: %s out of range for %d unsigned bits", v.String(), n); err != nil {
		return nil, err
	}
	return region.FromBits(naturalBitsFromUnsigned(v, n)), nil
}

// FromNumericBigIntegerUnsigned packs v as n bits, numeric interpretation
// (LSB on the right).
func FromNumericBigIntegerUnsigned(v *big.Int, n int) (*region.Region, error) {
	natural, err := FromNaturalBigIntegerUnsigned(v, n)
	if err != nil {
		return nil, err
	}
	return region.Reverse(natural), nil
}

// twosComplementMagnitude folds a signed value v, -2^(n-1) <= v < 2^(n-1),
// into its n-bit unsigned two's-complement bit pattern as a *big.Int.
func twosComplementMagnitude(v *big.Int, n int) *big.Int {
	if v.Sign() >= 0 {
		return new(big.Int).Set(v)
	}
	modulus := new(big.Int).Lsh(big.NewInt(1), uint(n))
	return new(big.Int).Add(modulus, v)
}

// FromNaturalBigIntegerSigned packs v, an arbitrary-precision signed
// value, as n bits of raw memory using two's-complement encoding.
// Contract: -2^(n-1) <= v < 2^(n-1). n == 0 always yields the null
// region, regardless of v (spec.md §4.2.3).
func FromNaturalBigIntegerSigned(v *big.Int, n int) (*region.Region, error) {
	if err := mtypes.Ensure(n >= 0, "from_natural_big_integer_signed: n must be non-negative, got %d", n); err != nil {
		return nil, err
	}
	if n == 0 {
		return region.Null(), nil
	}
	if err := mtypes.EnsureKind(mtypes.IsInRangeSigned(v, n), mtypes.OutOfRange,
		"from_natural_big_integer_signed: %s out of range for %d signed bits", v.String(), n); err != nil {
		return nil, err
	}
	magnitude := twosComplementMagnitude(v, n)
	return region.FromBits(naturalBitsFromUnsigned(magnitude, n)), nil
}

// FromNumericBigIntegerSigned packs v as n bits, numeric interpretation.
func FromNumericBigIntegerSigned(v *big.Int, n int) (*region.Region, error) {
	natural, err := FromNaturalBigIntegerSigned(v, n)
	if err != nil {
		return nil, err
	}
	return region.Reverse(natural), nil
}

// IntoNaturalBigIntegerUnsigned decodes r's raw memory bits as an
// unsigned little-endian magnitude (the inverse of
// FromNaturalBigIntegerUnsigned).
func IntoNaturalBigIntegerUnsigned(r *region.Region) *big.Int {
	out := new(big.Int)
	for i, b := range r.Bits() {
		if b != 0 {
			out.SetBit(out, i, 1)
		}
	}
	return out
}

// IntoNumericBigIntegerUnsigned decodes r under the numeric
// interpretation (LSB on the right).
func IntoNumericBigIntegerUnsigned(r *region.Region) *big.Int {
	return IntoNaturalBigIntegerUnsigned(region.Reverse(r))
}

// IntoNaturalBigIntegerSigned decodes r's raw memory bits as a
// two's-complement signed value of r.BitLength() bits.
func IntoNaturalBigIntegerSigned(r *region.Region) *big.Int {
	n := r.BitLength()
	magnitude := IntoNaturalBigIntegerUnsigned(r)
	if n == 0 || magnitude.Bit(n-1) == 0 {
		return magnitude
	}
	modulus := new(big.Int).Lsh(big.NewInt(1), uint(n))
	return new(big.Int).Sub(magnitude, modulus)
}

// IntoNumericBigIntegerSigned decodes r under the numeric interpretation.
func IntoNumericBigIntegerSigned(r *region.Region) *big.Int {
	return IntoNaturalBigIntegerSigned(region.Reverse(r))
}
