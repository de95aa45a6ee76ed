// Package mem implements the idiomatic, size-parameterized facade over
// pkg/region and pkg/codec: Mem, Unsigned, and Signed, each constructed
// from a single-dispatch table keyed on the runtime type of the
// initializer value.
package mem

import (
	"math/big"
	"strings"

	"github.com/tidbytes/tidbytes/pkg/codec"
	"github.com/tidbytes/tidbytes/pkg/mtypes"
	"github.com/tidbytes/tidbytes/pkg/region"
)

// facadeKind distinguishes the three interpretations a dispatched value
// can take, per spec.md §4.3's table.
type facadeKind int

const (
	memKind facadeKind = iota
	unsignedKind
	signedKind
)

// widthOf returns the caller-requested width, or native when n is nil.
// Each caller supplies its own native default: the scalar's width for
// fixed-width types, and the value's bit length plus one for platform
// integers, *big.Int values and numeric string literals.
func widthOf(n *int, native int) int {
	if n != nil {
		return *n
	}
	return native
}

// bigIntInput packs a *big.Int per facadeKind, at the given width.
// Width 0 always yields the null region regardless of v or kind, per
// spec.md §8's "Mem[0](anything) -> null region" boundary rule.
func bigIntInput(v *big.Int, n *int, kind facadeKind) (*region.Region, error) {
	width := widthOf(n, v.BitLen()+1)
	if width == 0 {
		return region.Null(), nil
	}
	switch kind {
	case memKind:
		if err := mtypes.EnsureKind(v.Sign() >= 0, mtypes.OutOfRange, "integer initializer must be non-negative for Mem, got %s", v.String()); err != nil {
			return nil, err
		}
		return codec.FromNaturalBigIntegerUnsigned(v, width)
	case unsignedKind:
		if err := mtypes.EnsureKind(v.Sign() >= 0, mtypes.OutOfRange, "integer initializer must be non-negative for Unsigned, got %s", v.String()); err != nil {
			return nil, err
		}
		return codec.FromNumericBigIntegerUnsigned(v, width)
	default:
		return codec.FromNumericBigIntegerSigned(v, width)
	}
}

// dispatch implements the single-dispatch construction table of
// spec.md §4.3, before the post-dispatch transform normalization.
func dispatch(input any, n *int, kind facadeKind) (*region.Region, error) {
	switch v := input.(type) {
	case nil:
		return zeroRegion(n), nil

	case *region.Region:
		return v.Clone(), nil

	case bool:
		return applyOptionalNaturalLength(codec.FromBool(v), n)

	case int:
		return bigIntInput(big.NewInt(int64(v)), n, kind)
	case int64:
		return bigIntInput(big.NewInt(v), n, kind)
	case *big.Int:
		return bigIntInput(v, n, kind)

	case float32:
		return floatInput(mtypes.F32(v), n, kind)
	case float64:
		return floatInput(mtypes.F64(v), n, kind)
	case mtypes.F32:
		return floatInput(v, n, kind)
	case mtypes.F64:
		return floatInput(v, n, kind)

	case mtypes.U8:
		return fixedUnsignedInput(big.NewInt(int64(v)), mtypes.BitsU8, n, kind)
	case mtypes.U16:
		return fixedUnsignedInput(big.NewInt(int64(v)), mtypes.BitsU16, n, kind)
	case mtypes.U32:
		return fixedUnsignedInput(big.NewInt(int64(v)), mtypes.BitsU32, n, kind)
	case mtypes.U64:
		return fixedUnsignedInput(new(big.Int).SetUint64(uint64(v)), mtypes.BitsU64, n, kind)

	case mtypes.I8:
		return fixedSignedInput(big.NewInt(int64(v)), mtypes.BitsI8, n, kind)
	case mtypes.I16:
		return fixedSignedInput(big.NewInt(int64(v)), mtypes.BitsI16, n, kind)
	case mtypes.I32:
		return fixedSignedInput(big.NewInt(int64(v)), mtypes.BitsI32, n, kind)
	case mtypes.I64:
		return fixedSignedInput(big.NewInt(int64(v)), mtypes.BitsI64, n, kind)

	case []int:
		r, err := codec.FromBitList(v)
		if err != nil {
			return nil, err
		}
		return applyOptionalNaturalLength(r, n)
	case [][]int:
		r, err := codec.FromGroupedBits(v)
		if err != nil {
			return nil, err
		}
		return applyOptionalNaturalLength(r, n)
	case []byte:
		return applyOptionalNaturalLength(codec.FromBytes(v), n)

	case string:
		return stringInput(v, n, kind)

	default:
		return nil, mtypes.NewError(mtypes.InvalidInitializer,
			"no facade constructor accepts initializer of type %T", input)
	}
}

// zeroRegion implements the null/none row: an all-zero region of length n,
// or the canonical null region when n is nil.
func zeroRegion(n *int) *region.Region {
	if n == nil {
		return region.Null()
	}
	return region.FromBitLength(*n)
}

// applyOptionalNaturalLength honors an explicit N for codecs that don't
// take one directly (bool, bit list, grouped bits, byte sequence): nil
// leaves the native width, 0 always yields the null region, otherwise
// the natural region is zero-padded or truncated to exactly n bits.
func applyOptionalNaturalLength(r *region.Region, n *int) (*region.Region, error) {
	if n == nil {
		return r, nil
	}
	if *n == 0 {
		return region.Null(), nil
	}
	return region.EnsureBitLength(r, *n)
}

func floatInput(v any, n *int, kind facadeKind) (*region.Region, error) {
	switch f := v.(type) {
	case mtypes.F32:
		if kind == memKind {
			return codec.FromNaturalF32(f, n)
		}
		return codec.FromNumericF32(f, n)
	case mtypes.F64:
		if kind == memKind {
			return codec.FromNaturalF64(f, n)
		}
		return codec.FromNumericF64(f, n)
	default:
		return nil, mtypes.NewError(mtypes.InvalidInitializer, "unsupported float initializer %T", v)
	}
}

// fixedUnsignedInput realizes the "fixed u{8,16,32,64}" row: natural for
// Mem, numeric for Unsigned, numeric-with-signed-overflow-check for Signed.
func fixedUnsignedInput(v *big.Int, width int, n *int, kind facadeKind) (*region.Region, error) {
	w := widthOf(n, width)
	if w == 0 {
		return region.Null(), nil
	}
	switch kind {
	case memKind:
		return codec.FromNaturalBigIntegerUnsigned(v, w)
	case unsignedKind:
		return codec.FromNumericBigIntegerUnsigned(v, w)
	default:
		if err := mtypes.EnsureKind(mtypes.IsInRangeSigned(v, w), mtypes.OutOfRange,
			"unsigned initializer %s does not fit in %d signed bits", v.String(), w); err != nil {
			return nil, err
		}
		return codec.FromNumericBigIntegerSigned(v, w)
	}
}

// fixedSignedInput realizes the "fixed i{8,16,32,64}" row: natural for
// Mem, numeric-rejecting-negative for Unsigned, numeric for Signed.
func fixedSignedInput(v *big.Int, width int, n *int, kind facadeKind) (*region.Region, error) {
	w := widthOf(n, width)
	if w == 0 {
		return region.Null(), nil
	}
	switch kind {
	case memKind:
		return codec.FromNaturalBigIntegerSigned(v, w)
	case unsignedKind:
		if err := mtypes.EnsureKind(v.Sign() >= 0, mtypes.OutOfRange,
			"signed initializer %s must be non-negative for Unsigned", v.String()); err != nil {
			return nil, err
		}
		return codec.FromNumericBigIntegerUnsigned(v, w)
	default:
		return codec.FromNumericBigIntegerSigned(v, w)
	}
}

// stringInput realizes the "string" row: Mem treats the string as UTF-8
// bytes, natural. Unsigned/Signed parse a "0x"/"0b"-prefixed literal as a
// big integer (numeric), otherwise fall back to the byte codec (natural,
// since byte-sequence initializers are always natural per spec.md §4.3).
func stringInput(s string, n *int, kind facadeKind) (*region.Region, error) {
	if kind == memKind {
		return applyOptionalNaturalLength(codec.FromBytesUTF8(s), n)
	}

	base, digits, ok := stringLiteralBase(s)
	if !ok {
		return applyOptionalNaturalLength(codec.FromBytes([]byte(s)), n)
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, mtypes.NewError(mtypes.InvalidInitializer, "malformed numeric literal %q", s)
	}
	width := widthOf(n, (len(digits)*bitsPerDigit(base))+1)
	if width == 0 {
		return region.Null(), nil
	}
	if kind == unsignedKind {
		if err := mtypes.EnsureKind(v.Sign() >= 0, mtypes.OutOfRange, "numeric string literal must be non-negative, got %q", s); err != nil {
			return nil, err
		}
		return codec.FromNumericBigIntegerUnsigned(v, width)
	}
	return codec.FromNumericBigIntegerSigned(v, width)
}

func stringLiteralBase(s string) (base int, digits string, ok bool) {
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "0x"):
		return 16, s[2:], true
	case strings.HasPrefix(lower, "0b"):
		return 2, s[2:], true
	default:
		return 0, "", false
	}
}

func bitsPerDigit(base int) int {
	switch base {
	case 2:
		return 1
	case 16:
		return 4
	default:
		return 8
	}
}
