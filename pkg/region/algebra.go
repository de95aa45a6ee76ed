package region

import (
	"math/bits"

	"github.com/tidbytes/tidbytes/pkg/mtypes"
	"github.com/tidbytes/tidbytes/pkg/order"
)

// Transform maps r from the universe (bitOrder, byteOrder) to the
// canonical universe, or symmetrically from canonical to that universe:
// if byteOrder is RightToLeft the group sequence is reversed; if bitOrder
// is RightToLeft the slots within each group (including ⊥ positions) are
// reversed. See DESIGN.md for the documented partial-byte deviation this
// implies for non-multiple-of-8 regions.
func Transform(r *Region, bitOrder, byteOrder order.Order) *Region {
	groups := r.numGroups()
	data := make([]byte, groups)
	mask := make([]byte, groups)
	copy(data, r.data)
	copy(mask, r.mask)

	if byteOrder == order.RightToLeft {
		reverseBytes(data)
		reverseBytes(mask)
	}
	if bitOrder == order.RightToLeft {
		for g := range data {
			data[g] = bits.Reverse8(data[g])
			mask[g] = bits.Reverse8(mask[g])
		}
	}
	return &Region{data: data, mask: mask}
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Identity is Transform(r, L2R, L2R): returns a copy of r.
func Identity(r *Region) *Region { return Transform(r, order.L2R, order.L2R) }

// Reverse is Transform(r, R2L, R2L).
func Reverse(r *Region) *Region { return Transform(r, order.R2L, order.R2L) }

// ReverseBytes is Transform(r, L2R, R2L byte order) i.e. (R2L, L2R) per
// spec.md §4.1: reverses group order only.
func ReverseBytes(r *Region) *Region { return Transform(r, order.L2R, order.R2L) }

// ReverseBits is Transform(r, R2L, L2R) per spec.md §4.1: reverses bit
// order within each group only.
func ReverseBits(r *Region) *Region { return Transform(r, order.R2L, order.L2R) }

// GetBit returns a 1-bit region holding the value at position i. Contract:
// 0 <= i < BitLength(r).
func GetBit(r *Region, i int) (*Region, error) {
	if err := mtypes.Ensure(i >= 0 && i < r.BitLength(),
		"get_bit: index %d out of range [0, %d)", i, r.BitLength()); err != nil {
		return nil, err
	}
	return FromBits([]int{r.Bits()[i]}), nil
}

// GetByte returns bits [i*8, min((i+1)*8, BitLength(r))). Contract:
// 0 <= i < ByteLength(r).
func GetByte(r *Region, i int) (*Region, error) {
	if err := mtypes.Ensure(i >= 0 && i < r.ByteLength(),
		"get_byte: index %d out of range [0, %d)", i, r.ByteLength()); err != nil {
		return nil, err
	}
	start := i * 8
	stop := start + 8
	if stop > r.BitLength() {
		stop = r.BitLength()
	}
	return GetBits(r, start, stop)
}

// GetBits returns the half-open bit range [start, stop). Contract:
// 0 <= start <= stop <= BitLength(r).
func GetBits(r *Region, start, stop int) (*Region, error) {
	n := r.BitLength()
	if err := mtypes.Ensure(start >= 0 && start <= stop && stop <= n,
		"get_bits: range [%d, %d) invalid for bit_length %d", start, stop, n); err != nil {
		return nil, err
	}
	return FromBits(append([]int(nil), r.Bits()[start:stop]...)), nil
}

// GetBytes returns the half-open byte range [start, stop), equivalent to
// GetBits(r, start*8, stop*8) clamped to BitLength(r). Contract:
// 0 <= start <= stop <= ByteLength(r).
func GetBytes(r *Region, start, stop int) (*Region, error) {
	bl := r.ByteLength()
	if err := mtypes.Ensure(start >= 0 && start <= stop && stop <= bl,
		"get_bytes: range [%d, %d) invalid for byte_length %d", start, stop, bl); err != nil {
		return nil, err
	}
	lo := start * 8
	hi := stop * 8
	if hi > r.BitLength() {
		hi = r.BitLength()
	}
	if lo > hi {
		lo = hi
	}
	return GetBits(r, lo, hi)
}

// SetBit replaces the bit at off with payload's single bit. Contract:
// payload.BitLength() == 1, 0 <= off < BitLength(r).
func SetBit(r *Region, off int, payload *Region) (*Region, error) {
	if err := mtypes.Ensure(payload.BitLength() == 1,
		"set_bit: payload must have bit_length 1, got %d", payload.BitLength()); err != nil {
		return nil, err
	}
	if err := mtypes.Ensure(off >= 0 && off < r.BitLength(),
		"set_bit: offset %d out of range [0, %d)", off, r.BitLength()); err != nil {
		return nil, err
	}
	bits := r.Bits()
	bits[off] = payload.Bits()[0]
	return FromBits(bits), nil
}

// SetBits writes payload's bits into positions [off, off+payload.BitLength()).
// Contract: 0 <= off, off + payload.BitLength() <= BitLength(r).
func SetBits(r *Region, off int, payload *Region) (*Region, error) {
	pn := payload.BitLength()
	if err := mtypes.Ensure(off >= 0 && off+pn <= r.BitLength(),
		"set_bits: range [%d, %d) invalid for bit_length %d", off, off+pn, r.BitLength()); err != nil {
		return nil, err
	}
	bits := r.Bits()
	pbits := payload.Bits()
	copy(bits[off:off+pn], pbits)
	return FromBits(bits), nil
}

// SetByte writes payload (<= 8 bits) at byte offset i. Defers to SetBits
// at off*8.
func SetByte(r *Region, i int, payload *Region) (*Region, error) {
	if err := mtypes.Ensure(payload.BitLength() <= 8,
		"set_byte: payload must be <= 8 bits, got %d", payload.BitLength()); err != nil {
		return nil, err
	}
	return SetBits(r, i*8, payload)
}

// SetBytes writes a multiple-of-8 payload at byte offset i. Defers to
// SetBits at off*8.
func SetBytes(r *Region, i int, payload *Region) (*Region, error) {
	if err := mtypes.Ensure(payload.BitLength()%8 == 0,
		"set_bytes: payload bit_length must be a multiple of 8, got %d", payload.BitLength()); err != nil {
		return nil, err
	}
	return SetBits(r, i*8, payload)
}

// Truncate discards bits at positions >= n. Contract: n <= BitLength(r).
// n == 0 yields the null region.
func Truncate(r *Region, n int) (*Region, error) {
	if err := mtypes.Ensure(n >= 0 && n <= r.BitLength(),
		"truncate: length %d exceeds bit_length %d", n, r.BitLength()); err != nil {
		return nil, err
	}
	return FromBits(r.Bits()[:n]), nil
}

// Extend appends amount copies of fill's single bit on the right.
// Contract: fill.BitLength() == 1.
func Extend(r *Region, amount int, fill *Region) (*Region, error) {
	if err := mtypes.Ensure(fill.BitLength() == 1,
		"extend: fill must have bit_length 1, got %d", fill.BitLength()); err != nil {
		return nil, err
	}
	if err := mtypes.Ensure(amount >= 0, "extend: amount must be non-negative, got %d", amount); err != nil {
		return nil, err
	}
	bitValue := fill.Bits()[0]
	out := append([]int(nil), r.Bits()...)
	for i := 0; i < amount; i++ {
		out = append(out, bitValue)
	}
	return FromBits(out), nil
}

// zeroBit is a reusable 1-bit region holding value 0, used by
// EnsureBitLength/EnsureByteLength to pad with zero per spec.md §4.1.
func zeroBit() *Region { return FromBits([]int{0}) }

// EnsureBitLength extends r with zero bits if BitLength(r) < n, truncates
// if BitLength(r) > n, or returns r unchanged if equal.
func EnsureBitLength(r *Region, n int) (*Region, error) {
	switch {
	case r.BitLength() < n:
		return Extend(r, n-r.BitLength(), zeroBit())
	case r.BitLength() > n:
		return Truncate(r, n)
	default:
		return r.Clone(), nil
	}
}

// EnsureByteLength is EnsureBitLength(r, n*8).
func EnsureByteLength(r *Region, n int) (*Region, error) {
	return EnsureBitLength(r, n*8)
}

// Concatenate returns the logical sequence left ++ right, repacked into
// canonical groups.
func Concatenate(left, right *Region) (*Region, error) {
	out := append([]int(nil), left.Bits()...)
	out = append(out, right.Bits()...)
	return FromBits(out), nil
}
