package mem

import (
	"math/big"

	"github.com/tidbytes/tidbytes/pkg/codec"
	"github.com/tidbytes/tidbytes/pkg/mtypes"
	"github.com/tidbytes/tidbytes/pkg/order"
	"github.com/tidbytes/tidbytes/pkg/region"
)

// Unsigned is the numeric-unsigned-interpretation facade (spec.md §4.3):
// construction treats its initializer as an unsigned integer value, LSB
// on the right.
type Unsigned struct {
	rgn *region.Region
	n   *int
}

// NewUnsigned builds an Unsigned per the dispatch table of spec.md §4.3,
// then normalizes from (inBitOrder, inByteOrder) into the canonical
// universe.
func NewUnsigned(input any, n *int, inBitOrder, inByteOrder order.Order) (*Unsigned, error) {
	rgn, err := dispatch(input, n, unsignedKind)
	if err != nil {
		return nil, err
	}
	return &Unsigned{rgn: region.Transform(rgn, inBitOrder, inByteOrder), n: n}, nil
}

// UnsignedOf is NewUnsigned with the canonical (L2R, L2R) input universe.
func UnsignedOf(input any, n *int) (*Unsigned, error) {
	return NewUnsigned(input, n, order.L2R, order.L2R)
}

// Region exposes the underlying canonical region.
func (u *Unsigned) Region() *region.Region { return u.rgn }

// BitLength returns the facade's logical bit length.
func (u *Unsigned) BitLength() int { return u.rgn.BitLength() }

// ByteLength returns the facade's logical byte length.
func (u *Unsigned) ByteLength() int { return u.rgn.ByteLength() }

func (u *Unsigned) wrap(r *region.Region) *Unsigned { return &Unsigned{rgn: r, n: u.n} }

// effectiveWidth is the bit width arithmetic results are re-encoded at:
// the width requested at construction, or the region's current width
// when no explicit N was given.
func (u *Unsigned) effectiveWidth() int {
	if u.n != nil {
		return *u.n
	}
	return u.rgn.BitLength()
}

// Transform applies region.Transform and wraps the result back into Unsigned.
func (u *Unsigned) Transform(bitOrder, byteOrder order.Order) *Unsigned {
	return u.wrap(region.Transform(u.rgn, bitOrder, byteOrder))
}

// Identity returns a copy of u.
func (u *Unsigned) Identity() *Unsigned { return u.wrap(region.Identity(u.rgn)) }

// Reverse reverses both bit and byte order.
func (u *Unsigned) Reverse() *Unsigned { return u.wrap(region.Reverse(u.rgn)) }

// ReverseBits reverses bit order within each group only.
func (u *Unsigned) ReverseBits() *Unsigned { return u.wrap(region.ReverseBits(u.rgn)) }

// ReverseBytes reverses group order only.
func (u *Unsigned) ReverseBytes() *Unsigned { return u.wrap(region.ReverseBytes(u.rgn)) }

// GetBit returns the 1-bit value at index i.
func (u *Unsigned) GetBit(i int) (*Unsigned, error) {
	r, err := region.GetBit(u.rgn, i)
	if err != nil {
		return nil, err
	}
	return u.wrap(r), nil
}

// GetByte returns the byte-aligned slice at index i.
func (u *Unsigned) GetByte(i int) (*Unsigned, error) {
	r, err := region.GetByte(u.rgn, i)
	if err != nil {
		return nil, err
	}
	return u.wrap(r), nil
}

// GetBits returns the half-open bit range [start, stop).
func (u *Unsigned) GetBits(start, stop int) (*Unsigned, error) {
	r, err := region.GetBits(u.rgn, start, stop)
	if err != nil {
		return nil, err
	}
	return u.wrap(r), nil
}

// GetBytes returns the half-open byte range [start, stop).
func (u *Unsigned) GetBytes(start, stop int) (*Unsigned, error) {
	r, err := region.GetBytes(u.rgn, start, stop)
	if err != nil {
		return nil, err
	}
	return u.wrap(r), nil
}

// SetBit replaces the bit at off with payload's single bit.
func (u *Unsigned) SetBit(off int, payload *Unsigned) (*Unsigned, error) {
	r, err := region.SetBit(u.rgn, off, payload.rgn)
	if err != nil {
		return nil, err
	}
	return u.wrap(r), nil
}

// SetBits writes payload's bits starting at off.
func (u *Unsigned) SetBits(off int, payload *Unsigned) (*Unsigned, error) {
	r, err := region.SetBits(u.rgn, off, payload.rgn)
	if err != nil {
		return nil, err
	}
	return u.wrap(r), nil
}

// SetByte writes payload (<= 8 bits) at byte offset i.
func (u *Unsigned) SetByte(i int, payload *Unsigned) (*Unsigned, error) {
	r, err := region.SetByte(u.rgn, i, payload.rgn)
	if err != nil {
		return nil, err
	}
	return u.wrap(r), nil
}

// SetBytes writes a multiple-of-8 payload at byte offset i.
func (u *Unsigned) SetBytes(i int, payload *Unsigned) (*Unsigned, error) {
	r, err := region.SetBytes(u.rgn, i, payload.rgn)
	if err != nil {
		return nil, err
	}
	return u.wrap(r), nil
}

// Truncate discards bits at positions >= n.
func (u *Unsigned) Truncate(n int) (*Unsigned, error) {
	r, err := region.Truncate(u.rgn, n)
	if err != nil {
		return nil, err
	}
	return u.wrap(r), nil
}

// Extend appends amount copies of fill's single bit on the right.
func (u *Unsigned) Extend(amount int, fill *Unsigned) (*Unsigned, error) {
	r, err := region.Extend(u.rgn, amount, fill.rgn)
	if err != nil {
		return nil, err
	}
	return u.wrap(r), nil
}

// EnsureBitLength pads or truncates to exactly n bits.
func (u *Unsigned) EnsureBitLength(n int) (*Unsigned, error) {
	r, err := region.EnsureBitLength(u.rgn, n)
	if err != nil {
		return nil, err
	}
	return u.wrap(r), nil
}

// EnsureByteLength pads or truncates to exactly n bytes.
func (u *Unsigned) EnsureByteLength(n int) (*Unsigned, error) {
	r, err := region.EnsureByteLength(u.rgn, n)
	if err != nil {
		return nil, err
	}
	return u.wrap(r), nil
}

// Concatenate returns u ++ other.
func (u *Unsigned) Concatenate(other *Unsigned) (*Unsigned, error) {
	r, err := region.Concatenate(u.rgn, other.rgn)
	if err != nil {
		return nil, err
	}
	return u.wrap(r), nil
}

// Index implements single-integer indexing.
func (u *Unsigned) Index(i int) (*Unsigned, error) { return u.GetBit(i) }

// Slice implements facade slicing with step in {1, 8}: step 1 treats
// start/stop as bit positions, step 8 treats them as byte indices passed
// straight through to GetBytes (see Mem.Slice).
func (u *Unsigned) Slice(start, stop, step int) (*Unsigned, error) {
	switch step {
	case 1:
		return u.GetBits(start, stop)
	case 8:
		return u.GetBytes(start, stop)
	default:
		return nil, mtypes.NewError(mtypes.InvalidIndex,
			"slice step must be 1 or 8, got %d", step)
	}
}

// Equal reports bitwise equality (including ⊥ padding).
func (u *Unsigned) Equal(other *Unsigned) bool { return u.rgn.Equal(other.rgn) }

// EqualAny raises UnlikeCompare when other is not also an *Unsigned.
func (u *Unsigned) EqualAny(other any) (bool, error) {
	o, ok := other.(*Unsigned)
	if !ok {
		return false, mtypes.NewError(mtypes.UnlikeCompare,
			"cannot compare Unsigned against %T", other)
	}
	return u.Equal(o), nil
}

// Int decodes u's numeric value as an unsigned *big.Int.
func (u *Unsigned) Int() *big.Int { return codec.IntoNumericBigIntegerUnsigned(u.rgn) }

// Add returns u + other, re-encoded at u's effective width. Overflow
// raises MemError::OutOfRange (spec.md §4.3).
func (u *Unsigned) Add(other *Unsigned) (*Unsigned, error) {
	return u.arith(other, new(big.Int).Add)
}

// Sub returns u - other, re-encoded at u's effective width.
func (u *Unsigned) Sub(other *Unsigned) (*Unsigned, error) {
	return u.arith(other, new(big.Int).Sub)
}

// Mul returns u * other, re-encoded at u's effective width.
func (u *Unsigned) Mul(other *Unsigned) (*Unsigned, error) {
	return u.arith(other, new(big.Int).Mul)
}

// Div returns the truncated quotient u / other, re-encoded at u's
// effective width. Division by zero raises MemError::Invariant.
func (u *Unsigned) Div(other *Unsigned) (*Unsigned, error) {
	b := other.Int()
	if b.Sign() == 0 {
		return nil, mtypes.NewError(mtypes.Invariant, "division by zero")
	}
	return u.arith(other, new(big.Int).Div)
}

func (u *Unsigned) arith(other *Unsigned, op func(x, y *big.Int) *big.Int) (*Unsigned, error) {
	result := op(u.Int(), other.Int())
	r, err := codec.FromNumericBigIntegerUnsigned(result, u.effectiveWidth())
	if err != nil {
		return nil, err
	}
	return &Unsigned{rgn: r, n: u.n}, nil
}
