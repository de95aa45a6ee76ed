package mem

import (
	"math/big"

	"github.com/tidbytes/tidbytes/pkg/codec"
	"github.com/tidbytes/tidbytes/pkg/mtypes"
	"github.com/tidbytes/tidbytes/pkg/order"
	"github.com/tidbytes/tidbytes/pkg/region"
)

// Signed is the numeric-signed-interpretation facade (spec.md §4.3):
// construction treats its initializer as a two's-complement signed
// integer value, LSB on the right.
type Signed struct {
	rgn *region.Region
	n   *int
}

// NewSigned builds a Signed per the dispatch table of spec.md §4.3, then
// normalizes from (inBitOrder, inByteOrder) into the canonical universe.
func NewSigned(input any, n *int, inBitOrder, inByteOrder order.Order) (*Signed, error) {
	rgn, err := dispatch(input, n, signedKind)
	if err != nil {
		return nil, err
	}
	return &Signed{rgn: region.Transform(rgn, inBitOrder, inByteOrder), n: n}, nil
}

// SignedOf is NewSigned with the canonical (L2R, L2R) input universe.
func SignedOf(input any, n *int) (*Signed, error) {
	return NewSigned(input, n, order.L2R, order.L2R)
}

// Region exposes the underlying canonical region.
func (s *Signed) Region() *region.Region { return s.rgn }

// BitLength returns the facade's logical bit length.
func (s *Signed) BitLength() int { return s.rgn.BitLength() }

// ByteLength returns the facade's logical byte length.
func (s *Signed) ByteLength() int { return s.rgn.ByteLength() }

func (s *Signed) wrap(r *region.Region) *Signed { return &Signed{rgn: r, n: s.n} }

// effectiveWidth is the bit width arithmetic results are re-encoded at.
func (s *Signed) effectiveWidth() int {
	if s.n != nil {
		return *s.n
	}
	return s.rgn.BitLength()
}

// Transform applies region.Transform and wraps the result back into Signed.
func (s *Signed) Transform(bitOrder, byteOrder order.Order) *Signed {
	return s.wrap(region.Transform(s.rgn, bitOrder, byteOrder))
}

// Identity returns a copy of s.
func (s *Signed) Identity() *Signed { return s.wrap(region.Identity(s.rgn)) }

// Reverse reverses both bit and byte order.
func (s *Signed) Reverse() *Signed { return s.wrap(region.Reverse(s.rgn)) }

// ReverseBits reverses bit order within each group only.
func (s *Signed) ReverseBits() *Signed { return s.wrap(region.ReverseBits(s.rgn)) }

// ReverseBytes reverses group order only.
func (s *Signed) ReverseBytes() *Signed { return s.wrap(region.ReverseBytes(s.rgn)) }

// GetBit returns the 1-bit value at index i.
func (s *Signed) GetBit(i int) (*Signed, error) {
	r, err := region.GetBit(s.rgn, i)
	if err != nil {
		return nil, err
	}
	return s.wrap(r), nil
}

// GetByte returns the byte-aligned slice at index i.
func (s *Signed) GetByte(i int) (*Signed, error) {
	r, err := region.GetByte(s.rgn, i)
	if err != nil {
		return nil, err
	}
	return s.wrap(r), nil
}

// GetBits returns the half-open bit range [start, stop).
func (s *Signed) GetBits(start, stop int) (*Signed, error) {
	r, err := region.GetBits(s.rgn, start, stop)
	if err != nil {
		return nil, err
	}
	return s.wrap(r), nil
}

// GetBytes returns the half-open byte range [start, stop).
func (s *Signed) GetBytes(start, stop int) (*Signed, error) {
	r, err := region.GetBytes(s.rgn, start, stop)
	if err != nil {
		return nil, err
	}
	return s.wrap(r), nil
}

// SetBit replaces the bit at off with payload's single bit.
func (s *Signed) SetBit(off int, payload *Signed) (*Signed, error) {
	r, err := region.SetBit(s.rgn, off, payload.rgn)
	if err != nil {
		return nil, err
	}
	return s.wrap(r), nil
}

// SetBits writes payload's bits starting at off.
func (s *Signed) SetBits(off int, payload *Signed) (*Signed, error) {
	r, err := region.SetBits(s.rgn, off, payload.rgn)
	if err != nil {
		return nil, err
	}
	return s.wrap(r), nil
}

// SetByte writes payload (<= 8 bits) at byte offset i.
func (s *Signed) SetByte(i int, payload *Signed) (*Signed, error) {
	r, err := region.SetByte(s.rgn, i, payload.rgn)
	if err != nil {
		return nil, err
	}
	return s.wrap(r), nil
}

// SetBytes writes a multiple-of-8 payload at byte offset i.
func (s *Signed) SetBytes(i int, payload *Signed) (*Signed, error) {
	r, err := region.SetBytes(s.rgn, i, payload.rgn)
	if err != nil {
		return nil, err
	}
	return s.wrap(r), nil
}

// Truncate discards bits at positions >= n.
func (s *Signed) Truncate(n int) (*Signed, error) {
	r, err := region.Truncate(s.rgn, n)
	if err != nil {
		return nil, err
	}
	return s.wrap(r), nil
}

// Extend appends amount copies of fill's single bit on the right.
func (s *Signed) Extend(amount int, fill *Signed) (*Signed, error) {
	r, err := region.Extend(s.rgn, amount, fill.rgn)
	if err != nil {
		return nil, err
	}
	return s.wrap(r), nil
}

// EnsureBitLength pads or truncates to exactly n bits.
func (s *Signed) EnsureBitLength(n int) (*Signed, error) {
	r, err := region.EnsureBitLength(s.rgn, n)
	if err != nil {
		return nil, err
	}
	return s.wrap(r), nil
}

// EnsureByteLength pads or truncates to exactly n bytes.
func (s *Signed) EnsureByteLength(n int) (*Signed, error) {
	r, err := region.EnsureByteLength(s.rgn, n)
	if err != nil {
		return nil, err
	}
	return s.wrap(r), nil
}

// Concatenate returns s ++ other.
func (s *Signed) Concatenate(other *Signed) (*Signed, error) {
	r, err := region.Concatenate(s.rgn, other.rgn)
	if err != nil {
		return nil, err
	}
	return s.wrap(r), nil
}

// Index implements single-integer indexing.
func (s *Signed) Index(i int) (*Signed, error) { return s.GetBit(i) }

// Slice implements facade slicing with step in {1, 8}: step 1 treats
// start/stop as bit positions, step 8 treats them as byte indices passed
// straight through to GetBytes (see Mem.Slice).
func (s *Signed) Slice(start, stop, step int) (*Signed, error) {
	switch step {
	case 1:
		return s.GetBits(start, stop)
	case 8:
		return s.GetBytes(start, stop)
	default:
		return nil, mtypes.NewError(mtypes.InvalidIndex,
			"slice step must be 1 or 8, got %d", step)
	}
}

// Equal reports bitwise equality (including ⊥ padding).
func (s *Signed) Equal(other *Signed) bool { return s.rgn.Equal(other.rgn) }

// EqualAny raises UnlikeCompare when other is not also a *Signed.
func (s *Signed) EqualAny(other any) (bool, error) {
	o, ok := other.(*Signed)
	if !ok {
		return false, mtypes.NewError(mtypes.UnlikeCompare,
			"cannot compare Signed against %T", other)
	}
	return s.Equal(o), nil
}

// Int decodes s's numeric value as a signed *big.Int.
func (s *Signed) Int() *big.Int { return codec.IntoNumericBigIntegerSigned(s.rgn) }

// Add returns s + other, re-encoded at s's effective width. Overflow of
// the two's-complement range raises MemError::OutOfRange.
func (s *Signed) Add(other *Signed) (*Signed, error) {
	return s.arith(other, new(big.Int).Add)
}

// Sub returns s - other, re-encoded at s's effective width.
func (s *Signed) Sub(other *Signed) (*Signed, error) {
	return s.arith(other, new(big.Int).Sub)
}

// Mul returns s * other, re-encoded at s's effective width.
func (s *Signed) Mul(other *Signed) (*Signed, error) {
	return s.arith(other, new(big.Int).Mul)
}

// Div returns the truncated quotient s / other, re-encoded at s's
// effective width. Division by zero raises MemError::Invariant.
func (s *Signed) Div(other *Signed) (*Signed, error) {
	b := other.Int()
	if b.Sign() == 0 {
		return nil, mtypes.NewError(mtypes.Invariant, "division by zero")
	}
	return s.arith(other, new(big.Int).Quo)
}

func (s *Signed) arith(other *Signed, op func(x, y *big.Int) *big.Int) (*Signed, error) {
	result := op(s.Int(), other.Int())
	r, err := codec.FromNumericBigIntegerSigned(result, s.effectiveWidth())
	if err != nil {
		return nil, err
	}
	return &Signed{rgn: r, n: s.n}, nil
}
