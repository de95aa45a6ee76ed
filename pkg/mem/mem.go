package mem

import (
	"github.com/tidbytes/tidbytes/pkg/mtypes"
	"github.com/tidbytes/tidbytes/pkg/order"
	"github.com/tidbytes/tidbytes/pkg/region"
)

// Mem is the natural-interpretation facade: construction treats its
// initializer as raw memory rather than a numeric value (spec.md §4.3).
type Mem struct {
	rgn *region.Region
	n   *int
}

// New builds a Mem from input per the dispatch table of spec.md §4.3,
// then normalizes from (inBitOrder, inByteOrder) into the canonical
// universe. Most callers in the canonical universe should pass
// order.L2R, order.L2R.
func New(input any, n *int, inBitOrder, inByteOrder order.Order) (*Mem, error) {
	rgn, err := dispatch(input, n, memKind)
	if err != nil {
		return nil, err
	}
	return &Mem{rgn: region.Transform(rgn, inBitOrder, inByteOrder), n: n}, nil
}

// Of is New with the canonical (L2R, L2R) input universe, the common case.
func Of(input any, n *int) (*Mem, error) {
	return New(input, n, order.L2R, order.L2R)
}

// Region exposes the underlying canonical region for callers who want the
// free-function style of spec.md §6 directly.
func (m *Mem) Region() *region.Region { return m.rgn }

// BitLength returns the facade's logical bit length.
func (m *Mem) BitLength() int { return m.rgn.BitLength() }

// ByteLength returns the facade's logical byte length.
func (m *Mem) ByteLength() int { return m.rgn.ByteLength() }

func (m *Mem) wrap(r *region.Region) *Mem { return &Mem{rgn: r, n: m.n} }

// Transform applies region.Transform and wraps the result back into Mem.
func (m *Mem) Transform(bitOrder, byteOrder order.Order) *Mem {
	return m.wrap(region.Transform(m.rgn, bitOrder, byteOrder))
}

// Identity returns a copy of m.
func (m *Mem) Identity() *Mem { return m.wrap(region.Identity(m.rgn)) }

// Reverse reverses both bit and byte order.
func (m *Mem) Reverse() *Mem { return m.wrap(region.Reverse(m.rgn)) }

// ReverseBits reverses bit order within each group only.
func (m *Mem) ReverseBits() *Mem { return m.wrap(region.ReverseBits(m.rgn)) }

// ReverseBytes reverses group order only.
func (m *Mem) ReverseBytes() *Mem { return m.wrap(region.ReverseBytes(m.rgn)) }

// GetBit returns the 1-bit value at index i.
func (m *Mem) GetBit(i int) (*Mem, error) {
	r, err := region.GetBit(m.rgn, i)
	if err != nil {
		return nil, err
	}
	return m.wrap(r), nil
}

// GetByte returns the byte-aligned slice at index i.
func (m *Mem) GetByte(i int) (*Mem, error) {
	r, err := region.GetByte(m.rgn, i)
	if err != nil {
		return nil, err
	}
	return m.wrap(r), nil
}

// GetBits returns the half-open bit range [start, stop).
func (m *Mem) GetBits(start, stop int) (*Mem, error) {
	r, err := region.GetBits(m.rgn, start, stop)
	if err != nil {
		return nil, err
	}
	return m.wrap(r), nil
}

// GetBytes returns the half-open byte range [start, stop).
func (m *Mem) GetBytes(start, stop int) (*Mem, error) {
	r, err := region.GetBytes(m.rgn, start, stop)
	if err != nil {
		return nil, err
	}
	return m.wrap(r), nil
}

// SetBit replaces the bit at off with payload's single bit.
func (m *Mem) SetBit(off int, payload *Mem) (*Mem, error) {
	r, err := region.SetBit(m.rgn, off, payload.rgn)
	if err != nil {
		return nil, err
	}
	return m.wrap(r), nil
}

// SetBits writes payload's bits starting at off.
func (m *Mem) SetBits(off int, payload *Mem) (*Mem, error) {
	r, err := region.SetBits(m.rgn, off, payload.rgn)
	if err != nil {
		return nil, err
	}
	return m.wrap(r), nil
}

// SetByte writes payload (<= 8 bits) at byte offset i.
func (m *Mem) SetByte(i int, payload *Mem) (*Mem, error) {
	r, err := region.SetByte(m.rgn, i, payload.rgn)
	if err != nil {
		return nil, err
	}
	return m.wrap(r), nil
}

// SetBytes writes a multiple-of-8 payload at byte offset i.
func (m *Mem) SetBytes(i int, payload *Mem) (*Mem, error) {
	r, err := region.SetBytes(m.rgn, i, payload.rgn)
	if err != nil {
		return nil, err
	}
	return m.wrap(r), nil
}

// Truncate discards bits at positions >= n.
func (m *Mem) Truncate(n int) (*Mem, error) {
	r, err := region.Truncate(m.rgn, n)
	if err != nil {
		return nil, err
	}
	return m.wrap(r), nil
}

// Extend appends amount copies of fill's single bit on the right.
func (m *Mem) Extend(amount int, fill *Mem) (*Mem, error) {
	r, err := region.Extend(m.rgn, amount, fill.rgn)
	if err != nil {
		return nil, err
	}
	return m.wrap(r), nil
}

// EnsureBitLength pads or truncates to exactly n bits.
func (m *Mem) EnsureBitLength(n int) (*Mem, error) {
	r, err := region.EnsureBitLength(m.rgn, n)
	if err != nil {
		return nil, err
	}
	return m.wrap(r), nil
}

// EnsureByteLength pads or truncates to exactly n bytes.
func (m *Mem) EnsureByteLength(n int) (*Mem, error) {
	r, err := region.EnsureByteLength(m.rgn, n)
	if err != nil {
		return nil, err
	}
	return m.wrap(r), nil
}

// Concatenate returns m ++ other.
func (m *Mem) Concatenate(other *Mem) (*Mem, error) {
	r, err := region.Concatenate(m.rgn, other.rgn)
	if err != nil {
		return nil, err
	}
	return m.wrap(r), nil
}

// Index implements single-integer indexing: a 1-bit region (spec.md §4.3).
func (m *Mem) Index(i int) (*Mem, error) { return m.GetBit(i) }

// Slice implements facade slicing with step in {1, 8}: step 1 returns a
// bit-slice and start/stop are bit positions, step 8 returns a byte-slice
// and start/stop are themselves byte indices passed straight through to
// GetBytes (confirmed against the original source's
// test_mem__getitem__, e.g. Slice[1::8] on a 2-byte region selects the
// second byte, not the byte at bit position 1). Any other step is
// InvalidIndex.
func (m *Mem) Slice(start, stop, step int) (*Mem, error) {
	switch step {
	case 1:
		return m.GetBits(start, stop)
	case 8:
		return m.GetBytes(start, stop)
	default:
		return nil, mtypes.NewError(mtypes.InvalidIndex,
			"slice step must be 1 or 8, got %d", step)
	}
}

// Equal reports bitwise equality (including ⊥ padding) between two Mem
// values of the same facade type.
func (m *Mem) Equal(other *Mem) bool {
	return m.rgn.Equal(other.rgn)
}

// EqualAny compares m against any facade value, raising UnlikeCompare if
// other is not also a *Mem (spec.md §4.3's cross-type equality rule).
func (m *Mem) EqualAny(other any) (bool, error) {
	o, ok := other.(*Mem)
	if !ok {
		return false, mtypes.NewError(mtypes.UnlikeCompare,
			"cannot compare Mem against %T", other)
	}
	return m.Equal(o), nil
}
