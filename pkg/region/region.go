// Package region implements the canonical memory-region data model and the
// algebra of natural operations over it (transform, metadata, get/set,
// truncate/extend/ensure-length, concatenate). A Region is a finite
// sequence of 8-slot groups, each slot holding a bit or the ⊥ ("unused")
// marker; ⊥ slots always form a contiguous trailing run for a canonically
// constructed region.
//
// Representation: a Region is stored as two parallel []byte slices, data
// and mask, one entry per group. Bit i (0 = most significant, left) of
// data[g] holds slot i's value; the same bit of mask[g] is 1 when that
// slot holds a real 0/1 and 0 when it is ⊥. This lets Transform physically
// relocate ⊥ markers (see reverse_bits/reverse_bytes on partial-byte
// regions, documented in DESIGN.md); Bits() scans every slot rather than
// assuming the first BitLength() positions are the meaningful ones, so
// every other operation reads out the right value and repacks its result
// canonically regardless of where a prior Transform left the ⊥ markers.
package region

import (
	"math/bits"

	"github.com/tidbytes/tidbytes/pkg/mtypes"
)

// Region is the canonical backing store for a sequence of bits.
type Region struct {
	data []byte
	mask []byte
}

// Null returns the canonical empty region: zero groups, bit_length 0.
func Null() *Region {
	return &Region{}
}

// numGroups returns the number of 8-slot groups (bytes) backing r.
func (r *Region) numGroups() int {
	return len(r.data)
}

// BitLength returns the count of non-⊥ slots in r.
func (r *Region) BitLength() int {
	n := 0
	for _, m := range r.mask {
		n += bits.OnesCount8(m)
	}
	return n
}

// ByteLength returns the number of groups backing r (spec.md §3.1).
func (r *Region) ByteLength() int {
	return r.numGroups()
}

// Validate checks the Region invariants of spec.md §3.1: every group has
// 8 slots and slot values in {0,1,⊥} hold by construction; this checks the
// two invariants that do not — ⊥ slots form a trailing contiguous run, and
// the null region has zero groups, never a group of all ⊥.
func (r *Region) Validate() error {
	total := r.numGroups() * 8
	seenBottom := false
	for i := 0; i < total; i++ {
		present := getBit(r.mask, i) == 1
		if seenBottom && present {
			return mtypes.NewError(mtypes.Invariant,
				"region: non-bottom slot at position %d follows a bottom slot", i)
		}
		if !present {
			seenBottom = true
		}
	}
	if r.BitLength() == 0 && r.numGroups() != 0 {
		return mtypes.NewError(mtypes.Invariant,
			"region: null region must have zero groups, got %d", r.numGroups())
	}
	return nil
}

// Equal reports whether two regions are bitwise identical, including
// padding (⊥) slots — i.e. both the data and validity bytes match exactly.
func (r *Region) Equal(o *Region) bool {
	if r.numGroups() != o.numGroups() {
		return false
	}
	for g := range r.data {
		if r.data[g] != o.data[g] || r.mask[g] != o.mask[g] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of r.
func (r *Region) Clone() *Region {
	return &Region{
		data: append([]byte(nil), r.data...),
		mask: append([]byte(nil), r.mask...),
	}
}

// Bits returns the 0/1 values of every non-⊥ slot, in left-to-right scan
// order. For a canonically constructed region this is exactly the first
// BitLength() slots, but it is defined by scanning every slot rather than
// assuming that layout: a region fresh out of Transform can carry its
// ⊥ slots anywhere (see DESIGN.md's documented partial-byte deviation),
// and this is what lets every other operation treat such a region
// correctly without first repacking it.
func (r *Region) Bits() []int {
	total := r.numGroups() * 8
	out := make([]int, 0, r.BitLength())
	for i := 0; i < total; i++ {
		if getBit(r.mask, i) == 1 {
			out = append(out, getBit(r.data, i))
		}
	}
	return out
}

// FromBits packs a flat sequence of 0/1 values into a new canonical
// region: groups are filled left to right, the last group's unused slots
// are ⊥.
func FromBits(bitValues []int) *Region {
	n := len(bitValues)
	if n == 0 {
		return Null()
	}
	groups := (n + 7) / 8
	data := make([]byte, groups)
	mask := make([]byte, groups)
	for i, v := range bitValues {
		if v != 0 {
			setBit(data, i, 1)
		}
		setBit(mask, i, 1)
	}
	return &Region{data: data, mask: mask}
}

// FromGroups packs a sequence of groups, each at most 8 bits, into a new
// region: each sub-sequence becomes exactly one group, padded on the right
// with ⊥ if shorter than 8 slots. Used by the grouped-bit-list codec
// (spec.md §4.2.5), where group boundaries are caller-specified rather
// than a single contiguous flattening.
func FromGroups(groups [][]int) *Region {
	if len(groups) == 0 {
		return Null()
	}
	data := make([]byte, len(groups))
	mask := make([]byte, len(groups))
	for g, group := range groups {
		for s, v := range group {
			if v != 0 {
				data[g] |= 1 << (7 - s)
			}
			mask[g] |= 1 << (7 - s)
		}
	}
	return &Region{data: data, mask: mask}
}

// FromBitLength returns an all-zero canonical region of exactly n bits.
// Ported from the original source's Mem.from_bit_length.
func FromBitLength(n int) *Region {
	if n <= 0 {
		return Null()
	}
	return FromBits(make([]int, n))
}

// getBit reads the flattened slot at position i (group i/8, slot i%8,
// slot 0 = most significant bit of the group's byte) from a data/mask
// plane.
func getBit(plane []byte, i int) int {
	g, s := i/8, i%8
	return int((plane[g] >> (7 - s)) & 1)
}

// setBit sets the flattened slot at position i of the given plane to 1
// when v is non-zero, and clears it to 0 otherwise.
func setBit(plane []byte, i int, v int) {
	g, s := i/8, i%8
	if v != 0 {
		plane[g] |= 1 << (7 - s)
	} else {
		plane[g] &^= 1 << (7 - s)
	}
}
