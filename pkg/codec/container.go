package codec

import (
	"github.com/tidbytes/tidbytes/pkg/mtypes"
	"github.com/tidbytes/tidbytes/pkg/region"
)

// FromBytes packs a byte sequence with each byte read as a numeric u8
// (spec.md §4.2.4): a byte's most significant bit lands in slot 0 of its
// group, and groups follow the input order.
func FromBytes(b []byte) *region.Region {
	bitValues := make([]int, 0, len(b)*8)
	for _, v := range b {
		for s := 7; s >= 0; s-- {
			bitValues = append(bitValues, int((v>>uint(s))&1))
		}
	}
	return region.FromBits(bitValues)
}

// IntoBytes is the inverse of FromBytes: each run of 8 logical bits
// becomes one output byte, its first bit the byte's most significant
// bit. Contract: r.BitLength() is a multiple of 8.
func IntoBytes(r *region.Region) ([]byte, error) {
	if err := mtypes.Ensure(r.BitLength()%8 == 0,
		"into_bytes: bit_length %d is not a multiple of 8", r.BitLength()); err != nil {
		return nil, err
	}
	bitValues := r.Bits()
	out := make([]byte, len(bitValues)/8)
	for i, v := range bitValues {
		if v != 0 {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out, nil
}

// FromBitList packs a flat slice of 0/1 values as a natural region
// (spec.md §4.2.4). Any value other than 0 or 1 is an Invariant error.
func FromBitList(bitValues []int) (*region.Region, error) {
	for i, v := range bitValues {
		if err := mtypes.Ensure(v == 0 || v == 1,
			"from_bit_list: value at index %d must be 0 or 1, got %d", i, v); err != nil {
			return nil, err
		}
	}
	return region.FromBits(bitValues), nil
}

// FromGroupedBits packs a sequence of caller-delimited groups (each at
// most 8 slots) as a natural region (spec.md §4.2.5): group boundaries
// are preserved rather than re-flattened, so a short final group pads
// with ⊥ instead of merging into the next group.
func FromGroupedBits(groups [][]int) (*region.Region, error) {
	for gi, group := range groups {
		if err := mtypes.Ensure(len(group) <= 8,
			"from_grouped_bits: group %d has %d slots, max is 8", gi, len(group)); err != nil {
			return nil, err
		}
		for i, v := range group {
			if err := mtypes.Ensure(v == 0 || v == 1,
				"from_grouped_bits: group %d value at index %d must be 0 or 1, got %d", gi, i, v); err != nil {
				return nil, err
			}
		}
	}
	return region.FromGroups(groups), nil
}

// FromBool packs a single boolean as a 1-bit natural region (spec.md
// §4.2.6): true -> 1, false -> 0.
func FromBool(v bool) *region.Region {
	if v {
		return region.FromBits([]int{1})
	}
	return region.FromBits([]int{0})
}

// IntoBool decodes a 1-bit region back to a boolean. Contract:
// r.BitLength() == 1.
func IntoBool(r *region.Region) (bool, error) {
	if err := mtypes.Ensure(r.BitLength() == 1,
		"into_bool: expected bit_length 1, got %d", r.BitLength()); err != nil {
		return false, err
	}
	return r.Bits()[0] != 0, nil
}

// FromBytesUTF8 packs a string's UTF-8 bytes as a natural region
// (spec.md §4.2.7).
func FromBytesUTF8(s string) *region.Region {
	return FromBytes([]byte(s))
}

// IntoBytesUTF8 decodes r's natural bytes back into a UTF-8 string.
// Contract: r.BitLength() is a multiple of 8.
func IntoBytesUTF8(r *region.Region) (string, error) {
	b, err := IntoBytes(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
