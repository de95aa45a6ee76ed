package codec

import (
	"encoding/binary"
	"math"

	"github.com/tidbytes/tidbytes/pkg/mtypes"
	"github.com/tidbytes/tidbytes/pkg/region"
)

// naturalRegionFromLEBytes implements spec.md §4.2.1 steps 3-4: each byte
// expands LSB-to-MSB into one group, groups concatenate left to right.
func naturalRegionFromLEBytes(le []byte) *region.Region {
	bitValues := make([]int, 0, len(le)*8)
	for _, b := range le {
		for s := 0; s < 8; s++ {
			bitValues = append(bitValues, int((b>>uint(s))&1))
		}
	}
	return region.FromBits(bitValues)
}

func fromScalarBytes(le []byte, numeric bool, n *int) (*region.Region, error) {
	r := naturalRegionFromLEBytes(le)
	if numeric {
		r = region.Reverse(r)
	}
	return applyLength(r, n, numeric)
}

// FromNaturalU8 treats v as a raw memory byte (spec.md §4.2.1).
func FromNaturalU8(v mtypes.U8, n *int) (*region.Region, error) {
	return fromScalarBytes([]byte{byte(v)}, false, n)
}

// FromNumericU8 treats v as a numeric value (LSB on the right).
func FromNumericU8(v mtypes.U8, n *int) (*region.Region, error) {
	return fromScalarBytes([]byte{byte(v)}, true, n)
}

// FromNaturalU16 treats v as 2 raw memory bytes, little-endian regardless
// of host byte order.
func FromNaturalU16(v mtypes.U16, n *int) (*region.Region, error) {
	le := make([]byte, 2)
	binary.LittleEndian.PutUint16(le, uint16(v))
	return fromScalarBytes(le, false, n)
}

// FromNumericU16 treats v as a numeric value.
func FromNumericU16(v mtypes.U16, n *int) (*region.Region, error) {
	le := make([]byte, 2)
	binary.LittleEndian.PutUint16(le, uint16(v))
	return fromScalarBytes(le, true, n)
}

// FromNaturalU32 treats v as 4 raw memory bytes, little-endian.
func FromNaturalU32(v mtypes.U32, n *int) (*region.Region, error) {
	le := make([]byte, 4)
	binary.LittleEndian.PutUint32(le, uint32(v))
	return fromScalarBytes(le, false, n)
}

// FromNumericU32 treats v as a numeric value.
func FromNumericU32(v mtypes.U32, n *int) (*region.Region, error) {
	le := make([]byte, 4)
	binary.LittleEndian.PutUint32(le, uint32(v))
	return fromScalarBytes(le, true, n)
}

// FromNaturalU64 treats v as 8 raw memory bytes, little-endian.
func FromNaturalU64(v mtypes.U64, n *int) (*region.Region, error) {
	le := make([]byte, 8)
	binary.LittleEndian.PutUint64(le, uint64(v))
	return fromScalarBytes(le, false, n)
}

// FromNumericU64 treats v as a numeric value.
func FromNumericU64(v mtypes.U64, n *int) (*region.Region, error) {
	le := make([]byte, 8)
	binary.LittleEndian.PutUint64(le, uint64(v))
	return fromScalarBytes(le, true, n)
}

// FromNaturalI8 treats v as a raw memory byte; negative values appear as
// their two's-complement byte pattern naturally (spec.md §4.2.1).
func FromNaturalI8(v mtypes.I8, n *int) (*region.Region, error) {
	return fromScalarBytes([]byte{byte(int8(v))}, false, n)
}

// FromNumericI8 treats v as a numeric (signed) value.
func FromNumericI8(v mtypes.I8, n *int) (*region.Region, error) {
	return fromScalarBytes([]byte{byte(int8(v))}, true, n)
}

// FromNaturalI16 treats v as 2 raw memory bytes, little-endian.
func FromNaturalI16(v mtypes.I16, n *int) (*region.Region, error) {
	le := make([]byte, 2)
	binary.LittleEndian.PutUint16(le, uint16(int16(v)))
	return fromScalarBytes(le, false, n)
}

// FromNumericI16 treats v as a numeric (signed) value.
func FromNumericI16(v mtypes.I16, n *int) (*region.Region, error) {
	le := make([]byte, 2)
	binary.LittleEndian.PutUint16(le, uint16(int16(v)))
	return fromScalarBytes(le, true, n)
}

// FromNaturalI32 treats v as 4 raw memory bytes, little-endian.
func FromNaturalI32(v mtypes.I32, n *int) (*region.Region, error) {
	le := make([]byte, 4)
	binary.LittleEndian.PutUint32(le, uint32(int32(v)))
	return fromScalarBytes(le, false, n)
}

// FromNumericI32 treats v as a numeric (signed) value.
func FromNumericI32(v mtypes.I32, n *int) (*region.Region, error) {
	le := make([]byte, 4)
	binary.LittleEndian.PutUint32(le, uint32(int32(v)))
	return fromScalarBytes(le, true, n)
}

// FromNaturalI64 treats v as 8 raw memory bytes, little-endian.
func FromNaturalI64(v mtypes.I64, n *int) (*region.Region, error) {
	le := make([]byte, 8)
	binary.LittleEndian.PutUint64(le, uint64(int64(v)))
	return fromScalarBytes(le, false, n)
}

// FromNumericI64 treats v as a numeric (signed) value.
func FromNumericI64(v mtypes.I64, n *int) (*region.Region, error) {
	le := make([]byte, 8)
	binary.LittleEndian.PutUint64(le, uint64(int64(v)))
	return fromScalarBytes(le, true, n)
}

// Width-named aliases matching the original source's per-width entry
// points (original_source/tidbytes/idiomatic.py: from_bytes_u16, ...),
// kept for API parity per SPEC_FULL.md §4.2's "Supplemental codec
// surface".
var (
	FromBytesU8  = FromNaturalU8
	FromBytesU16 = FromNaturalU16
	FromBytesU32 = FromNaturalU32
	FromBytesU64 = FromNaturalU64
)

func floatLengthCheck(n *int, nativeWidth int) error {
	if n != nil && *n != 0 && *n < nativeWidth {
		return mtypes.NewError(mtypes.LossyFloatTruncation,
			"float: cannot truncate %d-bit float to %d bits", nativeWidth, *n)
	}
	return nil
}

// FromNaturalF32 reads v's IEEE-754 bytes little-endian as raw memory.
// Truncation below 32 bits is forbidden (spec.md §4.2.2).
func FromNaturalF32(v mtypes.F32, n *int) (*region.Region, error) {
	if err := floatLengthCheck(n, mtypes.BitsF32); err != nil {
		return nil, err
	}
	le := make([]byte, 4)
	binary.LittleEndian.PutUint32(le, math.Float32bits(float32(v)))
	return fromScalarBytes(le, false, n)
}

// FromNumericF32 treats v as a numeric value.
func FromNumericF32(v mtypes.F32, n *int) (*region.Region, error) {
	if err := floatLengthCheck(n, mtypes.BitsF32); err != nil {
		return nil, err
	}
	le := make([]byte, 4)
	binary.LittleEndian.PutUint32(le, math.Float32bits(float32(v)))
	return fromScalarBytes(le, true, n)
}

// FromNaturalF64 reads v's IEEE-754 bytes little-endian as raw memory.
// Truncation below 64 bits is forbidden (spec.md §4.2.2).
func FromNaturalF64(v mtypes.F64, n *int) (*region.Region, error) {
	if err := floatLengthCheck(n, mtypes.BitsF64); err != nil {
		return nil, err
	}
	le := make([]byte, 8)
	binary.LittleEndian.PutUint64(le, math.Float64bits(float64(v)))
	return fromScalarBytes(le, false, n)
}

// FromNumericF64 treats v as a numeric value.
func FromNumericF64(v mtypes.F64, n *int) (*region.Region, error) {
	if err := floatLengthCheck(n, mtypes.BitsF64); err != nil {
		return nil, err
	}
	le := make([]byte, 8)
	binary.LittleEndian.PutUint64(le, math.Float64bits(float64(v)))
	return fromScalarBytes(le, true, n)
}
