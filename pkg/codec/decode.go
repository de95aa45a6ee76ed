package codec

import (
	"encoding/binary"
	"math"

	"github.com/tidbytes/tidbytes/pkg/mtypes"
	"github.com/tidbytes/tidbytes/pkg/region"
)

// toLEBytes reads r's natural bits back into exactly width bytes,
// little-endian. Contract: r.BitLength() == width*8.
func toLEBytes(r *region.Region, width int, op string) ([]byte, error) {
	if err := mtypes.Ensure(r.BitLength() == width*8,
		"%s: expected bit_length %d, got %d", op, width*8, r.BitLength()); err != nil {
		return nil, err
	}
	bitValues := r.Bits()
	out := make([]byte, width)
	for i, v := range bitValues {
		if v != 0 {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out, nil
}

func scalarLEBytes(r *region.Region, numeric bool, width int, op string) ([]byte, error) {
	natural := r
	if numeric {
		natural = region.Reverse(r)
	}
	return toLEBytes(natural, width, op)
}

// IntoNaturalU8 decodes r as a raw memory byte.
func IntoNaturalU8(r *region.Region) (mtypes.U8, error) {
	b, err := scalarLEBytes(r, false, 1, "into_natural_u8")
	if err != nil {
		return 0, err
	}
	return mtypes.U8(b[0]), nil
}

// IntoNumericU8 decodes r under the numeric interpretation.
func IntoNumericU8(r *region.Region) (mtypes.U8, error) {
	b, err := scalarLEBytes(r, true, 1, "into_numeric_u8")
	if err != nil {
		return 0, err
	}
	return mtypes.U8(b[0]), nil
}

// IntoNaturalU16 decodes r as 2 raw memory bytes, little-endian.
func IntoNaturalU16(r *region.Region) (mtypes.U16, error) {
	b, err := scalarLEBytes(r, false, 2, "into_natural_u16")
	if err != nil {
		return 0, err
	}
	return mtypes.U16(binary.LittleEndian.Uint16(b)), nil
}

// IntoNumericU16 decodes r under the numeric interpretation.
func IntoNumericU16(r *region.Region) (mtypes.U16, error) {
	b, err := scalarLEBytes(r, true, 2, "into_numeric_u16")
	if err != nil {
		return 0, err
	}
	return mtypes.U16(binary.LittleEndian.Uint16(b)), nil
}

// IntoNaturalU32 decodes r as 4 raw memory bytes, little-endian.
func IntoNaturalU32(r *region.Region) (mtypes.U32, error) {
	b, err := scalarLEBytes(r, false, 4, "into_natural_u32")
	if err != nil {
		return 0, err
	}
	return mtypes.U32(binary.LittleEndian.Uint32(b)), nil
}

// IntoNumericU32 decodes r under the numeric interpretation.
func IntoNumericU32(r *region.Region) (mtypes.U32, error) {
	b, err := scalarLEBytes(r, true, 4, "into_numeric_u32")
	if err != nil {
		return 0, err
	}
	return mtypes.U32(binary.LittleEndian.Uint32(b)), nil
}

// IntoNaturalU64 decodes r as 8 raw memory bytes, little-endian.
func IntoNaturalU64(r *region.Region) (mtypes.U64, error) {
	b, err := scalarLEBytes(r, false, 8, "into_natural_u64")
	if err != nil {
		return 0, err
	}
	return mtypes.U64(binary.LittleEndian.Uint64(b)), nil
}

// IntoNumericU64 decodes r under the numeric interpretation.
func IntoNumericU64(r *region.Region) (mtypes.U64, error) {
	b, err := scalarLEBytes(r, true, 8, "into_numeric_u64")
	if err != nil {
		return 0, err
	}
	return mtypes.U64(binary.LittleEndian.Uint64(b)), nil
}

// IntoNaturalI8 decodes r as a raw memory byte, reinterpreted signed.
func IntoNaturalI8(r *region.Region) (mtypes.I8, error) {
	b, err := scalarLEBytes(r, false, 1, "into_natural_i8")
	if err != nil {
		return 0, err
	}
	return mtypes.I8(int8(b[0])), nil
}

// IntoNumericI8 decodes r under the numeric interpretation.
func IntoNumericI8(r *region.Region) (mtypes.I8, error) {
	b, err := scalarLEBytes(r, true, 1, "into_numeric_i8")
	if err != nil {
		return 0, err
	}
	return mtypes.I8(int8(b[0])), nil
}

// IntoNaturalI16 decodes r as 2 raw memory bytes, little-endian, signed.
func IntoNaturalI16(r *region.Region) (mtypes.I16, error) {
	b, err := scalarLEBytes(r, false, 2, "into_natural_i16")
	if err != nil {
		return 0, err
	}
	return mtypes.I16(int16(binary.LittleEndian.Uint16(b))), nil
}

// IntoNumericI16 decodes r under the numeric interpretation.
func IntoNumericI16(r *region.Region) (mtypes.I16, error) {
	b, err := scalarLEBytes(r, true, 2, "into_numeric_i16")
	if err != nil {
		return 0, err
	}
	return mtypes.I16(int16(binary.LittleEndian.Uint16(b))), nil
}

// IntoNaturalI32 decodes r as 4 raw memory bytes, little-endian, signed.
func IntoNaturalI32(r *region.Region) (mtypes.I32, error) {
	b, err := scalarLEBytes(r, false, 4, "into_natural_i32")
	if err != nil {
		return 0, err
	}
	return mtypes.I32(int32(binary.LittleEndian.Uint32(b))), nil
}

// IntoNumericI32 decodes r under the numeric interpretation.
func IntoNumericI32(r *region.Region) (mtypes.I32, error) {
	b, err := scalarLEBytes(r, true, 4, "into_numeric_i32")
	if err != nil {
		return 0, err
	}
	return mtypes.I32(int32(binary.LittleEndian.Uint32(b))), nil
}

// IntoNaturalI64 decodes r as 8 raw memory bytes, little-endian, signed.
func IntoNaturalI64(r *region.Region) (mtypes.I64, error) {
	b, err := scalarLEBytes(r, false, 8, "into_natural_i64")
	if err != nil {
		return 0, err
	}
	return mtypes.I64(int64(binary.LittleEndian.Uint64(b))), nil
}

// IntoNumericI64 decodes r under the numeric interpretation.
func IntoNumericI64(r *region.Region) (mtypes.I64, error) {
	b, err := scalarLEBytes(r, true, 8, "into_numeric_i64")
	if err != nil {
		return 0, err
	}
	return mtypes.I64(int64(binary.LittleEndian.Uint64(b))), nil
}

// IntoNaturalF32 decodes r's IEEE-754 bytes little-endian, raw memory.
func IntoNaturalF32(r *region.Region) (mtypes.F32, error) {
	b, err := scalarLEBytes(r, false, 4, "into_natural_f32")
	if err != nil {
		return 0, err
	}
	return mtypes.F32(math.Float32frombits(binary.LittleEndian.Uint32(b))), nil
}

// IntoNumericF32 decodes r under the numeric interpretation.
func IntoNumericF32(r *region.Region) (mtypes.F32, error) {
	b, err := scalarLEBytes(r, true, 4, "into_numeric_f32")
	if err != nil {
		return 0, err
	}
	return mtypes.F32(math.Float32frombits(binary.LittleEndian.Uint32(b))), nil
}

// IntoNaturalF64 decodes r's IEEE-754 bytes little-endian, raw memory.
func IntoNaturalF64(r *region.Region) (mtypes.F64, error) {
	b, err := scalarLEBytes(r, false, 8, "into_natural_f64")
	if err != nil {
		return 0, err
	}
	return mtypes.F64(math.Float64frombits(binary.LittleEndian.Uint64(b))), nil
}

// IntoNumericF64 decodes r under the numeric interpretation.
func IntoNumericF64(r *region.Region) (mtypes.F64, error) {
	b, err := scalarLEBytes(r, true, 8, "into_numeric_f64")
	if err != nil {
		return 0, err
	}
	return mtypes.F64(math.Float64frombits(binary.LittleEndian.Uint64(b))), nil
}
