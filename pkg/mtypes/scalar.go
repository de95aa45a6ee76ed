package mtypes

// Fixed-width scalar newtypes. Each wraps a native Go scalar of the same
// width; the width itself can never overflow once the value is a native Go
// value, so "range-checking on construction" (spec.md §3.3) applies to the
// *constructor* functions below, which accept a wider representation
// (int64/uint64/float64) and validate that it fits before narrowing.
type (
	U8  uint8
	U16 uint16
	U32 uint32
	U64 uint64
	I8  int8
	I16 int16
	I32 int32
	I64 int64
	F32 float32
	F64 float64
)

// Bits reports a scalar kind's native bit width.
const (
	BitsU8  = 8
	BitsU16 = 16
	BitsU32 = 32
	BitsU64 = 64
	BitsI8  = 8
	BitsI16 = 16
	BitsI32 = 32
	BitsI64 = 64
	BitsF32 = 32
	BitsF64 = 64
)

// NewU8 range-checks v against [0, 2^8) and narrows it.
func NewU8(v int64) (U8, error) {
	if v < 0 || v > 0xFF {
		return 0, NewError(OutOfRange, "u8: %d out of range [0, 255]", v)
	}
	return U8(v), nil
}

// NewU16 range-checks v against [0, 2^16) and narrows it.
func NewU16(v int64) (U16, error) {
	if v < 0 || v > 0xFFFF {
		return 0, NewError(OutOfRange, "u16: %d out of range [0, 65535]", v)
	}
	return U16(v), nil
}

// NewU32 range-checks v against [0, 2^32) and narrows it.
func NewU32(v int64) (U32, error) {
	if v < 0 || v > 0xFFFFFFFF {
		return 0, NewError(OutOfRange, "u32: %d out of range [0, 4294967295]", v)
	}
	return U32(v), nil
}

// NewU64 range-checks v against [0, 2^64) and narrows it.
func NewU64(v uint64) (U64, error) {
	return U64(v), nil
}

// NewI8 range-checks v against [-2^7, 2^7) and narrows it.
func NewI8(v int64) (I8, error) {
	if v < -0x80 || v > 0x7F {
		return 0, NewError(OutOfRange, "i8: %d out of range [-128, 127]", v)
	}
	return I8(v), nil
}

// NewI16 range-checks v against [-2^15, 2^15) and narrows it.
func NewI16(v int64) (I16, error) {
	if v < -0x8000 || v > 0x7FFF {
		return 0, NewError(OutOfRange, "i16: %d out of range [-32768, 32767]", v)
	}
	return I16(v), nil
}

// NewI32 range-checks v against [-2^31, 2^31) and narrows it.
func NewI32(v int64) (I32, error) {
	if v < -0x80000000 || v > 0x7FFFFFFF {
		return 0, NewError(OutOfRange, "i32: %d out of range [-2147483648, 2147483647]", v)
	}
	return I32(v), nil
}

// NewI64 range-checks v against [-2^63, 2^63) and narrows it.
func NewI64(v int64) (I64, error) {
	return I64(v), nil
}

// NewF32 constructs an F32 wrapper without checks (NaN and Inf pass
// through); float width truncation rules live in the codec layer
// (spec.md §4.2.2), not here.
func NewF32(v float32) F32 { return F32(v) }

// NewF64 constructs an F64 wrapper.
func NewF64(v float64) F64 { return F64(v) }
