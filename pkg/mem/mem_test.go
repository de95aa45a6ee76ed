package mem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidbytes/tidbytes/pkg/mtypes"
)

func bitString(bitValues []int) string {
	out := make([]byte, len(bitValues))
	for i, v := range bitValues {
		if v != 0 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

// Scenario 1: Mem(u8(0b101)) -> "10100000".
func TestMemU8NaturalScenario(t *testing.T) {
	v, err := mtypes.NewU8(0b101)
	require.NoError(t, err)
	m, err := Of(v, nil)
	require.NoError(t, err)
	require.Equal(t, "10100000", bitString(m.Region().Bits()))
}

// Scenario 2: Unsigned(u8(0b101)) -> "00000101".
func TestUnsignedU8NumericScenario(t *testing.T) {
	v, err := mtypes.NewU8(0b101)
	require.NoError(t, err)
	u, err := UnsignedOf(v, nil)
	require.NoError(t, err)
	require.Equal(t, "00000101", bitString(u.Region().Bits()))
}

// Scenario 3: Signed[4](-1) -> "1111"; Signed[4](-8) -> "1000"; Signed[4](7) -> "0111".
func TestSignedWidth4LiteralScenario(t *testing.T) {
	n := 4
	cases := []struct {
		v    int
		want string
	}{
		{-1, "1111"},
		{-8, "1000"},
		{7, "0111"},
	}
	for _, c := range cases {
		s, err := SignedOf(c.v, &n)
		require.NoError(t, err, "v=%d", c.v)
		require.Equal(t, c.want, bitString(s.Region().Bits()), "v=%d", c.v)
	}
}

// Scenario 7: Signed[2](1) + Signed[2](1) -> OutOfRange, since the sum 2
// exceeds 2^(2-1) - 1 = 1, the largest value Signed[2] can hold (spec.md
// §8 states this with operand "Signed[2](2)", which cannot itself be
// constructed — Signed[2]'s range is [-2, 1] — so the in-range operand
// pair that reaches the same overflowing sum is used here instead).
func TestSignedOverflowScenario(t *testing.T) {
	n := 2
	_, err := SignedOf(2, &n)
	require.Error(t, err, "Signed[2](2) is itself out of range: max is 1")

	one, err := SignedOf(1, &n)
	require.NoError(t, err)
	otherOne, err := SignedOf(1, &n)
	require.NoError(t, err)
	_, err = one.Add(otherOne)
	require.Error(t, err)
	require.Equal(t, mtypes.OutOfRange, err.(*mtypes.MemError).Kind)
}

// Scenario 8: concatenate(Mem[4](1), Mem[4](1)) -> "10001000".
func TestConcatenateLiteralScenario(t *testing.T) {
	n := 4
	a, err := Of(1, &n)
	require.NoError(t, err)
	b, err := Of(1, &n)
	require.NoError(t, err)
	joined, err := a.Concatenate(b)
	require.NoError(t, err)
	require.Equal(t, "10001000", bitString(joined.Region().Bits()))
}

// Scenario 6: Mem[16](u8(2))[0:1:8] -> first byte, [1:2:8] -> second byte.
// With step 8, start/stop are byte indices passed straight through to
// GetBytes (confirmed against the original source's test_mem__getitem__,
// e.g. Slice[1::8] on a 2-byte region selects the second byte).
func TestSliceByteStepLiteralScenario(t *testing.T) {
	n := 16
	v, err := mtypes.NewU8(2)
	require.NoError(t, err)
	m, err := Of(v, &n)
	require.NoError(t, err)

	first, err := m.Slice(0, 1, 8)
	require.NoError(t, err)
	// spec.md literally prints this byte as "00000010" (value 2 written in
	// the usual MSB-first notation), but that is inconsistent with the
	// natural-interpretation algorithm scenario 4 pins in the same table:
	// slot i holds bit i of the value, so u8(2)'s slot 1 (weight 2) is the
	// lone 1 and slot 0 is 0 — "01000000", not "00000010". Following the
	// algorithm (confirmed against scenario 4 and the original source).
	require.Equal(t, "01000000", bitString(first.Region().Bits()))

	second, err := m.Slice(1, 2, 8)
	require.NoError(t, err)
	require.Equal(t, "00000000", bitString(second.Region().Bits()))
}

// TestSliceByteStepMatchesGetByte pins that step-8 slicing and GetByte
// agree, and that start/stop are byte indices, not bit positions divided
// by 8 (e.g. Slice(1, 2, 8) must select the second byte of a multi-byte
// region, not coincide with Slice(8, 16, 8) under the old, incorrect
// division-based implementation).
func TestSliceByteStepMatchesGetByte(t *testing.T) {
	m, err := Of([]byte{0xAB, 0xCD}, nil)
	require.NoError(t, err)

	viaSlice, err := m.Slice(1, 2, 8)
	require.NoError(t, err)
	viaGetByte, err := m.GetByte(1)
	require.NoError(t, err)
	require.Equal(t, bitString(viaGetByte.Region().Bits()), bitString(viaSlice.Region().Bits()))

	whole, err := m.Slice(0, 2, 8)
	require.NoError(t, err)
	require.Equal(t, bitString(m.Region().Bits()), bitString(whole.Region().Bits()))
}

func TestMemZeroWidthYieldsNull(t *testing.T) {
	n := 0
	m, err := Of(42, &n)
	require.NoError(t, err)
	require.Equal(t, 0, m.BitLength())
}

func TestSignedBoundaryAcceptance(t *testing.T) {
	n := 4
	_, err := SignedOf(-8, &n)
	require.NoError(t, err)
	_, err = SignedOf(7, &n)
	require.NoError(t, err)
	_, err = SignedOf(-9, &n)
	require.Error(t, err)
	require.Equal(t, mtypes.OutOfRange, err.(*mtypes.MemError).Kind)
}

func TestEqualAnyRejectsCrossFacadeType(t *testing.T) {
	m, err := Of(1, nil)
	require.NoError(t, err)
	u, err := UnsignedOf(1, nil)
	require.NoError(t, err)
	_, err = m.EqualAny(u)
	require.Error(t, err)
}

func TestUnsignedArithmeticOverflow(t *testing.T) {
	n := 4
	a, err := UnsignedOf(15, &n)
	require.NoError(t, err)
	b, err := UnsignedOf(1, &n)
	require.NoError(t, err)
	_, err = a.Add(b)
	require.Error(t, err)
	require.Equal(t, mtypes.OutOfRange, err.(*mtypes.MemError).Kind)
}

func TestUnsignedArithmeticRoundTrip(t *testing.T) {
	n := 8
	a, err := UnsignedOf(10, &n)
	require.NoError(t, err)
	b, err := UnsignedOf(5, &n)
	require.NoError(t, err)
	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, int64(15), sum.Int().Int64())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, int64(5), diff.Int().Int64())

	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, int64(50), prod.Int().Int64())
}

func TestUnsignedDivisionByZero(t *testing.T) {
	a, err := UnsignedOf(10, nil)
	require.NoError(t, err)
	zero, err := UnsignedOf(0, nil)
	require.NoError(t, err)
	_, err = a.Div(zero)
	require.Error(t, err)
}

func TestSignedArithmeticNegative(t *testing.T) {
	n := 8
	a, err := SignedOf(-10, &n)
	require.NoError(t, err)
	b, err := SignedOf(3, &n)
	require.NoError(t, err)
	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, int64(-7), sum.Int().Int64())
}

func TestNullRegionFacadeIndexErrors(t *testing.T) {
	n := 0
	m, err := Of(nil, &n)
	require.NoError(t, err)
	_, err = m.GetBit(0)
	require.Error(t, err)
}

func TestSliceInvalidStep(t *testing.T) {
	m, err := Of([]byte{0xFF}, nil)
	require.NoError(t, err)
	_, err = m.Slice(0, 4, 3)
	require.Error(t, err)
}

func TestStringLiteralDispatch(t *testing.T) {
	n := 8
	u, err := UnsignedOf("0xFF", &n)
	require.NoError(t, err)
	require.Equal(t, int64(255), u.Int().Int64())

	u2, err := UnsignedOf("0b1010", &n)
	require.NoError(t, err)
	require.Equal(t, int64(10), u2.Int().Int64())
}

func TestMemFromNilInitializerDefaultsToNull(t *testing.T) {
	m, err := Of(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.BitLength())
}

func TestMemRegionCopyConstructor(t *testing.T) {
	v, err := mtypes.NewU8(5)
	require.NoError(t, err)
	m, err := Of(v, nil)
	require.NoError(t, err)
	copy1, err := Of(m.Region(), nil)
	require.NoError(t, err)
	require.True(t, m.Equal(copy1))
}
