package codec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidbytes/tidbytes/pkg/mtypes"
)

func TestBigIntUnsignedRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "255", "65535", "123456789012345678901234567890"} {
		v, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok)
		n := v.BitLen() + 8

		natural, err := FromNaturalBigIntegerUnsigned(v, n)
		require.NoError(t, err)
		require.Equal(t, 0, v.Cmp(IntoNaturalBigIntegerUnsigned(natural)))

		numeric, err := FromNumericBigIntegerUnsigned(v, n)
		require.NoError(t, err)
		require.Equal(t, 0, v.Cmp(IntoNumericBigIntegerUnsigned(numeric)))
	}
}

func TestBigIntSignedRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "-1", "-128", "127", "-123456789", "123456789"} {
		v, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok)

		natural, err := FromNaturalBigIntegerSigned(v, 40)
		require.NoError(t, err)
		require.Equal(t, 0, v.Cmp(IntoNaturalBigIntegerSigned(natural)), "natural %s", s)

		numeric, err := FromNumericBigIntegerSigned(v, 40)
		require.NoError(t, err)
		require.Equal(t, 0, v.Cmp(IntoNumericBigIntegerSigned(numeric)), "numeric %s", s)
	}
}

func TestBigIntUnsignedOutOfRange(t *testing.T) {
	_, err := FromNaturalBigIntegerUnsigned(big.NewInt(256), 8)
	require.Error(t, err)
	require.Equal(t, mtypes.OutOfRange, err.(*mtypes.MemError).Kind)
	_, err = FromNaturalBigIntegerUnsigned(big.NewInt(-1), 8)
	require.Error(t, err)
	require.Equal(t, mtypes.OutOfRange, err.(*mtypes.MemError).Kind)
}

func TestBigIntSignedOutOfRange(t *testing.T) {
	_, err := FromNaturalBigIntegerSigned(big.NewInt(128), 8)
	require.Error(t, err)
	require.Equal(t, mtypes.OutOfRange, err.(*mtypes.MemError).Kind)
	_, err = FromNaturalBigIntegerSigned(big.NewInt(-129), 8)
	require.Error(t, err)
	require.Equal(t, mtypes.OutOfRange, err.(*mtypes.MemError).Kind)
}

func bigIntBitString(bitValues []int) string {
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

// Scenario 3 (spec.md §8): Signed[4](-1) -> "1111"; Signed[4](-8) -> "1000";
// Signed[4](7) -> "0111".
func TestSignedWidth4LiteralScenarios(t *testing.T) {
	cases := []struct {
		v    int64
		want string
	}{
		{-1, "1111"},
		{-8, "1000"},
		{7, "0111"},
	}
	for _, c := range cases {
		r, err := FromNumericBigIntegerSigned(big.NewInt(c.v), 4)
		require.NoError(t, err, "v=%d", c.v)
		require.Equal(t, c.want, bigIntBitString(r.Bits()), "v=%d", c.v)
	}
}

// Signed[4] round trips at a non-byte-aligned width, exercising the
// partial-byte reverse deviation on the codec path.
func TestSignedWidth4RoundTrip(t *testing.T) {
	for _, v := range []int64{-8, -1, 0, 7} {
		r, err := FromNumericBigIntegerSigned(big.NewInt(v), 4)
		require.NoError(t, err)
		back := IntoNumericBigIntegerSigned(r)
		require.Equal(t, v, back.Int64())
	}
}

func TestBigIntSignedNegativeOneIsAllOnes(t *testing.T) {
	r, err := FromNaturalBigIntegerSigned(big.NewInt(-1), 8)
	require.NoError(t, err)
	for _, b := range r.Bits() {
		require.Equal(t, 1, b)
	}
}
