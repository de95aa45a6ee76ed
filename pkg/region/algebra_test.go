package region

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransformLawIdentityIdempotent(t *testing.T) {
	r := FromBits([]int{1, 0, 1, 1, 0, 0, 1, 0, 1})
	require.True(t, Identity(Identity(r)).Equal(r))
}

func TestTransformLawReverseBitsSelfInverse(t *testing.T) {
	for _, n := range []int{1, 5, 8, 13, 16, 23} {
		bitValues := make([]int, n)
		for i := range bitValues {
			bitValues[i] = i % 2
		}
		r := FromBits(bitValues)
		require.True(t, ReverseBits(ReverseBits(r)).Equal(r), "n=%d", n)
	}
}

func TestTransformLawReverseBytesSelfInverse(t *testing.T) {
	for _, n := range []int{1, 5, 8, 13, 16, 23} {
		bitValues := make([]int, n)
		for i := range bitValues {
			bitValues[i] = i % 2
		}
		r := FromBits(bitValues)
		require.True(t, ReverseBytes(ReverseBytes(r)).Equal(r), "n=%d", n)
	}
}

func TestTransformLawReverseSelfInverseOnFullBytes(t *testing.T) {
	r := FromBits([]int{1, 1, 0, 0, 1, 0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 1})
	require.True(t, Reverse(Reverse(r)).Equal(r))
}

// TestReverseBitsPartialByteDeviation pins the documented §9 deviation:
// reversing bit order within the trailing partial group of a 13-bit region
// moves its ⊥ slots ahead of data bits, producing a result Validate()
// correctly flags as non-canonical, per DESIGN.md's resolution.
func TestReverseBitsPartialByteDeviation(t *testing.T) {
	r := FromBits([]int{1, 1, 0, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1}) // 13 bits
	require.NoError(t, r.Validate())

	reversed := ReverseBits(r)
	// Second group held 5 data bits then 3 bottom slots; bit-reversing the
	// whole 8-slot group moves the 3 bottom slots to the front.
	require.Error(t, reversed.Validate())
}

func TestConcatenateTruncateRoundTrip(t *testing.T) {
	r := FromBits([]int{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0})
	for k := 0; k <= r.BitLength(); k++ {
		left, err := Truncate(r, k)
		require.NoError(t, err)
		right, err := GetBits(r, k, r.BitLength())
		require.NoError(t, err)
		joined, err := Concatenate(left, right)
		require.NoError(t, err)
		require.True(t, joined.Equal(r), "k=%d", k)
	}
}

func TestEnsureBitLengthIdentity(t *testing.T) {
	r := FromBits([]int{1, 0, 1, 1, 0})
	same, err := EnsureBitLength(r, r.BitLength())
	require.NoError(t, err)
	require.True(t, same.Equal(r))
}

func TestExtendThenTruncateRoundTrip(t *testing.T) {
	r := FromBits([]int{1, 0, 1, 1, 0})
	extended, err := Extend(r, 10, FromBits([]int{0}))
	require.NoError(t, err)
	back, err := Truncate(extended, r.BitLength())
	require.NoError(t, err)
	require.True(t, back.Equal(r))
}

func TestSetBitsRoundTrip(t *testing.T) {
	r := FromBits([]int{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0})
	off, length := 3, 5
	payload, err := GetBits(r, off, off+length)
	require.NoError(t, err)
	same, err := SetBits(r, off, payload)
	require.NoError(t, err)
	require.True(t, same.Equal(r))
}

func TestNullRegionGetOpsRaiseInvariant(t *testing.T) {
	n := Null()
	_, err := GetBit(n, 0)
	require.Error(t, err)
	_, err = GetByte(n, 0)
	require.Error(t, err)
	_, err = GetBits(n, 0, 1)
	require.Error(t, err)
}

func TestGetByteOverFetchesLastPartialByte(t *testing.T) {
	// 10 bits -> byte 1 has only 2 meaningful bits, rest conceptually ⊥.
	r := FromBits([]int{1, 1, 0, 0, 1, 0, 1, 0, 1, 1})
	b, err := GetByte(r, 1)
	require.NoError(t, err)
	require.Equal(t, 2, b.BitLength())
	require.Equal(t, []int{1, 1}, b.Bits())
}

func TestSetBitReplacesSingleBit(t *testing.T) {
	r := FromBits([]int{0, 0, 0, 0})
	one, err := SetBit(r, 2, FromBits([]int{1}))
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 1, 0}, one.Bits())
}

func TestTruncateToZeroYieldsNull(t *testing.T) {
	r := FromBits([]int{1, 1, 1})
	empty, err := Truncate(r, 0)
	require.NoError(t, err)
	require.True(t, empty.Equal(Null()))
}

// TestReverseRecoversPartialByteValue exercises the same partial-byte
// deviation as TestReverseBitsPartialByteDeviation, but pins that Bits()
// still extracts the correct logical value afterward, by reversing a
// 4-bit pattern held in a single 8-slot group (as the big-integer
// codec's "reverse after encoding" does for Signed[4]).
func TestReverseRecoversPartialByteValue(t *testing.T) {
	r := FromBits([]int{1, 1, 1, 0}) // natural bits of two's-complement 7, width 4
	reversed := Reverse(r)
	require.Equal(t, []int{0, 1, 1, 1}, reversed.Bits())
	require.Equal(t, r.BitLength(), reversed.BitLength())
}

// TestGetBitsReadsThroughRelocatedBottomSlots pins that GetBit/GetBits
// read by logical position (via Bits()) rather than raw physical offset:
// on a 4-bit region reversed into an 8-slot group, the bottom slots sit
// ahead of the data bits physically, but GetBits must still return the
// four data bits, in the reversed slot order, skipping the bottom slots.
func TestGetBitsReadsThroughRelocatedBottomSlots(t *testing.T) {
	r := FromBits([]int{1, 1, 1, 0}) // natural bits of two's-complement 7, width 4
	reversed := ReverseBits(r)

	all, err := GetBits(reversed, 0, reversed.BitLength())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 1, 1}, all.Bits())

	second, err := GetBit(reversed, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, second.Bits())
}

func TestConcatenateBitLengthIsSum(t *testing.T) {
	left := FromBits([]int{1, 0, 0, 1})
	right := FromBits([]int{1, 1})
	joined, err := Concatenate(left, right)
	require.NoError(t, err)
	require.Equal(t, left.BitLength()+right.BitLength(), joined.BitLength())
}
