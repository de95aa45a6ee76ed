package region

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNullRegion(t *testing.T) {
	n := Null()
	require.Equal(t, 0, n.BitLength())
	require.Equal(t, 0, n.ByteLength())
	require.NoError(t, n.Validate())
}

func TestFromBitsGroupsAndPadding(t *testing.T) {
	r := FromBits([]int{1, 0, 1, 0, 0})
	require.Equal(t, 5, r.BitLength())
	require.Equal(t, 1, r.ByteLength())
	require.NoError(t, r.Validate())
	require.Equal(t, []int{1, 0, 1, 0, 0}, r.Bits())
}

func TestFromBitLength(t *testing.T) {
	r := FromBitLength(13)
	require.Equal(t, 13, r.BitLength())
	require.Equal(t, 2, r.ByteLength())
	for _, b := range r.Bits() {
		require.Equal(t, 0, b)
	}
}

func TestEqualIncludesPadding(t *testing.T) {
	a := FromBits([]int{1, 1, 1, 1, 1})
	b := FromBits([]int{1, 1, 1, 1, 1})
	require.True(t, a.Equal(b))

	c, err := Truncate(a, 4)
	require.NoError(t, err)
	require.False(t, a.Equal(c))
}

// TestCloneIsDeepCopy uses cmp.Diff, rather than Equal, to compare the
// full internal data/mask planes slot-by-slot: Clone must produce a
// Region with identical backing bytes but a distinct underlying array,
// so mutating the clone's plane through setBit never surfaces in the
// original.
func TestCloneIsDeepCopy(t *testing.T) {
	r := FromBits([]int{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0})
	clone := r.Clone()

	if diff := cmp.Diff(r, clone, cmp.AllowUnexported(Region{})); diff != "" {
		t.Fatalf("clone diverged from original (-want +got):\n%s", diff)
	}

	setBit(clone.data, 0, 0)
	if diff := cmp.Diff(r, clone, cmp.AllowUnexported(Region{})); diff == "" {
		t.Fatal("mutating clone's data plane should not leave original identical")
	}
}

func TestValidateDetectsNonTrailingBottom(t *testing.T) {
	// Hand-construct an invalid region: data/mask with a bottom slot
	// followed by a present slot, to exercise Validate's failure path.
	bad := &Region{data: []byte{0x00}, mask: []byte{0b01000000}}
	require.Error(t, bad.Validate())
}
