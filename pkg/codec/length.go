// Package codec implements the from_*/into_* conversions between Region
// and scalar, byte, bit, and string inputs, under the natural and numeric
// interpretations of spec.md §4.2.
package codec

import (
	"github.com/tidbytes/tidbytes/pkg/region"
)

// applyLength realizes the contract matrix of spec.md §4.2.9 uniformly for
// every codec: n == nil leaves the region's native length untouched;
// *n == 0 always yields the null region regardless of value; otherwise the
// region is grown (zero-padded) or shrunk to exactly n bits. Under the
// numeric interpretation this pad/truncate must happen in natural
// (LSB-on-right-reversed) space, since numeric padding/truncation affects
// the most significant end: "reverse then pad then reverse".
func applyLength(r *region.Region, n *int, numeric bool) (*region.Region, error) {
	if n == nil {
		return r, nil
	}
	if *n == 0 {
		return region.Null(), nil
	}
	if !numeric {
		return region.EnsureBitLength(r, *n)
	}
	natural := region.Reverse(r)
	adjusted, err := region.EnsureBitLength(natural, *n)
	if err != nil {
		return nil, err
	}
	return region.Reverse(adjusted), nil
}

// Some wraps n as an explicit target bit length ("N" in spec.md's
// notation). A nil *int means "None" (adopt the natural width).
func Some(n int) *int { return &n }
