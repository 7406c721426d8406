package core

import "github.com/r6xxaddr/addrlib/internal/mathutil"

// MipLevelInput carries the base-map description that MipLevelDims reduces
// to the requested mipLevel's dimensions.
type MipLevelInput struct {
	Width, Height, Slices uint32
	MipLevel              uint32
	IsBlockCompressed     bool
	IsCube                bool
	InputBaseMap          bool
	// SkipPow2Pad is set for the two 3-component 32-bit formats
	// (32_32_32, 32_32_32_FLOAT), which the hardware never rounds up to
	// a power of two.
	SkipPow2Pad bool
}

// MipLevelDims computes the dimensions of mip level in.MipLevel given a
// base-map description, per the mip-level reduction rule: pad
// block-compressed dims to the 4x4 block grid at mip level 0 or when the
// input is a base map, then — only when reducing an actual sub-level of
// an input base map —
// halve down to a 1x1x1 floor and round width/height/slices up to the
// next power of two (except for the two 3-component 32-bit formats). At
// mip level 0 the halving/rounding step never runs.
func MipLevelDims(in MipLevelInput) (width, height, slices uint32) {
	width, height, slices = in.Width, in.Height, in.Slices

	if in.IsBlockCompressed && (in.MipLevel == 0 || in.InputBaseMap) {
		width = mathutil.Pad(width, 4)
		height = mathutil.Pad(height, 4)
	}

	if in.MipLevel > 0 && in.InputBaseMap {
		width = mathutil.Max(uint32(1), width>>in.MipLevel)
		height = mathutil.Max(uint32(1), height>>in.MipLevel)
		if !in.IsCube {
			slices = mathutil.Max(uint32(1), slices>>in.MipLevel)
		} else {
			slices = mathutil.Max(uint32(1), slices)
		}

		if !in.SkipPow2Pad {
			width = mathutil.NextPow2(width)
			height = mathutil.NextPow2(height)
			slices = mathutil.NextPow2(slices)
		}
	}

	return
}
