package core

import "github.com/r6xxaddr/addrlib/internal/mathutil"

// PadDims is the padDims argument to PadDimensions and friends: how many
// of {pitch, height, slices} the caller wants padded.
type PadDims int

const (
	PadAll PadDims = iota // 0 is treated as "pad everything" (=3).
	PadPitchOnly
	PadPitchHeight
	PadPitchHeightSlices
)

// DimPadInput carries everything PadDimensions needs to decide how far
// to pad pitch/height/slices.
type DimPadInput struct {
	TileMode           TileMode
	IsCube             bool
	CubeAsArray        bool
	NoCubeMipSlicesPad bool

	Pitch, PitchAlign   uint32
	Height, HeightAlign uint32
	Slices, SliceAlign  uint32

	PadDims PadDims
}

// PadDimensions applies the dimension padding policy: pitch
// is always aligned; height is aligned when padDims says to go that far;
// slices are aligned (and cube surfaces' slice count rounded to a power
// of two) when padDims or surface thickness calls for it.
func PadDimensions(in DimPadInput, thick int) (pitch, height, slices uint32) {
	padDims := in.PadDims
	if padDims == PadAll {
		padDims = PadPitchHeightSlices
	}

	pitch = alignPitch(in.Pitch, in.PitchAlign)
	height = in.Height
	slices = in.Slices

	if padDims > PadPitchOnly {
		height = mathutil.Pow2Align(in.Height, in.HeightAlign)
	}

	if padDims > PadPitchHeight || thick > 1 {
		if in.IsCube && (!in.NoCubeMipSlicesPad || in.CubeAsArray) {
			slices = mathutil.NextPow2(slices)
		}
		if thick > 1 {
			slices = mathutil.Pad(slices, in.SliceAlign)
		}
	}

	return
}

// alignPitch aligns pitch to align, taking the power-of-two fast path
// when possible and falling back to generic ceil-division otherwise.
func alignPitch(pitch, align uint32) uint32 {
	if align == 0 {
		return pitch
	}
	if mathutil.IsPow2(align) {
		return mathutil.Pow2Align(pitch, align)
	}
	return mathutil.Pad(pitch, align)
}
