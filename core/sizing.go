package core

import "github.com/r6xxaddr/addrlib/internal/mathutil"

// SliceSizeComputing selects how FinalizeSizing derives sliceSize.
type SliceSizeComputing int

const (
	SliceSizePitchTimesDepth SliceSizeComputing = iota
	SliceSizeUncompressedBits
	SliceSizeSingleSlice
)

// FinalizeInput carries everything FinalizeSizing needs beyond the raw
// SurfaceInfoResult: the policy knobs and stereo/slice bookkeeping that
// the base engine applies after a family's ComputeSurfaceInfo returns.
type FinalizeInput struct {
	Bpp             uint32
	NumSamples      uint32
	NumSlices       uint32
	Slice           uint32
	IsVolume        bool
	QbStereo        bool
	SliceSizeMode   SliceSizeComputing
}

// FinalizeResult is the subset of SurfaceInfoResult that FinalizeSizing
// derives or mutates.
type FinalizeResult struct {
	Pitch, Height uint32
	Depth         uint32
	SurfSize      uint64

	PixelPitch, PixelHeight uint32
	EyeHeight               uint32
	RightEyeOffset          uint64
	SliceSize               uint64
	PitchTileMax            int64
	HeightTileMax           int64
	SliceTileMax            int64

	BaseAlign, PitchAlign, HeightAlign, DepthAlign uint32
	BankSwapWidth                                  uint32
	BlockWidth, BlockHeight                        int
}

// FinalizeSizing applies the sizing-result finalization rule: pixel-space
// restore, stereo doubling, the sliceSize policy keyed by
// SliceSizeComputing, and the pitch/height/slice tile-max encodings.
func FinalizeSizing(res SurfaceInfoResult, in FinalizeInput, restorePixelDims bool, restoredW, restoredH uint32) FinalizeResult {
	out := FinalizeResult{
		Pitch: res.Pitch, Height: res.Height, Depth: res.Depth,
		SurfSize:   res.SurfSize,
		PixelPitch: res.Pitch, PixelHeight: res.Height,

		BaseAlign: res.BaseAlign, PitchAlign: res.PitchAlign,
		HeightAlign: res.HeightAlign, DepthAlign: res.DepthAlign,
		BankSwapWidth: res.BankSwapWidth,
		BlockWidth:    res.BlockWidth, BlockHeight: res.BlockHeight,
	}

	if restorePixelDims {
		out.PixelPitch, out.PixelHeight = restoredW, restoredH
	}

	if in.QbStereo {
		out.EyeHeight = out.Height
		out.RightEyeOffset = out.SurfSize
		out.Height *= 2
		out.PixelHeight *= 2
		out.SurfSize *= 2
	}

	switch in.SliceSizeMode {
	case SliceSizeUncompressedBits:
		out.SliceSize = uint64(mathutil.CeilDiv(out.Height*out.Pitch*in.Bpp*in.NumSamples, 8))
	case SliceSizeSingleSlice:
		out.SliceSize = out.SurfSize
	default:
		if in.IsVolume {
			out.SliceSize = out.SurfSize
		} else {
			depth := uint64(out.Depth)
			if depth == 0 {
				depth = 1
			}
			out.SliceSize = out.SurfSize / depth
			if in.Slice == in.NumSlices-1 && out.Depth > in.NumSlices {
				out.SliceSize += out.SliceSize * uint64(out.Depth-in.NumSlices)
			}
		}
	}

	out.PitchTileMax = int64(out.Pitch/8) - 1
	out.HeightTileMax = int64(out.Height/8) - 1
	out.SliceTileMax = int64(out.Pitch*(out.Height/64)) - 1

	return out
}
