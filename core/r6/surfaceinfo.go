package r6

import (
	"github.com/r6xxaddr/addrlib/core"
	"github.com/r6xxaddr/addrlib/internal/mathutil"
)

// computeMipLevelTileMode adapts DegradeTileMode to the Capabilities
// signature the base engine dispatches through.
func computeMipLevelTileMode(req core.MipTileModeRequest) core.TileMode {
	return DegradeTileMode(DegradeInput{
		BaseTileMode: req.BaseTileMode, Bpp: req.Bpp, Level: req.Level,
		Width: req.Width, Height: req.Height, Slices: req.Slices,
		NumSamples: req.NumSamples, IsDepth: req.IsDepth, NoRecursive: req.NoRecursive,
		HwCfg: req.HwCfg,
	})
}

// computeSurfaceInfo implements the sizing rule: linear/micro-tiled
// surfaces pad dims and size directly; macro-tiled surfaces compute
// alignments, fold bank-swap width into pitchAlign, apply the R6xx
// dual-pitch-align heuristic at mip 0, then pad and size — falling back
// to 1D tiling if a thick-macro base mip no longer fits macro dims once
// padded.
func computeSurfaceInfo(req core.SurfaceInfoRequest) (core.SurfaceInfoResult, core.Result) {
	cfg := req.HwCfg
	cfg.Pipes = mathutil.Max(cfg.Pipes, 1)
	cfg.Banks = mathutil.Max(cfg.Banks, 1)
	thickness := core.Thickness(req.TileMode)

	var align AlignResult
	switch {
	case req.TileMode == core.TMLinearGeneral:
		align = LinearGeneralAlign(req.Bpp)
	case req.TileMode == core.TMLinearAligned:
		align = LinearAlignedAlign(req.Bpp, cfg)
	case core.IsMacroTiled(req.TileMode):
		align = MacroTiledAlign(req.TileMode, req.Bpp, req.NumSamples, thickness, cfg)
		bw := BankSwapWidth(req.TileMode, req.Bpp, req.NumSamples, req.Width, cfg, tileSlices(req.Bpp, req.NumSamples, thickness > 1, cfg.SplitSizeBytes))
		if bw > 0 {
			align.PitchAlign = mathutil.Max(align.PitchAlign, bw)
		}
		align.BankSwapWidth = bw
		if req.MipLevel == 0 && !req.IsDepth {
			align.PitchAlign = dualPitchAlignHeuristic(align.PitchAlign, align.MacroWidth, req.Width)
		}
	default:
		align = MicroTiledAlign(req.Bpp, req.NumSamples, thickness, cfg)
	}

	align.PitchAlign = ApplyDisplayFixup(align.PitchAlign, false)

	pitch, height, slices := core.PadDimensions(core.DimPadInput{
		TileMode: req.TileMode, IsCube: req.IsCube, CubeAsArray: false,
		Pitch: req.Width, PitchAlign: align.PitchAlign,
		Height: req.Height, HeightAlign: align.HeightAlign,
		Slices: req.NumSlices, SliceAlign: uint32(thickness),
		PadDims: req.PadDims,
	}, thickness)

	if core.IsMacroTiled(req.TileMode) && thickness > 1 {
		if pitch < align.MacroWidth || height < align.MacroHeight {
			return computeSurfaceInfo(core.SurfaceInfoRequest{
				TileMode: core.TM1DTiledThick, Bpp: req.Bpp, Width: req.Width, Height: req.Height,
				NumSlices: req.NumSlices, NumSamples: req.NumSamples, NumFrags: req.NumFrags,
				MipLevel: req.MipLevel, IsDepth: req.IsDepth, IsCube: req.IsCube, IsVolume: req.IsVolume,
				HwCfg: req.HwCfg, TileType: req.TileType, PadDims: req.PadDims,
			})
		}
	}

	surfSize := uint64(mathutil.CeilDiv(height*pitch*slices*req.Bpp*req.NumSamples, 8))

	return core.SurfaceInfoResult{
		TileMode: req.TileMode, Pitch: pitch, Height: height, Depth: slices,
		SurfSize: surfSize, BaseAlign: align.BaseAlign,
		PitchAlign: align.PitchAlign, HeightAlign: align.HeightAlign, DepthAlign: uint32(thickness),
		BankSwapWidth: align.BankSwapWidth,
	}, core.ResultOK
}

// dualPitchAlignHeuristic implements the mip-0 parity bump: when the
// requested width, rounded up to pitchAlign, spans an odd number of
// pitchAlign units, pitchAlign is bumped by one macroWidth to keep
// even/odd parity valid across the pipe/bank XOR networks.
func dualPitchAlignHeuristic(pitchAlign, macroWidth, width uint32) uint32 {
	aligned := mathutil.Pow2Align(width, pitchAlign)
	tiles := aligned / mathutil.Max(pitchAlign, 1)
	if tiles%2 != 0 {
		return pitchAlign + macroWidth
	}
	return pitchAlign
}
