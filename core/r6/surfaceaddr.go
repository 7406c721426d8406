package r6

import "github.com/r6xxaddr/addrlib/core"

// computeSurfaceAddr adapts MicroTiledAddr/MacroTiledAddr to the
// Capabilities dispatch signature, routing on whether the tile mode is
// macro-tiled.
func computeSurfaceAddr(req core.SurfaceAddrRequest) (core.SurfaceAddrResult, core.Result) {
	if req.X >= req.Pitch || req.Y >= req.Height || req.Sample > 7 {
		return core.SurfaceAddrResult{}, core.ResultInvalidParams
	}
	if req.PipeSwizzle >= uint32(req.HwCfg.Pipes) || req.BankSwizzle >= uint32(req.HwCfg.Banks) {
		return core.SurfaceAddrResult{}, core.ResultInvalidParams
	}

	if core.IsMacroTiled(req.TileMode) {
		samples := req.NumSamples
		if samples == 0 {
			samples = 1
		}
		slicesPerTile := tileSlices(req.Bpp, samples, core.IsThick(req.TileMode), req.HwCfg.SplitSizeBytes)
		bw := BankSwapWidth(req.TileMode, req.Bpp, samples, req.Pitch, req.HwCfg, slicesPerTile)
		return MacroTiledAddr(MacroAddrInput{
			X: req.X, Y: req.Y, Slice: req.Slice, Sample: req.Sample, NumSamples: samples,
			Pitch: req.Pitch, Height: req.Height, NumSlices: req.NumSlices, Bpp: req.Bpp,
			TileMode: req.TileMode, TileType: req.TileType, HwCfg: req.HwCfg,
			PipeSwizzle: req.PipeSwizzle, BankSwizzle: req.BankSwizzle, BankSwapWidth: bw,
		}), core.ResultOK
	}

	return MicroTiledAddr(MicroAddrInput{
		X: req.X, Y: req.Y, Slice: req.Slice, Pitch: req.Pitch, Height: req.Height,
		Bpp: req.Bpp, TileMode: req.TileMode, TileType: req.TileType,
	}), core.ResultOK
}
