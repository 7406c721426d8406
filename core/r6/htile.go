package r6

import (
	"github.com/r6xxaddr/addrlib/core"
	"github.com/r6xxaddr/addrlib/internal/mathutil"
)

// ComputeHtileBpp implements the HTILE bpp formula, keyed by the
// depth/stencil block granularity.
func ComputeHtileBpp(blockWidth, blockHeight int) uint32 {
	w := uint32(2)
	if blockWidth == 8 {
		w = 1
	}
	h := uint32(2)
	if blockHeight == 8 {
		h = 1
	}
	return w * h * 32
}

// htileMacroDims implements the "macro dims" step of the HTILE
// sizing: a closed form for linear surfaces, and an iterative halve-width
// double-height search for tiled surfaces.
func htileMacroDims(bpp uint32, pipes int, isLinear bool) (width, height uint32) {
	if isLinear {
		return 8 * 512 / bpp, uint32(8 * pipes)
	}
	width = HtileCacheBits / bpp
	height = uint32(1)
	for width > 2*uint32(pipes)*height && width%2 == 0 {
		width /= 2
		height *= 2
	}
	return width * 8, height * uint32(8*pipes)
}

// ComputeHtileBaseAlign implements the HTILE baseAlign formula.
func ComputeHtileBaseAlign(isLinear bool, cfg core.HwConfig) uint32 {
	baseAlign := uint32(cfg.Pipes) * uint32(cfg.PipeInterleaveBytes)
	if isLinear {
		baseAlign = mathutil.Max(baseAlign, mathutil.CeilDiv(uint32(cfg.Pipes)*HtileCacheBits, 8))
	}
	return baseAlign
}

// ComputeHtileBytes implements the full HTILE sizing chain of this family's hardware layout:
// bpp, macro dims, padded pitch/height, base alignment, and the final
// surfBytes alignment.
func ComputeHtileBytes(req core.HtileRequest) core.HtileResult {
	bpp := ComputeHtileBpp(req.BlockWidth, req.BlockHeight)
	macroW, macroH := htileMacroDims(bpp, req.HwCfg.Pipes, req.IsLinear)

	pitch := mathutil.Pow2Align(req.Pitch, macroW)
	height := mathutil.Pow2Align(req.Height, macroH)

	baseAlign := ComputeHtileBaseAlign(req.IsLinear, req.HwCfg)

	rawBytes := mathutil.CeilDiv(uint64(height)*uint64(pitch)*uint64(bpp)*uint64(req.Slices), 8*64)
	padTo := uint64(req.HwCfg.Pipes) * mathutil.CeilDiv(uint64(HtileCacheBits), 8)
	surfBytes := mathutil.Pad(rawBytes, padTo)
	if req.IsLinear {
		surfBytes = mathutil.Pow2Align(surfBytes, uint64(baseAlign))
	}

	return core.HtileResult{
		Bpp: bpp, MacroW: macroW, MacroH: macroH,
		Pitch: pitch, Height: height,
		BaseAlign: baseAlign, Bytes: surfBytes,
	}
}
