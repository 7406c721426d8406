package r6

import (
	"github.com/r6xxaddr/addrlib/core"
	"github.com/r6xxaddr/addrlib/internal/mathutil"
)

// AlignResult is the common shape produced by every alignment formula:
// pitch/height/depth alignment requirements and the base alignment a
// surface's starting offset must satisfy.
type AlignResult struct {
	PitchAlign, HeightAlign, DepthAlign uint32
	BaseAlign                           uint32
	MacroWidth, MacroHeight             uint32
	BankSwapWidth                       uint32
}

// LinearGeneralAlign implements the LINEAR_GENERAL formula.
func LinearGeneralAlign(bpp uint32) AlignResult {
	pitchAlign := uint32(1)
	if bpp == 1 {
		pitchAlign = 8
	}
	return AlignResult{PitchAlign: pitchAlign, HeightAlign: 1, BaseAlign: 1}
}

// LinearAlignedAlign implements the LINEAR_ALIGNED formula.
func LinearAlignedAlign(bpp uint32, cfg core.HwConfig) AlignResult {
	pitchAlign := mathutil.Max(uint32(64), uint32(8*cfg.PipeInterleaveBytes)/bpp)
	return AlignResult{
		PitchAlign: pitchAlign, HeightAlign: 1,
		BaseAlign: uint32(cfg.PipeInterleaveBytes),
	}
}

func normalize3Component(bpp uint32) uint32 {
	if bpp%3 == 0 {
		return bpp / 3
	}
	return bpp
}

// MicroTiledAlign implements the micro-tiled (1D) formula.
func MicroTiledAlign(bpp, samples uint32, thickness int, cfg core.HwConfig) AlignResult {
	bpp = normalize3Component(bpp)
	denom := bpp * samples * uint32(thickness)
	pitchAlign := uint32(8)
	if denom > 0 {
		pitchAlign = mathutil.Max(uint32(8), uint32(cfg.PipeInterleaveBytes)/denom)
	}
	return AlignResult{
		PitchAlign: pitchAlign, HeightAlign: 8,
		BaseAlign: uint32(cfg.PipeInterleaveBytes),
	}
}

// MacroTiledAlign implements the macro-tiled (2D/2B/3D/3B)
// formula, including the R6xx-only dual-base-align bump.
func MacroTiledAlign(m core.TileMode, bpp, samples uint32, thickness int, cfg core.HwConfig) AlignResult {
	bpp = normalize3Component(bpp)
	if bpp == 3 {
		bpp = 1
	}
	aspect := uint32(core.MacroAspectRatio(m))

	macroW := uint32(8*cfg.Banks) / aspect
	macroH := aspect * uint32(8*cfg.Pipes)

	pitchAlign := macroW
	if thickness > 0 && bpp > 0 {
		factor := macroW * uint32(cfg.PipeInterleaveBytes) / (bpp * 8 * uint32(thickness) * samples)
		pitchAlign = mathutil.Max(macroW, factor)
	}
	heightAlign := macroH

	macroTileBytes := mathutil.CeilDiv(samples*bpp*macroH*macroW, 8)
	if samples == 1 {
		macroTileBytes *= 2
	}

	var baseAlign uint32
	if thickness == 1 {
		sizeBytes := mathutil.CeilDiv(samples*heightAlign*bpp*pitchAlign, 8)
		baseAlign = mathutil.Max(macroTileBytes, sizeBytes)
	} else {
		sizeBytes := mathutil.CeilDiv(4*heightAlign*bpp*pitchAlign, 8)
		baseAlign = mathutil.Max(uint32(cfg.PipeInterleaveBytes), sizeBytes)
	}

	microTileBytes := uint32(thickness) * samples * bpp * 8 / 8
	divisor := uint32(1)
	if microTileBytes > 0 {
		f := microTileBytes / uint32(cfg.SplitSizeBytes)
		if f > 1 {
			divisor = f
		}
	}
	baseAlign /= divisor

	if isDualBaseAlignNeeded(m) && macroTileBytes > 0 {
		ratio := baseAlign / macroTileBytes
		if ratio%2 != 0 {
			baseAlign += macroTileBytes
		}
	}

	return AlignResult{
		PitchAlign: pitchAlign, HeightAlign: heightAlign, BaseAlign: baseAlign,
		MacroWidth: macroW, MacroHeight: macroH,
	}
}

// isDualBaseAlignNeeded reports whether m, on this R6xx-class family,
// needs the odd/even baseAlign bump: true for every macro-tiled mode
// beyond 1D_TILED_THICK.
func isDualBaseAlignNeeded(m core.TileMode) bool {
	return core.IsMacroTiled(m)
}

// ApplyDisplayFixup implements the display-surface pitch fix-up: when the
// surface is a display surface, pitchAlign is aligned up to 32.
func ApplyDisplayFixup(pitchAlign uint32, isDisplay bool) uint32 {
	if !isDisplay {
		return pitchAlign
	}
	return mathutil.Pow2Align(pitchAlign, 32)
}
