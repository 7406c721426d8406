package r6

import (
	"github.com/r6xxaddr/addrlib/core"
	"github.com/r6xxaddr/addrlib/internal/mathutil"
)

// tileSlices returns max(1, samples / (splitSize / (8*bpp))), treating
// thick modes as if samples were 4 — the same derivation DegradeTileMode
// and the BankSwapWidth callers both need, factored into one helper (see
// SPEC_FULL.md §4.4) so no call site re-derives it independently.
func tileSlices(bpp, samples uint32, thick bool, splitSizeBytes int) uint32 {
	if thick {
		samples = 4
	}
	// One sample of a micro tile is 64 pixels * bpp bits = 8*bpp bytes.
	bytesPerSample := 8 * bpp
	if bytesPerSample == 0 {
		bytesPerSample = 1
	}
	samplesPerSplit := uint32(splitSizeBytes) / bytesPerSample
	if samplesPerSplit == 0 {
		return samples
	}
	n := samples / samplesPerSplit
	if n < 1 {
		return 1
	}
	return n
}

// Rotation computes the macro-tile bank/pipe rotation for m, delegating
// to the base engine's generic formula.
func Rotation(m core.TileMode, pipes, banks int) int {
	return core.Rotation(m, pipes, banks)
}

func demote3Dto2D(m core.TileMode) core.TileMode {
	switch m {
	case core.TM3DTiledThin1:
		return core.TM2DTiledThin1
	case core.TM3DTiledThick:
		return core.TM2DTiledThick
	case core.TM3BTiledThin1:
		return core.TM2BTiledThin1
	case core.TM3BTiledThick:
		return core.TM2BTiledThick
	}
	return m
}

// thickModeDegrade implements step 2 of the degradation tree:
// the MSAA/depth-driven demotions that don't depend on dimensions.
func thickModeDegrade(m core.TileMode, samples uint32, tileSlices uint32, isDepth bool, cfg core.HwConfig) core.TileMode {
	switch m {
	case core.TM1DTiledThin1:
		if samples > 1 {
			return core.TM2DTiledThin1
		}
	case core.TM1DTiledThick:
		if samples > 1 || isDepth {
			m = core.TM1DTiledThin1
			if samples == 2 || samples == 4 {
				return core.TM2DTiledThick
			}
			return m
		}
	case core.TM2DTiledThin2, core.TM2BTiledThin2:
		n := uint32(2)
		if n*uint32(cfg.PipeInterleaveBytes) > uint32(cfg.SplitSizeBytes) {
			if m == core.TM2BTiledThin2 {
				return core.TM2BTiledThin1
			}
			return core.TM2DTiledThin1
		}
	case core.TM2DTiledThin4, core.TM2BTiledThin4:
		n := uint32(4)
		if n*uint32(cfg.PipeInterleaveBytes) > uint32(cfg.SplitSizeBytes) {
			if m == core.TM2BTiledThin4 {
				return core.TM2BTiledThin1
			}
			return core.TM2DTiledThin1
		}
	case core.TM2DTiledThick, core.TM2BTiledThick, core.TM3DTiledThick, core.TM3BTiledThick:
		if samples > 1 || tileSlices > 1 || isDepth {
			switch m {
			case core.TM2DTiledThick:
				return core.TM2DTiledThin1
			case core.TM2BTiledThick:
				return core.TM2BTiledThin1
			case core.TM3DTiledThick:
				return core.TM3DTiledThin1
			case core.TM3BTiledThick:
				return core.TM3BTiledThin1
			}
		}
	}
	return m
}

// DegradeInput carries the per-level description DegradeTileMode reduces.
type DegradeInput struct {
	BaseTileMode core.TileMode
	Bpp          uint32
	Level        uint32
	Width, Height, Slices uint32
	NumSamples   uint32
	IsDepth      bool
	NoRecursive  bool
	HwCfg        core.HwConfig
}

// DegradeTileMode implements the tile-mode degradation tree, including
// the mip-recursion step for sub-levels: after the dimension-based
// demotions, a sub-level calls DegradeTileMode once more with
// NoRecursive=true on the demoted mode and the power-of-two-rounded
// dimensions, which re-runs the thick-mode and 3D→2D steps on it to
// finalize, matching how ComputeSurfaceMipLevelTileMode recurses once at
// the end.
func DegradeTileMode(in DegradeInput) core.TileMode {
	m := in.BaseTileMode
	thick := core.IsThick(m)
	slices := tileSlices(in.Bpp, in.NumSamples, thick, in.HwCfg.SplitSizeBytes)

	m = thickModeDegrade(m, in.NumSamples, slices, in.IsDepth, in.HwCfg)

	if core.IsMacroTiled(m) {
		rot := Rotation(m, in.HwCfg.Pipes, in.HwCfg.Banks)
		if in.HwCfg.Pipes > 0 && rot%in.HwCfg.Pipes == 0 {
			m = demote3Dto2D(m)
		}
	}

	if in.Level > 0 && !in.NoRecursive {
		bpp := in.Bpp
		if bpp%3 == 0 {
			bpp /= 3
		}
		w := mathutil.NextPow2(in.Width)
		h := mathutil.NextPow2(in.Height)
		s := mathutil.NextPow2(in.Slices)

		m = core.ConvertToNonBankSwapped(m)

		microTileBytes := uint32(core.Thickness(m)) * in.NumSamples * bpp * 8 / 8
		widthAlignFactor := uint32(1)
		if microTileBytes > 0 {
			f := uint32(in.HwCfg.PipeInterleaveBytes) / microTileBytes
			if f > 1 {
				widthAlignFactor = f
			}
		}
		macroW := uint32(8 * in.HwCfg.Banks)
		macroH := uint32(8 * in.HwCfg.Pipes)

		m = demoteUndersizedMacroTile(m, w, h, widthAlignFactor, macroW, macroH)

		if core.IsThick(m) && s < 4 {
			switch m {
			case core.TM2DTiledThick, core.TM2BTiledThick, core.TM3DTiledThick, core.TM3BTiledThick, core.TM1DTiledThick:
				m = thinEquivalent(m)
			}
		}

		return DegradeTileMode(DegradeInput{
			BaseTileMode: m, Bpp: bpp, Level: in.Level, Width: w, Height: h, Slices: s,
			NumSamples: in.NumSamples, IsDepth: in.IsDepth, NoRecursive: true, HwCfg: in.HwCfg,
		})
	}

	return m
}

func thinEquivalent(m core.TileMode) core.TileMode {
	switch m {
	case core.TM1DTiledThick:
		return core.TM1DTiledThin1
	case core.TM2DTiledThick:
		return core.TM2DTiledThin1
	case core.TM2BTiledThick:
		return core.TM2BTiledThin1
	case core.TM3DTiledThick:
		return core.TM3DTiledThin1
	case core.TM3BTiledThick:
		return core.TM3BTiledThin1
	}
	return m
}

// demoteUndersizedMacroTile implements the "if (w < wAF*macroW || h <
// macroH), demote to 1D" step of this family's hardware layout, scaled per aspect ratio for
// THIN2/THIN4 and collapsing thick macro modes to 1D_THICK.
func demoteUndersizedMacroTile(m core.TileMode, w, h, widthAlignFactor, macroW, macroH uint32) core.TileMode {
	aspect := uint32(core.MacroAspectRatio(m))
	scaledW := macroW
	scaledH := macroH
	switch aspect {
	case 2:
		scaledW /= 2
		scaledH *= 2
	case 4:
		scaledW /= 4
		scaledH *= 4
	}

	undersized := w < widthAlignFactor*scaledW || h < scaledH

	switch m {
	case core.TM2DTiledThin1, core.TM3DTiledThin1:
		if undersized {
			return core.TM1DTiledThin1
		}
	case core.TM2BTiledThin1, core.TM3BTiledThin1:
		if undersized {
			return core.TM1DTiledThin1
		}
	case core.TM2DTiledThin2, core.TM2BTiledThin2:
		if undersized {
			return core.TM1DTiledThin1
		}
	case core.TM2DTiledThin4, core.TM2BTiledThin4:
		if undersized {
			return core.TM1DTiledThin1
		}
	case core.TM2DTiledThick, core.TM3DTiledThick, core.TM2BTiledThick, core.TM3BTiledThick:
		if undersized {
			return core.TM1DTiledThick
		}
	}
	return m
}
