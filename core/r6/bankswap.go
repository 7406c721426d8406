package r6

import (
	"github.com/r6xxaddr/addrlib/core"
	"github.com/r6xxaddr/addrlib/internal/mathutil"
)

// BankSwapWidth implements the bank-swap-width formula for
// bank-swapped modes, and returns 0 for everything else. slicesPerTile is
// the tileSlices derivation shared with tile-mode degradation (see
// SPEC_FULL.md §4.4: both call sites use the same helper).
func BankSwapWidth(m core.TileMode, bpp, samples uint32, pitch uint32, cfg core.HwConfig, slicesPerTile uint32) uint32 {
	if !core.IsBankSwapped(m) {
		return 0
	}
	aspect := uint32(core.MacroAspectRatio(m))

	swapTiles := mathutil.Max(uint32(1), uint32(cfg.BankSwapSizeBytes)/(2*bpp))
	swapWidth := swapTiles * 8 * uint32(cfg.Banks)

	if slicesPerTile == 0 {
		slicesPerTile = 1
	}
	heightBytes := samples * aspect * uint32(cfg.Pipes) * bpp / slicesPerTile
	if heightBytes == 0 {
		heightBytes = 1
	}

	swapMax := uint32(cfg.Pipes) * uint32(cfg.Banks) * uint32(cfg.RowSizeBytes) / heightBytes

	bytesPerTileSlice := samples * bpp * uint32(core.Thickness(m)) / slicesPerTile
	if bytesPerTileSlice == 0 {
		bytesPerTileSlice = 1
	}
	swapMin := uint32(cfg.PipeInterleaveBytes) * 8 * uint32(cfg.Banks) / bytesPerTileSlice

	width := mathutil.Max(swapMin, mathutil.Min(swapWidth, swapMax))
	for width >= 2*pitch && width > 1 {
		width /= 2
	}
	return width
}
