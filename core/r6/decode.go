// Package r6 implements the R600/R700-class hardware layer: decoding of
// the tiling configuration register, chip-family identification,
// tile-mode degradation, the three alignment formulas, bank-swap-width
// computation, the pipe/bank XOR networks, the macro- and micro-tiled
// address formulas, HTILE sizing, and swizzle extraction. It registers
// itself with the base engine's family registry on import.
package r6

import "github.com/r6xxaddr/addrlib/core"

// HtileCacheBits and MicroTilePixels are named hardware constants rather
// than inlined magic numbers, matching how the source names its own
// tiling constants.
const (
	HtileCacheBits  = 16384
	MicroTilePixels = 64 // 8x8
)

// ChipFamily values this engine recognizes. The zero value,
// core.ChipFamilyUnknown, is returned by ConvertChipFamily for anything
// outside this enumeration.
const (
	FamilyR600 core.ChipFamily = iota + 1
	FamilyRV610
	FamilyRV630
	FamilyRV670
	FamilyRV770
	FamilyCypress
	FamilyCayman
)

// FamilyName is the string RegisterFamily/LookupFamily key this engine
// registers under.
const FamilyName = "r6xx-r7xx"

// ConvertChipFamily maps a (chipEngine, chipFamily, chipRevision) triple
// to a recognized ChipFamily, or core.ChipFamilyUnknown when none match.
// The source this is ported from has no default branch here and leaves
// the result uninitialized for an unrecognized family; this port makes
// that case an explicit, checkable value instead (see DESIGN.md Open
// Question 3).
func ConvertChipFamily(chipEngine, chipFamily, chipRevision uint32) core.ChipFamily {
	switch chipFamily {
	case 0:
		return FamilyR600
	case 1:
		return FamilyRV610
	case 2:
		return FamilyRV630
	case 3:
		return FamilyRV670
	case 4:
		return FamilyRV770
	case 5:
		return FamilyCypress
	case 6:
		return FamilyCayman
	default:
		return core.ChipFamilyUnknown
	}
}

var (
	pipeTilingToPipes = [4]int{1, 2, 4, 8}
	bankTilingToBanks = [2]int{4, 8}
	groupSizeToBytes  = [2]int{256, 512}
	rowTilingToBytes  = [8]int{1024, 2048, 4096, 8192, 1024, 2048, 4096, 8192}
	bankSwapToBytes   = [4]int{128, 256, 512, 1024}
	sampleSplitToBytes = [4]int{1024, 2048, 4096, 8192}
)

// InitGlobalParams decodes the 32-bit tiling configuration register into
// an HwConfig, per the bit layout: unused:1, pipe-tiling:3,
// bank-tiling:2, group-size:2, row-tiling:3, bank-swaps:3, sample-split:2,
// backend-map:16.
func InitGlobalParams(regValue uint32) (core.HwConfig, core.Result) {
	pipeTiling := (regValue >> 1) & 0x7
	bankTiling := (regValue >> 4) & 0x3
	groupSize := (regValue >> 6) & 0x3
	rowTiling := (regValue >> 8) & 0x7
	bankSwaps := (regValue >> 11) & 0x7
	sampleSplit := (regValue >> 14) & 0x3

	if pipeTiling > 3 || bankTiling > 1 || groupSize > 1 || bankSwaps > 3 || sampleSplit > 3 {
		return core.HwConfig{}, core.ResultInvalidParams
	}

	cfg := core.HwConfig{
		Family:              FamilyR600,
		Pipes:               pipeTilingToPipes[pipeTiling],
		Banks:               bankTilingToBanks[bankTiling],
		PipeInterleaveBytes: groupSizeToBytes[groupSize],
		RowSizeBytes:        rowTilingToBytes[rowTiling],
		BankSwapSizeBytes:   bankSwapToBytes[bankSwaps],
		SplitSizeBytes:      sampleSplitToBytes[sampleSplit],
	}
	if rowTiling >= 4 {
		cfg.OptimalBankSwap = true
	}
	return cfg, core.ResultOK
}
