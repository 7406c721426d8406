package r6

import "github.com/r6xxaddr/addrlib/core"

// setupTileCfg is a no-op, matching the source: the tile-index lookup
// path exists but does nothing observable for this family, so
// UseTileIndex has no effect here. Preserved rather than omitted so that
// absence-of-effect is documented rather than silently unreachable.
func setupTileCfg(tileIndex int) core.Result {
	return core.ResultOK
}

func init() {
	core.RegisterFamily(FamilyName, core.Capabilities{
		InitGlobalParams:        InitGlobalParams,
		ConvertChipFamily:       ConvertChipFamily,
		ComputeMipLevelTileMode: computeMipLevelTileMode,
		ComputeSurfaceInfo:      computeSurfaceInfo,
		ComputeSurfaceAddr:      computeSurfaceAddr,
		SetupTileCfg:            setupTileCfg,
		ExtractBankPipeSwizzle:  ExtractBankPipeSwizzle,
		ComputeHtileBpp:         ComputeHtileBpp,
		ComputeHtileBaseAlign:   ComputeHtileBaseAlign,
		ComputeHtileBytes:       ComputeHtileBytes,
		ComputeSliceTileSwizzle: ComputeSliceTileSwizzle,
	})
}
