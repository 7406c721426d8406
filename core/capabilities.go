package core

// ChipFamily identifies the GPU family/generation a Capabilities record
// was built for. The zero value means "unsupported": HwlConvertChipFamily
// never had a default branch in the original source (see DESIGN.md Open
// Question 3), so this port makes "unsupported" an explicit, representable
// value instead of leaving the family uninitialized.
type ChipFamily int

const ChipFamilyUnknown ChipFamily = 0

// HwConfig is the decoded hardware geometry a family derives from its
// configuration register.
type HwConfig struct {
	Family              ChipFamily
	Pipes               int
	Banks               int
	PipeInterleaveBytes int
	RowSizeBytes        int
	BankSwapSizeBytes   int
	SplitSizeBytes      int
	OptimalBankSwap     bool
}

// MipTileModeRequest is the input to ComputeMipLevelTileMode: the base
// tile mode plus the shape of the level being degraded to.
type MipTileModeRequest struct {
	BaseTileMode TileMode
	Bpp          uint32
	Level        uint32
	Width, Height, Slices uint32
	NumSamples   uint32
	IsDepth      bool
	NoRecursive  bool
	HwCfg        HwConfig
}

// SurfaceInfoRequest/Result mirror the public SurfaceInfoInput/Output of
// the facade package, minus the ABI-drift Size field (which belongs only
// at the exported boundary).
type SurfaceInfoRequest struct {
	TileMode     TileMode
	Bpp          uint32
	Width, Height, NumSlices uint32
	NumSamples   uint32
	NumFrags     uint32
	MipLevel     uint32
	IsDepth      bool
	IsCube       bool
	IsVolume     bool
	HwCfg        HwConfig
	TileType     TileType
	PadDims      PadDims
}

type SurfaceInfoResult struct {
	TileMode            TileMode
	Pitch, Height, Depth uint32
	SurfSize            uint64
	BaseAlign           uint32
	PitchAlign          uint32
	HeightAlign         uint32
	DepthAlign          uint32
	BankSwapWidth       uint32
	BlockWidth, BlockHeight int
}

// SurfaceAddrRequest/Result compute a single pixel's byte/bit address.
type SurfaceAddrRequest struct {
	X, Y, Slice, Sample uint32
	NumSamples          uint32
	Bpp                 uint32
	Pitch, Height       uint32
	NumSlices           uint32
	TileMode            TileMode
	TileType            TileType
	HwCfg               HwConfig
	PipeSwizzle         uint32
	BankSwizzle         uint32
}

type SurfaceAddrResult struct {
	Addr    uint64
	BitPos  uint32
}

// SwizzleRequest/Result extract a surface's base256b pipe/bank swizzle.
type SwizzleRequest struct {
	Base256b uint32
	HwCfg    HwConfig
}

type SwizzleResult struct {
	PipeSwizzle uint32
	BankSwizzle uint32
}

// HtileRequest/Result size a depth surface's hierarchical-tile metadata.
type HtileRequest struct {
	Pitch, Height, Slices uint32
	IsLinear              bool
	BlockWidth, BlockHeight int
	HwCfg                 HwConfig
}

type HtileResult struct {
	Bpp       uint32
	MacroW, MacroH uint32
	Pitch, Height  uint32
	BaseAlign uint32
	Bytes     uint64
}

// SliceSwizzleRequest asks for the tile swizzle of one slice of a
// macro-tiled surface: the base swizzle advanced by the slice's rotation.
type SliceSwizzleRequest struct {
	Slice       uint32
	TileMode    TileMode
	BaseSwizzle uint32
	HwCfg       HwConfig
}

// Capabilities is the capability record a concrete chip family plugs into
// the base engine: a struct of function fields the base engine calls
// through without knowing which family backs them. Each Engine holds
// exactly one of these, registered by RegisterFamily and resolved by
// LookupFamily.
type Capabilities struct {
	InitGlobalParams        func(regValue uint32) (HwConfig, Result)
	ConvertChipFamily       func(chipEngine, chipFamily, chipRevision uint32) ChipFamily
	ComputeMipLevelTileMode func(MipTileModeRequest) TileMode
	ComputeSurfaceInfo      func(SurfaceInfoRequest) (SurfaceInfoResult, Result)
	ComputeSurfaceAddr      func(SurfaceAddrRequest) (SurfaceAddrResult, Result)
	SetupTileCfg            func(tileIndex int) Result
	ExtractBankPipeSwizzle  func(SwizzleRequest) SwizzleResult
	ComputeHtileBpp         func(blockWidth, blockHeight int) uint32
	ComputeHtileBaseAlign   func(isLinear bool, hwCfg HwConfig) uint32
	ComputeHtileBytes       func(HtileRequest) HtileResult
	ComputeSliceTileSwizzle func(SliceSwizzleRequest) uint32
}
