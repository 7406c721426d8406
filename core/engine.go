package core

import (
	"github.com/pkg/errors"
	"github.com/r6xxaddr/addrlib/elem"
)

// EngineFlags mirrors the Create-time feature flags of the ABI-drift convention that
// the base engine itself consults (as opposed to flags a family's
// Capabilities functions consult on their own).
type EngineFlags uint32

const (
	FlagForceLinearAligned EngineFlags = 1 << iota
	FlagOptimalBankSwap
	FlagNo1DTiledMSAA
	FlagNoCubeMipSlicesPad
	FlagFillSizeFields
	FlagUseTileIndex
	FlagUseTileCaps
)

func (f EngineFlags) has(bit EngineFlags) bool { return f&bit != 0 }

// Engine is the base-engine half of a creation: one chip family's
// Capabilities record bound to one set of Create-time flags, ready to
// serve ComputeSurfaceInfo/ComputeSurfaceAddr/etc. requests. One Engine
// corresponds to one addrlib.Instance.
type Engine struct {
	Caps  Capabilities
	HwCfg HwConfig
	Flags EngineFlags
}

// NewEngine resolves regValue and chipEngine/chipFamily/chipRevision
// against the named family's Capabilities, returning a ready Engine or
// ResultNotSupported if the family rejects the identification.
func NewEngine(familyName string, chipEngine, chipFamily, chipRevision, regValue uint32, flags EngineFlags) (*Engine, Result) {
	caps, ok := LookupFamily(familyName)
	if !ok {
		return nil, ResultNotSupported
	}
	if caps.ConvertChipFamily(chipEngine, chipFamily, chipRevision) == ChipFamilyUnknown {
		return nil, ResultNotSupported
	}
	hwCfg, res := caps.InitGlobalParams(regValue)
	if res != ResultOK {
		return nil, res
	}
	if flags.has(FlagOptimalBankSwap) {
		hwCfg.OptimalBankSwap = true
	}
	return &Engine{Caps: caps, HwCfg: hwCfg, Flags: flags}, ResultOK
}

// SurfaceInfoRequestInput is everything a caller-facing ComputeSurfaceInfo
// needs before mip reduction, element adjustment and family dispatch run.
type SurfaceInfoRequestInput struct {
	Format       elem.Format
	TileMode     TileMode
	Width, Height, NumSlices uint32
	MipLevel     uint32
	NumSamples   uint32
	NumFrags     uint32
	IsDepth      bool
	IsCube       bool
	IsVolume     bool
	InputBaseMap bool
	CubeAsArray  bool
	TileType     TileType
	PadDims      PadDims
	QbStereo     bool
	SliceSizeMode SliceSizeComputing
	Slice        uint32
}

// ComputeSurfaceInfo implements the top-level validation and dispatch
// rule: mip reduction, element-descriptor adjustment (setting LinearWA
// when an expanded 3-element format lands on LINEAR_ALIGNED), the
// family's ComputeSurfaceInfo, then sizing finalization.
func (e *Engine) ComputeSurfaceInfo(in SurfaceInfoRequestInput) (FinalizeResult, TileMode, bool, Result) {
	desc := elem.Classify(in.Format)
	if desc.Bpp > 128 {
		return FinalizeResult{}, in.TileMode, false, ResultInvalidParams
	}

	w, h, slices := MipLevelDims(MipLevelInput{
		Width: in.Width, Height: in.Height, Slices: in.NumSlices,
		MipLevel: in.MipLevel, IsBlockCompressed: elem.IsBlockCompressed(in.Format),
		IsCube: in.IsCube, InputBaseMap: in.InputBaseMap,
		SkipPow2Pad: in.Format == elem.Fmt32_32_32 || in.Format == elem.Fmt32_32_32Float,
	})

	bpp, aw, ah := elem.Adjust(desc.ElemMode, desc.ExpandX, desc.ExpandY, desc.Bpp, w, h)

	linearWA := false
	tileMode := in.TileMode
	if desc.ExpandX == 3 && tileMode == TMLinearAligned {
		linearWA = true
	}

	mipReq := MipTileModeRequest{
		BaseTileMode: tileMode, Bpp: bpp, Level: in.MipLevel,
		Width: aw, Height: ah, Slices: slices,
		NumSamples: in.NumSamples, IsDepth: in.IsDepth,
		HwCfg: e.HwCfg,
	}
	if e.Caps.ComputeMipLevelTileMode != nil {
		tileMode = e.Caps.ComputeMipLevelTileMode(mipReq)
	}

	sReq := SurfaceInfoRequest{
		TileMode: tileMode, Bpp: bpp, Width: aw, Height: ah, NumSlices: slices,
		NumSamples: in.NumSamples, NumFrags: in.NumFrags, MipLevel: in.MipLevel,
		IsDepth: in.IsDepth, IsCube: in.IsCube, IsVolume: in.IsVolume,
		HwCfg: e.HwCfg, TileType: in.TileType, PadDims: in.PadDims,
	}
	res, result := e.Caps.ComputeSurfaceInfo(sReq)
	if result != ResultOK {
		return FinalizeResult{}, tileMode, linearWA, result
	}

	restorePixel := !linearWA
	var rw, rh uint32
	if restorePixel {
		_, rw, rh = elem.Restore(desc.ElemMode, desc.ExpandX, desc.ExpandY, bpp, res.Pitch, res.Height)
	}

	out := FinalizeSizing(res, FinalizeInput{
		Bpp: bpp, NumSamples: in.NumSamples, NumSlices: in.NumSlices,
		Slice: in.Slice, IsVolume: in.IsVolume, QbStereo: in.QbStereo,
		SliceSizeMode: in.SliceSizeMode,
	}, restorePixel, rw, rh)

	// The family may fall back to another mode while sizing (a thick
	// macro mode that no longer fits becomes 1D_TILED_THICK); report the
	// mode the sizes were computed for.
	return out, res.TileMode, linearWA, ResultOK
}

// ComputeSurfaceAddr dispatches directly to the family's address formula;
// the base engine adds no policy of its own here beyond the family
// lookup, since the address formula is entirely hardware-specific once
// the tile mode is known.
func (e *Engine) ComputeSurfaceAddr(req SurfaceAddrRequest) (SurfaceAddrResult, Result) {
	req.HwCfg = e.HwCfg
	if e.Caps.ComputeSurfaceAddr == nil {
		return SurfaceAddrResult{}, ResultNotImplemented
	}
	return e.Caps.ComputeSurfaceAddr(req)
}

// ExtractBankPipeSwizzle delegates to the family's base256b decomposition.
func (e *Engine) ExtractBankPipeSwizzle(base256b uint32) (SwizzleResult, Result) {
	if e.Caps.ExtractBankPipeSwizzle == nil {
		return SwizzleResult{}, ResultNotImplemented
	}
	return e.Caps.ExtractBankPipeSwizzle(SwizzleRequest{Base256b: base256b, HwCfg: e.HwCfg}), ResultOK
}

// ComputeHtileInfo delegates to the family's HTILE sizing chain.
func (e *Engine) ComputeHtileInfo(req HtileRequest) (HtileResult, Result) {
	req.HwCfg = e.HwCfg
	if e.Caps.ComputeHtileBytes == nil {
		return HtileResult{}, ResultNotImplemented
	}
	return e.Caps.ComputeHtileBytes(req), ResultOK
}

// ComputeSliceSwizzle delegates to the family's per-slice swizzle rule.
func (e *Engine) ComputeSliceSwizzle(req SliceSwizzleRequest) (uint32, Result) {
	req.HwCfg = e.HwCfg
	if e.Caps.ComputeSliceTileSwizzle == nil {
		return 0, ResultNotImplemented
	}
	return e.Caps.ComputeSliceTileSwizzle(req), ResultOK
}

// SetupTileCfg is preserved even though this family's implementation is a
// no-op, so that UseTileIndex's absence of effect on this family is
// documented rather than silently unreachable.
func (e *Engine) SetupTileCfg(tileIndex int) Result {
	if e.Caps.SetupTileCfg == nil {
		return ResultNotImplemented
	}
	return e.Caps.SetupTileCfg(tileIndex)
}

// wrapf wraps err with formatted context via pkg/errors. It is
// unexported and nothing calls it: family packages cannot reach it and
// return a bare Result, and the facade keeps its own copy for the
// debug-print detail Create emits.
func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
