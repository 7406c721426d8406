package addrlib

import (
	"unsafe"

	"github.com/r6xxaddr/addrlib/core"
	"github.com/r6xxaddr/addrlib/elem"
)

// Format re-exports elem.Format so callers never need to import the
// internal elem package directly.
type Format = elem.Format

// TileMode re-exports core.TileMode.
type TileMode = core.TileMode

// TileType re-exports core.TileType.
type TileType = core.TileType

// PadDims re-exports core.PadDims.
type PadDims = core.PadDims

const (
	FmtInvalid            = elem.FmtInvalid
	Fmt8                  = elem.Fmt8
	Fmt8_8_8_8            = elem.Fmt8_8_8_8
	Fmt16                 = elem.Fmt16
	Fmt16Float            = elem.Fmt16Float
	Fmt32                 = elem.Fmt32
	Fmt32Float            = elem.Fmt32Float
	Fmt32_32_32_32        = elem.Fmt32_32_32_32
	Fmt32_32_32_32Float   = elem.Fmt32_32_32_32Float
	FmtBC1                = elem.FmtBC1
	FmtBC2                = elem.FmtBC2
	FmtBC3                = elem.FmtBC3
	FmtBC4                = elem.FmtBC4
	FmtBC5                = elem.FmtBC5
	FmtBC6                = elem.FmtBC6
	FmtBC7                = elem.FmtBC7
)

const (
	TMLinearGeneral  = core.TMLinearGeneral
	TMLinearAligned  = core.TMLinearAligned
	TM1DTiledThin1   = core.TM1DTiledThin1
	TM1DTiledThick   = core.TM1DTiledThick
	TM2DTiledThin1   = core.TM2DTiledThin1
	TM2DTiledThin2   = core.TM2DTiledThin2
	TM2DTiledThin4   = core.TM2DTiledThin4
	TM2DTiledThick   = core.TM2DTiledThick
	TM2BTiledThin1   = core.TM2BTiledThin1
	TM2BTiledThin2   = core.TM2BTiledThin2
	TM2BTiledThin4   = core.TM2BTiledThin4
	TM2BTiledThick   = core.TM2BTiledThick
	TM3DTiledThin1   = core.TM3DTiledThin1
	TM3DTiledThick   = core.TM3DTiledThick
	TM3BTiledThin1   = core.TM3BTiledThin1
	TM3BTiledThick   = core.TM3BTiledThick
	TM2DTiledXThick  = core.TM2DTiledXThick
	TM3DTiledXThick  = core.TM3DTiledXThick
)

const (
	TTDisplayable      = core.TTDisplayable
	TTNonDisplayable   = core.TTNonDisplayable
	TTDepthSampleOrder = core.TTDepthSampleOrder
	TTThick            = core.TTThick
)

const (
	PadAllDims           = core.PadAll
	PadPitchOnly         = core.PadPitchOnly
	PadPitchHeight       = core.PadPitchHeight
	PadPitchHeightSlices = core.PadPitchHeightSlices
)

// SliceSizeComputing re-exports core.SliceSizeComputing.
type SliceSizeComputing = core.SliceSizeComputing

const (
	SliceSizePitchTimesDepth  = core.SliceSizePitchTimesDepth
	SliceSizeUncompressedBits = core.SliceSizeUncompressedBits
	SliceSizeSingleSlice      = core.SliceSizeSingleSlice
)

// SurfaceInfoInput describes the surface ComputeSurfaceInfo should size.
type SurfaceInfoInput struct {
	Size uint32

	Format       Format
	TileMode     TileMode
	TileType     TileType
	Width        uint32
	Height       uint32
	NumSlices    uint32
	Slice        uint32
	MipLevel     uint32
	NumSamples   uint32
	NumFrags     uint32
	SurfaceFlags SurfaceFlags
	PadDims      PadDims
	SliceSizeMode SliceSizeComputing
}

// SurfaceInfoOutput is what ComputeSurfaceInfo resolves in.
type SurfaceInfoOutput struct {
	Size uint32

	TileMode       TileMode
	Pitch          uint32
	Height         uint32
	Depth          uint32
	SurfSize       uint64
	SliceSize      uint64
	BaseAlign      uint32
	PitchAlign     uint32
	HeightAlign    uint32
	DepthAlign     uint32
	BankSwapWidth  uint32
	LinearWA       bool
	BlockWidth     int
	BlockHeight    int
	EyeHeight      uint32
	RightEyeOffset uint64
}

// NewSurfaceInfoInput returns a SurfaceInfoInput with Size pre-filled.
func NewSurfaceInfoInput() SurfaceInfoInput {
	return SurfaceInfoInput{Size: uint32(unsafe.Sizeof(SurfaceInfoInput{}))}
}

// NewSurfaceInfoOutput returns a SurfaceInfoOutput with Size pre-filled.
func NewSurfaceInfoOutput() SurfaceInfoOutput {
	return SurfaceInfoOutput{Size: uint32(unsafe.Sizeof(SurfaceInfoOutput{}))}
}

// ComputeSurfaceInfo resolves a surface's tiled layout: mip-reduced
// dimensions, the (possibly-degraded) tile mode actually used, alignment
// requirements, and the total/per-slice byte sizes.
func (i *Instance) ComputeSurfaceInfo(in *SurfaceInfoInput) (SurfaceInfoOutput, Result) {
	if i == nil || i.engine == nil {
		return SurfaceInfoOutput{}, ResultGenericFailure
	}
	if in == nil {
		return SurfaceInfoOutput{}, ResultInvalidParams
	}
	if res := checkSize[SurfaceInfoInput](i, in.Size); res != ResultOK {
		return SurfaceInfoOutput{}, res
	}

	sliceSizeMode := in.SliceSizeMode
	if sliceSizeMode == SliceSizePitchTimesDepth {
		sliceSizeMode = i.sliceSizeMode
	}

	res, tileMode, linearWA, result := i.engine.ComputeSurfaceInfo(core.SurfaceInfoRequestInput{
		Format:        in.Format,
		TileMode:      in.TileMode,
		Width:         in.Width,
		Height:        in.Height,
		NumSlices:     in.NumSlices,
		MipLevel:      in.MipLevel,
		NumSamples:    in.NumSamples,
		NumFrags:      in.NumFrags,
		IsDepth:       in.SurfaceFlags.Has(FlagDepth) || in.SurfaceFlags.Has(FlagStencil),
		IsCube:        in.SurfaceFlags.Has(FlagCube),
		IsVolume:      in.SurfaceFlags.Has(FlagVolume),
		InputBaseMap:  in.SurfaceFlags.Has(FlagInputBaseMap),
		CubeAsArray:   in.SurfaceFlags.Has(FlagCubeAsArray),
		TileType:      in.TileType,
		PadDims:       in.PadDims,
		QbStereo:      in.SurfaceFlags.Has(FlagQbStereo),
		SliceSizeMode: sliceSizeMode,
		Slice:         in.Slice,
	})
	if result != ResultOK {
		return SurfaceInfoOutput{}, result
	}

	return SurfaceInfoOutput{
		Size:           uint32(unsafe.Sizeof(SurfaceInfoOutput{})),
		TileMode:       tileMode,
		Pitch:          res.Pitch,
		Height:         res.Height,
		Depth:          res.Depth,
		SurfSize:       res.SurfSize,
		SliceSize:      res.SliceSize,
		BaseAlign:      res.BaseAlign,
		PitchAlign:     res.PitchAlign,
		HeightAlign:    res.HeightAlign,
		DepthAlign:     res.DepthAlign,
		BankSwapWidth:  res.BankSwapWidth,
		LinearWA:       linearWA,
		BlockWidth:     res.BlockWidth,
		BlockHeight:    res.BlockHeight,
		EyeHeight:      res.EyeHeight,
		RightEyeOffset: res.RightEyeOffset,
	}, ResultOK
}
