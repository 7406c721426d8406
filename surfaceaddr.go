package addrlib

import (
	"unsafe"

	"github.com/r6xxaddr/addrlib/core"
)

// SurfaceAddrInput describes the pixel whose byte/bit address
// ComputeSurfaceAddr should compute.
type SurfaceAddrInput struct {
	Size uint32

	X, Y, Slice, Sample uint32
	NumSamples          uint32
	Bpp                 uint32
	Pitch, Height       uint32
	NumSlices           uint32
	TileMode            TileMode
	TileType            TileType
	PipeSwizzle         uint32
	BankSwizzle         uint32
}

// SurfaceAddrOutput is a pixel's resolved address: a byte address plus a
// sub-byte bit position for formats under 8bpp.
type SurfaceAddrOutput struct {
	Size uint32

	Addr   uint64
	BitPos uint32
}

// NewSurfaceAddrInput returns a SurfaceAddrInput with Size pre-filled.
func NewSurfaceAddrInput() SurfaceAddrInput {
	return SurfaceAddrInput{Size: uint32(unsafe.Sizeof(SurfaceAddrInput{}))}
}

// NewSurfaceAddrOutput returns a SurfaceAddrOutput with Size pre-filled.
func NewSurfaceAddrOutput() SurfaceAddrOutput {
	return SurfaceAddrOutput{Size: uint32(unsafe.Sizeof(SurfaceAddrOutput{}))}
}

// ComputeSurfaceAddr resolves the byte/bit address of one pixel within an
// already-sized surface (as returned by a prior ComputeSurfaceInfo).
func (i *Instance) ComputeSurfaceAddr(in *SurfaceAddrInput) (SurfaceAddrOutput, Result) {
	if i == nil || i.engine == nil {
		return SurfaceAddrOutput{}, ResultGenericFailure
	}
	if in == nil {
		return SurfaceAddrOutput{}, ResultInvalidParams
	}
	if res := checkSize[SurfaceAddrInput](i, in.Size); res != ResultOK {
		return SurfaceAddrOutput{}, res
	}

	res, result := i.engine.ComputeSurfaceAddr(core.SurfaceAddrRequest{
		X: in.X, Y: in.Y, Slice: in.Slice, Sample: in.Sample, NumSamples: in.NumSamples,
		Bpp: in.Bpp, Pitch: in.Pitch, Height: in.Height,
		NumSlices:   in.NumSlices,
		TileMode:    in.TileMode,
		TileType:    in.TileType,
		PipeSwizzle: in.PipeSwizzle,
		BankSwizzle: in.BankSwizzle,
	})
	if result != ResultOK {
		return SurfaceAddrOutput{}, result
	}
	return SurfaceAddrOutput{
		Size:   uint32(unsafe.Sizeof(SurfaceAddrOutput{})),
		Addr:   res.Addr,
		BitPos: res.BitPos,
	}, ResultOK
}
