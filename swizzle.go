package addrlib

import (
	"unsafe"

	"github.com/r6xxaddr/addrlib/core"
)

// ExtractSwizzleInput carries the base256b field read back from a
// surface's tile-swizzle register.
type ExtractSwizzleInput struct {
	Size uint32

	Base256b uint32
}

// ExtractSwizzleOutput is the decomposed pipe/bank swizzle.
type ExtractSwizzleOutput struct {
	Size uint32

	PipeSwizzle uint32
	BankSwizzle uint32
}

// NewExtractSwizzleInput returns an ExtractSwizzleInput with Size
// pre-filled.
func NewExtractSwizzleInput() ExtractSwizzleInput {
	return ExtractSwizzleInput{Size: uint32(unsafe.Sizeof(ExtractSwizzleInput{}))}
}

// NewExtractSwizzleOutput returns an ExtractSwizzleOutput with Size
// pre-filled.
func NewExtractSwizzleOutput() ExtractSwizzleOutput {
	return ExtractSwizzleOutput{Size: uint32(unsafe.Sizeof(ExtractSwizzleOutput{}))}
}

// ExtractBankPipeSwizzle decomposes a surface's base256b tile-swizzle
// value into its pipe and bank components.
func (i *Instance) ExtractBankPipeSwizzle(in *ExtractSwizzleInput) (ExtractSwizzleOutput, Result) {
	if i == nil || i.engine == nil {
		return ExtractSwizzleOutput{}, ResultGenericFailure
	}
	if in == nil {
		return ExtractSwizzleOutput{}, ResultInvalidParams
	}
	if res := checkSize[ExtractSwizzleInput](i, in.Size); res != ResultOK {
		return ExtractSwizzleOutput{}, res
	}
	res, result := i.engine.ExtractBankPipeSwizzle(in.Base256b)
	if result != ResultOK {
		return ExtractSwizzleOutput{}, result
	}
	return ExtractSwizzleOutput{
		Size:        uint32(unsafe.Sizeof(ExtractSwizzleOutput{})),
		PipeSwizzle: res.PipeSwizzle,
		BankSwizzle: res.BankSwizzle,
	}, ResultOK
}

// SliceSwizzleInput carries a volume texture's per-slice swizzle request.
type SliceSwizzleInput struct {
	Size uint32

	Slice       uint32
	TileMode    TileMode
	BaseSwizzle uint32
}

// SliceSwizzleOutput is the resolved per-slice tile swizzle.
type SliceSwizzleOutput struct {
	Size uint32

	Swizzle uint32
}

// NewSliceSwizzleInput returns a SliceSwizzleInput with Size pre-filled.
func NewSliceSwizzleInput() SliceSwizzleInput {
	return SliceSwizzleInput{Size: uint32(unsafe.Sizeof(SliceSwizzleInput{}))}
}

// NewSliceSwizzleOutput returns a SliceSwizzleOutput with Size pre-filled.
func NewSliceSwizzleOutput() SliceSwizzleOutput {
	return SliceSwizzleOutput{Size: uint32(unsafe.Sizeof(SliceSwizzleOutput{}))}
}

// ComputeSliceSwizzle resolves the tile swizzle a given slice of a volume
// texture should use, rotating BaseSwizzle by the macro-tile rotation for
// TileMode.
func (i *Instance) ComputeSliceSwizzle(in *SliceSwizzleInput) (SliceSwizzleOutput, Result) {
	if i == nil || i.engine == nil {
		return SliceSwizzleOutput{}, ResultGenericFailure
	}
	if in == nil {
		return SliceSwizzleOutput{}, ResultInvalidParams
	}
	if res := checkSize[SliceSwizzleInput](i, in.Size); res != ResultOK {
		return SliceSwizzleOutput{}, res
	}
	res, result := i.engine.ComputeSliceSwizzle(core.SliceSwizzleRequest{
		Slice: in.Slice, TileMode: in.TileMode, BaseSwizzle: in.BaseSwizzle,
	})
	if result != ResultOK {
		return SliceSwizzleOutput{}, result
	}
	return SliceSwizzleOutput{Size: uint32(unsafe.Sizeof(SliceSwizzleOutput{})), Swizzle: res}, ResultOK
}
