package addrlib

import (
	"unsafe"

	"github.com/r6xxaddr/addrlib/core"
)

// HtileInfoInput describes the depth surface whose hierarchical-tile
// metadata buffer ComputeHtileInfo should size.
type HtileInfoInput struct {
	Size uint32

	Pitch, Height, Slices uint32
	IsLinear              bool
	BlockWidth            int
	BlockHeight           int
}

// HtileInfoOutput is the sized HTILE metadata buffer.
type HtileInfoOutput struct {
	Size uint32

	Bpp            uint32
	MacroW, MacroH uint32
	Pitch, Height  uint32
	BaseAlign      uint32
	Bytes          uint64
}

// NewHtileInfoInput returns an HtileInfoInput with Size pre-filled.
func NewHtileInfoInput() HtileInfoInput {
	return HtileInfoInput{Size: uint32(unsafe.Sizeof(HtileInfoInput{}))}
}

// NewHtileInfoOutput returns an HtileInfoOutput with Size pre-filled.
func NewHtileInfoOutput() HtileInfoOutput {
	return HtileInfoOutput{Size: uint32(unsafe.Sizeof(HtileInfoOutput{}))}
}

// ComputeHtileInfo sizes the HTILE metadata buffer backing a depth
// surface, given the HTILE cache's compression-block dimensions.
func (i *Instance) ComputeHtileInfo(in *HtileInfoInput) (HtileInfoOutput, Result) {
	if i == nil || i.engine == nil {
		return HtileInfoOutput{}, ResultGenericFailure
	}
	if in == nil {
		return HtileInfoOutput{}, ResultInvalidParams
	}
	if res := checkSize[HtileInfoInput](i, in.Size); res != ResultOK {
		return HtileInfoOutput{}, res
	}
	res, result := i.engine.ComputeHtileInfo(core.HtileRequest{
		Pitch: in.Pitch, Height: in.Height, Slices: in.Slices,
		IsLinear:    in.IsLinear,
		BlockWidth:  in.BlockWidth,
		BlockHeight: in.BlockHeight,
	})
	if result != ResultOK {
		return HtileInfoOutput{}, result
	}
	return HtileInfoOutput{
		Size:      uint32(unsafe.Sizeof(HtileInfoOutput{})),
		Bpp:       res.Bpp, MacroW: res.MacroW, MacroH: res.MacroH,
		Pitch: res.Pitch, Height: res.Height,
		BaseAlign: res.BaseAlign, Bytes: res.Bytes,
	}, ResultOK
}
