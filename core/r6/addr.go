package r6

import (
	"github.com/r6xxaddr/addrlib/core"
	"github.com/r6xxaddr/addrlib/internal/mathutil"
)

// MicroAddrInput carries the shape MicroTiledAddr needs to place a pixel
// inside a micro-tiled (non-macro) surface.
type MicroAddrInput struct {
	X, Y, Slice uint32
	Pitch, Height uint32
	Bpp         uint32
	TileMode    core.TileMode
	TileType    core.TileType
}

// MicroTiledAddr implements the micro-tiled address formula:
// microTileOffset + sliceOffset + pixelOffset/8, with no pipe/bank
// scrambling or sample splitting.
func MicroTiledAddr(in MicroAddrInput) core.SurfaceAddrResult {
	thickness := core.Thickness(in.TileMode)
	pixelIndex := core.PixelIndexWithinMicroTile(in.X, in.Y, 0, in.Bpp, in.TileMode, in.TileType)
	pixelOffset := pixelIndex * in.Bpp

	microTileBits := uint32(MicroTilePixels) * uint32(thickness) * in.Bpp
	microTileBytes := microTileBits / 8

	microX := in.X / 8
	microY := in.Y / 8
	microTilesPerRow := mathutil.CeilDiv(in.Pitch, 8)
	microTileOffset := microTileBytes * (microX + microY*microTilesPerRow)

	microTileZ := in.Slice / uint32(thickness)
	sliceBytes := mathutil.CeilDiv(in.Pitch*in.Height*uint32(thickness)*in.Bpp, 8)
	sliceOffset := microTileZ * sliceBytes

	addr := microTileOffset + sliceOffset + pixelOffset/8
	return core.SurfaceAddrResult{Addr: uint64(addr), BitPos: pixelOffset % 8}
}

// MacroAddrInput carries everything MacroTiledAddr needs to place a pixel
// inside a macro-tiled surface, including the swizzle and bank-swap
// context a given family's capability record would normally thread
// through from Engine.HwCfg/state.
type MacroAddrInput struct {
	X, Y, Slice, Sample uint32
	NumSamples  uint32
	Pitch, Height, NumSlices uint32
	Bpp         uint32
	TileMode    core.TileMode
	TileType    core.TileType
	HwCfg       core.HwConfig
	PipeSwizzle, BankSwizzle uint32
	BankSwapWidth            uint32
}

// MacroTiledAddr implements the macro-tiled address formula: the
// intra-micro-tile pixel index, sample splitting, pipe/bank XOR networks
// combined with swizzle and bank swap, macro-tile geometry, and the final
// [offset_high:bank:pipe:offset_low] bit assembly.
func MacroTiledAddr(in MacroAddrInput) core.SurfaceAddrResult {
	cfg := in.HwCfg
	thickness := core.Thickness(in.TileMode)
	pixelIndex := core.PixelIndexWithinMicroTile(in.X, in.Y, 0, in.Bpp, in.TileMode, in.TileType)
	pixelOffset := pixelIndex * in.Bpp

	samples := mathutil.Max(uint32(1), in.NumSamples)
	microTileBits := uint32(MicroTilePixels) * uint32(thickness) * in.Bpp
	sampleOffset := in.Sample * (microTileBits / samples)
	elemOffset := uint64(pixelOffset + sampleOffset)
	microTileBytes := microTileBits / 8

	var sampleSlice, numSampleSplits uint32 = 0, 1
	if int(microTileBytes) > cfg.SplitSizeBytes {
		bytesPerSample := microTileBytes / mathutil.Max(samples, 1)
		if bytesPerSample == 0 {
			bytesPerSample = 1
		}
		samplesPerSlice := uint32(cfg.SplitSizeBytes) / bytesPerSample
		if samplesPerSlice == 0 {
			samplesPerSlice = 1
		}
		numSampleSplits = mathutil.Max(uint32(1), samples/samplesPerSlice)
		tileSliceBits := uint64(microTileBytes) * 8 / uint64(numSampleSplits)
		if tileSliceBits > 0 {
			sampleSlice = uint32(elemOffset / tileSliceBits)
			elemOffset %= tileSliceBits
		}
	}

	pipe := PipeFromCoord(in.X, in.Y, cfg.Pipes)
	bank := BankFromCoord(in.X, in.Y, cfg.Pipes, cfg.Banks, cfg.OptimalBankSwap)

	rotation := Rotation(in.TileMode, cfg.Pipes, cfg.Banks)
	sliceIn := in.Slice
	if core.IsThick(in.TileMode) && core.Is3D(in.TileMode) {
		sliceIn /= 4
	}
	pipe, bank = CombineBankPipe(pipe, bank, cfg.Pipes, cfg.Banks, sampleSlice, in.PipeSwizzle, in.BankSwizzle, sliceIn, rotation)

	aspect := uint32(core.MacroAspectRatio(in.TileMode))
	macroPitch := uint32(8*cfg.Banks) / aspect
	macroHeight := aspect * uint32(8*cfg.Pipes)

	bank = ApplyBankSwap(in.TileMode, bank, in.X, macroPitch, in.BankSwapWidth, cfg.Banks)

	macroTileBytes := mathutil.CeilDiv(samples*uint32(thickness)*in.Bpp*macroHeight*macroPitch, 8)
	sliceBytes := mathutil.CeilDiv(in.Pitch*in.Height*uint32(thickness)*in.Bpp, 8)
	sliceOffset := uint64(sliceBytes) * uint64((sampleSlice+numSampleSplits*in.Slice)/uint32(thickness))

	macroTilesPerRow := mathutil.CeilDiv(in.Pitch, macroPitch)
	macroTileOffset := uint64(macroTileBytes) * uint64(in.X/macroPitch+macroTilesPerRow*(in.Y/macroHeight))

	pipeBits := mathutil.Log2Floor(mathutil.Max(uint32(cfg.Pipes), 1))
	bankBits := mathutil.Log2Floor(mathutil.Max(uint32(cfg.Banks), 1))
	offsetLowBits := mathutil.Log2Floor(mathutil.Max(uint32(cfg.PipeInterleaveBytes), 1))
	offsetLowMask := uint64(1)<<offsetLowBits - 1

	byteOffset := elemOffset / 8
	offsetLow := byteOffset & offsetLowMask
	offsetHigh := byteOffset>>offsetLowBits + (macroTileOffset+sliceOffset)/uint64(cfg.Pipes*cfg.Banks)

	addr := offsetHigh << (offsetLowBits + pipeBits + bankBits)
	addr |= uint64(bank) << (offsetLowBits + pipeBits)
	addr |= uint64(pipe) << offsetLowBits
	addr |= offsetLow

	return core.SurfaceAddrResult{Addr: addr, BitPos: uint32(elemOffset % 8)}
}
