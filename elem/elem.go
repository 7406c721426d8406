// Package elem maps pixel/element formats to their storage size and
// expansion behavior, and applies or reverses the width/height/bpp
// transformations those formats require before tile-address arithmetic
// can treat every format as a plain array of same-sized elements.
package elem

import "fmt"

// Format identifies a pixel/element format recognized by the address
// engine. Grouped the way driver.PixelFmt groups color/depth formats in
// contiguous iota blocks, with a comment banner per group.
type Format int

const (
	FmtInvalid Format = iota

	// Single-component and small packed formats, 8/16 bits.
	Fmt8
	Fmt1_5_5_5
	Fmt5_6_5
	Fmt6_5_5
	Fmt8_8
	Fmt4_4_4_4
	Fmt16
	Fmt16Float
	FmtGBGR
	FmtBGRG
	Fmt4_4
	Fmt3_3_2
	Fmt5_5_5_1

	// 32-bit formats.
	Fmt8_8_8_8
	Fmt2_10_10_10
	Fmt10_11_11
	Fmt11_11_10
	Fmt16_16
	Fmt16_16Float
	Fmt32
	Fmt32Float
	Fmt24_8
	Fmt24_8Float
	Fmt8_24
	Fmt8_24Float
	Fmt10_11_11Float
	Fmt11_11_10Float
	Fmt10_10_10_2
	Fmt32As8
	Fmt32As8_8
	Fmt5_9_9_9SharedExp

	// 64-bit formats.
	Fmt16_16_16_16
	Fmt16_16_16_16Float
	Fmt32_32
	Fmt32_32Float
	FmtCtx1
	FmtX24_8_32Float // unusedBits = 24

	// 128-bit formats.
	Fmt32_32_32_32
	Fmt32_32_32_32Float

	// 1-bit packed formats, expandX = 8.
	Fmt1Reversed
	Fmt1

	// 3-component "wide" formats, expandX = 3.
	Fmt8_8_8
	Fmt16_16_16
	Fmt16_16_16Float
	Fmt32_32_32
	Fmt32_32_32Float

	// Block-compressed formats, expandX = expandY = 4.
	FmtBC1
	FmtBC2
	FmtBC3
	FmtBC4
	FmtBC5
	FmtBC6
	FmtBC7
)

// ElemMode classifies how a format's elements relate to stored bits.
type ElemMode int

const (
	Uncompressed ElemMode = iota
	Expanded
	PackedStd
	PackedRev
	PackedGBGR
	PackedBGRG
	PackedBC1
	PackedBC2
	PackedBC3
	PackedBC4
	PackedBC5
)

// Descriptor is the result of classifying a Format.
type Descriptor struct {
	Bpp        uint32 // bits per stored element
	ElemMode   ElemMode
	ExpandX    uint32
	ExpandY    uint32
	UnusedBits uint32
}

// Classify returns the storage descriptor for format.
func Classify(format Format) Descriptor {
	d := Descriptor{ExpandX: 1, ExpandY: 1}

	switch format {
	case FmtInvalid:
		d.Bpp = 0
	case Fmt8:
		d.Bpp = 8
	case Fmt1_5_5_5, Fmt5_6_5, Fmt6_5_5, Fmt8_8, Fmt4_4_4_4, Fmt16, Fmt16Float:
		d.Bpp = 16
	case FmtGBGR:
		d.ElemMode = PackedGBGR
		d.Bpp = 16
	case FmtBGRG:
		d.ElemMode = PackedBGRG
		d.Bpp = 16
	case Fmt8_8_8_8, Fmt2_10_10_10, Fmt10_11_11, Fmt11_11_10, Fmt16_16, Fmt16_16Float,
		Fmt32, Fmt32Float, Fmt24_8, Fmt24_8Float:
		d.Bpp = 32
	case Fmt16_16_16_16, Fmt16_16_16_16Float, Fmt32_32, Fmt32_32Float, FmtCtx1:
		// FmtCtx1 is classified with bpp=64 and no expansion, matching the
		// source exactly; see DESIGN.md Open Question 1.
		d.Bpp = 64
	case Fmt32_32_32_32, Fmt32_32_32_32Float:
		d.Bpp = 128
	case Fmt1Reversed:
		d.ElemMode = PackedRev
		d.ExpandX = 8
		d.Bpp = 1
	case Fmt1:
		d.ElemMode = PackedStd
		d.ExpandX = 8
		d.Bpp = 1
	case Fmt4_4, Fmt3_3_2:
		d.Bpp = 8
	case Fmt5_5_5_1:
		d.Bpp = 16
	case Fmt8_24, Fmt8_24Float, Fmt10_11_11Float, Fmt11_11_10Float, Fmt10_10_10_2,
		Fmt32As8, Fmt32As8_8, Fmt5_9_9_9SharedExp:
		d.Bpp = 32
	case FmtX24_8_32Float:
		d.Bpp = 64
		d.UnusedBits = 24
	case Fmt8_8_8:
		d.ElemMode = Expanded
		d.ExpandX = 3
		d.Bpp = 24
	case Fmt16_16_16, Fmt16_16_16Float:
		d.ElemMode = Expanded
		d.ExpandX = 3
		d.Bpp = 48
	case Fmt32_32_32, Fmt32_32_32Float:
		d.ElemMode = Expanded
		d.ExpandX = 3
		d.Bpp = 96
	case FmtBC1:
		d.ElemMode = PackedBC1
		d.ExpandX, d.ExpandY = 4, 4
		d.Bpp = 64
	case FmtBC4:
		d.ElemMode = PackedBC4
		d.ExpandX, d.ExpandY = 4, 4
		d.Bpp = 64
	case FmtBC2:
		d.ElemMode = PackedBC2
		d.ExpandX, d.ExpandY = 4, 4
		d.Bpp = 128
	case FmtBC3:
		d.ElemMode = PackedBC3
		d.ExpandX, d.ExpandY = 4, 4
		d.Bpp = 128
	case FmtBC5, FmtBC6, FmtBC7:
		d.ElemMode = PackedBC5
		d.ExpandX, d.ExpandY = 4, 4
		d.Bpp = 128
	default:
		d.Bpp = 0
	}

	return d
}

// IsBlockCompressed reports whether format is one of BC1..BC7.
func IsBlockCompressed(format Format) bool {
	return format >= FmtBC1 && format <= FmtBC7
}

func isBCnMode(m ElemMode) bool {
	switch m {
	case PackedBC1, PackedBC2, PackedBC3, PackedBC4, PackedBC5:
		return true
	}
	return false
}

// Adjust transforms bpp/width/height from their logical (decompressed,
// per-pixel) values to the values the address engine should use, given
// elemMode/expandX/expandY from Classify. Restore reverses it, except
// that packed-std/rev dims not a multiple of the expansion factor come
// back rounded up (Adjust ceil-divides them), BCn dims not a multiple of
// 4 come back rounded down (Adjust floor-divides them), and BCn bpp is
// not reconstructed.
func Adjust(m ElemMode, expandX, expandY uint32, bpp, width, height uint32) (outBpp, outWidth, outHeight uint32) {
	outBpp = bpp
	isBCn := isBCnMode(m)

	switch m {
	case Expanded:
		outBpp = bpp / expandX / expandY
	case PackedStd, PackedRev:
		outBpp = expandX * expandY * bpp
	case PackedBC1, PackedBC4:
		outBpp = 64
	case PackedBC2, PackedBC3, PackedBC5:
		outBpp = 128
	}

	outWidth, outHeight = width, height
	if expandX > 1 || expandY > 1 {
		switch {
		case m == Expanded:
			outWidth = expandX * width
			outHeight = expandY * height
		case isBCn:
			outWidth = width / expandX
			outHeight = height / expandY
		default:
			outWidth = (width + expandX - 1) / expandX
			outHeight = (height + expandY - 1) / expandY
		}
		outWidth = max1(outWidth)
		outHeight = max1(outHeight)
	}

	return
}

// Restore reverses Adjust. For block-compressed formats, bpp is not
// reconstructed to the format's true per-pixel value — it remains at the
// packed 64/128 value Adjust set, per DESIGN.md Open Question 2. Callers
// must not depend on a lossless round trip of bpp for BCn formats.
func Restore(m ElemMode, expandX, expandY uint32, bpp, width, height uint32) (outBpp, outWidth, outHeight uint32) {
	outBpp = bpp

	switch m {
	case Expanded:
		outBpp = expandX * expandY * bpp
	case PackedStd, PackedRev:
		outBpp = bpp / expandX / expandY
	case PackedBC1, PackedBC4:
		outBpp = 64
	case PackedBC2, PackedBC3, PackedBC5:
		outBpp = 128
	}

	outWidth, outHeight = width, height
	if expandX > 1 || expandY > 1 {
		if m == Expanded {
			outWidth /= expandX
			outHeight /= expandY
		} else {
			outWidth *= expandX
			outHeight *= expandY
		}
	}
	outWidth = max1(outWidth)
	outHeight = max1(outHeight)

	return
}

func max1(x uint32) uint32 {
	if x < 1 {
		return 1
	}
	return x
}

func (f Format) String() string {
	return fmt.Sprintf("Format(%d)", int(f))
}
