// Package core implements the chip-family-agnostic half of the address
// engine: tile-mode classification, mip-level and dimension-padding
// policy, the linear address formula, the intra-micro-tile pixel
// permutation, and the top-level request dispatch that delegates
// hardware-specific decisions to a registered Capabilities record.
package core

// TileMode identifies a surface's memory layout family.
type TileMode int

const (
	TMLinearGeneral TileMode = iota
	TMLinearAligned
	TM1DTiledThin1
	TM1DTiledThick
	TM2DTiledThin1
	TM2DTiledThin2
	TM2DTiledThin4
	TM2DTiledThick
	TM2BTiledThin1
	TM2BTiledThin2
	TM2BTiledThin4
	TM2BTiledThick
	TM3DTiledThin1
	TM3DTiledThick
	TM3BTiledThin1
	TM3BTiledThick
	TM2DTiledXThick
	TM3DTiledXThick
)

// thickness holds the z-extent (in pixels) of a micro tile for each
// TileMode, per the taxonomy table.
var thickness = map[TileMode]int{
	TMLinearGeneral: 1,
	TMLinearAligned: 1,
	TM1DTiledThin1:  1,
	TM1DTiledThick:  4,
	TM2DTiledThin1:  1,
	TM2DTiledThin2:  1,
	TM2DTiledThin4:  1,
	TM2DTiledThick:  4,
	TM2BTiledThin1:  1,
	TM2BTiledThin2:  1,
	TM2BTiledThin4:  1,
	TM2BTiledThick:  4,
	TM3DTiledThin1:  1,
	TM3DTiledThick:  4,
	TM3BTiledThin1:  1,
	TM3BTiledThick:  4,
	TM2DTiledXThick: 8,
	TM3DTiledXThick: 8,
}

// Thickness returns the micro-tile z-extent of m: 1, 4 or 8.
func Thickness(m TileMode) int {
	if t, ok := thickness[m]; ok {
		return t
	}
	return 1
}

// IsMacroTiled reports whether m belongs to the 2D/2B/3D/3B/XThick
// macro-tiled family (the inclusive range 2D_THIN1 .. 3D_XTHICK).
func IsMacroTiled(m TileMode) bool {
	return m >= TM2DTiledThin1 && m <= TM3DTiledXThick
}

// IsThick reports whether m has thickness greater than 1.
func IsThick(m TileMode) bool {
	return Thickness(m) > 1
}

// IsBankSwapped reports whether m is one of the "B" (bank-swapped
// macro-tiled) modes.
func IsBankSwapped(m TileMode) bool {
	switch m {
	case TM2BTiledThin1, TM2BTiledThin2, TM2BTiledThin4, TM2BTiledThick,
		TM3BTiledThin1, TM3BTiledThick:
		return true
	}
	return false
}

// Is3D reports whether m is one of the 3D/3B (volume) modes.
func Is3D(m TileMode) bool {
	switch m {
	case TM3DTiledThin1, TM3DTiledThick, TM3BTiledThin1, TM3BTiledThick, TM3DTiledXThick:
		return true
	}
	return false
}

// ConvertToNonBankSwapped maps a "B" mode to its non-bank-swapped "D"
// equivalent, and is the identity for every other mode.
func ConvertToNonBankSwapped(m TileMode) TileMode {
	switch m {
	case TM2BTiledThin1:
		return TM2DTiledThin1
	case TM2BTiledThin2:
		return TM2DTiledThin2
	case TM2BTiledThin4:
		return TM2DTiledThin4
	case TM2BTiledThick:
		return TM2DTiledThick
	case TM3BTiledThin1:
		return TM3DTiledThin1
	case TM3BTiledThick:
		return TM3DTiledThick
	}
	return m
}

// MacroAspectRatio returns the macro-tile aspect ratio for m, per
// this family's hardware layout.
func MacroAspectRatio(m TileMode) int {
	switch m {
	case TM2DTiledThin2, TM2BTiledThin2:
		return 2
	case TM2DTiledThin4, TM2BTiledThin4:
		return 4
	default:
		return 1
	}
}

// Rotation returns the macro-tile bank/pipe rotation for m, used by both
// tile-mode degradation (the 3D→2D demotion test) and the macro-tiled
// address formula.
func Rotation(m TileMode, pipes, banks int) int {
	switch {
	case m == TM2DTiledThin1 || m == TM2DTiledThin2 || m == TM2DTiledThin4 ||
		m == TM2DTiledThick || m == TM2DTiledXThick ||
		m == TM2BTiledThin1 || m == TM2BTiledThin2 || m == TM2BTiledThin4 || m == TM2BTiledThick:
		return pipes * (banks/2 - 1)
	case Is3D(m):
		if pipes >= 4 {
			return pipes/2 - 1
		}
		return 1
	default:
		return 0
	}
}

// TileType selects which intra-micro-tile pixel permutation applies.
type TileType int

const (
	TTDisplayable TileType = iota
	TTNonDisplayable
	TTDepthSampleOrder
	TTThick
)

// GetTileType derives the TileType a request should use from whether its
// surface is a depth surface. This family never produces
// TTDepthSampleOrder or TTThick on its own — those are only meaningful
// as caller-supplied overrides via the TileType field of
// SurfaceInfoRequest or SurfaceAddrRequest.
func GetTileType(isDepth bool) TileType {
	if isDepth {
		return TTNonDisplayable
	}
	return TTDisplayable
}
