package r6

import "github.com/r6xxaddr/addrlib/core"

// ExtractBankPipeSwizzle implements the base256b swizzle
// extraction: decompose a 256-byte-unit base address into its pipe and
// bank swizzle components.
func ExtractBankPipeSwizzle(req core.SwizzleRequest) core.SwizzleResult {
	cfg := req.HwCfg
	unitsPerInterleave := uint32(cfg.PipeInterleaveBytes) / 256
	if unitsPerInterleave == 0 {
		unitsPerInterleave = 1
	}
	slot := req.Base256b / unitsPerInterleave
	pipeSwizzle := slot % uint32(cfg.Pipes)
	bankSwizzle := (slot / uint32(cfg.Pipes)) % uint32(cfg.Banks)
	return core.SwizzleResult{PipeSwizzle: pipeSwizzle, BankSwizzle: bankSwizzle}
}

// ComputeSliceTileSwizzle implements the per-slice tile swizzle:
// 0 for non-macro-tiled modes, otherwise the base swizzle advanced by the
// slice's rotation and reduced mod pipes*banks.
func ComputeSliceTileSwizzle(req core.SliceSwizzleRequest) uint32 {
	if !core.IsMacroTiled(req.TileMode) {
		return 0
	}
	cfg := req.HwCfg
	thickness := uint32(core.Thickness(req.TileMode))
	rotation := Rotation(req.TileMode, cfg.Pipes, cfg.Banks)
	total := uint32(cfg.Pipes * cfg.Banks)
	if total == 0 {
		return req.BaseSwizzle
	}
	return (req.BaseSwizzle + (req.Slice/thickness)*uint32(rotation)) % total
}
