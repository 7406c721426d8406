package r6

import (
	"testing"

	"github.com/r6xxaddr/addrlib/core"
)

func TestExtractBankPipeSwizzle(t *testing.T) {
	cfg := core.HwConfig{Pipes: 4, Banks: 4, PipeInterleaveBytes: 256}
	got := ExtractBankPipeSwizzle(core.SwizzleRequest{Base256b: 9, HwCfg: cfg})
	// unitsPerInterleave = 1, slot = 9, pipeSwizzle = 9%4=1, bankSwizzle = (9/4)%4=2
	if got.PipeSwizzle != 1 || got.BankSwizzle != 2 {
		t.Fatalf("ExtractBankPipeSwizzle: have %+v want {PipeSwizzle:1 BankSwizzle:2}", got)
	}
}

func TestComputeSliceTileSwizzleNonMacroIsZero(t *testing.T) {
	cfg := core.HwConfig{Pipes: 4, Banks: 4}
	got := ComputeSliceTileSwizzle(core.SliceSwizzleRequest{
		Slice: 3, TileMode: core.TM1DTiledThin1, BaseSwizzle: 5, HwCfg: cfg,
	})
	if got != 0 {
		t.Fatalf("ComputeSliceTileSwizzle(non-macro): have %d want 0", got)
	}
}

func TestComputeSliceTileSwizzleMacroAdvancesByRotation(t *testing.T) {
	cfg := core.HwConfig{Pipes: 4, Banks: 4}
	got := ComputeSliceTileSwizzle(core.SliceSwizzleRequest{
		Slice: 1, TileMode: core.TM2DTiledThin1, BaseSwizzle: 0, HwCfg: cfg,
	})
	rot := Rotation(core.TM2DTiledThin1, 4, 4)
	want := uint32(rot) % uint32(16)
	if got != want {
		t.Fatalf("ComputeSliceTileSwizzle(macro): have %d want %d", got, want)
	}
}
