package r6

import (
	"testing"

	"github.com/r6xxaddr/addrlib/core"
)

func TestDegradeTileModeMacroWithDegradation(t *testing.T) {
	cfg := core.HwConfig{Pipes: 4, Banks: 4, PipeInterleaveBytes: 256, SplitSizeBytes: 2048}
	got := DegradeTileMode(DegradeInput{
		BaseTileMode: core.TM2DTiledThin1, Bpp: 32, Level: 3,
		Width: 16, Height: 16, Slices: 1, NumSamples: 1, HwCfg: cfg,
	})
	if got != core.TM1DTiledThin1 {
		t.Fatalf("DegradeTileMode(macro mip3 16x16):\nhave %v\nwant TM1DTiledThin1", got)
	}
}

func TestDegradeTileModeLevelZeroUnchanged(t *testing.T) {
	cfg := core.HwConfig{Pipes: 4, Banks: 4, PipeInterleaveBytes: 256, SplitSizeBytes: 2048}
	got := DegradeTileMode(DegradeInput{
		BaseTileMode: core.TM2DTiledThin1, Bpp: 32, Level: 0,
		Width: 256, Height: 256, Slices: 1, NumSamples: 1, HwCfg: cfg,
	})
	if got != core.TM2DTiledThin1 {
		t.Fatalf("DegradeTileMode(mip0, large): have %v want TM2DTiledThin1", got)
	}
}

func TestDegradeTileMode1DThinMSAA(t *testing.T) {
	cfg := core.HwConfig{Pipes: 4, Banks: 4, PipeInterleaveBytes: 256, SplitSizeBytes: 2048}
	got := DegradeTileMode(DegradeInput{
		BaseTileMode: core.TM1DTiledThin1, Bpp: 32, Level: 0,
		Width: 256, Height: 256, Slices: 1, NumSamples: 4, HwCfg: cfg,
	})
	if got != core.TM2DTiledThin1 {
		t.Fatalf("DegradeTileMode(1D_THIN1 MSAA): have %v want TM2DTiledThin1", got)
	}
}
