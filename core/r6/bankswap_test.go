package r6

import (
	"testing"

	"github.com/r6xxaddr/addrlib/core"
)

func TestBankSwapWidthNonBankSwappedModeIsZero(t *testing.T) {
	cfg := core.HwConfig{Pipes: 4, Banks: 4, PipeInterleaveBytes: 256, RowSizeBytes: 2048, BankSwapSizeBytes: 256}
	if got := BankSwapWidth(core.TM2DTiledThin1, 32, 1, 256, cfg, 1); got != 0 {
		t.Fatalf("BankSwapWidth(non-bank-swapped): have %d want 0", got)
	}
}

func TestBankSwapWidthBankSwappedIsHalvedBelowTwicePitch(t *testing.T) {
	cfg := core.HwConfig{Pipes: 4, Banks: 4, PipeInterleaveBytes: 256, RowSizeBytes: 2048, BankSwapSizeBytes: 256}
	got := BankSwapWidth(core.TM2BTiledThin1, 32, 1, 256, cfg, 1)
	if got == 0 {
		t.Fatalf("BankSwapWidth(bank-swapped): have 0, expected nonzero")
	}
	if got >= 2*256 {
		t.Fatalf("BankSwapWidth(bank-swapped): have %d, expected < 2*pitch (512)", got)
	}
}
