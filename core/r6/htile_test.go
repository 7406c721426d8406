package r6

import (
	"testing"

	"github.com/r6xxaddr/addrlib/core"
)

func TestComputeHtileBytesLinearScenario(t *testing.T) {
	cfg := core.HwConfig{Pipes: 4, PipeInterleaveBytes: 256}
	res := ComputeHtileBytes(core.HtileRequest{
		Pitch: 1024, Height: 1024, Slices: 1, IsLinear: true,
		BlockWidth: 8, BlockHeight: 8, HwCfg: cfg,
	})
	if res.Bpp != 32 {
		t.Fatalf("ComputeHtileBytes.Bpp: have %d want 32", res.Bpp)
	}
	if res.MacroW != 128 || res.MacroH != 32 {
		t.Fatalf("ComputeHtileBytes macro dims: have {%d %d} want {128 32}", res.MacroW, res.MacroH)
	}
	if res.Pitch != 1024 || res.Height != 1024 {
		t.Fatalf("ComputeHtileBytes padded dims: have {%d %d} want {1024 1024}", res.Pitch, res.Height)
	}
	if res.BaseAlign != 8192 {
		t.Fatalf("ComputeHtileBytes.BaseAlign: have %d want 8192", res.BaseAlign)
	}
	if res.Bytes%uint64(res.BaseAlign) != 0 {
		t.Fatalf("ComputeHtileBytes.Bytes: have %d, expected multiple of BaseAlign %d", res.Bytes, res.BaseAlign)
	}
}

func TestComputeHtileBppBlockCombinations(t *testing.T) {
	for _, c := range [...]struct {
		bw, bh int
		want   uint32
	}{
		{8, 8, 32},
		{4, 8, 64},
		{8, 4, 64},
		{4, 4, 128},
	} {
		if got := ComputeHtileBpp(c.bw, c.bh); got != c.want {
			t.Fatalf("ComputeHtileBpp(%d,%d): have %d want %d", c.bw, c.bh, got, c.want)
		}
	}
}
