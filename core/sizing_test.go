package core

import "testing"

func TestFinalizeSizingStereoDoubling(t *testing.T) {
	res := SurfaceInfoResult{Pitch: 128, Height: 64, Depth: 1, SurfSize: 128 * 64 * 4}
	out := FinalizeSizing(res, FinalizeInput{Bpp: 32, NumSamples: 1, NumSlices: 1, QbStereo: true}, false, 0, 0)
	if out.EyeHeight != 64 {
		t.Fatalf("EyeHeight: have %d want 64", out.EyeHeight)
	}
	if out.RightEyeOffset != res.SurfSize {
		t.Fatalf("RightEyeOffset: have %d want %d", out.RightEyeOffset, res.SurfSize)
	}
	if out.Height != 128 || out.SurfSize != res.SurfSize*2 {
		t.Fatalf("stereo doubling: have {h:%d surfSize:%d} want {h:128 surfSize:%d}", out.Height, out.SurfSize, res.SurfSize*2)
	}
}

func TestFinalizeSizingSliceSizeModes(t *testing.T) {
	res := SurfaceInfoResult{Pitch: 64, Height: 64, Depth: 4, SurfSize: 64 * 64 * 4 * 4}

	volOut := FinalizeSizing(res, FinalizeInput{Bpp: 32, NumSamples: 1, NumSlices: 4, IsVolume: true}, false, 0, 0)
	if volOut.SliceSize != res.SurfSize {
		t.Fatalf("volume SliceSize: have %d want %d", volOut.SliceSize, res.SurfSize)
	}

	planeOut := FinalizeSizing(res, FinalizeInput{Bpp: 32, NumSamples: 1, NumSlices: 4}, false, 0, 0)
	if planeOut.SliceSize != res.SurfSize/4 {
		t.Fatalf("plane SliceSize: have %d want %d", planeOut.SliceSize, res.SurfSize/4)
	}

	bitsOut := FinalizeSizing(res, FinalizeInput{Bpp: 32, NumSamples: 1, NumSlices: 4, SliceSizeMode: SliceSizeUncompressedBits}, false, 0, 0)
	want := uint64(res.Height * res.Pitch * 32 * 1 / 8)
	if bitsOut.SliceSize != want {
		t.Fatalf("bits SliceSize: have %d want %d", bitsOut.SliceSize, want)
	}
}

func TestFinalizeSizingTileMax(t *testing.T) {
	res := SurfaceInfoResult{Pitch: 64, Height: 128, Depth: 1, SurfSize: 1}
	out := FinalizeSizing(res, FinalizeInput{Bpp: 32, NumSamples: 1, NumSlices: 1}, false, 0, 0)
	if out.PitchTileMax != 64/8-1 {
		t.Fatalf("PitchTileMax: have %d want %d", out.PitchTileMax, 64/8-1)
	}
	if out.HeightTileMax != 128/8-1 {
		t.Fatalf("HeightTileMax: have %d want %d", out.HeightTileMax, 128/8-1)
	}
	if out.SliceTileMax != int64(64*(128/64))-1 {
		t.Fatalf("SliceTileMax: have %d want %d", out.SliceTileMax, int64(64*(128/64))-1)
	}
}
