package core

import "testing"

func TestLinearAddr(t *testing.T) {
	for _, c := range [...]struct {
		in       LinearAddrInput
		wantByte uint64
		wantBit  uint32
	}{
		{
			in:       LinearAddrInput{X: 0, Y: 0, Slice: 0, Sample: 0, Pitch: 128, Height: 1, NumSlices: 1, Bpp: 32},
			wantByte: 0, wantBit: 0,
		},
		{
			// y=1, pitch=128, bpp=32 -> bits = 1*128*32 = 4096 -> byte 512.
			in:       LinearAddrInput{X: 0, Y: 1, Slice: 0, Sample: 0, Pitch: 128, Height: 2, NumSlices: 1, Bpp: 32},
			wantByte: 512, wantBit: 0,
		},
		{
			// x=1, bpp=1 -> bits = 1, byte 0, bitPos 1.
			in:       LinearAddrInput{X: 1, Y: 0, Slice: 0, Sample: 0, Pitch: 8, Height: 1, NumSlices: 1, Bpp: 1},
			wantByte: 0, wantBit: 1,
		},
		{
			// sample=1 folds in a full slice-plane offset.
			in:       LinearAddrInput{X: 0, Y: 0, Slice: 0, Sample: 1, Pitch: 64, Height: 1, NumSlices: 1, Bpp: 32},
			wantByte: 64 * 1 * 32 / 8, wantBit: 0,
		},
	} {
		have, bit := LinearAddr(c.in)
		if have != c.wantByte || bit != c.wantBit {
			t.Fatalf("LinearAddr(%+v):\nhave {%d, bit %d}\nwant {%d, bit %d}", c.in, have, bit, c.wantByte, c.wantBit)
		}
	}
}
