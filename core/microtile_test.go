package core

import "testing"

func TestPixelIndexWithinMicroTileThick(t *testing.T) {
	// x=1 (x0=1), y=2 (y1=1), z=4 (z2=1), thickness=8 via TM2DTiledXThick.
	idx := PixelIndexWithinMicroTile(1, 2, 4, 32, TM2DTiledXThick, TTThick)
	// bits: b0=x0=1, b1=y0=0, b2=z0=0, b3=x1=0, b4=y1=1, b5=z1=0, b6=x2=0, b7=y2=0, b8=z2=1
	want := uint32(1) | 1<<4 | 1<<8
	if idx != want {
		t.Fatalf("PixelIndexWithinMicroTile(thick):\nhave %09b\nwant %09b", idx, want)
	}
}

func TestPixelIndexWithinMicroTileNonDisplayable(t *testing.T) {
	idx := PixelIndexWithinMicroTile(3, 5, 0, 32, TM1DTiledThin1, TTNonDisplayable)
	// x=3 -> x0=1,x1=1,x2=0; y=5 -> y0=1,y1=0,y2=1
	// bits: b0=x0 b1=y0 b2=x1 b3=y1 b4=x2 b5=y2
	want := uint32(1) | 1<<1 | 1<<2 | 0<<3 | 0<<4 | 1<<5
	if idx != want {
		t.Fatalf("PixelIndexWithinMicroTile(non-displayable):\nhave %06b\nwant %06b", idx, want)
	}
}

func TestPixelIndexWithinMicroTileDisplayableByBpp(t *testing.T) {
	x, y := uint32(5), uint32(6) // x0=1,x1=0,x2=1; y0=0,y1=1,y2=1
	for _, c := range [...]struct {
		bpp  uint32
		want uint32
	}{
		{8, 1 | 0<<1 | 1<<2 | 1<<3 | 0<<4 | 1<<5},
		{16, 1 | 0<<1 | 1<<2 | 0<<3 | 1<<4 | 1<<5},
		{32, 1 | 0<<1 | 0<<2 | 1<<3 | 1<<4 | 1<<5},
		{64, 1 | 0<<1 | 0<<2 | 1<<3 | 1<<4 | 1<<5},
		{128, 0 | 1<<1 | 0<<2 | 1<<3 | 1<<4 | 1<<5},
	} {
		have := PixelIndexWithinMicroTile(x, y, 0, c.bpp, TM1DTiledThin1, TTDisplayable)
		if have != c.want {
			t.Fatalf("PixelIndexWithinMicroTile(displayable, bpp=%d):\nhave %06b\nwant %06b", c.bpp, have, c.want)
		}
	}
}
