package core

import "testing"

func TestMipLevelDimsBaseLevelUnrounded(t *testing.T) {
	// At mip level 0 the halve/round-to-pow2 step never runs, even for
	// non-power-of-two dimensions.
	w, h, s := MipLevelDims(MipLevelInput{
		Width: 65, Height: 65, Slices: 1,
		MipLevel: 0, InputBaseMap: true,
	})
	if w != 65 || h != 65 || s != 1 {
		t.Fatalf("MipLevelDims(base):\nhave {%d %d %d}\nwant {65 65 1}", w, h, s)
	}
}

func TestMipLevelDimsSubLevel(t *testing.T) {
	// base 16x16, mip 3 -> 16>>3 == 2, already pow2.
	w, h, s := MipLevelDims(MipLevelInput{
		Width: 16, Height: 16, Slices: 1,
		MipLevel: 3, InputBaseMap: true,
	})
	if w != 2 || h != 2 || s != 1 {
		t.Fatalf("MipLevelDims(sublevel):\nhave {%d %d %d}\nwant {2 2 1}", w, h, s)
	}
}

func TestMipLevelDimsFloorsAtOne(t *testing.T) {
	w, h, s := MipLevelDims(MipLevelInput{
		Width: 4, Height: 4, Slices: 1,
		MipLevel: 8, InputBaseMap: true,
	})
	if w != 1 || h != 1 || s != 1 {
		t.Fatalf("MipLevelDims(floor):\nhave {%d %d %d}\nwant {1 1 1}", w, h, s)
	}
}

func TestMipLevelDimsCubeKeepsSliceCount(t *testing.T) {
	_, _, s := MipLevelDims(MipLevelInput{
		Width: 64, Height: 64, Slices: 6,
		MipLevel: 2, InputBaseMap: true, IsCube: true,
	})
	// slices untouched by the >> reduction for cubes, but still rounded
	// up to a power of two afterwards.
	if s != 8 {
		t.Fatalf("MipLevelDims(cube slices):\nhave %d\nwant 8", s)
	}
}

func TestMipLevelDimsBlockCompressedPad(t *testing.T) {
	w, h, _ := MipLevelDims(MipLevelInput{
		Width: 6, Height: 6, Slices: 1,
		MipLevel: 0, InputBaseMap: true, IsBlockCompressed: true,
	})
	if w != 8 || h != 8 {
		t.Fatalf("MipLevelDims(BCn pad):\nhave {%d %d}\nwant {8 8}", w, h)
	}
}

func TestMipLevelDimsSkipPow2For3Component32(t *testing.T) {
	// mipLevel>0 so the reduction branch runs, but SkipPow2Pad leaves the
	// halved dims unrounded.
	w, h, _ := MipLevelDims(MipLevelInput{
		Width: 12, Height: 10, Slices: 1,
		MipLevel: 1, InputBaseMap: true, SkipPow2Pad: true,
	})
	if w != 6 || h != 5 {
		t.Fatalf("MipLevelDims(skip pow2):\nhave {%d %d}\nwant {6 5}", w, h)
	}
}

func TestMipLevelDimsNotInputBaseMapUnchanged(t *testing.T) {
	// InputBaseMap=false: the reduction branch never runs, even at
	// mipLevel>0, so dims pass through untouched.
	w, h, _ := MipLevelDims(MipLevelInput{
		Width: 17, Height: 17, Slices: 1,
		MipLevel: 3, InputBaseMap: false,
	})
	if w != 17 || h != 17 {
		t.Fatalf("MipLevelDims(no base map):\nhave {%d %d}\nwant {17 17}", w, h)
	}
}
