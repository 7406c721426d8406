package core

import "testing"

func TestThicknessKnownAndUnknownModes(t *testing.T) {
	cases := []struct {
		mode TileMode
		want int
	}{
		{TMLinearGeneral, 1},
		{TM1DTiledThick, 4},
		{TM2DTiledXThick, 8},
		{TileMode(999), 1}, // unknown mode falls back to 1.
	}
	for _, c := range cases {
		if got := Thickness(c.mode); got != c.want {
			t.Fatalf("Thickness(%v): have %d want %d", c.mode, got, c.want)
		}
	}
}

func TestIsMacroTiledRange(t *testing.T) {
	cases := []struct {
		mode TileMode
		want bool
	}{
		{TMLinearAligned, false},
		{TM1DTiledThin1, false},
		{TM2DTiledThin1, true},
		{TM2BTiledThick, true},
		{TM3DTiledXThick, true},
	}
	for _, c := range cases {
		if got := IsMacroTiled(c.mode); got != c.want {
			t.Fatalf("IsMacroTiled(%v): have %v want %v", c.mode, got, c.want)
		}
	}
}

func TestIsThickFollowsThickness(t *testing.T) {
	if IsThick(TM1DTiledThin1) {
		t.Fatalf("IsThick(1D_TILED_THIN1): have true want false")
	}
	if !IsThick(TM2DTiledThick) {
		t.Fatalf("IsThick(2D_TILED_THICK): have false want true")
	}
}

func TestIsBankSwappedOnlyBModes(t *testing.T) {
	if !IsBankSwapped(TM2BTiledThin1) {
		t.Fatalf("IsBankSwapped(2B_TILED_THIN1): have false want true")
	}
	if IsBankSwapped(TM2DTiledThin1) {
		t.Fatalf("IsBankSwapped(2D_TILED_THIN1): have true want false")
	}
}

func TestIs3DVolumeModes(t *testing.T) {
	if !Is3D(TM3DTiledThick) {
		t.Fatalf("Is3D(3D_TILED_THICK): have false want true")
	}
	if Is3D(TM2DTiledThick) {
		t.Fatalf("Is3D(2D_TILED_THICK): have true want false")
	}
}

func TestConvertToNonBankSwapped(t *testing.T) {
	cases := []struct {
		mode TileMode
		want TileMode
	}{
		{TM2BTiledThin1, TM2DTiledThin1},
		{TM2BTiledThin2, TM2DTiledThin2},
		{TM3BTiledThick, TM3DTiledThick},
		{TM2DTiledThin1, TM2DTiledThin1}, // already non-bank-swapped, identity.
	}
	for _, c := range cases {
		if got := ConvertToNonBankSwapped(c.mode); got != c.want {
			t.Fatalf("ConvertToNonBankSwapped(%v): have %v want %v", c.mode, got, c.want)
		}
	}
}

func TestMacroAspectRatio(t *testing.T) {
	cases := []struct {
		mode TileMode
		want int
	}{
		{TM2DTiledThin1, 1},
		{TM2DTiledThin2, 2},
		{TM2BTiledThin2, 2},
		{TM2DTiledThin4, 4},
	}
	for _, c := range cases {
		if got := MacroAspectRatio(c.mode); got != c.want {
			t.Fatalf("MacroAspectRatio(%v): have %d want %d", c.mode, got, c.want)
		}
	}
}

func TestRotation2DFamily(t *testing.T) {
	if got := Rotation(TM2DTiledThin1, 4, 4); got != 4 {
		t.Fatalf("Rotation(2D_TILED_THIN1, 4, 4): have %d want 4", got)
	}
}

func TestRotation3DFamilyWidePipes(t *testing.T) {
	if got := Rotation(TM3DTiledThin1, 4, 4); got != 1 {
		t.Fatalf("Rotation(3D_TILED_THIN1, 4, 4): have %d want 1", got)
	}
}

func TestRotation3DFamilyNarrowPipes(t *testing.T) {
	if got := Rotation(TM3DTiledThin1, 2, 4); got != 1 {
		t.Fatalf("Rotation(3D_TILED_THIN1, 2, 4): have %d want 1", got)
	}
}

func TestRotationDefaultFamily(t *testing.T) {
	if got := Rotation(TM1DTiledThin1, 4, 4); got != 0 {
		t.Fatalf("Rotation(1D_TILED_THIN1, 4, 4): have %d want 0", got)
	}
}

func TestGetTileType(t *testing.T) {
	if got := GetTileType(true); got != TTNonDisplayable {
		t.Fatalf("GetTileType(true): have %v want TTNonDisplayable", got)
	}
	if got := GetTileType(false); got != TTDisplayable {
		t.Fatalf("GetTileType(false): have %v want TTDisplayable", got)
	}
}
