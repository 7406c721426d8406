package core

import "testing"

func TestPadDimensionsPadAllAlignsEverything(t *testing.T) {
	pitch, height, slices := PadDimensions(DimPadInput{
		TileMode: TMLinearAligned,
		Pitch: 65, PitchAlign: 8,
		Height: 65, HeightAlign: 8,
		Slices: 3, SliceAlign: 4,
		PadDims: PadAll,
	}, 4)
	if pitch != 72 || height != 72 || slices != 4 {
		t.Fatalf("PadDimensions(PadAll): have (%d,%d,%d) want (72,72,4)", pitch, height, slices)
	}
}

func TestPadDimensionsPitchOnlyLeavesHeightAndSlices(t *testing.T) {
	pitch, height, slices := PadDimensions(DimPadInput{
		Pitch: 65, PitchAlign: 8,
		Height: 65, HeightAlign: 8,
		Slices: 3, SliceAlign: 4,
		PadDims: PadPitchOnly,
	}, 1)
	if pitch != 72 || height != 65 || slices != 3 {
		t.Fatalf("PadDimensions(PadPitchOnly): have (%d,%d,%d) want (72,65,3)", pitch, height, slices)
	}
}

func TestPadDimensionsThickAlwaysPadsSlicesRegardlessOfPadDims(t *testing.T) {
	_, _, slices := PadDimensions(DimPadInput{
		Pitch: 8, PitchAlign: 8,
		Height: 8, HeightAlign: 8,
		Slices: 3, SliceAlign: 4,
		PadDims: PadPitchOnly,
	}, 4)
	if slices != 4 {
		t.Fatalf("PadDimensions thick slice padding: have %d want 4", slices)
	}
}

func TestPadDimensionsCubeRoundsSlicesToPow2(t *testing.T) {
	_, _, slices := PadDimensions(DimPadInput{
		IsCube: true,
		Pitch: 8, PitchAlign: 8,
		Height: 8, HeightAlign: 8,
		Slices: 6, SliceAlign: 1,
		PadDims: PadPitchHeightSlices,
	}, 1)
	if slices != 8 {
		t.Fatalf("PadDimensions cube slice rounding: have %d want 8", slices)
	}
}

func TestPadDimensionsCubeSkipsRoundingWhenNoCubeMipSlicesPad(t *testing.T) {
	_, _, slices := PadDimensions(DimPadInput{
		IsCube: true, NoCubeMipSlicesPad: true,
		Pitch: 8, PitchAlign: 8,
		Height: 8, HeightAlign: 8,
		Slices: 6, SliceAlign: 1,
		PadDims: PadPitchHeightSlices,
	}, 1)
	if slices != 6 {
		t.Fatalf("PadDimensions NoCubeMipSlicesPad: have %d want 6 (unrounded)", slices)
	}
}

func TestAlignPitchNonPow2Align(t *testing.T) {
	if got := alignPitch(10, 3); got != 12 {
		t.Fatalf("alignPitch(10,3): have %d want 12", got)
	}
}

func TestAlignPitchZeroAlignIsIdentity(t *testing.T) {
	if got := alignPitch(17, 0); got != 17 {
		t.Fatalf("alignPitch(17,0): have %d want 17", got)
	}
}
