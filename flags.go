package addrlib

// SurfaceFlags is a bit field of per-surface flags, one named constant
// per bit in the driver.Usage/driver.FInternal single-bit-constant style.
type SurfaceFlags uint32

const (
	FlagColor SurfaceFlags = 1 << iota
	FlagDepth
	FlagStencil
	FlagTexture
	FlagCube
	FlagVolume
	FlagFmask
	FlagCubeAsArray
	FlagCompressZ
	FlagLinearWA
	FlagOverlay
	FlagNoStencil
	FlagInputBaseMap
	FlagDisplay
	FlagOpt4Space
	FlagPrt
	FlagQbStereo
	FlagPow2Pad
)

func (f SurfaceFlags) Has(bit SurfaceFlags) bool { return f&bit != 0 }

// CreateFlags is a bit field of the Create-time feature flags.
type CreateFlags uint32

const (
	CreateForceLinearAligned CreateFlags = 1 << iota
	CreateNoCubeMipSlicesPad
	// CreateSliceSizeComputingLow/High together form the two-bit
	// sliceSizeComputing selector (0=pitch*depth, 1=uncompressed-bits
	// accounting, 2=single-slice).
	CreateSliceSizeComputingLow
	CreateSliceSizeComputingHigh
	CreateFillSizeFields
	CreateUseTileIndex
	CreateUseTileCaps
)

func (f CreateFlags) Has(bit CreateFlags) bool { return f&bit != 0 }

// SliceSizeComputing extracts the two-bit sliceSizeComputing selector
// from f.
func (f CreateFlags) SliceSizeComputing() int {
	v := 0
	if f.Has(CreateSliceSizeComputingLow) {
		v |= 1
	}
	if f.Has(CreateSliceSizeComputingHigh) {
		v |= 2
	}
	return v
}
