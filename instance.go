// Package addrlib computes the memory layout of GPU texture and
// render-buffer surfaces for an AMD R600/R700-class graphics pipeline:
// pitch/height/depth alignment, per-pixel byte addresses, bank/pipe
// swizzle extraction, and HTILE depth-metadata sizing. It performs no
// GPU access and no I/O; every entry point is a pure computation over
// caller-supplied descriptions.
package addrlib

import (
	"unsafe"

	"github.com/pkg/errors"
	"github.com/r6xxaddr/addrlib/core"
	"github.com/r6xxaddr/addrlib/core/r6"
	"github.com/r6xxaddr/addrlib/internal/alloc"
)

// Instance is an opaque handle returned by Create. Unlike the C ABI this
// library was ported from, Go callers just hold a *Instance — there is
// no separate void-pointer indirection layer.
type Instance struct {
	engine          *core.Engine
	fillSizeFields  bool
	sliceSizeMode   core.SliceSizeComputing
}

// checkSize validates have against the real size of T when fillSizeFields
// is set for this instance; a zero have is always accepted, matching a
// caller that built its request as a bare literal instead of through a
// New*Input constructor.
func checkSize[T any](i *Instance, have uint32) Result {
	if !i.fillSizeFields || have == 0 {
		return ResultOK
	}
	var zero T
	if have != uint32(unsafe.Sizeof(zero)) {
		return ResultSizeMismatch
	}
	return ResultOK
}

// Callbacks is the caller-supplied allocator pair plus debug-print hook,
// modeled as plain Go closures rather than C function pointers.
type Callbacks struct {
	Alloc      func(size uintptr) uintptr
	Free       func(ptr uintptr)
	DebugPrint func(format string, args ...interface{})
}

// CreateInput describes the chip identification, hardware register, and
// flags Create resolves into a ready Instance.
type CreateInput struct {
	Size uint32

	ChipEngine   uint32
	ChipFamily   uint32
	ChipRevision uint32
	RegValue     uint32

	CreateFlags CreateFlags
	Callbacks   Callbacks
}

// CreateOutput carries whatever Create reports back beyond the Instance
// itself — presently just the ABI-drift-checked size.
type CreateOutput struct {
	Size uint32
}

// NewCreateInput returns a CreateInput with Size pre-filled to its actual
// size, the way a caller opting into the FillSizeFields ABI-drift check
// is expected to build one.
func NewCreateInput() CreateInput {
	return CreateInput{Size: uint32(unsafe.Sizeof(CreateInput{}))}
}

// NewCreateOutput returns a CreateOutput with Size pre-filled.
func NewCreateOutput() CreateOutput {
	return CreateOutput{Size: uint32(unsafe.Sizeof(CreateOutput{}))}
}

// Create builds an Instance from in, resolving the hardware register and
// chip identification against the registered r6xx/r7xx family. The
// process-wide allocator/debug-print callbacks are established from the
// first successful call only; later calls' Callbacks fields are ignored.
// When in.CreateFlags carries CreateFillSizeFields, in.Size (and every
// later request/response struct's Size field) is checked against the
// real struct size, and every entry point on the returned Instance keeps
// enforcing it.
func Create(in *CreateInput) (*Instance, CreateOutput, Result) {
	if in == nil {
		return nil, CreateOutput{}, ResultInvalidParams
	}
	fillSizeFields := in.CreateFlags.Has(CreateFillSizeFields)
	if fillSizeFields && in.Size != 0 && in.Size != uint32(unsafe.Sizeof(CreateInput{})) {
		return nil, CreateOutput{}, ResultSizeMismatch
	}

	var flags core.EngineFlags
	if in.CreateFlags.Has(CreateForceLinearAligned) {
		flags |= core.FlagForceLinearAligned
	}
	if in.CreateFlags.Has(CreateNoCubeMipSlicesPad) {
		flags |= core.FlagNoCubeMipSlicesPad
	}
	if in.CreateFlags.Has(CreateFillSizeFields) {
		flags |= core.FlagFillSizeFields
	}
	if in.CreateFlags.Has(CreateUseTileIndex) {
		flags |= core.FlagUseTileIndex
	}
	if in.CreateFlags.Has(CreateUseTileCaps) {
		flags |= core.FlagUseTileCaps
	}
	// This family always carries noCubeMipSlicesPad.
	flags |= core.FlagNoCubeMipSlicesPad

	eng, res := core.NewEngine(r6.FamilyName, in.ChipEngine, in.ChipFamily, in.ChipRevision, in.RegValue, flags)
	if res != core.ResultOK {
		alloc.DebugPrintf("%v", wrapf(res, "addrlib: Create"))
		return nil, CreateOutput{}, res
	}

	alloc.Set(alloc.Callbacks{
		Alloc:      in.Callbacks.Alloc,
		Free:       in.Callbacks.Free,
		DebugPrint: in.Callbacks.DebugPrint,
	})

	return &Instance{
		engine:         eng,
		fillSizeFields: fillSizeFields,
		sliceSizeMode:  core.SliceSizeComputing(in.CreateFlags.SliceSizeComputing()),
	}, NewCreateOutput(), ResultOK
}

// Destroy releases i. This is where element-descriptor teardown would run
// before invoking the caller's free callback; since this port holds no
// C-visible allocations of its own, there is nothing further to release
// here beyond making i unusable.
func (i *Instance) Destroy() Result {
	if i == nil {
		return ResultGenericFailure
	}
	i.engine = nil
	return ResultOK
}

// wrapf mirrors core's internal error-wrapping helper for the facade's
// own diagnostics; the wrapped detail only ever reaches the debug-print
// callback.
func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
