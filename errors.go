package addrlib

import "github.com/r6xxaddr/addrlib/core"

// Result is the closed error taxonomy every public entry point returns.
// It is core.Result under the hood — the base engine needs the same
// taxonomy internally and can't import this package, so this is a thin
// re-export rather than a second definition.
type Result = core.Result

const (
	ResultOK              = core.ResultOK
	ResultGenericFailure  = core.ResultGenericFailure
	ResultOutOfMemory     = core.ResultOutOfMemory
	ResultInvalidParams   = core.ResultInvalidParams
	ResultNotSupported    = core.ResultNotSupported
	ResultNotImplemented  = core.ResultNotImplemented
	ResultSizeMismatch    = core.ResultSizeMismatch
)
