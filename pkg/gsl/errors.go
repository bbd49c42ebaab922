package gsl

import (
	"errors"

	"github.com/ctfree/gogsl/pkg/gsl/internal/backend"
)

// Code is a GSL status code as defined in gsl_errno.h. The zero value is
// Success. Its String method returns the gsl_strerror text.
type Code = backend.Code

// Error is the error type returned by every wrapper package when a native
// call reports a nonzero status. Op names the failing GSL function.
type Error = backend.Error

// ErrNotBuilt is reported by every native call when the binding was compiled
// without cgo or on Windows, where the native library is not linked.
var ErrNotBuilt = backend.ErrNotBuilt

// The complete GSL error enumeration, re-exported from the binding core.
const (
	Success  = backend.Success
	Failure  = backend.Failure
	Continue = backend.Continue

	EDom     = backend.EDom
	ERange   = backend.ERange
	EFault   = backend.EFault
	EInval   = backend.EInval
	EFailed  = backend.EFailed
	EFactor  = backend.EFactor
	ESanity  = backend.ESanity
	ENoMem   = backend.ENoMem
	EBadFunc = backend.EBadFunc
	ERunAway = backend.ERunAway
	EMaxIter = backend.EMaxIter
	EZeroDiv = backend.EZeroDiv
	EBadTol  = backend.EBadTol
	ETol     = backend.ETol
	EUndrflw = backend.EUndrflw
	EOvrflw  = backend.EOvrflw
	ELoss    = backend.ELoss
	ERound   = backend.ERound
	EBadLen  = backend.EBadLen
	ENotSqr  = backend.ENotSqr
	ESing    = backend.ESing
	EDiverge = backend.EDiverge
	EUnsup   = backend.EUnsup
	EUnimpl  = backend.EUnimpl
	ECache   = backend.ECache
	ETable   = backend.ETable
	ENoProg  = backend.ENoProg
	ENoProgJ = backend.ENoProgJ
	ETolF    = backend.ETolF
	ETolX    = backend.ETolX
	ETolG    = backend.ETolG
	EOF      = backend.EOF
)

// CodeOf extracts the GSL status code from an error returned by any package
// in this module. It returns Success for nil and Failure for errors that do
// not carry a code (including ErrNotBuilt).
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Failure
}
