package backend

import (
	"errors"
	"fmt"
)

// ErrNotBuilt reports that the native GSL bindings were not linked into the
// current binary (CGO disabled or Windows build).
var ErrNotBuilt = errors.New("gsl/internal/backend: native bindings not built")

// Code is a GSL status code as defined in gsl_errno.h. The zero value is
// Success. The binding translates every nonzero status it receives from the
// library into an *Error carrying the corresponding Code; it never defines
// categories of its own.
type Code int

// The complete GSL error enumeration.
const (
	Success  Code = 0
	Failure  Code = -1
	Continue Code = -2 // iteration has not converged

	EDom     Code = 1  // input domain error
	ERange   Code = 2  // output range error
	EFault   Code = 3  // invalid pointer
	EInval   Code = 4  // invalid argument
	EFailed  Code = 5  // generic failure
	EFactor  Code = 6  // factorization failed
	ESanity  Code = 7  // sanity check failed
	ENoMem   Code = 8  // malloc failed
	EBadFunc Code = 9  // problem with user-supplied function
	ERunAway Code = 10 // iterative process is out of control
	EMaxIter Code = 11 // exceeded max number of iterations
	EZeroDiv Code = 12 // tried to divide by zero
	EBadTol  Code = 13 // user specified an invalid tolerance
	ETol     Code = 14 // failed to reach the specified tolerance
	EUndrflw Code = 15 // underflow
	EOvrflw  Code = 16 // overflow
	ELoss    Code = 17 // loss of accuracy
	ERound   Code = 18 // failed because of roundoff error
	EBadLen  Code = 19 // matrix, vector lengths are not conformant
	ENotSqr  Code = 20 // matrix not square
	ESing    Code = 21 // apparent singularity detected
	EDiverge Code = 22 // integral or series is divergent
	EUnsup   Code = 23 // requested feature is not supported by the hardware
	EUnimpl  Code = 24 // requested feature not (yet) implemented
	ECache   Code = 25 // cache limit exceeded
	ETable   Code = 26 // table limit exceeded
	ENoProg  Code = 27 // iteration is not making progress towards solution
	ENoProgJ Code = 28 // jacobian evaluations are not improving the solution
	ETolF    Code = 29 // cannot reach the specified tolerance in F
	ETolX    Code = 30 // cannot reach the specified tolerance in X
	ETolG    Code = 31 // cannot reach the specified tolerance in gradient
	EOF      Code = 32 // end of file
)

// strerrorText mirrors gsl_strerror so that error messages are available
// even when the native library is not linked.
var strerrorText = map[Code]string{
	Success:  "success",
	Failure:  "failure",
	Continue: "iteration has not converged",
	EDom:     "input domain error",
	ERange:   "output range error",
	EFault:   "invalid pointer",
	EInval:   "invalid argument supplied by user",
	EFailed:  "generic failure",
	EFactor:  "factorization failed",
	ESanity:  "sanity check failed - shouldn't happen",
	ENoMem:   "malloc failed",
	EBadFunc: "problem with user-supplied function",
	ERunAway: "iterative process is out of control",
	EMaxIter: "exceeded max number of iterations",
	EZeroDiv: "tried to divide by zero",
	EBadTol:  "specified tolerance is invalid or theoretically unattainable",
	ETol:     "failed to reach the specified tolerance",
	EUndrflw: "underflow",
	EOvrflw:  "overflow",
	ELoss:    "loss of accuracy",
	ERound:   "roundoff error",
	EBadLen:  "matrix/vector sizes are not conformant",
	ENotSqr:  "matrix not square",
	ESing:    "singularity or extremely bad function behavior detected",
	EDiverge: "integral or series is divergent",
	EUnsup:   "the required feature is not supported by this hardware platform",
	EUnimpl:  "the requested feature is not (yet) implemented",
	ECache:   "cache limit exceeded",
	ETable:   "table limit exceeded",
	ENoProg:  "iteration is not making progress towards solution",
	ENoProgJ: "jacobian evaluations are not improving the solution",
	ETolF:    "cannot reach the specified tolerance in F",
	ETolX:    "cannot reach the specified tolerance in X",
	ETolG:    "cannot reach the specified tolerance in gradient",
	EOF:      "end of file",
}

// String returns the gsl_strerror text for the code.
func (c Code) String() string {
	if s, ok := strerrorText[c]; ok {
		return s
	}
	return fmt.Sprintf("unknown error code %d", int(c))
}

// Transpose selects the operation applied to a matrix argument of a BLAS
// call. Values match the CBLAS_TRANSPOSE enumeration.
type Transpose int

const (
	NoTrans   Transpose = 111
	Trans     Transpose = 112
	ConjTrans Transpose = 113
)

// Mode selects the evaluation accuracy of a special function, matching
// gsl_mode_t.
type Mode uint

const (
	PrecDouble Mode = 0
	PrecSingle Mode = 1
	PrecApprox Mode = 2
)

// Gauss-Kronrod rule keys for adaptive integration, matching the
// GSL_INTEG_GAUSS constants.
const (
	Gauss15 = 1
	Gauss21 = 2
	Gauss31 = 3
	Gauss41 = 4
	Gauss51 = 5
	Gauss61 = 6
)

// Step size adjustment outcomes reported by control objects, matching the
// GSL_ODEIV_HADJ constants.
const (
	HAdjDec = -1
	HAdjNil = 0
	HAdjInc = 1
)

// Error is the error returned for any nonzero GSL status. Op names the
// native routine that reported the status, without the gsl_ prefix.
type Error struct {
	Op   string
	Code Code
}

func (e *Error) Error() string {
	return fmt.Sprintf("gsl: %s: %s (code %d)", e.Op, e.Code, int(e.Code))
}

// statusErr translates a raw status into nil or an *Error.
func statusErr(op string, status int) error {
	if Code(status) == Success {
		return nil
	}
	return &Error{Op: op, Code: Code(status)}
}
