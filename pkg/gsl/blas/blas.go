// Package blas exposes the double-precision subset of gsl_blas used with
// the vector and matrix handle types. Operand shapes are validated by the
// native library, which reports EBadLen through the returned error.
package blas

import (
	"runtime"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/internal/backend"
	"github.com/ctfree/gogsl/pkg/gsl/matrix"
	"github.com/ctfree/gogsl/pkg/gsl/vector"
)

// Transpose selects the operation applied to a matrix operand. The values
// match the CBLAS_TRANSPOSE enumeration.
type Transpose = backend.Transpose

const (
	NoTrans   = backend.NoTrans
	Trans     = backend.Trans
	ConjTrans = backend.ConjTrans
)

func freedErr(op string) error {
	return &gsl.Error{Op: op, Code: gsl.EFault}
}

// Ddot computes the scalar product x^T y.
func Ddot(x, y *vector.Vector) (float64, error) {
	if x.Handle() == nil || y.Handle() == nil {
		return 0, freedErr("blas_ddot")
	}
	r, err := backend.BlasDdot(x.Handle(), y.Handle())
	runtime.KeepAlive(x)
	runtime.KeepAlive(y)
	return r, err
}

// Dnrm2 computes the Euclidean norm ||x||_2. It returns 0 on a freed
// vector.
func Dnrm2(x *vector.Vector) float64 {
	if x.Handle() == nil {
		return 0
	}
	r := backend.BlasDnrm2(x.Handle())
	runtime.KeepAlive(x)
	return r
}

// Dasum computes the sum of absolute values of the elements of x. It
// returns 0 on a freed vector.
func Dasum(x *vector.Vector) float64 {
	if x.Handle() == nil {
		return 0
	}
	r := backend.BlasDasum(x.Handle())
	runtime.KeepAlive(x)
	return r
}

// Idamax returns the index of the element of x with the largest absolute
// value. Ties resolve to the lowest index.
func Idamax(x *vector.Vector) int {
	if x.Handle() == nil {
		return 0
	}
	i := backend.BlasIdamax(x.Handle())
	runtime.KeepAlive(x)
	return i
}

// Daxpy computes y = alpha*x + y.
func Daxpy(alpha float64, x, y *vector.Vector) error {
	if x.Handle() == nil || y.Handle() == nil {
		return freedErr("blas_daxpy")
	}
	err := backend.BlasDaxpy(alpha, x.Handle(), y.Handle())
	runtime.KeepAlive(x)
	runtime.KeepAlive(y)
	return err
}

// Dscal rescales x by alpha. Freed vectors are ignored, matching the void
// native signature.
func Dscal(alpha float64, x *vector.Vector) {
	if x.Handle() == nil {
		return
	}
	backend.BlasDscal(alpha, x.Handle())
	runtime.KeepAlive(x)
}

// Dcopy copies the elements of x into y.
func Dcopy(x, y *vector.Vector) error {
	if x.Handle() == nil || y.Handle() == nil {
		return freedErr("blas_dcopy")
	}
	err := backend.BlasDcopy(x.Handle(), y.Handle())
	runtime.KeepAlive(x)
	runtime.KeepAlive(y)
	return err
}

// Dgemv computes y = alpha*op(A)*x + beta*y where op is selected by transA.
func Dgemv(transA Transpose, alpha float64, a *matrix.Matrix, x *vector.Vector, beta float64, y *vector.Vector) error {
	if a.Handle() == nil || x.Handle() == nil || y.Handle() == nil {
		return freedErr("blas_dgemv")
	}
	err := backend.BlasDgemv(transA, alpha, a.Handle(), x.Handle(), beta, y.Handle())
	runtime.KeepAlive(a)
	runtime.KeepAlive(x)
	runtime.KeepAlive(y)
	return err
}

// Dgemm computes C = alpha*op(A)*op(B) + beta*C where op is selected per
// operand by transA and transB.
func Dgemm(transA, transB Transpose, alpha float64, a, b *matrix.Matrix, beta float64, c *matrix.Matrix) error {
	if a.Handle() == nil || b.Handle() == nil || c.Handle() == nil {
		return freedErr("blas_dgemm")
	}
	err := backend.BlasDgemm(transA, transB, alpha, a.Handle(), b.Handle(), beta, c.Handle())
	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
	runtime.KeepAlive(c)
	return err
}
